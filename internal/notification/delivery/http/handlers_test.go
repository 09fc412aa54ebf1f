package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notification-hub/internal/middleware"
	"notification-hub/internal/notification"
	"notification-hub/pkg/channel"
	pkgErrors "notification-hub/pkg/errors"
	"notification-hub/pkg/jwt"
	"notification-hub/pkg/log"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeUseCase struct {
	inquiries []notification.InquiryInput
	ctxErrs   []error
	reports   []notification.DailyStats
	err       error
	health    notification.HealthReport
}

func (f *fakeUseCase) ProcessInquiry(ctx context.Context, input notification.InquiryInput) error {
	f.inquiries = append(f.inquiries, input)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	return f.err
}

func (f *fakeUseCase) HealthCheck(ctx context.Context) notification.HealthReport {
	return f.health
}

func (f *fakeUseCase) DailyReport(ctx context.Context, stats notification.DailyStats) error {
	f.reports = append(f.reports, stats)
	return f.err
}

type fakeReporter struct {
	reports chan string
}

func (f *fakeReporter) ReportBug(ctx context.Context, message string) error {
	f.reports <- message
	return nil
}

type testServer struct {
	engine   *gin.Engine
	uc       *fakeUseCase
	reporter *fakeReporter
	token    string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	mgr, err := jwt.New(jwt.Config{SecretKey: strings.Repeat("k", 32)})
	require.NoError(t, err)
	token, err := mgr.GenerateToken("scheduler", "")
	require.NoError(t, err)

	uc := &fakeUseCase{}
	rep := &fakeReporter{reports: make(chan string, 8)}
	h := New(log.NewNop(), uc, rep)
	h.now = func() time.Time { return time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC) }

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/v1"), r.Group("/internal/api/v1"), middleware.New(log.NewNop(), mgr, nil))
	r.GET("/health", h.HealthCheck)

	return &testServer{engine: r, uc: uc, reporter: rep, token: token}
}

func (s *testServer) do(method, path, body, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

type envelope struct {
	ErrorCode int             `json:"error_code"`
	Message   string          `json:"message"`
	Data      json.RawMessage `json:"data"`
	Errors    []struct {
		Field    string   `json:"field"`
		Messages []string `json:"messages"`
	} `json:"errors"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	return env
}

func TestCreateInquiry(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v1/inquiries", `{"name":"Ada","email":"ada@example.com","message":"Hello"}`, "")

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"status":"delivered"}`, string(decode(t, w).Data))
	require.Len(t, s.uc.inquiries, 1)
	assert.Equal(t, notification.InquiryInput{Name: "Ada", Email: "ada@example.com", Message: "Hello"}, s.uc.inquiries[0])
}

func TestCreateInquiry_ClientGone(t *testing.T) {
	s := newTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","message":"Hello"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	s.engine.ServeHTTP(httptest.NewRecorder(), req)

	require.Len(t, s.uc.ctxErrs, 1)
	assert.NoError(t, s.uc.ctxErrs[0], "inquiry steps must not inherit the request cancellation")
}

func TestCreateInquiry_Validation(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v1/inquiries", `{"name":"Ada","email":"not-an-email"}`, "")

	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w)
	fields := map[string]string{}
	for _, e := range env.Errors {
		fields[e.Field] = strings.Join(e.Messages, ",")
	}
	assert.Equal(t, "must be a valid email address", fields["email"])
	assert.Equal(t, "is required", fields["message"])
	assert.Empty(t, s.uc.inquiries)
}

func TestCreateInquiry_MalformedBody(t *testing.T) {
	s := newTestServer(t)

	w := s.do(http.MethodPost, "/api/v1/inquiries", `{"name":`, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, s.uc.inquiries)
}

func TestCreateInquiry_ChannelFailure(t *testing.T) {
	s := newTestServer(t)
	s.uc.err = &channel.TransportError{Channel: channel.Chat, Message: "invalid_token"}

	w := s.do(http.MethodPost, "/api/v1/inquiries", `{"name":"Ada","email":"ada@example.com","message":"Hello"}`, "")

	require.Equal(t, http.StatusBadGateway, w.Code)
	assert.Equal(t, "Upstream channel failed: chat", decode(t, w).Message)
	select {
	case msg := <-s.reporter.reports:
		t.Errorf("channel failures must not be reported as bugs: %q", msg)
	default:
	}
}

func TestCreateInquiry_UnexpectedError(t *testing.T) {
	s := newTestServer(t)
	s.uc.err = errors.New("something odd")

	w := s.do(http.MethodPost, "/api/v1/inquiries", `{"name":"Ada","email":"ada@example.com","message":"Hello"}`, "")

	require.Equal(t, http.StatusInternalServerError, w.Code)
	select {
	case msg := <-s.reporter.reports:
		assert.Contains(t, msg, "something odd")
	case <-time.After(2 * time.Second):
		t.Fatal("unexpected error was not reported")
	}
}

func TestSendDailyReport(t *testing.T) {
	s := newTestServer(t)
	body := `{"date":"2024-05-01","inquiries":3,"emails_sent":2,"notes":"ok"}`

	t.Run("requires auth", func(t *testing.T) {
		w := s.do(http.MethodPost, "/internal/api/v1/reports/daily", body, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, s.uc.reports)
	})

	t.Run("posts with token", func(t *testing.T) {
		w := s.do(http.MethodPost, "/internal/api/v1/reports/daily", body, s.token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.Len(t, s.uc.reports, 1)
		got := s.uc.reports[0]
		assert.Equal(t, "2024-05-01", got.Date.Format(dateLayout))
		assert.Equal(t, 3, got.Inquiries)
		assert.Equal(t, 2, got.EmailsSent)
		assert.Equal(t, "ok", got.Notes)
	})

	t.Run("defaults date to today", func(t *testing.T) {
		w := s.do(http.MethodPost, "/internal/api/v1/reports/daily", `{"inquiries":1}`, s.token)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2024-05-02", s.uc.reports[len(s.uc.reports)-1].Date.Format(dateLayout))
	})

	t.Run("rejects bad input", func(t *testing.T) {
		w := s.do(http.MethodPost, "/internal/api/v1/reports/daily", `{"date":"01/05/2024","inquiries":-1}`, s.token)
		require.Equal(t, http.StatusBadRequest, w.Code)
		fields := map[string]bool{}
		for _, e := range decode(t, w).Errors {
			fields[e.Field] = true
		}
		assert.True(t, fields["date"])
		assert.True(t, fields["inquiries"])
	})
}

func TestDailyReportReq_ToInput(t *testing.T) {
	now := time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC)

	got, err := DailyReportReq{Date: "2024-05-01", Inquiries: 2}.toInput(now)
	require.NoError(t, err)
	assert.Equal(t, "2024-05-01", got.Date.Format(dateLayout))
	assert.Equal(t, 2, got.Inquiries)

	got, err = DailyReportReq{}.toInput(now)
	require.NoError(t, err)
	assert.Equal(t, now, got.Date)

	_, err = DailyReportReq{Date: "2024-13-45"}.toInput(now)
	var verr *pkgErrors.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "date", verr.Field)
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t)

	s.uc.health = notification.HealthReport{channel.Mail: true, channel.Sheet: true, channel.Chat: true, channel.Bot: true}
	w := s.do(http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","channels":{"mail":true,"sheet":true,"chat":true,"bot":true}}`, string(decode(t, w).Data))

	s.uc.health[channel.Bot] = false
	w = s.do(http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.JSONEq(t, `{"status":"unhealthy","channels":{"mail":true,"sheet":true,"chat":true,"bot":false}}`, string(decode(t, w).Data))
}

func TestToSnake(t *testing.T) {
	assert.Equal(t, "emails_sent", toSnake("EmailsSent"))
	assert.Equal(t, "name", toSnake("Name"))
}
