package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"notification-hub/pkg/jwt"
	"notification-hub/pkg/log"
	"notification-hub/pkg/response"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const testSecret = "0123456789abcdef0123456789abcdef"

type fakeReporter struct {
	reports chan string
}

func (f *fakeReporter) ReportBug(ctx context.Context, message string) error {
	f.reports <- message
	return nil
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Resp {
	t.Helper()
	var resp response.Resp
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode body %q: %v", w.Body.String(), err)
	}
	return resp
}

func TestAllowOrigin(t *testing.T) {
	tests := []struct {
		origin  string
		allowed []string
		want    string
	}{
		{"https://a.example.com", []string{"*"}, "*"},
		{"", []string{"*"}, "*"},
		{"https://a.example.com", []string{"https://a.example.com"}, "https://a.example.com"},
		{"https://b.example.com", []string{"https://a.example.com"}, ""},
		{"https://b.example.com", []string{"*.example.com"}, "https://b.example.com"},
		{"https://example.org", []string{"*.example.com"}, ""},
		{"", []string{"https://a.example.com"}, ""},
	}
	for _, tt := range tests {
		if got := allowOrigin(tt.origin, tt.allowed); got != tt.want {
			t.Errorf("allowOrigin(%q, %v) = %q, want %q", tt.origin, tt.allowed, got, tt.want)
		}
	}
}

func TestCORS_Preflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS(DefaultCORSConfig([]string{"https://app.example.com"})))
	r.POST("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/x", nil)
	req.Header.Set("Origin", "https://app.example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want 204", w.Code)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("allow origin = %q", got)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); !strings.Contains(got, http.MethodPost) {
		t.Errorf("allow methods = %q", got)
	}
}

func TestAuth(t *testing.T) {
	mgr, err := jwt.New(jwt.Config{SecretKey: testSecret, TTL: time.Hour})
	if err != nil {
		t.Fatalf("jwt.New() error = %v", err)
	}
	token, err := mgr.GenerateToken("cron", "")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	mw := New(log.NewNop(), mgr, nil)
	r := gin.New()
	r.GET("/internal", mw.Auth(), func(c *gin.Context) {
		claims, ok := GetClaims(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, claims.Subject)
	})

	tests := []struct {
		name   string
		header string
		status int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"not bearer", "Basic abc", http.StatusUnauthorized},
		{"garbage", "Bearer nope", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/internal", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			if tt.status == http.StatusOK && w.Body.String() != "cron" {
				t.Errorf("body = %q", w.Body.String())
			}
			if tt.status == http.StatusUnauthorized {
				if resp := decode(t, w); resp.ErrorCode != http.StatusUnauthorized {
					t.Errorf("error_code = %d", resp.ErrorCode)
				}
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	rep := &fakeReporter{reports: make(chan string, 4)}
	r := gin.New()
	r.Use(Recovery(log.NewNop(), rep))
	r.POST("/boom", func(c *gin.Context) { panic("boom") })

	req := httptest.NewRequest(http.MethodPost, "/boom", strings.NewReader(`{"name":"x"}`))
	req.Header.Set("Authorization", "Bearer secret-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if resp := decode(t, w); resp.ErrorCode != response.InternalServerErrorCode {
		t.Errorf("error_code = %d", resp.ErrorCode)
	}

	select {
	case msg := <-rep.reports:
		if !strings.Contains(msg, "boom") || !strings.Contains(msg, "/boom") {
			t.Errorf("report missing details: %q", msg)
		}
		if strings.Contains(msg, "secret-token") {
			t.Errorf("report leaks Authorization header: %q", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("panic was not reported")
	}
}
