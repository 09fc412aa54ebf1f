package sheet

import (
	"net/http"
	"time"

	"google.golang.org/api/sheets/v4"

	"notification-hub/pkg/channel"
	"notification-hub/pkg/log"
)

// Config configures the spreadsheet channel. ClientEmail and PrivateKey are
// the service account credentials; the account must have edit access to the
// spreadsheet.
type Config struct {
	ClientEmail   string
	PrivateKey    string
	SpreadsheetID string

	SheetName        string
	ValueInputOption string

	// Endpoint overrides the Sheets API base URL. TokenURL overrides the
	// OAuth2 token endpoint.
	Endpoint   string
	TokenURL   string
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Sheet appends rows to a Google spreadsheet.
type Sheet struct {
	l             log.Logger
	svc           *sheets.Service
	spreadsheetID string
	sheetName     string
	inputOption   string
}

var _ channel.Adapter = (*Sheet)(nil)
