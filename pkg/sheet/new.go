package sheet

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"notification-hub/pkg/channel"
	"notification-hub/pkg/log"
)

// New validates cfg and builds the Sheets client. Tokens are fetched lazily
// on the first request, so New performs no network I/O.
func New(ctx context.Context, l log.Logger, cfg Config) (*Sheet, error) {
	if err := channel.Require(channel.Sheet,
		channel.Field{Name: "client_email", Value: cfg.ClientEmail},
		channel.Field{Name: "private_key", Value: cfg.PrivateKey},
		channel.Field{Name: "spreadsheet_id", Value: cfg.SpreadsheetID},
	); err != nil {
		return nil, err
	}

	switch cfg.ValueInputOption {
	case "":
		cfg.ValueInputOption = InputUserEntered
	case InputRaw, InputUserEntered:
	default:
		return nil, &channel.ConfigError{Channel: channel.Sheet, Field: "value_input_option"}
	}
	if cfg.SheetName == "" {
		cfg.SheetName = DefaultSheetName
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = DefaultTokenURL
	}

	base := cfg.HTTPClient
	if base == nil {
		base = &http.Client{}
	}
	jwtCfg := &jwt.Config{
		Email:      cfg.ClientEmail,
		PrivateKey: []byte(normalizeKey(cfg.PrivateKey)),
		Scopes:     []string{sheets.SpreadsheetsScope},
		TokenURL:   cfg.TokenURL,
	}
	client := jwtCfg.Client(context.WithValue(ctx, oauth2.HTTPClient, base))
	client.Timeout = cfg.Timeout

	opts := []option.ClientOption{option.WithHTTPClient(client)}
	if cfg.Endpoint != "" {
		opts = append(opts, option.WithEndpoint(strings.TrimSuffix(cfg.Endpoint, "/")+"/"))
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheet: failed to create service: %w", err)
	}

	return &Sheet{
		l:             l,
		svc:           svc,
		spreadsheetID: cfg.SpreadsheetID,
		sheetName:     cfg.SheetName,
		inputOption:   cfg.ValueInputOption,
	}, nil
}

// normalizeKey restores newlines in a PEM key that was flattened into a
// single-line environment variable.
func normalizeKey(key string) string {
	return strings.ReplaceAll(key, `\n`, "\n")
}
