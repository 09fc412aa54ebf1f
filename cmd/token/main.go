// Command token prints a bearer token for the internal API, for use by the
// scheduler that posts the daily report.
package main

import (
	"flag"
	"fmt"
	"os"

	"notification-hub/config"
	"notification-hub/pkg/jwt"
)

func main() {
	subject := flag.String("sub", "scheduler", "token subject")
	email := flag.String("email", "", "optional email claim")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to load config:", err)
		os.Exit(1)
	}

	m, err := jwt.New(jwt.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		TTL:       cfg.JWT.TTL,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	token, err := m.GenerateToken(*subject, *email)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "\ncurl -X POST -H 'Authorization: Bearer %s' http://localhost:%d/internal/api/v1/reports/daily -d '{\"inquiries\":0}'\n",
		token, cfg.HTTPServer.Port)
}
