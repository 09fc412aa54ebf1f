package slack

import (
	"context"
	"fmt"

	goslack "github.com/slack-go/slack"
)

const reportTitle = "Notification Hub Error Report"

// ReportBug posts an internal error report as a code block. Long reports
// are truncated.
func (s *Slack) ReportBug(ctx context.Context, message string) error {
	body := truncate(message, MaxSectionTextLen-len("``````"))
	_, err := s.Send(ctx, Payload{
		Text: reportTitle,
		Blocks: []goslack.Block{
			Header(reportTitle),
			Section(fmt.Sprintf("```%s```", body)),
		},
	})
	return err
}
