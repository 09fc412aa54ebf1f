package response

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

// Headers that never go into a report.
var redactedHeaders = map[string]bool{
	"Authorization": true,
	"Cookie":        true,
}

func reportAsync(c *gin.Context, r Reporter, message string) {
	ctx := context.WithoutCancel(c.Request.Context())
	go func() {
		for _, msg := range splitMessage(message, ReportChunkLen) {
			if err := r.ReportBug(ctx, msg); err != nil {
				// The service logger may be the thing that failed.
				log.Printf("pkg.response.reportAsync.ReportBug: %v\n", err)
			}
		}
	}()
}

// splitMessage cuts message into chunks of at most maxLen bytes, on line
// boundaries where possible.
func splitMessage(message string, maxLen int) []string {
	var chunks []string
	var current string
	for _, line := range strings.Split(message, "\n") {
		line += "\n"
		if len(current)+len(line) > maxLen {
			if current != "" {
				chunks = append(chunks, strings.TrimSuffix(current, "\n"))
				current = ""
			}
			for len(line) > maxLen {
				chunks = append(chunks, line[:maxLen])
				line = line[maxLen:]
			}
		}
		current += line
	}
	if current != "" {
		chunks = append(chunks, strings.TrimSuffix(current, "\n"))
	}
	return chunks
}

func buildInternalServerErrorReport(c *gin.Context, errString string, backtrace []string) string {
	var bodyBytes []byte
	if c.Request.Body != nil {
		bodyBytes, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewBuffer(bodyBytes))
	}

	var sb strings.Builder
	sb.WriteString("============= NOTIFICATION HUB ERROR =============\n")
	fmt.Fprintf(&sb, "Route   : %s\n", c.Request.URL.Path)
	fmt.Fprintf(&sb, "Method  : %s\n", c.Request.Method)
	sb.WriteString("--------------------------------------------------\n")

	if len(c.Request.Header) > 0 {
		keys := make([]string, 0, len(c.Request.Header))
		for key := range c.Request.Header {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		sb.WriteString("Headers :\n")
		for _, key := range keys {
			value := strings.Join(c.Request.Header[key], ", ")
			if redactedHeaders[key] {
				value = "[redacted]"
			}
			fmt.Fprintf(&sb, "    %s: %s\n", key, value)
		}
		sb.WriteString("--------------------------------------------------\n")
	}

	if params := c.Request.URL.Query().Encode(); params != "" {
		fmt.Fprintf(&sb, "Params  : %s\n", params)
	}

	if len(bodyBytes) > 0 {
		sb.WriteString("Body    :\n")
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, bodyBytes, "    ", "  "); err == nil {
			sb.WriteString("    " + pretty.String() + "\n")
		} else {
			sb.WriteString("    " + string(bodyBytes) + "\n")
		}
		sb.WriteString("--------------------------------------------------\n")
	}

	fmt.Fprintf(&sb, "Error   : %s\n", errString)

	if len(backtrace) > 0 {
		sb.WriteString("\nBacktrace:\n")
		for i, line := range backtrace {
			fmt.Fprintf(&sb, "[%d]: %s\n", i, line)
		}
	}

	sb.WriteString("==================================================\n")
	return sb.String()
}
