package slack

import (
	goslack "github.com/slack-go/slack"
)

// Field is a label/value pair rendered in a section's field grid.
type Field struct {
	Label string
	Value string
}

// Header returns a plain-text header block.
func Header(text string) goslack.Block {
	return goslack.NewHeaderBlock(
		goslack.NewTextBlockObject(goslack.PlainTextType, truncate(text, MaxHeaderTextLen), true, false),
	)
}

// Section returns a markdown section block.
func Section(text string) goslack.Block {
	return goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, truncate(text, MaxSectionTextLen), false, false),
		nil, nil,
	)
}

// Fields returns a section block laying fields out two per row. Empty values
// render as "N/A".
func Fields(fields ...Field) goslack.Block {
	objs := make([]*goslack.TextBlockObject, 0, len(fields))
	for _, f := range fields {
		value := f.Value
		if value == "" {
			value = "N/A"
		}
		text := truncate("*"+f.Label+":*\n"+value, MaxFieldTextLen)
		objs = append(objs, goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false))
	}
	return goslack.NewSectionBlock(nil, objs, nil)
}

// Divider returns a divider block.
func Divider() goslack.Block {
	return goslack.NewDividerBlock()
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen < 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}
