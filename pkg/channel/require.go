package channel

import "strings"

// Field is a named configuration value checked by Require.
type Field struct {
	Name  string
	Value string
}

// Require returns a ConfigError for the first field whose value is empty or
// whitespace. Fields are checked in the order given.
func Require(ch Name, fields ...Field) error {
	for _, f := range fields {
		if strings.TrimSpace(f.Value) == "" {
			return &ConfigError{Channel: ch, Field: f.Name}
		}
	}
	return nil
}
