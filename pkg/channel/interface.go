package channel

import "context"

// Name identifies a delivery channel.
type Name string

const (
	Mail  Name = "mail"
	Sheet Name = "sheet"
	Chat  Name = "chat"
	Bot   Name = "bot"
)

// Adapter is the capability shared by every delivery channel. Send is not part
// of the interface because each channel takes its own payload shape.
type Adapter interface {
	Name() Name
	// Verify reports whether the channel is reachable with the configured
	// credentials. It never panics and never returns an error.
	Verify(ctx context.Context) bool
}
