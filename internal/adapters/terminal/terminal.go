package terminal

import "context"

// Terminal is a live interactive session that accepts text input
type Terminal interface {
	// Name is the display name the session is registered under
	Name() string
	// SendText writes text to the session, optionally followed by a newline
	SendText(text string, addNewLine bool) error
	// Show makes the session's output visible to the user
	Show()
	// Close ends the session, waiting for it to exit until ctx is done
	Close(ctx context.Context) error
}

// Factory starts a new terminal with the given display name
type Factory func(name string) (Terminal, error)
