package progress

import (
	"context"
	"io"
	"os"

	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// NewSink picks the spinner for interactive runs and plain lines otherwise
func NewSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive {
		return NewPlainSink(os.Stderr)
	}
	return NewSpinnerProgressReporter()
}

// PlainSink prints messages without any animation
type PlainSink struct {
	out io.Writer
}

// NewPlainSink creates a PlainSink writing to out
func NewPlainSink(out io.Writer) *PlainSink {
	return &PlainSink{out: out}
}

// OnProgress prints spinner messages once, as plain lines
func (p *PlainSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner && event.Message != "" {
		_, _ = io.WriteString(p.out, event.Message+"\n")
	}
}

func (p *PlainSink) Info(message string) {
	_, _ = io.WriteString(p.out, message+"\n")
}

func (p *PlainSink) Error(message string) {
	_, _ = io.WriteString(p.out, "Error: "+message+"\n")
}

var _ usecase.ProgressSink = (*PlainSink)(nil)
