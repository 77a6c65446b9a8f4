package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// ToolCommandRenderer renders the result of a one-shot clarinet command
type ToolCommandRenderer struct {
	out io.Writer
}

// NewToolCommandRenderer creates a new tool command renderer
func NewToolCommandRenderer(out io.Writer) *ToolCommandRenderer {
	return &ToolCommandRenderer{out: out}
}

func (r *ToolCommandRenderer) Render(result *usecase.RunToolCommandResult) error {
	if result.Network != nil {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Generating %s deployment plan", result.Network.Label)))
	}
	return nil
}

// ConsoleRenderer renders what was delivered to the console
type ConsoleRenderer struct {
	out io.Writer
}

// NewConsoleRenderer creates a new console renderer
func NewConsoleRenderer(out io.Writer) *ConsoleRenderer {
	return &ConsoleRenderer{out: out}
}

func (r *ConsoleRenderer) Render(result *usecase.OpenConsoleResult) error {
	switch {
	case result.Scheduled > 0:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Scheduled %d console lines", result.Scheduled)))
	case result.Forwarded > 0:
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Forwarded %d lines to the console", result.Forwarded)))
	}
	return nil
}
