package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// DiagnosticsRenderer renders contract check results as compiler-style lines
type DiagnosticsRenderer struct {
	out   io.Writer
	color bool
}

// NewDiagnosticsRenderer creates a new diagnostics renderer
func NewDiagnosticsRenderer(out io.Writer, color bool) *DiagnosticsRenderer {
	return &DiagnosticsRenderer{out: out, color: color}
}

func (r *DiagnosticsRenderer) Render(result *usecase.CheckContractsResult) error {
	for _, d := range result.Diagnostics {
		style := color.New(color.FgRed)
		if d.Severity == domain.SeverityWarning {
			style = color.New(color.FgYellow)
		}
		fmt.Fprintf(r.out, "%s:%d:%d: %s: %s\n",
			d.File, d.Line, d.Column, paint(r.color, style, string(d.Severity)), d.Message)
	}

	if len(result.Diagnostics) == 0 {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%d files checked, no problems found", len(result.Files))))
		return nil
	}

	fmt.Fprintf(r.out, "\n%d problems in %d files checked\n", len(result.Diagnostics), len(result.Files))
	return nil
}
