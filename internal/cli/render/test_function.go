package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/fatih/color"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// TestFunctionRenderer renders the outcome of an interactive function test
type TestFunctionRenderer struct {
	out     io.Writer
	root    string
	verbose bool
}

// NewTestFunctionRenderer creates a new test function renderer. With verbose
// set the extracted definition is printed as well.
func NewTestFunctionRenderer(out io.Writer, root string, verbose bool) *TestFunctionRenderer {
	return &TestFunctionRenderer{out: out, root: root, verbose: verbose}
}

func (r *TestFunctionRenderer) Render(result *usecase.TestFunctionResult) error {
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Sent %s to the %s", result.Function.Name, domain.ChannelConsole.DisplayName())))
	fmt.Fprintf(r.out, "  Call:    %s\n", color.New(color.FgCyan).Sprint(result.CallExpression))

	if result.StagedFile != nil {
		staged := result.StagedFile.Path
		if rel, err := filepath.Rel(r.root, staged); err == nil {
			staged = rel
		}
		fmt.Fprintf(r.out, "  Staged:  %s\n", color.New(color.Faint).Sprint(staged))
	}

	if r.verbose {
		fmt.Fprintln(r.out, "\nDefinition:")
		fmt.Fprintln(r.out, result.Definition)
	}
	return nil
}
