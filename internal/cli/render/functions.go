package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

var (
	contractHeaderStyle = color.New(color.Bold, color.FgHiWhite)
	publicStyle         = color.New(color.FgGreen)
	privateStyle        = color.New(color.FgYellow)
	readOnlyStyle       = color.New(color.FgCyan)
	signatureStyle      = color.New(color.Faint)
)

// FunctionsRenderer renders discovered functions grouped by contract
type FunctionsRenderer struct {
	out   io.Writer
	color bool
}

// NewFunctionsRenderer creates a new functions renderer
func NewFunctionsRenderer(out io.Writer, color bool) *FunctionsRenderer {
	return &FunctionsRenderer{out: out, color: color}
}

// Render renders the function list in scan order, one table per contract
func (r *FunctionsRenderer) Render(result *usecase.ListFunctionsResult) error {
	groups := lo.GroupBy(result.Functions, func(fn *domain.FunctionDescriptor) string {
		return fn.FilePath
	})
	files := lo.Uniq(lo.Map(result.Functions, func(fn *domain.FunctionDescriptor, _ int) string {
		return fn.FilePath
	}))

	for i, file := range files {
		if i > 0 {
			fmt.Fprintln(r.out)
		}
		fmt.Fprintln(r.out, paint(r.color, contractHeaderStyle, "📄 "+groups[file][0].ContractName))

		t := newTable(3)
		for _, fn := range groups[file] {
			t.AppendRow(table.Row{
				"  " + r.visibility(fn.Visibility),
				fn.Name,
				paint(r.color, signatureStyle, parameterSummary(fn)),
			})
		}
		fmt.Fprintln(r.out, t.Render())
	}

	fmt.Fprintf(r.out, "\n%d functions in %d files\n", len(result.Functions), result.Files)
	return nil
}

func (r *FunctionsRenderer) visibility(v domain.Visibility) string {
	label := Title(string(v))
	switch v {
	case domain.VisibilityPublic:
		return paint(r.color, publicStyle, label)
	case domain.VisibilityPrivate:
		return paint(r.color, privateStyle, label)
	default:
		return paint(r.color, readOnlyStyle, label)
	}
}

func parameterSummary(fn *domain.FunctionDescriptor) string {
	if len(fn.Parameters) == 0 {
		return "()"
	}
	parts := lo.Map(fn.Parameters, func(p domain.ParameterDescriptor, _ int) string {
		return fmt.Sprintf("(%s %s)", p.Name, p.Type)
	})
	return strings.Join(parts, " ")
}
