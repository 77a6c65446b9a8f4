package render

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
)

// SnippetsRenderer renders completion items
type SnippetsRenderer struct {
	out      io.Writer
	template bool
}

// NewSnippetsRenderer creates a new snippets renderer. With template set the
// insert template replaces the documentation column.
func NewSnippetsRenderer(out io.Writer, template bool) *SnippetsRenderer {
	return &SnippetsRenderer{out: out, template: template}
}

func (r *SnippetsRenderer) Render(items []domain.CompletionItem) error {
	if len(items) == 0 {
		fmt.Fprintln(r.out, "No snippets match")
		return nil
	}

	t := newTable(3)
	last := "DOCUMENTATION"
	if r.template {
		last = "TEMPLATE"
	}
	t.AppendHeader(table.Row{"TRIGGER", "KIND", last})
	for _, item := range items {
		detail := item.Doc
		if r.template {
			detail = item.InsertTemplate
		}
		t.AppendRow(table.Row{item.Trigger, Title(string(item.Category)), detail})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}
