package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
)

// PlansRenderer renders deployment plan summaries
type PlansRenderer struct {
	out io.Writer
}

// NewPlansRenderer creates a new plans renderer
func NewPlansRenderer(out io.Writer) *PlansRenderer {
	return &PlansRenderer{out: out}
}

func (r *PlansRenderer) Render(plans []*domain.DeploymentPlan) error {
	if len(plans) == 0 {
		fmt.Fprintln(r.out, "No deployment plans found. Run 'clarity deployments generate' to create one.")
		return nil
	}

	t := newTable(5)
	t.AppendHeader(table.Row{"PLAN", "NETWORK", "BATCHES", "TXS", "CONTRACTS"})
	for _, p := range plans {
		t.AppendRow(table.Row{p.Name, Title(p.Network), p.Batches, p.Transactions, strings.Join(p.Contracts, ", ")})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}
