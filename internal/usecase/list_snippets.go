package usecase

import (
	"strings"

	"github.com/samber/lo"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
)

// ListSnippetsParams filters the completion table
type ListSnippetsParams struct {
	Prefix   string
	Category domain.CompletionCategory
}

// ListSnippets returns completion items matching a trigger prefix and category
type ListSnippets struct{}

// NewListSnippets creates a new ListSnippets use case
func NewListSnippets() *ListSnippets {
	return &ListSnippets{}
}

// Run executes the use case
func (uc *ListSnippets) Run(params ListSnippetsParams) []domain.CompletionItem {
	return lo.Filter(domain.Completions, func(item domain.CompletionItem, _ int) bool {
		if params.Category != "" && item.Category != params.Category {
			return false
		}
		return strings.HasPrefix(item.Trigger, params.Prefix)
	})
}
