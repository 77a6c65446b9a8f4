package usecase

import (
	"context"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
)

// CollectParameters asks for one value per parameter, in declaration order
type CollectParameters struct {
	prompter ValuePrompter
}

// NewCollectParameters creates a new CollectParameters use case
func NewCollectParameters(prompter ValuePrompter) *CollectParameters {
	return &CollectParameters{prompter: prompter}
}

// Run returns the validated values. A function without parameters returns an
// empty slice without prompting; cancelling any prompt returns domain.ErrCancelled.
func (uc *CollectParameters) Run(ctx context.Context, params []domain.ParameterDescriptor) ([]string, error) {
	values := make([]string, 0, len(params))
	for i, param := range params {
		value, err := uc.prompter.PromptValue(ctx, i+1, len(params), param)
		if err != nil {
			return nil, err
		}
		values = append(values, value)
	}
	return values, nil
}
