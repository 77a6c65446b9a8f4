package interactive

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// SelectorAdapter handles interactive selection
type SelectorAdapter struct {
	config *config.RuntimeConfig
}

// NewSelectorAdapter creates a new selector adapter
func NewSelectorAdapter(cfg *config.RuntimeConfig) *SelectorAdapter {
	return &SelectorAdapter{config: cfg}
}

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}",
	Active:   "▸ {{ . | cyan }}",
	Inactive: "  {{ . | faint }}",
	Selected: "✓ {{ . | green }}",
	Help:     color.New(color.FgYellow).Sprint("Type to filter, arrow keys to navigate, Enter to select"),
}

// SelectFunction asks the user to pick one function to test
func (s *SelectorAdapter) SelectFunction(ctx context.Context, functions []*domain.FunctionDescriptor) (*domain.FunctionDescriptor, error) {
	if s.config.NonInteractive {
		return nil, domain.ErrNonInteractive
	}
	if len(functions) == 0 {
		return nil, domain.ErrNoFunctions
	}

	options := formatFunctionOptions(functions)
	index, err := s.run("Select a function to test", options)
	if err != nil {
		return nil, err
	}
	return functions[index], nil
}

// SelectNetwork asks the user to pick a deployment network
func (s *SelectorAdapter) SelectNetwork(ctx context.Context, networks []domain.Network) (domain.Network, error) {
	if s.config.NonInteractive {
		return domain.Network{}, domain.ErrNonInteractive
	}

	options := lo.Map(networks, func(n domain.Network, _ int) string { return n.Label })
	index, err := s.run("Select network for deployment", options)
	if err != nil {
		return domain.Network{}, err
	}
	return networks[index], nil
}

func (s *SelectorAdapter) run(label string, options []string) (int, error) {
	promptSelect := promptui.Select{
		Label:             label,
		Items:             options,
		Templates:         selectTemplates,
		Size:              10,
		StartInSearchMode: len(options) > 10,
		Searcher:          createFuzzySearchFunc(options),
	}

	index, _, err := promptSelect.Run()
	if err != nil {
		return 0, mapPromptError(err)
	}
	return index, nil
}

// formatFunctionOptions renders "name  contract - visibility (n params)  signature"
func formatFunctionOptions(functions []*domain.FunctionDescriptor) []string {
	bold := color.New(color.FgWhite, color.Bold)
	blue := color.New(color.FgBlue)
	faint := color.New(color.Faint)

	return lo.Map(functions, func(fn *domain.FunctionDescriptor, _ int) string {
		return fmt.Sprintf("%s  %s  %s", bold.Sprint(fn.Name), blue.Sprint(fn.Description()), faint.Sprint(fn.Signature))
	})
}

// createFuzzySearchFunc creates a fuzzy search function for promptui
func createFuzzySearchFunc(items []string) func(input string, index int) bool {
	return func(input string, index int) bool {
		if input == "" {
			return true
		}

		input = strings.ToLower(input)
		item := strings.ToLower(items[index])

		if strings.Contains(item, input) {
			return true
		}
		return len(fuzzy.Find(input, []string{item})) > 0
	}
}

// mapPromptError turns the user backing out of a prompt into domain.ErrCancelled
func mapPromptError(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return domain.ErrCancelled
	}
	return fmt.Errorf("prompt failed: %w", err)
}

var (
	_ usecase.FunctionSelector = (*SelectorAdapter)(nil)
	_ usecase.NetworkSelector  = (*SelectorAdapter)(nil)
)
