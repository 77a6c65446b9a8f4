package interactive

import (
	"context"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
)

func TestMapPromptError(t *testing.T) {
	for _, err := range []error{promptui.ErrInterrupt, promptui.ErrEOF, promptui.ErrAbort} {
		assert.ErrorIs(t, mapPromptError(err), domain.ErrCancelled)
	}

	other := errors.New("tty gone")
	mapped := mapPromptError(other)
	assert.ErrorIs(t, mapped, other)
	assert.NotErrorIs(t, mapped, domain.ErrCancelled)
}

func TestFuzzySearch(t *testing.T) {
	items := []string{"transfer  token - public (2 params)", "get-count  counter - read-only (0 params)"}
	search := createFuzzySearchFunc(items)

	assert.True(t, search("", 0))
	assert.True(t, search("TRANS", 0))
	assert.True(t, search("TFR", 0))
	assert.False(t, search("TFR", 1))
	assert.True(t, search("gcnt", 1))
}

func TestFormatFunctionOptions(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	options := formatFunctionOptions([]*domain.FunctionDescriptor{{
		Name:         "transfer",
		Visibility:   domain.VisibilityPublic,
		ContractName: "token",
		Parameters:   []domain.ParameterDescriptor{{Name: "amount", Type: "uint"}, {Name: "to", Type: "principal"}},
		Signature:    "(transfer (amount uint) (to principal))",
	}})

	require.Len(t, options, 1)
	assert.Equal(t, "transfer  token - public (2 params)  (transfer (amount uint) (to principal))", options[0])
}

func TestValueLabel(t *testing.T) {
	label := valueLabel(1, 2, domain.ParameterDescriptor{Name: "amount", Type: "uint"})
	assert.Equal(t, "Enter value for parameter 1/2: amount (uint)", label)
}

func TestValueValidator(t *testing.T) {
	validate := valueValidator(domain.ParameterDescriptor{Name: "amount", Type: "uint"})
	assert.NoError(t, validate("u100"))
	assert.ErrorIs(t, validate(""), domain.ErrEmptyValue)
	assert.EqualError(t, validate("100"), "invalid uint format. Use: u123")

	// Parameterized types validate against their base tag
	name := valueValidator(domain.ParameterDescriptor{Name: "name", Type: "(string-ascii 32)"})
	assert.NoError(t, name(`"alice"`))
	assert.Error(t, name("alice"))
}

func TestNonInteractiveMode(t *testing.T) {
	cfg := &config.RuntimeConfig{NonInteractive: true}
	ctx := context.Background()

	_, err := NewSelectorAdapter(cfg).SelectFunction(ctx, []*domain.FunctionDescriptor{{Name: "a"}})
	assert.ErrorIs(t, err, domain.ErrNonInteractive)

	_, err = NewSelectorAdapter(cfg).SelectNetwork(ctx, domain.Networks)
	assert.ErrorIs(t, err, domain.ErrNonInteractive)

	_, err = NewPrompterAdapter(cfg).PromptValue(ctx, 1, 1, domain.ParameterDescriptor{Name: "a", Type: "uint"})
	assert.ErrorIs(t, err, domain.ErrNonInteractive)
}
