package interactive

import (
	"context"
	"fmt"

	"github.com/manifoldco/promptui"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// PrompterAdapter reads parameter values from the terminal
type PrompterAdapter struct {
	config *config.RuntimeConfig
}

// NewPrompterAdapter creates a new prompter adapter
func NewPrompterAdapter(cfg *config.RuntimeConfig) *PrompterAdapter {
	return &PrompterAdapter{config: cfg}
}

// PromptValue prompts for one parameter, pre-filled with an example of its type
func (p *PrompterAdapter) PromptValue(ctx context.Context, index, total int, param domain.ParameterDescriptor) (string, error) {
	if p.config.NonInteractive {
		return "", domain.ErrNonInteractive
	}

	prompt := promptui.Prompt{
		Label:     valueLabel(index, total, param),
		Default:   domain.ExampleValue(param.BaseType()),
		AllowEdit: true,
		Validate:  valueValidator(param),
	}

	value, err := prompt.Run()
	if err != nil {
		return "", mapPromptError(err)
	}
	return value, nil
}

func valueLabel(index, total int, param domain.ParameterDescriptor) string {
	return fmt.Sprintf("Enter value for parameter %d/%d: %s (%s)", index, total, param.Name, param.Type)
}

func valueValidator(param domain.ParameterDescriptor) promptui.ValidateFunc {
	base := param.BaseType()
	return func(input string) error {
		return domain.ValidateValue(input, base)
	}
}

var _ usecase.ValuePrompter = (*PrompterAdapter)(nil)
