package render

import (
	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

type Renderer[T any] interface {
	Render(result T) error
}

var (
	_ Renderer[*usecase.ListFunctionsResult]  = (*FunctionsRenderer)(nil)
	_ Renderer[*usecase.TestFunctionResult]   = (*TestFunctionRenderer)(nil)
	_ Renderer[*usecase.CheckContractsResult] = (*DiagnosticsRenderer)(nil)
	_ Renderer[[]*domain.DeploymentPlan]      = (*PlansRenderer)(nil)
	_ Renderer[[]domain.CompletionItem]       = (*SnippetsRenderer)(nil)
	_ Renderer[*usecase.RunToolCommandResult] = (*ToolCommandRenderer)(nil)
	_ Renderer[*usecase.OpenConsoleResult]    = (*ConsoleRenderer)(nil)
)
