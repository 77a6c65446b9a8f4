package cli

import (
	"github.com/spf13/cobra"

	"github.com/trebuchet-org/clarity-cli/internal/cli/render"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// NewTestFnCmd creates the test-fn command
func NewTestFnCmd() *cobra.Command {
	var (
		values         []string
		showDefinition bool
	)

	cmd := &cobra.Command{
		Use:   "test-fn [name]",
		Short: "Load a function into the clarinet console and call it",
		Long: `Pick a function from the project's contracts, enter a value for each of its
parameters, and send its definition followed by a call to the clarinet console.

The definition is also staged under the scratch directory and removed a few
seconds later.`,
		Example: `  # Pick from every function
  clarity test-fn

  # Narrow the picker to functions named transfer
  clarity test-fn transfer

  # Skip the prompts
  clarity test-fn transfer --arg u100 --arg "'ST1PQHQKV0RJXZFY1DGX8MNSNYVE3VGZJSRTPGZGM"`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.TestFunctionParams{Values: values}
			if len(args) > 0 {
				params.Name = args[0]
			}

			result, err := app.TestFunction.Run(cmd.Context(), params)
			if err != nil {
				return handleError(cmd, err)
			}

			renderer := render.NewTestFunctionRenderer(cmd.OutOrStdout(), app.Config.ProjectRoot, showDefinition || app.Config.Debug)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringArrayVar(&values, "arg", nil, "Parameter value in declaration order (repeat once per parameter)")
	cmd.Flags().BoolVar(&showDefinition, "show-definition", false, "Print the definition that was sent")

	return cmd
}
