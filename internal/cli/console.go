package cli

import (
	"github.com/spf13/cobra"

	"github.com/trebuchet-org/clarity-cli/internal/cli/render"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// NewConsoleCmd creates the console command
func NewConsoleCmd() *cobra.Command {
	var exec string

	cmd := &cobra.Command{
		Use:   "console",
		Short: "Start the clarinet console and feed it input",
		Long: `Start the clarinet console in its own terminal session.

Without --exec every non-blank line read from stdin is forwarded to the console
until EOF. With --exec the given lines are sent as a batch with fixed pacing:
the first line after 5s, then one every 2s.`,
		Example: `  # Interactive forwarding
  clarity console

  # Send a batch
  clarity console -c "(contract-call? .counter increment)
(contract-call? .counter get-count)"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.OpenConsoleParams{Exec: exec}
			if exec == "" {
				params.Input = cmd.InOrStdin()
			}

			result, err := app.OpenConsole.Run(cmd.Context(), params)
			if err != nil {
				return handleError(cmd, err)
			}
			return render.NewConsoleRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVarP(&exec, "exec", "c", "", "Newline separated console commands to send as a batch")

	return cmd
}
