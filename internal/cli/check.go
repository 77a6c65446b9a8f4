package cli

import (
	"errors"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/trebuchet-org/clarity-cli/internal/cli/render"
)

var errCheckFailed = errors.New("contract check found errors")

// NewCheckCmd creates the check command
func NewCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report unbalanced parentheses and unterminated strings in contracts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.CheckContracts.Run(cmd.Context())
			if err != nil {
				return handleError(cmd, err)
			}

			if err := render.NewDiagnosticsRenderer(cmd.OutOrStdout(), !color.NoColor).Render(result); err != nil {
				return err
			}
			if result.HasErrors() {
				return errCheckFailed
			}
			return nil
		},
	}
}
