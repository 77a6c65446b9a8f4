package cli

import (
	"github.com/spf13/cobra"

	"github.com/trebuchet-org/clarity-cli/internal/cli/render"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// NewNewCmd creates the new command
func NewNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new [dir]",
		Short: "Create a new Clarinet project",
		Long:  "Run 'clarinet new' in the commands session. The directory defaults to " + usecase.DefaultNewProjectDir + ".",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			var dir string
			if len(args) > 0 {
				dir = args[0]
			}

			result, err := app.RunToolCommand.NewProject(cmd.Context(), dir)
			if err != nil {
				return handleError(cmd, err)
			}
			return render.NewToolCommandRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}

// NewTestCmd creates the test command
func NewTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "test",
		Short: "Run the project's clarinet tests",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RunToolCommand.RunTests(cmd.Context())
			if err != nil {
				return handleError(cmd, err)
			}
			return render.NewToolCommandRenderer(cmd.OutOrStdout()).Render(result)
		},
	}
}
