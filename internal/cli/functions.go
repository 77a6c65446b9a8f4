package cli

import (
	"fmt"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/trebuchet-org/clarity-cli/internal/app"
	"github.com/trebuchet-org/clarity-cli/internal/cli/render"
	"github.com/trebuchet-org/clarity-cli/internal/domain"
)

// NewFunctionsCmd creates the functions command
func NewFunctionsCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:     "functions",
		Aliases: []string{"fns", "ls"},
		Short:   "List the functions defined in the project's contracts",
		Example: `  # List once
  clarity functions

  # Re-list whenever a .clar file changes
  clarity functions --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if !watch {
				return handleError(cmd, listFunctions(cmd, app))
			}

			if !app.Config.HasProject() {
				return handleError(cmd, domain.ErrNoProject)
			}

			var mu sync.Mutex
			refresh := func() {
				mu.Lock()
				defer mu.Unlock()
				if err := handleError(cmd, listFunctions(cmd, app)); err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), render.FormatError(err.Error()))
				}
			}

			refresh()
			return app.Watcher.Watch(cmd.Context(), app.Config.ProjectRoot, func() {
				fmt.Fprintln(cmd.OutOrStdout())
				refresh()
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Re-list whenever a contract changes")

	return cmd
}

func listFunctions(cmd *cobra.Command, app *app.App) error {
	result, err := app.ListFunctions.Run(cmd.Context())
	if err != nil {
		return err
	}
	return render.NewFunctionsRenderer(cmd.OutOrStdout(), !color.NoColor).Render(result)
}
