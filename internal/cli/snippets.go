package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trebuchet-org/clarity-cli/internal/cli/render"
	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// NewSnippetsCmd creates the snippets command
func NewSnippetsCmd() *cobra.Command {
	var (
		category string
		template bool
	)

	cmd := &cobra.Command{
		Use:   "snippets [prefix]",
		Short: "List Clarity keywords, functions and snippets",
		Example: `  # Everything starting with "define"
  clarity snippets define

  # Snippet templates only
  clarity snippets --category snippet --template`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListSnippetsParams{Category: domain.CompletionCategory(category)}
			if len(args) > 0 {
				params.Prefix = args[0]
			}

			switch params.Category {
			case "", domain.CompletionKeyword, domain.CompletionFunction, domain.CompletionOperator,
				domain.CompletionValue, domain.CompletionSnippet:
			default:
				return fmt.Errorf("invalid category: %s (valid: keyword, function, operator, value, snippet)", category)
			}

			items := app.ListSnippets.Run(params)
			return render.NewSnippetsRenderer(cmd.OutOrStdout(), template).Render(items)
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by kind (keyword, function, operator, value, snippet)")
	cmd.Flags().BoolVar(&template, "template", false, "Show insert templates instead of documentation")

	return cmd
}
