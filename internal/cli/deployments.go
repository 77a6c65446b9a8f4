package cli

import (
	"github.com/spf13/cobra"

	"github.com/trebuchet-org/clarity-cli/internal/cli/render"
)

// NewDeploymentsCmd creates the deployments command group
func NewDeploymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "deployments",
		Short: "Deployment plan commands",
	}

	cmd.AddCommand(newDeploymentsGenerateCmd())
	cmd.AddCommand(newDeploymentsPlansCmd())

	return cmd
}

func newDeploymentsGenerateCmd() *cobra.Command {
	var network string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a deployment plan for a network",
		Example: `  # Pick the network interactively
  clarity deployments generate

  # Generate the testnet plan
  clarity deployments generate --network testnet`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.RunToolCommand.GenerateDeployment(cmd.Context(), network)
			if err != nil {
				return handleError(cmd, err)
			}
			return render.NewToolCommandRenderer(cmd.OutOrStdout()).Render(result)
		},
	}

	cmd.Flags().StringVarP(&network, "network", "n", "", "Network to generate for (mainnet, testnet, devnet, local)")

	return cmd
}

func newDeploymentsPlansCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "plans",
		Aliases: []string{"ls"},
		Short:   "Summarize the deployment plans under deployments/",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			plans, err := app.ListPlans.Run(cmd.Context())
			if err != nil {
				return handleError(cmd, err)
			}
			return render.NewPlansRenderer(cmd.OutOrStdout()).Render(plans)
		},
	}
}
