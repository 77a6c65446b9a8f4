package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/trebuchet-org/clarity-cli/internal/app"
	"github.com/trebuchet-org/clarity-cli/internal/config"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// session keeps the App built for the executed command so Execute can shut it
// down after the command returns, whether or not it failed.
type session struct {
	app *app.App
}

// shutdownTimeout bounds the wait for scheduled console work and terminal
// exit. It outlasts the staged file cleanup delay.
var shutdownTimeout = 15 * time.Second

// Execute runs the CLI and then waits for scheduled console work before
// closing the terminal sessions.
func Execute(ctx context.Context) error {
	s := &session{}
	rootCmd := newRootCmd(s)
	err := rootCmd.ExecuteContext(ctx)

	if s.app != nil {
		shutdownCtx, cancel := shutdownContext(ctx)
		defer cancel()
		if shutdownErr := s.app.Shutdown(shutdownCtx); shutdownErr != nil {
			s.app.Log.Warn("failed to close terminal sessions", "error", shutdownErr)
		}
	}
	return err
}

// shutdownContext detaches from ctx so an interrupt that ended the command
// still lets the staged file cleanup run, and bounds the wait instead.
func shutdownContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&session{})
}

func newRootCmd(s *session) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "clarity",
		Short: "Clarity smart contract helper for Clarinet projects",
		Long: `clarity discovers the functions defined in a Clarinet project's .clar files
and drives clarinet through two terminal sessions: one for one-shot commands and
one hosting the long-lived clarinet console.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			v := config.SetupViper(resolveProjectRoot(cmd), cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			s.app = appInstance

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)
			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().String("project-root", "", "Clarinet project root (defaults to the nearest directory with Clarinet.toml)")
	rootCmd.PersistentFlags().String("clarinet-path", "", "Path to the clarinet executable")
	rootCmd.PersistentFlags().String("extract-delimiter", "", "Nesting marker used to find a function's end (brace or paren)")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "project",
		Title: "Project Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "tooling",
		Title: "Tooling Commands",
	})

	// Main commands
	testFnCmd := NewTestFnCmd()
	testFnCmd.GroupID = "main"
	rootCmd.AddCommand(testFnCmd)

	consoleCmd := NewConsoleCmd()
	consoleCmd.GroupID = "main"
	rootCmd.AddCommand(consoleCmd)

	functionsCmd := NewFunctionsCmd()
	functionsCmd.GroupID = "main"
	rootCmd.AddCommand(functionsCmd)

	// Project commands
	newCmd := NewNewCmd()
	newCmd.GroupID = "project"
	rootCmd.AddCommand(newCmd)

	testCmd := NewTestCmd()
	testCmd.GroupID = "project"
	rootCmd.AddCommand(testCmd)

	deploymentsCmd := NewDeploymentsCmd()
	deploymentsCmd.GroupID = "project"
	rootCmd.AddCommand(deploymentsCmd)

	// Tooling commands
	checkCmd := NewCheckCmd()
	checkCmd.GroupID = "tooling"
	rootCmd.AddCommand(checkCmd)

	snippetsCmd := NewSnippetsCmd()
	snippetsCmd.GroupID = "tooling"
	rootCmd.AddCommand(snippetsCmd)

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// resolveProjectRoot prefers --project-root, then the nearest Clarinet.toml.
// "new" falls back to the working directory since it creates the project.
func resolveProjectRoot(cmd *cobra.Command) string {
	if f := cmd.Flag("project-root"); f != nil && f.Changed {
		return f.Value.String()
	}

	projectRoot, err := config.FindProjectRoot()
	if err != nil {
		if cmd.Name() == "new" {
			return "."
		}
		return ""
	}
	return projectRoot
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
