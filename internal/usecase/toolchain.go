package usecase

import (
	"context"
	"log/slog"
)

// checkToolchain warns when clarinet cannot be run. Commands are still sent:
// the terminal shows the shell's own error if the tool really is missing.
func checkToolchain(ctx context.Context, checker ToolchainChecker, log *slog.Logger) {
	if _, err := checker.Check(ctx); err != nil {
		log.Warn("Clarinet is not installed or not in PATH. CLI commands will not work. Install Clarinet for full functionality.", "error", err)
	}
}
