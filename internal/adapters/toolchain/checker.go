package toolchain

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

const versionTimeout = 5 * time.Second

// CheckerAdapter checks the configured clarinet binary
type CheckerAdapter struct {
	clarinet string
	log      *slog.Logger
}

// NewCheckerAdapter creates a new toolchain checker
func NewCheckerAdapter(cfg *config.RuntimeConfig, log *slog.Logger) *CheckerAdapter {
	clarinet := cfg.ClarinetPath
	if clarinet == "" {
		clarinet = "clarinet"
	}
	return &CheckerAdapter{clarinet: clarinet, log: log.With("component", "ToolchainChecker")}
}

// Check runs "<clarinet> --version" and returns its first output line
func (c *CheckerAdapter) Check(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, versionTimeout)
	defer cancel()

	start := time.Now()
	output, err := exec.CommandContext(ctx, c.clarinet, "--version").CombinedOutput()
	if err != nil {
		c.log.Debug("clarinet version check failed", "path", c.clarinet, "error", err, "output", string(output))
		return "", fmt.Errorf("clarinet is not installed or not in PATH (%s): %w", c.clarinet, err)
	}

	version, _, _ := strings.Cut(strings.TrimSpace(string(output)), "\n")
	c.log.Debug("clarinet found", "path", c.clarinet, "version", version, "duration", time.Since(start))
	return version, nil
}

var _ usecase.ToolchainChecker = (*CheckerAdapter)(nil)
