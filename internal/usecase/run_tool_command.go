package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
)

// DefaultNewProjectDir is where "new" creates a project when no directory is given
const DefaultNewProjectDir = "./smart-contract"

// RunToolCommandResult contains the command that was sent
type RunToolCommandResult struct {
	Command string
	Network *domain.Network
}

// RunToolCommand sends one-shot clarinet invocations to the commands session
type RunToolCommand struct {
	driver   TerminalDriver
	selector NetworkSelector
	checker  ToolchainChecker
	log      *slog.Logger
}

// NewRunToolCommand creates a new RunToolCommand use case
func NewRunToolCommand(driver TerminalDriver, selector NetworkSelector, checker ToolchainChecker, log *slog.Logger) *RunToolCommand {
	return &RunToolCommand{driver: driver, selector: selector, checker: checker, log: log}
}

// NewProject runs "clarinet new <dir>"
func (uc *RunToolCommand) NewProject(ctx context.Context, dir string) (*RunToolCommandResult, error) {
	if strings.TrimSpace(dir) == "" {
		dir = DefaultNewProjectDir
	}
	return uc.run(ctx, "clarinet new "+dir)
}

// RunTests runs "clarinet test"
func (uc *RunToolCommand) RunTests(ctx context.Context) (*RunToolCommandResult, error) {
	return uc.run(ctx, "clarinet test")
}

// GenerateDeployment runs "clarinet deployments generate --<network>". An
// empty network name asks the user to pick one.
func (uc *RunToolCommand) GenerateDeployment(ctx context.Context, network string) (*RunToolCommandResult, error) {
	var (
		selected domain.Network
		err      error
	)
	if network == "" {
		selected, err = uc.selector.SelectNetwork(ctx, domain.Networks)
	} else {
		selected, err = domain.ParseNetwork(network)
	}
	if err != nil {
		return nil, err
	}

	result, err := uc.run(ctx, fmt.Sprintf("clarinet deployments generate --%s", selected.Value))
	if err != nil {
		return nil, err
	}
	result.Network = &selected
	return result, nil
}

func (uc *RunToolCommand) run(ctx context.Context, command string) (*RunToolCommandResult, error) {
	checkToolchain(ctx, uc.checker, uc.log)

	if err := uc.driver.Send(ctx, domain.ChannelCommands, command); err != nil {
		return nil, err
	}
	return &RunToolCommandResult{Command: command}, nil
}
