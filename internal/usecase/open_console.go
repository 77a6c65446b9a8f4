package usecase

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/samber/lo"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
)

// OpenConsoleParams contains parameters for opening the console
type OpenConsoleParams struct {
	// Exec is a newline separated batch sent with fixed pacing
	Exec string
	// Input is forwarded line by line when Exec is empty; nil only opens the console
	Input io.Reader
}

// OpenConsoleResult summarizes what was sent
type OpenConsoleResult struct {
	Scheduled int // batch lines scheduled for delivery
	Forwarded int // input lines forwarded
}

// OpenConsole starts the clarinet console and feeds it input
type OpenConsole struct {
	driver  TerminalDriver
	checker ToolchainChecker
	log     *slog.Logger
}

// NewOpenConsole creates a new OpenConsole use case
func NewOpenConsole(driver TerminalDriver, checker ToolchainChecker, log *slog.Logger) *OpenConsole {
	return &OpenConsole{driver: driver, checker: checker, log: log}
}

// Run executes the use case
func (uc *OpenConsole) Run(ctx context.Context, params OpenConsoleParams) (*OpenConsoleResult, error) {
	checkToolchain(ctx, uc.checker, uc.log)

	if strings.TrimSpace(params.Exec) != "" {
		if err := uc.driver.SendBatch(ctx, params.Exec); err != nil {
			return nil, err
		}
		return &OpenConsoleResult{Scheduled: countNonBlank(params.Exec)}, nil
	}

	if err := uc.driver.Open(ctx, domain.ChannelConsole); err != nil {
		return nil, err
	}

	result := &OpenConsoleResult{}
	if params.Input == nil {
		return result, nil
	}

	scanner := bufio.NewScanner(params.Input)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := uc.driver.Send(ctx, domain.ChannelConsole, line); err != nil {
			return result, err
		}
		result.Forwarded++
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read console input: %w", err)
	}
	return result, nil
}

func countNonBlank(text string) int {
	return lo.CountBy(strings.Split(text, "\n"), func(line string) bool {
		return strings.TrimSpace(line) != ""
	})
}
