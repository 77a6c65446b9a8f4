package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/trebuchet-org/clarity-cli/internal/adapters/terminal"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/timer"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	ListFunctions  *usecase.ListFunctions
	TestFunction   *usecase.TestFunction
	RunToolCommand *usecase.RunToolCommand
	OpenConsole    *usecase.OpenConsole
	CheckContracts *usecase.CheckContracts
	ListPlans      *usecase.ListPlans
	ListSnippets   *usecase.ListSnippets

	// Adapters needed directly by commands
	Watcher usecase.ContractWatcher

	// Process-lifetime resources released by Shutdown
	sessions *terminal.Registry
	clock    *timer.Clock
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	listFunctions *usecase.ListFunctions,
	testFunction *usecase.TestFunction,
	runToolCommand *usecase.RunToolCommand,
	openConsole *usecase.OpenConsole,
	checkContracts *usecase.CheckContracts,
	listPlans *usecase.ListPlans,
	listSnippets *usecase.ListSnippets,
	watcher usecase.ContractWatcher,
	sessions *terminal.Registry,
	clock *timer.Clock,
) (*App, error) {
	return &App{
		Config:         cfg,
		Log:            log,
		ListFunctions:  listFunctions,
		TestFunction:   testFunction,
		RunToolCommand: runToolCommand,
		OpenConsole:    openConsole,
		CheckContracts: checkContracts,
		ListPlans:      listPlans,
		ListSnippets:   listSnippets,
		Watcher:        watcher,
		sessions:       sessions,
		clock:          clock,
	}, nil
}

// Shutdown waits for scheduled work (batch lines, staged file cleanup) and
// then closes every terminal session. Both stop early when ctx ends.
func (a *App) Shutdown(ctx context.Context) error {
	waitErr := a.clock.Wait(ctx)
	if waitErr != nil {
		a.Log.Warn("scheduled work did not finish", "error", waitErr)
	}
	return errors.Join(waitErr, a.sessions.CloseAll(ctx))
}
