// Injector for the provider sets in wire.go, kept in the layout wire emits.
// Running go generate replaces it with wire's own output.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"github.com/spf13/viper"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/clarity"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/fs"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/interactive"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/progress"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/terminal"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/timer"
	"github.com/trebuchet-org/clarity-cli/internal/adapters/toolchain"
	"github.com/trebuchet-org/clarity-cli/internal/config"
	"github.com/trebuchet-org/clarity-cli/internal/logging"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// Injectors from wire.go:

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	runtimeConfig, err := config.Provider(v)
	if err != nil {
		return nil, err
	}
	logger := logging.NewLogger(runtimeConfig)
	contractFinderAdapter := fs.NewContractFinderAdapter(runtimeConfig)
	scanner := clarity.NewScanner(runtimeConfig, logger)
	listFunctions := usecase.NewListFunctions(runtimeConfig, contractFinderAdapter, scanner, logger)
	selectorAdapter := interactive.NewSelectorAdapter(runtimeConfig)
	prompterAdapter := interactive.NewPrompterAdapter(runtimeConfig)
	collectParameters := usecase.NewCollectParameters(prompterAdapter)
	extractor := clarity.NewExtractor(runtimeConfig)
	scratchStoreAdapter := fs.NewScratchStoreAdapter(runtimeConfig)
	factory := terminal.NewPTYFactory(runtimeConfig)
	registry := terminal.NewRegistry(factory)
	clock := timer.NewClock()
	progressSink := progress.NewSink(runtimeConfig)
	driver := terminal.NewDriver(runtimeConfig, registry, clock, clock, progressSink, logger)
	checkerAdapter := toolchain.NewCheckerAdapter(runtimeConfig, logger)
	testFunction := usecase.NewTestFunction(runtimeConfig, listFunctions, selectorAdapter, collectParameters, contractFinderAdapter, extractor, scratchStoreAdapter, driver, checkerAdapter, clock, clock, progressSink, logger)
	runToolCommand := usecase.NewRunToolCommand(driver, selectorAdapter, checkerAdapter, logger)
	openConsole := usecase.NewOpenConsole(driver, checkerAdapter, logger)
	checker := clarity.NewChecker()
	checkContracts := usecase.NewCheckContracts(runtimeConfig, contractFinderAdapter, checker)
	planReaderAdapter := fs.NewPlanReaderAdapter()
	listPlans := usecase.NewListPlans(runtimeConfig, planReaderAdapter)
	listSnippets := usecase.NewListSnippets()
	contractWatcherAdapter := fs.NewContractWatcherAdapter(logger)
	app, err := NewApp(runtimeConfig, logger, listFunctions, testFunction, runToolCommand, openConsole, checkContracts, listPlans, listSnippets, contractWatcherAdapter, registry, clock)
	if err != nil {
		return nil, err
	}
	return app, nil
}
