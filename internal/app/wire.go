//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"

	"github.com/trebuchet-org/clarity-cli/internal/adapters"
	"github.com/trebuchet-org/clarity-cli/internal/config"
	"github.com/trebuchet-org/clarity-cli/internal/logging"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewListFunctions,
		usecase.NewCollectParameters,
		usecase.NewTestFunction,
		usecase.NewRunToolCommand,
		usecase.NewOpenConsole,
		usecase.NewCheckContracts,
		usecase.NewListPlans,
		usecase.NewListSnippets,

		// App
		NewApp,
	)
	return nil, nil
}
