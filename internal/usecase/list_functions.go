package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
)

// ListFunctionsResult contains the discovered functions
type ListFunctionsResult struct {
	Functions []*domain.FunctionDescriptor
	Files     int
}

// ListFunctions discovers every function defined in the project's contracts
type ListFunctions struct {
	config  *config.RuntimeConfig
	finder  ContractFinder
	scanner FunctionScanner
	log     *slog.Logger
}

// NewListFunctions creates a new ListFunctions use case
func NewListFunctions(cfg *config.RuntimeConfig, finder ContractFinder, scanner FunctionScanner, log *slog.Logger) *ListFunctions {
	return &ListFunctions{config: cfg, finder: finder, scanner: scanner, log: log}
}

// Run finds and scans the contract files. It fails with a precondition error
// when there is no project, no contract file, or no function.
func (uc *ListFunctions) Run(ctx context.Context) (*ListFunctionsResult, error) {
	if !uc.config.HasProject() {
		return nil, domain.ErrNoProject
	}

	paths, err := uc.finder.FindContracts(ctx, uc.config.ProjectRoot)
	if err != nil {
		return nil, fmt.Errorf("failed to find contracts: %w", err)
	}
	if len(paths) == 0 {
		return nil, domain.ErrNoContractFiles
	}

	files, err := uc.finder.ReadContracts(ctx, paths)
	if err != nil {
		return nil, err
	}

	functions := uc.scanner.Scan(files)
	uc.log.Debug("discovered functions", "files", len(paths), "functions", len(functions))
	if len(functions) == 0 {
		return nil, domain.ErrNoFunctions
	}

	return &ListFunctionsResult{Functions: functions, Files: len(paths)}, nil
}
