package usecase

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
)

// CheckContractsResult contains diagnostics for every contract
type CheckContractsResult struct {
	Files       []string
	Diagnostics []domain.Diagnostic
}

// HasErrors reports whether any diagnostic is an error
func (r *CheckContractsResult) HasErrors() bool {
	for _, d := range r.Diagnostics {
		if d.Severity == domain.SeverityError {
			return true
		}
	}
	return false
}

// CheckContracts runs the structural checker over the project's contracts
type CheckContracts struct {
	config  *config.RuntimeConfig
	finder  ContractFinder
	checker ContractChecker
}

// NewCheckContracts creates a new CheckContracts use case
func NewCheckContracts(cfg *config.RuntimeConfig, finder ContractFinder, checker ContractChecker) *CheckContracts {
	return &CheckContracts{config: cfg, finder: finder, checker: checker}
}

// Run executes the use case. Diagnostic file names are relative to the project root.
func (uc *CheckContracts) Run(ctx context.Context) (*CheckContractsResult, error) {
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

	result := &CheckContractsResult{}
	for _, path := range paths {
		rel := uc.relative(path)
		result.Files = append(result.Files, rel)
		result.Diagnostics = append(result.Diagnostics, uc.checker.Diagnose(rel, files[path])...)
	}
	return result, nil
}

func (uc *CheckContracts) relative(path string) string {
	if rel, err := filepath.Rel(uc.config.ProjectRoot, path); err == nil {
		return rel
	}
	return path
}
