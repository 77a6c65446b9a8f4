package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"gopkg.in/yaml.v3"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/usecase"
)

// publishKinds are the transaction kinds that carry a contract-name
var publishKinds = []string{
	"contract-publish",
	"requirement-publish",
	"emulated-contract-publish",
}

type planFile struct {
	Name    string `yaml:"name"`
	Network string `yaml:"network"`
	Plan    struct {
		Batches []struct {
			ID           int                         `yaml:"id"`
			Transactions []map[string]map[string]any `yaml:"transactions"`
		} `yaml:"batches"`
	} `yaml:"plan"`
}

// PlanReaderAdapter reads clarinet deployment plans from <root>/deployments
type PlanReaderAdapter struct{}

// NewPlanReaderAdapter creates a new PlanReaderAdapter
func NewPlanReaderAdapter() *PlanReaderAdapter {
	return &PlanReaderAdapter{}
}

// ListPlans parses every deployments/*.yaml file. A missing directory yields no plans.
func (r *PlanReaderAdapter) ListPlans(ctx context.Context, root string) ([]*domain.DeploymentPlan, error) {
	dir := filepath.Join(root, "deployments")
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(dir), "*.{yaml,yml}", doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("failed to list deployment plans: %w", err)
	}

	plans := make([]*domain.DeploymentPlan, 0, len(matches))
	for _, m := range matches {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		plan, err := readPlan(filepath.Join(dir, m))
		if err != nil {
			return nil, err
		}
		plans = append(plans, plan)
	}
	return plans, nil
}

func readPlan(path string) (*domain.DeploymentPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deployment plan: %w", err)
	}

	var file planFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse deployment plan %s: %w", path, err)
	}

	plan := &domain.DeploymentPlan{
		File:    path,
		Name:    file.Name,
		Network: file.Network,
		Batches: len(file.Plan.Batches),
	}
	for _, batch := range file.Plan.Batches {
		plan.Transactions += len(batch.Transactions)
		for _, tx := range batch.Transactions {
			for _, kind := range publishKinds {
				if name, ok := tx[kind]["contract-name"].(string); ok {
					plan.Contracts = append(plan.Contracts, name)
				}
			}
		}
	}
	return plan, nil
}

var _ usecase.PlanReader = (*PlanReaderAdapter)(nil)
