package usecase

import (
	"context"

	"github.com/trebuchet-org/clarity-cli/internal/domain"
	"github.com/trebuchet-org/clarity-cli/internal/domain/config"
)

// ListPlans summarizes the project's clarinet deployment plans
type ListPlans struct {
	config *config.RuntimeConfig
	reader PlanReader
}

// NewListPlans creates a new ListPlans use case
func NewListPlans(cfg *config.RuntimeConfig, reader PlanReader) *ListPlans {
	return &ListPlans{config: cfg, reader: reader}
}

// Run executes the use case
func (uc *ListPlans) Run(ctx context.Context) ([]*domain.DeploymentPlan, error) {
	if !uc.config.HasProject() {
		return nil, domain.ErrNoProject
	}
	return uc.reader.ListPlans(ctx, uc.config.ProjectRoot)
}
