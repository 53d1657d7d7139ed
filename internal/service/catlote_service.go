package service

import (
	"context"

	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/pricingdesk/pricing-console/internal/engine/catlote"
	"github.com/pricingdesk/pricing-console/internal/repository"
)

// CatloteService wraps the catalog-discount engine with warehouse access.
// All simulation state (edited configs, patched rows) lives with the caller;
// the service holds nothing between calls.
type CatloteService struct {
	repo repository.CatloteRepository
}

func NewCatloteService(repo repository.CatloteRepository) *CatloteService {
	return &CatloteService{repo: repo}
}

// LoadSimulation fetches the baseline rows and configs for the selected lots
// and runs the initial full recompute.
func (s *CatloteService) LoadSimulation(ctx context.Context, lotIDs []string) ([]domain.DiscountConfig, catlote.Result, error) {
	configs, err := s.repo.GetLots(ctx, lotIDs)
	if err != nil {
		return nil, catlote.Result{}, err
	}

	rows, err := s.repo.GetProducts(ctx, lotIDs)
	if err != nil {
		return nil, catlote.Result{}, err
	}

	return configs, catlote.Calculate(configs, rows, nil), nil
}

// Simulate recomputes the working set the caller sends back, either fully or
// for a single patched cell.
func (s *CatloteService) Simulate(configs []domain.DiscountConfig, rows []domain.CatalogRow, patch *domain.Patch) catlote.Result {
	return catlote.Calculate(configs, rows, patch)
}
