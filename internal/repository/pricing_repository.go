package repository

import (
	"context"

	"github.com/pricingdesk/pricing-console/internal/dataset"
	"github.com/pricingdesk/pricing-console/internal/domain"
)

type CatloteRepository interface {
	// GetLots returns the discount configurations, optionally filtered to a
	// set of catalog-lot ids.
	GetLots(ctx context.Context, lotIDs []string) ([]domain.DiscountConfig, error)
	// GetProducts returns the baseline catalog rows for the given lots.
	GetProducts(ctx context.Context, lotIDs []string) ([]domain.CatalogRow, error)
}

type BuildupRepository interface {
	// GetFactorRows returns the long-form buildup factor rows, optionally
	// filtered by quarter and year.
	GetFactorRows(ctx context.Context, quarter, year string) ([]domain.BuildupFactorRow, error)
}

type FxRepository interface {
	// GetRates returns the full FX actuals table.
	GetRates(ctx context.Context) ([]domain.FxRate, error)
}

type CommandCenterRepository interface {
	// FetchAll fetches every command-center view concurrently and returns a
	// process→frame map.
	FetchAll(ctx context.Context) (map[domain.Process]*dataset.Frame, error)
}
