package postgres

import (
	"context"
	"fmt"

	"github.com/pricingdesk/pricing-console/internal/domain"
)

type fxRepository struct {
	db *DB
}

func NewFxRepository(db *DB) *fxRepository {
	return &fxRepository{db: db}
}

func (r *fxRepository) GetRates(ctx context.Context) ([]domain.FxRate, error) {
	table, err := domain.ProcessBuildupFx.Table()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT TRIM(to_currency) AS to_currency, rate_year, rate_month, rate
		FROM %s
	`, table)

	var rates []domain.FxRate
	if err := r.db.SelectContext(ctx, &rates, query); err != nil {
		return nil, fmt.Errorf("failed to fetch fx rates: %w", err)
	}
	return rates, nil
}
