package service

import (
	"context"
	"errors"
	"testing"

	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatloteRepo struct {
	configs []domain.DiscountConfig
	rows    []domain.CatalogRow
	err     error
	lotIDs  []string
}

func (f *fakeCatloteRepo) GetLots(_ context.Context, lotIDs []string) ([]domain.DiscountConfig, error) {
	f.lotIDs = lotIDs
	return f.configs, f.err
}

func (f *fakeCatloteRepo) GetProducts(context.Context, []string) ([]domain.CatalogRow, error) {
	return f.rows, f.err
}

func TestLoadSimulation(t *testing.T) {
	repo := &fakeCatloteRepo{
		configs: []domain.DiscountConfig{{
			CatloteID: "CAT-01",
			D:         [4]float64{0.1, 0.1, 0.1, 0.1},
			E:         [4]float64{0.25, 0.25, 0.25, 0.25},
			P:         [4]float64{0.25, 0.25, 0.25, 0.25},
		}},
		rows: []domain.CatalogRow{{
			PartID:               "P-1",
			CatloteID:            "CAT-01",
			CurrentListPrice:     100,
			TaxMultiplier:        1.1,
			NetTaxFactor:         0.9,
			RegularAverageVolume: 10,
			PromoAverageVolume:   10,
		}},
	}
	svc := NewCatloteService(repo)

	configs, result, err := svc.LoadSimulation(context.Background(), []string{"CAT-01"})

	require.NoError(t, err)
	assert.Equal(t, []string{"CAT-01"}, repo.lotIDs)
	require.Len(t, configs, 1)
	require.Len(t, result.Rows, 1)
	assert.Equal(t, 110.0, result.Rows[0].PriceWithTax)
	assert.False(t, result.Rows[0].NewAlteration)
}

func TestLoadSimulationRepoError(t *testing.T) {
	svc := NewCatloteService(&fakeCatloteRepo{err: errors.New("no warehouse")})

	_, _, err := svc.LoadSimulation(context.Background(), nil)

	assert.ErrorContains(t, err, "no warehouse")
}
