package catlote

import (
	"testing"

	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseRow() domain.CatalogRow {
	return domain.CatalogRow{
		PartID:               "P-1001",
		CatloteID:            "CAT-01",
		UnitAverageCost:      50,
		CurrentListPrice:     100,
		RegularAverageVolume: 200,
		PromoAverageVolume:   100,
		TaxMultiplier:        1.1,
		DiscountSurcharge:    0.1,
		NetTaxFactor:         0.9,
		PriceElasticity:      -2,
	}
}

func baseConfig() domain.DiscountConfig {
	return domain.DiscountConfig{
		CatloteID: "CAT-01",
		D:         [4]float64{0.1, 0.15, 0.2, 0.25},
		E:         [4]float64{0.5, 0.3, 0.15, 0.05},
		P:         [4]float64{0.25, 0.25, 0.25, 0.25},
	}
}

func TestCalculateFullRecomputeIsIdempotent(t *testing.T) {
	configs := []domain.DiscountConfig{baseConfig()}
	rows := []domain.CatalogRow{baseRow(), baseRow()}
	rows[1].PartID = "P-1002"
	rows[1].RegularAverageVolume = 165.4

	first := Calculate(configs, rows, nil)
	second := Calculate(configs, first.Rows, nil)

	require.Equal(t, first.Rows, second.Rows)
	require.Equal(t, first.Totals, second.Totals)
}

func TestCalculateFullRecomputeKeepsBaselineVolumes(t *testing.T) {
	configs := []domain.DiscountConfig{baseConfig()}
	result := Calculate(configs, []domain.CatalogRow{baseRow()}, nil)

	// No price change means a zero delta: volumes stay at their baselines.
	row := result.Rows[0]
	assert.Equal(t, 200.0, row.RegularAverageVolume)
	assert.Equal(t, 100.0, row.PromoAverageVolume)
	assert.Equal(t, 0.0, row.DeltaVolumeRegular)
}

func TestCalculatePriceEditScenario(t *testing.T) {
	configs := []domain.DiscountConfig{baseConfig()}
	rows := []domain.CatalogRow{baseRow()}

	result := Calculate(configs, rows, &domain.Patch{
		RowIndex: 0,
		Field:    domain.FieldCurrentListPrice,
		OldValue: 100,
		NewValue: 110,
	})

	row := result.Rows[0]
	assert.Equal(t, 110.0, row.CurrentListPrice)
	assert.Equal(t, 121.0, row.PriceWithTax)

	// 200 * 1.10^-2 = 165.29, stored as a whole unit count.
	assert.Equal(t, 165.0, row.RegularAverageVolume)
	assert.Equal(t, 83.0, row.PromoAverageVolume)
	assert.Equal(t, -0.17, row.DeltaVolumeRegular)

	// Tier 1 with campaign: 121 * 1.1 * 0.5 * 83.
	assert.InDelta(t, 5523.65, row.GrossPromo[0], 0.01)
	assert.InDelta(t, 4971.29, row.NetPromo[0], 0.01)
	assert.InDelta(t, 2896.29, row.MarginPromo[0], 0.01)

	// Tier 1 without campaign: 121 * 0.9 * 0.25 * 165.
	assert.InDelta(t, 4492.13, row.GrossRegular[0], 0.01)

	// Relative margin tier 1: (121*1.1*0.9 - 50) / (121*1.1*0.9).
	assert.InDelta(t, 0.58, row.RelMarginPromo[0], 0.001)

	assert.True(t, row.NewAlteration)
	assert.Equal(t, "manual", row.Status)
}

func TestCalculatePatchOnlyTouchesTargetRow(t *testing.T) {
	configs := []domain.DiscountConfig{baseConfig()}
	rows := []domain.CatalogRow{baseRow(), baseRow()}
	rows[1].PartID = "P-1002"

	result := Calculate(configs, rows, &domain.Patch{
		RowIndex: 0,
		Field:    domain.FieldCurrentListPrice,
		OldValue: 100,
		NewValue: 110,
	})

	require.Len(t, result.Rows, 2)
	assert.True(t, result.Rows[0].NewAlteration)

	// The untouched row comes back exactly as sent.
	assert.Equal(t, rows[1], result.Rows[1])
}

func TestCalculateSequentialCostEditsMatchFullRecompute(t *testing.T) {
	configs := []domain.DiscountConfig{baseConfig()}

	rows := make([]domain.CatalogRow, 3)
	newCosts := []float64{42, 55.5, 61.25}
	for i := range rows {
		rows[i] = baseRow()
		rows[i].PartID = string(rune('A' + i))
	}

	// Path A: one cost edit per row, applied sequentially.
	patched := rows
	for i, cost := range newCosts {
		result := Calculate(configs, patched, &domain.Patch{
			RowIndex: i,
			Field:    domain.FieldUnitAverageCost,
			OldValue: patched[i].UnitAverageCost,
			NewValue: cost,
		})
		patched = result.Rows
	}

	// Path B: the same final costs applied up front, one full recompute.
	full := make([]domain.CatalogRow, 3)
	for i := range full {
		full[i] = baseRow()
		full[i].PartID = string(rune('A' + i))
		full[i].UnitAverageCost = newCosts[i]
	}
	fullResult := Calculate(configs, full, nil)

	for i := range patched {
		assert.Equal(t, fullResult.Rows[i].MarginRegular, patched[i].MarginRegular, "row %d", i)
		assert.Equal(t, fullResult.Rows[i].MarginPromo, patched[i].MarginPromo, "row %d", i)
		assert.Equal(t, fullResult.Rows[i].RelMarginPromo, patched[i].RelMarginPromo, "row %d", i)
		assert.Equal(t, fullResult.Rows[i].NetPromo, patched[i].NetPromo, "row %d", i)
	}
	assert.Equal(t, fullResult.Totals, Calculate(configs, patched, nil).Totals)
}

func TestCalculateZeroVolumeStaysZero(t *testing.T) {
	configs := []domain.DiscountConfig{baseConfig()}
	row := baseRow()
	row.RegularAverageVolume = 0

	result := Calculate(configs, []domain.CatalogRow{row}, &domain.Patch{
		RowIndex: 0,
		Field:    domain.FieldCurrentListPrice,
		OldValue: 100,
		NewValue: 250,
	})

	out := result.Rows[0]
	assert.Equal(t, 0.0, out.RegularAverageVolume)
	assert.Equal(t, 0.0, out.DeltaVolumeRegular)
	for i := 0; i < 4; i++ {
		assert.Equal(t, 0.0, out.GrossRegular[i])
		assert.Equal(t, 0.0, out.MarginRegular[i])
	}
}

func TestCalculateZeroDenominatorRelativeMargin(t *testing.T) {
	cfg := baseConfig()
	// (1 + D[i]) == 0 zeroes the effective price on every tier.
	cfg.D = [4]float64{-1, -1, -1, -1}
	row := baseRow()

	result := Calculate([]domain.DiscountConfig{cfg}, []domain.CatalogRow{row}, nil)

	for i := 0; i < 4; i++ {
		assert.Equal(t, 0.0, result.Rows[0].RelMarginPromo[i], "tier %d", i+1)
	}
}

func TestCalculateZeroOldPriceGivesZeroDelta(t *testing.T) {
	configs := []domain.DiscountConfig{baseConfig()}
	row := baseRow()

	result := Calculate(configs, []domain.CatalogRow{row}, &domain.Patch{
		RowIndex: 0,
		Field:    domain.FieldCurrentListPrice,
		OldValue: 0,
		NewValue: 120,
	})

	// Delta guards against the zero old price: volumes stay put.
	assert.Equal(t, 200.0, result.Rows[0].RegularAverageVolume)
}

func TestCalculateUnmatchedLotPassesThrough(t *testing.T) {
	configs := []domain.DiscountConfig{baseConfig()}
	row := baseRow()
	row.CatloteID = "CAT-99"

	result := Calculate(configs, []domain.CatalogRow{row}, nil)

	require.Len(t, result.Rows, 1)
	assert.Equal(t, row, result.Rows[0])
}

func TestCalculateNonMutableFieldIsNoOp(t *testing.T) {
	configs := []domain.DiscountConfig{baseConfig()}
	row := baseRow()

	result := Calculate(configs, []domain.CatalogRow{row}, &domain.Patch{
		RowIndex: 0,
		Field:    "supplier",
		OldValue: 0,
		NewValue: 1,
	})

	// Read-only columns do not trigger a recompute or a changed marker.
	assert.Equal(t, row, result.Rows[0])
	assert.False(t, result.Rows[0].NewAlteration)
}

func TestCalculatePatchIndexOutOfRange(t *testing.T) {
	configs := []domain.DiscountConfig{baseConfig()}
	rows := []domain.CatalogRow{baseRow()}

	result := Calculate(configs, rows, &domain.Patch{
		RowIndex: 5,
		Field:    domain.FieldCurrentListPrice,
		OldValue: 100,
		NewValue: 110,
	})

	assert.Equal(t, rows[0], result.Rows[0])
}

func TestCalculateInputRowsAreNotMutated(t *testing.T) {
	configs := []domain.DiscountConfig{baseConfig()}
	rows := []domain.CatalogRow{baseRow()}
	snapshot := rows[0]

	Calculate(configs, rows, &domain.Patch{
		RowIndex: 0,
		Field:    domain.FieldCurrentListPrice,
		OldValue: 100,
		NewValue: 110,
	})

	assert.Equal(t, snapshot, rows[0])
}
