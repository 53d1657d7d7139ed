package catlote

import (
	"math"

	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/rs/zerolog/log"
)

// Result is the output of one simulation pass: the enriched row set plus the
// aggregate card totals.
type Result struct {
	Rows   []domain.CatalogRow `json:"rows"`
	Totals domain.Totals       `json:"totals"`
}

// Calculate runs the catalog-discount simulation.
//
// With a nil patch every row is recomputed independently (rows only depend on
// their own fields and the matching discount config). With a patch only the
// named row is recomputed; the old value in the patch feeds the relative
// price delta, so single-cell edits are path-dependent on what was superseded.
func Calculate(configs []domain.DiscountConfig, rows []domain.CatalogRow, patch *domain.Patch) Result {
	out := make([]domain.CatalogRow, len(rows))
	copy(out, rows)

	if patch == nil {
		for i := range out {
			calculateRow(&out[i], configs, nil)
		}
	} else if patch.RowIndex < 0 || patch.RowIndex >= len(out) {
		log.Warn().Int("row_index", patch.RowIndex).Int("rows", len(out)).
			Msg("catlote: patch row index out of range, skipping recompute")
	} else {
		calculateRow(&out[patch.RowIndex], configs, patch)
	}

	return Result{Rows: out, Totals: calculateTotals(out)}
}

// calculateRow recomputes the derived fields of a single row in place.
func calculateRow(row *domain.CatalogRow, configs []domain.DiscountConfig, patch *domain.Patch) {
	cfg := matchConfig(configs, row.CatloteID)
	if cfg == nil {
		log.Warn().Str("catlote_id", row.CatloteID).Str("part_id", row.PartID).
			Msg("catlote: no discount config for lot, row left untouched")
		return
	}

	// Edits to columns outside the two mutable ones do not trigger a
	// recompute; the row passes through as-is.
	if patch != nil && patch.Field != domain.FieldUnitAverageCost && patch.Field != domain.FieldCurrentListPrice {
		return
	}

	cost := row.UnitAverageCost
	newPrice := row.CurrentListPrice
	oldPrice := newPrice

	if patch != nil {
		switch patch.Field {
		case domain.FieldUnitAverageCost:
			cost = patch.NewValue
			row.UnitAverageCost = round2(cost)
		case domain.FieldCurrentListPrice:
			newPrice = patch.NewValue
			oldPrice = patch.OldValue
			row.CurrentListPrice = round2(newPrice)
		}
		row.NewAlteration = true
		row.Status = "manual"
	}

	// 1. Price after taxes.
	priceWithTax := round2(newPrice * row.TaxMultiplier)

	// 2. Relative price delta against the superseded price.
	delta := 0.0
	if oldPrice != 0 {
		delta = round4(newPrice/oldPrice - 1)
	}

	// 3. Elasticity-adjusted volumes. A zero baseline stays zero whatever
	// the delta.
	newRegular := 0.0
	deltaVolRegular := 0.0
	if row.RegularAverageVolume != 0 {
		newRegular = row.RegularAverageVolume * math.Pow(1+delta, row.PriceElasticity)
		deltaVolRegular = newRegular/row.RegularAverageVolume - 1
	}
	regularFinal := math.Round(newRegular)

	newPromo := 0.0
	deltaVolPromo := 0.0
	if row.PromoAverageVolume != 0 {
		newPromo = row.PromoAverageVolume * math.Pow(1+delta, row.PriceElasticity)
		deltaVolPromo = newPromo/row.PromoAverageVolume - 1
	}
	promoFinal := math.Round(newPromo)

	row.RegularAverageVolume = regularFinal
	row.PromoAverageVolume = promoFinal
	row.DeltaVolumeRegular = round2(deltaVolRegular)
	row.DeltaVolumePromo = round2(deltaVolPromo)
	row.PriceWithTax = priceWithTax

	surcharge := row.DiscountSurcharge
	netFactor := row.NetTaxFactor

	// 4. Without-campaign tiers, weighted by the baseline participation
	// shares P1..P4.
	regularNet := priceWithTax * (1 - surcharge) * netFactor
	for i := 0; i < 4; i++ {
		row.GrossRegular[i] = round2(priceWithTax * (1 - surcharge) * cfg.P[i] * regularFinal)
		row.NetRegular[i] = round2(regularNet * cfg.P[i] * regularFinal)
		row.MarginRegular[i] = round2((regularNet - cost) * cfg.P[i] * regularFinal)
	}

	// 5. With-campaign tiers, weighted by the campaign participation
	// shares E1..E4 and marked up by the tier discounts D1..D4.
	for i := 0; i < 4; i++ {
		promoNet := priceWithTax * (1 + cfg.D[i]) * netFactor
		row.GrossPromo[i] = round2(priceWithTax * (1 + cfg.D[i]) * cfg.E[i] * promoFinal)
		row.NetPromo[i] = round2(promoNet * cfg.E[i] * promoFinal)
		row.MarginPromo[i] = round2((promoNet - cost) * cfg.E[i] * promoFinal)

		// 6. Per-tier relative margin, guarded against a zero effective
		// price.
		if promoNet == 0 {
			row.RelMarginPromo[i] = 0
		} else {
			row.RelMarginPromo[i] = round2((promoNet - cost) / promoNet)
		}
	}
}

func matchConfig(configs []domain.DiscountConfig, catloteID string) *domain.DiscountConfig {
	for i := range configs {
		if configs[i].CatloteID == catloteID {
			return &configs[i]
		}
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
