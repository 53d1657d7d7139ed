package catlote

import "github.com/pricingdesk/pricing-console/internal/domain"

// calculateTotals sums the four tiers of every row into the card totals.
// Aggregate relative margins divide summed margin by summed net revenue and
// fall back to 0 when the working set has no net revenue.
func calculateTotals(rows []domain.CatalogRow) domain.Totals {
	var t domain.Totals
	var volRegular, volPromo float64

	for i := range rows {
		row := &rows[i]
		for tier := 0; tier < 4; tier++ {
			t.TotalGrossRegular += row.GrossRegular[tier]
			t.TotalGrossPromo += row.GrossPromo[tier]
			t.TotalNetRegular += row.NetRegular[tier]
			t.TotalNetPromo += row.NetPromo[tier]
			t.TotalMarginRegular += row.MarginRegular[tier]
			t.TotalMarginPromo += row.MarginPromo[tier]
		}
		volRegular += row.RegularAverageVolume
		volPromo += row.PromoAverageVolume
	}

	t.TotalVolumeRegular = int(volRegular)
	t.TotalVolumePromo = int(volPromo)

	if t.TotalNetRegular != 0 {
		t.TotalRelMarginRegular = t.TotalMarginRegular / t.TotalNetRegular
	}
	if t.TotalNetPromo != 0 {
		t.TotalRelMarginPromo = t.TotalMarginPromo / t.TotalNetPromo
	}

	return t
}
