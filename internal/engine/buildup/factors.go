package buildup

import (
	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/rs/zerolog/log"
)

// FactorValue reads one percentage from the pivoted factor table. Any miss
// (unknown factor, unknown code, nil table) logs a diagnostic and yields 0:
// a partial simulation is more useful mid-edit than a failed one.
func FactorValue(table *domain.FactorTable, factor, code string) float64 {
	if table == nil {
		log.Warn().Str("factor", factor).Str("buildup", code).
			Msg("buildup: factor table not loaded, defaulting to 0")
		return 0
	}

	byFactor, ok := table.Values[code]
	if !ok {
		log.Warn().Str("factor", factor).Str("buildup", code).
			Msg("buildup: unknown buildup code, defaulting to 0")
		return 0
	}

	value, ok := byFactor[factor]
	if !ok {
		log.Warn().Str("factor", factor).Str("buildup", code).
			Msg("buildup: unknown factor, defaulting to 0")
		return 0
	}

	return value
}
