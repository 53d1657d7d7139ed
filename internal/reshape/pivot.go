package reshape

import (
	"sort"
	"strings"

	"github.com/pricingdesk/pricing-console/internal/domain"
)

// Pivot reshapes the long-form buildup factor rows (one row per buildup-type
// code) into one FactorTable per (quarter, year, change-id) group: one entry
// per factor name, one column per uppercased code, codes sorted
// alphabetically behind the leading factor-name column.
//
// Duplicate (code, quarter, year) rows collapse first-value-wins, matching
// the upstream aggregation policy.
func Pivot(rows []domain.BuildupFactorRow) []domain.FactorTable {
	type groupKey struct {
		quarter, year, changeID string
	}

	var order []groupKey
	groups := make(map[groupKey]*domain.FactorTable)

	for i := range rows {
		row := &rows[i]
		key := groupKey{quarter: row.Quarter, year: row.Year, changeID: row.ChangeID}

		table, ok := groups[key]
		if !ok {
			table = &domain.FactorTable{
				Values:   make(map[string]map[string]float64),
				Quarter:  row.Quarter,
				Year:     row.Year,
				ChangeID: row.ChangeID,
			}
			groups[key] = table
			order = append(order, key)
		}

		code := strings.ToUpper(row.Buildup)
		if _, dup := table.Values[code]; dup {
			// First value wins.
			continue
		}

		values := make(map[string]float64, len(row.Factors))
		for factor, v := range row.Factors {
			values[factor] = v
			if !contains(table.Factors, factor) {
				table.Factors = append(table.Factors, factor)
			}
		}
		table.Values[code] = values
		table.Codes = append(table.Codes, code)
	}

	out := make([]domain.FactorTable, 0, len(order))
	for _, key := range order {
		table := groups[key]
		sort.Strings(table.Codes)
		sort.Strings(table.Factors)
		out = append(out, *table)
	}
	return out
}

// Unpivot is the structural inverse of Pivot: codes are lowercased back and
// each becomes one long-form row again. Unpivot(Pivot(x)) reproduces x up to
// row/column ordering for inputs free of duplicate keys.
func Unpivot(tables []domain.FactorTable) []domain.BuildupFactorRow {
	var out []domain.BuildupFactorRow
	for i := range tables {
		table := &tables[i]
		for _, code := range table.Codes {
			values := table.Values[code]
			factors := make(map[string]float64, len(values))
			for factor, v := range values {
				factors[factor] = v
			}
			out = append(out, domain.BuildupFactorRow{
				Buildup:  strings.ToLower(code),
				Quarter:  table.Quarter,
				Year:     table.Year,
				ChangeID: table.ChangeID,
				Factors:  factors,
			})
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
