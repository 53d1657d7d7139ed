package postgres

import (
	"context"
	"fmt"

	"github.com/pricingdesk/pricing-console/internal/dataset"
	"github.com/pricingdesk/pricing-console/internal/domain"
)

// Meta columns of the buildup factor table. Everything else is a factor.
var buildupMetaColumns = map[string]bool{
	"buildup":        true,
	"quarter":        true,
	"formatted_year": true,
	"year":           true,
	"custom":         true,
	"quarter_year":   true,
	"import_tax":     true,
	"change_id":      true,
}

type buildupRepository struct {
	db *DB
}

func NewBuildupRepository(db *DB) *buildupRepository {
	return &buildupRepository{db: db}
}

// GetFactorRows reads the wide warehouse table (one row per buildup-type
// code, one column per factor) into long-form rows. The column set is not
// fixed on our side, so rows are scanned generically and split into meta
// fields and factor values at this boundary.
func (r *buildupRepository) GetFactorRows(ctx context.Context, quarter, year string) ([]domain.BuildupFactorRow, error) {
	table, err := domain.ProcessBuildup.Table()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf("SELECT * FROM %s", table)
	args := []any{}
	if quarter != "" && year != "" {
		query += " WHERE quarter = $1 AND formatted_year = $2"
		args = append(args, quarter, year)
	}

	sqlRows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch buildup factors: %w", err)
	}
	defer sqlRows.Close()

	var out []domain.BuildupFactorRow
	for sqlRows.Next() {
		raw := dataset.Row{}
		if err := sqlRows.MapScan(raw); err != nil {
			return nil, fmt.Errorf("failed to scan buildup factor row: %w", err)
		}

		row := domain.BuildupFactorRow{
			Buildup:  raw.String("buildup"),
			Quarter:  raw.String("quarter"),
			Year:     raw.String("formatted_year"),
			ChangeID: raw.String("change_id"),
			Factors:  make(map[string]float64),
		}
		for col := range raw {
			if buildupMetaColumns[col] {
				continue
			}
			row.Factors[col] = raw.Float(col)
		}
		out = append(out, row)
	}
	return out, sqlRows.Err()
}
