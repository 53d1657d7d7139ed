package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/pricingdesk/pricing-console/internal/domain"
)

type catloteRepository struct {
	db *DB
}

func NewCatloteRepository(db *DB) *catloteRepository {
	return &catloteRepository{db: db}
}

// lotRow is the flat scan target for the discount configuration table.
type lotRow struct {
	CatloteID string    `db:"catlote_id"`
	D1        float64   `db:"d1"`
	D2        float64   `db:"d2"`
	D3        float64   `db:"d3"`
	D4        float64   `db:"d4"`
	E1        float64   `db:"e1"`
	E2        float64   `db:"e2"`
	E3        float64   `db:"e3"`
	E4        float64   `db:"e4"`
	P1        float64   `db:"p1"`
	P2        float64   `db:"p2"`
	P3        float64   `db:"p3"`
	P4        float64   `db:"p4"`
	ValidFrom time.Time `db:"valid_from"`
	ValidTo   time.Time `db:"valid_to"`
}

func (r *catloteRepository) GetLots(ctx context.Context, lotIDs []string) ([]domain.DiscountConfig, error) {
	table, err := domain.ProcessCatlote.Table()
	if err != nil {
		return nil, err
	}

	query := fmt.Sprintf(`
		SELECT catlote_id,
		       COALESCE(d1, 0) AS d1, COALESCE(d2, 0) AS d2,
		       COALESCE(d3, 0) AS d3, COALESCE(d4, 0) AS d4,
		       COALESCE(e1, 0) AS e1, COALESCE(e2, 0) AS e2,
		       COALESCE(e3, 0) AS e3, COALESCE(e4, 0) AS e4,
		       COALESCE(p1, 0) AS p1, COALESCE(p2, 0) AS p2,
		       COALESCE(p3, 0) AS p3, COALESCE(p4, 0) AS p4,
		       valid_from, valid_to
		FROM %s
	`, table)

	var rows []lotRow
	if len(lotIDs) > 0 {
		query += " WHERE catlote_id = ANY($1)"
		err = r.db.SelectContext(ctx, &rows, query, pq.Array(lotIDs))
	} else {
		err = r.db.SelectContext(ctx, &rows, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catlote configs: %w", err)
	}

	configs := make([]domain.DiscountConfig, 0, len(rows))
	for _, row := range rows {
		configs = append(configs, domain.DiscountConfig{
			CatloteID: row.CatloteID,
			D:         [4]float64{row.D1, row.D2, row.D3, row.D4},
			E:         [4]float64{row.E1, row.E2, row.E3, row.E4},
			P:         [4]float64{row.P1, row.P2, row.P3, row.P4},
			ValidFrom: row.ValidFrom,
			ValidTo:   row.ValidTo,
		})
	}
	return configs, nil
}

func (r *catloteRepository) GetProducts(ctx context.Context, lotIDs []string) ([]domain.CatalogRow, error) {
	table, err := domain.ProcessCatloteProducts.Table()
	if err != nil {
		return nil, err
	}

	// NULL numerics coerce to 0 here so the engine always sees valid
	// numbers.
	query := fmt.Sprintf(`
		SELECT part_id, catlote_id,
		       COALESCE(supplier, '') AS supplier,
		       COALESCE(currency, '') AS currency,
		       COALESCE(unit_contract_cost, 0) AS unit_contract_cost,
		       COALESCE(unit_average_cost, 0) AS unit_average_cost,
		       COALESCE(current_list_price, 0) AS current_list_price,
		       COALESCE(regular_average_volume, 0) AS regular_average_volume,
		       COALESCE(promo_average_volume, 0) AS promo_average_volume,
		       COALESCE(tax_multiplier, 0) AS tax_multiplier,
		       COALESCE(discount_surcharge, 0) AS discount_surcharge,
		       COALESCE(net_tax_factor, 0) AS net_tax_factor,
		       COALESCE(price_elasticity, 0) AS price_elasticity,
		       COALESCE(status, '') AS status,
		       COALESCE(change_id, '') AS change_id
		FROM %s
	`, table)

	var products []domain.CatalogRow
	if len(lotIDs) > 0 {
		query += " WHERE catlote_id = ANY($1)"
		err = r.db.SelectContext(ctx, &products, query, pq.Array(lotIDs))
	} else {
		err = r.db.SelectContext(ctx, &products, query)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch catlote products: %w", err)
	}
	return products, nil
}
