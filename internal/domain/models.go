package domain

import "time"

// Mutable catalog row fields. Only these two may arrive in a Patch and
// trigger a recompute of the row's derived values.
const (
	FieldUnitAverageCost  = "unit_average_cost"
	FieldCurrentListPrice = "current_list_price"
)

// CatalogRow is one product/part inside a catalog lot. The tier slices
// (index 0..3 = tier L1..L4) are derived by the catlote engine and must
// never be mutated independently of the base fields.
type CatalogRow struct {
	PartID    string `json:"part_id" db:"part_id"`
	CatloteID string `json:"catlote_id" db:"catlote_id"`
	Supplier  string `json:"supplier" db:"supplier"`
	Currency  string `json:"currency" db:"currency"`

	UnitContractCost float64 `json:"unit_contract_cost" db:"unit_contract_cost"`
	UnitAverageCost  float64 `json:"unit_average_cost" db:"unit_average_cost"`
	CurrentListPrice float64 `json:"current_list_price" db:"current_list_price"`

	RegularAverageVolume float64 `json:"regular_average_volume" db:"regular_average_volume"`
	PromoAverageVolume   float64 `json:"promo_average_volume" db:"promo_average_volume"`

	TaxMultiplier     float64 `json:"tax_multiplier" db:"tax_multiplier"`
	DiscountSurcharge float64 `json:"discount_surcharge" db:"discount_surcharge"`
	NetTaxFactor      float64 `json:"net_tax_factor" db:"net_tax_factor"`
	PriceElasticity   float64 `json:"price_elasticity" db:"price_elasticity"`

	// Derived fields, recomputed by the engine.
	PriceWithTax       float64    `json:"price_with_tax" db:"-"`
	DeltaVolumeRegular float64    `json:"delta_volume_regular" db:"-"`
	DeltaVolumePromo   float64    `json:"delta_volume_promo" db:"-"`
	GrossRegular       [4]float64 `json:"gross_sc" db:"-"`
	NetRegular         [4]float64 `json:"net_sc" db:"-"`
	MarginRegular      [4]float64 `json:"margin_sc" db:"-"`
	GrossPromo         [4]float64 `json:"gross_cc" db:"-"`
	NetPromo           [4]float64 `json:"net_cc" db:"-"`
	MarginPromo        [4]float64 `json:"margin_cc" db:"-"`
	RelMarginPromo     [4]float64 `json:"margin_rel_cc" db:"-"`

	// Approval bookkeeping. NewAlteration marks rows the user edited so the
	// approval payload can be filtered down to them.
	NewAlteration bool   `json:"new_alteration" db:"-"`
	Status        string `json:"status" db:"status"`
	ChangeID      string `json:"change_id" db:"change_id"`
}

// DiscountConfig is the user-edited discount/participation set for one
// catalog lot. D and E are the "with campaign" discounts and participation
// shares, P the read-only "without campaign" baseline shares.
type DiscountConfig struct {
	CatloteID string     `json:"catlote_id" db:"catlote_id"`
	D         [4]float64 `json:"d" db:"-"`
	E         [4]float64 `json:"e" db:"-"`
	P         [4]float64 `json:"p" db:"-"`
	ValidFrom time.Time  `json:"valid_from" db:"valid_from"`
	ValidTo   time.Time  `json:"valid_to" db:"valid_to"`
}

// Totals is the aggregate card set over the current working set of rows.
// Recomputed on demand, never stored.
type Totals struct {
	TotalGrossRegular     float64 `json:"total_gross_sc"`
	TotalGrossPromo       float64 `json:"total_gross_cc"`
	TotalNetRegular       float64 `json:"total_net_sc"`
	TotalNetPromo         float64 `json:"total_net_cc"`
	TotalMarginRegular    float64 `json:"total_margin_sc"`
	TotalMarginPromo      float64 `json:"total_margin_cc"`
	TotalVolumeRegular    int     `json:"total_volume_sc"`
	TotalVolumePromo      int     `json:"total_volume_cc"`
	TotalRelMarginRegular float64 `json:"total_margin_rel_sc"`
	TotalRelMarginPromo   float64 `json:"total_margin_rel_cc"`
}

// Patch describes a single edited cell. OldValue must carry the superseded
// value: the engine derives the relative price delta from NewValue/OldValue,
// not from a fixed baseline.
type Patch struct {
	RowIndex int     `json:"row_index"`
	Field    string  `json:"field"`
	OldValue float64 `json:"old_value"`
	NewValue float64 `json:"new_value"`
}

// BuildupFactorRow is the long-form warehouse shape of the buildup factor
// table: one row per buildup-type code with a value per named factor.
type BuildupFactorRow struct {
	Buildup  string             `json:"buildup"`
	Quarter  string             `json:"quarter"`
	Year     string             `json:"formatted_year"`
	ChangeID string             `json:"change_id,omitempty"`
	Factors  map[string]float64 `json:"factors"`
}

// FactorTable is the pivoted wide form: one row per factor name, one column
// per (uppercased) buildup-type code.
type FactorTable struct {
	Factors  []string                      `json:"buildup_factors"`
	Codes    []string                      `json:"codes"`
	Values   map[string]map[string]float64 `json:"values"` // code -> factor -> value
	Quarter  string                        `json:"quarter"`
	Year     string                        `json:"formatted_year"`
	ChangeID string                        `json:"change_id,omitempty"`
}

// WaterfallLine is one named value of the buildup simulation output. Order
// matters for display, so the engine returns an ordered slice.
type WaterfallLine struct {
	Field string  `json:"field"`
	Value float64 `json:"value"`
}

// FxRate is one row of the currency actuals table. Rates are quoted from USD
// to the target currency.
type FxRate struct {
	ToCurrency string  `json:"to_currency" db:"to_currency"`
	Year       int     `json:"rate_year" db:"rate_year"`
	Month      int     `json:"rate_month" db:"rate_month"`
	Rate       float64 `json:"rate" db:"rate"`
}
