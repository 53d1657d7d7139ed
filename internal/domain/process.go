package domain

import (
	"fmt"
	"sort"
)

// Process identifies a warehouse-backed data source. The set is closed:
// unknown names are rejected with ErrUnknownProcess instead of failing deep
// inside a query builder.
type Process string

const (
	ProcessCatlote         Process = "catlote"
	ProcessCatloteProducts Process = "catlote_products"
	ProcessBuildup         Process = "buildup"
	ProcessBuildupFx       Process = "buildup_fx"

	ProcessCCZeroCost               Process = "zero_cost"
	ProcessCCNegativeCost           Process = "negative_cost"
	ProcessCCLowCostHighMargin      Process = "low_cost_high_margin"
	ProcessCCLowCostNegativeMargin  Process = "low_cost_negative_margin"
	ProcessCCLowCostZeroMargin      Process = "low_cost_zero_margin"
	ProcessCCLowCostHighSales       Process = "low_cost_high_sales"
	ProcessCCLowPriceNegativeMargin Process = "low_price_negative_margin"
	ProcessCCNegativeMarginOthers   Process = "negative_margin_and_others"
	ProcessCCPriceGM                Process = "price_gm"
	ProcessCCPriceResearch          Process = "price_research"
	ProcessCCUpdateCPC              Process = "update_cpc"
)

var processTables = map[Process]string{
	ProcessCatlote:         "pricing.d_catlote",
	ProcessCatloteProducts: "pricing.d_catlote_products",
	ProcessBuildup:         "pricing.de_para_buildup",
	ProcessBuildupFx:       "pricing.fx_actuals",

	ProcessCCZeroCost:               "pricing.cc_zero_cost",
	ProcessCCNegativeCost:           "pricing.cc_negative_cost",
	ProcessCCLowCostHighMargin:      "pricing.cc_low_cost_high_margin",
	ProcessCCLowCostNegativeMargin:  "pricing.cc_low_cost_negative_margin",
	ProcessCCLowCostZeroMargin:      "pricing.cc_low_cost_zero_margin",
	ProcessCCLowCostHighSales:       "pricing.cc_low_cost_high_sales",
	ProcessCCLowPriceNegativeMargin: "pricing.cc_low_price_negative_margin",
	ProcessCCNegativeMarginOthers:   "pricing.cc_negative_margin_and_others",
	ProcessCCPriceGM:                "pricing.cc_price_gm",
	ProcessCCPriceResearch:          "pricing.cc_price_research",
	ProcessCCUpdateCPC:              "pricing.cc_update_cpc",
}

// ErrUnknownProcess is returned when a process name is not in the registry.
type ErrUnknownProcess struct {
	Name string
}

func (e *ErrUnknownProcess) Error() string {
	return fmt.Sprintf("unknown process %q", e.Name)
}

// ParseProcess validates a process name against the registry.
func ParseProcess(name string) (Process, error) {
	p := Process(name)
	if _, ok := processTables[p]; !ok {
		return "", &ErrUnknownProcess{Name: name}
	}
	return p, nil
}

// Table returns the warehouse table backing the process.
func (p Process) Table() (string, error) {
	table, ok := processTables[p]
	if !ok {
		return "", &ErrUnknownProcess{Name: string(p)}
	}
	return table, nil
}

// CommandCenterProcesses lists the read-only command-center views in a
// stable order.
func CommandCenterProcesses() []Process {
	out := []Process{
		ProcessCCZeroCost,
		ProcessCCNegativeCost,
		ProcessCCLowCostHighMargin,
		ProcessCCLowCostNegativeMargin,
		ProcessCCLowCostZeroMargin,
		ProcessCCLowCostHighSales,
		ProcessCCLowPriceNegativeMargin,
		ProcessCCNegativeMarginOthers,
		ProcessCCPriceGM,
		ProcessCCPriceResearch,
		ProcessCCUpdateCPC,
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
