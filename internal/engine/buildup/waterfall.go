package buildup

import (
	"math"

	"github.com/pricingdesk/pricing-console/internal/domain"
)

// Inputs are the free-form user entries of one simulation panel. Percentage
// fields are fractions (the HTTP layer divides whole percents by 100 before
// calling the engine).
type Inputs struct {
	PriceZRSD026          float64 `json:"price_zrsd026"`
	ProductPricePISCOFINS float64 `json:"product_price_pis_cofins"`
	DealerCodePct         float64 `json:"dealer_code_pct"`
	ICMSSTPct             float64 `json:"icms_st_pct"`
	MVAPct                float64 `json:"mva_pct"`
	IPIPct                float64 `json:"ipi_pct"`
	IPIMaterialCostPct    float64 `json:"ipi_material_cost_pct"`
	ICMSMaterialCostPct   float64 `json:"icms_material_cost_pct"`
}

// Waterfall computes the full cost-buildup breakdown for one buildup-type
// code. Every call is a full recompute: there is no incremental mode and no
// state shared between panels beyond the factor table and the FX rate.
func Waterfall(factors *domain.FactorTable, code string, in Inputs, fxRate float64) []domain.WaterfallLine {
	basePrice := in.PriceZRSD026 * fxRate

	icmsAvgPct := FactorValue(factors, "icms_avg", code)
	pisPct := FactorValue(factors, "pis", code)
	cofinsPct := FactorValue(factors, "cofins", code)
	warrantyPartsPct := FactorValue(factors, "warranty_parts", code)
	warrantyCarsPct := FactorValue(factors, "warranty_cars", code)
	bonusPct := FactorValue(factors, "bonus", code)
	regionalMarketingPct := FactorValue(factors, "regional_marketing", code)
	floorPlanPct := FactorValue(factors, "floor_plan", code)
	partReturnPct := FactorValue(factors, "part_return", code)
	otherExpensesPct := FactorValue(factors, "other_expenses", code)
	freightInPct := FactorValue(factors, "freight_in", code)
	freightOutPct := FactorValue(factors, "freight_out", code)
	warranty1PartsPct := FactorValue(factors, "warranty_1_parts", code)
	warranty2CarsPct := FactorValue(factors, "warranty_2_cars", code)
	productServiceWarrantyPct := FactorValue(factors, "product_service_warranty", code)
	costAdjustmentPct := FactorValue(factors, "cost_adjustment", code)
	otherCostsPct := FactorValue(factors, "other_costs", code)
	structuralExpensesPct := FactorValue(factors, "structural_expenses", code)
	otherPct := FactorValue(factors, "other", code)

	// Ticket branch: public price, ICMS-ST split between manufacturer and
	// dealer, MVA markup.
	priceIPI := basePrice * (1 + in.IPIPct)
	publicPrice := basePrice / (1 - in.DealerCodePct)
	icmsSTManufacturer := basePrice * in.ICMSSTPct
	mvaPrice := priceIPI * (1 + in.MVAPct)
	icmsST := mvaPrice * in.ICMSSTPct
	icmsSTChargeDealer := icmsST - icmsSTManufacturer
	totalTicketManufacturer := priceIPI + icmsSTChargeDealer
	dealerCode := publicPrice - totalTicketManufacturer
	ipi := basePrice * in.IPIPct

	// Net Sales branch: base price plus the tax/expense line items, each a
	// factor percentage of the base price. Expense factors come in negative
	// from the warehouse.
	icmsAvg := basePrice * icmsAvgPct
	pisExcetoDSO := basePrice * pisPct
	cofinsExcetoDSO := basePrice * cofinsPct
	warrantyParts := basePrice * warrantyPartsPct
	warrantyCars := basePrice * warrantyCarsPct
	bonus := basePrice * bonusPct
	regionalMarketing := basePrice * regionalMarketingPct
	floorPlan := basePrice * floorPlanPct
	partReturn := basePrice * partReturnPct
	otherExpenses := basePrice * otherExpensesPct

	netSales := basePrice + icmsAvg + pisExcetoDSO + cofinsExcetoDSO + warrantyParts +
		warrantyCars + bonus + regionalMarketing + floorPlan + partReturn + otherExpenses

	percentageOfGS := ratio(netSales, basePrice)

	// Material cost branch: built from the separate product-price input,
	// stripped of PIS/COFINS and grossed back up through ICMS before IPI.
	productPrice := in.ProductPricePISCOFINS * fxRate
	pis := productPrice * pisPct
	cofins := productPrice * cofinsPct
	basePriceNetCost := productPrice - pis - cofins
	priceWithoutIPI := basePriceNetCost / (1 - in.ICMSMaterialCostPct)
	materialCostIPI := priceWithoutIPI * in.IPIMaterialCostPct
	materialCost := basePriceNetCost + materialCostIPI
	materialCostAvg := -materialCost

	freightIn := basePrice * freightInPct
	freightOut := basePrice * freightOutPct
	warranty1Parts := basePrice * warranty1PartsPct
	warranty2Cars := basePrice * warranty2CarsPct
	productServiceWarranty := basePrice * productServiceWarrantyPct
	costAdjustment := basePrice * costAdjustmentPct
	otherCosts := basePrice * otherCostsPct

	totalCosts := materialCostAvg + freightIn + freightOut + warranty1Parts + warranty2Cars +
		productServiceWarranty + costAdjustment + otherCosts

	contributionMargin := netSales + totalCosts
	percentageOfNS := ratio(contributionMargin, netSales)

	structuralExpenses := basePrice * structuralExpensesPct
	other := basePrice * otherPct
	totalExpenses := structuralExpenses + other

	ebit := contributionMargin - totalExpenses
	percentageOfNSEBIT := ratio(ebit, netSales)

	return []domain.WaterfallLine{
		{Field: "Public Price", Value: round2(publicPrice)},
		{Field: "Dealer Code", Value: round2(dealerCode)},
		{Field: "Total Ticket Manufacturer", Value: round2(totalTicketManufacturer)},
		{Field: "ICMS ST", Value: round2(icmsST)},
		{Field: "ICMS (GM+Manufacturer)", Value: round2(icmsSTManufacturer)},
		{Field: "ICMS ST (Charge Dealer)", Value: round2(icmsSTChargeDealer)},
		{Field: "MVA + Price", Value: round2(mvaPrice)},
		{Field: "Price + IPI", Value: round2(priceIPI)},
		{Field: "IPI", Value: round2(ipi)},
		{Field: "Price (ZRSD026)", Value: round2(basePrice)},
		{Field: "ICMS", Value: round2(icmsAvg)},
		{Field: "PIS (AVG)", Value: round2(pisExcetoDSO)},
		{Field: "Cofins (AVG)", Value: round2(cofinsExcetoDSO)},
		{Field: "Warranty (Parts)", Value: round2(warrantyParts)},
		{Field: "Warranty (Cars)", Value: round2(warrantyCars)},
		{Field: "Bonus", Value: round2(bonus)},
		{Field: "Regional Marketing", Value: round2(regionalMarketing)},
		{Field: "Floor Plan", Value: round2(floorPlan)},
		{Field: "Part Return/Autogiro/Anom", Value: round2(partReturn)},
		{Field: "Other Expenses", Value: round2(otherExpenses)},
		{Field: "Net Sales", Value: round2(netSales)},
		{Field: "% of GS", Value: round2(percentageOfGS)},
		{Field: "Material Cost/ Avg Mt Cost", Value: round2(materialCostAvg)},
		{Field: "Freight In", Value: round2(freightIn)},
		{Field: "Freight Out", Value: round2(freightOut)},
		{Field: "Warranty 1 (Parts)", Value: round2(warranty1Parts)},
		{Field: "Warranty 2 (Cars)", Value: round2(warranty2Cars)},
		{Field: "Product Service Warranty", Value: round2(productServiceWarranty)},
		{Field: "Package", Value: 0},
		{Field: "Cost Adjustment", Value: round2(costAdjustment)},
		{Field: "Other Costs", Value: round2(otherCosts)},
		{Field: "Total Costs", Value: round2(totalCosts)},
		{Field: "Contribution Margin", Value: round2(contributionMargin)},
		{Field: "% of NS", Value: round2(percentageOfNS)},
		{Field: "Structural Expenses", Value: round2(structuralExpenses)},
		{Field: "Other", Value: round2(other)},
		{Field: "Total Expenses", Value: round2(totalExpenses)},
		{Field: "EBIT", Value: round2(ebit)},
		{Field: "% of NS EBIT", Value: round2(percentageOfNSEBIT)},
	}
}

// ratio guards every percentage output against a zero denominator.
func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
