package service

import (
	"context"
	"fmt"

	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/pricingdesk/pricing-console/internal/engine/buildup"
	"github.com/pricingdesk/pricing-console/internal/repository"
	"github.com/pricingdesk/pricing-console/internal/reshape"
)

// The FX conversion only applies on the base-price panel; the other panels
// simulate in local currency.
const basePriceTab = "base_price"

type BuildupService struct {
	factors repository.BuildupRepository
	fx      repository.FxRepository
}

func NewBuildupService(factors repository.BuildupRepository, fx repository.FxRepository) *BuildupService {
	return &BuildupService{factors: factors, fx: fx}
}

// BuildupSimRequest is one panel recompute.
type BuildupSimRequest struct {
	Tab      string         `json:"tab"`
	Code     string         `json:"buildup_code"`
	Quarter  string         `json:"quarter"`
	Year     string         `json:"year"`
	Currency string         `json:"currency"`
	Inputs   buildup.Inputs `json:"inputs"`
}

// BuildupSimResult carries the waterfall plus the FX rate that was applied.
type BuildupSimResult struct {
	Lines []domain.WaterfallLine `json:"lines"`
	Rate  float64                `json:"rate"`
}

// FactorTable loads and pivots the factor rows for one quarter/year.
func (s *BuildupService) FactorTable(ctx context.Context, quarter, year string) (*domain.FactorTable, error) {
	rows, err := s.factors.GetFactorRows(ctx, quarter, year)
	if err != nil {
		return nil, err
	}

	tables := reshape.Pivot(rows)
	if len(tables) == 0 {
		return nil, fmt.Errorf("no buildup factors for %s %s", quarter, year)
	}
	return &tables[0], nil
}

// Simulate recomputes the full waterfall for one (tab, buildup-code) pair.
// A missing FX rate is the one fatal lookup: the error propagates instead of
// being defaulted.
func (s *BuildupService) Simulate(ctx context.Context, req BuildupSimRequest) (BuildupSimResult, error) {
	rate := 1.0
	if req.Tab == basePriceTab {
		month, err := buildup.MonthFromQuarter(req.Quarter)
		if err != nil {
			return BuildupSimResult{}, err
		}

		year, err := parseYear(req.Year)
		if err != nil {
			return BuildupSimResult{}, err
		}

		fxRows, err := s.fx.GetRates(ctx)
		if err != nil {
			return BuildupSimResult{}, err
		}

		rate, err = buildup.Rate(fxRows, req.Currency, month, year)
		if err != nil {
			return BuildupSimResult{}, err
		}
	}

	table, err := s.FactorTable(ctx, req.Quarter, req.Year)
	if err != nil {
		return BuildupSimResult{}, err
	}

	return BuildupSimResult{
		Lines: buildup.Waterfall(table, req.Code, req.Inputs, rate),
		Rate:  rate,
	}, nil
}

func parseYear(s string) (int, error) {
	var year int
	if _, err := fmt.Sscanf(s, "%d", &year); err != nil {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return year, nil
}
