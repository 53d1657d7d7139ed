package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pricingdesk/pricing-console/internal/cache"
	"github.com/pricingdesk/pricing-console/internal/repository"
	"github.com/pricingdesk/pricing-console/internal/reshape"
)

const commandCenterCacheKey = "command_center:summary"

// CommandCenterSummary is the per-view card data: row count plus cost/margin
// aggregates. Views without the summed columns report 0.
type CommandCenterSummary struct {
	Process     string  `json:"process"`
	Rows        int     `json:"rows"`
	TotalCost   float64 `json:"total_cost"`
	TotalMargin float64 `json:"total_margin"`
	MarginRatio float64 `json:"margin_ratio"`
}

type CommandCenterService struct {
	repo  repository.CommandCenterRepository
	cache cache.Cache
	ttl   time.Duration
}

func NewCommandCenterService(repo repository.CommandCenterRepository, cacheImpl cache.Cache, ttl time.Duration) *CommandCenterService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoop()
	}
	return &CommandCenterService{repo: repo, cache: cacheImpl, ttl: ttl}
}

// Summary fetches all command-center views (through the cache) and reduces
// each to its card aggregates.
func (s *CommandCenterService) Summary(ctx context.Context) ([]CommandCenterSummary, error) {
	raw, err := s.cache.GetOrFetch(ctx, commandCenterCacheKey, s.ttl, func(ctx context.Context) ([]byte, error) {
		summaries, err := s.buildSummaries(ctx)
		if err != nil {
			return nil, err
		}
		return json.Marshal(summaries)
	})
	if err != nil {
		return nil, err
	}

	var summaries []CommandCenterSummary
	if err := json.Unmarshal(raw, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// Refresh drops the cached summary so the next read hits the warehouse.
func (s *CommandCenterService) Refresh(ctx context.Context) error {
	return s.cache.Invalidate(ctx, commandCenterCacheKey)
}

func (s *CommandCenterService) buildSummaries(ctx context.Context) ([]CommandCenterSummary, error) {
	frames, err := s.repo.FetchAll(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]CommandCenterSummary, 0, len(frames))
	for _, process := range sortedProcesses(frames) {
		frame := frames[process]
		summaries = append(summaries, CommandCenterSummary{
			Process:     string(process),
			Rows:        frame.Len(),
			TotalCost:   reshape.SumColumn(frame, "cost"),
			TotalMargin: reshape.SumColumn(frame, "margin"),
			MarginRatio: reshape.DivideSums(frame, "margin", "net_revenue"),
		})
	}
	return summaries, nil
}
