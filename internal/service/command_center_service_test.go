package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pricingdesk/pricing-console/internal/dataset"
	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCommandCenterRepo struct {
	frames map[domain.Process]*dataset.Frame
	err    error
	calls  int
}

func (f *fakeCommandCenterRepo) FetchAll(context.Context) (map[domain.Process]*dataset.Frame, error) {
	f.calls++
	return f.frames, f.err
}

func TestCommandCenterSummary(t *testing.T) {
	repo := &fakeCommandCenterRepo{frames: map[domain.Process]*dataset.Frame{
		domain.ProcessCCZeroCost: {
			Columns: []string{"cost", "margin", "net_revenue"},
			Rows: []dataset.Row{
				{"cost": 0.0, "margin": 5.0, "net_revenue": 25.0},
				{"cost": 0.0, "margin": 5.0, "net_revenue": 25.0},
			},
		},
		domain.ProcessCCPriceResearch: {
			Columns: []string{"part_id"},
			Rows:    []dataset.Row{{"part_id": "A"}},
		},
	}}
	svc := NewCommandCenterService(repo, nil, time.Minute)

	summaries, err := svc.Summary(context.Background())

	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Processes come back sorted by name.
	assert.Equal(t, "price_research", summaries[0].Process)
	assert.Equal(t, 1, summaries[0].Rows)
	assert.Equal(t, 0.0, summaries[0].MarginRatio)

	assert.Equal(t, "zero_cost", summaries[1].Process)
	assert.Equal(t, 2, summaries[1].Rows)
	assert.Equal(t, 0.0, summaries[1].TotalCost)
	assert.Equal(t, 10.0, summaries[1].TotalMargin)
	assert.Equal(t, 0.2, summaries[1].MarginRatio)
}

func TestCommandCenterSummaryRepoError(t *testing.T) {
	repo := &fakeCommandCenterRepo{err: errors.New("warehouse down")}
	svc := NewCommandCenterService(repo, nil, time.Minute)

	_, err := svc.Summary(context.Background())

	assert.ErrorContains(t, err, "warehouse down")
}

func TestCommandCenterRefresh(t *testing.T) {
	repo := &fakeCommandCenterRepo{frames: map[domain.Process]*dataset.Frame{}}
	svc := NewCommandCenterService(repo, nil, time.Minute)

	require.NoError(t, svc.Refresh(context.Background()))

	// The noop cache always fetches: two reads, two repo calls.
	_, err := svc.Summary(context.Background())
	require.NoError(t, err)
	_, err = svc.Summary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, repo.calls)
}
