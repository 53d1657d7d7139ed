package service

import (
	"sort"

	"github.com/pricingdesk/pricing-console/internal/dataset"
	"github.com/pricingdesk/pricing-console/internal/domain"
)

func sortedProcesses(frames map[domain.Process]*dataset.Frame) []domain.Process {
	out := make([]domain.Process, 0, len(frames))
	for p := range frames {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
