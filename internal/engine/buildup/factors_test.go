package buildup

import (
	"testing"

	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestFactorValue(t *testing.T) {
	table := &domain.FactorTable{
		Codes: []string{"ACC CLC"},
		Values: map[string]map[string]float64{
			"ACC CLC": {"icms_avg": -0.18},
		},
	}

	assert.Equal(t, -0.18, FactorValue(table, "icms_avg", "ACC CLC"))
	assert.Equal(t, 0.0, FactorValue(table, "pis", "ACC CLC"))
	assert.Equal(t, 0.0, FactorValue(table, "icms_avg", "NOPE"))
	assert.Equal(t, 0.0, FactorValue(nil, "icms_avg", "ACC CLC"))
}
