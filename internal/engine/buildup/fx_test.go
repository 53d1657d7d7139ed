package buildup

import (
	"errors"
	"testing"

	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fxRows() []domain.FxRate {
	return []domain.FxRate{
		{ToCurrency: "USD ", Year: 2025, Month: 4, Rate: 5.2},
		{ToCurrency: "BRL", Year: 2025, Month: 4, Rate: 5.0},
		{ToCurrency: "JPY", Year: 2025, Month: 4, Rate: 150},
		{ToCurrency: "BRL", Year: 2025, Month: 7, Rate: 5.1},
	}
}

func TestRateBRL(t *testing.T) {
	rate, err := Rate(fxRows(), "BRL", 4, 2025)
	require.NoError(t, err)
	assert.Equal(t, 5.2, rate)
}

func TestRateUSD(t *testing.T) {
	rate, err := Rate(fxRows(), "usd", 4, 2025)
	require.NoError(t, err)
	assert.Equal(t, 5.0, rate)
}

func TestRateJPYCrossRate(t *testing.T) {
	rate, err := Rate(fxRows(), "JPY", 4, 2025)
	require.NoError(t, err)
	assert.InDelta(t, 30.0, rate, 1e-9)
}

func TestRateMissingRow(t *testing.T) {
	_, err := Rate(fxRows(), "BRL", 1, 2025)
	require.Error(t, err)

	var notFound *RateNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "USD", notFound.Currency)
	assert.Equal(t, 2025, notFound.Year)
	assert.Equal(t, 1, notFound.Month)
}

func TestRateJPYMissingLeg(t *testing.T) {
	rows := []domain.FxRate{{ToCurrency: "BRL", Year: 2025, Month: 4, Rate: 5.0}}

	_, err := Rate(rows, "JPY", 4, 2025)

	var notFound *RateNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "JPY", notFound.Currency)
}

func TestRateUnsupportedCurrency(t *testing.T) {
	_, err := Rate(fxRows(), "EUR", 4, 2025)
	require.Error(t, err)

	var notFound *RateNotFoundError
	assert.False(t, errors.As(err, &notFound))
}

func TestMonthFromQuarter(t *testing.T) {
	cases := map[string]int{"Q1": 1, "q2": 4, " Q3 ": 7, "Q4": 10}
	for quarter, want := range cases {
		month, err := MonthFromQuarter(quarter)
		require.NoError(t, err, quarter)
		assert.Equal(t, want, month, quarter)
	}

	_, err := MonthFromQuarter("Q5")
	assert.Error(t, err)
}
