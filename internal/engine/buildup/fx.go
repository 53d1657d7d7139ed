package buildup

import (
	"fmt"
	"strings"

	"github.com/pricingdesk/pricing-console/internal/domain"
)

// RateNotFoundError is the one intentionally fatal lookup in the system: a
// price waterfall built on a guessed FX rate is worse than stopping.
type RateNotFoundError struct {
	Currency string
	Year     int
	Month    int
}

func (e *RateNotFoundError) Error() string {
	return fmt.Sprintf("no exchange rate found for %s in year %d, month %d", e.Currency, e.Year, e.Month)
}

// MonthFromQuarter maps a quarter code to the first month of the quarter.
func MonthFromQuarter(quarter string) (int, error) {
	switch strings.ToUpper(strings.TrimSpace(quarter)) {
	case "Q1":
		return 1, nil
	case "Q2":
		return 4, nil
	case "Q3":
		return 7, nil
	case "Q4":
		return 10, nil
	default:
		return 0, fmt.Errorf("invalid quarter %q", quarter)
	}
}

// fetchRate finds the USD→currency rate for the given month and year.
func fetchRate(rows []domain.FxRate, currency string, month, year int) (float64, error) {
	currency = strings.TrimSpace(currency)
	for i := range rows {
		if strings.TrimSpace(rows[i].ToCurrency) == currency && rows[i].Year == year && rows[i].Month == month {
			return rows[i].Rate, nil
		}
	}
	return 0, &RateNotFoundError{Currency: currency, Year: year, Month: month}
}

// Rate converts the FX actuals into the multiplier applied to user-entered
// prices. The table quotes rates from USD, so the target currency determines
// which row (or pair of rows) to read:
//
//	BRL  -> USD row
//	USD  -> BRL row
//	JPY  -> (USD->JPY) / (USD->BRL)
func Rate(rows []domain.FxRate, currency string, month, year int) (float64, error) {
	switch strings.ToUpper(strings.TrimSpace(currency)) {
	case "BRL":
		return fetchRate(rows, "USD", month, year)
	case "USD":
		return fetchRate(rows, "BRL", month, year)
	case "JPY":
		usdToBRL, err := fetchRate(rows, "BRL", month, year)
		if err != nil {
			return 0, err
		}
		usdToJPY, err := fetchRate(rows, "JPY", month, year)
		if err != nil {
			return 0, err
		}
		return usdToJPY / usdToBRL, nil
	default:
		return 0, fmt.Errorf("unsupported currency %q", currency)
	}
}
