package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/pricingdesk/pricing-console/internal/domain"
	"github.com/urfave/cli/v2"
)

// seedFxRates loads a CSV with header to_currency,rate_year,rate_month,rate
// into the FX actuals table.
func seedFxRates(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	table, err := domain.ProcessBuildupFx.Table()
	if err != nil {
		return err
	}

	f, err := os.Open(c.String("csv"))
	if err != nil {
		return fmt.Errorf("failed to open csv: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("failed to read csv header: %w", err)
	}
	idx, err := columnIndex(header, []string{"to_currency", "rate_year", "rate_month", "rate"})
	if err != nil {
		return err
	}

	stmt, err := db.Prepare(fmt.Sprintf(
		"INSERT INTO %s (to_currency, rate_year, rate_month, rate) VALUES ($1, $2, $3, $4)", table))
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read csv record: %w", err)
		}

		year, err := strconv.Atoi(strings.TrimSpace(record[idx["rate_year"]]))
		if err != nil {
			return fmt.Errorf("invalid rate_year in record %d: %w", count+1, err)
		}
		month, err := strconv.Atoi(strings.TrimSpace(record[idx["rate_month"]]))
		if err != nil {
			return fmt.Errorf("invalid rate_month in record %d: %w", count+1, err)
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(record[idx["rate"]]), 64)
		if err != nil {
			return fmt.Errorf("invalid rate in record %d: %w", count+1, err)
		}

		if _, err := stmt.Exec(strings.TrimSpace(record[idx["to_currency"]]), year, month, rate); err != nil {
			return fmt.Errorf("failed to insert fx rate: %w", err)
		}
		count++
	}

	log.Printf("loaded %d fx rates into %s", count, table)
	return nil
}

// columnIndex maps required column names to their positions in the header.
func columnIndex(header, required []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, col := range header {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	for _, col := range required {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("csv is missing required column %q", col)
		}
	}
	return idx, nil
}
