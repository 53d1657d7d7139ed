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

// seedBuildupFactors loads the wide buildup factor CSV: fixed buildup,
// quarter and formatted_year columns, every other column a factor
// percentage.
func seedBuildupFactors(c *cli.Context) error {
	db, err := openDB(c)
	if err != nil {
		return err
	}
	defer db.Close()

	table, err := domain.ProcessBuildup.Table()
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
	if _, err := columnIndex(header, []string{"buildup", "quarter", "formatted_year"}); err != nil {
		return err
	}

	columns := make([]string, len(header))
	placeholders := make([]string, len(header))
	for i, col := range header {
		columns[i] = strings.ToLower(strings.TrimSpace(col))
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		table, strings.Join(columns, ", "), strings.Join(placeholders, ", "))
	stmt, err := db.Prepare(query)
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

		args := make([]any, len(record))
		for i, raw := range record {
			raw = strings.TrimSpace(raw)
			switch columns[i] {
			case "buildup", "quarter", "formatted_year", "change_id":
				args[i] = raw
			default:
				// Empty factor cells load as 0 so downstream lookups
				// never see NULL.
				if raw == "" {
					args[i] = 0.0
					continue
				}
				value, err := strconv.ParseFloat(raw, 64)
				if err != nil {
					return fmt.Errorf("invalid value for %s in record %d: %w", columns[i], count+1, err)
				}
				args[i] = value
			}
		}

		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("failed to insert factor row: %w", err)
		}
		count++
	}

	log.Printf("loaded %d factor rows into %s", count, table)
	return nil
}
