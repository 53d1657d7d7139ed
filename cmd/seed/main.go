package main

import (
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func newDBURLFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:     "db-url",
		Usage:    "Warehouse connection string",
		Required: true,
		EnvVars:  []string{"DATABASE_URL"},
	}
}

func openDB(c *cli.Context) (*sql.DB, error) {
	db, err := sql.Open("pgx", c.String("db-url"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping warehouse: %w", err)
	}
	return db, nil
}

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env file: %v", err)
	}

	app := &cli.App{
		Name:  "seed",
		Usage: "Load pricing reference tables into the warehouse",
		Commands: []*cli.Command{
			{
				Name:  "fx",
				Usage: "Load FX actuals from a CSV file",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:     "csv",
						Usage:    "Path to the FX actuals CSV",
						Required: true,
					},
				},
				Action: seedFxRates,
			},
			{
				Name:  "factors",
				Usage: "Load buildup factors from a CSV file",
				Flags: []cli.Flag{
					newDBURLFlag(),
					&cli.StringFlag{
						Name:     "csv",
						Usage:    "Path to the buildup factor CSV",
						Required: true,
					},
				},
				Action: seedBuildupFactors,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
