// Command ingest fetches the raw observation table from Postgres and saves
// it as the CSV file the dashboard loads.
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"bikerental/adapters/excel"
	"bikerental/adapters/postgres"
	"bikerental/internal"
	"bikerental/internal/config"
)

func main() {
	out := flag.String("out", "", "output CSV path (defaults to DATA_FILE)")
	timeout := flag.Duration("timeout", time.Minute, "fetch timeout")
	flag.Parse()

	_ = godotenv.Load()
	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration failed: %v", err)
		os.Exit(1)
	}
	if cfg.Database.URL == "" {
		logger.Error("DATABASE_URL is required for ingestion")
		os.Exit(1)
	}

	target := *out
	if target == "" {
		target = cfg.Data.File
	}

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		logger.Error("database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	logger.Info("fetching observations from database")
	records, err := postgres.NewObservationRepository(db).Load(ctx)
	if err != nil {
		logger.Error("fetch failed: %v", err)
		os.Exit(1)
	}

	if err := excel.NewCSVWriter(target).Save(ctx, records); err != nil {
		logger.Error("save failed: %v", err)
		os.Exit(1)
	}
	logger.Info("saved %d records to %s", len(records), target)
}
