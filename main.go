package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"bikerental/adapters/excel"
	"bikerental/adapters/postgres"
	"bikerental/internal"
	"bikerental/internal/config"
	"bikerental/internal/errors"
	"bikerental/internal/snapshot"
	"bikerental/internal/testkit"
	"bikerental/ports"
	"bikerental/ui"
)

const loadTimeout = 30 * time.Second

func main() {
	// .env is optional; environment variables win
	_ = godotenv.Load()

	logger := internal.NewDefaultLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("configuration failed: %v", err)
		os.Exit(1)
	}

	source, cleanup, err := buildSource(cfg, logger)
	if err != nil {
		logger.Error("record source setup failed: %v", err)
		os.Exit(1)
	}
	defer cleanup()

	// A load timeout reads as the source being unavailable; there is no
	// retry at this layer.
	ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
	snap, err := snapshot.Build(ctx, source)
	cancel()
	if err != nil {
		logger.Error("dataset load failed: %v", err)
		os.Exit(1)
	}
	logger.Info("snapshot %s built from %s: %d rows", snap.ID(), snap.Source(), len(snap.Rows()))

	if cfg.Ops.Enabled {
		go func() {
			addr := ":" + cfg.Ops.Port
			logger.Info("ops server listening on %s", addr)
			if err := http.ListenAndServe(addr, ui.NewOpsRouter(snap)); err != nil {
				logger.Warn("ops server stopped: %v", err)
			}
		}()
	}

	server := ui.NewServer(cfg, snap, logger)
	if err := server.Run(); err != nil {
		logger.Error("server stopped: %v", err)
		os.Exit(1)
	}
}

// buildSource selects the record source from configuration. The returned
// cleanup closes any held connections.
func buildSource(cfg *config.Config, logger *internal.Logger) (ports.RecordSource, func(), error) {
	noop := func() {}

	if cfg.Data.Demo {
		logger.Warn("demo mode: serving generated data")
		return testkit.NewGenerator(testkit.DefaultGeneratorConfig()), noop, nil
	}

	switch cfg.Data.Source {
	case config.SourceCSV:
		return excel.NewDataReader(cfg.Data.File), noop, nil
	case config.SourcePostgres:
		db, err := sqlx.Connect("postgres", cfg.Database.URL)
		if err != nil {
			return nil, noop, errors.Wrap(err, "failed to connect to database")
		}
		return postgres.NewObservationRepository(db), func() { db.Close() }, nil
	default:
		return nil, noop, errors.ConfigInvalid("unknown data source: " + string(cfg.Data.Source))
	}
}
