package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"

	_ "github.com/jackc/pgx/v5/stdlib"

	"georef/internal/geo/loader"
	"georef/internal/geo/metrics"
	"georef/internal/geo/store"
	"georef/internal/geo/store/country"
	"georef/internal/geo/store/division"
	"georef/internal/geo/store/urban"
	"georef/internal/platform/config"
	"georef/internal/platform/logger"
)

// main wires the seed loader against a PostgreSQL target. The reference data
// itself lives in internal/geo/seed; this binary only moves it.
func main() {
	cfg := config.FromEnv()
	log := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := sql.Open("pgx", cfg.DatabaseURL)
	if err != nil {
		log.Error("open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		log.Error("ping database", "error", err)
		os.Exit(1)
	}

	if err := store.EnsureSchema(ctx, db); err != nil {
		log.Error("ensure schema", "error", err)
		os.Exit(1)
	}

	l := loader.New(
		country.NewPostgres(db),
		division.NewPostgres(db),
		urban.NewPostgres(db),
		loader.WithLogger(log),
		loader.WithMetrics(metrics.New()),
	)

	summary, err := l.Load(ctx, loader.SeedDatasets())
	if err != nil {
		log.Error("seed load failed", "error", err)
		os.Exit(1)
	}

	log.Info("seeded reference data",
		"run_id", summary.RunID.String(),
		"countries", summary.Countries,
		"divisions", summary.Divisions,
		"urbans", summary.Urbans,
		"duration", summary.Duration,
	)
}
