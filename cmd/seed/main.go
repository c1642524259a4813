// Command seed populates the CrimeFile database. With -demo it inserts a
// small sample caseload; with -legacy-dsn it copies the four tables out of
// the original MySQL crimedb, preserving ids.
package main

import (
	"context"
	"database/sql"
	"flag"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/MadhavSinha007/CrimeFile/internal/config"
)

func main() {
	demo := flag.Bool("demo", false, "insert the demo caseload")
	legacyDSN := flag.String("legacy-dsn", "", "MySQL DSN of the legacy crimedb to import")
	batchSize := flag.Int("batch-size", 500, "rows per insert batch during import")
	flag.Parse()

	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	if !*demo && *legacyDSN == "" {
		logger.Fatal("nothing to do: pass -demo and/or -legacy-dsn")
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	target, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		logger.Fatal("failed to connect to target database", zap.Error(err))
	}
	defer target.Close()

	seeder := &Seeder{
		Target:    target,
		BatchSize: *batchSize,
		RunID:     uuid.New().String(),
		Logger:    logger,
	}

	if *legacyDSN != "" {
		source, err := sql.Open("mysql", *legacyDSN)
		if err != nil {
			logger.Fatal("failed to open legacy database", zap.Error(err))
		}
		defer source.Close()
		if err := source.PingContext(ctx); err != nil {
			logger.Fatal("failed to ping legacy database", zap.Error(err))
		}
		seeder.Source = source

		if err := seeder.ImportLegacy(ctx); err != nil {
			logger.Fatal("legacy import failed", zap.Error(err))
		}
	}

	if *demo {
		if err := seeder.SeedDemo(ctx); err != nil {
			logger.Fatal("demo seed failed", zap.Error(err))
		}
	}

	logger.Info("seed run complete", zap.String("run_id", seeder.RunID))
}
