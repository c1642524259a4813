package main

import (
	"database/sql"

	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/MadhavSinha007/CrimeFile/internal/config"
	"github.com/MadhavSinha007/CrimeFile/internal/database/migrations"
)

func main() {
	logger, err := zap.NewProductionConfig().Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	db, err := sql.Open("postgres", cfg.DSN())
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", zap.Error(err))
		}
	}()

	if err := db.Ping(); err != nil {
		logger.Fatal("failed to ping database", zap.Error(err))
	}

	schema, err := migrations.Files.ReadFile("schema.sql")
	if err != nil {
		logger.Fatal("failed to read embedded schema", zap.Error(err))
	}

	if _, err := db.Exec(string(schema)); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	logger.Info("migration applied")

	rows, err := db.Query(`
		SELECT table_name
		FROM information_schema.tables
		WHERE table_schema = 'public'
		ORDER BY table_name
	`)
	if err != nil {
		logger.Fatal("failed to list tables", zap.Error(err))
	}
	defer func() {
		if err := rows.Close(); err != nil {
			logger.Error("failed to close rows", zap.Error(err))
		}
	}()

	for rows.Next() {
		var table string
		if err := rows.Scan(&table); err != nil {
			logger.Error("failed to scan table name", zap.Error(err))
			continue
		}
		logger.Info("table present", zap.String("table", table))
	}
	if err := rows.Err(); err != nil {
		logger.Error("table listing failed", zap.Error(err))
	}
}
