package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// Seeder writes rows into the Postgres store, either demo data or a copy
// of the legacy MySQL tables.
type Seeder struct {
	Source    *sql.DB // legacy crimedb, nil unless importing
	Target    *pgxpool.Pool
	BatchSize int
	RunID     string
	Logger    *zap.Logger
}

type demoPerson struct {
	name   string
	age    *int
	gender *string
}

type demoCrime struct {
	description, severity, crimeType, status string

	officers []demoPerson
	suspects []demoPerson
	victims  []demoPerson
}

func intp(i int) *int       { return &i }
func strp(s string) *string { return &s }

// demoCaseload mirrors the sample records the front-end shipped for
// offline development.
var demoCaseload = []demoCrime{
	{
		description: "Bank robbery at Main Street branch",
		severity:    "High", crimeType: "Robbery", status: "Open",
		officers: []demoPerson{{name: "John Smith"}},
		victims:  []demoPerson{{name: "Bank Corp"}},
		suspects: []demoPerson{{name: "James Wilson", age: intp(32), gender: strp("Male")}},
	},
	{
		description: "Vandalism in Central Park",
		severity:    "Medium", crimeType: "Vandalism", status: "Closed",
		officers: []demoPerson{{name: "Sarah Johnson"}},
		victims:  []demoPerson{{name: "City Parks Dept"}},
		suspects: []demoPerson{
			{name: "Mike Brown", age: intp(19), gender: strp("Male")},
			{name: "Alex Green", age: intp(20), gender: strp("Female")},
		},
	},
}

// SeedDemo inserts the demo caseload, one crime with its people per
// transaction.
func (s *Seeder) SeedDemo(ctx context.Context) error {
	for _, dc := range demoCaseload {
		err := pgx.BeginFunc(ctx, s.Target, func(tx pgx.Tx) error {
			var crimeID uint
			err := tx.QueryRow(ctx,
				`INSERT INTO "Crimes" (description, severity_level, type, status)
				 VALUES ($1, $2, $3, $4) RETURNING crime_id`,
				dc.description, dc.severity, dc.crimeType, dc.status,
			).Scan(&crimeID)
			if err != nil {
				return err
			}

			batch := &pgx.Batch{}
			for _, p := range dc.officers {
				batch.Queue(`INSERT INTO "Officers" (name, crime_id) VALUES ($1, $2)`, p.name, crimeID)
			}
			for _, p := range dc.suspects {
				batch.Queue(`INSERT INTO "Suspects" (name, age, gender, crime_id) VALUES ($1, $2, $3, $4)`,
					p.name, p.age, p.gender, crimeID)
			}
			for _, p := range dc.victims {
				batch.Queue(`INSERT INTO "Victims" (name, age, gender, crime_id) VALUES ($1, $2, $3, $4)`,
					p.name, p.age, p.gender, crimeID)
			}
			return tx.SendBatch(ctx, batch).Close()
		})
		if err != nil {
			return fmt.Errorf("seeding %q: %w", dc.description, err)
		}
		s.Logger.Info("demo crime seeded",
			zap.String("run_id", s.RunID), zap.String("description", dc.description))
	}
	return nil
}

// ImportLegacy copies Crimes, Officers, Suspects and Victims from the
// legacy MySQL database, preserving ids, then resyncs the sequences.
// Crimes go first so the foreign keys on the dependent tables hold.
func (s *Seeder) ImportLegacy(ctx context.Context) error {
	if err := s.importCrimes(ctx); err != nil {
		return fmt.Errorf("importing crimes: %w", err)
	}
	if err := s.importPeople(ctx, "Officers", "officer_id", false); err != nil {
		return fmt.Errorf("importing officers: %w", err)
	}
	if err := s.importPeople(ctx, "Suspects", "suspect_id", true); err != nil {
		return fmt.Errorf("importing suspects: %w", err)
	}
	if err := s.importPeople(ctx, "Victims", "victim_id", true); err != nil {
		return fmt.Errorf("importing victims: %w", err)
	}
	return s.resyncSequences(ctx)
}

func (s *Seeder) importCrimes(ctx context.Context) error {
	rows, err := s.Source.QueryContext(ctx,
		"SELECT crime_id, description, severity_level, type, status FROM Crimes ORDER BY crime_id")
	if err != nil {
		return err
	}
	defer rows.Close()

	batch := &pgx.Batch{}
	count := 0
	for rows.Next() {
		var id uint
		var description, severity, crimeType, status sql.NullString
		if err := rows.Scan(&id, &description, &severity, &crimeType, &status); err != nil {
			return err
		}
		batch.Queue(
			`INSERT INTO "Crimes" (crime_id, description, severity_level, type, status)
			 VALUES ($1, $2, $3, $4, COALESCE($5, 'open'))
			 ON CONFLICT (crime_id) DO NOTHING`,
			id, description, severity, crimeType, status,
		)
		count++
		if batch.Len() >= s.BatchSize {
			if err := s.Target.SendBatch(ctx, batch).Close(); err != nil {
				return err
			}
			batch = &pgx.Batch{}
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if batch.Len() > 0 {
		if err := s.Target.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}
	}
	s.Logger.Info("crimes imported", zap.String("run_id", s.RunID), zap.Int("rows", count))
	return nil
}

func (s *Seeder) importPeople(ctx context.Context, table, idColumn string, hasAgeGender bool) error {
	columns := "name, crime_id"
	if hasAgeGender {
		columns = "name, age, gender, crime_id"
	}
	rows, err := s.Source.QueryContext(ctx, fmt.Sprintf(
		"SELECT %s, %s FROM %s ORDER BY %s", idColumn, columns, table, idColumn))
	if err != nil {
		return err
	}
	defer rows.Close()

	batch := &pgx.Batch{}
	count := 0
	for rows.Next() {
		var id, crimeID uint
		var name string
		var age sql.NullInt64
		var gender sql.NullString

		if hasAgeGender {
			if err := rows.Scan(&id, &name, &age, &gender, &crimeID); err != nil {
				return err
			}
			batch.Queue(fmt.Sprintf(
				`INSERT INTO "%s" (%s, name, age, gender, crime_id) VALUES ($1, $2, $3, $4, $5)
				 ON CONFLICT (%s) DO NOTHING`, table, idColumn, idColumn),
				id, name, age, gender, crimeID)
		} else {
			if err := rows.Scan(&id, &name, &crimeID); err != nil {
				return err
			}
			batch.Queue(fmt.Sprintf(
				`INSERT INTO "%s" (%s, name, crime_id) VALUES ($1, $2, $3)
				 ON CONFLICT (%s) DO NOTHING`, table, idColumn, idColumn),
				id, name, crimeID)
		}
		count++
		if batch.Len() >= s.BatchSize {
			if err := s.Target.SendBatch(ctx, batch).Close(); err != nil {
				return err
			}
			batch = &pgx.Batch{}
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	if batch.Len() > 0 {
		if err := s.Target.SendBatch(ctx, batch).Close(); err != nil {
			return err
		}
	}
	s.Logger.Info("people imported",
		zap.String("run_id", s.RunID), zap.String("table", table), zap.Int("rows", count))
	return nil
}

// resyncSequences bumps each serial sequence past the imported ids.
func (s *Seeder) resyncSequences(ctx context.Context) error {
	stmts := []string{
		`SELECT setval(pg_get_serial_sequence('"Crimes"', 'crime_id'), COALESCE((SELECT MAX(crime_id) FROM "Crimes"), 1))`,
		`SELECT setval(pg_get_serial_sequence('"Officers"', 'officer_id'), COALESCE((SELECT MAX(officer_id) FROM "Officers"), 1))`,
		`SELECT setval(pg_get_serial_sequence('"Suspects"', 'suspect_id'), COALESCE((SELECT MAX(suspect_id) FROM "Suspects"), 1))`,
		`SELECT setval(pg_get_serial_sequence('"Victims"', 'victim_id'), COALESCE((SELECT MAX(victim_id) FROM "Victims"), 1))`,
	}
	for _, stmt := range stmts {
		if _, err := s.Target.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
