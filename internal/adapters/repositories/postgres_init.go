package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"greencart-service/internal/adapters/seeds"
)

// Initialize the Postgres database schema.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL DEFAULT '',
		password_hash BYTEA NOT NULL
	);
	`

	createDriversQuery := `
	CREATE TABLE IF NOT EXISTS drivers (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		shift_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
		past_week_hours DOUBLE PRECISION NOT NULL DEFAULT 0,
		is_fatigued BOOLEAN NOT NULL DEFAULT FALSE
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		id BIGINT PRIMARY KEY,
		name TEXT NOT NULL,
		distance DOUBLE PRECISION NOT NULL,
		traffic TEXT NOT NULL CHECK (traffic IN ('Low', 'Medium', 'High')),
		base_time DOUBLE PRECISION NOT NULL
	);
	`

	// route_id is a soft reference to routes.id, without a foreign key.
	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		id BIGINT PRIMARY KEY,
		value DOUBLE PRECISION NOT NULL,
		route_id BIGINT NOT NULL
	);
	`

	createSimulationResultsQuery := `
	CREATE TABLE IF NOT EXISTS simulation_results (
		id BIGSERIAL PRIMARY KEY,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		num_drivers INTEGER NOT NULL,
		start_time TEXT NOT NULL,
		max_hours DOUBLE PRECISION NOT NULL,
		total_profit DOUBLE PRECISION NOT NULL,
		efficiency_score DOUBLE PRECISION NOT NULL,
		on_time_count INTEGER NOT NULL,
		late_count INTEGER NOT NULL,
		fuel_cost_breakdown JSONB NOT NULL DEFAULT '[]'::jsonb
	);
	`

	createIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_simulation_results_created_at
	ON simulation_results(created_at DESC);
	`

	statements := []string{
		createUsersQuery,
		createDriversQuery,
		createRoutesQuery,
		createOrdersQuery,
		createSimulationResultsQuery,
		createIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database with data from a JSON seed file.
// Seeding is skipped when any user already exists; the returned bool
// reports whether rows were written.
func SeedFromJSON(ctx context.Context, db *sql.DB, jsonPath string) (bool, error) {
	ds, err := seeds.Load(jsonPath)
	if err != nil {
		return false, fmt.Errorf("seed database: %w", err)
	}
	return SeedDataset(ctx, db, ds)
}

func SeedDataset(ctx context.Context, db *sql.DB, ds *seeds.Dataset) (bool, error) {
	if db == nil {
		return false, errors.New("seed database: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("seed database: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var users int
	if err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM users;`).Scan(&users); err != nil {
		return false, fmt.Errorf("seed database: count users: %w", err)
	}
	if users > 0 {
		return false, nil
	}

	for _, table := range []string{"orders", "routes", "drivers"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+";"); err != nil {
			return false, fmt.Errorf("seed database: clear %s: %w", table, err)
		}
	}

	for _, d := range ds.Drivers {
		if _, err := tx.ExecContext(ctx, insertDriverQuery,
			d.ID, d.Name, d.ShiftHours, d.PastWeekHours, d.IsFatigued,
		); err != nil {
			return false, fmt.Errorf("seed database: insert driver id=%d: %w", d.ID, err)
		}
	}

	for _, r := range ds.Routes {
		if _, err := tx.ExecContext(ctx, insertRouteQuery,
			r.ID, r.Name, r.Distance, string(r.Traffic), r.BaseTime,
		); err != nil {
			return false, fmt.Errorf("seed database: insert route id=%d: %w", r.ID, err)
		}
	}

	for _, o := range ds.Orders {
		if _, err := tx.ExecContext(ctx, insertOrderQuery, o.ID, o.Value, o.RouteID); err != nil {
			return false, fmt.Errorf("seed database: insert order id=%d: %w", o.ID, err)
		}
	}

	for _, u := range ds.Users {
		if _, err := tx.ExecContext(ctx, `
		INSERT INTO users (username, name, password_hash)
		VALUES ($1, $2, $3);
		`, u.Username, u.Name, u.PasswordHash); err != nil {
			return false, fmt.Errorf("seed database: insert user %q: %w", u.Username, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("seed database: commit tx: %w", err)
	}

	return true, nil
}
