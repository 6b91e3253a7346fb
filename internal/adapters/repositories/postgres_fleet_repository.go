package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"greencart-service/internal/domain"
	"greencart-service/internal/platform/obs"
	"greencart-service/internal/ports"

	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const (
	insertDriverQuery = `
	INSERT INTO drivers (id, name, shift_hours, past_week_hours, is_fatigued)
	VALUES ($1, $2, $3, $4, $5);
	`
	insertRouteQuery = `
	INSERT INTO routes (id, name, distance, traffic, base_time)
	VALUES ($1, $2, $3, $4, $5);
	`
	insertOrderQuery = `
	INSERT INTO orders (id, value, route_id)
	VALUES ($1, $2, $3);
	`
)

// Postgres-backed implementation of the driver, route and order ports.
type PostgresFleetRepository struct{ DB *sql.DB }

func NewPostgresFleetRepository(db *sql.DB) *PostgresFleetRepository {
	return &PostgresFleetRepository{DB: db}
}

// mapWriteError translates driver errors into port errors.
func mapWriteError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s", ports.ErrConflict, pgErr.Detail)
	}
	return err
}

// exec runs a single-row write and reports ErrNotFound when nothing matched.
func (s *PostgresFleetRepository) exec(ctx context.Context, query string, args ...any) error {
	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return mapWriteError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// Return all drivers stored in the database.
func (s *PostgresFleetRepository) ListDrivers(ctx context.Context) (_ []domain.Driver, err error) {
	defer obs.Time(ctx, "fleet.ListDrivers")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres fleet repository: DB is nil")
	}

	query := `
	SELECT
		id,
		name,
		shift_hours,
		past_week_hours,
		is_fatigued
	FROM drivers
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drivers: query drivers table: %w", err)
	}
	defer rows.Close()

	drivers := make([]domain.Driver, 0, 16)
	for rows.Next() {
		var d domain.Driver
		if err := rows.Scan(&d.ID, &d.Name, &d.ShiftHours, &d.PastWeekHours, &d.IsFatigued); err != nil {
			return nil, fmt.Errorf("list drivers: scan row: %w", err)
		}
		drivers = append(drivers, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drivers: row iteration: %w", err)
	}

	return drivers, nil
}

func (s *PostgresFleetRepository) CreateDriver(ctx context.Context, d domain.Driver) (domain.Driver, error) {
	if _, err := s.DB.ExecContext(ctx, insertDriverQuery,
		d.ID, d.Name, d.ShiftHours, d.PastWeekHours, d.IsFatigued,
	); err != nil {
		return domain.Driver{}, fmt.Errorf("create driver id=%d: %w", d.ID, mapWriteError(err))
	}
	return d, nil
}

func (s *PostgresFleetRepository) UpdateDriver(ctx context.Context, d domain.Driver) (domain.Driver, error) {
	err := s.exec(ctx, `
	UPDATE drivers
	SET name = $2, shift_hours = $3, past_week_hours = $4, is_fatigued = $5
	WHERE id = $1;
	`, d.ID, d.Name, d.ShiftHours, d.PastWeekHours, d.IsFatigued)
	if err != nil {
		return domain.Driver{}, fmt.Errorf("update driver id=%d: %w", d.ID, err)
	}
	return d, nil
}

func (s *PostgresFleetRepository) DeleteDriver(ctx context.Context, id int64) error {
	if err := s.exec(ctx, `DELETE FROM drivers WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("delete driver id=%d: %w", id, err)
	}
	return nil
}

// Return all routes stored in the database.
func (s *PostgresFleetRepository) ListRoutes(ctx context.Context) (_ []domain.Route, err error) {
	defer obs.Time(ctx, "fleet.ListRoutes")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres fleet repository: DB is nil")
	}

	query := `
	SELECT
		id,
		name,
		distance,
		traffic,
		base_time
	FROM routes
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	routes := make([]domain.Route, 0, 16)
	for rows.Next() {
		var r domain.Route
		var traffic string
		if err := rows.Scan(&r.ID, &r.Name, &r.Distance, &traffic, &r.BaseTime); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		r.Traffic = domain.Traffic(traffic)
		routes = append(routes, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return routes, nil
}

func (s *PostgresFleetRepository) CreateRoute(ctx context.Context, r domain.Route) (domain.Route, error) {
	if _, err := s.DB.ExecContext(ctx, insertRouteQuery,
		r.ID, r.Name, r.Distance, string(r.Traffic), r.BaseTime,
	); err != nil {
		return domain.Route{}, fmt.Errorf("create route id=%d: %w", r.ID, mapWriteError(err))
	}
	return r, nil
}

func (s *PostgresFleetRepository) UpdateRoute(ctx context.Context, r domain.Route) (domain.Route, error) {
	err := s.exec(ctx, `
	UPDATE routes
	SET name = $2, distance = $3, traffic = $4, base_time = $5
	WHERE id = $1;
	`, r.ID, r.Name, r.Distance, string(r.Traffic), r.BaseTime)
	if err != nil {
		return domain.Route{}, fmt.Errorf("update route id=%d: %w", r.ID, err)
	}
	return r, nil
}

func (s *PostgresFleetRepository) DeleteRoute(ctx context.Context, id int64) error {
	if err := s.exec(ctx, `DELETE FROM routes WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("delete route id=%d: %w", id, err)
	}
	return nil
}

// Return all orders stored in the database.
func (s *PostgresFleetRepository) ListOrders(ctx context.Context) (_ []domain.Order, err error) {
	defer obs.Time(ctx, "fleet.ListOrders")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres fleet repository: DB is nil")
	}

	query := `
	SELECT
		id,
		value,
		route_id
	FROM orders
	ORDER BY id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0, 64)
	for rows.Next() {
		var o domain.Order
		if err := rows.Scan(&o.ID, &o.Value, &o.RouteID); err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return orders, nil
}

func (s *PostgresFleetRepository) CreateOrder(ctx context.Context, o domain.Order) (domain.Order, error) {
	if _, err := s.DB.ExecContext(ctx, insertOrderQuery, o.ID, o.Value, o.RouteID); err != nil {
		return domain.Order{}, fmt.Errorf("create order id=%d: %w", o.ID, mapWriteError(err))
	}
	return o, nil
}

func (s *PostgresFleetRepository) UpdateOrder(ctx context.Context, o domain.Order) (domain.Order, error) {
	err := s.exec(ctx, `
	UPDATE orders
	SET value = $2, route_id = $3
	WHERE id = $1;
	`, o.ID, o.Value, o.RouteID)
	if err != nil {
		return domain.Order{}, fmt.Errorf("update order id=%d: %w", o.ID, err)
	}
	return o, nil
}

func (s *PostgresFleetRepository) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.exec(ctx, `DELETE FROM orders WHERE id = $1;`, id); err != nil {
		return fmt.Errorf("delete order id=%d: %w", id, err)
	}
	return nil
}
