package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"greencart-service/internal/domain"
	"greencart-service/internal/platform/obs"
)

type fuelCostRow struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

// Postgres-backed, append-only store of simulation results.
type PostgresSimulationRepository struct{ DB *sql.DB }

func NewPostgresSimulationRepository(db *sql.DB) *PostgresSimulationRepository {
	return &PostgresSimulationRepository{DB: db}
}

func (s *PostgresSimulationRepository) SaveSimulation(
	ctx context.Context,
	res domain.SimulationResult,
) (_ domain.SimulationResult, err error) {
	defer obs.Time(ctx, "simulation.Save")(&err)

	if s.DB == nil {
		return domain.SimulationResult{}, errors.New("postgres simulation repository: DB is nil")
	}

	rows := make([]fuelCostRow, 0, len(res.KPIs.FuelCostBreakdown))
	for _, f := range res.KPIs.FuelCostBreakdown {
		rows = append(rows, fuelCostRow{Name: f.Name, Cost: f.Cost})
	}
	breakdown, err := json.Marshal(rows)
	if err != nil {
		return domain.SimulationResult{}, fmt.Errorf("save simulation: encode fuel breakdown: %w", err)
	}

	query := `
	INSERT INTO simulation_results (
		created_at,
		num_drivers,
		start_time,
		max_hours,
		total_profit,
		efficiency_score,
		on_time_count,
		late_count,
		fuel_cost_breakdown
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	RETURNING id;
	`
	err = s.DB.QueryRowContext(ctx, query,
		res.Timestamp,
		res.Inputs.NumDrivers,
		res.Inputs.StartTime,
		res.Inputs.MaxHours,
		res.KPIs.TotalProfit,
		res.KPIs.EfficiencyScore,
		res.KPIs.OnTimeCount,
		res.KPIs.LateCount,
		string(breakdown),
	).Scan(&res.ID)
	if err != nil {
		return domain.SimulationResult{}, fmt.Errorf("save simulation: insert row: %w", err)
	}

	return res, nil
}

// Return the most recent results, newest first.
func (s *PostgresSimulationRepository) ListSimulations(
	ctx context.Context,
	limit int,
) (_ []domain.SimulationResult, err error) {
	defer obs.Time(ctx, "simulation.List")(&err)

	if s.DB == nil {
		return nil, errors.New("postgres simulation repository: DB is nil")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("list simulations: limit must be positive, got %d", limit)
	}

	query := `
	SELECT
		id,
		created_at,
		num_drivers,
		start_time,
		max_hours,
		total_profit,
		efficiency_score,
		on_time_count,
		late_count,
		fuel_cost_breakdown
	FROM simulation_results
	ORDER BY created_at DESC, id DESC
	LIMIT $1;
	`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("list simulations: query simulation_results table: %w", err)
	}
	defer rows.Close()

	out := make([]domain.SimulationResult, 0, limit)
	for rows.Next() {
		var r domain.SimulationResult
		var breakdown []byte
		err := rows.Scan(
			&r.ID,
			&r.Timestamp,
			&r.Inputs.NumDrivers,
			&r.Inputs.StartTime,
			&r.Inputs.MaxHours,
			&r.KPIs.TotalProfit,
			&r.KPIs.EfficiencyScore,
			&r.KPIs.OnTimeCount,
			&r.KPIs.LateCount,
			&breakdown,
		)
		if err != nil {
			return nil, fmt.Errorf("list simulations: scan row: %w", err)
		}

		var fuel []fuelCostRow
		if err := json.Unmarshal(breakdown, &fuel); err != nil {
			return nil, fmt.Errorf("list simulations: decode fuel breakdown id=%d: %w", r.ID, err)
		}
		r.KPIs.FuelCostBreakdown = make([]domain.FuelCost, 0, len(fuel))
		for _, f := range fuel {
			r.KPIs.FuelCostBreakdown = append(r.KPIs.FuelCostBreakdown, domain.FuelCost{Name: f.Name, Cost: f.Cost})
		}

		out = append(out, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list simulations: row iteration: %w", err)
	}

	return out, nil
}
