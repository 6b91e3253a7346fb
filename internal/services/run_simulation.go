package services

import (
	"context"
	"errors"
	"fmt"
	"greencart-service/internal/domain"
	"greencart-service/internal/platform/obs"
	"greencart-service/internal/ports"
	"strings"
	"time"
)

// ValidateSimulationInput rejects requests with a missing parameter.
// A non-positive number or blank start time counts as missing.
func ValidateSimulationInput(in domain.SimulationInput) error {
	var missing []string
	if in.NumDrivers <= 0 {
		missing = append(missing, "numDrivers")
	}
	if strings.TrimSpace(in.StartTime) == "" {
		missing = append(missing, "startTime")
	}
	if in.MaxHours <= 0 {
		missing = append(missing, "maxHours")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// RunSimulation loads the current fleet data, computes KPIs and appends
// the result to the history sink. Nothing is persisted when the
// computation fails.
func RunSimulation(
	ctx context.Context,
	in domain.SimulationInput,
	fleet ports.FleetRepository,
	sink ports.SimulationRepository,
) (_ domain.SimulationResult, err error) {
	defer obs.Time(ctx, "simulation.Run")(&err)
	defer func() { obs.RecordSimulationRun(runStatus(err)) }()

	if err := ValidateSimulationInput(in); err != nil {
		return domain.SimulationResult{}, fmt.Errorf("run simulation: %w", err)
	}

	drivers, err := fleet.ListDrivers(ctx)
	if err != nil {
		return domain.SimulationResult{}, fmt.Errorf("run simulation: list drivers: %w", err)
	}
	routes, err := fleet.ListRoutes(ctx)
	if err != nil {
		return domain.SimulationResult{}, fmt.Errorf("run simulation: list routes: %w", err)
	}
	orders, err := fleet.ListOrders(ctx)
	if err != nil {
		return domain.SimulationResult{}, fmt.Errorf("run simulation: list orders: %w", err)
	}

	kpis, err := ComputeKPIs(drivers, routes, orders, in.NumDrivers)
	if err != nil {
		return domain.SimulationResult{}, fmt.Errorf("run simulation: %w", err)
	}

	res, err := sink.SaveSimulation(ctx, domain.SimulationResult{
		Timestamp: time.Now().UTC(),
		Inputs:    in,
		KPIs:      kpis,
	})
	if err != nil {
		return domain.SimulationResult{}, fmt.Errorf("run simulation: save result: %w", err)
	}

	return res, nil
}

func runStatus(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, ErrInvalidInput):
		return "rejected"
	default:
		return "failed"
	}
}
