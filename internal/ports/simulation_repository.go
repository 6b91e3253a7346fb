package ports

import (
	"context"
	"greencart-service/internal/domain"
)

// Port: append-only sink for simulation results.
type SimulationRepository interface {
	// Persist a new result and return it with its assigned ID.
	SaveSimulation(ctx context.Context, res domain.SimulationResult) (domain.SimulationResult, error)
	// Return at most limit results, newest first.
	ListSimulations(ctx context.Context, limit int) ([]domain.SimulationResult, error)
}
