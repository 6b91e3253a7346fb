package memory

import (
	"context"
	"testing"
	"time"

	"greencart-service/internal/adapters/seeds"
	"greencart-service/internal/domain"
	"greencart-service/internal/ports"

	"github.com/stretchr/testify/require"
)

func TestStoreDriverCRUD(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	_, err := s.CreateDriver(ctx, domain.Driver{ID: 2, Name: "B"})
	require.NoError(t, err)
	_, err = s.CreateDriver(ctx, domain.Driver{ID: 1, Name: "A"})
	require.NoError(t, err)

	_, err = s.CreateDriver(ctx, domain.Driver{ID: 1, Name: "dup"})
	require.ErrorIs(t, err, ports.ErrConflict)

	drivers, err := s.ListDrivers(ctx)
	require.NoError(t, err)
	require.Equal(t, []int64{1, 2}, []int64{drivers[0].ID, drivers[1].ID})

	updated, err := s.UpdateDriver(ctx, domain.Driver{ID: 1, Name: "A2", IsFatigued: true})
	require.NoError(t, err)
	require.True(t, updated.IsFatigued)

	_, err = s.UpdateDriver(ctx, domain.Driver{ID: 9})
	require.ErrorIs(t, err, ports.ErrNotFound)

	require.NoError(t, s.DeleteDriver(ctx, 2))
	require.ErrorIs(t, s.DeleteDriver(ctx, 2), ports.ErrNotFound)
}

func TestStoreSimulationHistoryNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	base := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	for i := 0; i < 12; i++ {
		_, err := s.SaveSimulation(ctx, domain.SimulationResult{
			Timestamp: base.Add(time.Duration(i) * time.Minute),
			Inputs:    domain.SimulationInput{NumDrivers: i + 1, StartTime: "09:00", MaxHours: 8},
		})
		require.NoError(t, err)
	}

	history, err := s.ListSimulations(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 10)
	require.Equal(t, int64(12), history[0].ID)
	require.Equal(t, 12, history[0].Inputs.NumDrivers)
	require.Equal(t, int64(3), history[9].ID)

	all, err := s.ListSimulations(ctx, 0)
	require.NoError(t, err)
	require.Len(t, all, 12)
}

func TestStoreSavedResultIsImmutable(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	breakdown := []domain.FuelCost{{Name: "R", Cost: 75}}
	_, err := s.SaveSimulation(ctx, domain.SimulationResult{KPIs: domain.KpiResult{FuelCostBreakdown: breakdown}})
	require.NoError(t, err)

	breakdown[0].Cost = 0

	history, err := s.ListSimulations(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, 75.0, history[0].KPIs.FuelCostBreakdown[0].Cost)
}

func TestStoreSeedOnlyOnce(t *testing.T) {
	ctx := context.Background()
	s := NewStore()

	ds := &seeds.Dataset{
		Drivers: []domain.Driver{{ID: 1, Name: "A"}},
		Users:   []domain.User{{ID: 1, Username: "manager"}},
	}
	require.True(t, s.Seed(ds))
	require.False(t, s.Seed(&seeds.Dataset{Drivers: []domain.Driver{{ID: 2, Name: "B"}}}))

	drivers, err := s.ListDrivers(ctx)
	require.NoError(t, err)
	require.Len(t, drivers, 1)

	u, err := s.GetUserByUsername(ctx, "manager")
	require.NoError(t, err)
	require.Equal(t, int64(1), u.ID)
}
