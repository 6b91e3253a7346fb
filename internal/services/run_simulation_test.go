package services

import (
	"context"
	"errors"
	"testing"

	"greencart-service/internal/adapters/memory"
	"greencart-service/internal/domain"

	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	ctx := context.Background()
	s := memory.NewStore()

	for _, d := range []domain.Driver{
		{ID: 1, Name: "Visista"},
		{ID: 2, Name: "Teja", IsFatigued: true},
		{ID: 3, Name: "Reddy"},
	} {
		_, err := s.CreateDriver(ctx, d)
		require.NoError(t, err)
	}
	for _, r := range []domain.Route{mediumRoute, lowRoute, highRoute} {
		_, err := s.CreateRoute(ctx, r)
		require.NoError(t, err)
	}
	for _, o := range []domain.Order{
		{ID: 1001, Value: 800, RouteID: 101},
		{ID: 1002, Value: 1200, RouteID: 102},
		{ID: 1003, Value: 500, RouteID: 103},
	} {
		_, err := s.CreateOrder(ctx, o)
		require.NoError(t, err)
	}
	return s
}

func TestRunSimulationPersistsResult(t *testing.T) {
	ctx := context.Background()
	store := seededStore(t)
	in := domain.SimulationInput{NumDrivers: 3, StartTime: "09:00", MaxHours: 8}

	res, err := RunSimulation(ctx, in, store, store)
	require.NoError(t, err)

	require.NotZero(t, res.ID)
	require.False(t, res.Timestamp.IsZero())
	require.Equal(t, in, res.Inputs)

	// 1001 on time (725), 1002 late with fatigued driver (1200-50-125), 1003 on time (500-140).
	require.Equal(t, 2, res.KPIs.OnTimeCount)
	require.Equal(t, 1, res.KPIs.LateCount)
	require.InDelta(t, 725+1025+360.0, res.KPIs.TotalProfit, 1e-9)
	require.InDelta(t, 200.0/3, res.KPIs.EfficiencyScore, 1e-9)

	history, err := store.ListSimulations(ctx, 10)
	require.NoError(t, err)
	require.Len(t, history, 1)
	require.Equal(t, res.ID, history[0].ID)
}

func TestRunSimulationRejectsMissingInputs(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		in   domain.SimulationInput
	}{
		{name: "no drivers", in: domain.SimulationInput{StartTime: "09:00", MaxHours: 8}},
		{name: "no start time", in: domain.SimulationInput{NumDrivers: 1, StartTime: "  ", MaxHours: 8}},
		{name: "no max hours", in: domain.SimulationInput{NumDrivers: 1, StartTime: "09:00"}},
		{name: "negative drivers", in: domain.SimulationInput{NumDrivers: -1, StartTime: "09:00", MaxHours: 8}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := seededStore(t)

			_, err := RunSimulation(ctx, tc.in, store, store)
			require.ErrorIs(t, err, ErrInvalidInput)

			history, err := store.ListSimulations(ctx, 10)
			require.NoError(t, err)
			require.Empty(t, history)
		})
	}
}

func TestRunSimulationNoDriversPersistsNothing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	_, err := store.CreateOrder(ctx, domain.Order{ID: 1, Value: 10, RouteID: 1})
	require.NoError(t, err)

	_, err = RunSimulation(ctx, domain.SimulationInput{NumDrivers: 2, StartTime: "09:00", MaxHours: 8}, store, store)
	require.ErrorIs(t, err, ErrNoDriversAvailable)

	history, err := store.ListSimulations(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, history)
}

type failingSink struct{ err error }

func (f failingSink) SaveSimulation(context.Context, domain.SimulationResult) (domain.SimulationResult, error) {
	return domain.SimulationResult{}, f.err
}

func (f failingSink) ListSimulations(context.Context, int) ([]domain.SimulationResult, error) {
	return nil, f.err
}

func TestRunSimulationSaveFailure(t *testing.T) {
	boom := errors.New("disk full")
	store := seededStore(t)

	_, err := RunSimulation(context.Background(),
		domain.SimulationInput{NumDrivers: 1, StartTime: "09:00", MaxHours: 8},
		store, failingSink{err: boom},
	)
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrInvalidInput)
}
