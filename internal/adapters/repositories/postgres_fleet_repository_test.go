package repositories

import (
	"errors"
	"testing"

	"greencart-service/internal/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestMapWriteError(t *testing.T) {
	dup := &pgconn.PgError{Code: uniqueViolation, Detail: "Key (id)=(1) already exists."}
	require.ErrorIs(t, mapWriteError(dup), ports.ErrConflict)

	other := &pgconn.PgError{Code: "23514"}
	require.NotErrorIs(t, mapWriteError(other), ports.ErrConflict)

	plain := errors.New("boom")
	require.Equal(t, plain, mapWriteError(plain))
}

func TestNilDBIsReported(t *testing.T) {
	fleet := NewPostgresFleetRepository(nil)
	_, err := fleet.ListDrivers(t.Context())
	require.Error(t, err)

	sims := NewPostgresSimulationRepository(nil)
	_, err = sims.ListSimulations(t.Context(), 10)
	require.Error(t, err)

	require.Error(t, InitSchema(t.Context(), nil))
}
