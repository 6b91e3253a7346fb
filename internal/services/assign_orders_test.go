package services

import (
	"testing"

	"greencart-service/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestAssignOrdersRoundRobin(t *testing.T) {
	drivers := []domain.Driver{{ID: 1}, {ID: 2}}
	orders := []domain.Order{{ID: 10}, {ID: 11}, {ID: 12}, {ID: 13}, {ID: 14}}

	got, err := AssignOrdersRoundRobin(drivers, orders)
	require.NoError(t, err)
	require.Len(t, got, len(orders))

	wantDrivers := []int64{1, 2, 1, 2, 1}
	for i, a := range got {
		require.Equal(t, orders[i].ID, a.Order.ID)
		require.Equal(t, wantDrivers[i], a.Driver.ID, "order %d", a.Order.ID)
	}
}

func TestAssignOrdersRoundRobinNoDrivers(t *testing.T) {
	_, err := AssignOrdersRoundRobin(nil, []domain.Order{{ID: 1}})
	require.ErrorIs(t, err, ErrNoDriversAvailable)
}

func TestAssignOrdersRoundRobinNoOrders(t *testing.T) {
	got, err := AssignOrdersRoundRobin([]domain.Driver{{ID: 1}}, nil)
	require.NoError(t, err)
	require.Empty(t, got)
}
