package services

import (
	"greencart-service/internal/domain"
)

// Assignment pairs an order with the driver that delivers it.
type Assignment struct {
	Order  domain.Order
	Driver domain.Driver
}

// AssignOrdersRoundRobin assigns orders to drivers cyclically by position.
//
// Order i goes to drivers[i % len(drivers)]. Driver load, shift hours and
// fatigue are ignored, so the same inputs always yield the same assignment.
// Orders keep their input sequence in the returned slice.
func AssignOrdersRoundRobin(drivers []domain.Driver, orders []domain.Order) ([]Assignment, error) {
	if len(drivers) == 0 {
		return nil, ErrNoDriversAvailable
	}

	out := make([]Assignment, 0, len(orders))
	for i, o := range orders {
		out = append(out, Assignment{
			Order:  o,
			Driver: drivers[i%len(drivers)],
		})
	}

	return out, nil
}
