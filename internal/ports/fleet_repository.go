package ports

import (
	"context"
	"greencart-service/internal/domain"
)

// Port: boundary for managing Driver entities.
type DriverRepository interface {
	// Return all drivers ordered by id.
	ListDrivers(ctx context.Context) ([]domain.Driver, error)
	CreateDriver(ctx context.Context, d domain.Driver) (domain.Driver, error)
	// Replace the driver identified by d.ID. Returns ErrNotFound if absent.
	UpdateDriver(ctx context.Context, d domain.Driver) (domain.Driver, error)
	DeleteDriver(ctx context.Context, id int64) error
}

// Port: boundary for managing Route entities.
type RouteRepository interface {
	// Return all routes ordered by id.
	ListRoutes(ctx context.Context) ([]domain.Route, error)
	CreateRoute(ctx context.Context, r domain.Route) (domain.Route, error)
	UpdateRoute(ctx context.Context, r domain.Route) (domain.Route, error)
	DeleteRoute(ctx context.Context, id int64) error
}

// Port: boundary for managing Order entities.
type OrderRepository interface {
	// Return all orders ordered by id.
	ListOrders(ctx context.Context) ([]domain.Order, error)
	CreateOrder(ctx context.Context, o domain.Order) (domain.Order, error)
	UpdateOrder(ctx context.Context, o domain.Order) (domain.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

// Aggregate port for the three collections a simulation reads.
type FleetRepository interface {
	DriverRepository
	RouteRepository
	OrderRepository
}
