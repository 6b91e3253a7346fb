package memory

import (
	"cmp"
	"context"
	"fmt"
	"greencart-service/internal/domain"
	"greencart-service/internal/ports"
	"slices"
	"sync"
)

// Store is an in-memory implementation of every repository port.
// It backs local runs without Postgres and serves as the test double.
type Store struct {
	mu          sync.RWMutex
	drivers     map[int64]domain.Driver
	routes      map[int64]domain.Route
	orders      map[int64]domain.Order
	users       map[string]domain.User
	simulations []domain.SimulationResult
	nextSimID   int64
}

func NewStore() *Store {
	return &Store{
		drivers:   make(map[int64]domain.Driver),
		routes:    make(map[int64]domain.Route),
		orders:    make(map[int64]domain.Order),
		users:     make(map[string]domain.User),
		nextSimID: 1,
	}
}

func sortedValues[T any](m map[int64]T, id func(T) int64) []T {
	out := make([]T, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	slices.SortFunc(out, func(a, b T) int { return cmp.Compare(id(a), id(b)) })
	return out
}

func (s *Store) ListDrivers(ctx context.Context) ([]domain.Driver, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.drivers, func(d domain.Driver) int64 { return d.ID }), nil
}

func (s *Store) CreateDriver(ctx context.Context, d domain.Driver) (domain.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drivers[d.ID]; ok {
		return domain.Driver{}, fmt.Errorf("create driver id=%d: %w", d.ID, ports.ErrConflict)
	}
	s.drivers[d.ID] = d
	return d, nil
}

func (s *Store) UpdateDriver(ctx context.Context, d domain.Driver) (domain.Driver, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drivers[d.ID]; !ok {
		return domain.Driver{}, fmt.Errorf("update driver id=%d: %w", d.ID, ports.ErrNotFound)
	}
	s.drivers[d.ID] = d
	return d, nil
}

func (s *Store) DeleteDriver(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drivers[id]; !ok {
		return fmt.Errorf("delete driver id=%d: %w", id, ports.ErrNotFound)
	}
	delete(s.drivers, id)
	return nil
}

func (s *Store) ListRoutes(ctx context.Context) ([]domain.Route, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.routes, func(r domain.Route) int64 { return r.ID }), nil
}

func (s *Store) CreateRoute(ctx context.Context, r domain.Route) (domain.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.routes[r.ID]; ok {
		return domain.Route{}, fmt.Errorf("create route id=%d: %w", r.ID, ports.ErrConflict)
	}
	s.routes[r.ID] = r
	return r, nil
}

func (s *Store) UpdateRoute(ctx context.Context, r domain.Route) (domain.Route, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.routes[r.ID]; !ok {
		return domain.Route{}, fmt.Errorf("update route id=%d: %w", r.ID, ports.ErrNotFound)
	}
	s.routes[r.ID] = r
	return r, nil
}

func (s *Store) DeleteRoute(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.routes[id]; !ok {
		return fmt.Errorf("delete route id=%d: %w", id, ports.ErrNotFound)
	}
	delete(s.routes, id)
	return nil
}

func (s *Store) ListOrders(ctx context.Context) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortedValues(s.orders, func(o domain.Order) int64 { return o.ID }), nil
}

func (s *Store) CreateOrder(ctx context.Context, o domain.Order) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; ok {
		return domain.Order{}, fmt.Errorf("create order id=%d: %w", o.ID, ports.ErrConflict)
	}
	s.orders[o.ID] = o
	return o, nil
}

func (s *Store) UpdateOrder(ctx context.Context, o domain.Order) (domain.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[o.ID]; !ok {
		return domain.Order{}, fmt.Errorf("update order id=%d: %w", o.ID, ports.ErrNotFound)
	}
	s.orders[o.ID] = o
	return o, nil
}

func (s *Store) DeleteOrder(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.orders[id]; !ok {
		return fmt.Errorf("delete order id=%d: %w", id, ports.ErrNotFound)
	}
	delete(s.orders, id)
	return nil
}

// PutUser inserts or replaces a user keyed by username.
func (s *Store) PutUser(u domain.User) domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.ID == 0 {
		u.ID = int64(len(s.users) + 1)
	}
	s.users[u.Username] = u
	return u
}

func (s *Store) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[username]
	if !ok {
		return domain.User{}, fmt.Errorf("get user %q: %w", username, ports.ErrNotFound)
	}
	return u, nil
}

func (s *Store) HasUsers() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users) > 0
}

func (s *Store) SaveSimulation(ctx context.Context, res domain.SimulationResult) (domain.SimulationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res.ID = s.nextSimID
	s.nextSimID++
	// Results are immutable; keep a private copy of the breakdown.
	res.KPIs.FuelCostBreakdown = slices.Clone(res.KPIs.FuelCostBreakdown)
	s.simulations = append(s.simulations, res)
	return res, nil
}

func (s *Store) ListSimulations(ctx context.Context, limit int) ([]domain.SimulationResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n := len(s.simulations)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]domain.SimulationResult, 0, limit)
	for i := n - 1; i >= n-limit; i-- {
		r := s.simulations[i]
		r.KPIs.FuelCostBreakdown = slices.Clone(r.KPIs.FuelCostBreakdown)
		out = append(out, r)
	}
	return out, nil
}
