package memory

import "greencart-service/internal/adapters/seeds"

// Seed loads the dataset into an empty store. It reports false and does
// nothing when users already exist.
func (s *Store) Seed(ds *seeds.Dataset) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.users) > 0 {
		return false
	}

	for _, d := range ds.Drivers {
		s.drivers[d.ID] = d
	}
	for _, r := range ds.Routes {
		s.routes[r.ID] = r
	}
	for _, o := range ds.Orders {
		s.orders[o.ID] = o
	}
	for _, u := range ds.Users {
		s.users[u.Username] = u
	}

	return true
}
