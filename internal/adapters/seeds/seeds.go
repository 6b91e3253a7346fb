package seeds

import (
	"encoding/json"
	"fmt"
	"greencart-service/internal/domain"
	"os"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

const passwordHashCost = 10

type driverSeed struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ShiftHours    float64 `json:"shiftHours"`
	PastWeekHours float64 `json:"pastWeekHours"`
	IsFatigued    bool    `json:"isFatigued"`
}

type routeSeed struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
	Traffic  string  `json:"traffic"`
	BaseTime float64 `json:"baseTime"`
}

type orderSeed struct {
	ID      int64   `json:"id"`
	Value   float64 `json:"value"`
	RouteID int64   `json:"routeId"`
}

type userSeed struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type file struct {
	Drivers []driverSeed `json:"drivers"`
	Routes  []routeSeed  `json:"routes"`
	Orders  []orderSeed  `json:"orders"`
	Users   []userSeed   `json:"users"`
}

// Dataset is the validated initial data loaded into an empty store.
// User passwords are already hashed.
type Dataset struct {
	Drivers []domain.Driver
	Routes  []domain.Route
	Orders  []domain.Order
	Users   []domain.User
}

// Load reads and validates a seed file.
func Load(path string) (*Dataset, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load seed: read %q: %w", path, err)
	}
	return Parse(bytes)
}

// Parse validates raw seed JSON and converts it into domain entities.
func Parse(data []byte) (*Dataset, error) {
	var f file
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse seed: parse json: %w", err)
	}

	ds := &Dataset{
		Drivers: make([]domain.Driver, 0, len(f.Drivers)),
		Routes:  make([]domain.Route, 0, len(f.Routes)),
		Orders:  make([]domain.Order, 0, len(f.Orders)),
		Users:   make([]domain.User, 0, len(f.Users)),
	}

	for i, d := range f.Drivers {
		name := strings.TrimSpace(d.Name)
		if d.ID <= 0 || name == "" {
			return nil, fmt.Errorf("parse seed: invalid driver at index %d", i+1)
		}
		ds.Drivers = append(ds.Drivers, domain.Driver{
			ID:            d.ID,
			Name:          name,
			ShiftHours:    d.ShiftHours,
			PastWeekHours: d.PastWeekHours,
			IsFatigued:    d.IsFatigued,
		})
	}

	for i, r := range f.Routes {
		name := strings.TrimSpace(r.Name)
		if r.ID <= 0 || name == "" {
			return nil, fmt.Errorf("parse seed: invalid route at index %d", i+1)
		}
		traffic, err := domain.ParseTraffic(r.Traffic)
		if err != nil {
			return nil, fmt.Errorf("parse seed: route at index %d: %w", i+1, err)
		}
		ds.Routes = append(ds.Routes, domain.Route{
			ID:       r.ID,
			Name:     name,
			Distance: r.Distance,
			Traffic:  traffic,
			BaseTime: r.BaseTime,
		})
	}

	for i, o := range f.Orders {
		if o.ID <= 0 || o.RouteID <= 0 {
			return nil, fmt.Errorf("parse seed: invalid order at index %d", i+1)
		}
		ds.Orders = append(ds.Orders, domain.Order{ID: o.ID, Value: o.Value, RouteID: o.RouteID})
	}

	for i, u := range f.Users {
		username := strings.TrimSpace(u.Username)
		if username == "" || u.Password == "" {
			return nil, fmt.Errorf("parse seed: user at index %d: username and password are required", i+1)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), passwordHashCost)
		if err != nil {
			return nil, fmt.Errorf("parse seed: hash password for %q: %w", username, err)
		}
		ds.Users = append(ds.Users, domain.User{
			ID:           int64(i + 1),
			Username:     username,
			Name:         strings.TrimSpace(u.Name),
			PasswordHash: hash,
		})
	}

	return ds, nil
}
