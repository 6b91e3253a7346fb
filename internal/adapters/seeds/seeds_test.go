package seeds

import (
	"testing"

	"greencart-service/internal/domain"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const sample = `{
  "drivers": [{"id": 1, "name": "Visista", "shiftHours": 6, "pastWeekHours": 38, "isFatigued": false}],
  "routes": [{"id": 101, "name": "Ahobilam Puram", "distance": 15, "traffic": "Medium", "baseTime": 45}],
  "orders": [{"id": 1001, "value": 800, "routeId": 101}],
  "users": [{"username": "manager", "password": "secret123", "name": "Fleet Manager"}]
}`

func TestParse(t *testing.T) {
	ds, err := Parse([]byte(sample))
	require.NoError(t, err)

	require.Equal(t, []domain.Driver{{ID: 1, Name: "Visista", ShiftHours: 6, PastWeekHours: 38}}, ds.Drivers)
	require.Equal(t, []domain.Route{{ID: 101, Name: "Ahobilam Puram", Distance: 15, Traffic: domain.TrafficMedium, BaseTime: 45}}, ds.Routes)
	require.Equal(t, []domain.Order{{ID: 1001, Value: 800, RouteID: 101}}, ds.Orders)

	require.Len(t, ds.Users, 1)
	require.Equal(t, "manager", ds.Users[0].Username)
	require.NoError(t, bcrypt.CompareHashAndPassword(ds.Users[0].PasswordHash, []byte("secret123")))
}

func TestParseRejectsInvalidData(t *testing.T) {
	tests := []struct {
		name string
		json string
	}{
		{name: "malformed", json: `{"drivers": [`},
		{name: "driver without name", json: `{"drivers": [{"id": 1}]}`},
		{name: "route with unknown traffic", json: `{"routes": [{"id": 1, "name": "X", "traffic": "Jammed"}]}`},
		{name: "order without route", json: `{"orders": [{"id": 1, "value": 10}]}`},
		{name: "user without password", json: `{"users": [{"username": "x"}]}`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse([]byte(tc.json))
			require.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("does/not/exist.json")
	require.Error(t, err)
}
