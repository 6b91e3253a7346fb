package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRouteFuelCost(t *testing.T) {
	tests := []struct {
		name  string
		route Route
		want  float64
	}{
		{name: "low", route: Route{Distance: 25, Traffic: TrafficLow}, want: 125},
		{name: "medium", route: Route{Distance: 15, Traffic: TrafficMedium}, want: 75},
		{name: "high adds surcharge", route: Route{Distance: 20, Traffic: TrafficHigh}, want: 140},
		{name: "zero distance", route: Route{Distance: 0, Traffic: TrafficHigh}, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.InDelta(t, tc.want, tc.route.FuelCost(), 1e-9)
		})
	}
}

func TestRouteIsLate(t *testing.T) {
	r := Route{BaseTime: 45}

	require.False(t, r.IsLate(45))
	require.False(t, r.IsLate(55), "grace period is inclusive")
	require.True(t, r.IsLate(55.5))
	require.True(t, r.IsLate(45*FatiguedSpeedModifier))
}

func TestParseTraffic(t *testing.T) {
	for _, s := range []string{"Low", "Medium", "High"} {
		got, err := ParseTraffic(s)
		require.NoError(t, err)
		require.Equal(t, Traffic(s), got)
	}

	_, err := ParseTraffic("high")
	require.Error(t, err)

	_, err = ParseTraffic("")
	require.Error(t, err)
}
