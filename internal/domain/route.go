package domain

import "fmt"

// Traffic level observed on a delivery route.
type Traffic string

const (
	TrafficLow    Traffic = "Low"
	TrafficMedium Traffic = "Medium"
	TrafficHigh   Traffic = "High"
)

func (t Traffic) Valid() bool {
	switch t {
	case TrafficLow, TrafficMedium, TrafficHigh:
		return true
	}
	return false
}

// ParseTraffic converts a raw traffic label into a Traffic value.
func ParseTraffic(s string) (Traffic, error) {
	t := Traffic(s)
	if !t.Valid() {
		return "", fmt.Errorf("parse traffic: unknown level %q (want Low, Medium or High)", s)
	}
	return t, nil
}

// Represents a delivery route.
// Distance is expressed in kilometres and BaseTime in minutes.
type Route struct {
	ID       int64
	Name     string
	Distance float64
	Traffic  Traffic
	BaseTime float64
}

// Fuel cost of a single delivery on this route, including the
// congestion surcharge for high traffic.
func (r Route) FuelCost() float64 {
	cost := r.Distance * FuelCostPerKm
	if r.Traffic == TrafficHigh {
		cost += r.Distance * HighTrafficSurchargePerKm
	}
	return cost
}

// A delivery is late once it exceeds the base time by more than the grace period.
func (r Route) IsLate(deliveryTime float64) bool {
	return deliveryTime > r.BaseTime+LateGraceMinutes
}
