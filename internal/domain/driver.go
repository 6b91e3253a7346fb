package domain

import "fmt"

// Represents a delivery driver managed by the operations team.
// ShiftHours and PastWeekHours are recorded for reporting; only the
// fatigue flag influences simulated delivery times.
type Driver struct {
	ID            int64
	Name          string
	ShiftHours    float64
	PastWeekHours float64
	IsFatigued    bool
}

// Multiplier applied to a route's base time when this driver delivers on it.
func (d Driver) SpeedModifier() float64 {
	if d.IsFatigued {
		return FatiguedSpeedModifier
	}
	return 1.0
}

func (d Driver) String() string {
	return fmt.Sprintf("driver %d (%s)", d.ID, d.Name)
}

// SelectDrivers returns the first n drivers in the given order.
// When n exceeds the number of drivers the whole list is returned.
func SelectDrivers(drivers []Driver, n int) []Driver {
	if n <= 0 {
		return nil
	}
	if n > len(drivers) {
		n = len(drivers)
	}
	return drivers[:n]
}
