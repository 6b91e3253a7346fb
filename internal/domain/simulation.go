package domain

import "time"

// Parameters supplied by a manager when running a simulation.
// StartTime and MaxHours are recorded with the result but do not
// affect the computed KPIs.
type SimulationInput struct {
	NumDrivers int
	StartTime  string
	MaxHours   float64
}

// Accumulated fuel expenditure for one route within a simulation run.
type FuelCost struct {
	Name string
	Cost float64
}

// Key performance indicators produced by one simulation run.
// FuelCostBreakdown is ordered by the first order that touched each route.
type KpiResult struct {
	TotalProfit       float64
	EfficiencyScore   float64
	OnTimeCount       int
	LateCount         int
	FuelCostBreakdown []FuelCost
}

// Counted deliveries, excluding orders skipped for a missing route.
func (k KpiResult) TotalDeliveries() int {
	return k.OnTimeCount + k.LateCount
}

// A persisted simulation run. Results are append-only and never updated.
type SimulationResult struct {
	ID        int64
	Timestamp time.Time
	Inputs    SimulationInput
	KPIs      KpiResult
}
