package dto

import (
	"greencart-service/internal/domain"
	"strings"
	"time"
)

type SimulationRequest struct {
	NumDrivers int     `json:"numDrivers" validate:"gt=0"`
	StartTime  string  `json:"startTime" validate:"required"`
	MaxHours   float64 `json:"maxHours" validate:"gt=0"`
}

func (r *SimulationRequest) Normalize() { r.StartTime = strings.TrimSpace(r.StartTime) }

func (r SimulationRequest) ToDomain() domain.SimulationInput {
	return domain.SimulationInput{
		NumDrivers: r.NumDrivers,
		StartTime:  r.StartTime,
		MaxHours:   r.MaxHours,
	}
}

type FuelCostResponse struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
}

type KpiResponse struct {
	TotalProfit       float64            `json:"totalProfit"`
	EfficiencyScore   float64            `json:"efficiencyScore"`
	OnTimeCount       int                `json:"onTimeCount"`
	LateCount         int                `json:"lateCount"`
	FuelCostBreakdown []FuelCostResponse `json:"fuelCostBreakdown"`
}

func NewKpiResponse(k domain.KpiResult) KpiResponse {
	fuel := make([]FuelCostResponse, 0, len(k.FuelCostBreakdown))
	for _, f := range k.FuelCostBreakdown {
		fuel = append(fuel, FuelCostResponse{Name: f.Name, Cost: f.Cost})
	}
	return KpiResponse{
		TotalProfit:       k.TotalProfit,
		EfficiencyScore:   k.EfficiencyScore,
		OnTimeCount:       k.OnTimeCount,
		LateCount:         k.LateCount,
		FuelCostBreakdown: fuel,
	}
}

type SimulationRunResponse struct {
	KPIs    KpiResponse `json:"kpis"`
	Message string      `json:"message"`
}

type SimulationInputResponse struct {
	NumDrivers int     `json:"numDrivers"`
	StartTime  string  `json:"startTime"`
	MaxHours   float64 `json:"maxHours"`
}

type SimulationResultResponse struct {
	ID        int64                   `json:"id"`
	Timestamp time.Time               `json:"timestamp"`
	Inputs    SimulationInputResponse `json:"inputs"`
	KPIs      KpiResponse             `json:"kpis"`
}

func NewSimulationResultResponse(r domain.SimulationResult) SimulationResultResponse {
	return SimulationResultResponse{
		ID:        r.ID,
		Timestamp: r.Timestamp,
		Inputs: SimulationInputResponse{
			NumDrivers: r.Inputs.NumDrivers,
			StartTime:  r.Inputs.StartTime,
			MaxHours:   r.Inputs.MaxHours,
		},
		KPIs: NewKpiResponse(r.KPIs),
	}
}
