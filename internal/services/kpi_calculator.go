package services

import (
	"fmt"
	"greencart-service/internal/domain"
)

// Delivery is the per-order outcome of a simulation.
type Delivery struct {
	OrderID      int64
	DriverID     int64
	RouteName    string
	DeliveryTime float64
	Late         bool
	Bonus        float64
	Penalty      float64
	FuelCost     float64
	Profit       float64
}

// EvaluateDelivery applies the company delivery rules to a single order.
func EvaluateDelivery(order domain.Order, driver domain.Driver, route domain.Route) Delivery {
	deliveryTime := route.BaseTime * driver.SpeedModifier()
	late := route.IsLate(deliveryTime)

	var penalty, bonus float64
	if late {
		penalty = domain.LatePenalty
	}
	if order.BonusEligible() && !late {
		bonus = order.Value * domain.HighValueBonusRate
	}

	fuel := route.FuelCost()

	return Delivery{
		OrderID:      order.ID,
		DriverID:     driver.ID,
		RouteName:    route.Name,
		DeliveryTime: deliveryTime,
		Late:         late,
		Bonus:        bonus,
		Penalty:      penalty,
		FuelCost:     fuel,
		Profit:       order.Value + bonus - penalty - fuel,
	}
}

// ComputeKPIs runs the delivery simulation over the current data.
//
// The first numDrivers drivers are used and orders are assigned to them
// round-robin in input order. Orders whose route does not exist are skipped
// and contribute nothing. The function has no side effects: identical
// inputs always produce identical results.
func ComputeKPIs(
	drivers []domain.Driver,
	routes []domain.Route,
	orders []domain.Order,
	numDrivers int,
) (domain.KpiResult, error) {
	if numDrivers <= 0 {
		return domain.KpiResult{}, fmt.Errorf("compute kpis: numDrivers must be positive, got %d: %w", numDrivers, ErrInvalidInput)
	}

	available := domain.SelectDrivers(drivers, numDrivers)
	assignments, err := AssignOrdersRoundRobin(available, orders)
	if err != nil {
		return domain.KpiResult{}, fmt.Errorf("compute kpis: %w", err)
	}

	routesByID := make(map[int64]domain.Route, len(routes))
	for _, r := range routes {
		// First route wins when ids collide.
		if _, ok := routesByID[r.ID]; !ok {
			routesByID[r.ID] = r
		}
	}

	var res domain.KpiResult
	fuelIdx := make(map[string]int)
	res.FuelCostBreakdown = []domain.FuelCost{}

	for _, a := range assignments {
		route, ok := routesByID[a.Order.RouteID]
		if !ok {
			continue
		}

		d := EvaluateDelivery(a.Order, a.Driver, route)
		if d.Late {
			res.LateCount++
		} else {
			res.OnTimeCount++
		}

		if i, seen := fuelIdx[d.RouteName]; seen {
			res.FuelCostBreakdown[i].Cost += d.FuelCost
		} else {
			fuelIdx[d.RouteName] = len(res.FuelCostBreakdown)
			res.FuelCostBreakdown = append(res.FuelCostBreakdown, domain.FuelCost{Name: d.RouteName, Cost: d.FuelCost})
		}

		res.TotalProfit += d.Profit
	}

	if total := res.TotalDeliveries(); total > 0 {
		res.EfficiencyScore = float64(res.OnTimeCount) / float64(total) * 100
	}

	return res, nil
}
