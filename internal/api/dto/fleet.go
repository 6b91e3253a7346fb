package dto

import (
	"greencart-service/internal/domain"
	"strings"
)

type DriverRequest struct {
	ID            int64   `json:"id" validate:"gt=0"`
	Name          string  `json:"name" validate:"required,max=100"`
	ShiftHours    float64 `json:"shiftHours" validate:"gte=0,lte=24"`
	PastWeekHours float64 `json:"pastWeekHours" validate:"gte=0,lte=168"`
	IsFatigued    bool    `json:"isFatigued"`
}

func (r *DriverRequest) Normalize() { r.Name = strings.TrimSpace(r.Name) }

func (r DriverRequest) ToDomain() domain.Driver {
	return domain.Driver{
		ID:            r.ID,
		Name:          r.Name,
		ShiftHours:    r.ShiftHours,
		PastWeekHours: r.PastWeekHours,
		IsFatigued:    r.IsFatigued,
	}
}

type DriverResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	ShiftHours    float64 `json:"shiftHours"`
	PastWeekHours float64 `json:"pastWeekHours"`
	IsFatigued    bool    `json:"isFatigued"`
}

func NewDriverResponse(d domain.Driver) DriverResponse {
	return DriverResponse{
		ID:            d.ID,
		Name:          d.Name,
		ShiftHours:    d.ShiftHours,
		PastWeekHours: d.PastWeekHours,
		IsFatigued:    d.IsFatigued,
	}
}

type RouteRequest struct {
	ID       int64   `json:"id" validate:"gt=0"`
	Name     string  `json:"name" validate:"required,max=100"`
	Distance float64 `json:"distance" validate:"gt=0"`
	Traffic  string  `json:"traffic" validate:"required,oneof=Low Medium High"`
	BaseTime float64 `json:"baseTime" validate:"gt=0"`
}

func (r *RouteRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Traffic = strings.TrimSpace(r.Traffic)
}

func (r RouteRequest) ToDomain() domain.Route {
	return domain.Route{
		ID:       r.ID,
		Name:     r.Name,
		Distance: r.Distance,
		Traffic:  domain.Traffic(r.Traffic),
		BaseTime: r.BaseTime,
	}
}

type RouteResponse struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Distance float64 `json:"distance"`
	Traffic  string  `json:"traffic"`
	BaseTime float64 `json:"baseTime"`
}

func NewRouteResponse(r domain.Route) RouteResponse {
	return RouteResponse{
		ID:       r.ID,
		Name:     r.Name,
		Distance: r.Distance,
		Traffic:  string(r.Traffic),
		BaseTime: r.BaseTime,
	}
}

type OrderRequest struct {
	ID      int64   `json:"id" validate:"gt=0"`
	Value   float64 `json:"value" validate:"gte=0"`
	RouteID int64   `json:"routeId" validate:"gt=0"`
}

func (r *OrderRequest) Normalize() {}

func (r OrderRequest) ToDomain() domain.Order {
	return domain.Order{ID: r.ID, Value: r.Value, RouteID: r.RouteID}
}

type OrderResponse struct {
	ID      int64   `json:"id"`
	Value   float64 `json:"value"`
	RouteID int64   `json:"routeId"`
}

func NewOrderResponse(o domain.Order) OrderResponse {
	return OrderResponse{ID: o.ID, Value: o.Value, RouteID: o.RouteID}
}

type MessageResponse struct {
	Message string `json:"message"`
}
