package api

import (
	"context"
	"greencart-service/internal/api/handlers"
	"greencart-service/internal/ports"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Dependencies needed by the HTTP layer.
type Deps struct {
	Fleet          ports.FleetRepository
	Results        ports.SimulationRepository
	Users          ports.UserRepository
	Tokens         ports.TokenMaker
	TokenDuration  time.Duration
	HistoryLimit   int
	AllowedOrigins []string
	Logger         zerolog.Logger
	// HealthCheck, when set, is probed by /health.
	HealthCheck func(ctx context.Context) error
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(d Deps) http.Handler {
	mux := http.NewServeMux()

	authHandler := &handlers.AuthHandler{
		Users:         d.Users,
		Tokens:        d.Tokens,
		TokenDuration: d.TokenDuration,
	}
	driverHandler := &handlers.DriverHandler{Repo: d.Fleet}
	routeHandler := &handlers.RouteHandler{Repo: d.Fleet}
	orderHandler := &handlers.OrderHandler{Repo: d.Fleet}
	simHandler := &handlers.SimulationHandler{
		Fleet:        d.Fleet,
		Results:      d.Results,
		HistoryLimit: d.HistoryLimit,
	}

	protect := func(h http.HandlerFunc) http.Handler {
		return authMiddleware(d.Tokens, h)
	}

	healthHandler := &handlers.HealthHandler{Check: d.HealthCheck}

	mux.HandleFunc("GET /health", healthHandler.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	mux.Handle("GET /api/drivers", protect(driverHandler.List))
	mux.Handle("POST /api/drivers", protect(driverHandler.Create))
	mux.Handle("PUT /api/drivers/{id}", protect(driverHandler.Update))
	mux.Handle("DELETE /api/drivers/{id}", protect(driverHandler.Delete))

	mux.Handle("GET /api/routes", protect(routeHandler.List))
	mux.Handle("POST /api/routes", protect(routeHandler.Create))
	mux.Handle("PUT /api/routes/{id}", protect(routeHandler.Update))
	mux.Handle("DELETE /api/routes/{id}", protect(routeHandler.Delete))

	mux.Handle("GET /api/orders", protect(orderHandler.List))
	mux.Handle("POST /api/orders", protect(orderHandler.Create))
	mux.Handle("PUT /api/orders/{id}", protect(orderHandler.Update))
	mux.Handle("DELETE /api/orders/{id}", protect(orderHandler.Delete))

	mux.Handle("POST /api/simulation/run", protect(simHandler.Run))
	mux.Handle("GET /api/simulation/history", protect(simHandler.History))

	return loggingMiddleware(d.Logger, corsMiddleware(d.AllowedOrigins, mux))
}
