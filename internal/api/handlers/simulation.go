package handlers

import (
	"errors"
	"greencart-service/internal/api/dto"
	"greencart-service/internal/ports"
	"greencart-service/internal/services"
	"net/http"

	"github.com/rs/zerolog"
)

const (
	msgMissingInputs     = "Missing required simulation inputs."
	msgSimulationDone    = "Simulation completed successfully."
	msgSimulationFailed  = "An error occurred during the simulation."
	msgHistoryFetchError = "Server error fetching history"
)

type SimulationHandler struct {
	Fleet        ports.FleetRepository
	Results      ports.SimulationRepository
	HistoryLimit int
}

// Run computes KPIs over the current fleet data and stores the result.
func (h *SimulationHandler) Run(w http.ResponseWriter, r *http.Request) {
	var req dto.SimulationRequest
	if err := decodeJSON(w, r, &req); err != nil {
		zerolog.Ctx(r.Context()).Debug().Err(err).Msg("simulation request rejected")
		writeError(w, r, http.StatusBadRequest, msgMissingInputs)
		return
	}

	res, err := services.RunSimulation(r.Context(), req.ToDomain(), h.Fleet, h.Results)
	if err != nil {
		if errors.Is(err, services.ErrNoDriversAvailable) {
			writeError(w, r, http.StatusBadRequest, "No drivers available for simulation.")
			return
		}
		if errors.Is(err, services.ErrInvalidInput) {
			writeError(w, r, http.StatusBadRequest, msgMissingInputs)
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("simulation failed")
		writeError(w, r, http.StatusInternalServerError, msgSimulationFailed)
		return
	}

	zerolog.Ctx(r.Context()).Info().
		Int64("simulation_id", res.ID).
		Int("num_drivers", res.Inputs.NumDrivers).
		Float64("total_profit", res.KPIs.TotalProfit).
		Float64("efficiency_score", res.KPIs.EfficiencyScore).
		Msg("simulation completed")

	writeJSON(w, r, http.StatusOK, dto.SimulationRunResponse{
		KPIs:    dto.NewKpiResponse(res.KPIs),
		Message: msgSimulationDone,
	})
}

// History returns the most recent simulation results, newest first.
func (h *SimulationHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := h.HistoryLimit
	if limit <= 0 {
		limit = 10
	}

	results, err := h.Results.ListSimulations(r.Context(), limit)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("list simulations failed")
		writeError(w, r, http.StatusInternalServerError, msgHistoryFetchError)
		return
	}

	res := make([]dto.SimulationResultResponse, 0, len(results))
	for _, sr := range results {
		res = append(res, dto.NewSimulationResultResponse(sr))
	}
	writeJSON(w, r, http.StatusOK, res)
}
