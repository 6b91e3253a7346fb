package handlers

import (
	"greencart-service/internal/api/dto"
	"greencart-service/internal/ports"
	"net/http"
)

// RouteHandler exposes CRUD endpoints for delivery routes.
type RouteHandler struct {
	Repo ports.RouteRepository
}

func (h *RouteHandler) List(w http.ResponseWriter, r *http.Request) {
	routes, err := h.Repo.ListRoutes(r.Context())
	if err != nil {
		writeRepoError(w, r, "list routes", err)
		return
	}

	res := make([]dto.RouteResponse, 0, len(routes))
	for _, rt := range routes {
		res = append(res, dto.NewRouteResponse(rt))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *RouteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	rt, err := h.Repo.CreateRoute(r.Context(), req.ToDomain())
	if err != nil {
		writeRepoError(w, r, "create route", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.NewRouteResponse(rt))
}

func (h *RouteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.RouteRequest
	req.ID = id
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.ID != id {
		writeError(w, r, http.StatusBadRequest, "id in body does not match path")
		return
	}

	rt, err := h.Repo.UpdateRoute(r.Context(), req.ToDomain())
	if err != nil {
		writeRepoError(w, r, "update route", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewRouteResponse(rt))
}

func (h *RouteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.DeleteRoute(r.Context(), id); err != nil {
		writeRepoError(w, r, "delete route", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.MessageResponse{Message: "Deleted successfully"})
}
