package handlers

import (
	"greencart-service/internal/api/dto"
	"greencart-service/internal/ports"
	"net/http"
)

// OrderHandler exposes CRUD endpoints for customer orders.
type OrderHandler struct {
	Repo ports.OrderRepository
}

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Repo.ListOrders(r.Context())
	if err != nil {
		writeRepoError(w, r, "list orders", err)
		return
	}

	res := make([]dto.OrderResponse, 0, len(orders))
	for _, o := range orders {
		res = append(res, dto.NewOrderResponse(o))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.OrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	o, err := h.Repo.CreateOrder(r.Context(), req.ToDomain())
	if err != nil {
		writeRepoError(w, r, "create order", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.NewOrderResponse(o))
}

func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.OrderRequest
	req.ID = id
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.ID != id {
		writeError(w, r, http.StatusBadRequest, "id in body does not match path")
		return
	}

	o, err := h.Repo.UpdateOrder(r.Context(), req.ToDomain())
	if err != nil {
		writeRepoError(w, r, "update order", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewOrderResponse(o))
}

func (h *OrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.DeleteOrder(r.Context(), id); err != nil {
		writeRepoError(w, r, "delete order", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.MessageResponse{Message: "Deleted successfully"})
}
