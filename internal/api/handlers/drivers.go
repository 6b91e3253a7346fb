package handlers

import (
	"greencart-service/internal/api/dto"
	"greencart-service/internal/ports"
	"net/http"
)

// DriverHandler exposes CRUD endpoints for drivers.
type DriverHandler struct {
	Repo ports.DriverRepository
}

func (h *DriverHandler) List(w http.ResponseWriter, r *http.Request) {
	drivers, err := h.Repo.ListDrivers(r.Context())
	if err != nil {
		writeRepoError(w, r, "list drivers", err)
		return
	}

	res := make([]dto.DriverResponse, 0, len(drivers))
	for _, d := range drivers {
		res = append(res, dto.NewDriverResponse(d))
	}
	writeJSON(w, r, http.StatusOK, res)
}

func (h *DriverHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.DriverRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	d, err := h.Repo.CreateDriver(r.Context(), req.ToDomain())
	if err != nil {
		writeRepoError(w, r, "create driver", err)
		return
	}
	writeJSON(w, r, http.StatusCreated, dto.NewDriverResponse(d))
}

func (h *DriverHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	var req dto.DriverRequest
	req.ID = id
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if req.ID != id {
		writeError(w, r, http.StatusBadRequest, "id in body does not match path")
		return
	}

	d, err := h.Repo.UpdateDriver(r.Context(), req.ToDomain())
	if err != nil {
		writeRepoError(w, r, "update driver", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.NewDriverResponse(d))
}

func (h *DriverHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Repo.DeleteDriver(r.Context(), id); err != nil {
		writeRepoError(w, r, "delete driver", err)
		return
	}
	writeJSON(w, r, http.StatusOK, dto.MessageResponse{Message: "Deleted successfully"})
}
