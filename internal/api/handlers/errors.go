package handlers

import (
	"errors"
	"greencart-service/internal/ports"
	"net/http"

	"github.com/rs/zerolog"
)

// writeRepoError maps repository errors onto HTTP responses.
// Unexpected errors are logged and reported without detail.
func writeRepoError(w http.ResponseWriter, r *http.Request, op string, err error) {
	switch {
	case errors.Is(err, ports.ErrNotFound):
		writeError(w, r, http.StatusNotFound, "not found")
	case errors.Is(err, ports.ErrConflict):
		writeError(w, r, http.StatusConflict, "a record with this id already exists")
	default:
		zerolog.Ctx(r.Context()).Error().Err(err).Str("op", op).Msg("repository call failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
	}
}
