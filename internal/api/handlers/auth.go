package handlers

import (
	"errors"
	"greencart-service/internal/api/dto"
	"greencart-service/internal/ports"
	"greencart-service/internal/services"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

type AuthHandler struct {
	Users         ports.UserRepository
	Tokens        ports.TokenMaker
	TokenDuration time.Duration
}

// Login exchanges manager credentials for a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	res, err := services.Login(r.Context(), services.LoginRequest{
		Username:      req.Username,
		Password:      req.Password,
		TokenDuration: h.TokenDuration,
	}, h.Users, h.Tokens)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			writeError(w, r, http.StatusBadRequest, "Invalid credentials")
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("login failed")
		writeError(w, r, http.StatusInternalServerError, "Server error")
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LoginResponse{
		Token:     res.Token,
		ExpiresAt: res.Payload.ExpiredAt,
		User: dto.UserResponse{
			ID:       res.User.ID,
			Name:     res.User.Name,
			Username: res.User.Username,
		},
	})
}
