package services

import (
	"context"
	"testing"
	"time"

	"greencart-service/internal/adapters/memory"
	"greencart-service/internal/adapters/token"
	"greencart-service/internal/domain"

	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	ctx := context.Background()

	hash, err := HashPassword("greencart123")
	require.NoError(t, err)

	store := memory.NewStore()
	store.PutUser(domain.User{ID: 1, Username: "manager", Name: "Fleet Manager", PasswordHash: hash})

	maker, err := token.NewJWTMaker("12345678901234567890123456789012")
	require.NoError(t, err)

	res, err := Login(ctx, LoginRequest{Username: "manager", Password: "greencart123", TokenDuration: time.Hour}, store, maker)
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, "Fleet Manager", res.User.Name)

	payload, err := maker.VerifyToken(res.Token)
	require.NoError(t, err)
	require.Equal(t, int64(1), payload.UserID)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{name: "wrong password", username: "manager", password: "nope"},
		{name: "unknown user", username: "ghost", password: "greencart123"},
		{name: "empty username", username: " ", password: "greencart123"},
		{name: "empty password", username: "manager", password: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Login(ctx, LoginRequest{Username: tc.username, Password: tc.password, TokenDuration: time.Hour}, store, maker)
			require.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestHashPasswordEmpty(t *testing.T) {
	_, err := HashPassword("")
	require.ErrorIs(t, err, ErrInvalidInput)
}
