package services

import (
	"context"
	"errors"
	"fmt"
	"greencart-service/internal/domain"
	"greencart-service/internal/ports"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

const HashCost = 10

type LoginRequest struct {
	Username      string
	Password      string
	TokenDuration time.Duration
}

type LoginResult struct {
	Token   string
	User    domain.User
	Payload *domain.TokenPayload
}

// HashPassword returns the bcrypt hash used to store manager passwords.
func HashPassword(password string) ([]byte, error) {
	if password == "" {
		return nil, fmt.Errorf("hash password: %w: password is empty", ErrInvalidInput)
	}
	return bcrypt.GenerateFromPassword([]byte(password), HashCost)
}

func checkPassword(hashed []byte, password string) bool {
	return bcrypt.CompareHashAndPassword(hashed, []byte(password)) == nil
}

// Login verifies manager credentials and issues an access token.
// Unknown usernames and wrong passwords both yield ErrInvalidCredentials.
func Login(
	ctx context.Context,
	req LoginRequest,
	users ports.UserRepository,
	maker ports.TokenMaker,
) (LoginResult, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		return LoginResult{}, ErrInvalidCredentials
	}

	user, err := users.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}
		return LoginResult{}, fmt.Errorf("login: get user: %w", err)
	}

	if !checkPassword(user.PasswordHash, req.Password) {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, payload, err := maker.CreateToken(user, req.TokenDuration)
	if err != nil {
		return LoginResult{}, fmt.Errorf("login: create token: %w", err)
	}

	return LoginResult{Token: token, User: user, Payload: payload}, nil
}
