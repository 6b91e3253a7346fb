package ports

import (
	"context"
	"greencart-service/internal/domain"
	"time"
)

type UserRepository interface {
	// Returns ErrNotFound when no user has the given username.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)
}

// Contract for issuing and verifying access tokens.
type TokenMaker interface {
	CreateToken(user domain.User, duration time.Duration) (string, *domain.TokenPayload, error)
	VerifyToken(token string) (*domain.TokenPayload, error)
}
