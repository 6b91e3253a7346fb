package token

import (
	"errors"
	"fmt"
	"greencart-service/internal/domain"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const minSecretKeySize = 32

var (
	ErrInvalidToken = errors.New("token is invalid")
	ErrExpiredToken = errors.New("token has expired")
)

type claims struct {
	UserID   int64  `json:"uid"`
	Username string `json:"username"`
	Name     string `json:"name"`
	jwt.RegisteredClaims
}

// JWTMaker issues HS256-signed access tokens.
type JWTMaker struct {
	secretKey []byte
}

func NewJWTMaker(secretKey string) (*JWTMaker, error) {
	if len(secretKey) < minSecretKeySize {
		return nil, fmt.Errorf("new jwt maker: invalid key size: must be at least %d characters", minSecretKeySize)
	}
	return &JWTMaker{secretKey: []byte(secretKey)}, nil
}

func (m *JWTMaker) CreateToken(user domain.User, duration time.Duration) (string, *domain.TokenPayload, error) {
	tokenID, err := uuid.NewRandom()
	if err != nil {
		return "", nil, fmt.Errorf("create token: generate id: %w", err)
	}

	now := time.Now()
	c := claims{
		UserID:   user.ID,
		Username: user.Username,
		Name:     user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			Subject:   user.Username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(duration)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(m.secretKey)
	if err != nil {
		return "", nil, fmt.Errorf("create token: sign: %w", err)
	}

	return signed, c.payload(), nil
}

func (m *JWTMaker) VerifyToken(token string) (*domain.TokenPayload, error) {
	keyFunc := func(t *jwt.Token) (any, error) {
		return m.secretKey, nil
	}

	var c claims
	_, err := jwt.ParseWithClaims(token, &c, keyFunc, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	return c.payload(), nil
}

func (c claims) payload() *domain.TokenPayload {
	p := &domain.TokenPayload{
		ID:       c.ID,
		UserID:   c.UserID,
		Username: c.Username,
		Name:     c.Name,
	}
	if c.IssuedAt != nil {
		p.IssuedAt = c.IssuedAt.Time
	}
	if c.ExpiresAt != nil {
		p.ExpiredAt = c.ExpiresAt.Time
	}
	return p
}
