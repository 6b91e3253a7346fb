package token

import (
	"testing"
	"time"

	"greencart-service/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSecret = "12345678901234567890123456789012"

var testUser = domain.User{ID: 7, Username: "manager", Name: "Fleet Manager"}

func TestJWTMaker(t *testing.T) {
	maker, err := NewJWTMaker(testSecret)
	require.NoError(t, err)

	duration := time.Minute
	issuedAt := time.Now()
	expiredAt := issuedAt.Add(duration)

	token, payload, err := maker.CreateToken(testUser, duration)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, payload)

	payload, err = maker.VerifyToken(token)
	require.NoError(t, err)
	require.NotNil(t, payload)

	require.NotEmpty(t, payload.ID)
	require.Equal(t, testUser.ID, payload.UserID)
	require.Equal(t, testUser.Username, payload.Username)
	require.Equal(t, testUser.Name, payload.Name)
	require.WithinDuration(t, issuedAt, payload.IssuedAt, time.Second)
	require.WithinDuration(t, expiredAt, payload.ExpiredAt, time.Second)
}

func TestExpiredJWTToken(t *testing.T) {
	maker, err := NewJWTMaker(testSecret)
	require.NoError(t, err)

	token, payload, err := maker.CreateToken(testUser, -time.Minute)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.NotNil(t, payload)

	payload, err = maker.VerifyToken(token)
	require.EqualError(t, err, ErrExpiredToken.Error())
	require.Nil(t, payload)
}

func TestInvalidJWTTokenAlgNone(t *testing.T) {
	c := claims{
		UserID: testUser.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, c).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	maker, err := NewJWTMaker(testSecret)
	require.NoError(t, err)

	payload, err := maker.VerifyToken(token)
	require.EqualError(t, err, ErrInvalidToken.Error())
	require.Nil(t, payload)
}

func TestJWTTokenWrongSecret(t *testing.T) {
	maker, err := NewJWTMaker(testSecret)
	require.NoError(t, err)
	other, err := NewJWTMaker("abcdefghijabcdefghijabcdefghijab")
	require.NoError(t, err)

	token, _, err := other.CreateToken(testUser, time.Minute)
	require.NoError(t, err)

	_, err = maker.VerifyToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewJWTMakerShortKey(t *testing.T) {
	_, err := NewJWTMaker("short")
	require.Error(t, err)
}
