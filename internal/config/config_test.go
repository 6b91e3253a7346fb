package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const secret = "0123456789abcdef0123456789abcdef"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", secret)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "data/seeds/greencart.json", cfg.SeedPath)
	require.Equal(t, time.Hour, cfg.AccessTokenDuration)
	require.Equal(t, 10, cfg.HistoryLimit)
	require.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, 10, cfg.DBMaxOpenConns)
	require.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("JWT_SECRET", secret)
	t.Setenv("PORT", "8081")
	t.Setenv("DATABASE_URL", "postgres://localhost/greencart")
	t.Setenv("ACCESS_TOKEN_DURATION", "15m")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:3000, https://greencart.example")
	t.Setenv("HISTORY_LIMIT", "25")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8081", cfg.Port)
	require.Equal(t, "postgres://localhost/greencart", cfg.DatabaseURL)
	require.Equal(t, 15*time.Minute, cfg.AccessTokenDuration)
	require.Equal(t, []string{"http://localhost:3000", "https://greencart.example"}, cfg.AllowedOrigins)
	require.Equal(t, 25, cfg.HistoryLimit)
}

func TestLoadRejectsShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "short")

	_, err := Load()
	require.Error(t, err)
}

func TestGet(t *testing.T) {
	t.Setenv("GREENCART_TEST_KEY", " value ")
	require.Equal(t, "value", Get("GREENCART_TEST_KEY", "fallback"))
	require.Equal(t, "fallback", Get("GREENCART_TEST_MISSING", "fallback"))
}
