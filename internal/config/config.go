package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// Values come from environment variables (optionally loaded from .env first).
type Config struct {
	Environment         string        `mapstructure:"ENVIRONMENT"`
	LogLevel            string        `mapstructure:"LOG_LEVEL"`
	Port                string        `mapstructure:"PORT"`
	DatabaseURL         string        `mapstructure:"DATABASE_URL"`
	SeedPath            string        `mapstructure:"SEED_PATH"`
	JWTSecret           string        `mapstructure:"JWT_SECRET"`
	AccessTokenDuration time.Duration `mapstructure:"ACCESS_TOKEN_DURATION"`
	AllowedOrigins      []string      `mapstructure:"ALLOWED_ORIGINS"`
	HistoryLimit        int           `mapstructure:"HISTORY_LIMIT"`
	DBMaxOpenConns      int           `mapstructure:"DB_MAX_OPEN_CONNS"`
	DBMaxIdleConns      int           `mapstructure:"DB_MAX_IDLE_CONNS"`
	DBConnMaxLifetime   time.Duration `mapstructure:"DB_CONN_MAX_LIFETIME"`
}

var defaults = map[string]any{
	"ENVIRONMENT":           "production",
	"LOG_LEVEL":             "info",
	"PORT":                  "5000",
	"DATABASE_URL":          "",
	"SEED_PATH":             "data/seeds/greencart.json",
	"JWT_SECRET":            "",
	"ACCESS_TOKEN_DURATION": "1h",
	"ALLOWED_ORIGINS":       "*",
	"HISTORY_LIMIT":         10,
	"DB_MAX_OPEN_CONNS":     10,
	"DB_MAX_IDLE_CONNS":     5,
	"DB_CONN_MAX_LIFETIME":  "30m",
}

// Load reads configuration from environment variables, applying defaults.
func Load() (Config, error) {
	v := viper.New()
	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	cfg.AllowedOrigins = splitList(cfg.AllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

func (c Config) Validate() error {
	if len(c.JWTSecret) < 32 {
		return fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	if c.AccessTokenDuration <= 0 {
		return fmt.Errorf("ACCESS_TOKEN_DURATION must be positive")
	}
	if c.HistoryLimit <= 0 {
		return fmt.Errorf("HISTORY_LIMIT must be positive")
	}
	if c.DBMaxOpenConns < 0 || c.DBMaxIdleConns < 0 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS and DB_MAX_IDLE_CONNS must not be negative")
	}
	return nil
}

// Get returns the environment value for key, or fallback when unset.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// splitList normalises comma separated values that arrive as a single element.
func splitList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
