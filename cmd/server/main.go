package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"greencart-service/internal/adapters/memory"
	"greencart-service/internal/adapters/repositories"
	"greencart-service/internal/adapters/seeds"
	"greencart-service/internal/adapters/token"
	"greencart-service/internal/api"
	"greencart-service/internal/config"
	"greencart-service/internal/platform/db"
	"greencart-service/internal/platform/obs"
	"greencart-service/internal/ports"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// stores groups the port implementations selected at startup.
type stores struct {
	fleet   ports.FleetRepository
	results ports.SimulationRepository
	users   ports.UserRepository
	ping    func(ctx context.Context) error
	close   func() error
}

// main is the application composition root.
// It wires concrete adapters (Postgres or in-memory) behind ports and starts the HTTP server.
func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := obs.NewLogger(cfg.Environment, cfg.LogLevel)
	if envErr != nil {
		logger.Debug().Msg("no .env file found (using environment variables)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := openStores(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot open storage")
	}
	defer func() {
		if err := st.close(); err != nil {
			logger.Error().Err(err).Msg("close storage")
		}
	}()

	maker, err := token.NewJWTMaker(cfg.JWTSecret)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create token maker")
	}

	router := api.NewRouter(api.Deps{
		Fleet:          st.fleet,
		Results:        st.results,
		Users:          st.users,
		Tokens:         maker,
		TokenDuration:  cfg.AccessTokenDuration,
		HistoryLimit:   cfg.HistoryLimit,
		AllowedOrigins: cfg.AllowedOrigins,
		Logger:         logger,
		HealthCheck:    st.ping,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Str("env", cfg.Environment).Msg("server listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	case <-ctx.Done():
		logger.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}

// openStores selects Postgres when DATABASE_URL is set and the in-memory
// store otherwise. Both are seeded from the same dataset file.
func openStores(ctx context.Context, cfg config.Config) (stores, error) {
	if cfg.DatabaseURL == "" {
		return openMemory(cfg.SeedPath)
	}

	conn, err := db.Open(ctx, cfg.DatabaseURL, db.PoolOptions{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		return stores{}, err
	}

	if err := initAndSeed(ctx, conn, cfg.SeedPath); err != nil {
		conn.Close()
		return stores{}, err
	}

	return stores{
		fleet:   repositories.NewPostgresFleetRepository(conn),
		results: repositories.NewPostgresSimulationRepository(conn),
		users:   repositories.NewPostgresUserRepository(conn),
		ping:    conn.PingContext,
		close:   conn.Close,
	}, nil
}

func openMemory(seedPath string) (stores, error) {
	ds, err := seeds.Load(seedPath)
	if err != nil {
		return stores{}, fmt.Errorf("open memory store: %w", err)
	}

	store := memory.NewStore()
	seeded := store.Seed(ds)
	log.Info().Str("storage", "memory").Bool("seeded", seeded).Msg("storage ready")

	return stores{
		fleet:   store,
		results: store,
		users:   store,
		close:   func() error { return nil },
	}, nil
}

func initAndSeed(ctx context.Context, conn *sql.DB, seedPath string) error {
	if err := repositories.InitSchema(ctx, conn); err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}

	seeded, err := repositories.SeedFromJSON(ctx, conn, seedPath)
	if err != nil {
		return fmt.Errorf("init and seed: %w", err)
	}
	log.Info().Str("storage", "postgres").Bool("seeded", seeded).Msg("storage ready")

	return nil
}
