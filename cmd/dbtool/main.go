package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"greencart-service/internal/adapters/repositories"
	"greencart-service/internal/api/dto"
	"greencart-service/internal/config"
	"greencart-service/internal/domain"
	"greencart-service/internal/platform/db"
	"greencart-service/internal/platform/obs"
	"greencart-service/internal/services"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "dbtool",
	Short: "Maintains the GreenCart database",
	Long:  `dbtool initializes the GreenCart schema, loads the seed dataset and runs delivery simulations against the configured Postgres database.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil {
			fmt.Fprintln(os.Stderr, "No .env file found (using environment variables)")
		}
		obs.NewLogger(config.Get("ENVIRONMENT", "development"), config.Get("LOG_LEVEL", "info"))
	},
	SilenceUsage: true,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create tables and seed them when empty",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), func(ctx context.Context, conn *sql.DB) error {
			log.Info().Msg("initializing database schema")
			if err := repositories.InitSchema(ctx, conn); err != nil {
				return err
			}
			log.Info().Msg("schema ready")
			return seed(ctx, conn)
		})
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the seed dataset unless users already exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(cmd.Context(), seed)
	},
}

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a delivery simulation and print its KPIs",
	RunE: func(cmd *cobra.Command, args []string) error {
		numDrivers, _ := cmd.Flags().GetInt("num-drivers")
		startTime, _ := cmd.Flags().GetString("start-time")
		maxHours, _ := cmd.Flags().GetFloat64("max-hours")

		in := domain.SimulationInput{
			NumDrivers: numDrivers,
			StartTime:  startTime,
			MaxHours:   maxHours,
		}

		return withDB(cmd.Context(), func(ctx context.Context, conn *sql.DB) error {
			fleet := repositories.NewPostgresFleetRepository(conn)
			results := repositories.NewPostgresSimulationRepository(conn)

			res, err := services.RunSimulation(ctx, in, fleet, results)
			if err != nil {
				return err
			}
			return printJSON(cmd, dto.NewSimulationResultResponse(res))
		})
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Print the most recent simulation results",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		if limit <= 0 {
			return errors.New("--limit must be positive")
		}

		return withDB(cmd.Context(), func(ctx context.Context, conn *sql.DB) error {
			results, err := repositories.NewPostgresSimulationRepository(conn).ListSimulations(ctx, limit)
			if err != nil {
				return err
			}

			out := make([]dto.SimulationResultResponse, 0, len(results))
			for _, r := range results {
				out = append(out, dto.NewSimulationResultResponse(r))
			}
			return printJSON(cmd, out)
		})
	},
}

func init() {
	simulateCmd.Flags().Int("num-drivers", 3, "Number of drivers taken from the start of the driver list")
	simulateCmd.Flags().String("start-time", "09:00", "Shift start time (HH:MM)")
	simulateCmd.Flags().Float64("max-hours", 8, "Maximum shift length in hours")

	historyCmd.Flags().Int("limit", 10, "Number of results to print")

	rootCmd.AddCommand(initCmd, seedCmd, simulateCmd, historyCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// withDB opens the database named by DATABASE_URL for the duration of fn.
func withDB(ctx context.Context, fn func(context.Context, *sql.DB) error) error {
	databaseURL := config.Get("DATABASE_URL", "")
	if databaseURL == "" {
		return errors.New("DATABASE_URL is required")
	}

	conn, err := db.Open(ctx, databaseURL, db.DefaultPoolOptions())
	if err != nil {
		return err
	}
	defer conn.Close()

	return fn(ctx, conn)
}

func seed(ctx context.Context, conn *sql.DB) error {
	seedPath := config.Get("SEED_PATH", "data/seeds/greencart.json")

	log.Info().Str("path", seedPath).Msg("seeding database")
	seeded, err := repositories.SeedFromJSON(ctx, conn, seedPath)
	if err != nil {
		return err
	}
	if !seeded {
		log.Info().Msg("users already exist, seeding skipped")
		return nil
	}
	log.Info().Msg("seeding complete")
	return nil
}

func printJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
