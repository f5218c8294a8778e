// Command jobboard runs the job board API server and its migrations.
package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	go_jobboard "github.com/openhire/go-jobboard"
	"github.com/openhire/go-jobboard/internal/api"
	"github.com/openhire/go-jobboard/internal/auth"
	"github.com/openhire/go-jobboard/internal/config"
	db2 "github.com/openhire/go-jobboard/internal/db"
	"github.com/spf13/cobra"
)

var cfgFile string

func main() {
	rootCmd := &cobra.Command{
		Use:           "jobboard",
		Short:         "Job board API server",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to config file")

	rootCmd.AddCommand(serveCmd(), migrateCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			db, err := db2.Connect(cfg.DatabaseDSN)
			if err != nil {
				return err
			}

			svc, err := go_jobboard.NewJobBoardService(db)
			if err != nil {
				return err
			}

			issuer := auth.NewTokenIssuer(cfg.TokenSecret, cfg.TokenTTL)
			handler := api.NewRouter(svc, issuer, logger)

			logger.Info("listening", "addr", cfg.Addr)
			return http.ListenAndServe(cfg.Addr, handler)
		},
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			db, err := db2.Connect(cfg.DatabaseDSN)
			if err != nil {
				return err
			}

			if err := db2.Migrate(db); err != nil {
				return err
			}
			logger.Info("migrations applied")
			return nil
		},
	}
}

func setup() (*config.Config, *slog.Logger, error) {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	return cfg, logger, nil
}
