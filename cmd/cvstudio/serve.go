package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jonathan/cv-studio/internal/config"
	"github.com/jonathan/cv-studio/internal/db"
	"github.com/jonathan/cv-studio/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort   int
	serveConfig string
	serveInitDB bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for editing, scoring, sharing and exporting resumes.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveInitDB, "init-db", false, "Create database tables before serving")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{Port: servePort, DatabaseURL: os.Getenv("DATABASE_URL")}
	if serveConfig != "" {
		fileCfg, err := config.LoadConfig(serveConfig)
		if err != nil {
			return err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}
	if cfg.ChromePath != "" {
		os.Setenv("CHROME_PATH", cfg.ChromePath)
	}

	if serveInitDB {
		database, err := db.Connect(context.Background(), cfg.DatabaseURL)
		if err != nil {
			return err
		}
		err = database.EnsureSchema(context.Background())
		database.Close()
		if err != nil {
			return err
		}
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
