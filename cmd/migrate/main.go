package main

import (
	"flag"
	"fmt"
	"os"

	"catdistribution/backend/config"
	"catdistribution/backend/database"
	"catdistribution/backend/logging"
	"catdistribution/backend/migrations"

	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", os.Getenv("CATDIST_CONFIG"), "path to a YAML config file")
	seed := flag.Bool("seed", false, "also insert development data")
	flag.Parse()

	if err := run(*configPath, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "migrate: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, seed bool) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	flush, err := logging.Install(cfg.Env, cfg.LogLevel)
	if err != nil {
		return err
	}
	defer flush()

	// Initialize database connection
	if err := database.InitDB(cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	if err := migrations.RunMigrations(database.DB); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	if seed && !cfg.IsProduction() {
		if err := migrations.SeedTestData(database.DB); err != nil {
			return err
		}
	}

	zap.L().Info("Migrations completed successfully")
	return nil
}
