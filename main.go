package main

import (
	"fmt"
	"os"

	"catdistribution/backend/config"
	"catdistribution/backend/database"
	"catdistribution/backend/logging"
	"catdistribution/backend/migrations"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "catdist",
		Short:         "Cat distribution backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", os.Getenv("CATDIST_CONFIG"), "path to a YAML config file")

	rootCmd.AddCommand(newServeCmd(&configPath))

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(configPath, func(config.Config) error {
				return migrations.RunMigrations(database.DB)
			})
		},
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Insert development users and sample cats",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(configPath, func(cfg config.Config) error {
				if cfg.IsProduction() {
					return fmt.Errorf("refusing to seed a production database")
				}
				if err := migrations.RunMigrations(database.DB); err != nil {
					return err
				}
				return migrations.SeedTestData(database.DB)
			})
		},
	})

	return rootCmd
}

// setup loads the configuration and installs the global logger
func setup(configPath string) (config.Config, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, nil, err
	}
	flush, err := logging.Install(cfg.Env, cfg.LogLevel)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, flush, nil
}

func withDatabase(configPath string, fn func(config.Config) error) error {
	cfg, flush, err := setup(configPath)
	if err != nil {
		return err
	}
	defer flush()

	if err := database.InitDB(cfg.Database); err != nil {
		return err
	}
	defer database.Close()

	if err := fn(cfg); err != nil {
		return err
	}
	zap.L().Info("Done")
	return nil
}
