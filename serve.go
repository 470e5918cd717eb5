package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"catdistribution/backend/api"
	"catdistribution/backend/database"
	"catdistribution/backend/generator"
	"catdistribution/backend/middleware"
	"catdistribution/backend/migrations"
	"catdistribution/backend/services"
	"catdistribution/backend/stream"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(configPath *string) *cobra.Command {
	var noSeed bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the REST and websocket server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, flush, err := setup(*configPath)
			if err != nil {
				return err
			}
			defer flush()

			if err := database.InitDB(cfg.Database); err != nil {
				return err
			}
			defer database.Close()

			zap.L().Info("Running migrations...")
			if err := migrations.RunMigrations(database.DB); err != nil {
				return err
			}
			if !cfg.IsProduction() && !noSeed {
				if err := migrations.SeedTestData(database.DB); err != nil {
					zap.L().Warn("Failed to seed test data", zap.Error(err))
				}
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := middleware.InitializeFirebase(ctx, cfg.Firebase); err != nil {
				zap.L().Warn("Failed to initialize Firebase, auth token verification will be disabled", zap.Error(err))
			}

			hub := stream.NewHub(cfg.CORS.AllowedOrigins)
			images := generator.NewCatAPIImages(cfg.CatAPI.URL, cfg.CatAPI.APIKey, cfg.CatAPI.DefaultImage, cfg.CatAPI.Timeout)
			listHub := stream.NewHub(cfg.CORS.AllowedOrigins)
			gen := services.NewGeneration(cfg.Generator.Interval, services.NewCatFactory(images).Generate, hub)
			gen.SetListPublisher(listHub)

			server := api.NewServer(api.Options{
				Generation:     gen,
				Hub:            hub,
				ListHub:        listHub,
				AllowedOrigins: cfg.CORS.AllowedOrigins,
				Production:     cfg.IsProduction(),
			})

			srv := &http.Server{
				Handler:      server.Handler(),
				Addr:         ":" + cfg.Port,
				WriteTimeout: 15 * time.Second,
				ReadTimeout:  15 * time.Second,
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				zap.L().Info("Starting server", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-gctx.Done()
				zap.L().Info("Shutting down server...")

				gen.Stop()
				hub.Close()
				listHub.Close()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
	}

	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "skip seeding development data")
	return cmd
}
