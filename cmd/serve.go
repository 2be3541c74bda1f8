package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"emailfinder/internal/api"
	"emailfinder/internal/api/handler/v1handler"
	"emailfinder/internal/config"
	"emailfinder/internal/finder"
	"emailfinder/internal/lookup"
	"emailfinder/internal/worker"
	"emailfinder/pkg/logger"
	"emailfinder/pkg/metrics"

	"github.com/jackc/pgx/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/riverqueue/river"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(
	ctx context.Context,
	cfg *config.Config,
	lookups lookup.Service,
	f finder.Finder,
	riverClient *river.Client[pgx.Tx],
) func(ctx context.Context) {
	server, err := api.NewServer(ctx, api.Deps{
		Deps: v1handler.Deps{
			Lookups: lookups,
			Finder:  f,
		},
		RiverClient: riverClient,
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			meterProvider, err := metrics.NewMeterProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not setup metrics", zap.Error(err))
			}

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			f, releaseFinder, err := buildFinder(cfg, strg)
			if err != nil {
				logger.Fatal(ctx, "could not build finder", zap.Error(err))
			}
			defer releaseFinder()

			lookups := lookup.New(strg, f, lookup.NewOptions(cfg))

			// workers are stopped explicitly below to let running jobs finish
			riverClient, err := worker.Start(context.WithoutCancel(ctx), strg.Pool, lookups, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			stopWebserver := setupServer(ctx, cfg, lookups, f, riverClient)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(shutdownCtx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(shutdownCtx, "could not stop workers gracefully", zap.Error(err))
			}

			if err := meterProvider.Shutdown(shutdownCtx); err != nil {
				logger.Warn(shutdownCtx, "could not shutdown meter provider", zap.Error(err))
			}
		},
	}

	return cmd
}
