package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"
	"github.com/vzahanych/weather-map/internal/config"
	"github.com/vzahanych/weather-map/internal/sampler"
	"github.com/vzahanych/weather-map/internal/server"
	"github.com/vzahanych/weather-map/internal/store"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

func serverCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "server",
		Short: "Start the weather map HTTP server",
		Long:  `Start the HTTP server that answers map viewport queries with sampled forecast annotations.`,
		RunE:  runServer,
	}
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg := config.GetConfig()
	ctx := cmd.Context()

	log.Info("Starting weather map server",
		zap.String("config_path", configPath),
		zap.Bool("telemetry_enabled", tele.IsEnabled()),
		zap.Int("server_port", cfg.Server.Port),
		zap.Bool("filter_region", cfg.Sampler.FilterRegion))

	st, err := store.Open(ctx, cfg.Store, log.Logger)
	if err != nil {
		log.Error("Failed to open record store", zap.Error(err))
		return err
	}
	defer func() {
		if err := st.Close(); err != nil {
			log.Warn("Failed to close record store", zap.Error(err))
		}
	}()

	svc := sampler.NewService(st, cfg.Sampler, log.Logger, tele)
	srv := server.NewServer(cfg, svc, log.Logger, tele)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	select {
	case err := <-errChan:
		if err != nil {
			log.Error("Server error", zap.Error(err))
		}
		return err
	case <-ctx.Done():
		log.Info("Shutting down server")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Error during server shutdown", zap.Error(err))
			return err
		}

		log.Info("Server shutdown complete")
		return nil
	}
}
