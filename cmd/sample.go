package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vzahanych/weather-map/internal/config"
	"github.com/vzahanych/weather-map/internal/forecast"
	"github.com/vzahanych/weather-map/internal/sampler"
	"github.com/vzahanych/weather-map/internal/store"
	"go.uber.org/zap"
)

type sampleOptions struct {
	lat, lon           float64
	latDelta, lonDelta float64
	max                int
}

func sampleCmd() *cobra.Command {
	opts := &sampleOptions{}

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print a forecast sample for a map viewport",
		Long:  `Open the record store, sample forecast annotations for the given viewport and print them as JSON.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSample(cmd, opts)
		},
	}

	defaults := config.NewDefaultConfig()
	cmd.Flags().Float64Var(&opts.lat, "lat", 0, "viewport center latitude")
	cmd.Flags().Float64Var(&opts.lon, "lon", 0, "viewport center longitude")
	cmd.Flags().Float64Var(&opts.latDelta, "lat-delta", 0, "viewport latitude span in degrees")
	cmd.Flags().Float64Var(&opts.lonDelta, "lon-delta", 0, "viewport longitude span in degrees")
	cmd.Flags().IntVar(&opts.max, "max", defaults.Sampler.DefaultMaxCount, "maximum number of annotations")

	return cmd
}

func runSample(cmd *cobra.Command, opts *sampleOptions) error {
	cfg := config.GetConfig()
	ctx := cmd.Context()

	maxCount := opts.max
	if !cmd.Flags().Changed("max") {
		maxCount = cfg.Sampler.DefaultMaxCount
	}

	st, err := store.Open(ctx, cfg.Store, log.Logger)
	if err != nil {
		return err
	}
	defer st.Close()

	svc := sampler.NewService(st, cfg.Sampler, log.Logger, tele)

	region := forecast.Region{
		Center: forecast.Coordinate{Latitude: opts.lat, Longitude: opts.lon},
		Span:   forecast.Span{LatitudeDelta: opts.latDelta, LongitudeDelta: opts.lonDelta},
	}

	annotations, err := svc.GetForecastAnnotations(ctx, region, maxCount)
	if err != nil {
		log.Error("Failed to sample forecasts", zap.Error(err))
		return err
	}

	out, err := json.MarshalIndent(annotations, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode annotations: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
