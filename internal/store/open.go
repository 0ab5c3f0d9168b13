package store

import (
	"context"
	"fmt"

	"github.com/vzahanych/weather-map/internal/config"
	"go.uber.org/zap"
)

// Open creates the record store and seeds it. The caller owns the returned
// store and must Close it on every exit path.
func Open(ctx context.Context, cfg config.StoreConfig, logger *zap.Logger) (RecordStore, error) {
	seed := DefaultSeed()
	source := "builtin"
	if cfg.SeedFile != "" {
		records, err := LoadSeedFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
		seed = records
		source = cfg.SeedFile
	}

	st := NewMemoryStore()
	inserted, err := Seed(ctx, st, seed)
	if err != nil {
		st.Close()
		return nil, fmt.Errorf("failed to seed record store: %w", err)
	}

	logger.Info("Record store opened",
		zap.String("seed_source", source),
		zap.Int("seeded_records", inserted))

	return st, nil
}
