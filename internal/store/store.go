package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/vzahanych/weather-map/internal/forecast"
)

var (
	// ErrClosed is returned by every operation on a store after Close.
	ErrClosed = errors.New("record store is closed")
	// ErrInvalidRecord is returned when a record breaks a stored-data invariant.
	ErrInvalidRecord = errors.New("invalid forecast record")
)

// RecordStore is the keyed collection of forecast records the sampler reads from.
type RecordStore interface {
	// AllRecords returns every stored record in insertion order.
	AllRecords(ctx context.Context) ([]forecast.Record, error)
	Count(ctx context.Context) (int, error)
	Insert(ctx context.Context, records ...forecast.Record) error
	Close() error
}

// MemoryStore is a concurrency-safe in-memory RecordStore.
type MemoryStore struct {
	mu      sync.RWMutex
	records []forecast.Record
	closed  bool
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) AllRecords(ctx context.Context) ([]forecast.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, ErrClosed
	}

	out := make([]forecast.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}

func (s *MemoryStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return 0, ErrClosed
	}
	return len(s.records), nil
}

// Insert appends records atomically: either all are stored or none.
func (s *MemoryStore) Insert(ctx context.Context, records ...forecast.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	for i, r := range records {
		if err := validateRecord(r); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	s.records = append(s.records, records...)
	return nil
}

// Close releases the stored records. Calling it more than once is a no-op.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	s.records = nil
	return nil
}

func validateRecord(r forecast.Record) error {
	if r.Place == "" {
		return fmt.Errorf("%w: empty place", ErrInvalidRecord)
	}
	if !r.Condition.Valid() {
		return fmt.Errorf("%w: place %q: %w", ErrInvalidRecord, r.Place, forecast.ErrUnknownCondition)
	}
	return nil
}
