package sampler

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/vzahanych/weather-map/internal/forecast"
)

var ErrInvalidArgument = errors.New("invalid argument")

// Sample returns at most maxCount annotations evenly spread over records
// ordered by longitude (latitude breaks ties). The input is left untouched.
func Sample(records []forecast.Record, maxCount int) ([]forecast.Annotation, error) {
	if maxCount < 0 {
		return nil, fmt.Errorf("%w: max count must not be negative, got %d", ErrInvalidArgument, maxCount)
	}
	if maxCount == 0 {
		return []forecast.Annotation{}, nil
	}

	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b forecast.Record) int {
		if c := cmp.Compare(a.Longitude, b.Longitude); c != 0 {
			return c
		}
		return cmp.Compare(a.Latitude, b.Latitude)
	})

	if len(sorted) <= maxCount {
		annotations := make([]forecast.Annotation, 0, len(sorted))
		for _, r := range sorted {
			annotations = append(annotations, forecast.NewAnnotation(r))
		}
		return annotations, nil
	}

	stride := float64(len(sorted)) / float64(maxCount)
	annotations := make([]forecast.Annotation, 0, maxCount)
	index := 0.0
	for i := 0; i < maxCount && int(index) < len(sorted); i++ {
		annotations = append(annotations, forecast.NewAnnotation(sorted[int(index)]))
		index += stride
	}

	return annotations, nil
}

// FilterRegion keeps the records strictly inside region, preserving order.
func FilterRegion(records []forecast.Record, region forecast.Region) []forecast.Record {
	filtered := make([]forecast.Record, 0, len(records))
	for _, r := range records {
		if region.Contains(r.Latitude, r.Longitude) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
