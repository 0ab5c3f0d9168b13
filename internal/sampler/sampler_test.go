package sampler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vzahanych/weather-map/internal/forecast"
	"github.com/vzahanych/weather-map/internal/store"
)

func places(annotations []forecast.Annotation) []string {
	out := make([]string, 0, len(annotations))
	for _, a := range annotations {
		out = append(out, a.Title)
	}
	return out
}

func TestSample_DefaultSeedStride(t *testing.T) {
	annotations, err := Sample(store.DefaultSeed(), 3)
	require.NoError(t, err)

	// Sorted: S.F., Seattle, Denver, Chicago, Miami, Boston, Fayetteville.
	// Stride 7/3 picks positions 0, 2 and 4.
	assert.Equal(t, []string{"S.F.", "Denver", "Miami"}, places(annotations))
}

func TestSample_ReturnsAllWhenUnderLimit(t *testing.T) {
	for _, maxCount := range []int{7, 8, 100} {
		annotations, err := Sample(store.DefaultSeed(), maxCount)
		require.NoError(t, err)
		assert.Equal(t,
			[]string{"S.F.", "Seattle", "Denver", "Chicago", "Miami", "Boston", "Fayetteville"},
			places(annotations))
	}
}

func TestSample_LengthMatchesMaxCount(t *testing.T) {
	records := store.DefaultSeed()
	for maxCount := 0; maxCount < len(records); maxCount++ {
		annotations, err := Sample(records, maxCount)
		require.NoError(t, err)
		assert.Len(t, annotations, maxCount, "maxCount=%d", maxCount)
		assertLongitudeOrder(t, annotations)
	}
}

func TestSample_ZeroMaxCount(t *testing.T) {
	annotations, err := Sample(store.DefaultSeed(), 0)
	require.NoError(t, err)
	assert.NotNil(t, annotations)
	assert.Empty(t, annotations)
}

func TestSample_NegativeMaxCount(t *testing.T) {
	annotations, err := Sample(store.DefaultSeed(), -1)
	assert.Nil(t, annotations)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestSample_SingleRecord(t *testing.T) {
	records := []forecast.Record{{Place: "Boston", Latitude: 42.35, Longitude: -71.07, Condition: forecast.PartlyCloudy}}

	annotations, err := Sample(records, 5)
	require.NoError(t, err)
	require.Len(t, annotations, 1)
	assert.Equal(t, "Boston", annotations[0].Title)
}

func TestSample_EmptyInput(t *testing.T) {
	annotations, err := Sample(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, annotations)
}

func TestSample_Deterministic(t *testing.T) {
	records := store.DefaultSeed()

	first, err := Sample(records, 4)
	require.NoError(t, err)
	second, err := Sample(records, 4)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSample_DoesNotMutateInput(t *testing.T) {
	records := store.DefaultSeed()
	original := store.DefaultSeed()

	_, err := Sample(records, 3)
	require.NoError(t, err)
	assert.Equal(t, original, records)
}

func TestSample_LatitudeBreaksLongitudeTies(t *testing.T) {
	records := []forecast.Record{
		{Place: "north", Latitude: 50, Longitude: 10},
		{Place: "south", Latitude: 10, Longitude: 10},
		{Place: "west", Latitude: 30, Longitude: -5},
		{Place: "dup", Latitude: 10, Longitude: 10},
	}

	annotations, err := Sample(records, 10)
	require.NoError(t, err)
	// Equal keys keep their input order.
	assert.Equal(t, []string{"west", "south", "dup", "north"}, places(annotations))
}

func TestSample_DuplicatePlacesKept(t *testing.T) {
	records := append(store.DefaultSeed(), store.DefaultSeed()[6])

	annotations, err := Sample(records, len(records))
	require.NoError(t, err)
	assert.Len(t, annotations, 8)
	assert.Equal(t, "Fayetteville", annotations[6].Title)
	assert.Equal(t, "Fayetteville", annotations[7].Title)
}

func TestSample_StrideOverLargeInput(t *testing.T) {
	records := make([]forecast.Record, 100)
	for i := range records {
		records[i] = forecast.Record{Place: "p", Longitude: float64(99 - i)}
	}

	annotations, err := Sample(records, 30)
	require.NoError(t, err)
	require.Len(t, annotations, 30)
	assertLongitudeOrder(t, annotations)
	assert.Equal(t, 0.0, annotations[0].Longitude)
	assert.Less(t, annotations[29].Longitude, 100.0)
}

func TestFilterRegion(t *testing.T) {
	region := forecast.Region{
		Center: forecast.Coordinate{Latitude: 40, Longitude: -100},
		Span:   forecast.Span{LatitudeDelta: 10, LongitudeDelta: 50},
	}

	filtered := FilterRegion(store.DefaultSeed(), region)
	names := make([]string, 0, len(filtered))
	for _, r := range filtered {
		names = append(names, r.Place)
	}
	assert.Equal(t, []string{"S.F.", "Denver", "Chicago"}, names)
}

func assertLongitudeOrder(t *testing.T, annotations []forecast.Annotation) {
	t.Helper()
	for i := 1; i < len(annotations); i++ {
		assert.LessOrEqual(t, annotations[i-1].Longitude, annotations[i].Longitude)
	}
}
