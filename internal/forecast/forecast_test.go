package forecast

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCondition(t *testing.T) {
	for _, c := range Conditions() {
		parsed, err := ParseCondition(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, parsed)
	}

	_, err := ParseCondition("Fog")
	assert.True(t, errors.Is(err, ErrUnknownCondition))
}

func TestConditionJSON(t *testing.T) {
	data, err := json.Marshal(PartlyCloudy)
	require.NoError(t, err)
	assert.Equal(t, `"PartlyCloudy"`, string(data))

	var c Condition
	require.NoError(t, json.Unmarshal([]byte(`"Thunderstorms"`), &c))
	assert.Equal(t, Thunderstorms, c)

	assert.Error(t, json.Unmarshal([]byte(`"Hail"`), &c))

	_, err = json.Marshal(Condition(42))
	assert.Error(t, err)
}

func TestConditionValid(t *testing.T) {
	assert.True(t, Snow.Valid())
	assert.False(t, Condition(-1).Valid())
	assert.False(t, Condition(6).Valid())
	assert.Equal(t, "Condition(6)", Condition(6).String())
}

func TestNewAnnotation(t *testing.T) {
	r := Record{
		Place:     "Denver",
		Latitude:  39.752601,
		Longitude: -104.982605,
		High:      40,
		Low:       30,
		Windchill: 21,
		Condition: Snow,
	}

	a := NewAnnotation(r)
	assert.Equal(t, r, a.Record)
	assert.Equal(t, "Denver", a.Title)
	assert.Equal(t, Coordinate{Latitude: 39.752601, Longitude: -104.982605}, a.Coordinate)
	assert.Equal(t, "High: 40° Low: 30° Windchill: 21°", a.Subtitle)
}

func TestRegionContains(t *testing.T) {
	region := Region{
		Center: Coordinate{Latitude: 40, Longitude: -100},
		Span:   Span{LatitudeDelta: 10, LongitudeDelta: 20},
	}

	b := region.Bounds()
	assert.Equal(t, Bounds{LatMin: 35, LatMax: 45, LonMin: -110, LonMax: -90}, b)

	assert.True(t, region.Contains(39.75, -104.98))
	assert.False(t, region.Contains(47.6, -122.3))
	// Bounds are exclusive.
	assert.False(t, region.Contains(35, -100))
	assert.False(t, region.Contains(40, -90))

	empty := Region{Center: Coordinate{Latitude: 40, Longitude: -100}}
	assert.False(t, empty.Contains(40, -100))
}
