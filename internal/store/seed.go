package store

import (
	"context"
	"fmt"
	"os"

	"github.com/vzahanych/weather-map/internal/forecast"
	"gopkg.in/yaml.v3"
)

// DefaultSeed returns the built-in forecasts loaded into an empty store.
func DefaultSeed() []forecast.Record {
	return []forecast.Record{
		{Place: "S.F.", Latitude: 37.779941, Longitude: -122.417908, High: 80, Low: 50, Windchill: 2, Condition: forecast.Sunny},
		{Place: "Denver", Latitude: 39.752601, Longitude: -104.982605, High: 40, Low: 30, Windchill: 21, Condition: forecast.Snow},
		{Place: "Chicago", Latitude: 41.863425, Longitude: -87.652359, High: 39, Low: 29, Windchill: 19, Condition: forecast.Cloudy},
		{Place: "Seattle", Latitude: 47.615884, Longitude: -122.332764, High: 75, Low: 45, Windchill: 12, Condition: forecast.Showers},
		{Place: "Boston", Latitude: 42.350425, Longitude: -71.070557, High: 75, Low: 45, Windchill: 19, Condition: forecast.PartlyCloudy},
		{Place: "Miami", Latitude: 25.780107, Longitude: -80.244141, High: 90, Low: 75, Windchill: 8, Condition: forecast.Thunderstorms},
		{Place: "Fayetteville", Latitude: 36.0822, Longitude: 94.1719, High: 49, Low: 27, Windchill: 20, Condition: forecast.Snow},
	}
}

// Seed inserts records only when the store is empty and reports how many were added.
func Seed(ctx context.Context, st RecordStore, records []forecast.Record) (int, error) {
	count, err := st.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	if err := st.Insert(ctx, records...); err != nil {
		return 0, fmt.Errorf("failed to insert seed records: %w", err)
	}
	return len(records), nil
}

type seedFile struct {
	Forecasts []forecast.Record `yaml:"forecasts"`
}

// LoadSeedFile reads seed forecasts from a YAML document of the form
//
//	forecasts:
//	  - place: Denver
//	    latitude: 39.752601
//	    longitude: -104.982605
//	    high: 40
//	    low: 30
//	    windchill: 21
//	    condition: Snow
func LoadSeedFile(path string) ([]forecast.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return ParseSeed(data)
}

func ParseSeed(data []byte) ([]forecast.Record, error) {
	var doc seedFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}

	for i, r := range doc.Forecasts {
		if err := validateRecord(r); err != nil {
			return nil, fmt.Errorf("forecast %d: %w", i, err)
		}
	}
	return doc.Forecasts, nil
}
