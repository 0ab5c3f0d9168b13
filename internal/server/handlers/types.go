package handlers

import "github.com/vzahanych/weather-map/internal/forecast"

// AnnotationsRequest is the map viewport query. The region center defaults to
// 0,0 and the span to zero; Max falls back to the configured default.
type AnnotationsRequest struct {
	Lat      float64 `form:"lat" json:"lat" validate:"latitude"`
	Lon      float64 `form:"lon" json:"lon" validate:"longitude"`
	LatDelta float64 `form:"lat_delta" json:"lat_delta" validate:"gte=0,lte=180"`
	LonDelta float64 `form:"lon_delta" json:"lon_delta" validate:"gte=0,lte=360"`
	Max      *int    `form:"max" json:"max"`
}

func (r AnnotationsRequest) Region() forecast.Region {
	return forecast.Region{
		Center: forecast.Coordinate{Latitude: r.Lat, Longitude: r.Lon},
		Span:   forecast.Span{LatitudeDelta: r.LatDelta, LongitudeDelta: r.LonDelta},
	}
}

type AnnotationsResponse struct {
	Count       int                   `json:"count"`
	Annotations []forecast.Annotation `json:"annotations"`
}

type ForecastsResponse struct {
	Count     int               `json:"count"`
	Forecasts []forecast.Record `json:"forecasts"`
}

// HealthResponse represents health check response with validation
type HealthResponse struct {
	Status    string `json:"status" validate:"required,oneof=ok alive ready unavailable"`
	Uptime    string `json:"uptime" validate:"required"`
	Timestamp string `json:"timestamp,omitempty"`
	Error     string `json:"error,omitempty"`
}
