package forecast

import "fmt"

// Record is one stored forecast for a named place. Places are not unique.
type Record struct {
	Place     string    `json:"place" yaml:"place"`
	Latitude  float64   `json:"latitude" yaml:"latitude"`
	Longitude float64   `json:"longitude" yaml:"longitude"`
	High      int       `json:"high" yaml:"high"`
	Low       int       `json:"low" yaml:"low"`
	Windchill int       `json:"windchill" yaml:"windchill"`
	Condition Condition `json:"condition" yaml:"condition"`
}

// Coordinate is a point on the map in degrees.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Annotation is the display projection of a Record handed to the map view.
type Annotation struct {
	Record
	Coordinate Coordinate `json:"coordinate"`
	Title      string     `json:"title"`
	Subtitle   string     `json:"subtitle"`
}

// NewAnnotation projects r into a fresh Annotation.
func NewAnnotation(r Record) Annotation {
	return Annotation{
		Record: r,
		Coordinate: Coordinate{
			Latitude:  r.Latitude,
			Longitude: r.Longitude,
		},
		Title:    r.Place,
		Subtitle: fmt.Sprintf("High: %d° Low: %d° Windchill: %d°", r.High, r.Low, r.Windchill),
	}
}
