package forecast

// Span is the extent of a Region in degrees.
type Span struct {
	LatitudeDelta  float64 `json:"latitude_delta"`
	LongitudeDelta float64 `json:"longitude_delta"`
}

// Region is the visible map viewport: a center point and a span around it.
type Region struct {
	Center Coordinate `json:"center"`
	Span   Span       `json:"span"`
}

type Bounds struct {
	LatMin, LatMax float64
	LonMin, LonMax float64
}

func (r Region) Bounds() Bounds {
	return Bounds{
		LatMin: r.Center.Latitude - r.Span.LatitudeDelta/2,
		LatMax: r.Center.Latitude + r.Span.LatitudeDelta/2,
		LonMin: r.Center.Longitude - r.Span.LongitudeDelta/2,
		LonMax: r.Center.Longitude + r.Span.LongitudeDelta/2,
	}
}

// Contains reports whether the point lies strictly inside the region.
func (r Region) Contains(lat, lon float64) bool {
	b := r.Bounds()
	return lat > b.LatMin && lat < b.LatMax && lon > b.LonMin && lon < b.LonMax
}
