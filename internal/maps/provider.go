package maps

import (
	"context"
	"errors"

	"togather/internal/model"
)

// ErrNotFound is returned when a provider has no result for the query.
var ErrNotFound = errors.New("maps: no result")

// Geocoder resolves a free-form address to a coordinate.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (model.Coordinate, error)
}

// ReverseGeocoder resolves a coordinate back to a display address.
type ReverseGeocoder interface {
	ReverseGeocode(ctx context.Context, point model.Coordinate) (string, error)
}

// TravelTimeProvider returns the trip from a free-form origin to a destination
// point for one transport mode.
type TravelTimeProvider interface {
	TravelTime(ctx context.Context, origin string, destination model.Coordinate, mode model.TransportMode) (model.TravelLeg, error)
}

// VenueQuery describes a nearby venue search.
type VenueQuery struct {
	Center       model.Coordinate
	Keyword      string
	RadiusMeters int
	MinRating    float64
	MaxResults   int
}

// VenueSearcher finds candidate venues around a point.
type VenueSearcher interface {
	SearchVenues(ctx context.Context, query VenueQuery) ([]model.Venue, error)
}
