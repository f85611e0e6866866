package meeting

import (
	"context"
	"sync/atomic"

	"togather/internal/maps"
	"togather/internal/model"
)

// Deterministic in-memory providers for pipeline tests.

type fakeGeocoder struct {
	coords map[string]model.Coordinate
	calls  atomic.Int64
}

func (f *fakeGeocoder) Geocode(_ context.Context, address string) (model.Coordinate, error) {
	f.calls.Add(1)
	if c, ok := f.coords[address]; ok {
		return c, nil
	}
	return model.Coordinate{}, maps.ErrNotFound
}

type fakeReverseGeocoder struct {
	address string
	err     error
}

func (f *fakeReverseGeocoder) ReverseGeocode(context.Context, model.Coordinate) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.address, nil
}

// travelFunc adapts a function to the TravelTimeProvider interface. It must
// be safe for concurrent use.
type travelFunc func(origin string, destination model.Coordinate, mode model.TransportMode) (model.TravelLeg, error)

func (f travelFunc) TravelTime(_ context.Context, origin string, destination model.Coordinate, mode model.TransportMode) (model.TravelLeg, error) {
	return f(origin, destination, mode)
}

// constantTravel returns the given duration per origin regardless of destination.
func constantTravel(durations map[string]float64) travelFunc {
	return func(origin string, _ model.Coordinate, _ model.TransportMode) (model.TravelLeg, error) {
		if d, ok := durations[origin]; ok {
			return model.TravelLeg{DurationSeconds: d, DistanceMeters: d * 10}, nil
		}
		return model.TravelLeg{}, maps.ErrNotFound
	}
}

type fakeVenueSearcher struct {
	venues   []model.Venue
	err      error
	gotQuery maps.VenueQuery
}

func (f *fakeVenueSearcher) SearchVenues(_ context.Context, query maps.VenueQuery) ([]model.Venue, error) {
	f.gotQuery = query
	if f.err != nil {
		return nil, f.err
	}
	return f.venues, nil
}

func newTestService(g maps.Geocoder, r maps.ReverseGeocoder, t maps.TravelTimeProvider, v maps.VenueSearcher) *Service {
	if g == nil {
		g = &fakeGeocoder{}
	}
	if r == nil {
		r = &fakeReverseGeocoder{address: "1 Test Square"}
	}
	if t == nil {
		t = constantTravel(nil)
	}
	if v == nil {
		v = &fakeVenueSearcher{}
	}
	return NewService(g, r, t, v)
}
