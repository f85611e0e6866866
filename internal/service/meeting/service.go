package meeting

import (
	"context"
	"errors"

	"togather/internal/maps"
	"togather/internal/model"
)

var (
	// ErrInsufficientLocations means fewer than two usable addresses remain.
	ErrInsufficientLocations = errors.New("at least two locations are required")

	// ErrNoCandidateFound means no grid point produced a single usable travel time.
	ErrNoCandidateFound = errors.New("no suitable meeting point candidate found")
)

// Service runs the meeting point pipeline: resolve addresses, estimate a
// fairness-weighted epicenter, refine it over a sampled grid of real travel
// times, then rank venues around the winner.
type Service struct {
	geocoder maps.Geocoder
	reverse  maps.ReverseGeocoder
	travel   maps.TravelTimeProvider
	venues   maps.VenueSearcher
}

func NewService(geocoder maps.Geocoder, reverse maps.ReverseGeocoder, travel maps.TravelTimeProvider, venues maps.VenueSearcher) *Service {
	return &Service{
		geocoder: geocoder,
		reverse:  reverse,
		travel:   travel,
		venues:   venues,
	}
}

// ComputeMeetingPoint finds the venue (or bare point) that best balances
// travel burden across the participants.
func (s *Service) ComputeMeetingPoint(ctx context.Context, inputs []model.ParticipantInput, venueType string) (*model.MeetingPointResult, error) {
	participants, err := s.resolveParticipants(ctx, inputs)
	if err != nil {
		return nil, err
	}

	epicenter, err := estimateEpicenter(participants)
	if err != nil {
		return nil, err
	}

	anchor, err := s.optimizeGrid(ctx, epicenter, participants)
	if err != nil {
		return nil, err
	}

	ranked := s.rankVenues(ctx, anchor.Point, participants, venueType)
	return assembleResult(ranked), nil
}
