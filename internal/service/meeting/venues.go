package meeting

import (
	"context"
	"log"
	"sort"
	"strings"

	"togather/internal/config"
	"togather/internal/maps"
	"togather/internal/model"

	"github.com/sourcegraph/conc/iter"
)

// ranking is the outcome of the venue stage: a winner plus up to three
// runners-up, each scored with real travel times.
type ranking struct {
	Best         model.VenueCandidate
	Alternatives []model.VenueCandidate
}

// rankVenues searches for venues around the anchor, scores each with real
// travel times from every participant, and sorts ascending by fairness.
// An empty or failed search falls back to the anchor point itself; venue
// problems never abort the request.
func (s *Service) rankVenues(ctx context.Context, anchor model.Coordinate, participants []model.ResolvedParticipant, venueType string) ranking {
	keyword := strings.TrimSpace(venueType)
	if keyword == "" {
		keyword = config.VenueDefaultKeyword
	}

	venues, err := s.venues.SearchVenues(ctx, maps.VenueQuery{
		Center:       anchor,
		Keyword:      keyword,
		RadiusMeters: config.VenueSearchRadiusMeters,
		MinRating:    config.VenueMinRating,
		MaxResults:   config.VenueMaxResults,
	})
	if err != nil {
		log.Printf("Venue search near %.5f,%.5f failed: %v", anchor.Lat, anchor.Lng, err)
		venues = nil
	}
	if len(venues) == 0 {
		return s.fallbackRanking(ctx, anchor, participants)
	}

	mapper := iter.Mapper[model.Venue, model.VenueCandidate]{MaxGoroutines: config.VenueConcurrency}
	candidates := mapper.Map(venues, func(v *model.Venue) model.VenueCandidate {
		legs := s.travelLegs(ctx, participants, v.Location)
		return model.VenueCandidate{Venue: *v, Legs: legs, Metrics: summarizeLegs(legs)}
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Metrics.Fairness < candidates[j].Metrics.Fairness
	})

	alternatives := candidates[1:]
	if len(alternatives) > config.MaxAlternativeVenues {
		alternatives = alternatives[:config.MaxAlternativeVenues]
	}
	return ranking{Best: candidates[0], Alternatives: alternatives}
}

// fallbackRanking scores the anchor point itself when no venue qualifies. The
// display address comes from reverse geocoding when available.
func (s *Service) fallbackRanking(ctx context.Context, anchor model.Coordinate, participants []model.ResolvedParticipant) ranking {
	address := "Address not available"
	if resolved, err := s.reverse.ReverseGeocode(ctx, anchor); err == nil {
		address = resolved
	} else {
		log.Printf("Reverse geocoding fallback point failed: %v", err)
	}

	legs := s.travelLegs(ctx, participants, anchor)
	return ranking{
		Best: model.VenueCandidate{
			Venue: model.Venue{
				Name:     "Meeting Point",
				Address:  address,
				Location: anchor,
			},
			Legs:    legs,
			Metrics: summarizeLegs(legs),
		},
	}
}
