package meeting

import (
	"context"
	"fmt"
	"log"

	"togather/internal/config"
	"togather/internal/model"

	"github.com/sourcegraph/conc/iter"
)

// resolveParticipants geocodes every address with a bounded fan-out. Results
// come back in input order; entries that fail to geocode are dropped, and the
// remaining participants keep their relative order so downstream travel time
// arrays stay positionally aligned.
func (s *Service) resolveParticipants(ctx context.Context, inputs []model.ParticipantInput) ([]model.ResolvedParticipant, error) {
	mapper := iter.Mapper[model.ParticipantInput, *model.ResolvedParticipant]{MaxGoroutines: config.GeocodeConcurrency}
	results := mapper.Map(inputs, func(in *model.ParticipantInput) *model.ResolvedParticipant {
		point, err := s.geocoder.Geocode(ctx, in.Address)
		if err != nil {
			log.Printf("Dropping participant %q: geocoding failed: %v", in.Address, err)
			return nil
		}
		return &model.ResolvedParticipant{ParticipantInput: *in, Location: point}
	})

	resolved := make([]model.ResolvedParticipant, 0, len(results))
	for _, r := range results {
		if r != nil {
			resolved = append(resolved, *r)
		}
	}

	if len(resolved) < 2 {
		return nil, fmt.Errorf("%w: %d of %d addresses resolved", ErrInsufficientLocations, len(resolved), len(inputs))
	}
	return resolved, nil
}
