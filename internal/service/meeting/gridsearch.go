package meeting

import (
	"context"
	"fmt"
	"log"
	"math"

	"togather/internal/config"
	"togather/internal/model"
	"togather/internal/util"

	"github.com/sourcegraph/conc/iter"
)

// optimizeGrid samples a 5x5 grid of points around the epicenter, scores each
// with real travel times from every participant, and returns the candidate
// with the lowest fairness score. Ties keep the earlier grid point.
func (s *Service) optimizeGrid(ctx context.Context, epicenter model.Coordinate, participants []model.ResolvedParticipant) (model.GridCandidate, error) {
	points := util.GenerateGrid(epicenter, config.GridOffsets)

	mapper := iter.Mapper[model.Coordinate, model.GridCandidate]{MaxGoroutines: config.GridConcurrency}
	candidates := mapper.Map(points, func(point *model.Coordinate) model.GridCandidate {
		legs := s.travelLegs(ctx, participants, *point)
		return model.GridCandidate{Point: *point, Legs: legs, Metrics: summarizeLegs(legs)}
	})

	best := -1
	for i, c := range candidates {
		if math.IsInf(c.Metrics.Fairness, 1) {
			continue
		}
		if best < 0 || c.Metrics.Fairness < candidates[best].Metrics.Fairness {
			best = i
		}
	}
	if best < 0 {
		return model.GridCandidate{}, fmt.Errorf("%w: all %d grid points scored infinite", ErrNoCandidateFound, len(candidates))
	}

	log.Printf("Grid search: best point %.5f,%.5f fairness %.1f (avg %.1fs, max %.1fs)",
		candidates[best].Point.Lat, candidates[best].Point.Lng,
		candidates[best].Metrics.Fairness, candidates[best].Metrics.Average, candidates[best].Metrics.Max)
	return candidates[best], nil
}

// travelLegs fetches every participant's trip to the destination
// concurrently. Slot i of the result always belongs to participants[i];
// a failed lookup degrades that slot to +Inf without touching the others.
func (s *Service) travelLegs(ctx context.Context, participants []model.ResolvedParticipant, destination model.Coordinate) []model.TravelLeg {
	mapper := iter.Mapper[model.ResolvedParticipant, model.TravelLeg]{MaxGoroutines: len(participants)}
	return mapper.Map(participants, func(p *model.ResolvedParticipant) model.TravelLeg {
		leg, err := s.travel.TravelTime(ctx, p.Address, destination, p.Transport)
		if err != nil {
			log.Printf("Travel time lookup failed for %q (%s): %v", p.Address, p.Transport, err)
			return model.TravelLeg{DurationSeconds: math.Inf(1), DistanceMeters: math.Inf(1)}
		}
		return leg
	})
}
