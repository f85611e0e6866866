package meeting

import (
	"fmt"

	"togather/internal/config"
	"togather/internal/model"
	"togather/internal/util"
)

// estimateEpicenter computes the weighted centroid of the resolved
// participants. Geographic outliers and participants on slow transport modes
// deliberately pull the anchor toward themselves to reduce worst-case
// unfairness.
func estimateEpicenter(participants []model.ResolvedParticipant) (model.Coordinate, error) {
	if len(participants) == 0 {
		return model.Coordinate{}, fmt.Errorf("%w: no resolved participants", ErrInsufficientLocations)
	}
	if len(participants) == 1 {
		return participants[0].Location, nil
	}

	// Sum of distances from each point to every other point, in km.
	distSums := make([]float64, len(participants))
	totalDist := 0.0
	for i, a := range participants {
		for j, b := range participants {
			if i == j {
				continue
			}
			distSums[i] += util.HaversineDistanceKm(a.Location.Lat, a.Location.Lng, b.Location.Lat, b.Location.Lng)
		}
		totalDist += distSums[i]
	}

	var latSum, lngSum, weightSum float64
	for i, p := range participants {
		// All points coincide when totalDist is zero; equal weights keep the
		// centroid exactly on them.
		centrality := 1.0
		if totalDist > 0 {
			centrality = config.CentralityBase + config.CentralitySpread*distSums[i]/totalDist
		}
		weight := centrality * config.TransportFactor(string(p.Transport))

		latSum += p.Location.Lat * weight
		lngSum += p.Location.Lng * weight
		weightSum += weight
	}

	return model.Coordinate{Lat: latSum / weightSum, Lng: lngSum / weightSum}, nil
}
