package meeting

import (
	"math"

	"togather/internal/config"
	"togather/internal/model"
)

// summarizeLegs folds per-participant durations into the fairness score.
// Failed (+Inf) legs are excluded from the averages; when nothing resolved,
// every metric is +Inf and the point is effectively eliminated.
func summarizeLegs(legs []model.TravelLeg) model.TravelMetrics {
	valid := make([]float64, 0, len(legs))
	for _, leg := range legs {
		if !math.IsInf(leg.DurationSeconds, 1) {
			valid = append(valid, leg.DurationSeconds)
		}
	}
	if len(valid) == 0 {
		inf := math.Inf(1)
		return model.TravelMetrics{Average: inf, Max: inf, StdDev: inf, Fairness: inf}
	}

	var sum, max float64
	for _, d := range valid {
		sum += d
		if d > max {
			max = d
		}
	}
	average := sum / float64(len(valid))

	// Population standard deviation around the average.
	var variance float64
	for _, d := range valid {
		variance += (d - average) * (d - average)
	}
	variance /= float64(len(valid))
	stdDev := math.Sqrt(variance)

	return model.TravelMetrics{
		Average:  average,
		Max:      max,
		StdDev:   stdDev,
		Fairness: average + config.FairnessMaxWeight*max + config.FairnessStdDevWeight*stdDev,
	}
}
