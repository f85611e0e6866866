package config

// Tuning values for the meeting point pipeline. The scoring output depends on
// the exact numbers here; treat them as part of the endpoint contract.

// GridOffsets are the degree deltas applied to the epicenter in both axes,
// giving a 5x5 candidate grid roughly a kilometer across.
var GridOffsets = []float64{-0.008, -0.004, 0, 0.004, 0.008}

const (
	// CentralityBase and CentralitySpread blend a participant's share of the
	// total pairwise distance into their epicenter weight, keeping it inside
	// [0.4, 1.0]. Outliers get more pull.
	CentralityBase   = 0.4
	CentralitySpread = 0.6

	// FairnessMaxWeight and FairnessStdDevWeight fold the worst-case duration
	// and the spread across participants into the fairness score.
	FairnessMaxWeight    = 0.3
	FairnessStdDevWeight = 0.5

	// Venue search parameters around the winning grid point.
	VenueSearchRadiusMeters = 600
	VenueMinRating          = 3.8
	VenueMaxResults         = 10
	VenueDefaultKeyword     = "restaurant,cafe,bar"
	MaxAlternativeVenues    = 3

	// Fan-out widths for outbound provider calls.
	GeocodeConcurrency = 8
	GridConcurrency    = 25
	VenueConcurrency   = 10
)

// TransportFactor returns the epicenter pull for a transport mode. Slower
// modes get a larger factor so the anchor lands closer to them.
func TransportFactor(mode string) float64 {
	switch mode {
	case "driving":
		return 0.7
	case "transit":
		return 0.85
	case "bicycling":
		return 1.1
	case "walking":
		return 1.3
	default:
		return 1.0
	}
}
