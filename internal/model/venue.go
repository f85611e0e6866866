package model

// TravelLeg is one participant's trip to a candidate point.
// Failed lookups carry +Inf in both fields.
type TravelLeg struct {
	DurationSeconds float64 `json:"duration"`
	DistanceMeters  float64 `json:"distance"`
}

// TravelMetrics summarizes the legs of all participants to one point.
// Fairness is Average + 0.3*Max + 0.5*StdDev; lower is better.
type TravelMetrics struct {
	Average  float64
	Max      float64
	StdDev   float64
	Fairness float64
}

// GridCandidate is one sampled point around the epicenter.
// Legs[i] belongs to the i-th resolved participant.
type GridCandidate struct {
	Point   Coordinate
	Legs    []TravelLeg
	Metrics TravelMetrics
}

// Venue is a place returned by the nearby search, before scoring.
type Venue struct {
	Name             string
	Address          string
	Location         Coordinate
	PlaceID          string
	Rating           *float64
	UserRatingsTotal *int
}

// VenueCandidate is a venue scored with real travel times from every participant.
type VenueCandidate struct {
	Venue
	Legs    []TravelLeg
	Metrics TravelMetrics
}
