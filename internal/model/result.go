package model

import (
	"encoding/json"
	"math"
)

// Seconds is a travel duration that serializes unavailable (+Inf) values as
// null, which is what the endpoint has always emitted for failed lookups.
type Seconds float64

func (s Seconds) MarshalJSON() ([]byte, error) {
	f := float64(s)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return []byte("null"), nil
	}
	return json.Marshal(f)
}

// ComputeRequest is the body of POST /compute-location.
type ComputeRequest struct {
	Locations []ParticipantInput `json:"locations" binding:"dive"`
	VenueType string             `json:"venueType"`
}

// ComputeResponse wraps the winning meeting point.
type ComputeResponse struct {
	BestLocation MeetingPointResult `json:"bestLocation"`
}

// MeetingPointResult is the bestLocation payload. TravelTimes is positionally
// aligned with the order participants were supplied (after dropping entries
// that failed to geocode).
type MeetingPointResult struct {
	Name              string             `json:"name"`
	Address           string             `json:"address"`
	Location          Coordinate         `json:"location"`
	TravelTimes       []Seconds          `json:"travelTimes"`
	AverageTime       Seconds            `json:"averageTime"`
	PlaceID           *string            `json:"placeId"`
	Rating            *float64           `json:"rating,omitempty"`
	UserRatingsTotal  *int               `json:"userRatingsTotal,omitempty"`
	AlternativeVenues []AlternativeVenue `json:"alternativeVenues,omitempty"`
}

// AlternativeVenue is a runner-up venue; it carries no per-participant breakdown.
type AlternativeVenue struct {
	Name        string     `json:"name"`
	Address     string     `json:"address"`
	Location    Coordinate `json:"location"`
	AverageTime Seconds    `json:"averageTime"`
	PlaceID     *string    `json:"placeId"`
	Rating      *float64   `json:"rating,omitempty"`
}
