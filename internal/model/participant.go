package model

// TransportMode is how a participant travels to the meeting point.
type TransportMode string

const (
	TransportWalking   TransportMode = "walking"
	TransportBicycling TransportMode = "bicycling"
	TransportTransit   TransportMode = "transit"
	TransportDriving   TransportMode = "driving"
)

// Coordinate is a WGS84 point in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// ParticipantInput is one attendee as supplied by the client.
type ParticipantInput struct {
	Address   string        `json:"address"`
	Transport TransportMode `json:"transport" binding:"required,oneof=walking bicycling transit driving"`
}

// ResolvedParticipant is a participant whose address geocoded successfully.
type ResolvedParticipant struct {
	ParticipantInput
	Location Coordinate
}
