package maps

// Response shapes for the Google Maps web service endpoints. Only the fields
// the pipeline reads are declared.

type latLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type geometry struct {
	Location latLng `json:"location"`
}

type geocodeResponse struct {
	Results []struct {
		FormattedAddress string   `json:"formatted_address"`
		Geometry         geometry `json:"geometry"`
	} `json:"results"`
	Status string `json:"status"`
}

type distanceMatrixResponse struct {
	Rows []struct {
		Elements []struct {
			Status   string `json:"status"`
			Duration *struct {
				Value float64 `json:"value"`
			} `json:"duration,omitempty"`
			Distance *struct {
				Value float64 `json:"value"`
			} `json:"distance,omitempty"`
		} `json:"elements"`
	} `json:"rows"`
	Status string `json:"status"`
}

type placesResponse struct {
	Results []placeResult `json:"results"`
	Status  string        `json:"status"`
}

type placeResult struct {
	Name             string   `json:"name"`
	Vicinity         string   `json:"vicinity,omitempty"`
	FormattedAddress string   `json:"formatted_address,omitempty"`
	PlaceID          string   `json:"place_id"`
	Rating           *float64 `json:"rating,omitempty"`
	UserRatingsTotal *int     `json:"user_ratings_total,omitempty"`
	Geometry         geometry `json:"geometry"`
}
