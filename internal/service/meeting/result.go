package meeting

import (
	"togather/internal/model"
)

// assembleResult maps the winning venue and runners-up onto the response
// contract. The travelTimes array keeps the resolved participant order.
func assembleResult(r ranking) *model.MeetingPointResult {
	best := r.Best

	times := make([]model.Seconds, len(best.Legs))
	for i, leg := range best.Legs {
		times[i] = model.Seconds(leg.DurationSeconds)
	}

	result := &model.MeetingPointResult{
		Name:             best.Name,
		Address:          best.Address,
		Location:         best.Location,
		TravelTimes:      times,
		AverageTime:      model.Seconds(best.Metrics.Average),
		PlaceID:          optionalString(best.PlaceID),
		Rating:           best.Rating,
		UserRatingsTotal: best.UserRatingsTotal,
	}

	for _, alt := range r.Alternatives {
		result.AlternativeVenues = append(result.AlternativeVenues, model.AlternativeVenue{
			Name:        alt.Name,
			Address:     alt.Address,
			Location:    alt.Location,
			AverageTime: model.Seconds(alt.Metrics.Average),
			PlaceID:     optionalString(alt.PlaceID),
			Rating:      alt.Rating,
		})
	}
	return result
}

// optionalString maps an empty string to null in the response; the fallback
// meeting point has no place ID.
func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
