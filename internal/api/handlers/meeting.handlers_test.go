package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"togather/internal/maps"
	"togather/internal/model"
	"togather/internal/service/meeting"

	"github.com/gin-gonic/gin"
)

type stubGeocoder struct {
	coords map[string]model.Coordinate
	calls  atomic.Int64
}

func (s *stubGeocoder) Geocode(_ context.Context, address string) (model.Coordinate, error) {
	s.calls.Add(1)
	if c, ok := s.coords[address]; ok {
		return c, nil
	}
	return model.Coordinate{}, maps.ErrNotFound
}

type stubReverse struct{}

func (stubReverse) ReverseGeocode(context.Context, model.Coordinate) (string, error) {
	return "Central Square", nil
}

type stubTravel struct{ durations map[string]float64 }

func (s stubTravel) TravelTime(_ context.Context, origin string, _ model.Coordinate, _ model.TransportMode) (model.TravelLeg, error) {
	if d, ok := s.durations[origin]; ok {
		return model.TravelLeg{DurationSeconds: d, DistanceMeters: d * 10}, nil
	}
	return model.TravelLeg{}, maps.ErrNotFound
}

type stubVenues struct{ venues []model.Venue }

func (s stubVenues) SearchVenues(context.Context, maps.VenueQuery) ([]model.Venue, error) {
	return s.venues, nil
}

func newTestRouter(service *meeting.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	SetupMeetingHandlers(r.Group(""), service, nil)
	return r
}

func postCompute(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/compute-location", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestComputeLocationRejectsTooFewAddresses(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"empty list", `{"locations":[]}`},
		{"single location", `{"locations":[{"address":"A","transport":"driving"}]}`},
		{"blank second address", `{"locations":[{"address":"A","transport":"driving"},{"address":"   ","transport":"walking"}]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			geocoder := &stubGeocoder{}
			service := meeting.NewService(geocoder, stubReverse{}, stubTravel{}, stubVenues{})
			router := newTestRouter(service)

			w := postCompute(t, router, tc.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d; want 400", w.Code)
			}
			var resp map[string]string
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("invalid JSON response: %v", err)
			}
			if resp["error"] != "At least two locations are required." {
				t.Errorf("error = %q", resp["error"])
			}
			if geocoder.calls.Load() != 0 {
				t.Errorf("geocoder was called %d times; want 0 before validation", geocoder.calls.Load())
			}
		})
	}
}

func TestComputeLocationRejectsInvalidTransport(t *testing.T) {
	service := meeting.NewService(&stubGeocoder{}, stubReverse{}, stubTravel{}, stubVenues{})
	router := newTestRouter(service)

	w := postCompute(t, router, `{"locations":[{"address":"A","transport":"teleport"},{"address":"B","transport":"driving"}]}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}
}

func TestComputeLocationSuccess(t *testing.T) {
	geocoder := &stubGeocoder{coords: map[string]model.Coordinate{
		"A": {Lat: 48.860, Lng: 2.340},
		"B": {Lat: 48.850, Lng: 2.360},
	}}
	travel := stubTravel{durations: map[string]float64{"A": 600, "B": 900}}
	rating := 4.5
	venues := stubVenues{venues: []model.Venue{{
		Name:     "Cafe Central",
		Address:  "1 Place du Test",
		Location: model.Coordinate{Lat: 48.8551, Lng: 2.3502},
		PlaceID:  "place-1",
		Rating:   &rating,
	}}}
	service := meeting.NewService(geocoder, stubReverse{}, travel, venues)
	router := newTestRouter(service)

	w := postCompute(t, router, `{"locations":[{"address":"A","transport":"driving"},{"address":"B","transport":"driving"}],"venueType":""}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200, body %s", w.Code, w.Body.String())
	}

	var resp struct {
		BestLocation struct {
			Name        string    `json:"name"`
			TravelTimes []float64 `json:"travelTimes"`
			AverageTime float64   `json:"averageTime"`
			PlaceID     *string   `json:"placeId"`
			Rating      *float64  `json:"rating"`
		} `json:"bestLocation"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	best := resp.BestLocation
	if best.Name != "Cafe Central" {
		t.Errorf("name = %q", best.Name)
	}
	if len(best.TravelTimes) != 2 || best.TravelTimes[0] != 600 || best.TravelTimes[1] != 900 {
		t.Errorf("travelTimes = %v; want [600 900]", best.TravelTimes)
	}
	if best.AverageTime != 750 {
		t.Errorf("averageTime = %v; want 750", best.AverageTime)
	}
	if best.PlaceID == nil || *best.PlaceID != "place-1" {
		t.Errorf("placeId = %v", best.PlaceID)
	}
	if best.Rating == nil || *best.Rating != 4.5 {
		t.Errorf("rating = %v", best.Rating)
	}
}

func TestComputeLocationGeocodingDeadEnd(t *testing.T) {
	// Both addresses fail to geocode: the request passes validation but the
	// pipeline cannot produce an epicenter.
	service := meeting.NewService(&stubGeocoder{}, stubReverse{}, stubTravel{}, stubVenues{})
	router := newTestRouter(service)

	w := postCompute(t, router, `{"locations":[{"address":"A","transport":"driving"},{"address":"B","transport":"driving"}]}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["error"] != "Unable to compute epicenter from the given addresses." {
		t.Errorf("error = %q", resp["error"])
	}
}

func TestComputeLocationNoTravelData(t *testing.T) {
	geocoder := &stubGeocoder{coords: map[string]model.Coordinate{
		"A": {Lat: 48.860, Lng: 2.340},
		"B": {Lat: 48.850, Lng: 2.360},
	}}
	// Travel provider fails everywhere: every grid point scores infinite.
	service := meeting.NewService(geocoder, stubReverse{}, stubTravel{}, stubVenues{})
	router := newTestRouter(service)

	w := postCompute(t, router, `{"locations":[{"address":"A","transport":"driving"},{"address":"B","transport":"driving"}]}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500", w.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}
	if resp["error"] != "Unable to find suitable meeting points." {
		t.Errorf("error = %q", resp["error"])
	}
}
