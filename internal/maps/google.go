package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"togather/internal/cache"
	"togather/internal/metrics"
	"togather/internal/model"
	"togather/internal/util"
)

const (
	geocodePath        = "/maps/api/geocode/json"
	distanceMatrixPath = "/maps/api/distancematrix/json"
	nearbySearchPath   = "/maps/api/place/nearbysearch/json"
)

// GoogleClient talks to the Google Maps web services and implements all four
// provider interfaces. The base URL and HTTP client are injectable so tests
// can point it at a local server.
type GoogleClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
	cache   *cache.TravelCache
	metrics *metrics.Collector
}

func NewGoogleClient(apiKey, baseURL string, travelCache *cache.TravelCache, collector *metrics.Collector) *GoogleClient {
	return &GoogleClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
		cache:   travelCache,
		metrics: collector,
	}
}

// WithHTTPClient swaps the underlying HTTP client.
func (c *GoogleClient) WithHTTPClient(hc *http.Client) *GoogleClient {
	c.http = hc
	return c
}

// Geocode resolves an address to a coordinate.
func (c *GoogleClient) Geocode(ctx context.Context, address string) (model.Coordinate, error) {
	params := url.Values{}
	params.Set("address", address)

	var resp geocodeResponse
	if err := c.get(ctx, geocodePath, params, &resp); err != nil {
		c.metrics.RecordProviderCall("geocode", "error")
		return model.Coordinate{}, err
	}
	if len(resp.Results) == 0 {
		c.metrics.RecordProviderCall("geocode", "not_found")
		return model.Coordinate{}, fmt.Errorf("%w: geocode %q (status %s)", ErrNotFound, address, resp.Status)
	}

	c.metrics.RecordProviderCall("geocode", "ok")
	loc := resp.Results[0].Geometry.Location
	return model.Coordinate{Lat: loc.Lat, Lng: loc.Lng}, nil
}

// ReverseGeocode resolves a coordinate to a display address.
func (c *GoogleClient) ReverseGeocode(ctx context.Context, point model.Coordinate) (string, error) {
	params := url.Values{}
	params.Set("latlng", formatLatLng(point))

	var resp geocodeResponse
	if err := c.get(ctx, geocodePath, params, &resp); err != nil {
		c.metrics.RecordProviderCall("reverse_geocode", "error")
		return "", err
	}
	if len(resp.Results) == 0 {
		c.metrics.RecordProviderCall("reverse_geocode", "not_found")
		return "", fmt.Errorf("%w: reverse geocode %s (status %s)", ErrNotFound, formatLatLng(point), resp.Status)
	}

	c.metrics.RecordProviderCall("reverse_geocode", "ok")
	return resp.Results[0].FormattedAddress, nil
}

// TravelTime fetches the trip duration and distance from the distance matrix
// API, memoized through the travel cache when one is configured.
func (c *GoogleClient) TravelTime(ctx context.Context, origin string, destination model.Coordinate, mode model.TransportMode) (model.TravelLeg, error) {
	if leg, ok := c.cache.Lookup(ctx, origin, destination, mode); ok {
		return leg, nil
	}

	params := url.Values{}
	params.Set("origins", origin)
	params.Set("destinations", formatLatLng(destination))
	params.Set("mode", string(mode))
	// Live departure data for the modes that support it
	switch mode {
	case model.TransportTransit:
		params.Set("departure_time", "now")
	case model.TransportDriving:
		params.Set("departure_time", "now")
		params.Set("traffic_model", "best_guess")
	}

	var resp distanceMatrixResponse
	if err := c.get(ctx, distanceMatrixPath, params, &resp); err != nil {
		c.metrics.RecordProviderCall("travel_time", "error")
		return model.TravelLeg{}, err
	}
	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		c.metrics.RecordProviderCall("travel_time", "not_found")
		return model.TravelLeg{}, fmt.Errorf("%w: distance matrix returned no elements (status %s)", ErrNotFound, resp.Status)
	}
	element := resp.Rows[0].Elements[0]
	if element.Status != "OK" || element.Duration == nil || element.Distance == nil {
		c.metrics.RecordProviderCall("travel_time", "not_found")
		return model.TravelLeg{}, fmt.Errorf("%w: no route from %q (%s), element status %s", ErrNotFound, origin, mode, element.Status)
	}

	c.metrics.RecordProviderCall("travel_time", "ok")
	leg := model.TravelLeg{
		DurationSeconds: element.Duration.Value,
		DistanceMeters:  element.Distance.Value,
	}
	c.cache.Store(ctx, origin, destination, mode, leg)
	return leg, nil
}

// SearchVenues runs a nearby search around the center. The API has no minimum
// rating parameter, so results below the threshold are filtered out here;
// unrated places are dropped when a threshold is set. Survivors are ranked by
// prominence before truncating to MaxResults.
func (c *GoogleClient) SearchVenues(ctx context.Context, query VenueQuery) ([]model.Venue, error) {
	params := url.Values{}
	params.Set("location", formatLatLng(query.Center))
	params.Set("radius", strconv.Itoa(query.RadiusMeters))
	if query.Keyword != "" {
		params.Set("keyword", query.Keyword)
	}

	var resp placesResponse
	if err := c.get(ctx, nearbySearchPath, params, &resp); err != nil {
		c.metrics.RecordProviderCall("venue_search", "error")
		return nil, err
	}
	c.metrics.RecordProviderCall("venue_search", "ok")

	venues := make([]model.Venue, 0, len(resp.Results))
	for _, place := range resp.Results {
		if query.MinRating > 0 && (place.Rating == nil || *place.Rating < query.MinRating) {
			continue
		}
		address := place.Vicinity
		if address == "" {
			address = place.FormattedAddress
		}
		venues = append(venues, model.Venue{
			Name:             place.Name,
			Address:          address,
			Location:         model.Coordinate{Lat: place.Geometry.Location.Lat, Lng: place.Geometry.Location.Lng},
			PlaceID:          place.PlaceID,
			Rating:           place.Rating,
			UserRatingsTotal: place.UserRatingsTotal,
		})
	}

	sort.SliceStable(venues, func(i, j int) bool {
		return prominence(venues[i], query.Center) > prominence(venues[j], query.Center)
	})
	if query.MaxResults > 0 && len(venues) > query.MaxResults {
		venues = venues[:query.MaxResults]
	}
	return venues, nil
}

// prominence scores a venue for pre-ranking: each rating point buys 100 meters
// of straight-line proximity to the search center. Unrated venues count as 3.0.
func prominence(v model.Venue, center model.Coordinate) float64 {
	rating := 3.0
	if v.Rating != nil {
		rating = *v.Rating
	}
	return rating*100 - util.HaversineDistance(center.Lat, center.Lng, v.Location.Lat, v.Location.Lng)
}

func (c *GoogleClient) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)
	u := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Printf("maps request %s failed: %v", path, err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("maps request %s: unexpected status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func formatLatLng(point model.Coordinate) string {
	return strconv.FormatFloat(point.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(point.Lng, 'f', -1, 64)
}
