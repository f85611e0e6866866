package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"togather/internal/model"

	"github.com/redis/go-redis/v9"
)

const travelKeyPrefix = "traveltime"

// TravelCache memoizes distance matrix lookups for a short TTL, so the grid
// search and the venue ranking that follows it do not pay twice for the same
// (origin, destination, mode) pair. A nil *TravelCache is valid and caches
// nothing, which is how the service runs when REDIS_URL is unset.
type TravelCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New connects to Redis and returns the cache, or nil when redisURL is empty
// or the connection cannot be established. Cache setup failures are logged
// and never fatal.
func New(redisURL string, ttl time.Duration) *TravelCache {
	if redisURL == "" {
		log.Println("REDIS_URL not set, travel time caching disabled")
		return nil
	}

	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("Failed to parse Redis URL, travel time caching disabled: %v", err)
		return nil
	}
	client := redis.NewClient(opts)

	// Test the connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Printf("Failed to connect to Redis, travel time caching disabled: %v", err)
		return nil
	}

	log.Println("Successfully connected to Redis")
	return &TravelCache{client: client, ttl: ttl}
}

// Lookup returns a cached leg for the trip, if present.
func (c *TravelCache) Lookup(ctx context.Context, origin string, destination model.Coordinate, mode model.TransportMode) (model.TravelLeg, bool) {
	if c == nil {
		return model.TravelLeg{}, false
	}

	data, err := c.client.Get(ctx, travelKey(origin, destination, mode)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Printf("Travel cache lookup failed: %v", err)
		}
		return model.TravelLeg{}, false
	}

	var leg model.TravelLeg
	if err := json.Unmarshal([]byte(data), &leg); err != nil {
		return model.TravelLeg{}, false
	}
	return leg, true
}

// Store caches a successfully resolved leg.
func (c *TravelCache) Store(ctx context.Context, origin string, destination model.Coordinate, mode model.TransportMode, leg model.TravelLeg) {
	if c == nil {
		return
	}

	data, err := json.Marshal(leg)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, travelKey(origin, destination, mode), data, c.ttl).Err(); err != nil {
		log.Printf("Travel cache store failed: %v", err)
	}
}

// Close closes the underlying Redis connection.
func (c *TravelCache) Close() error {
	if c == nil {
		return nil
	}
	log.Println("Closing Redis connection...")
	return c.client.Close()
}

func travelKey(origin string, destination model.Coordinate, mode model.TransportMode) string {
	return fmt.Sprintf("%s:%s:%s:%.6f,%.6f", travelKeyPrefix, mode, origin, destination.Lat, destination.Lng)
}
