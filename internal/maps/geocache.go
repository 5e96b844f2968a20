// README: Read-through Redis cache in front of the geocoder, keyed by raw query.
package maps

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	geocodeKeyPrefix = "geocode:"
	// Geocoding results are stable; a day of caching is safe.
	geocodeTTL = 24 * time.Hour
)

// GeocodeCache wraps a Geocoder with a Redis cache. Cache failures fall
// through to the live call, so correctness never depends on Redis.
type GeocodeCache struct {
	redis *redis.Client
	next  Geocoder
}

func NewGeocodeCache(rdb *redis.Client, next Geocoder) *GeocodeCache {
	return &GeocodeCache{redis: rdb, next: next}
}

func (c *GeocodeCache) Geocode(ctx context.Context, query string) (Location, error) {
	key := geocodeKey(query)

	// A miss, a Redis error, or a corrupt entry all fall through to the
	// live call.
	if val, err := c.redis.Get(ctx, key).Result(); err == nil {
		var loc Location
		if jsonErr := json.Unmarshal([]byte(val), &loc); jsonErr == nil {
			return loc, nil
		}
	}

	loc, err := c.next.Geocode(ctx, query)
	if err != nil {
		return Location{}, err
	}

	if payload, jsonErr := json.Marshal(loc); jsonErr == nil {
		_ = c.redis.Set(ctx, key, payload, geocodeTTL).Err()
	}
	return loc, nil
}

func geocodeKey(query string) string {
	return geocodeKeyPrefix + strings.ToLower(strings.TrimSpace(query))
}
