package maps

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

type countingGeocoder struct {
	calls int
	loc   Location
	err   error
}

func (g *countingGeocoder) Geocode(ctx context.Context, query string) (Location, error) {
	g.calls++
	if g.err != nil {
		return Location{}, g.err
	}
	return g.loc, nil
}

func setupTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(mr.Close)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestGeocodeCache_ReadThrough(t *testing.T) {
	live := &countingGeocoder{loc: Location{Lat: 33.679, Lng: -84.439, Label: "Atlanta, GA 30344, USA"}}
	cache := NewGeocodeCache(setupTestRedis(t), live)
	ctx := context.Background()

	first, err := cache.Geocode(ctx, "30344")
	if err != nil {
		t.Fatalf("first geocode: %v", err)
	}
	second, err := cache.Geocode(ctx, "30344")
	if err != nil {
		t.Fatalf("second geocode: %v", err)
	}

	if live.calls != 1 {
		t.Errorf("live geocoder called %d times, want 1", live.calls)
	}
	if first != second {
		t.Errorf("cached result differs: %+v vs %+v", first, second)
	}
}

func TestGeocodeCache_KeyNormalization(t *testing.T) {
	live := &countingGeocoder{loc: Location{Lat: 32.78, Lng: -96.80, Label: "Dallas, TX, USA"}}
	cache := NewGeocodeCache(setupTestRedis(t), live)
	ctx := context.Background()

	if _, err := cache.Geocode(ctx, "Dallas, TX"); err != nil {
		t.Fatalf("geocode: %v", err)
	}
	if _, err := cache.Geocode(ctx, "  dallas, tx "); err != nil {
		t.Fatalf("geocode: %v", err)
	}

	if live.calls != 1 {
		t.Errorf("live geocoder called %d times, want 1 (key should be case/space insensitive)", live.calls)
	}
}

func TestGeocodeCache_LiveFailureNotCached(t *testing.T) {
	live := &countingGeocoder{err: errors.New("upstream down")}
	cache := NewGeocodeCache(setupTestRedis(t), live)
	ctx := context.Background()

	if _, err := cache.Geocode(ctx, "Unknown Place"); err == nil {
		t.Fatal("expected error from live geocoder")
	}

	live.err = nil
	live.loc = Location{Lat: 1, Lng: 2, Label: "Found"}
	loc, err := cache.Geocode(ctx, "Unknown Place")
	if err != nil {
		t.Fatalf("geocode after recovery: %v", err)
	}
	if loc.Label != "Found" {
		t.Errorf("got label %q, want %q", loc.Label, "Found")
	}
	if live.calls != 2 {
		t.Errorf("live geocoder called %d times, want 2 (failures must not be cached)", live.calls)
	}
}
