package stores

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"caddie/internal/maps"
)

type fakeGeocoder struct {
	loc maps.Location
	err error
}

func (f *fakeGeocoder) Geocode(ctx context.Context, query string) (maps.Location, error) {
	return f.loc, f.err
}

type fakeSearcher struct {
	venues      []maps.Venue
	err         error
	lastRadius  int
	lastKeyword string
}

func (f *fakeSearcher) Nearby(ctx context.Context, loc maps.Location, radiusMeters int, keyword string) ([]maps.Venue, error) {
	f.lastRadius = radiusMeters
	f.lastKeyword = keyword
	return f.venues, f.err
}

func newTestService(g maps.Geocoder, s maps.Searcher) *Service {
	return NewService(g, s, zap.NewNop())
}

func TestResolveMergesCuratedFirstAndDedupes(t *testing.T) {
	g := &fakeGeocoder{loc: maps.Location{Lat: 41.88, Lng: -87.63, Label: "Chicago, IL, USA"}}
	s := &fakeSearcher{venues: []maps.Venue{
		// Case/space variant of a curated entry; must not duplicate.
		{Name: "  binny's beverage  depot ", Address: "somewhere", Categories: []string{"liquor_store"}},
		{Name: "Lakeview Wine & Spirits", Address: "3000 N Clark St", Categories: []string{"liquor_store"}},
	}}

	res := newTestService(g, s).Resolve(context.Background(), "chicago")

	if len(res.Records) != 3 {
		t.Fatalf("got %d records, want 3 (2 curated + 1 new live)", len(res.Records))
	}
	if res.Records[0].Provenance != ProvenanceCurated || res.Records[1].Provenance != ProvenanceCurated {
		t.Error("curated records must come first")
	}
	if res.Records[0].Name != "Binny's Beverage Depot" {
		t.Errorf("first record = %q, want curated Binny's entry", res.Records[0].Name)
	}
	if res.Records[2].Name != "Lakeview Wine & Spirits" || res.Records[2].Provenance != ProvenanceLive {
		t.Errorf("third record = %+v, want the new live store", res.Records[2])
	}
	if res.Label != "Chicago, IL, USA" {
		t.Errorf("label = %q, want geocoded label", res.Label)
	}
}

func TestResolveGeocodeFailureDegradesToCurated(t *testing.T) {
	g := &fakeGeocoder{err: errors.New("quota exceeded")}
	s := &fakeSearcher{}

	res := newTestService(g, s).Resolve(context.Background(), " nashville ")

	if len(res.Records) != 3 {
		t.Fatalf("got %d records, want the 3 curated Nashville stores", len(res.Records))
	}
	for _, r := range res.Records {
		if r.Provenance != ProvenanceCurated {
			t.Errorf("record %q provenance = %q, want curated", r.Name, r.Provenance)
		}
	}
	if res.Label != "nashville" {
		t.Errorf("label = %q, want the trimmed raw hint", res.Label)
	}
	if s.lastRadius != 0 {
		t.Error("nearby search should not run after a geocode failure")
	}
}

func TestResolveGeocodeFailureNoCuratedIsEmpty(t *testing.T) {
	g := &fakeGeocoder{err: errors.New("down")}
	res := newTestService(g, &fakeSearcher{}).Resolve(context.Background(), "boise")

	if len(res.Records) != 0 {
		t.Fatalf("got %d records, want 0", len(res.Records))
	}
	if res.Label != "boise" {
		t.Errorf("label = %q, want raw hint", res.Label)
	}
}

func TestResolveSearchFailureDegradesToCurated(t *testing.T) {
	g := &fakeGeocoder{loc: maps.Location{Lat: 39.74, Lng: -104.98, Label: "Denver, CO, USA"}}
	s := &fakeSearcher{err: errors.New("places api down")}

	res := newTestService(g, s).Resolve(context.Background(), "denver")

	if len(res.Records) != 2 {
		t.Fatalf("got %d records, want 2 curated", len(res.Records))
	}
	if res.Label != "Denver, CO, USA" {
		t.Errorf("label = %q, want geocoded label", res.Label)
	}
}

func TestResolveRadiusByHintKind(t *testing.T) {
	g := &fakeGeocoder{loc: maps.Location{Lat: 33.67, Lng: -84.44, Label: "Atlanta, GA 30344, USA"}}

	s := &fakeSearcher{}
	newTestService(g, s).Resolve(context.Background(), "30344")
	if s.lastRadius != NarrowRadiusMeters {
		t.Errorf("ZIP hint radius = %d, want %d", s.lastRadius, NarrowRadiusMeters)
	}

	s = &fakeSearcher{}
	newTestService(g, s).Resolve(context.Background(), "atlanta")
	if s.lastRadius != BroadRadiusMeters {
		t.Errorf("city hint radius = %d, want %d", s.lastRadius, BroadRadiusMeters)
	}

	s = &fakeSearcher{}
	newTestService(g, s).Resolve(context.Background(), "stores near 30344 please")
	if s.lastRadius != NarrowRadiusMeters {
		t.Errorf("embedded ZIP radius = %d, want %d", s.lastRadius, NarrowRadiusMeters)
	}
}

func TestResolveCapsResults(t *testing.T) {
	g := &fakeGeocoder{loc: maps.Location{Lat: 33.67, Lng: -84.44, Label: "30344, USA"}}
	var venues []maps.Venue
	names := []string{"A Liquors", "B Spirits", "C Wine", "D Bourbon Shop", "E Bottle Shop", "F Liquor Barn", "G Spirits"}
	for _, n := range names {
		venues = append(venues, maps.Venue{Name: n, Categories: []string{"liquor_store"}})
	}
	s := &fakeSearcher{venues: venues}

	res := newTestService(g, s).Resolve(context.Background(), "30344")
	if len(res.Records) != 5 {
		t.Errorf("ZIP search returned %d records, want cap of 5", len(res.Records))
	}
}

func TestResolveFiltersExcludedVenues(t *testing.T) {
	g := &fakeGeocoder{loc: maps.Location{Lat: 36.15, Lng: -86.79, Label: "Nashville, TN, USA"}}
	s := &fakeSearcher{venues: []maps.Venue{
		{Name: "Kroger", Categories: []string{"grocery_or_supermarket"}},
		{Name: "Walgreens", Categories: []string{"pharmacy"}},
		{Name: "Shell Station", Categories: []string{"gas_station"}},
		{Name: "Midtown Wine & Spirits", Categories: []string{"liquor_store"}},
	}}

	res := newTestService(g, s).Resolve(context.Background(), "nashville")

	for _, r := range res.Records {
		if r.Provenance == ProvenanceLive && r.Name != "Midtown Wine & Spirits" {
			t.Errorf("excluded venue %q leaked through", r.Name)
		}
	}
	found := false
	for _, r := range res.Records {
		if r.Name == "Midtown Wine & Spirits" {
			found = true
		}
	}
	if !found {
		t.Error("legitimate liquor store was filtered out")
	}
}

func TestResolveDetectsStateSystem(t *testing.T) {
	g := &fakeGeocoder{loc: maps.Location{Lat: 37.54, Lng: -77.44, Label: "Richmond, VA, USA"}}
	s := &fakeSearcher{venues: []maps.Venue{
		{Name: "Virginia ABC Store 112", Address: "1 Broad St"},
		{Name: "Corner Deli & Grill", Address: "2 Broad St"},
	}}

	res := newTestService(g, s).Resolve(context.Background(), "richmond virginia")

	if res.State != "VA" {
		t.Fatalf("state = %q, want VA from the geocode label", res.State)
	}
	if res.System.Kind != SystemStateControlled {
		t.Errorf("system = %q, want state_controlled", res.System.Kind)
	}
	if s.lastKeyword != "virginia abc" {
		t.Errorf("search keyword = %q, want the state outlet term", s.lastKeyword)
	}
	if len(res.Records) != 1 || res.Records[0].Name != "Virginia ABC Store 112" {
		t.Errorf("records = %+v, want only the state outlet", res.Records)
	}
}

func TestResolveExcludesAllocationChainsInIndependentStates(t *testing.T) {
	g := &fakeGeocoder{loc: maps.Location{Lat: 38.25, Lng: -85.76, Label: "Louisville, KY, USA"}}
	s := &fakeSearcher{venues: []maps.Venue{
		{Name: "Total Wine & More", Address: "10 Chain Rd", Categories: []string{"liquor_store"}},
		{Name: "Bardstown Road Liquors", Address: "20 Local Ave", Categories: []string{"liquor_store"}},
	}}

	res := newTestService(g, s).Resolve(context.Background(), "louisville")

	if res.System.Kind != SystemIndependent {
		t.Fatalf("system = %q, want independent_dominant", res.System.Kind)
	}
	for _, r := range res.Records {
		if r.Name == "Total Wine & More" {
			t.Error("allocation chain survived the independent-market filter")
		}
	}
	var local bool
	for _, r := range res.Records {
		if r.Name == "Bardstown Road Liquors" {
			local = true
		}
	}
	if !local {
		t.Error("independent shop missing from the merged records")
	}
}

func TestResolveStateFromHintSurvivesGeocodeFailure(t *testing.T) {
	g := &fakeGeocoder{err: errors.New("quota exceeded")}

	res := newTestService(g, &fakeSearcher{}).Resolve(context.Background(), "nashville, tn")

	if res.State != "TN" {
		t.Errorf("state = %q, want TN parsed from the hint", res.State)
	}
	if res.System.Kind != SystemIndependent {
		t.Errorf("system = %q, want independent_dominant", res.System.Kind)
	}
	if len(res.Records) != 3 {
		t.Errorf("got %d records, want the curated Nashville stores", len(res.Records))
	}
}
