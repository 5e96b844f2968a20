// README: Store resolution pipeline: curated lookup, geocode, live nearby
// search, filtering, and the curated-first merge.
package stores

import (
	"context"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"caddie/internal/maps"
)

const (
	// A ZIP pins a point, so we search tight and return few.
	NarrowRadiusMeters = 10000
	narrowCap          = 5

	// A city name is a blur, so we search wide and return more.
	BroadRadiusMeters = 40000
	broadCap          = 10

	searchKeyword   = "liquor store"
	externalTimeout = 5 * time.Second
)

var zipRe = regexp.MustCompile(`\b\d{5}\b`)

type Service struct {
	geocoder maps.Geocoder
	searcher maps.Searcher
	log      *zap.Logger
}

func NewService(geocoder maps.Geocoder, searcher maps.Searcher, log *zap.Logger) *Service {
	return &Service{geocoder: geocoder, searcher: searcher, log: log}
}

// Resolve turns an area hint ("30344", "Dallas", "near downtown Nashville")
// into a labeled list of stores. External lookups degrade, never fail the
// call: a dead geocoder means curated-only results under the raw hint.
func (s *Service) Resolve(ctx context.Context, areaHint string) Resolution {
	curated := CuratedForArea(areaHint)
	state := stateOfHint(areaHint)

	gctx, cancel := context.WithTimeout(ctx, externalTimeout)
	defer cancel()

	loc, err := s.geocoder.Geocode(gctx, areaHint)
	if err != nil {
		s.log.Warn("geocode failed, returning curated only",
			zap.String("area_hint", areaHint), zap.Error(err))
		return resolution(strings.TrimSpace(areaHint), curated, state)
	}
	if st, ok := StateOf(loc.Label); ok {
		state = st
	}

	radius, limit := radiusFor(areaHint)
	keyword := searchKeyword
	if state != "" {
		keyword = searchKeywordForState(state)
	}

	nctx, cancel := context.WithTimeout(ctx, externalTimeout)
	defer cancel()

	venues, err := s.searcher.Nearby(nctx, loc, radius, keyword)
	if err != nil {
		s.log.Warn("nearby search failed, returning curated only",
			zap.String("area_hint", areaHint), zap.Error(err))
		return resolution(loc.Label, capRecords(curated, limit), state)
	}

	live := toRecords(FilterVenuesInState(venues, state))
	merged := mergeCuratedFirst(curated, live)
	return resolution(loc.Label, capRecords(merged, limit), state)
}

// stateOfHint finds the state before any geocoding: an explicit "city, ST"
// hint, or the state baked into a curated region key.
func stateOfHint(areaHint string) string {
	if state, ok := StateOf(areaHint); ok {
		return state
	}
	if region, ok := matchRegion(areaHint); ok {
		return regionState(region)
	}
	return ""
}

func resolution(label string, records []Record, state string) Resolution {
	res := Resolution{Label: label, Records: records, State: state}
	if state != "" {
		res.System = SystemForState(state)
	}
	return res
}

// radiusFor picks the radius and result cap: narrow for a ZIP hint, broad
// for a city or region hint.
func radiusFor(areaHint string) (radius, limit int) {
	if zipRe.MatchString(areaHint) {
		return NarrowRadiusMeters, narrowCap
	}
	return BroadRadiusMeters, broadCap
}

func toRecords(venues []maps.Venue) []Record {
	records := make([]Record, 0, len(venues))
	for _, v := range venues {
		lat, lng := v.Lat, v.Lng
		records = append(records, Record{
			Name:       v.Name,
			Address:    v.Address,
			Notes:      "Found via live search; call ahead to ask about allocations.",
			Lat:        &lat,
			Lng:        &lng,
			Provenance: ProvenanceLive,
		})
	}
	return records
}

// mergeCuratedFirst combines the two lists, curated entries first, dropping
// live records whose name collides with a curated one. Dedupe key is the
// lowercased, whitespace-trimmed name.
func mergeCuratedFirst(curated, live []Record) []Record {
	seen := make(map[string]bool, len(curated)+len(live))
	merged := make([]Record, 0, len(curated)+len(live))
	for _, r := range curated {
		key := dedupeKey(r.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, r)
	}
	for _, r := range live {
		key := dedupeKey(r.Name)
		if seen[key] {
			continue
		}
		seen[key] = true
		merged = append(merged, r)
	}
	return merged
}

func dedupeKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

func capRecords(records []Record, limit int) []Record {
	if len(records) > limit {
		return records[:limit]
	}
	return records
}
