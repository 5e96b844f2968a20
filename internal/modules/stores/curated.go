package stores

import "strings"

// README: hand-curated allocation stores by metro area. Sourced from
// enthusiast reports and local bourbon groups; the allocation method
// (raffle, list, lottery, points) is folded into the notes because that is
// the first thing to ask a shop about.

func ptr(f float64) *float64 { return &f }

var curatedByRegion = map[string][]Record{
	"louisville_ky": {
		{
			Name:       "Westport Whiskey & Wine",
			Address:    "1115 Herr Ln, Louisville, KY 40222",
			Phone:      "(502) 618-4683",
			Lat:        ptr(38.2454),
			Lng:        ptr(-85.6532),
			Notes:      "Raffle system. Follow on social media for raffle announcements; must be present to win.",
			Provenance: ProvenanceCurated,
		},
		{
			Name:       "Old Town Liquors",
			Address:    "1529 Bardstown Rd, Louisville, KY 40205",
			Phone:      "(502) 451-8591",
			Lat:        ptr(38.2343),
			Lng:        ptr(-85.7089),
			Notes:      "Points system; earn points through purchases. Known for getting BTAC, Weller, Blanton's.",
			Provenance: ProvenanceCurated,
		},
		{
			Name:       "Julio's Liquors",
			Address:    "4327 Bishop Ln, Louisville, KY 40218",
			Phone:      "(502) 485-0200",
			Lat:        ptr(38.2021),
			Lng:        ptr(-85.6744),
			Notes:      "Allocation list; sign up in-store. Long-time customers get priority. Fair pricing.",
			Provenance: ProvenanceCurated,
		},
	},
	"nashville_tn": {
		{
			Name:       "Frugal MacDoogal",
			Address:    "1950 Gallatin Pike N, Madison, TN 37115",
			Phone:      "(615) 868-0450",
			Lat:        ptr(36.2559),
			Lng:        ptr(-86.7019),
			Notes:      "First-come drops on delivery days, usually Thursday mornings. Get there early. Known for BTAC drops.",
			Provenance: ProvenanceCurated,
		},
		{
			Name:       "Corkdorks Wine Spirits Beer Midtown",
			Address:    "1610 Church Street, Nashville, TN 37203",
			Phone:      "(615) 327-3874",
			Lat:        ptr(36.1540),
			Lng:        ptr(-86.7965),
			Notes:      "Raffle system for allocated bottles; sign up in-store. Loyal customers prioritized.",
			Provenance: ProvenanceCurated,
		},
		{
			Name:       "Red Dog Wine & Spirits",
			Address:    "2410 Elliston Pl, Nashville, TN 37203",
			Phone:      "(615) 327-9893",
			Lat:        ptr(36.1531),
			Lng:        ptr(-86.7987),
			Notes:      "Allocation list; build a relationship first. Known for store picks.",
			Provenance: ProvenanceCurated,
		},
	},
	"dallas_tx": {
		{
			Name:       "Goody Goody Liquor",
			Address:    "Multiple DFW locations",
			Phone:      "(214) 350-6973",
			Lat:        ptr(32.7767),
			Lng:        ptr(-96.7970),
			Notes:      "Online lottery; sign up on their website, winners notified by email. Fair and transparent.",
			Provenance: ProvenanceCurated,
		},
		{
			Name:       "Spec's Wine, Spirits & Finer Foods",
			Address:    "Multiple DFW locations",
			Phone:      "Varies by location",
			Lat:        ptr(32.7767),
			Lng:        ptr(-96.7970),
			Notes:      "Spend-based; loyalty program required and higher spenders get first access.",
			Provenance: ProvenanceCurated,
		},
		{
			Name:       "Times Ten Cellars",
			Address:    "6324 Prospect Ave, Dallas, TX 75214",
			Phone:      "(214) 824-9463",
			Lat:        ptr(32.8271),
			Lng:        ptr(-96.7678),
			Notes:      "Allocation list; excellent bourbon selection, build a relationship with staff.",
			Provenance: ProvenanceCurated,
		},
	},
	"atlanta_ga": {
		{
			Name:       "Green's Beverages",
			Address:    "2625 Piedmont Rd NE, Atlanta, GA 30324",
			Phone:      "(404) 233-3845",
			Lat:        ptr(33.8233),
			Lng:        ptr(-84.3530),
			Notes:      "Allocation list. Known for getting Weller, BTAC, Blanton's. Fair pricing.",
			Provenance: ProvenanceCurated,
		},
		{
			Name:       "Tower Beer Wine & Spirits",
			Address:    "2161 Piedmont Rd NE, Atlanta, GA 30324",
			Phone:      "(404) 233-5432",
			Lat:        ptr(33.8104),
			Lng:        ptr(-84.3567),
			Notes:      "Raffle system; follow on social media for announcements.",
			Provenance: ProvenanceCurated,
		},
		{
			Name:       "Hop City Beer & Wine",
			Address:    "1000 Marietta St NW, Atlanta, GA 30318",
			Phone:      "(404) 968-2537",
			Lat:        ptr(33.7842),
			Lng:        ptr(-84.4138),
			Notes:      "Drops announced on Instagram, first-come basis. Known for store picks.",
			Provenance: ProvenanceCurated,
		},
	},
	"chicago_il": {
		{
			Name:       "Binny's Beverage Depot",
			Address:    "Multiple Chicago locations",
			Phone:      "Varies by location",
			Lat:        ptr(41.8781),
			Lng:        ptr(-87.6298),
			Notes:      "Online lottery; must be a Binny's card member, winners drawn randomly.",
			Provenance: ProvenanceCurated,
		},
		{
			Name:       "Warehouse Liquors",
			Address:    "2900 N Ashland Ave, Chicago, IL 60657",
			Phone:      "(773) 278-6750",
			Lat:        ptr(41.9345),
			Lng:        ptr(-87.6689),
			Notes:      "Allocation list; build a relationship with the owner. Great bourbon selection.",
			Provenance: ProvenanceCurated,
		},
	},
	"denver_co": {
		{
			Name:       "Argonaut Wine & Liquor",
			Address:    "760 E Colfax Ave, Denver, CO 80203",
			Phone:      "(303) 831-7788",
			Lat:        ptr(39.7402),
			Lng:        ptr(-104.9789),
			Notes:      "Allocation list for regulars. Best selection in Denver.",
			Provenance: ProvenanceCurated,
		},
		{
			Name:       "Daveco Liquors",
			Address:    "300 S Pearl St, Denver, CO 80209",
			Phone:      "(303) 777-3615",
			Lat:        ptr(39.7134),
			Lng:        ptr(-104.9789),
			Notes:      "Points system; earn points through purchases. Known for BTAC and Pappy drops.",
			Provenance: ProvenanceCurated,
		},
	},
}

// cityAliases routes nearby metros to the closest curated region.
var cityAliases = map[string]string{
	"louisville": "louisville_ky",
	"lexington":  "louisville_ky",
	"nashville":  "nashville_tn",
	"memphis":    "nashville_tn",
	"dallas":     "dallas_tx",
	"fort worth": "dallas_tx",
	"dfw":        "dallas_tx",
	"houston":    "dallas_tx",
	"austin":     "dallas_tx",
	"atlanta":    "atlanta_ga",
	"chicago":    "chicago_il",
	"denver":     "denver_co",
}

// CuratedForArea returns curated records whose region alias appears in the
// area hint, or nil when we have no curated data for the area.
func CuratedForArea(areaHint string) []Record {
	region, ok := matchRegion(areaHint)
	if !ok {
		return nil
	}
	out := make([]Record, len(curatedByRegion[region]))
	copy(out, curatedByRegion[region])
	return out
}

// CityAlias extracts the known city mentioned in a hint ("somewhere near
// Fort Worth" -> "fort worth"), if any.
func CityAlias(hint string) (string, bool) {
	h := strings.ToLower(strings.TrimSpace(hint))
	for alias := range cityAliases {
		if strings.Contains(h, alias) {
			return alias, true
		}
	}
	return "", false
}

func matchRegion(areaHint string) (string, bool) {
	hint := strings.ToLower(strings.TrimSpace(areaHint))
	for alias, region := range cityAliases {
		if strings.Contains(hint, alias) {
			return region, true
		}
	}
	return "", false
}
