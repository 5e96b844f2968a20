package stores

import (
	"strings"

	"caddie/internal/maps"
)

// Live place results come back noisy: grocery chains with a liquor aisle,
// gas stations, cigar lounges that are really bars. A venue survives only
// when nothing disqualifies it AND something positively marks it as a
// liquor retailer.

var excludedCategories = []string{
	"supermarket",
	"grocery_or_supermarket",
	"pharmacy",
	"drugstore",
	"gas_station",
	"convenience_store",
	"restaurant",
	"bar",
	"cafe",
	"department_store",
}

var excludedNameKeywords = []string{
	"walmart", "target", "costco", "kroger", "safeway", "whole foods",
	"trader joe", "fred meyer", "publix", "wegmans", "giant eagle",
	"walgreens", "cvs", "rite aid",
	"shell", "chevron", "exxon", "7-eleven", "circle k",
	"grill", "kitchen", "pizza", "taco", "burger",
	"cinema", "theater", "bowling",
}

var positiveNameKeywords = []string{
	"liquor", "spirits", "wine", "whiskey", "bourbon",
	"bottle shop", "package store", "beverage",
}

var positiveCategories = []string{"liquor_store"}

// KeepVenue reports whether a live venue looks like a real liquor retailer,
// without any state context.
func KeepVenue(v maps.Venue) bool {
	return KeepVenueInState(v, "")
}

// KeepVenueInState additionally applies the state's retail model: approved
// allocation chains count in chain-friendly markets but are dropped in
// independent markets (they don't get allocations there), and government
// outlets count in controlled markets even without a retail keyword in the
// name.
func KeepVenueInState(v maps.Venue, state string) bool {
	if excludedVenue(v) {
		return false
	}

	name := strings.ToLower(v.Name)
	if state != "" {
		switch SystemForState(state).Kind {
		case SystemChainFriendly:
			if matchesAny(name, approvedChains) {
				return true
			}
		case SystemStateControlled:
			if matchesAny(name, governmentIndicators) ||
				matchesAny(name, stateSearchTerms[strings.ToUpper(state)]) {
				return true
			}
		case SystemIndependent:
			if matchesAny(name, approvedChains) {
				return false
			}
		}
	}

	return positiveVenue(v)
}

func excludedVenue(v maps.Venue) bool {
	for _, cat := range v.Categories {
		for _, excluded := range excludedCategories {
			if cat == excluded {
				return true
			}
		}
	}
	return matchesAny(strings.ToLower(v.Name), excludedNameKeywords)
}

func positiveVenue(v maps.Venue) bool {
	for _, cat := range v.Categories {
		for _, positive := range positiveCategories {
			if cat == positive {
				return true
			}
		}
	}
	return matchesAny(strings.ToLower(v.Name), positiveNameKeywords)
}

func matchesAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}

// FilterVenues applies the stateless KeepVenue across a result list.
func FilterVenues(venues []maps.Venue) []maps.Venue {
	return FilterVenuesInState(venues, "")
}

// FilterVenuesInState applies KeepVenueInState across a result list.
func FilterVenuesInState(venues []maps.Venue, state string) []maps.Venue {
	kept := make([]maps.Venue, 0, len(venues))
	for _, v := range venues {
		if KeepVenueInState(v, state) {
			kept = append(kept, v)
		}
	}
	return kept
}
