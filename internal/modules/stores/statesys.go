// README: state retail systems. US states fall into three liquor retail
// models, and each model changes how allocations actually move: who stocks
// them, which chains are worth calling, and what to search for. The table
// drives search keywords, venue filtering, and the hunt guidance attached
// to a resolution.
package stores

import (
	"regexp"
	"strings"
)

// SystemKind identifies a state's liquor retail model.
type SystemKind string

const (
	SystemIndependent     SystemKind = "independent_dominant"
	SystemChainFriendly   SystemKind = "chain_friendly"
	SystemStateControlled SystemKind = "state_controlled"
)

// HuntStep is one concrete move in a state's hunt plan.
type HuntStep struct {
	Name   string
	Action string
	Tip    string
}

// StateSystem describes how allocations are distributed under one retail
// model. The zero value (empty Kind) means the state is unknown.
type StateSystem struct {
	Kind           SystemKind
	Name           string
	Description    string
	AllocationTip  string
	SearchKeywords []string
	Steps          []HuntStep
}

var stateSystems = map[SystemKind]StateSystem{
	SystemIndependent: {
		Kind:           SystemIndependent,
		Name:           "Independent Store Market",
		Description:    "Independent liquor stores dominate the market. Local shops handle most allocations through direct relationships with distributors.",
		AllocationTip:  "Build relationships with local liquor store owners and managers. Ask about allocation lists and delivery days (typically Thursday/Friday).",
		SearchKeywords: []string{"liquor store", "wine and spirits", "package store", "bottle shop"},
		Steps: []HuntStep{
			{Name: "Identify local shops", Action: "Find independent liquor stores in your area", Tip: "Look for stores with 'liquor', 'spirits', or 'wine' in the name."},
			{Name: "Call and ask about allocations", Action: "Call 3-5 shops and ask how their allocation process works", Tip: "Best times to call: Tuesday-Thursday mornings."},
			{Name: "Visit and build relationships", Action: "Visit stores, make purchases, and ask to be added to allocation lists", Tip: "Some stores require purchase history before allocations."},
			{Name: "Learn delivery schedules", Action: "Ask what day allocated bottles typically arrive", Tip: "Show up on delivery days, usually Thursday or Friday mornings."},
		},
	},
	SystemChainFriendly: {
		Kind:           SystemChainFriendly,
		Name:           "Chain-Inclusive Market",
		Description:    "Private retail market where major chains and specialty retailers handle significant allocation volume alongside independent stores.",
		AllocationTip:  "Check both major chains (Total Wine, BevMo) and independent specialty shops. Many chains use lottery or waitlist systems.",
		SearchKeywords: []string{"liquor store", "wine and spirits", "total wine", "bevmo", "specialty liquor"},
		Steps: []HuntStep{
			{Name: "Check major chain lotteries", Action: "Visit Total Wine and BevMo websites and sign up for allocation lotteries", Tip: "Some chains require in-store signup; call to confirm."},
			{Name: "Find specialty retailers", Action: "Search for independent liquor stores known for good bourbon selection", Tip: "Check local bourbon groups for recommendations."},
			{Name: "Ask about the allocation process", Action: "Call stores and ask if they use waitlists, lotteries, or first-come systems", Tip: "Chains often have formal online systems; independents are relationship-based."},
			{Name: "Monitor release schedules", Action: "Sign up for email notifications and check websites regularly", Tip: "Allocated drops are often announced 24-48 hours in advance."},
		},
	},
	SystemStateControlled: {
		Kind:           SystemStateControlled,
		Name:           "State-Controlled Market",
		Description:    "State government operates liquor stores or tightly controls distribution. Allocations typically handled through lottery systems or centralized releases.",
		AllocationTip:  "Monitor your state ABC/liquor control website for lottery announcements and release schedules. Most allocations are online lottery-based.",
		SearchKeywords: []string{"abc store", "state liquor", "liquor control", "state spirits"},
		Steps: []HuntStep{
			{Name: "Find your state's ABC website", Action: "Search for your state's liquor control board and bookmark the official site", Tip: "State websites announce lottery dates and rules."},
			{Name: "Sign up for notifications", Action: "Register for email alerts about allocated bottle releases", Tip: "Some states require account creation for lottery entry."},
			{Name: "Learn the lottery system", Action: "Read the rules: entry periods, pickup windows, purchase limits", Tip: "Lottery windows are often short, 24-48 hours."},
			{Name: "Monitor release schedules", Action: "Check the website regularly; many states have quarterly or seasonal drops", Tip: "Fall (Sept-Nov) typically has the highest allocation volume."},
		},
	},
}

var statesByKind = map[SystemKind][]string{
	SystemIndependent: {
		"KY", "TN", "TX", "GA", "FL", "IN", "OH", "MI",
		"NY", "NJ", "SC", "OK", "KS", "NE", "SD", "ND",
		"IA", "MN", "AR", "CT", "DE", "MA", "RI", "MD",
	},
	SystemChainFriendly: {
		"WA", "CA", "AZ", "NV", "CO", "NM", "LA", "MO", "WI", "IL",
	},
	SystemStateControlled: {
		"PA", "UT", "NC", "VA", "AL", "ID", "NH", "MS",
		"MT", "OR", "VT", "WY", "WV", "ME",
	},
}

var systemByState = buildSystemIndex()

func buildSystemIndex() map[string]SystemKind {
	idx := make(map[string]SystemKind)
	for kind, states := range statesByKind {
		for _, st := range states {
			idx[st] = kind
		}
	}
	return idx
}

// approvedChains get allocations in chain-friendly markets. The same names
// are excluded in independent markets, where allocations flow to local shops
// instead.
var approvedChains = []string{
	"total wine", "bevmo", "binny's", "k&l wine merchants",
	"spec's", "twin liquors", "hi-time", "mission liquor",
	"remedy liquor", "justin's house of bourbon",
}

// governmentIndicators mark state-run or state-licensed outlets in
// controlled markets.
var governmentIndicators = []string{"abc", "state liquor", "liquor control", "state store"}

// stateSearchTerms are per-state names for the government outlets of
// controlled markets.
var stateSearchTerms = map[string][]string{
	"PA": {"fine wine & good spirits", "fwgs", "plcb"},
	"NC": {"abc store", "north carolina abc"},
	"VA": {"virginia abc", "vabc"},
	"OR": {"olcc", "liquor store"},
	"UT": {"utah liquor store", "dabs"},
	"NH": {"new hampshire liquor", "nh liquor"},
	"AL": {"alabama abc"},
	"ID": {"idaho state liquor"},
	"MS": {"mississippi abc"},
	"MT": {"montana liquor"},
	"VT": {"vermont liquor"},
	"WY": {"wyoming liquor"},
	"WV": {"west virginia abc"},
	"ME": {"maine liquor"},
}

var stateWebsites = map[string]string{
	"PA": "https://www.finewineandgoodspirits.com",
	"NC": "https://abc.nc.gov",
	"VA": "https://www.abc.virginia.gov",
	"OR": "https://www.oregon.gov/olcc",
	"UT": "https://webapps.abc.utah.gov",
	"NH": "https://www.liquorandwineoutlets.com",
}

// SystemForState returns the retail system for a two-letter state code.
// Unlisted states read as independent-dominant, the most common model.
func SystemForState(state string) StateSystem {
	kind, ok := systemByState[strings.ToUpper(strings.TrimSpace(state))]
	if !ok {
		kind = SystemIndependent
	}
	return stateSystems[kind]
}

// IsState reports whether a two-letter code names a known US state.
func IsState(code string) bool {
	_, ok := systemByState[strings.ToUpper(strings.TrimSpace(code))]
	return ok
}

// Website returns the allocation lottery site for state-controlled markets
// that publish one.
func Website(state string) (string, bool) {
	url, ok := stateWebsites[strings.ToUpper(strings.TrimSpace(state))]
	return url, ok
}

// stateRe matches a comma-introduced two-letter code: "Chicago, IL, USA",
// "dallas, tx", "Atlanta, GA 30344, USA". A bare pair of letters is not
// enough; too many states collide with English words.
var stateRe = regexp.MustCompile(`,\s*([A-Za-z]{2})(?:\s+\d{5})?\s*(?:,|$)`)

// StateOf extracts the US state from a geocode label or area hint.
func StateOf(text string) (string, bool) {
	m := stateRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", false
	}
	state := strings.ToUpper(m[1])
	if _, ok := systemByState[state]; !ok {
		return "", false
	}
	return state, true
}

// searchKeywordForState picks the nearby-search keyword for a state's
// retail model; controlled markets search by their government outlet name.
func searchKeywordForState(state string) string {
	sys := SystemForState(state)
	if sys.Kind == SystemStateControlled {
		if terms := stateSearchTerms[strings.ToUpper(state)]; len(terms) > 0 {
			return terms[0]
		}
	}
	return sys.SearchKeywords[0]
}

// regionState derives the state from a curated region key ("dallas_tx").
func regionState(region string) string {
	i := strings.LastIndex(region, "_")
	if i < 0 || i+1 >= len(region) {
		return ""
	}
	return strings.ToUpper(region[i+1:])
}
