package dialogue

// Normalize makes a response safe to serialize: the mode is backfilled from
// the router's decision and every collection is non-nil so the wire output
// always carries the full shape. Normalizing twice changes nothing.
func Normalize(r Response, fallbackMode Mode) Response {
	if r.Mode == "" {
		r.Mode = fallbackMode
	}
	if r.KeyPoints == nil {
		r.KeyPoints = []string{}
	}
	if r.ItemList == nil {
		r.ItemList = []Item{}
	}
	if r.AlternativePairings == nil {
		r.AlternativePairings = []PairingDetail{}
	}
	if r.Stops == nil {
		r.Stops = []Stop{}
	}
	if r.TargetBottles == nil {
		r.TargetBottles = []string{}
	}
	if r.StoreTargets == nil {
		r.StoreTargets = []string{}
	}

	if r.PrimaryPairing != nil && r.PrimaryPairing.Why == nil {
		p := *r.PrimaryPairing
		p.Why = []string{}
		r.PrimaryPairing = &p
	}
	for i := range r.AlternativePairings {
		if r.AlternativePairings[i].Why == nil {
			r.AlternativePairings[i].Why = []string{}
		}
	}
	return r
}
