package dialogue

import (
	"regexp"
	"strings"

	"caddie/internal/modules/catalog"
	"caddie/internal/modules/pairing"
)

// PairingTriggers and HuntTriggers are the lexical cues for each mode.
var (
	PairingTriggers = []string{
		"pair", "pairing", "cigar", "smoke with", "goes with",
		"match with", "what cigar",
	}

	HuntTriggers = []string{
		"allocation", "allocated", "rare", "limited", "drop", "lottery",
		"raffle", "release", "find", "near me", "closest", "in my area",
		"where can i find",
	}
)

// triggerRules is the router's priority order. A message matching both a
// pairing trigger and a hunt trigger ("find a cigar that pairs...") goes to
// pairing because it appears first here. The order is part of the contract;
// TestRoutePriorityOrder pins it.
var triggerRules = []struct {
	mode     Mode
	triggers []string
}{
	{ModePairing, PairingTriggers},
	{ModeHunt, HuntTriggers},
}

var zipRe = regexp.MustCompile(`\b\d{5}\b`)

// Route classifies a message. A pending clarification wins outright: the
// message is that question's answer and is not re-classified.
func Route(message string, s *Session) Mode {
	if s.Pending != nil {
		return s.Pending.Mode
	}

	t := strings.ToLower(message)
	for _, rule := range triggerRules {
		for _, trigger := range rule.triggers {
			if strings.Contains(t, trigger) {
				return rule.mode
			}
		}
	}

	// A bare ZIP is always a hunt candidate.
	if zipRe.MatchString(t) {
		return ModeHunt
	}

	// Mid-flow continuations stay in their lane: "make it full bodied"
	// right after a pairing, or a bottle name right after a hunt.
	if s.LastMode == ModePairing {
		if _, ok := pairing.MatchIntensity(t); ok {
			return ModePairing
		}
	}
	if s.LastMode == ModeHunt {
		if _, ok := catalog.MatchName(t); ok {
			return ModeHunt
		}
	}

	return ModeInfo
}
