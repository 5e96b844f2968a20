package dialogue

import (
	"regexp"
	"strings"

	"caddie/internal/modules/catalog"
	"caddie/internal/modules/pairing"
	"caddie/internal/modules/stores"
)

const (
	slotHuntArea       = "hunt.area"
	slotPairingSubject = "pairing.subject"
)

var spiritWords = []string{
	"bourbon", "rye", "scotch", "whiskey", "whisky", "tequila", "rum", "cognac",
}

// gate checks the routed mode's required slots against the message, the
// session and entity memory. It returns a clarify response when something
// required is still missing; filling what it can along the way.
func gate(mode Mode, message string, s *Session) *Response {
	switch mode {
	case ModeHunt:
		return gateHunt(message, s)
	case ModePairing:
		return gatePairing(message, s)
	case ModeInfo:
		return gateInfo(message, s)
	}
	return nil
}

func gateHunt(message string, s *Session) *Response {
	t := strings.ToLower(message)

	// Target is optional; default is a general store hunt. An explicit
	// shops/stores request without a bottle name drops any target left
	// over from an earlier hunt.
	if name, ok := catalog.MatchName(message); ok {
		s.Hunt.Target, s.Hunt.TargetKind = name, "bottle"
		s.RememberEntity(CategoryBourbon, name)
	} else if strings.Contains(t, "shop") || strings.Contains(t, "store") {
		s.Hunt.Target, s.Hunt.TargetKind = "", "stores"
	} else if s.Hunt.TargetKind == "" {
		s.Hunt.TargetKind = "stores"
	}

	if area, ok := extractArea(message); ok {
		s.Hunt.Area = area
	}
	if s.Hunt.Area != "" {
		return nil
	}

	// Loop prevention: if we already asked once and the answer still did
	// not parse, take the message verbatim rather than asking again.
	if s.Asked[slotHuntArea] {
		s.Hunt.Area = strings.TrimSpace(message)
		return nil
	}

	s.Pending = &Clarification{Mode: ModeHunt, Slot: slotHuntArea}
	s.Asked[slotHuntArea] = true
	return &Response{
		Mode:    ModeClarify,
		Summary: "I can do this, I just need your hunt area and target.",
		KeyPoints: []string{
			"Send your ZIP or city/state.",
			"Tell me if you want a specific bottle or just the best allocation shops.",
		},
		ItemList: []Item{
			{Label: "Example A", Value: "30344 + Weller"},
			{Label: "Example B", Value: "Dallas, TX + best allocation shops"},
		},
		NextStep: "Reply with ZIP/city and either a bottle name or 'best allocation shops'.",
	}
}

func gatePairing(message string, s *Session) *Response {
	// Subject resolution order: explicit bottle, explicit cigar, pronoun
	// against entity memory, generic spirit word, then what the session
	// already has.
	if name, ok := catalog.MatchName(message); ok {
		s.Pairing.Subject, s.Pairing.SubjectCategory = name, CategoryBourbon
		s.RememberEntity(CategoryBourbon, name)
	} else if cigar, ok := pairing.MatchCigar(message); ok {
		s.Pairing.Subject, s.Pairing.SubjectCategory = cigar, CategoryCigar
		s.RememberEntity(CategoryCigar, cigar)
	} else if cat, name, ok := ResolveReference(message, s); ok {
		s.Pairing.Subject, s.Pairing.SubjectCategory = name, cat
	} else if spirit, ok := spiritWord(message); ok {
		s.Pairing.Subject, s.Pairing.SubjectCategory = spirit, CategoryBourbon
	}

	if intensity, ok := pairing.MatchIntensity(message); ok {
		s.Pairing.Intensity = intensity
	}

	if s.Pairing.Subject != "" {
		return nil
	}

	if s.Asked[slotPairingSubject] {
		s.Pairing.Subject, s.Pairing.SubjectCategory = strings.TrimSpace(message), CategoryBourbon
		return nil
	}

	s.Pending = &Clarification{Mode: ModePairing, Slot: slotPairingSubject}
	s.Asked[slotPairingSubject] = true
	return &Response{
		Mode:      ModeClarify,
		Summary:   "Before I pair it, what are we smoking with?",
		KeyPoints: []string{"Tell me the spirit type or the exact bottle."},
		ItemList: []Item{
			{Label: "Example", Value: "Pair a cigar with bourbon (medium)."},
			{Label: "Example", Value: "Pair a cigar with Eagle Rare (mild)."},
		},
		NextStep: "Reply with the spirit type or bottle name.",
	}
}

// gateInfo only intervenes on messages too thin to answer: greetings and
// one-word pokes get the lane menu. Unlike the hunt and pairing gates this
// asks no slot question, so no pending clarification is recorded and the
// next message routes normally instead of being consumed as an answer.
func gateInfo(message string, s *Session) *Response {
	t := strings.ToLower(strings.TrimSpace(message))
	thin := map[string]bool{"help": true, "yo": true, "hey": true, "hi": true, "question": true}
	if !thin[t] && len(t) >= 3 {
		return nil
	}
	return &Response{
		Mode:    ModeClarify,
		Summary: "Tell me what lane you're in.",
		ItemList: []Item{
			{Label: "INFO", Value: "Ask about proof, notes, price, or comparisons."},
			{Label: "PAIRING", Value: "Ask what cigar pairs with a bottle or spirit."},
			{Label: "HUNT", Value: "Ask where to find allocated bottles or the best shops."},
		},
		NextStep: "Reply with your question in one sentence.",
	}
}

// applyPendingAnswer consumes the outstanding clarification: the whole
// message is the answer for the recorded slot. Returns the mode the turn
// resumes in.
func applyPendingAnswer(message string, s *Session) Mode {
	pending := s.Pending
	s.Pending = nil

	switch pending.Slot {
	case slotHuntArea:
		if area, ok := extractArea(message); ok {
			s.Hunt.Area = area
		} else {
			s.Hunt.Area = strings.TrimSpace(message)
		}
		if name, ok := catalog.MatchName(message); ok {
			s.Hunt.Target, s.Hunt.TargetKind = name, "bottle"
			s.RememberEntity(CategoryBourbon, name)
		} else if s.Hunt.TargetKind == "" {
			s.Hunt.TargetKind = "stores"
		}

	case slotPairingSubject:
		if name, ok := catalog.MatchName(message); ok {
			s.Pairing.Subject, s.Pairing.SubjectCategory = name, CategoryBourbon
			s.RememberEntity(CategoryBourbon, name)
		} else if cigar, ok := pairing.MatchCigar(message); ok {
			s.Pairing.Subject, s.Pairing.SubjectCategory = cigar, CategoryCigar
			s.RememberEntity(CategoryCigar, cigar)
		} else if spirit, ok := spiritWord(message); ok {
			s.Pairing.Subject, s.Pairing.SubjectCategory = spirit, CategoryBourbon
		} else {
			s.Pairing.Subject, s.Pairing.SubjectCategory = strings.TrimSpace(message), CategoryBourbon
		}
		if intensity, ok := pairing.MatchIntensity(message); ok {
			s.Pairing.Intensity = intensity
		}
	}

	return pending.Mode
}

var cityStateRe = regexp.MustCompile(`([A-Za-z]+)\s*,\s*([A-Za-z]{2})\b`)

// extractArea pulls a usable hunt area out of a message: a 5-digit ZIP, a
// known city name, or a "city, ST" pair.
func extractArea(message string) (string, bool) {
	if zip := zipRe.FindString(message); zip != "" {
		return zip, true
	}
	if city, ok := stores.CityAlias(message); ok {
		return city, true
	}
	if m := cityStateRe.FindStringSubmatch(message); m != nil && stores.IsState(m[2]) {
		return m[1] + ", " + strings.ToUpper(m[2]), true
	}
	return "", false
}

func spiritWord(message string) (string, bool) {
	t := strings.ToLower(message)
	for _, w := range spiritWords {
		if strings.Contains(t, w) {
			return w, true
		}
	}
	return "", false
}
