package dialogue

import "strings"

var pronouns = []string{"it", "that", "them", "this"}

// categoryVocabulary is checked in order so resolution stays deterministic
// when a message somehow names both sides.
var categoryVocabulary = []struct {
	cat   Category
	words []string
}{
	{CategoryBourbon, []string{"bourbon", "whiskey", "whisky", "rye", "pour", "bottle"}},
	{CategoryCigar, []string{"cigar", "smoke", "stick", "wrapper"}},
}

// HasPronoun reports whether the message carries a bare reference that
// needs resolving against entity memory.
func HasPronoun(message string) bool {
	for _, w := range strings.Fields(strings.ToLower(message)) {
		w = strings.Trim(w, ".,!?")
		for _, p := range pronouns {
			if w == p {
				return true
			}
		}
	}
	return false
}

// ResolveReference resolves a pronoun to a remembered entity.
//
// "What bourbon pairs with it" names the bourbon category, so "it" must be
// the thing on the other side: the last cigar. With no category vocabulary
// the pronoun takes the most recently updated entity of either category.
// Returns false when nothing applicable has been discussed; the caller asks
// instead of guessing.
func ResolveReference(message string, s *Session) (Category, string, bool) {
	if !HasPronoun(message) {
		return "", "", false
	}

	t := strings.ToLower(message)
	if named, ok := namedCategory(t); ok {
		other := CategoryCigar
		if named == CategoryCigar {
			other = CategoryBourbon
		}
		if e, ok := s.Entities[other]; ok {
			return other, e.Name, true
		}
		return "", "", false
	}

	var best Category
	found := false
	for _, cat := range []Category{CategoryBourbon, CategoryCigar} {
		e, ok := s.Entities[cat]
		if !ok {
			continue
		}
		if !found || e.UpdatedAt.After(s.Entities[best].UpdatedAt) {
			best, found = cat, true
		}
	}
	if !found {
		return "", "", false
	}
	return best, s.Entities[best].Name, true
}

func namedCategory(t string) (Category, bool) {
	for _, entry := range categoryVocabulary {
		for _, w := range entry.words {
			if strings.Contains(t, w) {
				return entry.cat, true
			}
		}
	}
	return "", false
}
