package pairing

import "strings"

// ForBourbon recommends a cigar to smoke with the given bottle. The
// intensity preference ("mild", "medium", "full") nudges the pick when the
// bottle's own profile allows a range.
func ForBourbon(bottle, intensity string) (Recommendation, []Recommendation) {
	profName, prof := profileFor(bottle)

	strength := prof.BestFor
	if intensity != "" {
		strength = intensity
	}

	primary, rest := classicsFor(profName, strength)
	primaryRec := Recommendation{
		Cigar:      primary.Examples[0] + " (" + primary.CigarType + ")",
		Strength:   strength,
		Why:        whyLines(primary.Why, prof),
		Pour:       bottle + ", neat",
		QualityTag: prof.QualityTag,
	}

	var alts []Recommendation
	for _, c := range rest {
		alts = append(alts, Recommendation{
			Cigar:      c.Examples[0] + " (" + c.CigarType + ")",
			Strength:   c.Strength,
			Why:        []string{c.Why},
			Pour:       bottle + ", neat",
			QualityTag: prof.QualityTag,
		})
		if len(alts) == 2 {
			break
		}
	}
	return primaryRec, alts
}

// ForCigar recommends a pour for the given cigar. Strength comes from the
// cigar's wrapper when we recognize it, otherwise from the caller's
// intensity preference.
func ForCigar(cigar, intensity string) (Recommendation, []Recommendation) {
	strength := CigarStrength(cigar)
	if strength == "" {
		strength = intensity
	}
	if strength == "" {
		strength = "medium"
	}

	bottles := bottlesByStrength[strength]
	if len(bottles) == 0 {
		bottles = bottlesByStrength["medium"]
	}

	match, _ := classicsFor(profileForStrength(strength), strength)
	primary := Recommendation{
		Cigar:      cigar,
		Strength:   strength,
		Why:        []string{match.Why, tips[0]},
		Pour:       bottles[0] + ", neat",
		QualityTag: profiles[profileForStrength(strength)].QualityTag,
	}

	var alts []Recommendation
	for _, b := range bottles[1:3] {
		alts = append(alts, Recommendation{
			Cigar:      cigar,
			Strength:   strength,
			Why:        []string{tips[1]},
			Pour:       b + ", neat",
			QualityTag: profiles[profileForStrength(strength)].QualityTag,
		})
	}
	return primary, alts
}

// MatchCigar looks for a cigar mention in free text: a wrapper word or a
// known brand. Returns a display name.
func MatchCigar(text string) (string, bool) {
	t := strings.ToLower(text)
	for _, c := range classics {
		for _, ex := range c.Examples {
			if strings.Contains(t, strings.ToLower(ex)) {
				return ex, true
			}
		}
	}
	brands := []string{
		"padron", "macanudo", "ashton", "montecristo", "arturo fuente",
		"oliva", "liga privada", "drew estate", "tatuaje",
		"romeo y julieta", "perdomo", "illusione", "my father", "rocky patel",
	}
	for _, b := range brands {
		if strings.Contains(t, b) {
			return titleCase(b), true
		}
	}
	for _, wrappers := range wrappersByStrength {
		for _, w := range wrappers {
			lw := strings.ToLower(w)
			if lw == "natural" {
				continue // too generic on its own
			}
			if strings.Contains(t, lw) {
				return w, true
			}
		}
	}
	return "", false
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if w == "y" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// MatchIntensity reads a strength preference out of free text.
func MatchIntensity(text string) (string, bool) {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "mild") || strings.Contains(t, "light"):
		return "mild", true
	case strings.Contains(t, "full") || strings.Contains(t, "bold") || strings.Contains(t, "strong"):
		return "full", true
	case strings.Contains(t, "medium"):
		return "medium", true
	}
	return "", false
}

func profileFor(bottle string) (string, profile) {
	b := strings.ToLower(bottle)
	for name, p := range profiles {
		for _, candidate := range p.Bottles {
			c := strings.ToLower(candidate)
			if strings.Contains(b, c) || strings.Contains(c, b) {
				return name, p
			}
		}
	}
	return "medium_balanced", profiles["medium_balanced"]
}

func profileForStrength(strength string) string {
	switch strength {
	case "mild":
		return "light_sweet"
	case "full":
		return "high_proof_bold"
	default:
		return "medium_balanced"
	}
}

// classicsFor returns the best classic pairing for the profile/strength
// plus the remaining candidates. A profile match beats a strength match.
func classicsFor(profName, strength string) (classic, []classic) {
	primaryIdx := -1
	for i, c := range classics {
		if c.Profile == profName {
			primaryIdx = i
			break
		}
	}
	if primaryIdx < 0 {
		for i, c := range classics {
			if c.Strength == strength {
				primaryIdx = i
				break
			}
		}
	}
	if primaryIdx < 0 {
		primaryIdx = 1 // Medium Habano, the safe middle
	}

	var rest []classic
	for i, c := range classics {
		if i == primaryIdx {
			continue
		}
		if c.Profile == profName || c.Strength == strength {
			rest = append(rest, c)
		}
	}
	return classics[primaryIdx], rest
}

func whyLines(classicWhy string, prof profile) []string {
	return []string{
		classicWhy,
		"This pour runs " + prof.ProofRange + " proof: " + strings.ToLower(prof.FlavorNotes) + ".",
	}
}

// CigarStrength reads a cigar's strength off its wrapper word or a known
// full-bodied line name; empty when neither is recognized.
func CigarStrength(cigar string) string {
	c := strings.ToLower(cigar)
	for strength, wrappers := range wrappersByStrength {
		for _, w := range wrappers {
			if strings.Contains(c, strings.ToLower(w)) {
				return strength
			}
		}
	}
	// Known full-bodied lines that don't carry a wrapper word in the name.
	for _, marker := range []string{"liga privada", "padron 1926", "oliva serie v", "le bijou"} {
		if strings.Contains(c, marker) {
			return "full"
		}
	}
	return ""
}
