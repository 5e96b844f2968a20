package catalog

import (
	"fmt"
	"strings"
)

// Lookup finds a bottle by name. Matching is forgiving: apostrophes are
// stripped and substring matches in either direction count, so "blantons",
// "Blanton's Single Barrel", and "blanton" all resolve to the same entry.
func Lookup(name string) (Bottle, bool) {
	q := normalize(name)
	if q == "" {
		return Bottle{}, false
	}

	for key, b := range bottles {
		k := normalize(key)
		if q == k || strings.Contains(k, q) || strings.Contains(q, k) {
			return b, true
		}
		if strings.Contains(normalize(b.Name), q) {
			return b, true
		}
	}
	return Bottle{}, false
}

// MatchName scans free text for a known bottle and returns its canonical name.
// Shorthand works when it is unambiguous: "blantons" resolves, but a bare
// "weller" does not because two Weller bottles share the prefix. Longer
// matches win, so "weller antique 107" beats "weller antique".
func MatchName(text string) (string, bool) {
	t := " " + normalize(text) + " "
	bestAlias := ""
	bestKey := ""
	for alias, key := range aliasIndex {
		if strings.Contains(t, " "+alias+" ") && len(alias) > len(bestAlias) {
			bestAlias = alias
			bestKey = key
		}
	}
	if bestKey == "" {
		return "", false
	}
	return bottles[bestKey].Name, true
}

// aliasIndex maps every unambiguous key prefix to its bottle key.
// "blantons single barrel" contributes "blantons single barrel",
// "blantons single", and "blantons"; a prefix shared by two bottles
// is dropped entirely.
var aliasIndex = buildAliasIndex()

func buildAliasIndex() map[string]string {
	index := make(map[string]string)
	taken := make(map[string]bool)
	for key := range bottles {
		words := strings.Fields(normalize(key))
		for n := len(words); n >= 1; n-- {
			alias := strings.Join(words[:n], " ")
			if taken[alias] {
				delete(index, alias)
				continue
			}
			taken[alias] = true
			index[alias] = key
		}
	}
	return index
}

// PricingItems returns MSRP/secondary rows for a bottle, or nil when the
// pricing table has no entry.
func PricingItems(bottleName string) []PriceItem {
	t := normalize(bottleName)
	for key, p := range pricingTable {
		if strings.Contains(t, normalize(key)) {
			return []PriceItem{
				{Label: "MSRP", Value: fmt.Sprintf("$%d", p.MSRP)},
				{Label: "Secondary (low)", Value: fmt.Sprintf("$%d", p.SecondaryLow)},
				{Label: "Secondary (high)", Value: fmt.Sprintf("$%d", p.SecondaryHigh)},
			}
		}
	}
	return nil
}

func normalize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "'s", "s")
	s = strings.ReplaceAll(s, "'", "")
	s = strings.ReplaceAll(s, ".", "")
	return s
}
