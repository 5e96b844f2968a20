// README: Curated bottle knowledge used by the info and hunt lanes.
package catalog

// Bottle is one curated knowledge entry.
type Bottle struct {
	Name         string
	Distillery   string
	Location     string
	Proof        string
	Age          string
	PriceRange   string
	Availability string
	Mashbill     string
	TastingNotes []string
	Why          string
}

// PriceItem is one label/value row for response item lists.
type PriceItem struct {
	Label string
	Value string
}

// pricing holds street-price context for frequently hunted bottles.
type pricing struct {
	MSRP          int
	SecondaryLow  int
	SecondaryHigh int
}
