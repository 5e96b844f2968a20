package stores

// Provenance says where a record came from.
type Provenance string

const (
	ProvenanceCurated Provenance = "curated"
	ProvenanceLive    Provenance = "live"
)

// Record is one store worth sending someone to. Coordinates are pointers:
// live results always carry them, curated entries carry them when we have
// verified the address.
type Record struct {
	Name       string
	Address    string
	Phone      string
	Notes      string
	Lat        *float64
	Lng        *float64
	Provenance Provenance
}

// Resolution is the outcome of resolving an area hint: a display label for
// the area, the merged deduplicated record list, and the state retail
// system when the area pinned down a state. Records may be empty; the
// caller decides how to present that.
type Resolution struct {
	Label   string
	Records []Record
	State   string
	System  StateSystem
}
