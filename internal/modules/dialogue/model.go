// README: Dialogue domain types: the wire response contract, conversation
// modes, and per-user session state.
package dialogue

import (
	"time"

	"caddie/internal/modules/catalog"
	"caddie/internal/modules/pairing"
)

type Mode string

const (
	ModeInfo    Mode = "info"
	ModePairing Mode = "pairing"
	ModeHunt    Mode = "hunt"
	ModeClarify Mode = "clarify"
)

// Item is one label/value row in a response's item list.
type Item struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Stop is one store on a hunt plan. Coordinates are omitted when we could
// not verify them; they are never fabricated.
type Stop struct {
	Name    string   `json:"name"`
	Address string   `json:"address"`
	Notes   string   `json:"notes"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

// PairingDetail is one cigar-and-pour combination on the wire.
type PairingDetail struct {
	Cigar      string   `json:"cigar"`
	Strength   string   `json:"strength"`
	Why        []string `json:"why"`
	Pour       string   `json:"pour"`
	QualityTag string   `json:"quality_tag"`
}

// Response is the single wire shape every turn produces, whatever the mode.
// Collections are always present (possibly empty), PrimaryPairing is an
// explicit null outside pairing mode.
type Response struct {
	Mode                Mode            `json:"mode"`
	Summary             string          `json:"summary"`
	KeyPoints           []string        `json:"key_points"`
	ItemList            []Item          `json:"item_list"`
	NextStep            string          `json:"next_step"`
	PrimaryPairing      *PairingDetail  `json:"primary_pairing"`
	AlternativePairings []PairingDetail `json:"alternative_pairings"`
	Stops               []Stop          `json:"stops"`
	TargetBottles       []string        `json:"target_bottles"`
	StoreTargets        []string        `json:"store_targets"`
}

// Category tags remembered entities.
type Category string

const (
	CategoryBourbon Category = "bourbon"
	CategoryCigar   Category = "cigar"
)

// Entity is the most recent thing discussed in a category, with whatever
// attributes the catalogs know about it.
type Entity struct {
	Name      string
	Attrs     map[string]string
	UpdatedAt time.Time
}

// Clarification is the one outstanding question a session may carry. The
// next message is taken verbatim as the answer for Slot.
type Clarification struct {
	Mode Mode
	Slot string
}

// HuntState is the hunt flow's filled slots.
type HuntState struct {
	Area       string
	Target     string
	TargetKind string // "bottle" or "stores"
}

// PairingState is the pairing flow's filled slots.
type PairingState struct {
	Subject         string
	SubjectCategory Category
	Intensity       string
}

// Session is all per-user conversation state. It has no locking of its
// own; the session store serializes turns per user.
type Session struct {
	UserID    string
	Entities  map[Category]Entity
	Pending   *Clarification
	Hunt      HuntState
	Pairing   PairingState
	Asked     map[string]bool
	LastMode  Mode
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewSession(userID string) *Session {
	now := time.Now()
	return &Session{
		UserID:    userID,
		Entities:  make(map[Category]Entity),
		Asked:     make(map[string]bool),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// RememberEntity records the most recent entity of a category, attaching
// the attributes the catalogs know for it.
func (s *Session) RememberEntity(cat Category, name string) {
	if name == "" {
		return
	}
	s.Entities[cat] = Entity{Name: name, Attrs: entityAttrs(cat, name), UpdatedAt: time.Now()}
}

func entityAttrs(cat Category, name string) map[string]string {
	attrs := make(map[string]string)
	switch cat {
	case CategoryBourbon:
		if b, ok := catalog.Lookup(name); ok {
			attrs["distillery"] = b.Distillery
			attrs["proof"] = b.Proof
			attrs["price_range"] = b.PriceRange
			attrs["availability"] = b.Availability
		}
	case CategoryCigar:
		if strength := pairing.CigarStrength(name); strength != "" {
			attrs["strength"] = strength
		}
	}
	return attrs
}
