package profile

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a user has no profile row.
var ErrNotFound = errors.New("profile: user not found")

// PreferenceRecord is a user's saved tastes.
type PreferenceRecord struct {
	UserID            string
	PreferredStrength string
	FavoriteBottles   []string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Interaction is one recorded turn entity: what the user talked about and
// in which mode.
type Interaction struct {
	Entity     string
	Category   string
	Mode       string
	OccurredAt time.Time
}
