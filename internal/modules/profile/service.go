// README: Profile service: long-lived user preferences and interaction
// history, used to default pairing intensity and to answer profile reads.
package profile

import (
	"context"
	"errors"
)

// Service orchestrates profile persistence.
type Service struct {
	store *Store
}

// NewService creates a Service backed by the given Store.
func NewService(store *Store) *Service {
	return &Service{store: store}
}

// RecordInteraction appends one turn entity to the user's history, creating
// the profile row on first contact.
func (s *Service) RecordInteraction(ctx context.Context, userID, entity, category, mode string) error {
	if err := s.store.EnsureUser(ctx, userID); err != nil {
		return err
	}
	return s.store.RecordInteraction(ctx, userID, Interaction{
		Entity:   entity,
		Category: category,
		Mode:     mode,
	})
}

// PreferredIntensity returns the user's saved cigar strength, or empty when
// the user has no profile or never set one.
func (s *Service) PreferredIntensity(ctx context.Context, userID string) (string, error) {
	rec, err := s.store.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return rec.PreferredStrength, nil
}

// Get loads a user's preference record.
func (s *Service) Get(ctx context.Context, userID string) (PreferenceRecord, error) {
	return s.store.Get(ctx, userID)
}

// SetPreferredStrength saves the user's default cigar strength, creating
// the profile row on first contact.
func (s *Service) SetPreferredStrength(ctx context.Context, userID, strength string) error {
	err := s.store.SetPreferredStrength(ctx, userID, strength)
	if !errors.Is(err, ErrNotFound) {
		return err
	}
	if initErr := s.store.EnsureUser(ctx, userID); initErr != nil {
		return initErr
	}
	return s.store.SetPreferredStrength(ctx, userID, strength)
}

// RecentHistory returns the user's latest interactions, newest first.
func (s *Service) RecentHistory(ctx context.Context, userID string, limit int) ([]Interaction, error) {
	return s.store.RecentHistory(ctx, userID, limit)
}

// Forget removes the user's profile and history.
func (s *Service) Forget(ctx context.Context, userID string) error {
	return s.store.Delete(ctx, userID)
}
