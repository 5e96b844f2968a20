package profile

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store handles user_profiles and user_interactions persistence.
type Store struct {
	db *pgxpool.Pool
}

// NewStore returns a Store backed by the given connection pool.
func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// EnsureSchema creates the profile tables when they do not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.db.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS user_profiles (
			user_id TEXT PRIMARY KEY,
			preferred_strength TEXT NOT NULL DEFAULT '',
			favorite_bottles TEXT[] NOT NULL DEFAULT '{}',
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE TABLE IF NOT EXISTS user_interactions (
			id BIGSERIAL PRIMARY KEY,
			user_id TEXT NOT NULL,
			entity TEXT NOT NULL,
			category TEXT NOT NULL,
			mode TEXT NOT NULL,
			occurred_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS user_interactions_user_idx
			ON user_interactions (user_id, occurred_at DESC);
	`)
	return err
}

// EnsureUser inserts an empty profile row for the user. If the row already
// exists the insert is silently skipped.
func (s *Store) EnsureUser(ctx context.Context, userID string) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO user_profiles (user_id, preferred_strength, favorite_bottles)
		VALUES ($1, '', '{}')
		ON CONFLICT (user_id) DO NOTHING
	`, userID)
	return err
}

// Get loads a user's preference record.
func (s *Store) Get(ctx context.Context, userID string) (PreferenceRecord, error) {
	var rec PreferenceRecord
	err := s.db.QueryRow(ctx, `
		SELECT user_id, preferred_strength, favorite_bottles, created_at, updated_at
		FROM user_profiles
		WHERE user_id = $1
	`, userID).Scan(&rec.UserID, &rec.PreferredStrength, &rec.FavoriteBottles, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return PreferenceRecord{}, ErrNotFound
	}
	if err != nil {
		return PreferenceRecord{}, err
	}
	return rec, nil
}

// SetPreferredStrength saves the user's default cigar strength.
func (s *Store) SetPreferredStrength(ctx context.Context, userID, strength string) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE user_profiles
		SET preferred_strength = $2, updated_at = now()
		WHERE user_id = $1
	`, userID, strength)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordInteraction appends one turn entity to the user's history.
func (s *Store) RecordInteraction(ctx context.Context, userID string, in Interaction) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO user_interactions (user_id, entity, category, mode, occurred_at)
		VALUES ($1, $2, $3, $4, now())
	`, userID, in.Entity, in.Category, in.Mode)
	return err
}

// RecentHistory returns the user's latest interactions, newest first.
func (s *Store) RecentHistory(ctx context.Context, userID string, limit int) ([]Interaction, error) {
	rows, err := s.db.Query(ctx, `
		SELECT entity, category, mode, occurred_at
		FROM user_interactions
		WHERE user_id = $1
		ORDER BY occurred_at DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var history []Interaction
	for rows.Next() {
		var in Interaction
		if err := rows.Scan(&in.Entity, &in.Category, &in.Mode, &in.OccurredAt); err != nil {
			return nil, err
		}
		history = append(history, in)
	}
	return history, rows.Err()
}

// Delete removes the user's profile and history ("forget me").
func (s *Store) Delete(ctx context.Context, userID string) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM user_interactions WHERE user_id = $1`, userID); err != nil {
		return err
	}
	tag, err := s.db.Exec(ctx, `DELETE FROM user_profiles WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
