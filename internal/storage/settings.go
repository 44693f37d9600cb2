package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

const adminEmailKey = "admin_email"

// SettingsStore holds small operational key/value settings, currently only
// the enquiry notification recipient.
type SettingsStore struct {
	db *DB
}

func NewSettingsStore(db *DB) *SettingsStore {
	return &SettingsStore{db: db}
}

func (s *SettingsStore) AdminEmail(ctx context.Context) (string, error) {
	var value string
	err := s.db.pool.QueryRow(ctx,
		`SELECT value FROM settings WHERE key = $1`, adminEmailKey).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("db error: %w", err)
	}
	return value, nil
}

func (s *SettingsStore) SetAdminEmail(ctx context.Context, email string) error {
	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO settings (key, value) VALUES ($1, $2)
		 ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`,
		adminEmailKey, email)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
