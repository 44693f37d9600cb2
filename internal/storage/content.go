package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// ContentStore persists free-form page copy keyed by section name.
type ContentStore struct {
	db *DB
}

func NewContentStore(db *DB) *ContentStore {
	return &ContentStore{db: db}
}

func (s *ContentStore) Get(ctx context.Context, section string) (map[string]any, error) {
	var content map[string]any
	err := s.db.pool.QueryRow(ctx,
		`SELECT content FROM content_sections WHERE section_name = $1`, section).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return content, nil
}

func (s *ContentStore) Upsert(ctx context.Context, section string, content map[string]any) error {
	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO content_sections (section_name, content) VALUES ($1, $2)
		 ON CONFLICT (section_name) DO UPDATE SET content = EXCLUDED.content`,
		section, content)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
