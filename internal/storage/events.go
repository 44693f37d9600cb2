package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"decorcms-backend/internal/models"
)

type EventStore struct {
	db *DB
}

func NewEventStore(db *DB) *EventStore {
	return &EventStore{db: db}
}

func (s *EventStore) List(ctx context.Context, category string) ([]models.Event, error) {
	query := `SELECT event_id, title, location, event_type, category, images, description, date, created_at
	          FROM events`
	args := []any{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := s.db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.EventID, &e.Title, &e.Location, &e.EventType, &e.Category,
			&e.Images, &e.Description, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (s *EventStore) Create(ctx context.Context, e *models.Event) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	if e.Images == nil {
		e.Images = []string{}
	}

	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO events (event_id, title, location, event_type, category, images, description, date, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		e.EventID, e.Title, e.Location, e.EventType, e.Category, e.Images, e.Description, e.Date, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

// Update applies the non-nil fields and returns the updated event.
func (s *EventStore) Update(ctx context.Context, id string, upd models.EventUpdate) (*models.Event, error) {
	e := &models.Event{}
	err := s.db.pool.QueryRow(ctx,
		`UPDATE events SET
		     title = COALESCE($2, title),
		     location = COALESCE($3, location),
		     event_type = COALESCE($4, event_type),
		     category = COALESCE($5, category),
		     images = COALESCE($6, images),
		     description = COALESCE($7, description),
		     date = COALESCE($8, date)
		 WHERE event_id = $1
		 RETURNING event_id, title, location, event_type, category, images, description, date, created_at`,
		id, upd.Title, upd.Location, upd.EventType, upd.Category, upd.Images, upd.Description, upd.Date).
		Scan(&e.EventID, &e.Title, &e.Location, &e.EventType, &e.Category,
			&e.Images, &e.Description, &e.Date, &e.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (s *EventStore) Delete(ctx context.Context, id string) error {
	tag, err := s.db.pool.Exec(ctx, `DELETE FROM events WHERE event_id = $1`, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
