package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"decorcms-backend/internal/models"
)

type EnquiryStore struct {
	db *DB
}

func NewEnquiryStore(db *DB) *EnquiryStore {
	return &EnquiryStore{db: db}
}

func (s *EnquiryStore) Create(ctx context.Context, e *models.Enquiry) error {
	if e.EnquiryID == "" {
		e.EnquiryID = uuid.NewString()
	}
	if e.Status == "" {
		e.Status = "new"
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}

	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO enquiries (enquiry_id, name, phone, email, event_type, event_date, location, message, status, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		e.EnquiryID, e.Name, e.Phone, e.Email, e.EventType, e.EventDate, e.Location, e.Message, e.Status, e.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *EnquiryStore) List(ctx context.Context) ([]models.Enquiry, error) {
	rows, err := s.db.pool.Query(ctx,
		`SELECT enquiry_id, name, phone, email, event_type, event_date, location, message, status, created_at
		 FROM enquiries ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	enquiries := []models.Enquiry{}
	for rows.Next() {
		var e models.Enquiry
		if err := rows.Scan(&e.EnquiryID, &e.Name, &e.Phone, &e.Email, &e.EventType,
			&e.EventDate, &e.Location, &e.Message, &e.Status, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		enquiries = append(enquiries, e)
	}
	return enquiries, rows.Err()
}

func (s *EnquiryStore) UpdateStatus(ctx context.Context, id, status string) error {
	tag, err := s.db.pool.Exec(ctx,
		`UPDATE enquiries SET status = $2 WHERE enquiry_id = $1`, id, status)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
