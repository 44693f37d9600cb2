package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"decorcms-backend/internal/models"
)

type ServiceStore struct {
	db *DB
}

func NewServiceStore(db *DB) *ServiceStore {
	return &ServiceStore{db: db}
}

func (s *ServiceStore) List(ctx context.Context) ([]models.Service, error) {
	rows, err := s.db.pool.Query(ctx,
		`SELECT service_id, title, description, image_url, icon FROM services ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		var svc models.Service
		if err := rows.Scan(&svc.ServiceID, &svc.Title, &svc.Description, &svc.ImageURL, &svc.Icon); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		services = append(services, svc)
	}
	return services, rows.Err()
}

func (s *ServiceStore) Create(ctx context.Context, svc *models.Service) error {
	if svc.ServiceID == "" {
		svc.ServiceID = uuid.NewString()
	}

	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO services (service_id, title, description, image_url, icon)
		 VALUES ($1, $2, $3, $4, $5)`,
		svc.ServiceID, svc.Title, svc.Description, svc.ImageURL, svc.Icon)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *ServiceStore) Update(ctx context.Context, id string, upd models.ServiceUpdate) (*models.Service, error) {
	svc := &models.Service{}
	err := s.db.pool.QueryRow(ctx,
		`UPDATE services SET
		     title = COALESCE($2, title),
		     description = COALESCE($3, description),
		     image_url = COALESCE($4, image_url),
		     icon = COALESCE($5, icon)
		 WHERE service_id = $1
		 RETURNING service_id, title, description, image_url, icon`,
		id, upd.Title, upd.Description, upd.ImageURL, upd.Icon).
		Scan(&svc.ServiceID, &svc.Title, &svc.Description, &svc.ImageURL, &svc.Icon)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return svc, nil
}
