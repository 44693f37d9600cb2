package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"decorcms-backend/internal/models"
)

const uniqueViolation = "23505"

type AdminStore struct {
	db *DB
}

func NewAdminStore(db *DB) *AdminStore {
	return &AdminStore{db: db}
}

// Create inserts the one and only administrator. The singleton constraint
// on the admins table makes the bootstrap gate atomic: when two attempts
// race, the loser gets a unique violation and surfaces
// ErrRegistrationDisabled, never a second admin.
func (s *AdminStore) Create(ctx context.Context, admin *models.Admin) error {
	_, err := s.db.pool.Exec(ctx,
		`INSERT INTO admins (email, password_hash, name, created_at)
		 VALUES ($1, $2, $3, $4)`,
		admin.Email, admin.PasswordHash, admin.Name, admin.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrRegistrationDisabled
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (s *AdminStore) GetByEmail(ctx context.Context, email string) (*models.Admin, error) {
	admin := &models.Admin{}
	err := s.db.pool.QueryRow(ctx,
		`SELECT email, password_hash, name, created_at FROM admins WHERE email = $1`,
		email).Scan(&admin.Email, &admin.PasswordHash, &admin.Name, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return admin, nil
}
