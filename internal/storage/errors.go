package storage

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no row.
	ErrNotFound = errors.New("not found")

	// ErrRegistrationDisabled is returned when admin bootstrap is attempted
	// after an administrator already exists. This is policy, not bad input.
	ErrRegistrationDisabled = errors.New("admin registration is disabled")
)
