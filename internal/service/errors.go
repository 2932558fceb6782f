package service

import (
	"database/sql"
	"errors"
	"fmt"

	"claimdesk/internal/authz"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrCaseClosed   = errors.New("case is closed")
	ErrConflict     = errors.New("already exists")
	// ErrFileMissing means a record exists but its object is gone from storage.
	ErrFileMissing = errors.New("file is missing from storage")
	ErrForbidden   = authz.ErrForbidden
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// notFound maps sql.ErrNoRows to ErrNotFound naming what is missing.
func notFound(err error, what string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s %d", ErrNotFound, what, id)
	}
	return err
}
