package storage

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"restoran/menu-svc/internal/domain"
)

const (
	pqForeignKeyViolation = "23503"
	pqUniqueViolation     = "23505"
	pqCheckViolation      = "23514"
)

// mapErr turns driver errors the handlers care about into domain errors.
func mapErr(what string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqForeignKeyViolation, pqCheckViolation:
			return fmt.Errorf("%s: %w: %s", what, domain.ErrInvalidInput, pqErr.Message)
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w: %s", what, domain.ErrConflict, pqErr.Message)
		}
	}
	return fmt.Errorf("%s: %w", what, err)
}

func affected(what string, rows int64, err error) error {
	if err != nil {
		return mapErr(what, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return nil
}
