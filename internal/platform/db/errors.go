package db

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Sentinel errors for the store-level failure classes the handlers care
// about. Anything MapError does not recognize is an opaque store failure.
var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidReference = errors.New("referenced record does not exist")
	ErrDuplicate        = errors.New("duplicate identifier")
)

// Postgres SQLSTATE codes.
const (
	foreignKeyViolation = "23503"
	uniqueViolation     = "23505"
)

// MapError translates pgx-level failures into the sentinel errors above.
// A nil error maps to nil; unrecognized errors pass through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", ErrInvalidReference, pgErr.ConstraintName)
		case uniqueViolation:
			return fmt.Errorf("%w: %s", ErrDuplicate, pgErr.ConstraintName)
		}
	}
	return err
}
