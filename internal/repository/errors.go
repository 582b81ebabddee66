package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrReviewFlagTaken is returned when the has_review flip loses the race:
// the reservation was already flagged by a concurrent review.
var ErrReviewFlagTaken = errors.New("reservation already reviewed")

// IsUniqueViolation reports whether err is a unique-constraint failure.
// Postgres surfaces SQLSTATE 23505 through pgconn; the SQLite driver
// only gives us the message text.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed") ||
		strings.Contains(err.Error(), "23505")
}
