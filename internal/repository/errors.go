package repository

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateSlot is returned when an insert or update hits the unique
// (date, slot) index guarding against double-booking.
var ErrDuplicateSlot = errors.New("slot already booked for this date")

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	// modernc sqlite surfaces constraint errors as plain strings
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
