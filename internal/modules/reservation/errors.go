package reservation

import "errors"

var (
	ErrValidation   = errors.New("validation error")
	ErrNotFound     = errors.New("reservation not found")
	ErrClosedDay    = errors.New("business closed on requested date")
	ErrSlotConflict = errors.New("time slots already booked")
)

// ConflictError carries the slot sets a client needs to re-render availability:
// the requested slots that clashed and everything booked on that date.
type ConflictError struct {
	Conflicting []string
	Booked      []string
}

func (e *ConflictError) Error() string { return ErrSlotConflict.Error() }

func (e *ConflictError) Unwrap() error { return ErrSlotConflict }
