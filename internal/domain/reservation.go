package domain

import "time"

type ReservationStatus string

const (
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCancelled ReservationStatus = "cancelled"
)

// Reservation is one booked business day (or part of it) in the shared office.
// TimeSlots holds hourly slot labels from the fixed daily catalog ("07:00".."18:00").
// DurationHours and TotalPrice are derived at creation time and stored as-is;
// they are never recomputed on read.
type Reservation struct {
	ID            int64             `json:"id"`
	Date          string            `json:"date" validate:"required"`
	TimeSlots     []string          `json:"timeSlots" validate:"required,min=1"`
	DurationHours int               `json:"durationHours"`
	TotalPrice    int               `json:"totalPrice"`
	Name          string            `json:"name" validate:"required"`
	Email         string            `json:"email" validate:"required,email"`
	Phone         string            `json:"phone" validate:"required"`
	Company       string            `json:"company,omitempty"`
	Message       string            `json:"message,omitempty"`
	Status        ReservationStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	UpdatedAt     time.Time         `json:"updatedAt"`
	CancelledAt   *time.Time        `json:"cancelledAt,omitempty"`
}

// IsActive reports whether the reservation still occupies its slots.
func (r *Reservation) IsActive() bool {
	return r.Status != ReservationCancelled
}
