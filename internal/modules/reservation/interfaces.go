package reservation

import (
	"context"
	"time"

	"pricna/internal/domain"
)

// Repository defines the storage operations the reservation service needs.
// Lookups return (nil, nil) when the record does not exist.
type Repository interface {
	Create(ctx context.Context, r *domain.Reservation) error
	GetAll(ctx context.Context) ([]domain.Reservation, error)
	GetByDate(ctx context.Context, date string, activeOnly bool) ([]domain.Reservation, error)
	GetByRange(ctx context.Context, start, end string) ([]domain.Reservation, error)
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	Update(ctx context.Context, r *domain.Reservation) error
	Cancel(ctx context.Context, id int64, at time.Time) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// NotificationSender delivers transactional mail. Best-effort: the service
// ignores its errors.
type NotificationSender interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation) error
	NotifyReservationCancelled(ctx context.Context, r *domain.Reservation) error
}

// EventPublisher pushes lifecycle events to connected admin dashboards.
type EventPublisher interface {
	PublishReservationCreated(r *domain.Reservation)
	PublishReservationUpdated(r *domain.Reservation)
	PublishReservationCancelled(r *domain.Reservation)
	PublishReservationDeleted(id int64)
}
