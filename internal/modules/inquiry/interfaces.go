package inquiry

import (
	"context"

	"pricna/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, i *domain.Inquiry) error
	GetAll(ctx context.Context) ([]domain.Inquiry, error)
	GetByType(ctx context.Context, t domain.InquiryType) ([]domain.Inquiry, error)
}

// NotificationSender delivers the confirmation/notification mail pair.
// Best-effort: the service ignores its errors.
type NotificationSender interface {
	NotifyInquiryCreated(ctx context.Context, i *domain.Inquiry) error
}
