package inquiry

import (
	"context"

	"pricna/internal/domain"
	"pricna/internal/pkg/validator"
)

type Service struct {
	repo   Repository
	notifs NotificationSender
}

func NewService(repo Repository, notifs NotificationSender) *Service {
	return &Service{
		repo:   repo,
		notifs: notifs,
	}
}

func validType(t string) bool {
	switch domain.InquiryType(t) {
	case domain.InquiryContact, domain.InquiryApartment, domain.InquiryOffice:
		return true
	}
	return false
}

// Create stores a valid submission. No uniqueness or conflict checks: every
// valid inquiry is accepted.
func (s *Service) Create(ctx context.Context, req CreateInquiryRequest) (*domain.Inquiry, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}
	if !validType(req.Type) {
		return nil, ErrInvalidType
	}

	i := &domain.Inquiry{
		Type:     domain.InquiryType(req.Type),
		ItemName: req.ItemName,
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Service:  req.Service,
		Message:  req.Message,
	}

	if err := s.repo.Create(ctx, i); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyInquiryCreated(ctx, i)
	}

	return i, nil
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Inquiry, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) ListByType(ctx context.Context, t string) ([]domain.Inquiry, error) {
	if !validType(t) {
		return nil, ErrInvalidType
	}
	return s.repo.GetByType(ctx, domain.InquiryType(t))
}
