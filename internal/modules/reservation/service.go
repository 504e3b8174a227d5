package reservation

import (
	"context"
	"errors"
	"time"

	"pricna/internal/domain"
	"pricna/internal/pkg/calendar"
	"pricna/internal/pkg/pricing"
	"pricna/internal/pkg/validator"
	"pricna/internal/repository"
)

type Service struct {
	repo   Repository
	notifs NotificationSender
	events EventPublisher
}

func NewService(repo Repository, notifs NotificationSender, events EventPublisher) *Service {
	return &Service{
		repo:   repo,
		notifs: notifs,
		events: events,
	}
}

func parseDate(date string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, ErrValidation
	}
	return t, nil
}

// Create validates a booking request and stores it as a confirmed
// reservation. The price is always derived from the slot count; a
// client-supplied totalPrice is ignored. The availability pre-check is
// advisory only: the storage layer's unique (date, slot) constraint is what
// actually serializes concurrent submissions for the same day.
func (s *Service) Create(ctx context.Context, req CreateReservationRequest) (*domain.Reservation, error) {
	if errs := validator.Validate(req); errs != nil {
		return nil, ErrValidation
	}

	day, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}

	slots, err := normalizeSlots(req.TimeSlots)
	if err != nil {
		return nil, err
	}

	if !calendar.IsBusinessOpen(day) {
		return nil, ErrClosedDay
	}

	existing, err := s.repo.GetByDate(ctx, req.Date, true)
	if err != nil {
		return nil, err
	}
	booked := bookedUnion(existing)
	if conf := conflicts(slots, booked); len(conf) > 0 {
		return nil, &ConflictError{Conflicting: conf, Booked: booked}
	}

	price, err := pricing.Price(len(slots))
	if err != nil {
		return nil, ErrValidation
	}

	r := &domain.Reservation{
		Date:          req.Date,
		TimeSlots:     slots,
		DurationHours: len(slots),
		TotalPrice:    price,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Company:       req.Company,
		Message:       req.Message,
		Status:        domain.ReservationConfirmed,
	}

	if err := s.repo.Create(ctx, r); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			return nil, s.conflictAfterRace(ctx, req.Date, slots)
		}
		return nil, err
	}

	if s.notifs != nil {
		_ = s.notifs.NotifyReservationCreated(ctx, r)
	}
	if s.events != nil {
		s.events.PublishReservationCreated(r)
	}

	return r, nil
}

// conflictAfterRace rebuilds the conflict report after the unique constraint
// rejected an insert that had passed the pre-check.
func (s *Service) conflictAfterRace(ctx context.Context, date string, slots []string) error {
	existing, err := s.repo.GetByDate(ctx, date, true)
	if err != nil {
		return &ConflictError{Conflicting: slots, Booked: slots}
	}
	booked := bookedUnion(existing)
	conf := conflicts(slots, booked)
	if len(conf) == 0 {
		// the competing reservation is not visible yet; report the whole request
		conf = slots
	}
	return &ConflictError{Conflicting: conf, Booked: booked}
}

func (s *Service) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	return s.repo.GetAll(ctx)
}

func (s *Service) ListByDate(ctx context.Context, date string) ([]domain.Reservation, error) {
	if _, err := parseDate(date); err != nil {
		return nil, err
	}
	return s.repo.GetByDate(ctx, date, true)
}

func (s *Service) ListByRange(ctx context.Context, start, end string) ([]domain.Reservation, error) {
	if _, err := parseDate(start); err != nil {
		return nil, err
	}
	if _, err := parseDate(end); err != nil {
		return nil, err
	}
	return s.repo.GetByRange(ctx, start, end)
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrNotFound
	}
	return r, nil
}

// Availability reports free and booked slots for a date. On a closed day the
// whole catalog is unavailable regardless of bookings.
func (s *Service) Availability(ctx context.Context, date string) (*AvailabilityResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByDate(ctx, date, true)
	if err != nil {
		return nil, err
	}
	booked := bookedUnion(existing)

	resp := &AvailabilityResponse{
		Date:        date,
		Open:        calendar.IsBusinessOpen(day),
		BookedSlots: booked,
		FreeSlots:   []string{},
	}
	if resp.Open {
		resp.FreeSlots = freeSlots(booked)
	}
	return resp, nil
}

// CheckAvailability is the public pre-submit check. Create re-runs the same
// validation, so a stale positive answer here can still lose the race.
func (s *Service) CheckAvailability(ctx context.Context, date string, requested []string) (*CheckAvailabilityResponse, error) {
	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}
	slots, err := normalizeSlots(requested)
	if err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByDate(ctx, date, true)
	if err != nil {
		return nil, err
	}
	booked := bookedUnion(existing)

	available := calendar.IsBusinessOpen(day) && len(conflicts(slots, booked)) == 0
	return &CheckAvailabilityResponse{Available: available, BookedSlots: booked}, nil
}

// Update applies an admin edit. When the date or slots change, the new values
// are validated against every other reservation before commit; a slot change
// also re-derives duration and price.
func (s *Service) Update(ctx context.Context, id int64, req UpdateReservationRequest) (*domain.Reservation, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	placementChanged := false

	if req.Date != nil && *req.Date != r.Date {
		day, err := parseDate(*req.Date)
		if err != nil {
			return nil, err
		}
		if !calendar.IsBusinessOpen(day) {
			return nil, ErrClosedDay
		}
		r.Date = *req.Date
		placementChanged = true
	}

	if req.TimeSlots != nil {
		slots, err := normalizeSlots(req.TimeSlots)
		if err != nil {
			return nil, err
		}
		r.TimeSlots = slots
		r.DurationHours = len(slots)
		price, err := pricing.Price(len(slots))
		if err != nil {
			return nil, ErrValidation
		}
		r.TotalPrice = price
		placementChanged = true
	}

	if req.Name != nil {
		r.Name = *req.Name
	}
	if req.Email != nil {
		r.Email = *req.Email
	}
	if req.Phone != nil {
		r.Phone = *req.Phone
	}
	if req.Company != nil {
		r.Company = *req.Company
	}
	if req.Message != nil {
		r.Message = *req.Message
	}
	if req.Status != nil {
		switch domain.ReservationStatus(*req.Status) {
		case domain.ReservationConfirmed:
			r.Status = domain.ReservationConfirmed
			r.CancelledAt = nil
		case domain.ReservationCancelled:
			if r.Status != domain.ReservationCancelled {
				now := time.Now()
				r.CancelledAt = &now
			}
			r.Status = domain.ReservationCancelled
		default:
			return nil, ErrValidation
		}
	}

	if errs := validator.Validate(r); errs != nil {
		return nil, ErrValidation
	}

	if placementChanged && r.IsActive() {
		others, err := s.repo.GetByDate(ctx, r.Date, true)
		if err != nil {
			return nil, err
		}
		filtered := make([]domain.Reservation, 0, len(others))
		for _, o := range others {
			if o.ID != r.ID {
				filtered = append(filtered, o)
			}
		}
		booked := bookedUnion(filtered)
		if conf := conflicts(r.TimeSlots, booked); len(conf) > 0 {
			return nil, &ConflictError{Conflicting: conf, Booked: booked}
		}
	}

	if err := s.repo.Update(ctx, r); err != nil {
		if errors.Is(err, repository.ErrDuplicateSlot) {
			return nil, s.conflictAfterRace(ctx, r.Date, r.TimeSlots)
		}
		return nil, err
	}

	if s.events != nil {
		s.events.PublishReservationUpdated(r)
	}

	return r, nil
}

// Cancel marks a reservation cancelled and frees its slots. Cancelling an
// already-cancelled reservation is a no-op; the cancellation mail goes out
// only on the transition that actually changes status.
func (s *Service) Cancel(ctx context.Context, id int64) (*domain.Reservation, error) {
	r, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.Status == domain.ReservationCancelled {
		return r, nil
	}

	now := time.Now()
	ok, err := s.repo.Cancel(ctx, id, now)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	r.Status = domain.ReservationCancelled
	r.CancelledAt = &now

	if s.notifs != nil {
		_ = s.notifs.NotifyReservationCancelled(ctx, r)
	}
	if s.events != nil {
		s.events.PublishReservationCancelled(r)
	}

	return r, nil
}

// Delete removes the record entirely. Admin-only, irreversible, no mail.
func (s *Service) Delete(ctx context.Context, id int64) error {
	ok, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	if s.events != nil {
		s.events.PublishReservationDeleted(id)
	}
	return nil
}
