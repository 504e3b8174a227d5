package mailer

import (
	"context"
	"log"

	"pricna/internal/domain"
)

// ConsoleMailer logs instead of sending. Used in local development when no
// SMTP relay is configured.
type ConsoleMailer struct{}

func NewConsoleMailer() *ConsoleMailer {
	return &ConsoleMailer{}
}

func (m *ConsoleMailer) NotifyReservationCreated(_ context.Context, r *domain.Reservation) error {
	log.Printf("[mail] reservation created id=%d date=%s slots=%v to=%s", r.ID, r.Date, r.TimeSlots, r.Email)
	return nil
}

func (m *ConsoleMailer) NotifyReservationCancelled(_ context.Context, r *domain.Reservation) error {
	log.Printf("[mail] reservation cancelled id=%d date=%s to=%s", r.ID, r.Date, r.Email)
	return nil
}

func (m *ConsoleMailer) NotifyInquiryCreated(_ context.Context, i *domain.Inquiry) error {
	log.Printf("[mail] inquiry created id=%d type=%s to=%s", i.ID, i.Type, i.Email)
	return nil
}
