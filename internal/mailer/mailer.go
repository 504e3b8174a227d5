// Package mailer delivers transactional mail for reservations and inquiries.
// Every lifecycle event sends a pair of messages: a confirmation to the
// submitter and a notification to the front desk. Delivery is best-effort;
// callers ignore the returned errors after this package has logged them.
package mailer

import (
	"context"
	"fmt"
	"time"

	"pricna/internal/domain"
	"pricna/internal/modules/reservation"
)

// Mailer is the outbound side of notification dispatch.
type Mailer interface {
	NotifyReservationCreated(ctx context.Context, r *domain.Reservation) error
	NotifyReservationCancelled(ctx context.Context, r *domain.Reservation) error
	NotifyInquiryCreated(ctx context.Context, i *domain.Inquiry) error
}

var czWeekdays = [...]string{
	"neděle", "pondělí", "úterý", "středa", "čtvrtek", "pátek", "sobota",
}

var czMonths = [...]string{
	"ledna", "února", "března", "dubna", "května", "června",
	"července", "srpna", "září", "října", "listopadu", "prosince",
}

// formatDateCZ renders an ISO date in the long Czech form,
// e.g. "pondělí 10. listopadu 2025".
func formatDateCZ(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return fmt.Sprintf("%s %d. %s %d",
		czWeekdays[t.Weekday()], t.Day(), czMonths[t.Month()-1], t.Year())
}

// durationCZ pluralizes hours the Czech way: 1 hodina, 2-4 hodiny, 5+ hodin.
func durationCZ(hours int) string {
	switch {
	case hours == 1:
		return "1 hodina"
	case hours < 5:
		return fmt.Sprintf("%d hodiny", hours)
	default:
		return fmt.Sprintf("%d hodin", hours)
	}
}

type reservationMailData struct {
	ID         int64
	Name       string
	Email      string
	Phone      string
	Company    string
	Message    string
	Date       string
	Time       string
	Duration   string
	TotalPrice string
}

func newReservationMailData(r *domain.Reservation) reservationMailData {
	start, end := reservation.TimeRange(r.TimeSlots)
	return reservationMailData{
		ID:         r.ID,
		Name:       r.Name,
		Email:      r.Email,
		Phone:      r.Phone,
		Company:    r.Company,
		Message:    r.Message,
		Date:       formatDateCZ(r.Date),
		Time:       fmt.Sprintf("%s - %s", start, end),
		Duration:   durationCZ(r.DurationHours),
		TotalPrice: fmt.Sprintf("%d Kč", r.TotalPrice),
	}
}

var inquiryTypeCZ = map[domain.InquiryType]string{
	domain.InquiryContact:   "Kontaktní formulář",
	domain.InquiryApartment: "Zájem o apartmán",
	domain.InquiryOffice:    "Zájem o kancelář",
}
