package domain

import "time"

type InquiryType string

const (
	InquiryContact   InquiryType = "contact"
	InquiryApartment InquiryType = "apartment"
	InquiryOffice    InquiryType = "office"
)

// Inquiry is a one-shot contact/interest message from the public site.
// Created once, listed by admins, never mutated.
type Inquiry struct {
	ID        int64       `json:"id"`
	Type      InquiryType `json:"type" validate:"required"`
	ItemName  string      `json:"itemName,omitempty"`
	Name      string      `json:"name" validate:"required"`
	Email     string      `json:"email" validate:"required,email"`
	Phone     string      `json:"phone,omitempty"`
	Service   string      `json:"service,omitempty"`
	Message   string      `json:"message" validate:"required"`
	CreatedAt time.Time   `json:"createdAt"`
}
