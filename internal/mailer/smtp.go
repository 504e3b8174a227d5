package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log"
	"net/smtp"

	"pricna/internal/domain"
)

// SMTPConfig points at the outbound relay (Mailtrap sandbox in dev).
type SMTPConfig struct {
	Host      string
	Port      string
	Username  string
	Password  string
	From      string
	StaffAddr string
}

// SMTPMailer sends the confirmation/notification pairs over plain SMTP.
type SMTPMailer struct {
	cfg SMTPConfig
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

func (m *SMTPMailer) NotifyReservationCreated(ctx context.Context, r *domain.Reservation) error {
	data := newReservationMailData(r)

	errClient := m.send(r.Email, "Potvrzení rezervace - Sdílené kanceláře Příčná", reservationConfirmationTmpl, data)
	errStaff := m.send(m.cfg.StaffAddr, fmt.Sprintf("Nová rezervace #%d", r.ID), reservationNotificationTmpl, data)
	if errClient != nil {
		return errClient
	}
	return errStaff
}

func (m *SMTPMailer) NotifyReservationCancelled(ctx context.Context, r *domain.Reservation) error {
	data := newReservationMailData(r)
	return m.send(r.Email, "Zrušení rezervace - Sdílené kanceláře Příčná", reservationCancellationTmpl, data)
}

func (m *SMTPMailer) NotifyInquiryCreated(ctx context.Context, i *domain.Inquiry) error {
	data := struct {
		domain.Inquiry
		TypeLabel string
	}{*i, inquiryTypeCZ[i.Type]}

	errClient := m.send(i.Email, "Děkujeme za Vaši zprávu - Příčná Offices", inquiryConfirmationTmpl, data)
	errStaff := m.send(m.cfg.StaffAddr, fmt.Sprintf("Nová poptávka: %s", data.TypeLabel), inquiryNotificationTmpl, data)
	if errClient != nil {
		return errClient
	}
	return errStaff
}

func (m *SMTPMailer) send(to, subject string, tmpl *template.Template, data any) error {
	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		log.Printf("mailer: render %s failed: %v", tmpl.Name(), err)
		return err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, "From: Příčná Offices <%s>\r\n", m.cfg.From)
	fmt.Fprintf(&msg, "To: %s\r\n", to)
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())

	addr := m.cfg.Host + ":" + m.cfg.Port
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{to}, msg.Bytes()); err != nil {
		log.Printf("mailer: send to %s failed: %v", to, err)
		return err
	}
	return nil
}
