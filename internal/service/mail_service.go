package service

import (
	"fmt"
	"strings"

	"ai-booking-assistant/pkg/config"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"
)

// MailService sends booking confirmations over SMTP. Delivery is best
// effort: a failed send is logged and reported as false, never as an error,
// so a dead mail relay cannot fail a booking that is already persisted.
type MailService struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

func NewMailService(cfg *config.SMTPConfig, logger *zap.Logger) *MailService {
	return &MailService{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

// SendBookingConfirmation mails a summary of the confirmed booking to the
// customer. Returns whether delivery was handed to the relay.
func (s *MailService) SendBookingConfirmation(details map[string]string) bool {
	to := details["email"]
	if to == "" {
		s.logger.Warn("Booking has no email address, skipping confirmation")
		return false
	}

	var body strings.Builder
	body.WriteString("Hello ")
	body.WriteString(details["name"])
	body.WriteString(",\n\nYour booking is confirmed:\n\n")
	for _, field := range bookingRequiredFields {
		if v, ok := details[field]; ok {
			fmt.Fprintf(&body, "%s: %s\n", titleKey(field), v)
		}
	}
	if v, ok := details["doctor_name"]; ok {
		fmt.Fprintf(&body, "%s: %s\n", titleKey("doctor_name"), v)
	}
	body.WriteString("\nThank you!")

	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Booking Confirmation")
	msg.SetBody("text/plain", body.String())

	if err := s.dialer.DialAndSend(msg); err != nil {
		s.logger.Error("Failed to send booking confirmation",
			zap.String("to", to),
			zap.Error(err),
		)
		return false
	}

	s.logger.Info("Booking confirmation sent", zap.String("to", to))
	return true
}
