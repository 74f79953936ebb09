package email

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"carmarket/config"
)

// SMTPSender delivers mail through an SMTP relay.
type SMTPSender struct {
	from   string
	dialer *gomail.Dialer
}

func NewSMTPSender(cfg *config.Email) *SMTPSender {
	return &SMTPSender{
		from:   cfg.From,
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.Username, cfg.SMTP.Password),
	}
}

func (s *SMTPSender) SendWelcome(ctx context.Context, to string, fullName string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", s.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", welcomeSubject)
	msg.SetBody("text/plain", welcomeBody(fullName))

	if err := s.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("email: failed to send to %s: %w", to, err)
	}
	return nil
}
