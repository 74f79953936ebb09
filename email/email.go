// Package email sends transactional mail to registered users.
package email

import (
	"context"
	"fmt"

	"carmarket/config"
	"carmarket/logging/logger"
)

// Sender delivers a welcome email to a newly registered user.
type Sender interface {
	SendWelcome(ctx context.Context, to string, fullName string) error
}

const welcomeSubject = "Welcome to CarMarket"

func welcomeBody(fullName string) string {
	name := fullName
	if name == "" {
		name = "there"
	}
	return fmt.Sprintf("Hi %s,\n\nYour account has been created. Browse the catalog and place your first order any time.\n\nThe CarMarket team", name)
}

// NewSender picks the SMTP sender when a host is configured and falls back
// to the logging stub otherwise.
func NewSender(cfg *config.Email, log *logger.Logger) Sender {
	if cfg != nil && cfg.SMTP != nil && cfg.SMTP.Host != "" {
		return NewSMTPSender(cfg)
	}
	return NewLogSender(log)
}

// LogSender is a stub that records the email instead of delivering it.
type LogSender struct {
	log *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) SendWelcome(ctx context.Context, to string, fullName string) error {
	s.log.Info(ctx, "Welcome email sent", "to", to, "subject", welcomeSubject)
	return nil
}
