package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"carmarket/config"
	"carmarket/email"
	"carmarket/event"
	"carmarket/logging/logger"
)

// NewSubscriberCommand creates the registration event worker command.
func NewSubscriberCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "subscriber",
		Short: "Consume registration events and send welcome emails",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSubscriber(configPath(cmd))
		},
	}
}

func runSubscriber(cfgPath string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	cleanupLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer cleanupLogger()
	log := logger.StdLogger()

	consumer, err := event.NewConsumer(cfg.Data.Kafka, log)
	if err != nil {
		return err
	}
	defer consumer.Close()

	sender := email.NewSender(cfg.Email, log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info(ctx, "Subscriber started", "topic", cfg.Data.Kafka.Topic)
	err = consumer.Run(ctx, func(ctx context.Context, ev *event.UserRegistered) error {
		name := ""
		if ev.FullName != nil {
			name = *ev.FullName
		}
		return sender.SendWelcome(ctx, ev.Email, name)
	})
	log.Info(context.Background(), "Subscriber stopped")
	return err
}
