package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"carmarket/config"
	"carmarket/logging/logger"
)

// Publisher writes registration events to Kafka.
type Publisher struct {
	writer *kafka.Writer
	cfg    *config.Kafka
	log    *logger.Logger
}

// NewPublisher builds a Kafka publisher from the broker configuration.
func NewPublisher(cfg *config.Kafka, log *logger.Logger) (*Publisher, error) {
	if cfg == nil || len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("event: no kafka brokers configured")
	}
	writer := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.Topic,
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: 10 * time.Millisecond,
		RequiredAcks: kafka.RequireAll,
		Async:        false,
	}
	return &Publisher{writer: writer, cfg: cfg, log: log}, nil
}

// PublishUserRegistered writes one UserRegistered event, retrying with
// exponential backoff up to the configured attempt count.
func (p *Publisher) PublishUserRegistered(ctx context.Context, ev *UserRegistered) error {
	value, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("event: marshal: %w", err)
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, p.cfg.PublishTimeout)
	defer cancel()

	msg := kafka.Message{
		Key:   []byte(ev.Email),
		Value: value,
		Time:  time.Now(),
	}

	backoff := 100 * time.Millisecond
	for attempt := 0; attempt <= p.cfg.RetryAttempts; attempt++ {
		err = p.writer.WriteMessages(timeoutCtx, msg)
		if err == nil {
			return nil
		}
		if timeoutCtx.Err() != nil {
			return fmt.Errorf("event: publish context timeout: %w", timeoutCtx.Err())
		}
		if attempt < p.cfg.RetryAttempts {
			time.Sleep(backoff)
			backoff *= 2
			if backoff > p.cfg.RetryBackoffMax {
				backoff = p.cfg.RetryBackoffMax
			}
		}
	}
	return fmt.Errorf("event: failed to publish after %d attempts: %w", p.cfg.RetryAttempts+1, err)
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
