package event

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/segmentio/kafka-go"

	"carmarket/config"
	"carmarket/logging/logger"
)

// Handler processes one UserRegistered event. A non-nil error is retried
// with backoff; an event that keeps failing is skipped without committing
// its offset, so it comes back only after a restart or group rebalance.
type Handler func(ctx context.Context, ev *UserRegistered) error

// Consumer reads registration events from Kafka.
type Consumer struct {
	reader        *kafka.Reader
	log           *logger.Logger
	retryAttempts int
	retryBackoff  time.Duration
}

// NewConsumer builds a Kafka group consumer from the broker configuration.
func NewConsumer(cfg *config.Kafka, log *logger.Logger) (*Consumer, error) {
	if cfg == nil || len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("event: no kafka brokers configured")
	}
	groupID := cfg.GroupID
	if groupID == "" {
		groupID = "carmarket-subscriber"
	}
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		GroupID:  groupID,
		MinBytes: 1,
		MaxBytes: 10e6,
	})
	return &Consumer{
		reader:        reader,
		log:           log,
		retryAttempts: cfg.RetryAttempts,
		retryBackoff:  cfg.RetryBackoffMax,
	}, nil
}

// Run fetches events until ctx is canceled, invoking handler for each.
// Offsets are committed only after the handler succeeds. FetchMessage
// advances the in-memory group position, so an exhausted handler is not
// retried again until the group restarts or rebalances.
func (c *Consumer) Run(ctx context.Context, handler Handler) error {
	for {
		m, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			c.log.Error(ctx, "Failed to fetch message", "error", err)
			time.Sleep(time.Second)
			continue
		}

		var ev UserRegistered
		if err := json.Unmarshal(m.Value, &ev); err != nil {
			// Malformed payloads are committed so they are not redelivered
			// forever.
			c.log.Error(ctx, "Discarding malformed event", "error", err)
			c.commit(ctx, m)
			continue
		}

		if err := handleWithRetry(ctx, handler, &ev, c.retryAttempts, c.retryBackoff); err != nil {
			c.log.Error(ctx, "Event handler failed", "email", ev.Email, "error", err)
			continue
		}
		c.commit(ctx, m)
	}
}

// handleWithRetry invokes handler with exponential backoff, capped at max,
// until it succeeds, attempts are exhausted or ctx is canceled.
func handleWithRetry(ctx context.Context, handler Handler, ev *UserRegistered, attempts int, max time.Duration) error {
	var err error
	backoff := 100 * time.Millisecond
	for attempt := 0; attempt <= attempts; attempt++ {
		err = handler(ctx, ev)
		if err == nil {
			return nil
		}
		if attempt < attempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
			backoff *= 2
			if backoff > max {
				backoff = max
			}
		}
	}
	return fmt.Errorf("event: handler failed after %d attempts: %w", attempts+1, err)
}

func (c *Consumer) commit(ctx context.Context, m kafka.Message) {
	commitCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	if err := c.reader.CommitMessages(commitCtx, m); err != nil {
		c.log.Error(ctx, "Failed to commit offset", "error", err)
	}
}

// Close releases the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
