package consumer

import (
	"context"
	"fmt"
	"time"

	"github.com/cassiomorais/orderpay/internal/domain/payment"
	"github.com/cassiomorais/orderpay/internal/eventbus"
	"github.com/cassiomorais/orderpay/internal/infrastructure/observability"
	"github.com/rs/zerolog"
)

// Config holds the per-loop polling parameters.
type Config struct {
	BatchSize   int
	WaitTime    time.Duration
	PollBackoff time.Duration
}

// DefaultConfig returns the polling parameters the broker contract was
// written against: batches of 10 with a 20-second long poll.
func DefaultConfig() Config {
	return Config{
		BatchSize:   10,
		WaitTime:    20 * time.Second,
		PollBackoff: 1 * time.Second,
	}
}

// Consumer pulls payment status notifications from watched queues and
// publishes them on the event bus. Delivery is at-least-once: a message
// is deleted only after its event was published to every subscriber
// without error, so subscribers must tolerate duplicates.
type Consumer struct {
	gateway QueueGateway
	bus     *eventbus.Bus
	logger  zerolog.Logger
	metrics *observability.Metrics
	cfg     Config
}

// New creates a consumer. The bus and gateway are injected; one Consumer
// serves any number of Run loops.
func New(
	gateway QueueGateway,
	bus *eventbus.Bus,
	logger zerolog.Logger,
	metrics *observability.Metrics,
	cfg Config,
) *Consumer {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	if cfg.WaitTime <= 0 {
		cfg.WaitTime = 20 * time.Second
	}
	if cfg.PollBackoff <= 0 {
		cfg.PollBackoff = 1 * time.Second
	}
	return &Consumer{
		gateway: gateway,
		bus:     bus,
		logger:  logger,
		metrics: metrics,
		cfg:     cfg,
	}
}

// Run polls the named queue until ctx is canceled. The queue address is
// resolved once; a resolution failure stops only this loop. Receive
// failures are logged and retried after a fixed backoff, never fatal.
func (c *Consumer) Run(ctx context.Context, queueName string) error {
	logger := c.logger.With().Str("queue", queueName).Logger()

	addr, err := c.gateway.ResolveQueue(ctx, queueName)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to resolve queue")
		return fmt.Errorf("resolve queue %q: %w", queueName, err)
	}

	logger.Info().Str("addr", addr).Msg("Consumer loop started")

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("Consumer loop stopped")
			return nil
		default:
		}

		msgs, err := c.gateway.ReceiveBatch(ctx, addr, c.cfg.BatchSize, c.cfg.WaitTime)
		if err != nil {
			if ctx.Err() != nil {
				logger.Info().Msg("Consumer loop stopped")
				return nil
			}
			logger.Error().Err(err).Msg("Failed to receive messages")
			c.metrics.ConsumerReceiveErrors.WithLabelValues(queueName).Inc()
			if !sleepCtx(ctx, c.cfg.PollBackoff) {
				return nil
			}
			continue
		}

		// Strictly in receipt order; a bad message never aborts the batch.
		for _, msg := range msgs {
			c.metrics.ConsumerMessagesReceived.WithLabelValues(queueName).Inc()
			c.processMessage(ctx, logger, queueName, addr, msg)
		}
	}
}

// processMessage decodes, publishes and only then deletes one message.
// Decode and publish failures leave the message in the queue for broker
// redelivery; delete failures are logged and skipped for the same reason.
func (c *Consumer) processMessage(ctx context.Context, logger zerolog.Logger, queueName, addr string, msg Message) {
	payload, err := payment.DecodeStatusPayload([]byte(msg.Body))
	if err != nil {
		logger.Error().Err(err).Str("receipt_handle", msg.ReceiptHandle).Msg("Failed to decode message body, leaving message in queue")
		c.metrics.ConsumerMessagesSkipped.WithLabelValues(queueName, "decode_error").Inc()
		return
	}

	err = c.bus.Publish(ctx, eventbus.Event{
		Name:    payment.EventStatusChanged,
		Payload: payload,
	})
	if err != nil {
		logger.Error().Err(err).Str("payment_id", payload.PaymentID).Msg("Failed to publish event, leaving message in queue")
		c.metrics.ConsumerMessagesSkipped.WithLabelValues(queueName, "publish_error").Inc()
		return
	}
	c.metrics.ConsumerEventsPublished.WithLabelValues(queueName).Inc()

	if err := c.gateway.DeleteMessage(ctx, addr, msg.ReceiptHandle); err != nil {
		// Broker will redeliver after the visibility timeout; subscribers
		// are required to be idempotent.
		logger.Error().Err(err).Str("receipt_handle", msg.ReceiptHandle).Msg("Failed to delete message")
		return
	}
	c.metrics.ConsumerMessagesDeleted.WithLabelValues(queueName).Inc()

	logger.Debug().
		Str("payment_id", payload.PaymentID).
		Str("status", payload.Status).
		Msg("Processed status notification")
}

// sleepCtx waits for d, returning false if ctx was canceled first.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
