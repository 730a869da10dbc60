package consumer

import (
	"context"
	"fmt"

	"github.com/cassiomorais/orderpay/internal/domain/payment"
	"github.com/cassiomorais/orderpay/internal/eventbus"
	"github.com/rs/zerolog"
)

// StatusLogger returns a bus handler that records every observed status
// change. Logging is naturally idempotent under redelivery.
func StatusLogger(logger zerolog.Logger) eventbus.Handler {
	return func(ctx context.Context, event eventbus.Event) error {
		payload, ok := event.Payload.(*payment.StatusPayload)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for %q", event.Payload, event.Name)
		}
		logger.Info().
			Str("payment_id", payload.PaymentID).
			Str("order_id", payload.OrderID).
			Str("status", payload.Status).
			Msg("Payment status changed")
		return nil
	}
}
