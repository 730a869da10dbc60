package providers

import (
	"context"

	paymentApp "github.com/cassiomorais/orderpay/internal/application/payment"
	"github.com/cassiomorais/orderpay/internal/domain/payment"
)

// Client is a named payment provider. It satisfies the workflow's
// ProviderClient port plus a Name for registration and breaker labeling.
type Client interface {
	// Name returns the provider name.
	Name() string
	// CreatePayment submits a payment creation request and returns the
	// provider's response verbatim.
	CreatePayment(ctx context.Context, req paymentApp.ProviderRequest) (*payment.Payment, error)
}
