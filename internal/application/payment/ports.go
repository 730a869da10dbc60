package payment

import (
	"context"

	"github.com/cassiomorais/orderpay/internal/domain/customer"
	"github.com/cassiomorais/orderpay/internal/domain/payment"
)

// ProviderRequest is the payment creation request sent to the external
// provider: the caller-supplied details plus the resolved customer and
// the initial status.
type ProviderRequest struct {
	OrderID     string
	Customer    *customer.Customer
	Method      string
	AmountCents int64
	Status      payment.PaymentStatus
}

// ProviderClient is the port to the external payment provider. The
// provider's response is returned verbatim to the workflow's caller;
// this layer never retries provider failures.
type ProviderClient interface {
	CreatePayment(ctx context.Context, req ProviderRequest) (*payment.Payment, error)
}
