package payment

import (
	"time"

	"github.com/cassiomorais/orderpay/internal/domain/errors"
	"github.com/google/uuid"
)

// PaymentStatus represents the payment status reported by the provider.
type PaymentStatus string

const (
	StatusPending   PaymentStatus = "pending"
	StatusProcessed PaymentStatus = "processed"
	StatusFailed    PaymentStatus = "failed"
	StatusRefused   PaymentStatus = "refused"
	StatusRefunded  PaymentStatus = "refunded"
)

// EventStatusChanged is the event bus name under which the consumer
// publishes status notifications pulled from the queue.
const EventStatusChanged = "payment.status_changed"

// Payment represents a payment issued against the external provider.
// It is created pending; every later status is observed through the
// event pipeline, never mutated directly by this service.
type Payment struct {
	ID           uuid.UUID
	OrderID      string
	CustomerID   uuid.UUID
	CustomerCPF  string
	Method       string
	AmountCents  int64
	Status       PaymentStatus
	ProviderTxID string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewPayment creates a new payment with status pending.
func NewPayment(orderID string, customerID uuid.UUID, customerCPF, method string, amountCents int64) (*Payment, error) {
	if orderID == "" {
		return nil, errors.NewValidationError("order_id", "cannot be empty")
	}
	if method == "" {
		return nil, errors.NewValidationError("method", "cannot be empty")
	}
	if amountCents <= 0 {
		return nil, errors.NewValidationError("amount", "must be greater than 0")
	}

	now := time.Now()
	return &Payment{
		ID:          uuid.New(),
		OrderID:     orderID,
		CustomerID:  customerID,
		CustomerCPF: customerCPF,
		Method:      method,
		AmountCents: amountCents,
		Status:      StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// StatusPayload is the decoded body of a queue notification. The provider
// includes more fields than these; Extra keeps whatever else came in the
// message so subscribers can inspect it.
type StatusPayload struct {
	PaymentID string         `json:"payment_id"`
	OrderID   string         `json:"order_id,omitempty"`
	Status    string         `json:"status"`
	Extra     map[string]any `json:"-"`
}
