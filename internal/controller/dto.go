package controller

import (
	"time"

	"github.com/cassiomorais/orderpay/internal/domain/payment"
)

// CreatePaymentRequest is the POST /payments body. Method and amount are
// forwarded to the provider untouched.
type CreatePaymentRequest struct {
	OrderID      string  `json:"order_id" validate:"required"`
	CPF          string  `json:"cpf" validate:"required,len=11,numeric"`
	CustomerName string  `json:"customer_name" validate:"required"`
	Method       string  `json:"method" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
}

// PaymentResponse mirrors the provider's payment record.
type PaymentResponse struct {
	ID           string    `json:"id"`
	OrderID      string    `json:"order_id"`
	CustomerID   string    `json:"customer_id"`
	Method       string    `json:"method"`
	Amount       float64   `json:"amount"`
	Status       string    `json:"status"`
	ProviderTxID string    `json:"provider_tx_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// FromPayment converts a domain payment to its response representation.
func FromPayment(p *payment.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:           p.ID.String(),
		OrderID:      p.OrderID,
		CustomerID:   p.CustomerID.String(),
		Method:       p.Method,
		Amount:       centsToFloat(p.AmountCents),
		Status:       string(p.Status),
		ProviderTxID: p.ProviderTxID,
		CreatedAt:    p.CreatedAt,
	}
}

func centsToFloat(cents int64) float64 {
	return float64(cents) / 100
}

func floatToCents(v float64) int64 {
	return int64(v*100 + 0.5)
}
