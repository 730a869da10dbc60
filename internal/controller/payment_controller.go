package controller

import (
	"net/http"

	paymentApp "github.com/cassiomorais/orderpay/internal/application/payment"
	"github.com/cassiomorais/orderpay/internal/infrastructure/observability"
)

// PaymentController handles payment-related HTTP requests.
type PaymentController struct {
	createPaymentUC *paymentApp.CreatePaymentUseCase
	metrics         *observability.Metrics
}

// NewPaymentController creates a new PaymentController.
func NewPaymentController(
	createPaymentUC *paymentApp.CreatePaymentUseCase,
	metrics *observability.Metrics,
) *PaymentController {
	return &PaymentController{
		createPaymentUC: createPaymentUC,
		metrics:         metrics,
	}
}

// CreatePayment handles POST /api/v1/payments
func (h *PaymentController) CreatePayment(w http.ResponseWriter, r *http.Request) {
	var req CreatePaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	pmt, err := h.createPaymentUC.Execute(r.Context(), paymentApp.CreatePaymentRequest{
		OrderID:      req.OrderID,
		CPF:          req.CPF,
		CustomerName: req.CustomerName,
		Method:       req.Method,
		AmountCents:  floatToCents(req.Amount),
	})
	if err != nil {
		h.metrics.PaymentErrors.WithLabelValues("create").Inc()
		writeError(w, err)
		return
	}

	h.metrics.PaymentsCreated.WithLabelValues(pmt.Method, string(pmt.Status)).Inc()
	writeJSON(w, http.StatusCreated, FromPayment(pmt))
}
