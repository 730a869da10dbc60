package payment

import (
	"context"

	customerApp "github.com/cassiomorais/orderpay/internal/application/customer"
	"github.com/cassiomorais/orderpay/internal/domain/order"
	"github.com/cassiomorais/orderpay/internal/domain/payment"
)

// CreatePaymentRequest holds the input for creating a payment. Method and
// amount are opaque to this workflow; they are forwarded to the provider.
type CreatePaymentRequest struct {
	OrderID      string
	CPF          string
	CustomerName string
	Method       string
	AmountCents  int64
}

// CreatePaymentUseCase validates the order, identifies the paying customer
// and submits a pending payment to the external provider.
type CreatePaymentUseCase struct {
	orderRepo  order.Repository
	identifyUC *customerApp.IdentifyCustomerUseCase
	provider   ProviderClient
}

// NewCreatePaymentUseCase creates a new CreatePaymentUseCase.
func NewCreatePaymentUseCase(
	orderRepo order.Repository,
	identifyUC *customerApp.IdentifyCustomerUseCase,
	provider ProviderClient,
) *CreatePaymentUseCase {
	return &CreatePaymentUseCase{
		orderRepo:  orderRepo,
		identifyUC: identifyUC,
		provider:   provider,
	}
}

// Execute runs the workflow. Steps 1 and 2 have no side effects; the
// provider call is the only state-changing step and happens at most once.
func (uc *CreatePaymentUseCase) Execute(ctx context.Context, req CreatePaymentRequest) (*payment.Payment, error) {
	// 1. The order must exist before anything is charged.
	if _, err := uc.orderRepo.FindByID(ctx, req.OrderID); err != nil {
		return nil, err
	}

	// 2. Resolve the paying customer; may create the record on first use.
	cust, err := uc.identifyUC.Execute(ctx, req.CPF, req.CustomerName)
	if err != nil {
		return nil, err
	}

	// 3. Submit to the provider with the initial status. The response is
	// returned verbatim; provider failures propagate to the caller.
	return uc.provider.CreatePayment(ctx, ProviderRequest{
		OrderID:     req.OrderID,
		Customer:    cust,
		Method:      req.Method,
		AmountCents: req.AmountCents,
		Status:      payment.StatusPending,
	})
}
