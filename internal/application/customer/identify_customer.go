package customer

import (
	"context"
	stderrors "errors"

	"github.com/cassiomorais/orderpay/internal/domain/customer"
	domainErrors "github.com/cassiomorais/orderpay/internal/domain/errors"
)

// IdentifyCustomerUseCase resolves a customer by CPF, creating the record
// on first use.
type IdentifyCustomerUseCase struct {
	customerRepo customer.Repository
}

// NewIdentifyCustomerUseCase creates a new IdentifyCustomerUseCase.
func NewIdentifyCustomerUseCase(customerRepo customer.Repository) *IdentifyCustomerUseCase {
	return &IdentifyCustomerUseCase{customerRepo: customerRepo}
}

// Execute finds the customer with the given CPF or creates one with the
// given name. Lookup failures other than not-found propagate unchanged.
func (uc *IdentifyCustomerUseCase) Execute(ctx context.Context, cpf, name string) (*customer.Customer, error) {
	existing, err := uc.customerRepo.FindByCPF(ctx, cpf)
	if err == nil {
		return existing, nil
	}
	if !stderrors.Is(err, domainErrors.ErrCustomerNotFound) {
		return nil, err
	}

	c, err := customer.NewCustomer(name, cpf)
	if err != nil {
		return nil, err
	}
	if err := uc.customerRepo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
