package customer

import (
	"time"

	"github.com/cassiomorais/orderpay/internal/domain/errors"
	"github.com/google/uuid"
)

// Customer is a paying customer identified by their CPF
// (the Brazilian national taxpayer id, an 11-digit numeric string).
type Customer struct {
	ID        uuid.UUID
	Name      string
	CPF       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CPFLength is the exact length a CPF must have.
const CPFLength = 11

// NewCustomer creates a customer, validating name and CPF.
func NewCustomer(name, cpf string) (*Customer, error) {
	if name == "" {
		return nil, errors.NewValidationError("name", "cannot be empty")
	}
	if len(cpf) != CPFLength {
		return nil, errors.NewValidationError("cpf", "must be exactly 11 characters")
	}
	for _, r := range cpf {
		if r < '0' || r > '9' {
			return nil, errors.NewValidationError("cpf", "must contain only digits")
		}
	}

	now := time.Now()
	return &Customer{
		ID:        uuid.New(),
		Name:      name,
		CPF:       cpf,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
