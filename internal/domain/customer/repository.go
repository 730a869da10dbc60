package customer

import "context"

// Repository defines the interface for customer persistence
type Repository interface {
	// Create creates a new customer
	Create(ctx context.Context, customer *Customer) error

	// FindByCPF retrieves a customer by CPF.
	// Returns errors.ErrCustomerNotFound when no customer exists for the CPF.
	FindByCPF(ctx context.Context, cpf string) (*Customer, error)
}
