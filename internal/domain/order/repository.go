package order

import "context"

// Repository defines the read-only lookup used by the payment workflow.
type Repository interface {
	// FindByID retrieves an order by its identifier.
	// Returns errors.ErrOrderNotFound when the order does not exist.
	FindByID(ctx context.Context, id string) (*Order, error)
}
