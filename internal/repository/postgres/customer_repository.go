package postgres

import (
	"context"
	"fmt"

	"github.com/cassiomorais/orderpay/internal/domain/customer"
	domainErrors "github.com/cassiomorais/orderpay/internal/domain/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CustomerRepository implements customer.Repository using PostgreSQL.
type CustomerRepository struct {
	pool *pgxpool.Pool
}

// NewCustomerRepository creates a new CustomerRepository.
func NewCustomerRepository(pool *pgxpool.Pool) *CustomerRepository {
	return &CustomerRepository{pool: pool}
}

// Create inserts a new customer.
func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO customers (id, name, cpf, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		c.ID, c.Name, c.CPF, c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

// FindByCPF retrieves a customer by CPF.
func (r *CustomerRepository) FindByCPF(ctx context.Context, cpf string) (*customer.Customer, error) {
	c := &customer.Customer{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, name, cpf, created_at, updated_at FROM customers WHERE cpf = $1`, cpf,
	).Scan(&c.ID, &c.Name, &c.CPF, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domainErrors.ErrCustomerNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return c, nil
}
