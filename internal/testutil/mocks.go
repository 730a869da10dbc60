package testutil

import (
	"context"
	"sync"

	paymentApp "github.com/cassiomorais/orderpay/internal/application/payment"
	"github.com/cassiomorais/orderpay/internal/domain/customer"
	domainErrors "github.com/cassiomorais/orderpay/internal/domain/errors"
	"github.com/cassiomorais/orderpay/internal/domain/order"
	"github.com/cassiomorais/orderpay/internal/domain/payment"
)

// --- Order Repository Mock ---

// MockOrderRepository is a mock implementation of order.Repository.
type MockOrderRepository struct {
	mu     sync.Mutex
	orders map[string]*order.Order

	FindByIDFunc func(ctx context.Context, id string) (*order.Order, error)
}

func NewMockOrderRepository() *MockOrderRepository {
	return &MockOrderRepository{orders: make(map[string]*order.Order)}
}

// AddOrder pre-populates the mock with an order.
func (m *MockOrderRepository) AddOrder(o *order.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.orders[o.ID] = o
}

func (m *MockOrderRepository) FindByID(ctx context.Context, id string) (*order.Order, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.orders[id]
	if !ok {
		return nil, domainErrors.ErrOrderNotFound
	}
	return o, nil
}

// --- Customer Repository Mock ---

// MockCustomerRepository is a mock implementation of customer.Repository.
type MockCustomerRepository struct {
	mu    sync.Mutex
	byCPF map[string]*customer.Customer

	CreateFunc    func(ctx context.Context, c *customer.Customer) error
	FindByCPFFunc func(ctx context.Context, cpf string) (*customer.Customer, error)
}

func NewMockCustomerRepository() *MockCustomerRepository {
	return &MockCustomerRepository{byCPF: make(map[string]*customer.Customer)}
}

// AddCustomer pre-populates the mock with a customer.
func (m *MockCustomerRepository) AddCustomer(c *customer.Customer) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byCPF[c.CPF] = c
}

func (m *MockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byCPF[c.CPF] = c
	return nil
}

func (m *MockCustomerRepository) FindByCPF(ctx context.Context, cpf string) (*customer.Customer, error) {
	if m.FindByCPFFunc != nil {
		return m.FindByCPFFunc(ctx, cpf)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byCPF[cpf]
	if !ok {
		return nil, domainErrors.ErrCustomerNotFound
	}
	return c, nil
}

// --- Provider Client Mock ---

// MockProviderClient counts provider calls and returns a canned response,
// so workflow tests can assert the provider was (or was not) invoked.
type MockProviderClient struct {
	mu       sync.Mutex
	calls    int
	requests []paymentApp.ProviderRequest

	CreatePaymentFunc func(ctx context.Context, req paymentApp.ProviderRequest) (*payment.Payment, error)
}

func NewMockProviderClient() *MockProviderClient {
	return &MockProviderClient{}
}

func (m *MockProviderClient) CreatePayment(ctx context.Context, req paymentApp.ProviderRequest) (*payment.Payment, error) {
	m.mu.Lock()
	m.calls++
	m.requests = append(m.requests, req)
	m.mu.Unlock()

	if m.CreatePaymentFunc != nil {
		return m.CreatePaymentFunc(ctx, req)
	}

	pmt, err := payment.NewPayment(req.OrderID, req.Customer.ID, req.Customer.CPF, req.Method, req.AmountCents)
	if err != nil {
		return nil, err
	}
	pmt.Status = req.Status
	return pmt, nil
}

// Calls reports how many times CreatePayment was invoked.
func (m *MockProviderClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastRequest returns the most recent request, or nil if none.
func (m *MockProviderClient) LastRequest() *paymentApp.ProviderRequest {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.requests) == 0 {
		return nil
	}
	req := m.requests[len(m.requests)-1]
	return &req
}
