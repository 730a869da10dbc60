package providers

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	paymentApp "github.com/cassiomorais/orderpay/internal/application/payment"
	domainErrors "github.com/cassiomorais/orderpay/internal/domain/errors"
	"github.com/cassiomorais/orderpay/internal/domain/payment"
	"github.com/google/uuid"
)

// MockProvider simulates the external payment provider with configurable
// latency and failure injection. It stands in for the real provider HTTP
// client in local runs and tests.
type MockProvider struct {
	name        string
	failureRate float64 // 0.0 to 1.0
	latency     time.Duration
	timeoutRate float64 // 0.0 to 1.0
}

type MockProviderOption func(*MockProvider)

func WithFailureRate(rate float64) MockProviderOption {
	return func(p *MockProvider) { p.failureRate = rate }
}

func WithLatency(d time.Duration) MockProviderOption {
	return func(p *MockProvider) { p.latency = d }
}

func WithTimeoutRate(rate float64) MockProviderOption {
	return func(p *MockProvider) { p.timeoutRate = rate }
}

func NewMockProvider(name string, opts ...MockProviderOption) *MockProvider {
	p := &MockProvider{
		name:        name,
		failureRate: 0.0,
		latency:     100 * time.Millisecond,
		timeoutRate: 0.0,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

func (p *MockProvider) Name() string { return p.name }

func (p *MockProvider) CreatePayment(ctx context.Context, req paymentApp.ProviderRequest) (*payment.Payment, error) {
	// Simulate latency
	select {
	case <-time.After(p.latency):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	// Simulate timeout
	if rand.Float64() < p.timeoutRate {
		return nil, domainErrors.ErrProviderTimeout
	}

	// Simulate rejection
	if rand.Float64() < p.failureRate {
		return nil, fmt.Errorf("%s: payment for order %s: %w", p.name, req.OrderID, domainErrors.ErrProviderRejected)
	}

	pmt, err := payment.NewPayment(req.OrderID, req.Customer.ID, req.Customer.CPF, req.Method, req.AmountCents)
	if err != nil {
		return nil, err
	}
	pmt.Status = req.Status
	pmt.ProviderTxID = fmt.Sprintf("%s_txn_%s", p.name, uuid.New().String()[:8])
	return pmt, nil
}
