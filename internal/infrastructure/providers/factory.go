package providers

import (
	"context"
	"fmt"
	"time"

	paymentApp "github.com/cassiomorais/orderpay/internal/application/payment"
	domainErrors "github.com/cassiomorais/orderpay/internal/domain/errors"
	"github.com/cassiomorais/orderpay/internal/domain/payment"
	"github.com/sony/gobreaker/v2"
)

// Factory registers providers and wraps each in a circuit breaker so a
// flapping provider fails fast instead of tying up request handlers.
type Factory struct {
	providers       map[string]Client
	circuitBreakers map[string]*gobreaker.CircuitBreaker[*payment.Payment]
}

func NewFactory(clients ...Client) *Factory {
	f := &Factory{
		providers:       make(map[string]Client),
		circuitBreakers: make(map[string]*gobreaker.CircuitBreaker[*payment.Payment]),
	}

	if len(clients) == 0 {
		f.Register(NewMockProvider("mercadopago",
			WithLatency(150*time.Millisecond),
		))
	} else {
		for _, c := range clients {
			f.Register(c)
		}
	}

	return f
}

func (f *Factory) Register(c Client) {
	f.providers[c.Name()] = c
	f.circuitBreakers[c.Name()] = gobreaker.NewCircuitBreaker[*payment.Payment](gobreaker.Settings{
		Name:        c.Name(),
		MaxRequests: 10,
		Interval:    60 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 10 && failureRatio >= 0.6
		},
	})
}

// Get returns the named provider wrapped in its circuit breaker. The
// wrapped client satisfies the workflow's ProviderClient port.
func (f *Factory) Get(name string) (*BreakerClient, error) {
	c, ok := f.providers[name]
	if !ok {
		return nil, fmt.Errorf("provider %q: %w", name, domainErrors.ErrProviderNotFound)
	}
	return &BreakerClient{client: c, breaker: f.circuitBreakers[name]}, nil
}

// BreakerClient routes provider calls through a circuit breaker.
type BreakerClient struct {
	client  Client
	breaker *gobreaker.CircuitBreaker[*payment.Payment]
}

func (b *BreakerClient) Name() string { return b.client.Name() }

func (b *BreakerClient) CreatePayment(ctx context.Context, req paymentApp.ProviderRequest) (*payment.Payment, error) {
	pmt, err := b.breaker.Execute(func() (*payment.Payment, error) {
		return b.client.CreatePayment(ctx, req)
	})
	if err == gobreaker.ErrOpenState || err == gobreaker.ErrTooManyRequests {
		return nil, fmt.Errorf("%s: %w", b.client.Name(), domainErrors.ErrProviderUnavailable)
	}
	return pmt, err
}
