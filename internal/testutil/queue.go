package testutil

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/cassiomorais/orderpay/internal/consumer"
	domainErrors "github.com/cassiomorais/orderpay/internal/domain/errors"
)

// FakeQueueGateway is an in-memory consumer.QueueGateway. Queues must be
// seeded with Seed before the consumer resolves them; receives drain the
// seeded messages batch by batch and then report empty batches (or an
// injected error).
type FakeQueueGateway struct {
	mu       sync.Mutex
	queues   map[string][]consumer.Message
	deleted  map[string][]string
	received map[string]int

	ResolveErr error
	// FailReceives makes the first N ReceiveBatch calls fail with a
	// broker error before receives start succeeding.
	FailReceives int
	// DeleteErrFor makes DeleteMessage fail for the given receipt handles.
	DeleteErrFor map[string]error
	// OnEmpty is invoked when a receive finds the queue drained; returning
	// false makes the receive block until ctx is done, mimicking a long
	// poll with no traffic.
	OnEmpty func() bool
}

func NewFakeQueueGateway() *FakeQueueGateway {
	return &FakeQueueGateway{
		queues:       make(map[string][]consumer.Message),
		deleted:      make(map[string][]string),
		received:     make(map[string]int),
		DeleteErrFor: make(map[string]error),
	}
}

// Seed appends messages to the named queue.
func (g *FakeQueueGateway) Seed(name string, msgs ...consumer.Message) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.queues[name] = append(g.queues[name], msgs...)
}

func (g *FakeQueueGateway) ResolveQueue(ctx context.Context, name string) (string, error) {
	if g.ResolveErr != nil {
		return "", g.ResolveErr
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.queues[name]; !ok {
		return "", fmt.Errorf("queue %q: %w", name, domainErrors.ErrQueueNotFound)
	}
	return "fake://" + name, nil
}

func (g *FakeQueueGateway) ReceiveBatch(ctx context.Context, addr string, maxMessages int, wait time.Duration) ([]consumer.Message, error) {
	name := addr[len("fake://"):]
	g.mu.Lock()
	if g.FailReceives > 0 {
		g.FailReceives--
		g.mu.Unlock()
		return nil, fmt.Errorf("receive from %q: broker unreachable", addr)
	}
	pending := g.queues[name]
	if len(pending) == 0 {
		g.mu.Unlock()
		if g.OnEmpty != nil && !g.OnEmpty() {
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return nil, nil
	}

	n := min(maxMessages, len(pending))
	batch := make([]consumer.Message, n)
	copy(batch, pending[:n])
	g.queues[name] = pending[n:]
	g.received[name] += n
	g.mu.Unlock()

	return batch, nil
}

func (g *FakeQueueGateway) DeleteMessage(ctx context.Context, addr string, receiptHandle string) error {
	if err := g.DeleteErrFor[receiptHandle]; err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.deleted[addr] = append(g.deleted[addr], receiptHandle)
	return nil
}

// Deleted returns the receipt handles deleted from the named queue, in
// deletion order.
func (g *FakeQueueGateway) Deleted(name string) []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.deleted["fake://"+name]...)
}
