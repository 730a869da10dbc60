package eventbus

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Event is an immutable envelope delivered to subscribers.
type Event struct {
	Name    string
	Payload any
}

// Handler processes a published event. A non-nil error marks the publish
// as failed for the publisher; it does not stop delivery to other handlers.
type Handler func(ctx context.Context, event Event) error

// Bus is a synchronous in-process publish/subscribe dispatcher keyed by
// event name. It is constructed explicitly and injected into the consumer
// and its subscribers; there is no package-level instance.
//
// Handlers run in registration order. Subscription is expected to happen
// at startup, before any publisher runs; the mutex keeps later
// subscriptions safe regardless.
type Bus struct {
	mu       sync.RWMutex
	handlers map[string][]Handler
}

func New() *Bus {
	return &Bus{handlers: make(map[string][]Handler)}
}

// Subscribe registers a handler for the named event. There is no
// unsubscribe; subscriptions live for the lifetime of the bus.
func (b *Bus) Subscribe(name string, h Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers[name] = append(b.handlers[name], h)
}

// Publish delivers the event to every subscriber of event.Name, in
// registration order. Every handler runs even if an earlier one fails;
// all handler errors are joined and returned. Publishing an event nobody
// subscribed to is a no-op.
func (b *Bus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Name]
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			errs = append(errs, fmt.Errorf("handler for %q: %w", event.Name, err))
		}
	}
	return errors.Join(errs...)
}

// SubscriberCount reports how many handlers are registered for an event.
func (b *Bus) SubscriberCount(name string) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name])
}
