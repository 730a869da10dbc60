package consumer

import (
	"context"
	"time"
)

// Message is one delivery pulled from the queue. The receipt handle
// identifies this specific delivery and is required to delete it; the
// broker owns the message until then.
type Message struct {
	ReceiptHandle string
	Body          string
}

// QueueGateway is the consumer's port to the remote queue broker.
type QueueGateway interface {
	// ResolveQueue resolves a logical queue name to the address the other
	// calls take. Returns errors.ErrQueueNotFound when the named queue does
	// not exist; transient failures surface to the caller unretried.
	ResolveQueue(ctx context.Context, name string) (string, error)

	// ReceiveBatch long-polls for up to maxMessages, blocking server-side
	// up to wait. An empty batch on timeout is not an error.
	ReceiveBatch(ctx context.Context, addr string, maxMessages int, wait time.Duration) ([]Message, error)

	// DeleteMessage removes a delivery by receipt handle. Idempotent:
	// deleting an already-deleted or expired handle reports failure
	// without panicking.
	DeleteMessage(ctx context.Context, addr string, receiptHandle string) error
}
