package queue

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cassiomorais/orderpay/internal/consumer"
	domainErrors "github.com/cassiomorais/orderpay/internal/domain/errors"
	"github.com/redis/go-redis/v9"
)

// bodyField is the stream entry field carrying the serialized payload.
const bodyField = "body"

// defaultMinIdle is the redelivery delay used when Config.MinIdle is unset.
const defaultMinIdle = 30 * time.Second

// Gateway implements consumer.QueueGateway on Redis Streams with consumer
// groups. A logical queue name maps to a stream key under KeyPrefix; the
// stream entry ID doubles as the receipt handle, and deletion is
// XACK + XDEL against the consumer group.
type Gateway struct {
	client     *redis.Client
	keyPrefix  string
	group      string
	consumer   string
	minIdle    time.Duration
	autoCreate bool
}

type Config struct {
	KeyPrefix string
	Group     string
	Consumer  string
	// MinIdle is the visibility timeout: a delivered-but-unacked entry
	// becomes claimable again once it has been pending this long.
	MinIdle time.Duration
	// AutoCreate creates the stream and group on resolve. With it off,
	// resolving a queue whose stream does not exist fails with
	// ErrQueueNotFound.
	AutoCreate bool
}

func NewGateway(client *redis.Client, cfg Config) *Gateway {
	if cfg.MinIdle <= 0 {
		cfg.MinIdle = defaultMinIdle
	}
	return &Gateway{
		client:     client,
		keyPrefix:  cfg.KeyPrefix,
		group:      cfg.Group,
		consumer:   cfg.Consumer,
		minIdle:    cfg.MinIdle,
		autoCreate: cfg.AutoCreate,
	}
}

// ResolveQueue maps a queue name to its stream key and ensures the consumer
// group exists. Transient errors surface to the caller unretried.
func (g *Gateway) ResolveQueue(ctx context.Context, name string) (string, error) {
	stream := g.keyPrefix + name

	var err error
	if g.autoCreate {
		err = g.client.XGroupCreateMkStream(ctx, stream, g.group, "0").Err()
	} else {
		err = g.client.XGroupCreate(ctx, stream, g.group, "0").Err()
	}
	if err != nil {
		if strings.Contains(err.Error(), "BUSYGROUP") {
			// Group already exists, nothing to do.
			return stream, nil
		}
		if strings.Contains(err.Error(), "requires the key to exist") {
			return "", fmt.Errorf("queue %q: %w", name, domainErrors.ErrQueueNotFound)
		}
		return "", fmt.Errorf("resolve queue %q: %w", name, err)
	}
	return stream, nil
}

// ReceiveBatch returns up to maxMessages entries: first any delivery whose
// visibility timeout has lapsed (claimed back from the group's pending list,
// so an unacked message is redelivered rather than stuck), then new entries
// via a long poll blocking server-side up to wait. A timeout with nothing to
// deliver returns an empty batch, not an error.
func (g *Gateway) ReceiveBatch(ctx context.Context, addr string, maxMessages int, wait time.Duration) ([]consumer.Message, error) {
	claimed, _, err := g.client.XAutoClaim(ctx, &redis.XAutoClaimArgs{
		Stream:   addr,
		Group:    g.group,
		Consumer: g.consumer,
		MinIdle:  g.minIdle,
		Start:    "0-0",
		Count:    int64(maxMessages),
	}).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("reclaim pending from %q: %w", addr, err)
	}

	var msgs []consumer.Message
	for _, m := range claimed {
		body, _ := m.Values[bodyField].(string)
		msgs = append(msgs, consumer.Message{
			ReceiptHandle: m.ID,
			Body:          body,
		})
	}
	if len(msgs) >= maxMessages {
		return msgs, nil
	}

	// Redeliveries must not sit behind a 20s poll, so only block when the
	// reclaim pass came back empty.
	block := wait
	if len(msgs) > 0 {
		block = -1
	}

	streams, err := g.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    g.group,
		Consumer: g.consumer,
		Streams:  []string{addr, ">"},
		Count:    int64(maxMessages - len(msgs)),
		Block:    block,
	}).Result()
	if err != nil {
		if err == redis.Nil {
			return msgs, nil
		}
		return nil, fmt.Errorf("receive from %q: %w", addr, err)
	}

	for _, s := range streams {
		for _, m := range s.Messages {
			body, _ := m.Values[bodyField].(string)
			msgs = append(msgs, consumer.Message{
				ReceiptHandle: m.ID,
				Body:          body,
			})
		}
	}
	return msgs, nil
}

// DeleteMessage acknowledges and removes a delivery. Acking an unknown or
// already-acked ID is a no-op on the broker side, so the call is idempotent.
func (g *Gateway) DeleteMessage(ctx context.Context, addr string, receiptHandle string) error {
	if err := g.client.XAck(ctx, addr, g.group, receiptHandle).Err(); err != nil {
		return fmt.Errorf("ack message %s: %w", receiptHandle, err)
	}
	if err := g.client.XDel(ctx, addr, receiptHandle).Err(); err != nil {
		return fmt.Errorf("delete message %s: %w", receiptHandle, err)
	}
	return nil
}

// Publish appends a payload to the named queue's stream. Used by tooling
// and tests to feed the pipeline; the production producer is the external
// payment provider's webhook bridge.
func (g *Gateway) Publish(ctx context.Context, name string, body []byte) (string, error) {
	id, err := g.client.XAdd(ctx, &redis.XAddArgs{
		Stream: g.keyPrefix + name,
		Values: map[string]any{bodyField: string(body)},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("publish to %q: %w", name, err)
	}
	return id, nil
}
