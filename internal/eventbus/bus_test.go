package eventbus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_NoSubscribers(t *testing.T) {
	bus := New()
	err := bus.Publish(context.Background(), Event{Name: "nobody.cares", Payload: 42})
	assert.NoError(t, err)
}

func TestPublish_RegistrationOrder(t *testing.T) {
	bus := New()
	var order []string

	bus.Subscribe("e", func(ctx context.Context, ev Event) error {
		order = append(order, "first")
		return nil
	})
	bus.Subscribe("e", func(ctx context.Context, ev Event) error {
		order = append(order, "second")
		return nil
	})
	bus.Subscribe("e", func(ctx context.Context, ev Event) error {
		order = append(order, "third")
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), Event{Name: "e"}))
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestPublish_FailureDoesNotStopOthers(t *testing.T) {
	bus := New()
	boom := errors.New("boom")
	var ran []string

	bus.Subscribe("e", func(ctx context.Context, ev Event) error {
		ran = append(ran, "a")
		return boom
	})
	bus.Subscribe("e", func(ctx context.Context, ev Event) error {
		ran = append(ran, "b")
		return nil
	})

	err := bus.Publish(context.Background(), Event{Name: "e"})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"a", "b"}, ran, "later subscriber must still run")
}

func TestPublish_AggregatesAllErrors(t *testing.T) {
	bus := New()
	errA := errors.New("err a")
	errB := errors.New("err b")

	bus.Subscribe("e", func(ctx context.Context, ev Event) error { return errA })
	bus.Subscribe("e", func(ctx context.Context, ev Event) error { return nil })
	bus.Subscribe("e", func(ctx context.Context, ev Event) error { return errB })

	err := bus.Publish(context.Background(), Event{Name: "e"})
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}

func TestPublish_OnlyMatchingEventName(t *testing.T) {
	bus := New()
	var got []string

	bus.Subscribe("a", func(ctx context.Context, ev Event) error {
		got = append(got, ev.Name)
		return nil
	})

	require.NoError(t, bus.Publish(context.Background(), Event{Name: "b"}))
	require.NoError(t, bus.Publish(context.Background(), Event{Name: "a"}))
	assert.Equal(t, []string{"a"}, got)
}

func TestSubscriberCount(t *testing.T) {
	bus := New()
	assert.Equal(t, 0, bus.SubscriberCount("e"))
	bus.Subscribe("e", func(ctx context.Context, ev Event) error { return nil })
	bus.Subscribe("e", func(ctx context.Context, ev Event) error { return nil })
	assert.Equal(t, 2, bus.SubscriberCount("e"))
}
