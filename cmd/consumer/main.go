package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cassiomorais/orderpay/internal/bootstrap"
	"github.com/cassiomorais/orderpay/internal/consumer"
	"github.com/cassiomorais/orderpay/internal/domain/payment"
	"github.com/cassiomorais/orderpay/internal/eventbus"
	"github.com/cassiomorais/orderpay/internal/infrastructure/queue"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := bootstrap.New(ctx, "orderpay-consumer", "orderpay_consumer")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	queueCfg := app.Config.Queue
	gateway := queue.NewGateway(app.Redis, queue.Config{
		KeyPrefix:  queueCfg.KeyPrefix,
		Group:      queueCfg.Group,
		Consumer:   app.Config.InstanceID,
		MinIdle:    queueCfg.VisibilityTimeout,
		AutoCreate: queueCfg.AutoCreate,
	})

	// Subscribers register before any loop publishes.
	bus := eventbus.New()
	bus.Subscribe(payment.EventStatusChanged, consumer.StatusLogger(app.Logger))

	c := consumer.New(gateway, bus, app.Logger, app.Metrics, consumer.Config{
		BatchSize:   queueCfg.BatchSize,
		WaitTime:    queueCfg.WaitTime,
		PollBackoff: queueCfg.PollBackoff,
	})

	app.Logger.Info().
		Strs("queues", queueCfg.Names).
		Str("group", queueCfg.Group).
		Str("consumer", app.Config.InstanceID).
		Msg("Consumer started, listening for messages...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	g, gCtx := errgroup.WithContext(ctx)

	// One independent polling loop per watched queue. A loop that fails to
	// start (unresolvable queue) must not take the others down, so resolve
	// errors are logged inside Run and not returned to the group.
	for _, name := range queueCfg.Names {
		g.Go(func() error {
			if err := c.Run(gCtx, name); err != nil {
				app.Logger.Error().Err(err).Str("queue", name).Msg("Consumer loop terminated")
			}
			return nil
		})
	}

	g.Go(func() error {
		select {
		case <-gCtx.Done():
			return gCtx.Err()
		case <-quit:
			app.Logger.Info().Msg("Shutting down consumer...")
			cancel()
			return nil
		}
	})

	if err := g.Wait(); err != nil && err != context.Canceled {
		app.Logger.Error().Err(err).Msg("Consumer error")
	}
	app.Logger.Info().Msg("Consumer exited")
}
