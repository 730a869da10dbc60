package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	customerApp "github.com/cassiomorais/orderpay/internal/application/customer"
	paymentApp "github.com/cassiomorais/orderpay/internal/application/payment"
	"github.com/cassiomorais/orderpay/internal/bootstrap"
	"github.com/cassiomorais/orderpay/internal/controller"
	"github.com/cassiomorais/orderpay/internal/infrastructure/providers"
	"github.com/cassiomorais/orderpay/internal/repository/postgres"
)

func main() {
	ctx := context.Background()

	app, err := bootstrap.New(ctx, "orderpay-api", "orderpay")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to bootstrap: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	// --- Repositories ---
	orderRepo := postgres.NewOrderRepository(app.Pool)
	customerRepo := postgres.NewCustomerRepository(app.Pool)

	// --- Provider ---
	providerCfg := app.Config.Provider
	providerFactory := providers.NewFactory(providers.NewMockProvider(providerCfg.Name,
		providers.WithLatency(providerCfg.Latency),
		providers.WithFailureRate(providerCfg.FailureRate),
	))
	providerClient, err := providerFactory.Get(providerCfg.Name)
	if err != nil {
		app.Logger.Fatal().Err(err).Str("provider", providerCfg.Name).Msg("Unknown payment provider")
	}

	// --- Use cases ---
	identifyUC := customerApp.NewIdentifyCustomerUseCase(customerRepo)
	createPaymentUC := paymentApp.NewCreatePaymentUseCase(orderRepo, identifyUC, providerClient)

	// --- Build router ---
	router := controller.NewRouter(controller.RouterDeps{
		Pool:            app.Pool,
		RedisClient:     app.Redis,
		CreatePaymentUC: createPaymentUC,
		Metrics:         app.Metrics,
		CORSConfig:      app.Config.Server.CORS,
	})

	// --- HTTP server ---
	addr := fmt.Sprintf(":%d", app.Config.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  app.Config.Server.ReadTimeout,
		WriteTimeout: app.Config.Server.WriteTimeout,
		IdleTimeout:  app.Config.Server.IdleTimeout,
	}

	go func() {
		app.Logger.Info().Str("addr", addr).Msg("Starting HTTP server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	app.Logger.Info().Msg("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), app.Config.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		app.Logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	app.Logger.Info().Msg("Server exited")
}
