package customer_test

import (
	"context"
	"errors"
	"testing"

	customerApp "github.com/cassiomorais/orderpay/internal/application/customer"
	"github.com/cassiomorais/orderpay/internal/domain/customer"
	domainErrors "github.com/cassiomorais/orderpay/internal/domain/errors"
	"github.com/cassiomorais/orderpay/internal/testutil"
)

func TestIdentifyCustomer_ExistingCustomer(t *testing.T) {
	ctx := context.Background()
	repo := testutil.NewMockCustomerRepository()

	existing, err := customer.NewCustomer("Ana", "12345678901")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	repo.AddCustomer(existing)

	uc := customerApp.NewIdentifyCustomerUseCase(repo)

	got, err := uc.Execute(ctx, "12345678901", "ignored name")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != existing.ID {
		t.Error("expected the existing customer to be returned")
	}
	if got.Name != "Ana" {
		t.Errorf("expected existing name to be kept, got %s", got.Name)
	}
}

func TestIdentifyCustomer_CreatesOnFirstUse(t *testing.T) {
	ctx := context.Background()
	repo := testutil.NewMockCustomerRepository()
	uc := customerApp.NewIdentifyCustomerUseCase(repo)

	got, err := uc.Execute(ctx, "12345678901", "Ana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.CPF != "12345678901" || got.Name != "Ana" {
		t.Errorf("unexpected customer created: %+v", got)
	}

	stored, err := repo.FindByCPF(ctx, "12345678901")
	if err != nil {
		t.Fatalf("expected created customer to be persisted: %v", err)
	}
	if stored.ID != got.ID {
		t.Error("persisted customer differs from returned customer")
	}
}

func TestIdentifyCustomer_InvalidCPFOnCreate(t *testing.T) {
	ctx := context.Background()
	repo := testutil.NewMockCustomerRepository()
	uc := customerApp.NewIdentifyCustomerUseCase(repo)

	_, err := uc.Execute(ctx, "123", "Ana")
	var ve *domainErrors.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestIdentifyCustomer_LookupErrorPropagates(t *testing.T) {
	ctx := context.Background()
	repo := testutil.NewMockCustomerRepository()
	lookupErr := errors.New("connection refused")
	repo.FindByCPFFunc = func(ctx context.Context, cpf string) (*customer.Customer, error) {
		return nil, lookupErr
	}

	uc := customerApp.NewIdentifyCustomerUseCase(repo)

	_, err := uc.Execute(ctx, "12345678901", "Ana")
	if !errors.Is(err, lookupErr) {
		t.Fatalf("expected lookup error to propagate, got %v", err)
	}
}
