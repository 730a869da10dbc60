package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	customerApp "github.com/cassiomorais/orderpay/internal/application/customer"
	paymentApp "github.com/cassiomorais/orderpay/internal/application/payment"
	"github.com/cassiomorais/orderpay/internal/domain/order"
	"github.com/cassiomorais/orderpay/internal/infrastructure/observability"
	"github.com/cassiomorais/orderpay/internal/testutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestController(t *testing.T, orderRepo *testutil.MockOrderRepository) *PaymentController {
	t.Helper()
	customerRepo := testutil.NewMockCustomerRepository()
	provider := testutil.NewMockProviderClient()
	identifyUC := customerApp.NewIdentifyCustomerUseCase(customerRepo)
	uc := paymentApp.NewCreatePaymentUseCase(orderRepo, identifyUC, provider)
	metrics := observability.NewMetrics("test", prometheus.NewRegistry())
	return NewPaymentController(uc, metrics)
}

func postPayment(t *testing.T, h *PaymentController, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	h.CreatePayment(rec, req)
	return rec
}

func TestCreatePayment_Created(t *testing.T) {
	orderRepo := testutil.NewMockOrderRepository()
	orderRepo.AddOrder(&order.Order{ID: "ord-1", Status: "open"})
	h := newTestController(t, orderRepo)

	rec := postPayment(t, h, CreatePaymentRequest{
		OrderID:      "ord-1",
		CPF:          "12345678901",
		CustomerName: "Ana",
		Method:       "pix",
		Amount:       100,
	})

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp PaymentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ord-1", resp.OrderID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, float64(100), resp.Amount)
}

func TestCreatePayment_OrderNotFound(t *testing.T) {
	h := newTestController(t, testutil.NewMockOrderRepository())

	rec := postPayment(t, h, CreatePaymentRequest{
		OrderID:      "missing",
		CPF:          "12345678901",
		CustomerName: "Ana",
		Method:       "pix",
		Amount:       100,
	})

	require.Equal(t, http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "order_not_found", resp.Code)
}

func TestCreatePayment_InvalidCPF(t *testing.T) {
	h := newTestController(t, testutil.NewMockOrderRepository())

	rec := postPayment(t, h, CreatePaymentRequest{
		OrderID:      "ord-1",
		CPF:          "123",
		CustomerName: "Ana",
		Method:       "pix",
		Amount:       100,
	})

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "validation_error", resp.Code)
}

func TestCreatePayment_InvalidJSON(t *testing.T) {
	h := newTestController(t, testutil.NewMockOrderRepository())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/payments", bytes.NewReader([]byte("{nope")))
	rec := httptest.NewRecorder()
	h.CreatePayment(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFloatToCents(t *testing.T) {
	assert.Equal(t, int64(10000), floatToCents(100))
	assert.Equal(t, int64(10050), floatToCents(100.50))
	assert.Equal(t, int64(1), floatToCents(0.01))
}
