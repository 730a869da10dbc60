package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeStatusPayload_Valid(t *testing.T) {
	body := []byte(`{"payment_id":"pay-1","order_id":"ord-1","status":"processed","provider":"mercadopago"}`)

	p, err := DecodeStatusPayload(body)
	require.NoError(t, err)
	assert.Equal(t, "pay-1", p.PaymentID)
	assert.Equal(t, "ord-1", p.OrderID)
	assert.Equal(t, "processed", p.Status)
	assert.Equal(t, "mercadopago", p.Extra["provider"])
}

func TestDecodeStatusPayload_MalformedJSON(t *testing.T) {
	_, err := DecodeStatusPayload([]byte(`{not json`))
	assert.Error(t, err)
}

func TestDecodeStatusPayload_MissingPaymentID(t *testing.T) {
	_, err := DecodeStatusPayload([]byte(`{"status":"processed"}`))
	assert.Error(t, err)
}

func TestDecodeStatusPayload_MissingStatus(t *testing.T) {
	_, err := DecodeStatusPayload([]byte(`{"payment_id":"pay-1"}`))
	assert.Error(t, err)
}

func TestDecodeStatusPayload_NotAnObject(t *testing.T) {
	_, err := DecodeStatusPayload([]byte(`"processed"`))
	assert.Error(t, err)
}
