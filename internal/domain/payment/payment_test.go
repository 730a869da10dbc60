package payment

import (
	"testing"

	"github.com/cassiomorais/orderpay/internal/domain/errors"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPayment_Valid(t *testing.T) {
	custID := uuid.New()
	p, err := NewPayment("ord-1", custID, "12345678901", "pix", 100_00)
	require.NoError(t, err)
	assert.Equal(t, "ord-1", p.OrderID)
	assert.Equal(t, custID, p.CustomerID)
	assert.Equal(t, "pix", p.Method)
	assert.Equal(t, int64(100_00), p.AmountCents)
	assert.Equal(t, StatusPending, p.Status)
}

func TestNewPayment_EmptyOrderID(t *testing.T) {
	_, err := NewPayment("", uuid.New(), "12345678901", "pix", 100)
	var ve *errors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "order_id", ve.Field)
}

func TestNewPayment_EmptyMethod(t *testing.T) {
	_, err := NewPayment("ord-1", uuid.New(), "12345678901", "", 100)
	var ve *errors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "method", ve.Field)
}

func TestNewPayment_NonPositiveAmount(t *testing.T) {
	for _, amount := range []int64{0, -1} {
		_, err := NewPayment("ord-1", uuid.New(), "12345678901", "pix", amount)
		var ve *errors.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "amount", ve.Field)
	}
}
