package customer

import (
	"testing"

	"github.com/cassiomorais/orderpay/internal/domain/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer_Valid(t *testing.T) {
	c, err := NewCustomer("John Doe", "12345678901")
	require.NoError(t, err)
	assert.Equal(t, "John Doe", c.Name)
	assert.Equal(t, "12345678901", c.CPF)
	assert.NotEqual(t, "", c.ID.String())
}

func TestNewCustomer_EmptyName(t *testing.T) {
	_, err := NewCustomer("", "12345678901")
	require.Error(t, err)

	var ve *errors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "name", ve.Field)
}

func TestNewCustomer_CPFWrongLength(t *testing.T) {
	tests := []struct {
		name string
		cpf  string
	}{
		{"too short", "123456789"},
		{"too long", "123456789012"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCustomer("John Doe", tt.cpf)
			require.Error(t, err)

			var ve *errors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, "cpf", ve.Field)
		})
	}
}

func TestNewCustomer_CPFNonNumeric(t *testing.T) {
	_, err := NewCustomer("John Doe", "1234567890a")
	require.Error(t, err)

	var ve *errors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "cpf", ve.Field)
}

func TestNewCustomer_PreservesInputExactly(t *testing.T) {
	c, err := NewCustomer("Ana", "00000000000")
	require.NoError(t, err)
	assert.Equal(t, "Ana", c.Name)
	assert.Equal(t, "00000000000", c.CPF)
}
