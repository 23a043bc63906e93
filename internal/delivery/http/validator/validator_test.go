package validator

import (
	"testing"

	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_ValidCheckoutDetails(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.PlaceOrderInput{
		CustomerName:    "Casey Jones",
		CustomerPhone:   "(555) 123-4567",
		CustomerAddress: "1 Main St",
	})
	assert.NoError(t, err)
}

func TestValidate_ShortPhoneListsTheField(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.PlaceOrderInput{
		CustomerName:    "Casey Jones",
		CustomerPhone:   "12345",
		CustomerAddress: "1 Main St",
	})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "VALIDATION_FAILED", validationErr.ErrorCode())
	assert.Contains(t, validationErr.Fields(), "CustomerPhone")
	assert.Contains(t, validationErr.Details(), "CustomerPhone")
}

func TestValidate_MissingFieldsEnumerated(t *testing.T) {
	v := New()

	err := v.Validate(&usecase.PlaceOrderInput{})
	require.Error(t, err)

	var validationErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := validationErr.Fields()
	assert.Contains(t, fields, "CustomerName")
	assert.Contains(t, fields, "CustomerPhone")
	assert.Contains(t, fields, "CustomerAddress")
	assert.Equal(t, "is required", fields["CustomerName"])
}

func TestValidate_QuantityBounds(t *testing.T) {
	v := New()

	tests := []struct {
		name     string
		quantity int
		field    string
	}{
		{name: "below minimum", quantity: 0, field: "Quantity"},
		{name: "above maximum", quantity: 11, field: "Quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&usecase.AddCartItemInput{Quantity: tt.quantity})
			require.Error(t, err)

			var validationErr *domainerrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Contains(t, validationErr.Fields(), tt.field)
		})
	}
}
