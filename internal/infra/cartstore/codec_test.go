package cartstore

import (
	"testing"

	"bistro/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartKey(t *testing.T) {
	assert.Equal(t, "cart:session:abc-123", cartKey("abc-123"))
}

func TestCartCodec_RoundTrip(t *testing.T) {
	cart := entity.NewCart()
	product := entity.Product{
		ID:        uuid.New(),
		Name:      "Margherita",
		Price:     12.5,
		Category:  "mains",
		Available: true,
	}
	cart.Add(product, 2)
	cart.UpdateInstructions(product.ID, "no cheese")

	data, err := encodeCart(cart)
	require.NoError(t, err)

	decoded, err := decodeCart(data)
	require.NoError(t, err)
	assert.Equal(t, cart.Items, decoded.Items)
}

func TestDecodeCart_CorruptPayload(t *testing.T) {
	_, err := decodeCart([]byte("{not json"))
	assert.Error(t, err)
}

func TestDecodeCart_NormalizesNilItems(t *testing.T) {
	cart, err := decodeCart([]byte(`{}`))
	require.NoError(t, err)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}
