package entity

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(name string, price float64) Product {
	return Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		Category:  "mains",
		Available: true,
	}
}

func TestCart_Add_MergesQuantities(t *testing.T) {
	cart := NewCart()
	product := testProduct("Margherita", 10.0)

	cart.Add(product, 2)
	cart.Add(product, 3)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCart_Add_MergeClampsAtMax(t *testing.T) {
	cart := NewCart()
	product := testProduct("Margherita", 10.0)

	cart.Add(product, 8)
	cart.Add(product, 5)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, MaxItemQuantity, cart.Items[0].Quantity)
}

func TestCart_Add_ClampsRequestedQuantity(t *testing.T) {
	cart := NewCart()

	cart.Add(testProduct("Margherita", 10.0), 0)
	cart.Add(testProduct("Carbonara", 12.0), 99)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, MinItemQuantity, cart.Items[0].Quantity)
	assert.Equal(t, MaxItemQuantity, cart.Items[1].Quantity)
}

func TestCart_Add_SnapshotsProductFields(t *testing.T) {
	cart := NewCart()
	product := testProduct("Margherita", 10.0)
	product.Description = "Tomato and mozzarella"
	product.ImageURL = "https://img.example/margherita.png"

	cart.Add(product, 1)

	require.Len(t, cart.Items, 1)
	item := cart.Items[0]
	assert.Equal(t, product.ID, item.ProductID)
	assert.Equal(t, product.Name, item.Name)
	assert.Equal(t, product.Description, item.Description)
	assert.Equal(t, product.Price, item.Price)
	assert.Equal(t, product.ImageURL, item.ImageURL)
	assert.Equal(t, product.Category, item.Category)
}

func TestCart_UpdateQuantity_BelowMinIsNoOp(t *testing.T) {
	cart := NewCart()
	product := testProduct("Margherita", 10.0)
	cart.Add(product, 3)

	cart.UpdateQuantity(product.ID, 0)

	assert.Equal(t, 3, cart.Items[0].Quantity)

	cart.UpdateQuantity(product.ID, -2)

	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCart_UpdateQuantity_ClampsAtMax(t *testing.T) {
	cart := NewCart()
	product := testProduct("Margherita", 10.0)
	cart.Add(product, 3)

	cart.UpdateQuantity(product.ID, 50)

	assert.Equal(t, MaxItemQuantity, cart.Items[0].Quantity)
}

func TestCart_UpdateQuantity_UnknownProductIsNoOp(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("Margherita", 10.0), 3)

	cart.UpdateQuantity(uuid.New(), 5)

	assert.Equal(t, 3, cart.Items[0].Quantity)
}

func TestCart_UpdateInstructions(t *testing.T) {
	cart := NewCart()
	product := testProduct("Margherita", 10.0)
	cart.Add(product, 1)

	cart.UpdateInstructions(product.ID, "extra basil")

	assert.Equal(t, "extra basil", cart.Items[0].SpecialInstructions)
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart()
	first := testProduct("Margherita", 10.0)
	second := testProduct("Carbonara", 12.0)
	cart.Add(first, 1)
	cart.Add(second, 2)

	cart.Remove(first.ID)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, second.ID, cart.Items[0].ProductID)

	// Removing an absent product is a no-op
	cart.Remove(uuid.New())
	assert.Len(t, cart.Items, 1)
}

func TestCart_Total(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("Margherita", 10.0), 1)
	cart.Add(testProduct("Garlic Bread", 5.0), 3)

	assert.InDelta(t, 25.0, cart.Total(), 1e-9)
}

func TestCart_Total_RecomputedAfterMutation(t *testing.T) {
	cart := NewCart()
	product := testProduct("Margherita", 10.0)
	cart.Add(product, 2)
	assert.InDelta(t, 20.0, cart.Total(), 1e-9)

	cart.UpdateQuantity(product.ID, 4)
	assert.InDelta(t, 40.0, cart.Total(), 1e-9)

	cart.Remove(product.ID)
	assert.Zero(t, cart.Total())
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.Add(testProduct("Margherita", 10.0), 2)

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Empty(t, cart.Items)
}

func TestCart_JSONRoundTrip(t *testing.T) {
	cart := NewCart()
	product := testProduct("Margherita", 10.0)
	cart.Add(product, 2)
	cart.UpdateInstructions(product.ID, "no cheese")

	data, err := json.Marshal(cart)
	require.NoError(t, err)

	var decoded Cart
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, cart.Items, decoded.Items)
	assert.InDelta(t, cart.Total(), decoded.Total(), 1e-9)
}
