package entity

import "github.com/google/uuid"

const (
	// MinItemQuantity is the smallest quantity a cart line may hold.
	MinItemQuantity = 1
	// MaxItemQuantity caps a single cart line, including merged re-adds.
	MaxItemQuantity = 10
)

// CartItem is a product snapshot plus order-scoped attributes. The JSON tags
// define the serialized shape persisted by the cart store and must round-trip
// without loss.
type CartItem struct {
	ProductID           uuid.UUID `json:"productId"`
	Name                string    `json:"name"`
	Description         string    `json:"description"`
	Price               float64   `json:"price"`
	ImageURL            string    `json:"imageUrl"`
	Category            string    `json:"category"`
	Available           bool      `json:"available"`
	Quantity            int       `json:"quantity"`
	SpecialInstructions string    `json:"specialInstructions,omitempty"`
}

// Cart is the pre-checkout selection of a single session. At most one line
// exists per product id; adding an already-present product merges quantities.
type Cart struct {
	Items []CartItem `json:"items"`
}

// NewCart returns an empty cart.
func NewCart() *Cart {
	return &Cart{Items: []CartItem{}}
}

// Add puts the product into the cart with the requested quantity. The
// requested quantity is clamped into [MinItemQuantity, MaxItemQuantity];
// merging with an existing line is clamped to MaxItemQuantity as well.
func (c *Cart) Add(product Product, quantity int) {
	quantity = clampQuantity(quantity)

	for i := range c.Items {
		if c.Items[i].ProductID == product.ID {
			c.Items[i].Quantity = clampQuantity(c.Items[i].Quantity + quantity)

			return
		}
	}

	c.Items = append(c.Items, CartItem{
		ProductID:   product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.Price,
		ImageURL:    product.ImageURL,
		Category:    product.Category,
		Available:   product.Available,
		Quantity:    quantity,
	})
}

// UpdateQuantity sets the quantity of an existing line. Quantities below
// MinItemQuantity are rejected as a no-op; removal is a distinct operation.
func (c *Cart) UpdateQuantity(productID uuid.UUID, quantity int) {
	if quantity < MinItemQuantity {
		return
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = clampQuantity(quantity)

			return
		}
	}
}

// UpdateInstructions replaces the special instructions of an existing line.
func (c *Cart) UpdateInstructions(productID uuid.UUID, instructions string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].SpecialInstructions = instructions

			return
		}
	}
}

// Remove drops the line for the given product. Absent ids are a no-op.
func (c *Cart) Remove(productID uuid.UUID) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)

			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Items = []CartItem{}
}

// Total recomputes the cart total on every read; it is never cached.
func (c *Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}

	return total
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

func clampQuantity(quantity int) int {
	if quantity < MinItemQuantity {
		return MinItemQuantity
	}
	if quantity > MaxItemQuantity {
		return MaxItemQuantity
	}

	return quantity
}
