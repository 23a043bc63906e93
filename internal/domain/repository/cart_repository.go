package repository

import (
	"context"

	"bistro/internal/domain/entity"
)

// CartRepository defines the session-keyed cart store.
// Implementations are expected to treat missing or unreadable state as an
// empty cart rather than an error, so a shopper never gets locked out.
type CartRepository interface {
	// LoadCart returns the cart for the session, or an empty cart when
	// none is stored.
	LoadCart(ctx context.Context, sessionID string) (*entity.Cart, error)
	// SaveCart persists the cart for the session and refreshes its TTL.
	SaveCart(ctx context.Context, sessionID string, cart *entity.Cart) error
	// DeleteCart drops the stored cart for the session.
	DeleteCart(ctx context.Context, sessionID string) error
}
