// Package cartstore implements the session cart repository on Redis.
package cartstore

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"bistro/config"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

// redisCartRepository implements the repository.CartRepository interface.
// Carts are stored as JSON blobs keyed by session ID with a sliding TTL.
type redisCartRepository struct {
	client *redis.Client
	cfg    *config.Config
	logger *slog.Logger
}

// NewRedisCartRepository is the constructor for redisCartRepository.
func NewRedisCartRepository(client *redis.Client, cfg *config.Config, logger *slog.Logger) repository.CartRepository {
	return &redisCartRepository{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// LoadCart returns the stored cart for the session. A missing key yields an
// empty cart; so does an unreadable blob, which is logged and dropped so the
// shopper is never locked out of checkout.
func (repo *redisCartRepository) LoadCart(ctx context.Context, sessionID string) (*entity.Cart, error) {
	data, err := repo.client.Get(ctx, cartKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return entity.NewCart(), nil
		}

		return nil, domainerrors.NewCacheExecuteError(err, "failed to load cart")
	}

	cart, err := decodeCart([]byte(data))
	if err != nil {
		repo.logger.WarnContext(ctx, "discarding unreadable cart payload",
			slog.String("sessionId", sessionID),
			slog.String("error", err.Error()),
		)

		return entity.NewCart(), nil
	}

	return cart, nil
}

// SaveCart persists the cart and refreshes its TTL.
func (repo *redisCartRepository) SaveCart(ctx context.Context, sessionID string, cart *entity.Cart) error {
	data, err := encodeCart(cart)
	if err != nil {
		return domainerrors.NewCacheExecuteError(err, "failed to encode cart")
	}

	if err := repo.client.Set(ctx, cartKey(sessionID), data, repo.cfg.Cart.TTL).Err(); err != nil {
		return domainerrors.NewCacheExecuteError(err, "failed to save cart")
	}

	return nil
}

// DeleteCart drops the stored cart for the session.
func (repo *redisCartRepository) DeleteCart(ctx context.Context, sessionID string) error {
	if err := repo.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return domainerrors.NewCacheExecuteError(err, "failed to delete cart")
	}

	return nil
}

// encodeCart serializes the cart for storage.
func encodeCart(cart *entity.Cart) ([]byte, error) {
	return json.Marshal(cart)
}

// decodeCart deserializes a stored cart blob.
func decodeCart(data []byte) (*entity.Cart, error) {
	cart := entity.NewCart()
	if err := json.Unmarshal(data, cart); err != nil {
		return nil, err
	}

	if cart.Items == nil {
		cart.Items = []entity.CartItem{}
	}

	return cart, nil
}
