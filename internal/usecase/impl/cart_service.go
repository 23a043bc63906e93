// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetCart retrieves the session's cart, empty when nothing is stored.
func (srv *cartService) GetCart(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	return toCartView(cart), nil
}

// AddItem puts a product into the cart, merging quantities with an existing line.
func (srv *cartService) AddItem(ctx context.Context, sessionID string, input *usecase.AddCartItemInput) (*usecase.CartView, error) {
	// 1. Resolve the product so the cart snapshots current catalog data
	product, err := srv.productRepo.FindProductByID(ctx, input.ProductID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	// 2. Unavailable products cannot enter the cart
	if !product.Available {
		return nil, domainerrors.ErrProductUnavailable
	}

	// 3. Merge into the stored cart and persist
	cart, err := srv.cartRepo.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.Add(*product, input.Quantity)

	if err := srv.cartRepo.SaveCart(ctx, sessionID, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	srv.logger.Debug("Added product to cart",
		"sessionId", sessionID,
		"productId", input.ProductID,
		"quantity", input.Quantity,
	)

	return toCartView(cart), nil
}

// UpdateItem changes the quantity or special instructions of an existing line.
// Updates for products not in the cart are a no-op, mirroring cart merge rules.
func (srv *cartService) UpdateItem(ctx context.Context, sessionID string, productID uuid.UUID, input *usecase.UpdateCartItemInput) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	if input.Quantity != nil {
		cart.UpdateQuantity(productID, *input.Quantity)
	}
	if input.SpecialInstructions != nil {
		cart.UpdateInstructions(productID, *input.SpecialInstructions)
	}

	if err := srv.cartRepo.SaveCart(ctx, sessionID, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return toCartView(cart), nil
}

// RemoveItem drops a line from the cart. Absent products are a no-op.
func (srv *cartService) RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) (*usecase.CartView, error) {
	cart, err := srv.cartRepo.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}

	cart.Remove(productID)

	if err := srv.cartRepo.SaveCart(ctx, sessionID, cart); err != nil {
		return nil, errors.Wrap(err, "failed to save cart")
	}

	return toCartView(cart), nil
}

// ClearCart empties the cart by dropping the stored state.
func (srv *cartService) ClearCart(ctx context.Context, sessionID string) error {
	if err := srv.cartRepo.DeleteCart(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// toCartView projects the cart with its derived total.
func toCartView(cart *entity.Cart) *usecase.CartView {
	return &usecase.CartView{
		Items: cart.Items,
		Total: cart.Total(),
	}
}
