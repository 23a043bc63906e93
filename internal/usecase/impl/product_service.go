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

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) usecase.ProductUsecase {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// GetMenu retrieves the products currently offered to shoppers.
func (srv *productService) GetMenu(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindAvailableProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load menu")
	}

	return products, nil
}

// GetProduct retrieves one product regardless of availability.
func (srv *productService) GetProduct(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

// ListProducts retrieves the whole catalog, including unavailable entries.
func (srv *productService) ListProducts(ctx context.Context, actor entity.Actor) ([]*entity.Product, error) {
	if err := requireProductManager(actor); err != nil {
		return nil, err
	}

	products, err := srv.productRepo.FindAllProducts(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

// CreateProduct adds a menu entry. New entries default to available.
func (srv *productService) CreateProduct(ctx context.Context, actor entity.Actor, input *usecase.CreateProductInput) (*entity.Product, error) {
	if err := requireProductManager(actor); err != nil {
		return nil, err
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	product := &entity.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		ImageURL:    input.ImageURL,
		Category:    input.Category,
		Available:   available,
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		return nil, errors.Wrap(err, "failed to create product")
	}

	srv.logger.Info("Product created",
		"productId", product.ID,
		"name", product.Name,
		"category", product.Category,
	)

	return product, nil
}

// UpdateProduct edits a menu entry in place.
func (srv *productService) UpdateProduct(ctx context.Context, actor entity.Actor, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	if err := requireProductManager(actor); err != nil {
		return nil, err
	}

	// 1. Load the current entry
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	// 2. Apply the provided fields
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.ImageURL != nil {
		product.ImageURL = *input.ImageURL
	}
	if input.Category != nil {
		product.Category = *input.Category
	}
	if input.Available != nil {
		product.Available = *input.Available
	}

	// 3. Persist the edit
	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to update product")
	}

	srv.logger.Info("Product updated", "productId", product.ID)

	return product, nil
}

// SetAvailability toggles whether the entry is offered.
func (srv *productService) SetAvailability(ctx context.Context, actor entity.Actor, productID uuid.UUID, available bool) error {
	if err := requireProductManager(actor); err != nil {
		return err
	}

	if err := srv.productRepo.SetProductAvailability(ctx, productID, available); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to update product availability")
	}

	srv.logger.Info("Product availability changed",
		"productId", productID,
		"available", available,
	)

	return nil
}

// DeleteProduct removes a menu entry from the catalog.
func (srv *productService) DeleteProduct(ctx context.Context, actor entity.Actor, productID uuid.UUID) error {
	if err := requireProductManager(actor); err != nil {
		return err
	}

	if err := srv.productRepo.DeleteProduct(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return errors.Wrap(err, "failed to delete product")
	}

	srv.logger.Info("Product deleted", "productId", productID)

	return nil
}

// requireProductManager gates catalog management behind staff and admin roles.
func requireProductManager(actor entity.Actor) error {
	if !actor.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated
	}
	if !actor.Role.CanManageProducts() {
		return domainerrors.ErrForbidden
	}

	return nil
}
