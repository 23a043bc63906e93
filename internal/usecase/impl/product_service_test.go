package impl

import (
	"context"
	"testing"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	mockRepo "bistro/internal/mocks/repository"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewProductService(productRepo, newDiscardLogger())

	return productServiceFixtures{
		service:     service,
		productRepo: productRepo,
	}
}

func TestProductService_GetMenu_OnlyAvailable(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		FindAvailableProducts(ctx).
		Return([]*entity.Product{
			{ID: uuid.New(), Name: "Margherita", Available: true},
		}, nil)

	menu, err := fx.service.GetMenu(ctx)
	require.NoError(t, err)
	assert.Len(t, menu, 1)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.GetProduct(ctx, productID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ManagementRequiresRole(t *testing.T) {
	tests := []struct {
		name    string
		actor   entity.Actor
		wantErr error
	}{
		{name: "unauthenticated", actor: entity.Actor{Role: entity.RoleCustomer}, wantErr: domainerrors.ErrUnauthenticated},
		{name: "customer forbidden", actor: customerActor(), wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestProductService(t)
			ctx := context.Background()

			_, err := fx.service.ListProducts(ctx, tt.actor)
			assert.ErrorIs(t, err, tt.wantErr)

			_, err = fx.service.CreateProduct(ctx, tt.actor, &usecase.CreateProductInput{Name: "Margherita", Price: 10, Category: "mains"})
			assert.ErrorIs(t, err, tt.wantErr)

			err = fx.service.DeleteProduct(ctx, tt.actor, uuid.New())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestProductService_CreateProduct_DefaultsToAvailable(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, staffActor(), &usecase.CreateProductInput{
		Name:     "Margherita",
		Price:    12.5,
		Category: "mains",
	})
	require.NoError(t, err)
	assert.True(t, product.Available)
}

func TestProductService_CreateProduct_ExplicitUnavailable(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	available := false

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, staffActor(), &usecase.CreateProductInput{
		Name:      "Seasonal Special",
		Price:     18.0,
		Category:  "mains",
		Available: &available,
	})
	require.NoError(t, err)
	assert.False(t, product.Available)
}

func TestProductService_UpdateProduct_AppliesOnlyProvidedFields(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{
			ID:        productID,
			Name:      "Margherita",
			Price:     10.0,
			Category:  "mains",
			Available: true,
		}, nil)

	fx.productRepo.EXPECT().
		UpdateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	price := 11.5
	product, err := fx.service.UpdateProduct(ctx, staffActor(), productID, &usecase.UpdateProductInput{
		Price: &price,
	})
	require.NoError(t, err)
	assert.Equal(t, "Margherita", product.Name)
	assert.InDelta(t, 11.5, product.Price, 1e-9)
	assert.True(t, product.Available)
}

func TestProductService_SetAvailability(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		SetProductAvailability(ctx, productID, false).
		Return(nil)

	require.NoError(t, fx.service.SetAvailability(ctx, staffActor(), productID, false))
}

func TestProductService_DeleteProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		DeleteProduct(ctx, productID).
		Return(repository.ErrProductNotFound)

	err := fx.service.DeleteProduct(ctx, adminActor(), productID)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}
