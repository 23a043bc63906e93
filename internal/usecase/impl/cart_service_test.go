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

// cartServiceFixtures holds all test dependencies for cart service tests.
type cartServiceFixtures struct {
	service     usecase.CartUsecase
	cartRepo    *mockRepo.MockCartRepository
	productRepo *mockRepo.MockProductRepository
}

func createTestCartService(t *testing.T) cartServiceFixtures {
	cartRepo := mockRepo.NewMockCartRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	service := NewCartService(cartRepo, productRepo, newDiscardLogger())

	return cartServiceFixtures{
		service:     service,
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func cartTestProduct(name string, price float64) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		Name:      name,
		Price:     price,
		Category:  "mains",
		Available: true,
	}
}

func TestCartService_GetCart_Empty(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().
		LoadCart(ctx, "session-1").
		Return(entity.NewCart(), nil)

	view, err := fx.service.GetCart(ctx, "session-1")
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Total)
}

func TestCartService_AddItem_NewLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	product := cartTestProduct("Margherita", 12.5)

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	fx.cartRepo.EXPECT().
		LoadCart(ctx, "session-1").
		Return(entity.NewCart(), nil)

	var saved *entity.Cart
	fx.cartRepo.EXPECT().
		SaveCart(ctx, "session-1", mock.AnythingOfType("*entity.Cart")).
		Run(func(_ context.Context, _ string, cart *entity.Cart) {
			saved = cart
		}).
		Return(nil)

	view, err := fx.service.AddItem(ctx, "session-1", &usecase.AddCartItemInput{
		ProductID: product.ID,
		Quantity:  2,
	})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.InDelta(t, 25.0, view.Total, 1e-9)

	require.NotNil(t, saved)
	assert.Len(t, saved.Items, 1)
}

func TestCartService_AddItem_MergesExistingLine(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	product := cartTestProduct("Margherita", 10.0)

	stored := entity.NewCart()
	stored.Add(*product, 2)

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	fx.cartRepo.EXPECT().
		LoadCart(ctx, "session-1").
		Return(stored, nil)

	fx.cartRepo.EXPECT().
		SaveCart(ctx, "session-1", mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	view, err := fx.service.AddItem(ctx, "session-1", &usecase.AddCartItemInput{
		ProductID: product.ID,
		Quantity:  3,
	})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 5, view.Items[0].Quantity)
}

func TestCartService_AddItem_ProductNotFound(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	_, err := fx.service.AddItem(ctx, "session-1", &usecase.AddCartItemInput{
		ProductID: productID,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_AddItem_ProductUnavailable(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	product := cartTestProduct("Margherita", 10.0)
	product.Available = false

	fx.productRepo.EXPECT().
		FindProductByID(ctx, product.ID).
		Return(product, nil)

	_, err := fx.service.AddItem(ctx, "session-1", &usecase.AddCartItemInput{
		ProductID: product.ID,
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
}

func TestCartService_UpdateItem_QuantityAndInstructions(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	product := cartTestProduct("Margherita", 10.0)

	stored := entity.NewCart()
	stored.Add(*product, 2)

	fx.cartRepo.EXPECT().
		LoadCart(ctx, "session-1").
		Return(stored, nil)

	fx.cartRepo.EXPECT().
		SaveCart(ctx, "session-1", mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	quantity := 4
	instructions := "extra basil"
	view, err := fx.service.UpdateItem(ctx, "session-1", product.ID, &usecase.UpdateCartItemInput{
		Quantity:            &quantity,
		SpecialInstructions: &instructions,
	})
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 4, view.Items[0].Quantity)
	assert.Equal(t, "extra basil", view.Items[0].SpecialInstructions)
	assert.InDelta(t, 40.0, view.Total, 1e-9)
}

func TestCartService_RemoveItem(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()
	product := cartTestProduct("Margherita", 10.0)

	stored := entity.NewCart()
	stored.Add(*product, 2)

	fx.cartRepo.EXPECT().
		LoadCart(ctx, "session-1").
		Return(stored, nil)

	fx.cartRepo.EXPECT().
		SaveCart(ctx, "session-1", mock.AnythingOfType("*entity.Cart")).
		Return(nil)

	view, err := fx.service.RemoveItem(ctx, "session-1", product.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Zero(t, view.Total)
}

func TestCartService_ClearCart(t *testing.T) {
	fx := createTestCartService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().
		DeleteCart(ctx, "session-1").
		Return(nil)

	require.NoError(t, fx.service.ClearCart(ctx, "session-1"))
}
