package impl

import (
	"context"
	"testing"
	"time"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	mockRepo "bistro/internal/mocks/repository"
	mockService "bistro/internal/mocks/service"
	"bistro/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// orderServiceFixtures holds all test dependencies for order service tests.
type orderServiceFixtures struct {
	service   usecase.OrderUsecase
	txManager *mockRepo.MockTransactionManager
	orderRepo *mockRepo.MockOrderRepository
	cartRepo  *mockRepo.MockCartRepository
	qrService *mockService.MockQRCodeService
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	cartRepo := mockRepo.NewMockCartRepository(t)
	qrService := mockService.NewMockQRCodeService(t)
	service := NewOrderService(txManager, orderRepo, cartRepo, qrService, newTestConfig(), newDiscardLogger())

	return orderServiceFixtures{
		service:   service,
		txManager: txManager,
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		qrService: qrService,
	}
}

// expectTransaction wires the transaction manager to run the callback against
// a factory that hands out the given order repository mock.
func expectTransaction(t *testing.T, txManager *mockRepo.MockTransactionManager, orderRepo *mockRepo.MockOrderRepository) {
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(orderRepo)

	txManager.EXPECT().
		Execute(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func staffActor() entity.Actor {
	return entity.Actor{ID: uuid.New(), Name: "Sam", Role: entity.RoleStaff}
}

func adminActor() entity.Actor {
	return entity.Actor{ID: uuid.New(), Name: "Alex", Role: entity.RoleAdmin}
}

func customerActor() entity.Actor {
	return entity.Actor{ID: uuid.New(), Name: "Casey", Role: entity.RoleCustomer}
}

func checkoutCart() *entity.Cart {
	cart := entity.NewCart()
	cart.Add(entity.Product{
		ID:        uuid.New(),
		Name:      "Margherita",
		Price:     12.5,
		Category:  "mains",
		Available: true,
	}, 2)
	cart.Add(entity.Product{
		ID:        uuid.New(),
		Name:      "Garlic Bread",
		Price:     4.0,
		Category:  "sides",
		Available: true,
	}, 1)

	return cart
}

func TestOrderService_PlaceOrder_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	actor := customerActor()
	cart := checkoutCart()

	fx.cartRepo.EXPECT().
		LoadCart(ctx, "session-1").
		Return(cart, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTransaction(t, fx.txManager, txOrderRepo)

	var created *entity.Order
	txOrderRepo.EXPECT().
		CreateOrder(ctx, mock.AnythingOfType("*entity.Order")).
		Run(func(_ context.Context, order *entity.Order) {
			created = order
		}).
		Return(nil)
	txOrderRepo.EXPECT().
		CreateOrderItems(ctx, mock.AnythingOfType("[]entity.OrderItem")).
		Return(nil)

	fx.cartRepo.EXPECT().
		DeleteCart(ctx, "session-1").
		Return(nil)

	order, err := fx.service.PlaceOrder(ctx, actor, "session-1", &usecase.PlaceOrderInput{
		CustomerName:    "Casey Jones",
		CustomerPhone:   "555-123-4567",
		CustomerAddress: "1 Main St",
	})
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, entity.StatusPending, order.Status)
	assert.Equal(t, "(555) 123-4567", order.CustomerPhone)
	assert.Equal(t, actor.ID, order.UserID)
	assert.InDelta(t, 29.0, order.TotalAmount, 1e-9)
	assert.Len(t, order.Items, 2)

	require.NotNil(t, created)
	assert.Equal(t, order.ID, created.ID)
	for _, item := range order.Items {
		assert.Equal(t, order.ID, item.OrderID)
	}
}

func TestOrderService_PlaceOrder_Unauthenticated(t *testing.T) {
	fx := createTestOrderService(t)

	// No cart or transaction expectations: the auth check runs first.
	_, err := fx.service.PlaceOrder(context.Background(), entity.Actor{Role: entity.RoleCustomer}, "session-1", &usecase.PlaceOrderInput{
		CustomerName:    "Casey Jones",
		CustomerPhone:   "5551234567",
		CustomerAddress: "1 Main St",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestOrderService_PlaceOrder_EmptyCart(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.cartRepo.EXPECT().
		LoadCart(ctx, "session-1").
		Return(entity.NewCart(), nil)

	// No transaction expectation: an empty cart never reaches the database.
	_, err := fx.service.PlaceOrder(ctx, customerActor(), "session-1", &usecase.PlaceOrderInput{
		CustomerName:    "Casey Jones",
		CustomerPhone:   "5551234567",
		CustomerAddress: "1 Main St",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmptyCart)
}

func TestOrderService_PlaceOrder_CartCleanupFailureIsNotFatal(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	cart := checkoutCart()

	fx.cartRepo.EXPECT().
		LoadCart(ctx, "session-1").
		Return(cart, nil)

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTransaction(t, fx.txManager, txOrderRepo)
	txOrderRepo.EXPECT().CreateOrder(ctx, mock.Anything).Return(nil)
	txOrderRepo.EXPECT().CreateOrderItems(ctx, mock.Anything).Return(nil)

	fx.cartRepo.EXPECT().
		DeleteCart(ctx, "session-1").
		Return(assert.AnError)

	order, err := fx.service.PlaceOrder(ctx, customerActor(), "session-1", &usecase.PlaceOrderInput{
		CustomerName:    "Casey Jones",
		CustomerPhone:   "5551234567",
		CustomerAddress: "1 Main St",
	})
	require.NoError(t, err)
	assert.NotNil(t, order)
}

func TestOrderService_GetOrder_Visibility(t *testing.T) {
	owner := customerActor()
	stranger := customerActor()
	staff := staffActor()
	orderID := uuid.New()

	tests := []struct {
		name    string
		actor   entity.Actor
		wantErr error
	}{
		{name: "owner sees own order", actor: owner},
		{name: "staff sees any order", actor: staff},
		{name: "stranger is forbidden", actor: stranger, wantErr: domainerrors.ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestOrderService(t)
			ctx := context.Background()

			fx.orderRepo.EXPECT().
				FindOrderByID(ctx, orderID).
				Return(&entity.Order{ID: orderID, UserID: owner.ID, Status: entity.StatusPending}, nil)

			order, err := fx.service.GetOrder(ctx, tt.actor, orderID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, orderID, order.ID)
		})
	}
}

func TestOrderService_GetOrder_NotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.GetOrder(ctx, staffActor(), orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ListOrders_StaffSeesAll(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()

	fx.orderRepo.EXPECT().
		FindAllOrders(ctx).
		Return([]*entity.Order{{ID: uuid.New()}, {ID: uuid.New()}}, nil)

	orders, err := fx.service.ListOrders(ctx, staffActor())
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestOrderService_ListOrders_CustomerSeesOwn(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	actor := customerActor()

	fx.orderRepo.EXPECT().
		FindOrdersByUser(ctx, actor.ID).
		Return([]*entity.Order{{ID: uuid.New(), UserID: actor.ID}}, nil)

	orders, err := fx.service.ListOrders(ctx, actor)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestOrderService_ListOrders_Unauthenticated(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.ListOrders(context.Background(), entity.Actor{Role: entity.RoleCustomer})
	assert.ErrorIs(t, err, domainerrors.ErrUnauthenticated)
}

func TestOrderService_UpdateStatus_Success(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTransaction(t, fx.txManager, txOrderRepo)

	txOrderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.StatusPending}, nil)
	txOrderRepo.EXPECT().
		UpdateOrderStatus(ctx, orderID, entity.StatusPreparing).
		Return(nil)

	order, err := fx.service.UpdateStatus(ctx, staffActor(), orderID, &usecase.UpdateOrderStatusInput{
		Status: entity.StatusPreparing,
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusPreparing, order.Status)
}

func TestOrderService_UpdateStatus_InvalidTransition(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTransaction(t, fx.txManager, txOrderRepo)

	txOrderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.StatusDelivered}, nil)

	_, err := fx.service.UpdateStatus(ctx, staffActor(), orderID, &usecase.UpdateOrderStatusInput{
		Status: entity.StatusPreparing,
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidTransition.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "delivered")
}

func TestOrderService_UpdateStatus_UnknownStatus(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateStatus(context.Background(), staffActor(), uuid.New(), &usecase.UpdateOrderStatusInput{
		Status: entity.OrderStatus("shipped"),
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_UpdateStatus_CustomerForbidden(t *testing.T) {
	fx := createTestOrderService(t)

	_, err := fx.service.UpdateStatus(context.Background(), customerActor(), uuid.New(), &usecase.UpdateOrderStatusInput{
		Status: entity.StatusPreparing,
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_DeleteOrder_AdminOnly(t *testing.T) {
	fx := createTestOrderService(t)

	err := fx.service.DeleteOrder(context.Background(), staffActor(), uuid.New())
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestOrderService_DeleteOrder_ItemsBeforeHeader(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	txOrderRepo := mockRepo.NewMockOrderRepository(t)
	expectTransaction(t, fx.txManager, txOrderRepo)

	var calls []string
	txOrderRepo.EXPECT().
		DeleteOrderItems(ctx, orderID).
		Run(func(_ context.Context, _ uuid.UUID) {
			calls = append(calls, "items")
		}).
		Return(nil)
	txOrderRepo.EXPECT().
		DeleteOrder(ctx, orderID).
		Run(func(_ context.Context, _ uuid.UUID) {
			calls = append(calls, "header")
		}).
		Return(nil)

	require.NoError(t, fx.service.DeleteOrder(ctx, adminActor(), orderID))
	assert.Equal(t, []string{"items", "header"}, calls)
}

func TestOrderService_TrackOrder_HidesContactDetails(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()
	updatedAt := time.Now().Add(-5 * time.Minute)

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{
			ID:              orderID,
			Status:          entity.StatusPreparing,
			CustomerName:    "Casey Jones",
			CustomerPhone:   "(555) 123-4567",
			CustomerAddress: "1 Main St",
			TotalAmount:     29.0,
			UpdatedAt:       updatedAt,
		}, nil)

	view, err := fx.service.TrackOrder(ctx, orderID)
	require.NoError(t, err)

	assert.Equal(t, orderID, view.ID)
	assert.Equal(t, entity.StatusPreparing, view.Status)
	require.NotNil(t, view.EstimatedDelivery)
	assert.Equal(t, updatedAt.Add(20*time.Minute), *view.EstimatedDelivery)
}

func TestOrderService_TrackOrder_PendingHasNoEstimate(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.StatusPending}, nil)

	view, err := fx.service.TrackOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Nil(t, view.EstimatedDelivery)
}

func TestOrderService_TrackOrder_ReadyHasEstimate(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()
	updatedAt := time.Now()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.StatusReady, UpdatedAt: updatedAt}, nil)

	view, err := fx.service.TrackOrder(ctx, orderID)
	require.NoError(t, err)
	require.NotNil(t, view.EstimatedDelivery)
	assert.Equal(t, updatedAt.Add(20*time.Minute), *view.EstimatedDelivery)
}

func TestOrderService_TrackOrder_TerminalHasNoEstimate(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.StatusDelivered}, nil)

	view, err := fx.service.TrackOrder(ctx, orderID)
	require.NoError(t, err)
	assert.Nil(t, view.EstimatedDelivery)
}

func TestOrderService_TrackingQR(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(&entity.Order{ID: orderID, Status: entity.StatusPending}, nil)
	fx.qrService.EXPECT().
		GenerateTrackingQR(orderID).
		Return([]byte{0x89, 0x50, 0x4e, 0x47}, nil)

	png, err := fx.service.TrackingQR(ctx, orderID)
	require.NoError(t, err)
	assert.NotEmpty(t, png)
}

func TestOrderService_TrackingQR_OrderNotFound(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	orderID := uuid.New()

	fx.orderRepo.EXPECT().
		FindOrderByID(ctx, orderID).
		Return(nil, repository.ErrOrderNotFound)

	_, err := fx.service.TrackingQR(ctx, orderID)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}
