package impl

import (
	"context"
	"log/slog"
	"time"

	"bistro/config"
	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/domain/service"
	"bistro/internal/usecase"
	"bistro/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// orderService implements the OrderUsecase interface.
type orderService struct {
	txManager repository.TransactionManager
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	qrService service.QRCodeService
	cfg       *config.Config
	logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(
	txManager repository.TransactionManager,
	orderRepo repository.OrderRepository,
	cartRepo repository.CartRepository,
	qrService service.QRCodeService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		txManager: txManager,
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		qrService: qrService,
		cfg:       cfg,
		logger:    logger,
	}
}

// PlaceOrder turns the session cart into a pending order. The order header
// and its items are written in one transaction; the cart is cleared only
// after the transaction commits.
func (srv *orderService) PlaceOrder(ctx context.Context, actor entity.Actor, sessionID string, input *usecase.PlaceOrderInput) (*entity.Order, error) {
	// 1. Checkout requires a signed-in actor; every order belongs to a user
	if !actor.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	// 2. Load the cart; an empty cart never reaches the database
	cart, err := srv.cartRepo.LoadCart(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart")
	}
	if cart.IsEmpty() {
		return nil, domainerrors.ErrEmptyCart
	}

	// 3. Build the order snapshot from the cart
	now := time.Now()
	order := &entity.Order{
		ID:              uuid.New(),
		Status:          entity.StatusPending,
		CustomerName:    input.CustomerName,
		CustomerPhone:   util.FormatPhoneNumber(input.CustomerPhone),
		CustomerAddress: input.CustomerAddress,
		TotalAmount:     cart.Total(),
		UserID:          actor.ID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	items := make([]entity.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, entity.OrderItem{
			OrderID:             order.ID,
			ProductID:           line.ProductID,
			ProductName:         line.Name,
			Price:               line.Price,
			Quantity:            line.Quantity,
			SpecialInstructions: line.SpecialInstructions,
		})
	}
	order.Items = items

	// 4. Persist header and items atomically
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		if err := orderRepo.CreateOrder(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		if err := orderRepo.CreateOrderItems(ctx, order.Items); err != nil {
			return errors.Wrap(err, "failed to create order items")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to place order")
	}

	// 5. Clear the cart. The order is already committed, so a failure here
	// only leaves a stale cart behind; it expires with its TTL.
	if err := srv.cartRepo.DeleteCart(ctx, sessionID); err != nil {
		srv.logger.Warn("Failed to clear cart after checkout",
			"sessionId", sessionID,
			"orderId", order.ID,
			"error", err,
		)
	}

	srv.logger.Info("Order placed",
		"orderId", order.ID,
		"totalAmount", order.TotalAmount,
		"itemCount", len(order.Items),
	)

	return order, nil
}

// GetOrder retrieves one order, subject to the actor's visibility.
func (srv *orderService) GetOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	if !entity.CanViewOrder(actor.Role, order.UserID, actor.ID) {
		return nil, domainerrors.ErrForbidden
	}

	return order, nil
}

// ListOrders returns the orders the actor may see, newest first. Staff and
// admins see every order; customers only their own.
func (srv *orderService) ListOrders(ctx context.Context, actor entity.Actor) ([]*entity.Order, error) {
	if !actor.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}

	if actor.Role.CanManageOrders() {
		orders, err := srv.orderRepo.FindAllOrders(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "failed to list orders")
		}

		return orders, nil
	}

	orders, err := srv.orderRepo.FindOrdersByUser(ctx, actor.ID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders by user")
	}

	return orders, nil
}

// UpdateStatus applies a lifecycle transition to an order.
func (srv *orderService) UpdateStatus(ctx context.Context, actor entity.Actor, orderID uuid.UUID, input *usecase.UpdateOrderStatusInput) (*entity.Order, error) {
	if !actor.IsAuthenticated() {
		return nil, domainerrors.ErrUnauthenticated
	}
	if !actor.Role.CanManageOrders() {
		return nil, domainerrors.ErrForbidden
	}

	if !input.Status.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown order status")
	}

	var updated *entity.Order

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		// 1. Load the current state inside the transaction
		order, err := orderRepo.FindOrderByID(ctx, orderID)
		if err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to find order")
		}

		// 2. Enforce the lifecycle state machine
		if !order.Status.CanTransitionTo(input.Status) {
			return domainerrors.ErrInvalidTransition.WithDetails(
				"cannot move from " + order.Status.String() + " to " + input.Status.String(),
			)
		}

		// 3. Persist the transition
		if err := orderRepo.UpdateOrderStatus(ctx, orderID, input.Status); err != nil {
			return errors.Wrap(err, "failed to update order status")
		}

		order.Status = input.Status
		order.UpdatedAt = time.Now()
		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.logger.Info("Order status updated",
		"orderId", orderID,
		"status", input.Status,
	)

	return updated, nil
}

// DeleteOrder removes an order and its items. Admins only. Items go first so
// the header never dangles.
func (srv *orderService) DeleteOrder(ctx context.Context, actor entity.Actor, orderID uuid.UUID) error {
	if !actor.IsAuthenticated() {
		return domainerrors.ErrUnauthenticated
	}
	if !actor.Role.CanDeleteOrders() {
		return domainerrors.ErrForbidden
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		orderRepo := repoFactory.NewOrderRepository()

		if err := orderRepo.DeleteOrderItems(ctx, orderID); err != nil {
			return errors.Wrap(err, "failed to delete order items")
		}

		if err := orderRepo.DeleteOrder(ctx, orderID); err != nil {
			if errors.Is(err, repository.ErrOrderNotFound) {
				return domainerrors.ErrOrderNotFound
			}

			return errors.Wrap(err, "failed to delete order")
		}

		return nil
	})
	if err != nil {
		return err
	}

	srv.logger.Info("Order deleted", "orderId", orderID)

	return nil
}

// TrackOrder returns the public tracking projection of an order. Contact
// details stay private.
func (srv *orderService) TrackOrder(ctx context.Context, orderID uuid.UUID) (*usecase.OrderTrackingView, error) {
	order, err := srv.orderRepo.FindOrderByID(ctx, orderID)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	view := &usecase.OrderTrackingView{
		ID:          order.ID,
		Status:      order.Status,
		Items:       order.Items,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
	}

	// An estimate exists only while the kitchen is working on the order.
	// Pending orders have not been accepted yet; terminal ones are done.
	if order.Status == entity.StatusPreparing || order.Status == entity.StatusReady {
		estimated := order.UpdatedAt.Add(srv.cfg.Orders.EstimatedDelivery)
		view.EstimatedDelivery = &estimated
	}

	return view, nil
}

// TrackingQR renders a PNG QR code linking to the order's tracking page.
func (srv *orderService) TrackingQR(ctx context.Context, orderID uuid.UUID) ([]byte, error) {
	// Only mint codes for orders that exist.
	if _, err := srv.orderRepo.FindOrderByID(ctx, orderID); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order")
	}

	png, err := srv.qrService.GenerateTrackingQR(orderID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tracking QR code")
	}

	return png, nil
}
