package postgres

import (
	"context"

	"bistro/internal/domain/entity"
	domainerrors "bistro/internal/domain/errors"
	"bistro/internal/domain/repository"
	"bistro/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

// CreateOrder persists a new order header.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	// Update the entity with generated values
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

// CreateOrderItems persists the line items of an order.
func (repo *orderRepository) CreateOrderItems(ctx context.Context, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}

	itemModels := make([]*model.OrderItemModel, 0, len(items))
	for i := range items {
		itemModels = append(itemModels, fromOrderItemDomain(&items[i]))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(itemModels, 100).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("duplicate order item")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("invalid order or product reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrOrderCreationFailed.WrapMessage("missing required order item information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order items")
	}

	return nil
}

// FindOrderByID retrieves an order with its items by its unique ID.
func (repo *orderRepository) FindOrderByID(ctx context.Context, orderID uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("id = ?", orderID).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// FindAllOrders retrieves every order with its items, newest first.
func (repo *orderRepository) FindAllOrders(ctx context.Context) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// FindOrdersByUser retrieves the orders placed by one user, newest first.
func (repo *orderRepository) FindOrdersByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find orders by user")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, nil
}

// UpdateOrderStatus persists a status change for an order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, status entity.OrderStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", orderID).
		Update("status", status.String())

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// DeleteOrderItems removes the line items of an order.
func (repo *orderRepository) DeleteOrderItems(ctx context.Context, orderID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Delete(&model.OrderItemModel{}).Error; err != nil {
		return errors.Wrap(err, "failed to delete order items")
	}

	return nil
}

// DeleteOrder removes the order header. Items must be deleted first.
func (repo *orderRepository) DeleteOrder(ctx context.Context, orderID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", orderID).
		Delete(&model.OrderModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete order")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	items := make([]entity.OrderItem, 0, len(data.Items))
	for i := range data.Items {
		items = append(items, *toOrderItemDomain(&data.Items[i]))
	}

	return &entity.Order{
		ID:              data.ID,
		Items:           items,
		Status:          entity.OrderStatus(data.Status),
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		CustomerAddress: data.CustomerAddress,
		TotalAmount:     data.TotalAmount,
		UserID:          data.UserID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
// Items are persisted separately via CreateOrderItems.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	return &model.OrderModel{
		ID:              data.ID,
		Status:          data.Status.String(),
		CustomerName:    data.CustomerName,
		CustomerPhone:   data.CustomerPhone,
		CustomerAddress: data.CustomerAddress,
		TotalAmount:     data.TotalAmount,
		UserID:          data.UserID,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		OrderID:             data.OrderID,
		ProductID:           data.ProductID,
		ProductName:         data.ProductName,
		Price:               data.Price,
		Quantity:            data.Quantity,
		SpecialInstructions: data.SpecialInstructions,
	}
}

// fromOrderItemDomain converts a domain OrderItem entity to a GORM OrderItemModel.
func fromOrderItemDomain(data *entity.OrderItem) *model.OrderItemModel {
	if data == nil {
		return nil
	}

	return &model.OrderItemModel{
		OrderID:             data.OrderID,
		ProductID:           data.ProductID,
		ProductName:         data.ProductName,
		Price:               data.Price,
		Quantity:            data.Quantity,
		SpecialInstructions: data.SpecialInstructions,
	}
}
