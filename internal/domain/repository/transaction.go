package repository

import (
	"context"
)

// TransactionManager defines the interface for managing database transactions
type TransactionManager interface {
	// Execute runs fn inside a transaction, committing on nil and rolling
	// back on error or panic. Repositories obtained from the factory are
	// bound to that transaction.
	Execute(ctx context.Context, fn func(factory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the active transaction.
type RepositoryFactory interface {
	// NewOrderRepository creates an order repository within the transaction
	NewOrderRepository() OrderRepository
	// NewProductRepository creates a product repository within the transaction
	NewProductRepository() ProductRepository
}
