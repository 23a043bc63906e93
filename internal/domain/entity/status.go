package entity

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	// StatusPending is the initial state of every placed order.
	StatusPending OrderStatus = "pending"
	// StatusPreparing means the kitchen has accepted the order.
	StatusPreparing OrderStatus = "preparing"
	// StatusReady means the order is ready for pickup/delivery.
	StatusReady OrderStatus = "ready"
	// StatusDelivered is a terminal state.
	StatusDelivered OrderStatus = "delivered"
	// StatusCancelled is a terminal state reachable from any non-terminal state.
	StatusCancelled OrderStatus = "cancelled"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further transition is defined out of s.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// CanTransitionTo reports whether the status machine defines an edge from s to target.
// The machine moves strictly forward (pending -> preparing -> ready -> delivered)
// and allows cancellation from every non-terminal state.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	switch s {
	case StatusPending:
		return target == StatusPreparing || target == StatusCancelled
	case StatusPreparing:
		return target == StatusReady || target == StatusCancelled
	case StatusReady:
		return target == StatusDelivered || target == StatusCancelled
	default:
		return false
	}
}
