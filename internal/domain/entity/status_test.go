package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_IsValid(t *testing.T) {
	valid := []OrderStatus{StatusPending, StatusPreparing, StatusReady, StatusDelivered, StatusCancelled}
	for _, s := range valid {
		assert.True(t, s.IsValid(), "expected %s to be valid", s)
	}

	assert.False(t, OrderStatus("shipped").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.True(t, StatusDelivered.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusPreparing.IsTerminal())
	assert.False(t, StatusReady.IsTerminal())
}

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{name: "pending to preparing", from: StatusPending, to: StatusPreparing, allowed: true},
		{name: "pending to cancelled", from: StatusPending, to: StatusCancelled, allowed: true},
		{name: "pending to ready skips a step", from: StatusPending, to: StatusReady, allowed: false},
		{name: "pending to delivered skips steps", from: StatusPending, to: StatusDelivered, allowed: false},
		{name: "preparing to ready", from: StatusPreparing, to: StatusReady, allowed: true},
		{name: "preparing to cancelled", from: StatusPreparing, to: StatusCancelled, allowed: true},
		{name: "preparing back to pending", from: StatusPreparing, to: StatusPending, allowed: false},
		{name: "ready to delivered", from: StatusReady, to: StatusDelivered, allowed: true},
		{name: "ready to cancelled", from: StatusReady, to: StatusCancelled, allowed: true},
		{name: "ready back to preparing", from: StatusReady, to: StatusPreparing, allowed: false},
		{name: "delivered is terminal", from: StatusDelivered, to: StatusPreparing, allowed: false},
		{name: "delivered cannot cancel", from: StatusDelivered, to: StatusCancelled, allowed: false},
		{name: "cancelled is terminal", from: StatusCancelled, to: StatusPending, allowed: false},
		{name: "no self transition", from: StatusPending, to: StatusPending, allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}
