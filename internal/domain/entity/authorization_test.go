package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRole_CanManageOrders(t *testing.T) {
	assert.True(t, RoleStaff.CanManageOrders())
	assert.True(t, RoleAdmin.CanManageOrders())
	assert.False(t, RoleCustomer.CanManageOrders())
}

func TestRole_CanManageProducts(t *testing.T) {
	assert.True(t, RoleStaff.CanManageProducts())
	assert.True(t, RoleAdmin.CanManageProducts())
	assert.False(t, RoleCustomer.CanManageProducts())
}

func TestRole_CanDeleteOrders(t *testing.T) {
	assert.True(t, RoleAdmin.CanDeleteOrders())
	assert.False(t, RoleStaff.CanDeleteOrders())
	assert.False(t, RoleCustomer.CanDeleteOrders())
}

func TestCanViewOrder(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()

	assert.True(t, CanViewOrder(RoleStaff, owner, stranger))
	assert.True(t, CanViewOrder(RoleAdmin, owner, stranger))
	assert.True(t, CanViewOrder(RoleCustomer, owner, owner))
	assert.False(t, CanViewOrder(RoleCustomer, owner, stranger))
}
