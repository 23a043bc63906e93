package entity

import "github.com/google/uuid"

// Authorization rules are centralized here so usecases and the delivery
// layer consume one set of predicates instead of scattering role checks.

// CanManageOrders reports whether the role may transition order status.
func (r Role) CanManageOrders() bool {
	return r == RoleStaff || r == RoleAdmin
}

// CanManageProducts reports whether the role may create, edit, or delete menu entries.
func (r Role) CanManageProducts() bool {
	return r == RoleStaff || r == RoleAdmin
}

// CanDeleteOrders reports whether the role may use the administrative
// order-deletion escape hatch.
func (r Role) CanDeleteOrders() bool {
	return r == RoleAdmin
}

// CanViewOrder reports whether an actor may read a given order.
// Staff and admins see every order; customers only their own.
func CanViewOrder(role Role, orderUserID, actorID uuid.UUID) bool {
	if role.CanManageOrders() {
		return true
	}

	return orderUserID == actorID
}
