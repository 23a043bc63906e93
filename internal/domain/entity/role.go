// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an actor can have in the system.
type Role string

const (
	// RoleCustomer indicates a regular ordering customer.
	RoleCustomer Role = "customer"
	// RoleStaff indicates kitchen/front-of-house staff.
	RoleStaff Role = "staff"
	// RoleAdmin indicates a restaurant administrator.
	RoleAdmin Role = "admin"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	default:
		return false
	}
}
