package entity

import "github.com/google/uuid"

// Actor is the authenticated (or anonymous) party performing an action.
// Identity is supplied by the external auth collaborator; the core only
// consumes the id and role it hands over.
type Actor struct {
	ID   uuid.UUID
	Name string
	Role Role
}

// IsAuthenticated reports whether the actor carries a real identity.
func (a Actor) IsAuthenticated() bool {
	return a.ID != uuid.Nil
}
