package service

import (
	"bistro/internal/domain/entity"
)

// TokenService defines the interface for token generation and validation
type TokenService interface {
	// GenerateToken creates a signed token carrying the actor's identity and role.
	GenerateToken(actor entity.Actor) (string, error)
	// ValidateToken parses and verifies a token, returning the actor it encodes.
	ValidateToken(tokenString string) (*entity.Actor, error)
}
