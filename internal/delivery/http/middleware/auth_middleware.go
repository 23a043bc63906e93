package middleware

import (
	"net/http"
	"strings"

	"bistro/internal/domain/entity"
	"bistro/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// actorContextKey is the echo context key holding the authenticated actor.
const actorContextKey = "actor"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the JWT access token and stores the actor on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, err := m.actorFromRequest(c)
		if err != nil {
			return err
		}
		if actor == nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		c.Set(actorContextKey, *actor)

		return next(c)
	}
}

// RequireOrderManager gates a route behind roles that may run the kitchen.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireOrderManager(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !ActorFromContext(c).Role.CanManageOrders() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: staff role required"})
		}

		return next(c)
	}
}

// RequireProductManager gates a route behind roles that may edit the menu.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireProductManager(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !ActorFromContext(c).Role.CanManageProducts() {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: staff role required"})
		}

		return next(c)
	}
}

// ActorFromContext returns the actor stored by the auth middleware. Routes
// without auth middleware yield an anonymous customer.
func ActorFromContext(c echo.Context) entity.Actor {
	if actor, ok := c.Get(actorContextKey).(entity.Actor); ok {
		return actor
	}

	return entity.Actor{Role: entity.RoleCustomer}
}

// actorFromRequest extracts and validates the bearer token, returning nil
// when no Authorization header is present.
func (m *AuthMiddleware) actorFromRequest(c echo.Context) (*entity.Actor, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
	}

	actor, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
	}

	return actor, nil
}
