package auth

import (
	"testing"
	"time"

	"bistro/config"
	"bistro/internal/domain/entity"
	"bistro/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenService(t *testing.T) service.TokenService {
	svc, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Access: "test-secret"},
		Auth:      &config.AuthConfig{AccessTokenTTL: time.Hour},
	})
	require.NoError(t, err)

	return svc
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	_, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	svc := newTestTokenService(t)
	actor := entity.Actor{
		ID:   uuid.New(),
		Name: "Sam",
		Role: entity.RoleStaff,
	}

	token, err := svc.GenerateToken(actor)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, actor.ID, parsed.ID)
	assert.Equal(t, actor.Name, parsed.Name)
	assert.Equal(t, actor.Role, parsed.Role)
}

func TestJWTService_ValidateToken_RejectsGarbage(t *testing.T) {
	svc := newTestTokenService(t)

	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsWrongSecret(t *testing.T) {
	svc := newTestTokenService(t)

	other, err := NewJWTService(&config.Config{
		SecretKey: config.SecretKey{Access: "different-secret"},
	})
	require.NoError(t, err)

	token, err := other.GenerateToken(entity.Actor{ID: uuid.New(), Role: entity.RoleCustomer})
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsUnknownRole(t *testing.T) {
	svc := newTestTokenService(t)

	claims := jwt.MapClaims{
		"sub":  uuid.New().String(),
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
		"name": "Sam",
		"role": "superuser",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTService_ValidateToken_RejectsExpired(t *testing.T) {
	svc := newTestTokenService(t)

	claims := jwt.MapClaims{
		"sub":  uuid.New().String(),
		"iat":  time.Now().Add(-2 * time.Hour).Unix(),
		"exp":  time.Now().Add(-time.Hour).Unix(),
		"name": "Sam",
		"role": entity.RoleCustomer.String(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = svc.ValidateToken(token)
	assert.Error(t, err)
}
