package service_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerly/internal/config"
	"ledgerly/internal/domain"
	"ledgerly/internal/service"
)

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims *service.Claims) string {
	t.Helper()
	signed, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return signed
}

func validClaims(userID uuid.UUID) *service.Claims {
	return &service.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    "ledgerly-auth",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID: userID,
		Email:  "owner@example.com",
	}
}

func TestAuthService_ValidateToken_Success(t *testing.T) {
	svc := service.NewAuthService(config.JWTConfig{Secret: testSecret, Issuer: "ledgerly-auth"})
	userID := uuid.New()

	claims, err := svc.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID)))

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "owner@example.com", claims.Email)
}

func TestAuthService_ValidateToken_SubjectFallback(t *testing.T) {
	svc := service.NewAuthService(config.JWTConfig{Secret: testSecret})
	userID := uuid.New()
	c := validClaims(userID)
	c.UserID = uuid.Nil

	claims, err := svc.ValidateToken(signToken(t, jwt.SigningMethodHS256, []byte(testSecret), c))

	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestAuthService_ValidateToken_Rejected(t *testing.T) {
	userID := uuid.New()

	expired := validClaims(userID)
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	noIdentity := validClaims(userID)
	noIdentity.UserID = uuid.Nil
	noIdentity.Subject = "not-a-uuid"

	tests := []struct {
		name  string
		cfg   config.JWTConfig
		token func(t *testing.T) string
	}{
		{
			name: "wrong secret",
			cfg:  config.JWTConfig{Secret: testSecret},
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte("other-secret"), validClaims(userID))
			},
		},
		{
			name: "unexpected algorithm",
			cfg:  config.JWTConfig{Secret: testSecret},
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS512, []byte(testSecret), validClaims(userID))
			},
		},
		{
			name: "expired",
			cfg:  config.JWTConfig{Secret: testSecret},
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired)
			},
		},
		{
			name: "issuer mismatch",
			cfg:  config.JWTConfig{Secret: testSecret, Issuer: "someone-else"},
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims(userID))
			},
		},
		{
			name: "no user identity",
			cfg:  config.JWTConfig{Secret: testSecret},
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noIdentity)
			},
		},
		{
			name:  "garbage",
			cfg:   config.JWTConfig{Secret: testSecret},
			token: func(*testing.T) string { return "not.a.jwt" },
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := service.NewAuthService(tt.cfg)

			claims, err := svc.ValidateToken(tt.token(t))

			assert.Nil(t, claims)
			assert.ErrorIs(t, err, domain.ErrUnauthorized)
		})
	}
}
