package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"krishiseva/internal/apperror"
	"krishiseva/internal/models"
	"krishiseva/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test_jwt_secret"

func TestTokenService_RoundTrip(t *testing.T) {
	tokens := services.NewTokenService(testJWTSecret, 24*time.Hour)

	token, err := tokens.Issue("user-123", "asha@example.com", models.RoleBuyer)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", identity.UserID)
	assert.Equal(t, "asha@example.com", identity.Email)
	assert.Equal(t, models.RoleBuyer, identity.Role)
}

func TestTokenService_Expiry(t *testing.T) {
	issuedAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	clock := issuedAt
	tokens := services.NewTokenService(testJWTSecret, 24*time.Hour).
		WithClock(func() time.Time { return clock })

	token, err := tokens.Issue("user-123", "asha@example.com", models.RoleSeller)
	require.NoError(t, err)

	clock = issuedAt.Add(24*time.Hour - time.Second)
	_, err = tokens.Verify(token)
	assert.NoError(t, err)

	clock = issuedAt.Add(24 * time.Hour)
	_, err = tokens.Verify(token)
	require.Error(t, err)
	assert.True(t, apperror.Is(err, apperror.TokenExpired))
	assert.Equal(t, "Token has expired. Please login again.", apperror.PublicMessage(err, ""))
}

func TestTokenService_Invalid(t *testing.T) {
	tokens := services.NewTokenService(testJWTSecret, time.Hour)

	// Garbage
	_, err := tokens.Verify("invalid.token.string")
	assert.True(t, apperror.Is(err, apperror.TokenInvalid))

	// Wrong secret
	other := services.NewTokenService("another_secret", time.Hour)
	foreign, err := other.Issue("user-123", "asha@example.com", models.RoleBuyer)
	require.NoError(t, err)
	_, err = tokens.Verify(foreign)
	assert.True(t, apperror.Is(err, apperror.TokenInvalid))

	// Tampered payload
	valid, err := tokens.Issue("user-123", "asha@example.com", models.RoleBuyer)
	require.NoError(t, err)
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)
	parts[1] = jwt.EncodeSegment([]byte(fmt.Sprintf(`{"id":"someone-else","exp":%d}`, time.Now().Add(time.Hour).Unix())))
	_, err = tokens.Verify(strings.Join(parts, "."))
	assert.True(t, apperror.Is(err, apperror.TokenInvalid))

	// Unexpected signing method
	none := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{
		"id":  "user-123",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	noneString, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = tokens.Verify(noneString)
	assert.True(t, apperror.Is(err, apperror.TokenInvalid))

	// Missing expiry
	noExp := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"id": "user-123"})
	noExpString, err := noExp.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	_, err = tokens.Verify(noExpString)
	assert.True(t, apperror.Is(err, apperror.TokenInvalid))
}
