package services

import (
	"testing"
	"time"

	"hrms-http-service/config"
	"hrms-http-service/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(secret string) InterfaceJWTService {
	return NewJWTService(&config.Config{JWTSecretKey: secret})
}

func TestJWTGenerateAndExtractClaims(t *testing.T) {
	svc := newTestJWTService("unit-test-secret")

	admin := &models.Admin{Username: "admin"}
	admin.ID = 7

	token, err := svc.GenerateToken(admin)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "admin", claims.Role)
	assert.NotEmpty(t, claims.ID, "every token carries a jti for the logout blacklist")

	// Expiry sits roughly one day out
	remaining := time.Until(claims.ExpiresAt.Time)
	assert.Greater(t, remaining, 23*time.Hour)
	assert.LessOrEqual(t, remaining, 24*time.Hour)
}

func TestJWTUniqueTokenIDs(t *testing.T) {
	svc := newTestJWTService("unit-test-secret")
	admin := &models.Admin{Username: "admin"}
	admin.ID = 1

	first, err := svc.GenerateToken(admin)
	require.NoError(t, err)
	second, err := svc.GenerateToken(admin)
	require.NoError(t, err)

	firstClaims, err := svc.ExtractClaims(first)
	require.NoError(t, err)
	secondClaims, err := svc.ExtractClaims(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.ID, secondClaims.ID)
}

func TestJWTRejectsWrongSecret(t *testing.T) {
	issuer := newTestJWTService("right-secret")
	verifier := newTestJWTService("wrong-secret")

	admin := &models.Admin{Username: "admin"}
	admin.ID = 1

	token, err := issuer.GenerateToken(admin)
	require.NoError(t, err)

	_, err = verifier.ExtractClaims(token)
	assert.Error(t, err)
}

func TestJWTRejectsMalformedToken(t *testing.T) {
	svc := newTestJWTService("unit-test-secret")

	_, err := svc.ExtractClaims("not.a.token")
	assert.Error(t, err)
}
