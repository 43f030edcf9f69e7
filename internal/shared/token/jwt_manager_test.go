package token_test

import (
	"testing"
	"time"

	"github.com/ogeoseo/go-api-server/internal/shared/testutil"
	"github.com/ogeoseo/go-api-server/internal/shared/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken_AccessRoundTrip(t *testing.T) {
	// Given: A manager with the test signing secret
	manager := token.NewJWTManager(testutil.NewTestConfig())

	// When: Generate an access token and validate it
	tokenString, err := manager.GenerateAccessToken("u1", "seoyeon.kim@skku.edu")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(tokenString)

	// Then: The claims round-trip intact
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, "seoyeon.kim@skku.edu", claims.Email)
	assert.Equal(t, token.ACCESS, claims.TokenType)
	assert.Equal(t, "ogeoseo-api-test", claims.Issuer)
}

func TestValidateToken_RefreshTokenType(t *testing.T) {
	// Given: A manager with the test signing secret
	manager := token.NewJWTManager(testutil.NewTestConfig())

	// When: Generate a refresh token and validate it
	tokenString, err := manager.GenerateRefreshToken("u2", "junho.lee@skku.edu")
	require.NoError(t, err)

	claims, err := manager.ValidateToken(tokenString)

	// Then: The token carries the refresh type
	require.NoError(t, err)
	assert.Equal(t, token.REFRESH, claims.TokenType)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	// Given: A token signed under a different secret
	signer := token.NewJWTManager(testutil.NewTestConfig())
	tokenString, err := signer.GenerateAccessToken("u1", "seoyeon.kim@skku.edu")
	require.NoError(t, err)

	otherConfig := testutil.NewTestConfig()
	otherConfig.JWT.Secret = "another-jwt-secret-key-that-is-also-32-characters"
	verifier := token.NewJWTManager(otherConfig)

	// When: Validate with the mismatched manager
	claims, err := verifier.ValidateToken(tokenString)

	// Then: The token is rejected
	assert.ErrorIs(t, err, token.ErrInvalidToken)
	assert.Nil(t, claims)
}

func TestValidateToken_Expired(t *testing.T) {
	// Given: A manager that issues already-expired tokens
	cfg := testutil.NewTestConfig()
	cfg.JWT.Expiry = -time.Minute
	manager := token.NewJWTManager(cfg)

	tokenString, err := manager.GenerateAccessToken("u1", "seoyeon.kim@skku.edu")
	require.NoError(t, err)

	// When: Validate the stale token
	claims, err := manager.ValidateToken(tokenString)

	// Then: Expiry is reported as such
	assert.ErrorIs(t, err, token.ErrExpiredToken)
	assert.Nil(t, claims)
}

func TestValidateToken_Garbage(t *testing.T) {
	// Given: A manager with the test signing secret
	manager := token.NewJWTManager(testutil.NewTestConfig())

	// When: Validate something that is not a JWT
	claims, err := manager.ValidateToken("not-a-token")

	// Then: The token is rejected
	assert.ErrorIs(t, err, token.ErrInvalidToken)
	assert.Nil(t, claims)
}
