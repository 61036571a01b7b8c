package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shenikar/travel_tracking_system/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		JWTIssuer: "travel-tracking",
		JWTTTL:    time.Hour,
	}
}

func TestGenerateAndParseAccessToken(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	token, err := GenerateAccessToken(cfg, userID, true)
	require.NoError(t, err)

	claims, err := ParseAccessToken(cfg, token)
	require.NoError(t, err)

	id, err := claims.UserUUID()
	require.NoError(t, err)
	assert.Equal(t, userID, id)
	assert.True(t, claims.IsAdmin)
}

func TestParseAccessToken_WrongSecret(t *testing.T) {
	token, err := GenerateAccessToken(testConfig(), uuid.New(), false)
	require.NoError(t, err)

	other := testConfig()
	other.JWTSecret = "another-secret"

	_, err = ParseAccessToken(other, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_Expired(t *testing.T) {
	cfg := testConfig()
	cfg.JWTTTL = -time.Minute

	token, err := GenerateAccessToken(cfg, uuid.New(), false)
	require.NoError(t, err)

	_, err = ParseAccessToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_WrongIssuer(t *testing.T) {
	cfg := testConfig()
	token, err := GenerateAccessToken(cfg, uuid.New(), false)
	require.NoError(t, err)

	cfg.JWTIssuer = "someone-else"
	_, err = ParseAccessToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseAccessToken_NonUUIDUser(t *testing.T) {
	cfg := testConfig()
	claims := Claims{
		UserID: "42",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    cfg.JWTIssuer,
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.JWTSecret))
	require.NoError(t, err)

	_, err = ParseAccessToken(cfg, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
