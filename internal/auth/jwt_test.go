package auth

import (
	"testing"
	"time"

	"flowdeck-api/internal/config"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JwtKey:           []byte("test_jwt_secret_key_for_testing_only"),
		JwtIssuer:        "flowdeck-api",
		JwtAudience:      "flowdeck-app",
		JwtExpiryMinutes: 60,
	}
}

func TestGenerateAndParseToken(t *testing.T) {
	service := NewTokenService(testConfig())

	tokenStr, err := service.GenerateToken(42, "ann")
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, userID, err := service.ParseToken(tokenStr)
	require.NoError(t, err)

	assert.Equal(t, int64(42), userID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, "ann", claims.Username)
	assert.Equal(t, "flowdeck-api", claims.Issuer)
	assert.Equal(t, "flowdeck-app", claims.Audience)
	assert.NotEmpty(t, claims.Id)

	expectedExpiry := time.Now().Add(60 * time.Minute).Unix()
	assert.InDelta(t, expectedExpiry, claims.ExpiresAt, 5)
}

func TestTokenIDUniquePerIssuance(t *testing.T) {
	service := NewTokenService(testConfig())

	first, err := service.GenerateToken(1, "admin")
	require.NoError(t, err)
	second, err := service.GenerateToken(1, "admin")
	require.NoError(t, err)

	firstClaims, _, err := service.ParseToken(first)
	require.NoError(t, err)
	secondClaims, _, err := service.ParseToken(second)
	require.NoError(t, err)

	assert.NotEqual(t, firstClaims.Id, secondClaims.Id)
}

func TestParseTokenRejectsWrongKey(t *testing.T) {
	service := NewTokenService(testConfig())
	tokenStr, err := service.GenerateToken(1, "admin")
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.JwtKey = []byte("a_completely_different_secret_key")
	other := NewTokenService(otherCfg)

	_, _, err = other.ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestParseTokenRejectsWrongIssuerAndAudience(t *testing.T) {
	service := NewTokenService(testConfig())
	tokenStr, err := service.GenerateToken(1, "admin")
	require.NoError(t, err)

	issuerCfg := testConfig()
	issuerCfg.JwtIssuer = "someone-else"
	_, _, err = NewTokenService(issuerCfg).ParseToken(tokenStr)
	assert.Error(t, err)

	audienceCfg := testConfig()
	audienceCfg.JwtAudience = "other-app"
	_, _, err = NewTokenService(audienceCfg).ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestParseTokenRejectsExpired(t *testing.T) {
	cfg := testConfig()
	service := NewTokenService(cfg)

	claims := &Claims{
		Username: "admin",
		StandardClaims: jwt.StandardClaims{
			Subject:   "1",
			Id:        "test-jti",
			Issuer:    cfg.JwtIssuer,
			Audience:  cfg.JwtAudience,
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
			ExpiresAt: time.Now().Add(-1 * time.Hour).Unix(),
		},
	}
	tokenStr, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(cfg.JwtKey)
	require.NoError(t, err)

	_, _, err = service.ParseToken(tokenStr)
	assert.Error(t, err)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	service := NewTokenService(testConfig())
	_, _, err := service.ParseToken("not.a.token")
	assert.Error(t, err)
}
