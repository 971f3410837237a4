package authutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiring-hare-backend/config"
)

func initTestConfig() {
	conf := new(config.Configuration)
	conf.Auth.JWTSecret = "unit-test-secret"
	conf.Auth.JWTExpireInSec = 3600
	conf.Auth.JWTRefreshExpireInSec = 86400
	config.Conf = conf
}

func TestTokenRoundTrip(t *testing.T) {
	initTestConfig()

	token, err := GetToken("user-1", "Jane Doe")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims["sub"])
	assert.Equal(t, "Jane Doe", claims["name"])
	assert.Equal(t, TokenTypeAccess, claims["type"])
}

func TestRefreshTokenType(t *testing.T) {
	initTestConfig()

	token, err := GetRefreshToken("user-1", "Jane Doe")
	require.NoError(t, err)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims["type"])
}

func TestParseRejectsWrongSecret(t *testing.T) {
	initTestConfig()
	token, err := GetToken("user-1", "Jane Doe")
	require.NoError(t, err)

	config.Conf.Auth.JWTSecret = "another-secret"
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, CheckPassword("s3cret-pass", hash))
	assert.False(t, CheckPassword("wrong-pass", hash))
}
