package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrong", hash))
}

func TestJWTRoundTrip(t *testing.T) {
	SetJWTSecret("test-secret")

	token, err := GenerateJWT(42, string(RoleProcessor), "proc@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseJWT(token)
	require.NoError(t, err)
	assert.Equal(t, uint64(42), claims.UserID)
	assert.Equal(t, string(RoleProcessor), claims.Role)
	assert.Equal(t, "proc@example.com", claims.Email)
}

func TestJWTMissingSecret(t *testing.T) {
	SetJWTSecret("")

	_, err := GenerateJWT(1, string(RoleFarmer), "f@example.com")
	assert.Error(t, err)

	_, err = ParseJWT("whatever")
	assert.Error(t, err)
}

func TestParseJWTInvalid(t *testing.T) {
	SetJWTSecret("test-secret")

	_, err := ParseJWT("not-a-token")
	assert.Error(t, err)
}

func TestValidRole(t *testing.T) {
	assert.True(t, ValidRole(RoleFarmer))
	assert.True(t, ValidRole(RoleCustomer))
	assert.False(t, ValidRole(Role("ADMIN")))
	assert.False(t, ValidRole(Role("")))
}
