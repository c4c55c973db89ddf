package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	token, err := GenerateAccessToken("user-1", "Doctor")
	assert.NoError(t, err)

	claims, err := ValidateToken(token, "Doctor", "Patient")
	assert.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "Doctor", claims.Role)
}

func TestValidateTokenRejectsWrongRole(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	token, err := GenerateAccessToken("user-1", "Patient")
	assert.NoError(t, err)

	_, err = ValidateToken(token, "Doctor")
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	t.Setenv("SYMMETRIC_KEY", "0123456789abcdef0123456789abcdef")

	_, err := ValidateToken("v2.local.not-a-real-token")
	assert.Error(t, err)
}
