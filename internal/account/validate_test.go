package account

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "jean@example.com", normalizeEmail("  Jean@Example.COM "))
	assert.Equal(t, "", normalizeEmail("   "))
}

func TestValidateEmail(t *testing.T) {
	assert.NoError(t, validateEmail("jean.dupont@example.com"))
	assert.NoError(t, validateEmail("a@b.co"))

	for _, email := range []string{"", "plain", "a@b", "a b@c.fr", "a@b c.fr", "@example.com"} {
		err := validateEmail(email)
		assert.True(t, IsValidation(err), "validateEmail(%q)", email)
	}
}

func TestValidateSignInPassword(t *testing.T) {
	assert.NoError(t, validateSignInPassword("123456"))
	assert.True(t, IsValidation(validateSignInPassword("12345")))
}

func TestValidateNewPassword(t *testing.T) {
	assert.NoError(t, validateNewPassword("abcdefg1"))
	assert.NoError(t, validateNewPassword("motdepasse9"))

	assert.True(t, IsValidation(validateNewPassword("short1")), "too short")
	assert.True(t, IsValidation(validateNewPassword("12345678")), "no letter")
	assert.True(t, IsValidation(validateNewPassword("abcdefgh")), "no digit")
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Jean Dupont", displayName("jean dupont", "jean@example.com"))
	assert.Equal(t, "Marie", displayName("", "marie@example.com"))
	assert.Equal(t, "Utilisateur 2TA", displayName("", "@example.com"))
}

func TestErrorPredicates(t *testing.T) {
	assert.True(t, IsValidation(validationError("m")))
	assert.True(t, IsAuthorization(authorizationError("m")))
	assert.True(t, IsNotFound(notFoundError("m")))

	assert.False(t, IsValidation(authorizationError("m")))
	assert.False(t, IsValidation(nil))
	assert.False(t, IsAuthorization(assert.AnError))

	assert.Equal(t, "m", validationError("m").Error())
}
