package service

import (
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"etree.io/etree/internal/config"
	apperrors "etree.io/etree/internal/pkg/errors"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("S3cret!pass")
	require.NoError(t, err)
	assert.NotEqual(t, "S3cret!pass", hash)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, passwordHashCost, cost)

	assert.True(t, CheckPassword(hash, "S3cret!pass"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "S3cret!pass"))
}

func TestValidatePassword(t *testing.T) {
	strict := config.PasswordPolicy{
		MinLength:        8,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigit:     true,
		RequireSpecial:   true,
	}

	tests := []struct {
		name     string
		policy   config.PasswordPolicy
		password string
		wantErr  bool
	}{
		{"satisfies strict policy", strict, "Abcdef1!", false},
		{"too short", strict, "Ab1!", true},
		{"missing uppercase", strict, "abcdef1!", true},
		{"missing lowercase", strict, "ABCDEF1!", true},
		{"missing digit", strict, "Abcdefg!", true},
		{"missing special", strict, "Abcdefg1", true},
		{
			name:     "lenient policy accepts simple password",
			policy:   config.PasswordPolicy{MinLength: 4},
			password: "abcd",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.policy, tt.password)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			assertAppErrorCode(t, err, apperrors.ErrWeakPassword.Code)
		})
	}
}

func TestGenerateRandomPassword(t *testing.T) {
	pw, err := GenerateRandomPassword(16)
	require.NoError(t, err)
	assert.Len(t, pw, 16)

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			hasSpecial = true
		}
	}
	assert.True(t, hasUpper, "expected an uppercase letter in %q", pw)
	assert.True(t, hasLower, "expected a lowercase letter in %q", pw)
	assert.True(t, hasDigit, "expected a digit in %q", pw)
	assert.True(t, hasSpecial, "expected a special character in %q", pw)

	// requested lengths below the floor are raised to it
	short, err := GenerateRandomPassword(4)
	require.NoError(t, err)
	assert.Len(t, short, 8)

	other, err := GenerateRandomPassword(16)
	require.NoError(t, err)
	assert.NotEqual(t, pw, other)
}

func TestGenerateOTPCode(t *testing.T) {
	for range 20 {
		code, err := GenerateOTPCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		for _, r := range code {
			assert.True(t, unicode.IsDigit(r), "code %q contains non-digit", code)
		}
	}
}

func TestGenerateRandomPassword_Charset(t *testing.T) {
	pw, err := GenerateRandomPassword(64)
	require.NoError(t, err)
	allowed := upperChars + lowerChars + digitChars + specialChars
	for _, r := range pw {
		assert.True(t, strings.ContainsRune(allowed, r), "unexpected character %q", r)
	}
}
