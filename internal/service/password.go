package service

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"etree.io/etree/internal/config"
	apperrors "etree.io/etree/internal/pkg/errors"
)

const passwordHashCost = 12

// HashPassword hashes a password using bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// ValidatePassword checks a candidate password against the configured policy.
// Returns an AppError listing the first unmet requirement.
func ValidatePassword(policy config.PasswordPolicy, password string) error {
	if len(password) < policy.MinLength {
		return apperrors.ErrWeakPassword.WithMessagef(
			"password must be at least %d characters long", policy.MinLength)
	}

	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
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

	switch {
	case policy.RequireUppercase && !hasUpper:
		return apperrors.ErrWeakPassword.WithMessage("password must contain an uppercase letter")
	case policy.RequireLowercase && !hasLower:
		return apperrors.ErrWeakPassword.WithMessage("password must contain a lowercase letter")
	case policy.RequireDigit && !hasDigit:
		return apperrors.ErrWeakPassword.WithMessage("password must contain a digit")
	case policy.RequireSpecial && !hasSpecial:
		return apperrors.ErrWeakPassword.WithMessage("password must contain a special character")
	}
	return nil
}

const (
	upperChars   = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowerChars   = "abcdefghijklmnopqrstuvwxyz"
	digitChars   = "0123456789"
	specialChars = "!@#$%^&*"
)

// GenerateRandomPassword produces a random password that satisfies the
// strictest policy: one character from each class plus random filler.
func GenerateRandomPassword(length int) (string, error) {
	if length < 8 {
		length = 8
	}
	all := upperChars + lowerChars + digitChars + specialChars

	var b strings.Builder
	for _, set := range []string{upperChars, lowerChars, digitChars, specialChars} {
		ch, err := randomChar(set)
		if err != nil {
			return "", err
		}
		b.WriteByte(ch)
	}
	for b.Len() < length {
		ch, err := randomChar(all)
		if err != nil {
			return "", err
		}
		b.WriteByte(ch)
	}

	// Shuffle so the class characters are not always in front.
	chars := []byte(b.String())
	for i := len(chars) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", fmt.Errorf("shuffle password: %w", err)
		}
		chars[i], chars[j.Int64()] = chars[j.Int64()], chars[i]
	}
	return string(chars), nil
}

// GenerateOTPCode produces a 6-digit one-time code.
func GenerateOTPCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

func randomChar(set string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(set))))
	if err != nil {
		return 0, fmt.Errorf("random char: %w", err)
	}
	return set[n.Int64()], nil
}
