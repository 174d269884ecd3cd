package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/coursecat/api/internal/pkg/apperrors"
)

// Şifre hash'leme maliyeti
const BcryptCost = 12

// HashPassword hashes a plaintext password with a fresh random salt.
// The same plaintext yields a different hash on every call.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
// Returns (false, nil) on a plain mismatch and ErrInvalidHashFormat when
// the stored value is not a valid bcrypt hash.
func CheckPassword(hashedPassword, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return false, nil
	}
	return false, apperrors.ErrInvalidHashFormat
}
