package auth

import (
	"fmt"

	"github.com/openhire/go-jobboard/apperrors"
	"golang.org/x/crypto/bcrypt"
)

// HashCost balances login latency against brute-force resistance.
const HashCost = 12

// HashPassword hashes a plaintext password with bcrypt.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword compares a plaintext password against a stored hash. A
// mismatch comes back as ErrUnauthorized so callers never distinguish a bad
// password from a missing user.
func CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return apperrors.ErrUnauthorized
	}
	return nil
}
