package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

const (
	MinCost = 10

	// MaxPasswordBytes is the bcrypt input limit.
	MaxPasswordBytes = 72
)

var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

type PasswordHasher struct {
	cost int
}

// NewPasswordHasher never goes below MinCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	return &PasswordHasher{cost: max(cost, MinCost)}
}

func (h *PasswordHasher) Hash(password string) (string, error) {
	if len(password) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Matches reports false for both a wrong password and a malformed hash.
func (h *PasswordHasher) Matches(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
