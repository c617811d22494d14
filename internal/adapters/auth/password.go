package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/harvfi/ecudecaalumni2/internal/domain"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher returns a PasswordHasher using bcrypt with the given cost.
// Hashes are produced on signup and discarded; nothing in this system ever
// compares one (the auth flow is an explicit mock).
func NewBcryptHasher(cost int) domain.PasswordHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}
