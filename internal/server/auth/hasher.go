// Package auth implements the security core of the server: password
// hashing and signed session tokens.
package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost matches the cost the service has always used for stored hashes.
const BcryptCost = 10

// Hasher is a one-way, salted password hash. Implementations must generate
// a fresh salt per Hash call and compare in constant time in Check.
type Hasher interface {
	Hash(password string) (string, error)
	Check(password, hash string) bool
}

// BcryptHasher implements Hasher on top of golang.org/x/crypto/bcrypt.
type BcryptHasher struct {
	cost int
}

func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = BcryptCost
	}
	return &BcryptHasher{cost: cost}
}

func (h *BcryptHasher) Hash(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether password matches hash. A malformed hash is not an
// error, just a mismatch.
func (h *BcryptHasher) Check(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
