package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashOperatorPassword hashes an operator's plaintext password with bcrypt
// at the given cost. A cost outside bcrypt's supported range falls back to
// the library default.
func HashOperatorPassword(password string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return string(hash), err
}

// VerifyOperatorPassword reports whether the plaintext matches the stored
// bcrypt hash.
func VerifyOperatorPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
