package utils

import (
	"golang.org/x/crypto/bcrypt"
)

// HashOperatorPassword hashes a plaintext operator password with bcrypt.
func HashOperatorPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// OperatorPasswordMatches compares a plaintext password with the configured bcrypt hash.
func OperatorPasswordMatches(password, hash string) bool {
	if hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
