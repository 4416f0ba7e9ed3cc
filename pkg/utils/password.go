package utils

import "golang.org/x/crypto/bcrypt"

// Cost above the bcrypt default; login latency stays acceptable at 12.
const bcryptCost = 12

// HashPassword generates a bcrypt hash from a plain text password
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	return string(hash), err
}

// ComparePassword reports whether the plain text password matches the hash
func ComparePassword(hashedPassword, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
