// Package service defines domain service interfaces whose implementations
// live in the infrastructure layer.
package service

// PasswordHasher abstracts credential hashing so the use case layer stays
// independent of the concrete algorithm.
type PasswordHasher interface {
	// Hash generates a salted hash from a plaintext password.
	Hash(password string) (string, error)

	// Check reports whether the plaintext password matches the stored hash.
	Check(password, hash string) bool
}
