// Package service defines ports for stateless domain logic that needs an
// infrastructure implementation.
package service

// PasswordHasher hashes and verifies passwords. Implementations must salt
// and must compare in constant time.
type PasswordHasher interface {
	// Hash returns a salted one-way hash of password.
	Hash(password string) (string, error)

	// Check reports whether password matches hash.
	Check(password, hash string) bool
}
