// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// PasswordService defines the interface for password hashing operations.
type PasswordService interface {
	// HashPassword hashes a plaintext password.
	HashPassword(password string) (string, error)

	// VerifyPassword compares a plaintext password against a hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength checks that a password meets the minimum requirements.
	ValidatePasswordStrength(password string) error
}
