package adapter

// PasswordService hashes and checks passwords.
type PasswordService interface {
	// HashPassword hashes a plain text password.
	HashPassword(password string) (string, error)

	// VerifyPassword returns nil when password matches the hash.
	VerifyPassword(hashedPassword, password string) error

	// ValidatePasswordStrength returns domainerror.ErrWeakPassword for passwords that are too short.
	ValidatePasswordStrength(password string) error
}
