package adapters

import (
	"unicode/utf8"

	"golang.org/x/crypto/bcrypt"

	"github.com/toolbox/backend/internal/application/adapter"
	domainerror "github.com/toolbox/backend/internal/domain/error"
)

const (
	bcryptCost        = 12
	minPasswordLength = 8
)

// passwordService implements the adapter.PasswordService interface.
type passwordService struct {
	cost int
}

// NewPasswordService creates a new password service instance.
func NewPasswordService() adapter.PasswordService {
	return &passwordService{cost: bcryptCost}
}

// NewPasswordServiceWithCost is used by tests that cannot afford cost 12.
func NewPasswordServiceWithCost(cost int) adapter.PasswordService {
	return &passwordService{cost: cost}
}

// HashPassword hashes a plain text password using bcrypt.
func (s *passwordService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// VerifyPassword compares a plain text password with a hashed password.
func (s *passwordService) VerifyPassword(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}

// ValidatePasswordStrength rejects passwords shorter than eight characters.
func (s *passwordService) ValidatePasswordStrength(password string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return domainerror.ErrWeakPassword
	}
	return nil
}
