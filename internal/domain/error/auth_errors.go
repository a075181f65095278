// Package error defines domain-specific errors for the Toolbox application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to register with an existing email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidCredentials is returned when login credentials are invalid.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token has expired")

	// ErrInvalidResetToken is returned when a password reset token is invalid.
	ErrInvalidResetToken = errors.New("invalid or expired password reset token")

	// ErrWeakPassword is returned when the provided password does not meet requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidEmail is returned when the provided email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrProviderUnavailable is returned when federated sign-in is not configured.
	ErrProviderUnavailable = errors.New("identity provider unavailable")

	// ErrProviderTokenRejected is returned when the identity provider rejects a credential.
	ErrProviderTokenRejected = errors.New("identity provider rejected the credential")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Generic failure, used when no recognized cause applies.
	ErrCodeAuthFailed AuthErrorCode = "AUTH-010000"

	// Recognized causes (01XXXX)
	ErrCodeEmailExists        AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword       AuthErrorCode = "AUTH-010002"
	ErrCodeInvalidEmail       AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010004"
	ErrCodeMissingFields      AuthErrorCode = "AUTH-010005"
	ErrCodeInvalidToken       AuthErrorCode = "AUTH-010006"
	ErrCodeProviderDisabled   AuthErrorCode = "AUTH-010007"
	ErrCodeInvalidResetToken  AuthErrorCode = "AUTH-010008"
	ErrCodeRateLimited        AuthErrorCode = "AUTH-010009"
	ErrCodeMissingToken       AuthErrorCode = "AUTH-010010"
)

// authMessages holds the user-facing message for every recognized code.
var authMessages = map[AuthErrorCode]string{
	ErrCodeAuthFailed:         "Authentication failed",
	ErrCodeEmailExists:        "This email is already registered",
	ErrCodeWeakPassword:       "Password must be at least 8 characters",
	ErrCodeInvalidEmail:       "Invalid email address",
	ErrCodeInvalidCredentials: "Incorrect email or password",
	ErrCodeMissingFields:      "Please fill in all required fields",
	ErrCodeInvalidToken:       "Your session has expired, please sign in again",
	ErrCodeProviderDisabled:   "This sign-in method is not available",
	ErrCodeInvalidResetToken:  "Invalid or expired password reset link",
	ErrCodeRateLimited:        "Too many attempts, please try again later",
	ErrCodeMissingToken:       "Authentication required",
}

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError whose message is selected by code.
func NewAuthError(code AuthErrorCode, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: AuthMessage(code),
		Err:     err,
	}
}

// AuthMessage returns the user-facing message for code.
// Unrecognized codes get the generic authentication-failed message.
func AuthMessage(code AuthErrorCode) string {
	if msg, ok := authMessages[code]; ok {
		return msg
	}
	return authMessages[ErrCodeAuthFailed]
}
