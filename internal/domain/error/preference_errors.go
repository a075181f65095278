package error

import "errors"

// Preference domain errors.
var (
	// ErrInvalidTheme is returned for a theme other than light or dark.
	ErrInvalidTheme = errors.New("invalid theme")

	// ErrMissingPreferenceOwner is returned when neither a user nor a device id identifies the caller.
	ErrMissingPreferenceOwner = errors.New("missing preference owner")
)

// PreferenceErrorCode defines error codes for preference errors.
type PreferenceErrorCode string

const (
	ErrCodeInvalidTheme     PreferenceErrorCode = "PREF-010001"
	ErrCodeMissingPrefOwner PreferenceErrorCode = "PREF-010002"
)

// PreferenceError represents a preference error with code and message.
type PreferenceError struct {
	Code    PreferenceErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *PreferenceError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *PreferenceError) Unwrap() error {
	return e.Err
}

// NewPreferenceError creates a new PreferenceError with the given code and message.
func NewPreferenceError(code PreferenceErrorCode, message string, err error) *PreferenceError {
	return &PreferenceError{Code: code, Message: message, Err: err}
}
