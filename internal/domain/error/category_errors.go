package error

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the system.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameRequired is returned when a category is created without a name.
	ErrCategoryNameRequired = errors.New("category name is required")

	// ErrCategoryNameTooLong is returned when the category name exceeds the maximum length.
	ErrCategoryNameTooLong = errors.New("category name too long")

	// ErrInvalidColorFormat is returned when a color is not a hex value.
	ErrInvalidColorFormat = errors.New("invalid color format")

	// ErrInvalidCategoryEmoji is returned when the emoji holds more than one character.
	ErrInvalidCategoryEmoji = errors.New("invalid category emoji")

	// ErrCategoryInUse is returned when deleting a category that tools still reference.
	ErrCategoryInUse = errors.New("category is in use")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is category and YYYY is specific error.
type CategoryErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeCategoryNameRequired CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryNameTooLong  CategoryErrorCode = "CAT-010002"
	ErrCodeInvalidColorFormat   CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryInUse        CategoryErrorCode = "CAT-010004"
	ErrCodeCategoryNotFound     CategoryErrorCode = "CAT-010005"
	ErrCodeMissingCategoryPatch CategoryErrorCode = "CAT-010006"
	ErrCodeInvalidCategoryEmoji CategoryErrorCode = "CAT-010007"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// CategoryInUseError reports a blocked deletion together with the number of
// tools that still reference the category.
type CategoryInUseError struct {
	CategoryID uuid.UUID
	Count      int
}

// Error implements the error interface.
func (e *CategoryInUseError) Error() string {
	return fmt.Sprintf("category %s is used by %d tool(s)", e.CategoryID, e.Count)
}

// Unwrap lets errors.Is match ErrCategoryInUse.
func (e *CategoryInUseError) Unwrap() error {
	return ErrCategoryInUse
}
