package error

import "errors"

// Tool domain errors.
var (
	// ErrToolNotFound is returned when a tool is not found in the system.
	ErrToolNotFound = errors.New("tool not found")

	// ErrToolNameRequired is returned when a tool has no name.
	ErrToolNameRequired = errors.New("tool name is required")

	// ErrToolURLRequired is returned when a tool has no URL.
	ErrToolURLRequired = errors.New("tool url is required")

	// ErrToolNameTooLong is returned when the tool name exceeds the maximum length.
	ErrToolNameTooLong = errors.New("tool name too long")

	// ErrToolCategoryRequired is returned when a tool does not reference a category of its owner.
	ErrToolCategoryRequired = errors.New("tool category is required")

	// ErrSuggestionUnavailable is returned when no category suggester is configured.
	ErrSuggestionUnavailable = errors.New("category suggestion unavailable")
)

// ToolErrorCode defines error codes for tool errors.
type ToolErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeToolNameRequired      ToolErrorCode = "TOOL-010001"
	ErrCodeToolURLRequired       ToolErrorCode = "TOOL-010002"
	ErrCodeToolCategoryRequired  ToolErrorCode = "TOOL-010003"
	ErrCodeToolNotFound          ToolErrorCode = "TOOL-010004"
	ErrCodeSuggestionUnavailable ToolErrorCode = "TOOL-010005"
	ErrCodeInvalidToolColor      ToolErrorCode = "TOOL-010006"
	ErrCodeMissingToolPatch      ToolErrorCode = "TOOL-010007"
	ErrCodeImportEmpty           ToolErrorCode = "TOOL-010008"
	ErrCodeToolNameTooLong       ToolErrorCode = "TOOL-010009"
)

// ToolError represents a tool error with code and message.
type ToolError struct {
	Code    ToolErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ToolError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ToolError) Unwrap() error {
	return e.Err
}

// NewToolError creates a new ToolError with the given code and message.
func NewToolError(code ToolErrorCode, message string, err error) *ToolError {
	return &ToolError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
