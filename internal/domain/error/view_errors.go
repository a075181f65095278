package error

import "errors"

// ErrInvalidViewMode is returned for a display mode other than grid, list or compact.
var ErrInvalidViewMode = errors.New("invalid view mode")

// ErrCodeInvalidViewMode is the code reported for ErrInvalidViewMode.
const ErrCodeInvalidViewMode = "VIEW-010001"
