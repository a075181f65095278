package error

import "errors"

// ErrPersistenceFailed marks a rejected Persistence Gateway call.
var ErrPersistenceFailed = errors.New("persistence failed")

// ErrCodePersistenceFailed is the code reported for every StoreError.
const ErrCodePersistenceFailed = "STORE-010001"

// StoreError wraps a persistence failure caught at the store boundary.
// The store's in-memory state is unchanged when one is returned.
type StoreError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return e.Op + ": " + e.Err.Error()
	}
	return e.Op
}

// Unwrap returns the underlying error.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is match ErrPersistenceFailed.
func (e *StoreError) Is(target error) bool {
	return target == ErrPersistenceFailed
}

// NewStoreError wraps err as a persistence failure of op.
func NewStoreError(op string, err error) *StoreError {
	return &StoreError{Op: op, Err: err}
}
