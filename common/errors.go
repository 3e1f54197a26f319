package common

import "errors"

// Error kinds reported by the identity and platform packages. Callers match
// them with errors.Is; the concrete error always carries the path or token
// that caused it.
var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrIO               = errors.New("i/o error")
	ErrPermissionDenied = errors.New("permission denied")
	ErrOperationFailed  = errors.New("operation failed")
)
