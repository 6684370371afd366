// api/errors/errors.go
package errors

import "errors"

var (
	ErrDatabaseOperation = errors.New("database operation failed")
	ErrInternalServer    = errors.New("internal server error")
	ErrInvalidPagination = errors.New("invalid pagination parameters")
	ErrRateLimited       = errors.New("rate limited")
)
