// api/errors/user_errors.go
package errors

import "errors"

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserData = errors.New("invalid user data")
	ErrUserConflict    = errors.New("user conflict")

	ErrSavedSearchNotFound    = errors.New("saved search not found")
	ErrInvalidSavedSearchData = errors.New("invalid saved search data")
)
