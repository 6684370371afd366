// api/errors/access_errors.go
package errors

import (
	"errors"

	pdp_model "github.com/dev-mohitbeniwal/casa/api/pdp/model"
)

var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidToken       = errors.New("invalid token")
	ErrTokenExpired       = errors.New("token expired")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

// ForbiddenError carries the denied decision and the message shown to the client.
type ForbiddenError struct {
	Message  string
	Decision pdp_model.Decision
}

func (e *ForbiddenError) Error() string {
	return "forbidden: " + e.Message
}

// Is lets errors.Is(err, ErrForbidden) match any ForbiddenError.
func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}

func NewForbiddenError(message string, decision pdp_model.Decision) *ForbiddenError {
	return &ForbiddenError{Message: message, Decision: decision}
}
