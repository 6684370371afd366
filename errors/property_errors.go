// api/errors/property_errors.go
package errors

import "errors"

var (
	ErrPropertyNotFound    = errors.New("property not found")
	ErrInvalidPropertyData = errors.New("invalid property data")
	ErrInvalidSearchFilter = errors.New("invalid search criteria")

	ErrFavoriteNotFound = errors.New("property not in favorites")
	ErrFavoriteConflict = errors.New("property already in favorites")
)
