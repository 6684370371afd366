// api/controller/errors.go
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dev-mohitbeniwal/casa/api/audit"
	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

var notFoundMessages = []struct {
	err     error
	message string
}{
	{echo_errors.ErrUserNotFound, "User not found"},
	{echo_errors.ErrPropertyNotFound, "Property not found"},
	{echo_errors.ErrMediaNotFound, "Media not found"},
	{echo_errors.ErrFavoriteNotFound, "Property not in favorites"},
	{echo_errors.ErrSavedSearchNotFound, "Saved search not found"},
}

// respondWithServiceError maps a service error onto the HTTP contract.
// Anything unrecognized becomes a 500 carrying fallback.
func respondWithServiceError(c *gin.Context, err error, fallback string) {
	var forbidden *echo_errors.ForbiddenError
	if errors.As(err, &forbidden) {
		util.RespondWithError(c, http.StatusForbidden, forbidden.Message, err)
		return
	}

	for _, nf := range notFoundMessages {
		if errors.Is(err, nf.err) {
			util.RespondWithError(c, http.StatusNotFound, nf.message, err)
			return
		}
	}

	switch {
	case errors.Is(err, echo_errors.ErrInvalidCredentials):
		util.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials", err)
	case errors.Is(err, echo_errors.ErrTokenExpired):
		util.RespondWithError(c, http.StatusUnauthorized, "Token expired", err)
	case errors.Is(err, echo_errors.ErrInvalidToken):
		util.RespondWithError(c, http.StatusUnauthorized, "Invalid token", err)
	case errors.Is(err, echo_errors.ErrUnauthenticated):
		util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", err)
	case errors.Is(err, echo_errors.ErrUserConflict):
		util.RespondWithError(c, http.StatusBadRequest, "User already exists with this email", err)
	case errors.Is(err, echo_errors.ErrFavoriteConflict):
		util.RespondWithError(c, http.StatusBadRequest, "Property already in favorites", err)
	case errors.Is(err, echo_errors.ErrNoFilesUploaded):
		util.RespondWithError(c, http.StatusBadRequest, "No files uploaded", err)
	case errors.Is(err, echo_errors.ErrTooManyFiles),
		errors.Is(err, echo_errors.ErrFileTooLarge),
		errors.Is(err, echo_errors.ErrInvalidFileType):
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
	case errors.Is(err, echo_errors.ErrInvalidUserData),
		errors.Is(err, echo_errors.ErrInvalidPropertyData),
		errors.Is(err, echo_errors.ErrInvalidMediaData),
		errors.Is(err, echo_errors.ErrInvalidSavedSearchData),
		errors.Is(err, echo_errors.ErrInvalidSearchFilter),
		errors.Is(err, audit.ErrInvalidQuery):
		util.RespondWithError(c, http.StatusBadRequest, err.Error(), err)
	default:
		util.RespondWithError(c, http.StatusInternalServerError, fallback, err)
	}
}

// requesterID reads the authenticated user; it writes the 401 itself.
func requesterID(c *gin.Context) (int64, bool) {
	userID, err := util.GetUserIDFromContext(c)
	if err != nil {
		util.RespondWithError(c, http.StatusUnauthorized, "Authentication required", err)
		return 0, false
	}
	return userID, true
}
