// api/controller/user_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/model"
	"github.com/dev-mohitbeniwal/casa/api/service"
	"github.com/dev-mohitbeniwal/casa/api/util"
	helper_util "github.com/dev-mohitbeniwal/casa/api/util/helper"
)

type UserController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// RegisterRoutes registers the API routes; every user route is authenticated.
func (uc *UserController) RegisterRoutes(r gin.IRouter, auth gin.HandlerFunc) {
	users := r.Group("/users", auth)
	{
		users.GET("", uc.ListUsers)
		users.GET("/:id", uc.GetUser)
		users.PUT("/:id", uc.UpdateUser)
		users.DELETE("/:id", uc.DeleteUser)
		users.GET("/:id/favorites", uc.ListFavorites)
		users.GET("/:id/saved-searches", uc.ListSavedSearches)
		users.POST("/:id/saved-searches", uc.CreateSavedSearch)
	}
}

// ListUsers endpoint
func (uc *UserController) ListUsers(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	limit, offset, err := helper_util.GetPaginationParams(c)
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid pagination parameters", echo_errors.ErrInvalidPagination)
		return
	}

	users, err := uc.userService.ListUsers(c.Request.Context(), requester, limit, offset)
	if err != nil {
		respondWithServiceError(c, err, "Server error retrieving users")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Users retrieved successfully",
		"users":   users,
	})
}

// GetUser endpoint
func (uc *UserController) GetUser(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	user, err := uc.userService.GetUser(c.Request.Context(), requester, userID)
	if err != nil {
		respondWithServiceError(c, err, "Server error retrieving user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User retrieved successfully",
		"user":    user,
	})
}

// UpdateUser endpoint
func (uc *UserController) UpdateUser(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var patch model.UserPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user data", echo_errors.ErrInvalidUserData)
		return
	}

	user, err := uc.userService.UpdateUser(c.Request.Context(), requester, userID, patch)
	if err != nil {
		respondWithServiceError(c, err, "Server error updating user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User updated successfully",
		"user":    user,
	})
}

// DeleteUser endpoint
func (uc *UserController) DeleteUser(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), requester, userID); err != nil {
		respondWithServiceError(c, err, "Server error deleting user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// ListFavorites endpoint
func (uc *UserController) ListFavorites(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	favorites, err := uc.userService.ListFavorites(c.Request.Context(), requester, userID)
	if err != nil {
		respondWithServiceError(c, err, "Server error retrieving favorites")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "User favorites retrieved successfully",
		"favorites": favorites,
	})
}

// ListSavedSearches endpoint
func (uc *UserController) ListSavedSearches(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	userID, ok := userIDParam(c)
	if !ok {
		return
	}

	searches, err := uc.userService.ListSavedSearches(c.Request.Context(), requester, userID)
	if err != nil {
		respondWithServiceError(c, err, "Server error retrieving saved searches")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "User saved searches retrieved successfully",
		"savedSearches": searches,
	})
}

// CreateSavedSearch endpoint
func (uc *UserController) CreateSavedSearch(c *gin.Context) {
	requester, ok := requesterID(c)
	if !ok {
		return
	}
	userID, ok := userIDParam(c)
	if !ok {
		return
	}
	var req model.CreateSavedSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid saved search data", echo_errors.ErrInvalidSavedSearchData)
		return
	}

	search, err := uc.userService.CreateSavedSearch(c.Request.Context(), requester, userID, req)
	if err != nil {
		respondWithServiceError(c, err, "Server error creating saved search")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Saved search created successfully",
		"savedSearch": search,
	})
}

func userIDParam(c *gin.Context) (int64, bool) {
	userID, err := helper_util.GetIDParam(c, "id")
	if err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid user ID", echo_errors.ErrInvalidUserData)
		return 0, false
	}
	return userID, true
}
