// api/controller/auth_controller.go
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/model"
	"github.com/dev-mohitbeniwal/casa/api/service"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

type AuthController struct {
	authService service.IAuthService
}

func NewAuthController(authService service.IAuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// RegisterRoutes registers the API routes
func (ac *AuthController) RegisterRoutes(r gin.IRouter, auth gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", ac.Register)
		authGroup.POST("/login", ac.Login)
		authGroup.POST("/refresh-token", auth, ac.RefreshToken)
		authGroup.GET("/me", auth, ac.Me)
	}
}

// Register endpoint
func (ac *AuthController) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid registration data", echo_errors.ErrInvalidUserData)
		return
	}

	result, err := ac.authService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, err, "Server error during registration")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    result.User,
		"token":   result.Token,
	})
}

// Login endpoint
func (ac *AuthController) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		util.RespondWithError(c, http.StatusBadRequest, "Invalid login data", echo_errors.ErrInvalidUserData)
		return
	}

	result, err := ac.authService.Login(c.Request.Context(), req)
	if err != nil {
		respondWithServiceError(c, err, "Server error during login")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"user":    result.User,
		"token":   result.Token,
	})
}

// RefreshToken endpoint
func (ac *AuthController) RefreshToken(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	token, err := ac.authService.RefreshToken(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "Server error during token refresh")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Token refreshed successfully",
		"token":   token,
	})
}

// Me endpoint
func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	user, err := ac.authService.Me(c.Request.Context(), userID)
	if err != nil {
		respondWithServiceError(c, err, "Server error retrieving user profile")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User profile retrieved successfully",
		"user":    user,
	})
}
