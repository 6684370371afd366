package controller_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/casa/api/controller"
	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/model"
	mock_service "github.com/dev-mohitbeniwal/casa/api/test/service_mock"
)

func TestAuthController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthService := mock_service.NewMockIAuthService(ctrl)
	authController := controller.NewAuthController(mockAuthService)
	router := gin.New()
	authController.RegisterRoutes(router.Group("/api"), authAs(3))

	unauthenticated := gin.New()
	authController.RegisterRoutes(unauthenticated.Group("/api"), noAuth)

	t.Run("Register_Success", func(t *testing.T) {
		mockAuthService.EXPECT().
			Register(gomock.Any(), model.RegisterRequest{Email: "ana@example.com", Password: "secret1", FirstName: "Ana", LastName: "López"}).
			Return(&model.AuthResult{User: &model.User{ID: 3, Email: "ana@example.com"}, Token: "tok"}, nil)

		body := strings.NewReader(`{"email":"ana@example.com","password":"secret1","firstName":"Ana","lastName":"López"}`)
		w := serve(router, http.MethodPost, "/api/auth/register", body)

		assert.Equal(t, http.StatusCreated, w.Code)
		resp := decodeBody(t, w)
		assert.Equal(t, "User registered successfully", resp["message"])
		assert.Equal(t, "tok", resp["token"])
	})

	t.Run("Register_Failure_InvalidBody", func(t *testing.T) {
		body := strings.NewReader(`{"email":"not-an-email","password":"x"}`)
		w := serve(router, http.MethodPost, "/api/auth/register", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Register_Failure_Conflict", func(t *testing.T) {
		mockAuthService.EXPECT().
			Register(gomock.Any(), gomock.Any()).
			Return(nil, echo_errors.ErrUserConflict)

		body := strings.NewReader(`{"email":"ana@example.com","password":"secret1","firstName":"Ana","lastName":"López"}`)
		w := serve(router, http.MethodPost, "/api/auth/register", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "User already exists with this email", messageOf(t, w))
	})

	t.Run("Login_Failure_InvalidCredentials", func(t *testing.T) {
		mockAuthService.EXPECT().
			Login(gomock.Any(), gomock.Any()).
			Return(nil, echo_errors.ErrInvalidCredentials)

		body := strings.NewReader(`{"email":"ana@example.com","password":"wrong"}`)
		w := serve(router, http.MethodPost, "/api/auth/login", body)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Invalid credentials", messageOf(t, w))
	})

	t.Run("RefreshToken_Success", func(t *testing.T) {
		mockAuthService.EXPECT().
			RefreshToken(gomock.Any(), int64(3)).
			Return("fresh", nil)

		w := serve(router, http.MethodPost, "/api/auth/refresh-token", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "fresh", decodeBody(t, w)["token"])
	})

	t.Run("Me_Failure_NotFound", func(t *testing.T) {
		mockAuthService.EXPECT().
			Me(gomock.Any(), int64(3)).
			Return(nil, echo_errors.ErrUserNotFound)

		w := serve(router, http.MethodGet, "/api/auth/me", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", messageOf(t, w))
	})

	t.Run("Me_Failure_Unauthenticated", func(t *testing.T) {
		w := serve(unauthenticated, http.MethodGet, "/api/auth/me", nil)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "Authentication required", messageOf(t, w))
	})
}
