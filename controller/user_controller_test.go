package controller_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/dev-mohitbeniwal/casa/api/controller"
	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/model"
	pdp_model "github.com/dev-mohitbeniwal/casa/api/pdp/model"
	mock_service "github.com/dev-mohitbeniwal/casa/api/test/service_mock"
)

func TestUserController(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserService := mock_service.NewMockIUserService(ctrl)
	userController := controller.NewUserController(mockUserService)
	router := gin.New()
	userController.RegisterRoutes(router.Group("/api"), authAs(2))

	t.Run("ListUsers_Success", func(t *testing.T) {
		mockUserService.EXPECT().
			ListUsers(gomock.Any(), int64(2), 20, 40).
			Return([]*model.User{{ID: 1}, {ID: 2}}, nil)

		w := serve(router, http.MethodGet, "/api/users?limit=20&offset=40", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["users"], 2)
	})

	t.Run("ListUsers_Failure_BadPagination", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/users?limit=500", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("GetUser_Failure_Forbidden", func(t *testing.T) {
		mockUserService.EXPECT().
			GetUser(gomock.Any(), int64(2), int64(1)).
			Return(nil, echo_errors.NewForbiddenError("Not authorized to access this user data", pdp_model.Decision{}))

		w := serve(router, http.MethodGet, "/api/users/1", nil)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "Not authorized to access this user data", messageOf(t, w))
	})

	t.Run("GetUser_Failure_NotFound", func(t *testing.T) {
		mockUserService.EXPECT().
			GetUser(gomock.Any(), int64(2), int64(50)).
			Return(nil, echo_errors.ErrUserNotFound)

		w := serve(router, http.MethodGet, "/api/users/50", nil)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "User not found", messageOf(t, w))
	})

	t.Run("GetUser_Failure_BadID", func(t *testing.T) {
		w := serve(router, http.MethodGet, "/api/users/abc", nil)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UpdateUser_Success", func(t *testing.T) {
		firstName := "Ana"
		mockUserService.EXPECT().
			UpdateUser(gomock.Any(), int64(2), int64(2), model.UserPatch{FirstName: &firstName}).
			Return(&model.User{ID: 2, FirstName: "Ana"}, nil)

		w := serve(router, http.MethodPut, "/api/users/2", strings.NewReader(`{"firstName":"Ana"}`))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "User updated successfully", messageOf(t, w))
	})

	t.Run("UpdateUser_Failure_InvalidRole", func(t *testing.T) {
		w := serve(router, http.MethodPut, "/api/users/2", strings.NewReader(`{"role":"ROOT"}`))

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("DeleteUser_Failure_ServerError", func(t *testing.T) {
		mockUserService.EXPECT().
			DeleteUser(gomock.Any(), int64(2), int64(2)).
			Return(errors.New("neo4j down"))

		w := serve(router, http.MethodDelete, "/api/users/2", nil)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Server error deleting user", messageOf(t, w))
	})

	t.Run("ListSavedSearches_Success", func(t *testing.T) {
		mockUserService.EXPECT().
			ListSavedSearches(gomock.Any(), int64(2), int64(2)).
			Return([]*model.SavedSearch{{ID: 1, Name: "Condesa"}}, nil)

		w := serve(router, http.MethodGet, "/api/users/2/saved-searches", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, decodeBody(t, w)["savedSearches"], 1)
	})

	t.Run("CreateSavedSearch_Success", func(t *testing.T) {
		mockUserService.EXPECT().
			CreateSavedSearch(gomock.Any(), int64(2), int64(2), model.CreateSavedSearchRequest{Name: "Condesa", Criteria: model.PropertyFilter{City: "CDMX"}}).
			Return(&model.SavedSearch{ID: 4, Name: "Condesa"}, nil)

		w := serve(router, http.MethodPost, "/api/users/2/saved-searches", strings.NewReader(`{"name":"Condesa","criteria":{"city":"CDMX"}}`))

		assert.Equal(t, http.StatusCreated, w.Code)
	})
}
