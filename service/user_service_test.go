package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/model"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

func forbiddenMessage(t *testing.T, err error) string {
	t.Helper()
	var forbidden *echo_errors.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	return forbidden.Message
}

func TestUserService_ListUsers(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminOnly", func(t *testing.T) {
		env := newTestEnv()
		env.givenUser(1, model.RoleAgent)

		_, err := env.userService().ListUsers(ctx, 1, 10, 0)
		assert.Equal(t, "Not authorized to access this resource", forbiddenMessage(t, err))
	})

	t.Run("Admin", func(t *testing.T) {
		env := newTestEnv()
		env.givenUser(1, model.RoleAdmin)
		env.userDAO.On("ListUsers", mock.Anything, 10, 0).Return([]*model.User{{ID: 1}, {ID: 2}}, nil).Once()

		users, err := env.userService().ListUsers(ctx, 1, 10, 0)
		require.NoError(t, err)
		assert.Len(t, users, 2)
	})
}

func TestUserService_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Self", func(t *testing.T) {
		env := newTestEnv()
		env.givenUser(1, model.RoleUser)

		user, err := env.userService().GetUser(ctx, 1, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
	})

	t.Run("Stranger", func(t *testing.T) {
		env := newTestEnv()
		env.givenUser(1, model.RoleUser)
		env.givenUser(2, model.RoleUser)

		_, err := env.userService().GetUser(ctx, 2, 1)
		assert.Equal(t, "Not authorized to access this user data", forbiddenMessage(t, err))
	})

	t.Run("MissingUserIsNotFoundEvenForStranger", func(t *testing.T) {
		env := newTestEnv()
		env.givenUser(2, model.RoleUser)
		env.userDAO.On("GetUser", mock.Anything, int64(50)).Return(nil, echo_errors.ErrUserNotFound).Once()

		_, err := env.userService().GetUser(ctx, 2, 50)
		assert.ErrorIs(t, err, echo_errors.ErrUserNotFound)
	})
}

func TestUserService_UpdateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("SelfMayChangeName", func(t *testing.T) {
		env := newTestEnv()
		current := env.givenUser(1, model.RoleUser)
		patch := model.UserPatch{FirstName: ptr("Ana")}
		updated := *current
		updated.FirstName = "Ana"
		env.userDAO.On("UpdateUser", mock.Anything, int64(1), patch).Return(current, &updated, nil).Once()

		result, err := env.userService().UpdateUser(ctx, 1, 1, patch)
		require.NoError(t, err)
		assert.Equal(t, "Ana", result.FirstName)
	})

	t.Run("SelfMayNotChangeOwnRole", func(t *testing.T) {
		env := newTestEnv()
		current := env.givenUser(1, model.RoleUser)
		patch := model.UserPatch{Role: ptr(model.RoleAdmin)}
		env.userDAO.On("UpdateUser", mock.Anything, int64(1), patch).Return(current, nil, nil).Once()

		_, err := env.userService().UpdateUser(ctx, 1, 1, patch)
		assert.Equal(t, "Not authorized to update user role", forbiddenMessage(t, err))
	})

	t.Run("RoleCheckRunsBeforeOwnership", func(t *testing.T) {
		env := newTestEnv()
		env.givenUser(2, model.RoleUser)
		patch := model.UserPatch{Role: ptr(model.RoleAdmin), FirstName: ptr("x")}
		env.userDAO.On("UpdateUser", mock.Anything, int64(1), patch).Return(&model.User{ID: 1, Role: model.RoleUser}, nil, nil).Once()

		_, err := env.userService().UpdateUser(ctx, 2, 1, patch)
		assert.Equal(t, "Not authorized to update user role", forbiddenMessage(t, err))
	})

	t.Run("StrangerMayNotUpdate", func(t *testing.T) {
		env := newTestEnv()
		env.givenUser(2, model.RoleAgent)
		patch := model.UserPatch{Phone: ptr("555")}
		env.userDAO.On("UpdateUser", mock.Anything, int64(1), patch).Return(&model.User{ID: 1, Role: model.RoleUser}, nil, nil).Once()

		_, err := env.userService().UpdateUser(ctx, 2, 1, patch)
		assert.Equal(t, "Not authorized to update this user", forbiddenMessage(t, err))
	})

	t.Run("AdminMayPromote", func(t *testing.T) {
		env := newTestEnv()
		env.givenUser(9, model.RoleAdmin)
		patch := model.UserPatch{Role: ptr(model.RoleAgent)}
		updated := &model.User{ID: 1, Role: model.RoleAgent}
		env.userDAO.On("UpdateUser", mock.Anything, int64(1), patch).Return(&model.User{ID: 1, Role: model.RoleUser}, updated, nil).Once()

		result, err := env.userService().UpdateUser(ctx, 9, 1, patch)
		require.NoError(t, err)
		assert.Equal(t, model.RoleAgent, result.Role)
	})

	t.Run("PasswordIsHashed", func(t *testing.T) {
		env := newTestEnv()
		current := env.givenUser(1, model.RoleUser)
		var stored string
		env.userDAO.On("UpdateUser", mock.Anything, int64(1), mock.MatchedBy(func(p model.UserPatch) bool {
			if p.PasswordHash == nil {
				return false
			}
			stored = *p.PasswordHash
			return true
		})).Return(current, current, nil).Once()

		_, err := env.userService().UpdateUser(ctx, 1, 1, model.UserPatch{Password: ptr("new-secret")})
		require.NoError(t, err)

		ok, err := util.CheckPassword(stored, "new-secret")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("EmptyBody", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.userService().UpdateUser(ctx, 1, 1, model.UserPatch{})
		assert.ErrorIs(t, err, echo_errors.ErrInvalidUserData)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("Self", func(t *testing.T) {
		env := newTestEnv()
		current := env.givenUser(1, model.RoleUser)
		env.userDAO.On("DeleteUser", mock.Anything, int64(1)).Return(current, nil).Once()

		assert.NoError(t, env.userService().DeleteUser(ctx, 1, 1))
	})

	t.Run("Stranger", func(t *testing.T) {
		env := newTestEnv()
		env.givenUser(2, model.RoleUser)
		env.userDAO.On("DeleteUser", mock.Anything, int64(1)).Return(&model.User{ID: 1}, nil).Once()

		err := env.userService().DeleteUser(ctx, 2, 1)
		assert.Equal(t, "Not authorized to delete this user", forbiddenMessage(t, err))
	})

	t.Run("NotFound", func(t *testing.T) {
		env := newTestEnv()
		env.givenUser(2, model.RoleUser)
		env.userDAO.On("DeleteUser", mock.Anything, int64(1)).Return(nil, echo_errors.ErrUserNotFound).Once()

		assert.ErrorIs(t, env.userService().DeleteUser(ctx, 2, 1), echo_errors.ErrUserNotFound)
	})
}

func TestUserService_Collections(t *testing.T) {
	ctx := context.Background()

	t.Run("OwnFavorites", func(t *testing.T) {
		env := newTestEnv()
		env.givenUser(1, model.RoleUser)
		env.favoriteDAO.On("ListFavorites", mock.Anything, int64(1)).Return([]*model.Favorite{{UserID: 1, PropertyID: 3}}, nil).Once()

		favorites, err := env.userService().ListFavorites(ctx, 1, 1)
		require.NoError(t, err)
		assert.Len(t, favorites, 1)
	})

	t.Run("OthersSavedSearches", func(t *testing.T) {
		env := newTestEnv()
		env.givenUser(1, model.RoleUser)
		env.givenUser(2, model.RoleUser)

		_, err := env.userService().ListSavedSearches(ctx, 2, 1)
		assert.Equal(t, "Not authorized to access this user data", forbiddenMessage(t, err))
	})

	t.Run("CreateSavedSearch", func(t *testing.T) {
		env := newTestEnv()
		env.givenUser(1, model.RoleUser)
		req := model.CreateSavedSearchRequest{Name: "Condesa", Criteria: model.PropertyFilter{City: "CDMX"}}
		env.savedSearchDAO.On("CreateSavedSearch", mock.Anything, model.SavedSearch{UserID: 1, Name: "Condesa", Criteria: req.Criteria}).
			Return(&model.SavedSearch{ID: 7, UserID: 1, Name: "Condesa"}, nil).Once()

		search, err := env.userService().CreateSavedSearch(ctx, 1, 1, req)
		require.NoError(t, err)
		assert.Equal(t, int64(7), search.ID)
	})

	t.Run("CreateSavedSearchNeedsName", func(t *testing.T) {
		env := newTestEnv()
		_, err := env.userService().CreateSavedSearch(ctx, 1, 1, model.CreateSavedSearchRequest{})
		assert.ErrorIs(t, err, echo_errors.ErrInvalidSavedSearchData)
	})
}
