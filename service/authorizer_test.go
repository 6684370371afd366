package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/casa/api/audit"
	"github.com/dev-mohitbeniwal/casa/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/casa/api/errors"
	"github.com/dev-mohitbeniwal/casa/api/model"
	pdp_model "github.com/dev-mohitbeniwal/casa/api/pdp/model"
	"github.com/dev-mohitbeniwal/casa/api/service"
	casa_mock "github.com/dev-mohitbeniwal/casa/api/test/mock"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

// retryingPropertyDAO runs the guard once more before the final attempt,
// as the driver does after a transient transaction failure.
type retryingPropertyDAO struct {
	*casa_mock.MockPropertyDAO
}

func (r retryingPropertyDAO) UpdateProperty(ctx context.Context, propertyID int64, patch model.PropertyPatch, guard dao.Guard[model.Property]) (*model.Property, error) {
	return r.MockPropertyDAO.UpdateProperty(ctx, propertyID, patch, func(current *model.Property) error {
		_ = guard(current)
		return guard(current)
	})
}

func TestAuthorizer_RetriedGuardIsRecordedOnce(t *testing.T) {
	ctx := context.Background()

	for _, tc := range []struct {
		name      string
		requester int64
		allowed   bool
	}{
		{name: "Allowed", requester: 1, allowed: true},
		{name: "Denied", requester: 2, allowed: false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			env := newTestEnv()
			env.givenUser(tc.requester, model.RoleUser)
			title := "Casa"
			patch := model.PropertyPatch{Title: &title}
			env.propertyDAO.On("UpdateProperty", mock.Anything, int64(10), patch).
				Return(ownedProperty(10, 1), ownedProperty(10, 1), nil).Once()

			svc := service.NewPropertyService(retryingPropertyDAO{env.propertyDAO}, env.favoriteDAO, env.authorizer,
				util.NewValidationUtil(), util.NewCacheService(env.store), env.mediaStore, util.NewNotificationService(), env.eventBus)
			_, err := svc.UpdateProperty(ctx, tc.requester, 10, patch)
			if tc.allowed {
				require.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, echo_errors.ErrForbidden)
			}

			calls := env.auditedCalls()
			require.Len(t, calls, 1)
			entry := calls[0].Arguments.Get(1).(audit.AuditLog)
			assert.Equal(t, tc.allowed, entry.AccessGranted)
			assert.JSONEq(t, `{"fields":["title"]}`, string(entry.ChangeDetails))
		})
	}
}

func TestAuthorizer_Check(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv()
	env.givenUser(5, model.RoleUser)
	env.userDAO.On("ListUsers", mock.Anything, 10, 0).Return([]*model.User{}, nil).Maybe()

	_, err := env.userService().ListUsers(ctx, 5, 10, 0)
	var forbidden *echo_errors.ForbiddenError
	require.ErrorAs(t, err, &forbidden)
	assert.Equal(t, "Not authorized to access this resource", forbidden.Message)
	assert.Equal(t, pdp_model.RuleRoleAllowlist, forbidden.Decision.Rule)

	calls := env.auditedCalls()
	require.Len(t, calls, 1)
	entry := calls[0].Arguments.Get(1).(audit.AuditLog)
	assert.Equal(t, "user.list", entry.Action)
	assert.Empty(t, entry.ChangeDetails)
}
