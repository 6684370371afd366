package service_test

import (
	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/casa/api/config"
	"github.com/dev-mohitbeniwal/casa/api/metrics"
	"github.com/dev-mohitbeniwal/casa/api/model"
	"github.com/dev-mohitbeniwal/casa/api/pdp/engine"
	"github.com/dev-mohitbeniwal/casa/api/service"
	casa_mock "github.com/dev-mohitbeniwal/casa/api/test/mock"
	"github.com/dev-mohitbeniwal/casa/api/util"
)

func ptr[T any](v T) *T { return &v }

type testEnv struct {
	userDAO        *casa_mock.MockUserDAO
	propertyDAO    *casa_mock.MockPropertyDAO
	mediaDAO       *casa_mock.MockMediaDAO
	favoriteDAO    *casa_mock.MockFavoriteDAO
	savedSearchDAO *casa_mock.MockSavedSearchDAO
	store          *casa_mock.MockRedisStore
	auditSvc       *casa_mock.MockAuditService
	fs             afero.Fs
	mediaStore     *util.MediaStore
	eventBus       *util.EventBus
	authorizer     *service.Authorizer
}

func newTestEnv() *testEnv {
	env := &testEnv{
		userDAO:        new(casa_mock.MockUserDAO),
		propertyDAO:    new(casa_mock.MockPropertyDAO),
		mediaDAO:       new(casa_mock.MockMediaDAO),
		favoriteDAO:    new(casa_mock.MockFavoriteDAO),
		savedSearchDAO: new(casa_mock.MockSavedSearchDAO),
		store:          new(casa_mock.MockRedisStore),
		auditSvc:       new(casa_mock.MockAuditService),
		fs:             afero.NewMemMapFs(),
		eventBus:       util.NewEventBus(),
	}
	env.mediaStore = util.NewMediaStore(env.fs, "http://localhost:3001")
	env.auditSvc.On("LogAccess", mock.Anything, mock.Anything).Return(nil).Maybe()
	env.store.On("InvalidatePropertyPages", mock.Anything).Return(nil).Maybe()
	env.authorizer = service.NewAuthorizer(env.userDAO, engine.NewPolicyEvaluator(), env.auditSvc, metrics.NewMetrics(), util.NewNotificationService(), env.eventBus)
	return env
}

// givenUser makes the principal resolver find a user.
func (env *testEnv) givenUser(id int64, role model.Role) *model.User {
	user := &model.User{ID: id, Email: "user@example.com", FirstName: "Test", LastName: "User", Role: role}
	env.userDAO.On("GetUser", mock.Anything, id).Return(user, nil).Maybe()
	return user
}

func (env *testEnv) userService() *service.UserService {
	return service.NewUserService(env.userDAO, env.favoriteDAO, env.savedSearchDAO, env.authorizer, util.NewValidationUtil(), util.NewNotificationService(), env.eventBus)
}

func (env *testEnv) propertyService() *service.PropertyService {
	return service.NewPropertyService(env.propertyDAO, env.favoriteDAO, env.authorizer, util.NewValidationUtil(), util.NewCacheService(env.store), env.mediaStore, util.NewNotificationService(), env.eventBus)
}

func (env *testEnv) mediaService() *service.MediaService {
	return service.NewMediaService(env.mediaDAO, env.propertyDAO, env.authorizer, util.NewValidationUtil(), util.NewCacheService(env.store), env.mediaStore, env.eventBus, config.UploadConfiguration{MaxFiles: 2, MaxFileSize: 1024})
}

// auditedCalls returns the recorded audit calls once every handler is done.
func (env *testEnv) auditedCalls() []mock.Call {
	env.eventBus.Wait()
	return env.auditSvc.Calls
}

var pngContent = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func writeFile(env *testEnv, path string) error {
	return afero.WriteFile(env.fs, path, pngContent, 0o644)
}
