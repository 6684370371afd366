// test/mock/dao.go
package mock

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/casa/api/dao"
	"github.com/dev-mohitbeniwal/casa/api/model"
)

// Guarded DAO mocks take the stored state as their first return value and
// run the guard against it, the way the real DAOs do inside the write
// transaction. A non-nil error return short-circuits before the guard
// (use it for not-found and database failures).

type MockUserDAO struct {
	mock.Mock
}

var _ dao.IUserDAO = &MockUserDAO{}

func (m *MockUserDAO) CreateUser(ctx context.Context, user model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	created, _ := args.Get(0).(*model.User)
	return created, args.Error(1)
}

func (m *MockUserDAO) GetUser(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserDAO) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*model.User)
	return user, args.Error(1)
}

func (m *MockUserDAO) ListUsers(ctx context.Context, limit int, offset int) ([]*model.User, error) {
	args := m.Called(ctx, limit, offset)
	users, _ := args.Get(0).([]*model.User)
	return users, args.Error(1)
}

// UpdateUser returns (current, updated, err).
func (m *MockUserDAO) UpdateUser(ctx context.Context, userID int64, patch model.UserPatch, guard dao.Guard[model.User]) (*model.User, error) {
	args := m.Called(ctx, userID, patch)
	if err := args.Error(2); err != nil {
		return nil, err
	}
	current, _ := args.Get(0).(*model.User)
	if err := guard(current); err != nil {
		return nil, err
	}
	updated, _ := args.Get(1).(*model.User)
	return updated, nil
}

// DeleteUser returns (current, err).
func (m *MockUserDAO) DeleteUser(ctx context.Context, userID int64, guard dao.Guard[model.User]) error {
	args := m.Called(ctx, userID)
	if err := args.Error(1); err != nil {
		return err
	}
	current, _ := args.Get(0).(*model.User)
	return guard(current)
}

type MockPropertyDAO struct {
	mock.Mock
}

var _ dao.IPropertyDAO = &MockPropertyDAO{}

func (m *MockPropertyDAO) CreateProperty(ctx context.Context, property model.Property, media []model.MediaInput) (*model.Property, error) {
	args := m.Called(ctx, property, media)
	created, _ := args.Get(0).(*model.Property)
	return created, args.Error(1)
}

func (m *MockPropertyDAO) GetProperty(ctx context.Context, propertyID int64) (*model.Property, error) {
	args := m.Called(ctx, propertyID)
	property, _ := args.Get(0).(*model.Property)
	return property, args.Error(1)
}

func (m *MockPropertyDAO) ViewProperty(ctx context.Context, propertyID int64) (*model.Property, error) {
	args := m.Called(ctx, propertyID)
	property, _ := args.Get(0).(*model.Property)
	return property, args.Error(1)
}

func (m *MockPropertyDAO) ListProperties(ctx context.Context, filter model.PropertyFilter) ([]*model.Property, error) {
	args := m.Called(ctx, filter)
	properties, _ := args.Get(0).([]*model.Property)
	return properties, args.Error(1)
}

func (m *MockPropertyDAO) CountProperties(ctx context.Context, filter model.PropertyFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}

// UpdateProperty returns (current, updated, err).
func (m *MockPropertyDAO) UpdateProperty(ctx context.Context, propertyID int64, patch model.PropertyPatch, guard dao.Guard[model.Property]) (*model.Property, error) {
	args := m.Called(ctx, propertyID, patch)
	if err := args.Error(2); err != nil {
		return nil, err
	}
	current, _ := args.Get(0).(*model.Property)
	if err := guard(current); err != nil {
		return nil, err
	}
	updated, _ := args.Get(1).(*model.Property)
	return updated, nil
}

// DeleteProperty returns (current, paths, err).
func (m *MockPropertyDAO) DeleteProperty(ctx context.Context, propertyID int64, guard dao.Guard[model.Property]) ([]string, error) {
	args := m.Called(ctx, propertyID)
	if err := args.Error(2); err != nil {
		return nil, err
	}
	current, _ := args.Get(0).(*model.Property)
	if err := guard(current); err != nil {
		return nil, err
	}
	paths, _ := args.Get(1).([]string)
	return paths, nil
}

type MockMediaDAO struct {
	mock.Mock
}

var _ dao.IMediaDAO = &MockMediaDAO{}

// CreateMedia returns (current property, created, err).
func (m *MockMediaDAO) CreateMedia(ctx context.Context, propertyID int64, items []model.Media, guard dao.Guard[model.Property]) ([]*model.Media, error) {
	args := m.Called(ctx, propertyID, items)
	if err := args.Error(2); err != nil {
		return nil, err
	}
	current, _ := args.Get(0).(*model.Property)
	if err := guard(current); err != nil {
		return nil, err
	}
	created, _ := args.Get(1).([]*model.Media)
	return created, nil
}

func (m *MockMediaDAO) GetMedia(ctx context.Context, mediaID int64) (*model.MediaWithOwner, error) {
	args := m.Called(ctx, mediaID)
	media, _ := args.Get(0).(*model.MediaWithOwner)
	return media, args.Error(1)
}

func (m *MockMediaDAO) ListMedia(ctx context.Context, propertyID int64) ([]*model.Media, error) {
	args := m.Called(ctx, propertyID)
	media, _ := args.Get(0).([]*model.Media)
	return media, args.Error(1)
}

// UpdateMedia returns (current, updated, err).
func (m *MockMediaDAO) UpdateMedia(ctx context.Context, mediaID int64, isMain bool, guard dao.Guard[model.MediaWithOwner]) (*model.Media, error) {
	args := m.Called(ctx, mediaID, isMain)
	if err := args.Error(2); err != nil {
		return nil, err
	}
	current, _ := args.Get(0).(*model.MediaWithOwner)
	if err := guard(current); err != nil {
		return nil, err
	}
	updated, _ := args.Get(1).(*model.Media)
	return updated, nil
}

// DeleteMedia returns (current, err) and reports current as deleted.
func (m *MockMediaDAO) DeleteMedia(ctx context.Context, mediaID int64, guard dao.Guard[model.MediaWithOwner]) (*model.Media, error) {
	args := m.Called(ctx, mediaID)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	current, _ := args.Get(0).(*model.MediaWithOwner)
	if err := guard(current); err != nil {
		return nil, err
	}
	return &current.Media, nil
}

type MockFavoriteDAO struct {
	mock.Mock
}

var _ dao.IFavoriteDAO = &MockFavoriteDAO{}

func (m *MockFavoriteDAO) AddFavorite(ctx context.Context, userID, propertyID int64) (*model.Favorite, error) {
	args := m.Called(ctx, userID, propertyID)
	favorite, _ := args.Get(0).(*model.Favorite)
	return favorite, args.Error(1)
}

func (m *MockFavoriteDAO) RemoveFavorite(ctx context.Context, userID, propertyID int64) error {
	args := m.Called(ctx, userID, propertyID)
	return args.Error(0)
}

func (m *MockFavoriteDAO) ListFavorites(ctx context.Context, userID int64) ([]*model.Favorite, error) {
	args := m.Called(ctx, userID)
	favorites, _ := args.Get(0).([]*model.Favorite)
	return favorites, args.Error(1)
}

type MockSavedSearchDAO struct {
	mock.Mock
}

var _ dao.ISavedSearchDAO = &MockSavedSearchDAO{}

func (m *MockSavedSearchDAO) CreateSavedSearch(ctx context.Context, search model.SavedSearch) (*model.SavedSearch, error) {
	args := m.Called(ctx, search)
	created, _ := args.Get(0).(*model.SavedSearch)
	return created, args.Error(1)
}

func (m *MockSavedSearchDAO) ListSavedSearches(ctx context.Context, userID int64) ([]*model.SavedSearch, error) {
	args := m.Called(ctx, userID)
	searches, _ := args.Get(0).([]*model.SavedSearch)
	return searches, args.Error(1)
}
