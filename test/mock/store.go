// test/mock/store.go
package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/casa/api/model"
)

// MockRedisStore mocks the redis backed stores (listing cache, rate limit, locks).
type MockRedisStore struct {
	mock.Mock
}

func (m *MockRedisStore) PropertyPageKey(ctx context.Context, cacheKey string) (string, error) {
	args := m.Called(ctx, cacheKey)
	return args.String(0), args.Error(1)
}

func (m *MockRedisStore) GetPropertyPage(ctx context.Context, key string) (*model.PropertyPage, error) {
	args := m.Called(ctx, key)
	page, _ := args.Get(0).(*model.PropertyPage)
	return page, args.Error(1)
}

func (m *MockRedisStore) SetPropertyPage(ctx context.Context, key string, page *model.PropertyPage) error {
	args := m.Called(ctx, key, page)
	return args.Error(0)
}

func (m *MockRedisStore) InvalidatePropertyPages(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRedisStore) RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	args := m.Called(ctx, key, limit, per)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisStore) LockResource(ctx context.Context, resourceName string, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, resourceName, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockRedisStore) UnlockResource(ctx context.Context, resourceName string) error {
	args := m.Called(ctx, resourceName)
	return args.Error(0)
}
