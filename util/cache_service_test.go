package util

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/casa/api/model"
	casa_mock "github.com/dev-mohitbeniwal/casa/api/test/mock"
)

func TestCacheService(t *testing.T) {
	ctx := context.Background()
	filter := model.PropertyFilter{City: "CDMX"}
	filter.Normalize()

	t.Run("KeysByFilter", func(t *testing.T) {
		store := new(casa_mock.MockRedisStore)
		page := &model.PropertyPage{Pagination: model.Pagination{Total: 1, Page: 1, Limit: 10, Pages: 1}}
		store.On("PropertyPageKey", ctx, filter.CacheKey()).Return("properties:2:"+filter.CacheKey(), nil).Once()
		store.On("GetPropertyPage", ctx, "properties:2:"+filter.CacheKey()).Return(page, nil).Once()

		cache := NewCacheService(store)
		cached, key, err := cache.GetPropertyPage(ctx, filter)
		require.NoError(t, err)
		assert.Same(t, page, cached)
		assert.Equal(t, "properties:2:"+filter.CacheKey(), key)
		store.AssertExpectations(t)
	})

	t.Run("WritesUnderResolvedKey", func(t *testing.T) {
		store := new(casa_mock.MockRedisStore)
		page := &model.PropertyPage{}
		store.On("SetPropertyPage", ctx, "properties:2:k", page).Return(nil).Once()

		cache := NewCacheService(store)
		require.NoError(t, cache.SetPropertyPage(ctx, "properties:2:k", page))
		require.NoError(t, cache.SetPropertyPage(ctx, "", page))
		store.AssertExpectations(t)
	})

	t.Run("Miss", func(t *testing.T) {
		store := new(casa_mock.MockRedisStore)
		store.On("PropertyPageKey", ctx, mock.Anything).Return("properties:0:k", nil).Once()
		store.On("GetPropertyPage", ctx, "properties:0:k").Return(nil, nil).Once()

		cached, key, err := NewCacheService(store).GetPropertyPage(ctx, filter)
		require.NoError(t, err)
		assert.Nil(t, cached)
		assert.Equal(t, "properties:0:k", key)
	})

	t.Run("Invalidate", func(t *testing.T) {
		store := new(casa_mock.MockRedisStore)
		store.On("InvalidatePropertyPages", ctx).Return(errors.New("redis down")).Once()

		assert.Error(t, NewCacheService(store).InvalidateProperties(ctx))
		store.AssertExpectations(t)
	})

	t.Run("WithoutStore", func(t *testing.T) {
		var cache *CacheService
		cached, key, err := cache.GetPropertyPage(ctx, filter)
		assert.NoError(t, err)
		assert.Nil(t, cached)
		assert.Empty(t, key)
		assert.NoError(t, cache.SetPropertyPage(ctx, "k", &model.PropertyPage{}))
		assert.NoError(t, NewCacheService(nil).InvalidateProperties(ctx))
	})
}
