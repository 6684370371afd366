package db

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dev-mohitbeniwal/casa/api/model"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, time.Minute), server
}

func TestRedisStore_PropertyPages(t *testing.T) {
	ctx := context.Background()

	t.Run("RoundTrip", func(t *testing.T) {
		store, server := newTestRedisStore(t)
		key, err := store.PropertyPageKey(ctx, "city=CDMX")
		require.NoError(t, err)
		assert.Equal(t, "properties:0:city=CDMX", key)

		page, err := store.GetPropertyPage(ctx, key)
		require.NoError(t, err)
		assert.Nil(t, page)

		require.NoError(t, store.SetPropertyPage(ctx, key, &model.PropertyPage{Pagination: model.Pagination{Total: 4}}))
		page, err = store.GetPropertyPage(ctx, key)
		require.NoError(t, err)
		require.NotNil(t, page)
		assert.Equal(t, int64(4), page.Pagination.Total)
		assert.Equal(t, time.Minute, server.TTL(key))
	})

	t.Run("WriteRacingInvalidationStaysUnreachable", func(t *testing.T) {
		store, _ := newTestRedisStore(t)

		key, err := store.PropertyPageKey(ctx, "page=1")
		require.NoError(t, err)
		page, err := store.GetPropertyPage(ctx, key)
		require.NoError(t, err)
		require.Nil(t, page)

		require.NoError(t, store.InvalidatePropertyPages(ctx))
		require.NoError(t, store.SetPropertyPage(ctx, key, &model.PropertyPage{Pagination: model.Pagination{Total: 1}}))

		fresh, err := store.PropertyPageKey(ctx, "page=1")
		require.NoError(t, err)
		assert.NotEqual(t, key, fresh)
		page, err = store.GetPropertyPage(ctx, fresh)
		require.NoError(t, err)
		assert.Nil(t, page)
	})

	t.Run("CorruptPage", func(t *testing.T) {
		store, server := newTestRedisStore(t)
		require.NoError(t, server.Set("properties:0:bad", "{"))

		_, err := store.GetPropertyPage(ctx, "properties:0:bad")
		assert.Error(t, err)
	})
}

func TestRedisStore_RateLimit(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	for i := 0; i < 3; i++ {
		allowed, err := store.RateLimit(ctx, "10.0.0.1", 3, time.Minute)
		require.NoError(t, err)
		assert.True(t, allowed)
		time.Sleep(time.Millisecond)
	}
	allowed, err := store.RateLimit(ctx, "10.0.0.1", 3, time.Minute)
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = store.RateLimit(ctx, "10.0.0.2", 3, time.Minute)
	require.NoError(t, err)
	assert.True(t, allowed)
}

func TestRedisStore_Locks(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	locked, err := store.LockResource(ctx, "seed", time.Minute)
	require.NoError(t, err)
	assert.True(t, locked)

	locked, err = store.LockResource(ctx, "seed", time.Minute)
	require.NoError(t, err)
	assert.False(t, locked)

	require.NoError(t, store.UnlockResource(ctx, "seed"))
	locked, err = store.LockResource(ctx, "seed", time.Minute)
	require.NoError(t, err)
	assert.True(t, locked)
}

func TestRedisStore_Unavailable(t *testing.T) {
	ctx := context.Background()
	store, server := newTestRedisStore(t)
	server.Close()

	_, err := store.PropertyPageKey(ctx, "page=1")
	assert.Error(t, err)
	_, err = store.RateLimit(ctx, "10.0.0.1", 3, time.Minute)
	assert.Error(t, err)
}
