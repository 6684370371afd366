// api/util/cache_service.go

package util

import (
	"context"

	"github.com/dev-mohitbeniwal/casa/api/model"
)

// PropertyPageStore is the backing store of the listing cache. Pages are
// read and written under keys resolved by PropertyPageKey.
type PropertyPageStore interface {
	PropertyPageKey(ctx context.Context, cacheKey string) (string, error)
	GetPropertyPage(ctx context.Context, key string) (*model.PropertyPage, error)
	SetPropertyPage(ctx context.Context, key string, page *model.PropertyPage) error
	InvalidatePropertyPages(ctx context.Context) error
}

// CacheService caches public listing pages. Authorization never reads
// from it. A CacheService without a store caches nothing.
type CacheService struct {
	store PropertyPageStore
}

func NewCacheService(store PropertyPageStore) *CacheService {
	return &CacheService{store: store}
}

// GetPropertyPage returns nil on a miss, along with the resolved key the
// page must be stored under. An empty key disables the write.
func (c *CacheService) GetPropertyPage(ctx context.Context, filter model.PropertyFilter) (*model.PropertyPage, string, error) {
	if c == nil || c.store == nil {
		return nil, "", nil
	}
	key, err := c.store.PropertyPageKey(ctx, filter.CacheKey())
	if err != nil {
		return nil, "", err
	}
	page, err := c.store.GetPropertyPage(ctx, key)
	return page, key, err
}

func (c *CacheService) SetPropertyPage(ctx context.Context, key string, page *model.PropertyPage) error {
	if c == nil || c.store == nil || key == "" {
		return nil
	}
	return c.store.SetPropertyPage(ctx, key, page)
}

func (c *CacheService) InvalidateProperties(ctx context.Context) error {
	if c == nil || c.store == nil {
		return nil
	}
	return c.store.InvalidatePropertyPages(ctx)
}
