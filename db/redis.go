// api/db/redis.go
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/casa/api/config"
	logger "github.com/dev-mohitbeniwal/casa/api/logging"
	"github.com/dev-mohitbeniwal/casa/api/model"
)

const propertyGenerationKey = "properties:generation"

func InitRedis(ctx context.Context, cfg config.RedisConfiguration) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("Successfully connected to Redis", zap.String("addr", cfg.Addr))
	return client, nil
}

func CloseRedis(client *redis.Client) {
	if client != nil {
		if err := client.Close(); err != nil {
			logger.Error("Error closing Redis connection", zap.Error(err))
		}
	}
}

// RedisStore keeps rate limit windows, cached listing pages and locks.
type RedisStore struct {
	client     *redis.Client
	defaultTTL time.Duration
}

func NewRedisStore(client *redis.Client, defaultTTL time.Duration) *RedisStore {
	return &RedisStore{client: client, defaultTTL: defaultTTL}
}

// PropertyPageKey qualifies a listing cache key with the current listing
// generation. A page read and later written under the same resolved key
// cannot outlive an invalidation that happened in between.
func (s *RedisStore) PropertyPageKey(ctx context.Context, cacheKey string) (string, error) {
	generation, err := s.client.Get(ctx, propertyGenerationKey).Int64()
	if err != nil && err != redis.Nil {
		return "", fmt.Errorf("failed to read property generation: %w", err)
	}
	return fmt.Sprintf("properties:%d:%s", generation, cacheKey), nil
}

// GetPropertyPage returns nil without error on a cache miss.
func (s *RedisStore) GetPropertyPage(ctx context.Context, key string) (*model.PropertyPage, error) {
	pageJSON, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		logger.Debug("Property page not found in cache", zap.String("key", key))
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get property page from cache: %w", err)
	}

	var page model.PropertyPage
	if err := json.Unmarshal([]byte(pageJSON), &page); err != nil {
		return nil, fmt.Errorf("failed to unmarshal property page: %w", err)
	}

	logger.Debug("Property page retrieved from cache", zap.String("key", key))
	return &page, nil
}

// SetPropertyPage stores a page under a key resolved by PropertyPageKey.
func (s *RedisStore) SetPropertyPage(ctx context.Context, key string, page *model.PropertyPage) error {
	pageJSON, err := json.Marshal(page)
	if err != nil {
		return fmt.Errorf("failed to marshal property page: %w", err)
	}
	if err := s.client.Set(ctx, key, pageJSON, s.defaultTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache property page: %w", err)
	}

	logger.Debug("Property page cached successfully", zap.String("key", key))
	return nil
}

// InvalidatePropertyPages bumps the listing generation so every cached page
// becomes unreachable; old pages expire with their TTL.
func (s *RedisStore) InvalidatePropertyPages(ctx context.Context) error {
	if err := s.client.Incr(ctx, propertyGenerationKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate property pages: %w", err)
	}
	logger.Debug("Property pages invalidated")
	return nil
}

// RateLimit records a hit in a sliding window and reports whether the key
// is still within limit.
func (s *RedisStore) RateLimit(ctx context.Context, key string, limit int, per time.Duration) (bool, error) {
	pipe := s.client.Pipeline()
	now := time.Now().UnixNano()
	key = fmt.Sprintf("ratelimit:%s", key)

	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", now-(per.Nanoseconds())))
	pipe.ZAdd(ctx, key, redis.Z{Score: float64(now), Member: now})
	pipe.ZCard(ctx, key)
	pipe.Expire(ctx, key, per)

	cmds, err := pipe.Exec(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to execute rate limit commands: %w", err)
	}

	count := cmds[2].(*redis.IntCmd).Val()
	allowed := count <= int64(limit)
	logger.Debug("Rate limit check",
		zap.String("key", key),
		zap.Int64("count", count),
		zap.Int("limit", limit),
		zap.Bool("allowed", allowed))
	return allowed, nil
}

func (s *RedisStore) LockResource(ctx context.Context, resourceName string, ttl time.Duration) (bool, error) {
	key := fmt.Sprintf("lock:%s", resourceName)
	locked, err := s.client.SetNX(ctx, key, "locked", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	logger.Debug("Lock acquisition attempt",
		zap.String("resource", resourceName),
		zap.Bool("locked", locked))
	return locked, nil
}

func (s *RedisStore) UnlockResource(ctx context.Context, resourceName string) error {
	key := fmt.Sprintf("lock:%s", resourceName)
	if err := s.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	logger.Debug("Lock released", zap.String("resource", resourceName))
	return nil
}
