package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/recruai/platform-api/internal/application/service"
	"github.com/recruai/platform-api/pkg/logger"
)

const profileCacheTTL = 10 * time.Minute

// redisProfileCache caches the aggregated profile payload per owner. Every
// method degrades to a miss or no-op on redis failure; the profile read path
// must never depend on the cache being up.
type redisProfileCache struct {
	client *redis.Client
	logger logger.Logger
}

func NewRedisProfileCache(client *redis.Client, logger logger.Logger) service.ProfileCache {
	return &redisProfileCache{client: client, logger: logger}
}

func profileCacheKey(ownerID uuid.UUID) string {
	return "profile:full:" + ownerID.String()
}

func (c *redisProfileCache) Get(ctx context.Context, ownerID uuid.UUID) (map[string]any, bool) {
	raw, err := c.client.Get(ctx, profileCacheKey(ownerID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.logger.Warn("Profile cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		c.logger.Warn("Profile cache entry corrupt, dropping", zap.String("owner_id", ownerID.String()))
		c.client.Del(ctx, profileCacheKey(ownerID))
		return nil, false
	}
	return payload, true
}

func (c *redisProfileCache) Set(ctx context.Context, ownerID uuid.UUID, payload map[string]any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		c.logger.Warn("Failed to marshal profile for cache", zap.Error(err))
		return
	}
	if err := c.client.Set(ctx, profileCacheKey(ownerID), raw, profileCacheTTL).Err(); err != nil {
		c.logger.Warn("Profile cache write failed", zap.Error(err))
	}
}

func (c *redisProfileCache) Invalidate(ctx context.Context, ownerID uuid.UUID) {
	if err := c.client.Del(ctx, profileCacheKey(ownerID)).Err(); err != nil {
		c.logger.Warn("Profile cache invalidation failed", zap.Error(err))
	}
}
