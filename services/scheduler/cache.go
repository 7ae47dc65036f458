// File: services/scheduler/cache.go
package scheduler

import (
	"context"
	"encoding/json"
	"fmt"

	"classgrid/models"
	"classgrid/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// redisListingCache caches decorated listings under a generation counter:
// a mutation bumps the generation, orphaning every cached listing at once
// instead of patching entries in place.
type redisListingCache struct {
	client *redis.Client
}

// NewRedisListingCache returns a ListingCache backed by the generic cache
// client.
func NewRedisListingCache() ListingCache {
	return &redisListingCache{client: utils.GetCacheClient()}
}

func (c *redisListingCache) generation(ctx context.Context) int64 {
	gen, err := c.client.Get(ctx, utils.ScheduleCacheGenKey).Int64()
	if err != nil {
		return 0
	}
	return gen
}

func (c *redisListingCache) fullKey(ctx context.Context, key string) string {
	return fmt.Sprintf("%sv%d:%s", utils.ScheduleCachePrefix, c.generation(ctx), key)
}

func (c *redisListingCache) Get(ctx context.Context, key string) ([]models.ClassSchedule, bool) {
	data, err := c.client.Get(ctx, c.fullKey(ctx, key)).Result()
	if err != nil {
		return nil, false
	}
	var schedules []models.ClassSchedule
	if err := json.Unmarshal([]byte(data), &schedules); err != nil {
		return nil, false
	}
	return schedules, true
}

func (c *redisListingCache) Set(ctx context.Context, key string, schedules []models.ClassSchedule) {
	data, err := json.Marshal(schedules)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.fullKey(ctx, key), data, utils.ScheduleCacheTTL).Err(); err != nil {
		utils.GetLogger().Debug("listing cache set failed", zap.Error(err))
	}
}

func (c *redisListingCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, utils.ScheduleCacheGenKey).Err(); err != nil {
		utils.GetLogger().Warn("listing cache invalidation failed", zap.Error(err))
	}
}
