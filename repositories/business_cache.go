package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"lokalin/models"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const businessListCacheKey = "businesses:all"

// BusinessCache keeps the full business list in Redis. A nil client turns
// every call into a miss or a no-op.
type BusinessCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewBusinessCache(client *redis.Client, ttl time.Duration) *BusinessCache {
	return &BusinessCache{client: client, ttl: ttl}
}

func (c *BusinessCache) Get(ctx context.Context) ([]models.Business, bool) {
	if c.client == nil {
		return nil, false
	}

	cached, err := c.client.Get(ctx, businessListCacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Msg("business cache read failed")
		}
		return nil, false
	}

	var businesses []models.Business
	if err := json.Unmarshal(cached, &businesses); err != nil {
		log.Warn().Err(err).Msg("business cache entry is corrupt")
		return nil, false
	}
	return businesses, true
}

func (c *BusinessCache) Set(ctx context.Context, businesses []models.Business) {
	if c.client == nil {
		return
	}

	payload, err := json.Marshal(businesses)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, businessListCacheKey, payload, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("business cache write failed")
	}
}

func (c *BusinessCache) Invalidate(ctx context.Context) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, businessListCacheKey).Err(); err != nil {
		log.Warn().Err(err).Msg("business cache invalidation failed")
	}
}
