// Copyright (c) 2026 Inkwell CMS. All rights reserved.

package post

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/inkwell-cms/inkwell/internal/platform/constants"
)

// postCacheTTL bounds staleness for cached published posts. Mutations
// invalidate eagerly; the TTL only covers out-of-band writes.
const postCacheTTL = 15 * time.Minute

// # Redis Cache

// RedisCache implements the Cache interface on top of Redis.
//
// Entries are JSON-encoded full post payloads keyed by post ID. Only
// published posts are stored; drafts never enter the cache.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates a new Redis-backed post cache.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get returns the cached post, or an error on a miss.
func (cache *RedisCache) Get(context context.Context, id string) (*Post, error) {
	payload, err := cache.client.Get(context, constants.RedisPrefixPost+id).Bytes()
	if err != nil {
		return nil, err
	}

	var article Post
	if err := json.Unmarshal(payload, &article); err != nil {
		// A corrupt entry is treated as a miss and dropped.
		_ = cache.client.Del(context, constants.RedisPrefixPost+id).Err()
		return nil, err
	}

	return &article, nil
}

// Set stores the post under its ID for the cache TTL.
func (cache *RedisCache) Set(context context.Context, article *Post) error {
	payload, err := json.Marshal(article)
	if err != nil {
		return err
	}

	return cache.client.Set(context, constants.RedisPrefixPost+article.ID, payload, postCacheTTL).Err()
}

// Invalidate drops the cached entry after a mutation.
func (cache *RedisCache) Invalidate(context context.Context, id string) error {
	return cache.client.Del(context, constants.RedisPrefixPost+id).Err()
}
