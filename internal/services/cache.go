package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson"
)

// CacheKeyPrefix is the Redis key prefix for cached documents.
const CacheKeyPrefix = "doc:"

// DocumentCache is a read-through Redis cache in front of point lookups.
// Queries pass straight through. Redis failures are logged and treated as
// misses so the cache never turns a servable request into an error.
type DocumentCache struct {
	next      Documents
	client    *redis.Client
	namespace string
	ttl       time.Duration
	log       *slog.Logger
}

// NewDocumentCache caches documents of next under namespace, normally
// <database>.<scope>, so deployments sharing a Redis never collide.
func NewDocumentCache(next Documents, client *redis.Client, namespace string, ttl time.Duration, log *slog.Logger) *DocumentCache {
	return &DocumentCache{next: next, client: client, namespace: namespace, ttl: ttl, log: log}
}

// CacheKey returns the Redis key for a document, e.g.
// doc:sample_app.profiles:user_data:42.
func CacheKey(namespace, collection, id string) string {
	return CacheKeyPrefix + namespace + ":" + DocumentKey(collection, id)
}

func (c *DocumentCache) Get(ctx context.Context, collection, id string) (bson.Raw, error) {
	key := CacheKey(c.namespace, collection, id)

	val, err := c.client.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		doc := bson.Raw(val)
		if verr := doc.Validate(); verr == nil {
			return doc, nil
		}
		c.log.WarnContext(ctx, "discarding corrupt cache entry", "key", key)
	case errors.Is(err, redis.Nil):
	default:
		c.log.WarnContext(ctx, "cache read failed", "key", key, "error", err)
	}

	doc, err := c.next.Get(ctx, collection, id)
	if err != nil {
		return nil, err
	}
	if err := c.client.Set(ctx, key, []byte(doc), c.ttl).Err(); err != nil {
		c.log.WarnContext(ctx, "cache write failed", "key", key, "error", err)
	}
	return doc, nil
}

func (c *DocumentCache) Query(ctx context.Context, collection, field, value string) ([]bson.Raw, error) {
	return c.next.Query(ctx, collection, field, value)
}
