package mongodb

import (
	"context"
	"time"

	"varsha-travels/internal/repositories/interfaces"
	"varsha-travels/pkg/logger"

	"github.com/google/uuid"
)

// listCache stores List results under a per-collection generation token.
// Every write replaces the token, so a List that queried Mongo before the
// write stores its result under a key no reader will ask for again.
type listCache struct {
	cache      interfaces.CacheService
	collection string
	ttl        time.Duration
	logger     *logger.Logger
}

const initialGeneration = "0"

func (c listCache) generationKey() string {
	return c.cache.Key("list", c.collection, "gen")
}

func (c listCache) key(gen string) string {
	return c.cache.Key("list", c.collection, gen)
}

// generation must be read before the collection is queried.
func (c listCache) generation(ctx context.Context) string {
	if c.cache == nil {
		return ""
	}
	var gen string
	if err := c.cache.Get(ctx, c.generationKey(), &gen); err != nil || gen == "" {
		return initialGeneration
	}
	return gen
}

func (c listCache) load(ctx context.Context, gen string, dest interface{}) bool {
	if c.cache == nil {
		return false
	}
	return c.cache.Get(ctx, c.key(gen), dest) == nil
}

func (c listCache) store(ctx context.Context, gen string, docs interface{}) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, c.key(gen), docs, c.ttl); err != nil {
		c.logger.WithError(err).WithField("collection", c.collection).Warn("Failed to cache list")
	}
}

func (c listCache) invalidate(ctx context.Context) {
	if c.cache == nil {
		return
	}
	previous := c.generation(ctx)
	if err := c.cache.Set(ctx, c.generationKey(), uuid.NewString(), 0); err != nil {
		c.logger.WithError(err).WithField("collection", c.collection).Warn("Failed to invalidate list cache")
		return
	}
	if err := c.cache.Delete(ctx, c.key(previous)); err != nil {
		c.logger.WithError(err).WithField("collection", c.collection).Debug("Failed to drop previous list cache")
	}
}
