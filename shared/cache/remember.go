package cache

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Remember serves key from the cache, otherwise loads it once per key across concurrent callers
// sharing group and stores the result for ttl seconds. Cache failures never fail the read.
func Remember[T any](ctx context.Context, c RedisCache, group *singleflight.Group, key string, ttl int, load func(context.Context) (T, error)) (T, error) {
	var res T

	if err := c.Get(ctx, key, &res); err == nil {
		log.Debug().Str("cacheKey", key).Msg("cache hit")

		return res, nil
	}

	value, err, _ := group.Do(key, func() (any, error) {
		loaded, err := load(ctx)
		if err != nil {
			return loaded, err
		}

		if err := c.Save(ctx, key, loaded, ttl); err != nil {
			log.Warn().Err(err).Str("cacheKey", key).Msg("failed to save cache")
		}

		return loaded, nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	loaded, ok := value.(T)
	if !ok {
		return res, fmt.Errorf("unexpected cached type %T for key %s", value, key)
	}

	return loaded, nil
}
