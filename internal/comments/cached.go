package comments

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/rshade/commentgrid/internal/cache"
	"github.com/rshade/commentgrid/internal/logging"
)

// CachedSource serves the comment list from the file cache when fresh and
// coalesces concurrent misses into one upstream fetch.
// Cache failures are logged and otherwise ignored.
type CachedSource struct {
	next  Source
	store *cache.Store
	key   string
	group singleflight.Group
}

// NewCachedSource wraps next. identity names the upstream (usually the
// endpoint URL) and determines the cache key.
func NewCachedSource(next Source, store *cache.Store, identity string) *CachedSource {
	return &CachedSource{
		next:  next,
		store: store,
		key:   cache.Key("comments", identity),
	}
}

// Key returns the cache key for this source.
func (c *CachedSource) Key() string {
	return c.key
}

// Fetch implements Source.
func (c *CachedSource) Fetch(ctx context.Context) ([]Comment, error) {
	log := loggerFrom(ctx)

	if records, ok := c.lookup(ctx, log); ok {
		return records, nil
	}

	v, err, shared := c.group.Do(c.key, func() (interface{}, error) {
		records, fetchErr := c.next.Fetch(ctx)
		if fetchErr != nil {
			return nil, fetchErr
		}
		c.save(ctx, log, records)
		return records, nil
	})
	if err != nil {
		return nil, err
	}
	if shared {
		log.Debug().Ctx(ctx).Msg("joined in-flight comments fetch")
	}

	records, _ := v.([]Comment)
	return records, nil
}

func (c *CachedSource) lookup(ctx context.Context, log *zerolog.Logger) ([]Comment, bool) {
	if c.store == nil || !c.store.IsEnabled() {
		return nil, false
	}

	entry, err := c.store.Get(c.key)
	switch {
	case err == nil:
	case errors.Is(err, cache.ErrNotFound), errors.Is(err, cache.ErrExpired):
		log.Debug().Ctx(ctx).Err(err).Msg("comments cache miss")
		return nil, false
	default:
		log.Warn().Ctx(ctx).Err(err).Msg("comments cache read failed")
		return nil, false
	}

	var records []Comment
	if err := json.Unmarshal(entry.Data, &records); err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("discarding unreadable comments cache entry")
		_ = c.store.Delete(c.key)
		return nil, false
	}

	log.Debug().Ctx(ctx).
		Int("count", len(records)).
		Str("age", cache.FormatDuration(entry.Age())).
		Str("expires_in", cache.FormatDuration(entry.TimeUntilExpiration())).
		Msg("comments cache hit")
	return records, true
}

func (c *CachedSource) save(ctx context.Context, log *zerolog.Logger, records []Comment) {
	if c.store == nil || !c.store.IsEnabled() {
		return
	}

	data, err := json.Marshal(records)
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("failed to encode comments for cache")
		return
	}
	if err := c.store.Set(c.key, data); err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("comments cache write failed")
	}
}

func loggerFrom(ctx context.Context) *zerolog.Logger {
	return logging.FromContext(ctx)
}
