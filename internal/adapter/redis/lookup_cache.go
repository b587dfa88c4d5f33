package redis

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/heartmarshall/deeplisten-backend/internal/domain"
)

const (
	lookupKeyPrefix = "deeplisten:lookup:"
	// missMarker caches "the dictionary does not know this word".
	missMarker = "-"
)

// Lookuper is the dictionary lookup being cached.
type Lookuper interface {
	Lookup(ctx context.Context, words []string) (map[string]domain.WordEnrichment, error)
}

// LookupCache is a read-through Redis cache in front of a Lookuper.
// Redis failures are logged and the call goes straight to the inner lookup.
type LookupCache struct {
	next Lookuper
	rdb  goredis.Cmdable
	ttl  time.Duration
	log  *slog.Logger
}

// NewLookupCache wraps next with a cache whose entries expire after ttl.
func NewLookupCache(next Lookuper, rdb goredis.Cmdable, ttl time.Duration, log *slog.Logger) *LookupCache {
	return &LookupCache{
		next: next,
		rdb:  rdb,
		ttl:  ttl,
		log:  log.With("component", "lookup_cache"),
	}
}

// Lookup answers from the cache where possible and asks the inner lookup for the rest.
func (c *LookupCache) Lookup(ctx context.Context, words []string) (map[string]domain.WordEnrichment, error) {
	result := make(map[string]domain.WordEnrichment, len(words))
	if len(words) == 0 {
		return result, nil
	}

	missing := c.readCached(ctx, words, result)
	if len(missing) == 0 {
		return result, nil
	}

	fetched, err := c.next.Lookup(ctx, missing)
	if err != nil {
		return nil, err
	}
	for w, e := range fetched {
		result[w] = e
	}

	c.store(ctx, missing, fetched)
	return result, nil
}

// readCached fills result from Redis and returns the words it could not answer.
func (c *LookupCache) readCached(ctx context.Context, words []string, result map[string]domain.WordEnrichment) []string {
	keys := make([]string, len(words))
	for i, w := range words {
		keys[i] = lookupKeyPrefix + w
	}

	vals, err := c.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		c.log.WarnContext(ctx, "cache read failed", slog.String("error", err.Error()))
		return words
	}

	var missing []string
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			missing = append(missing, words[i])
			continue
		}
		if s == missMarker {
			continue
		}
		var e domain.WordEnrichment
		if err := json.Unmarshal([]byte(s), &e); err != nil {
			missing = append(missing, words[i])
			continue
		}
		result[words[i]] = e
	}
	return missing
}

func (c *LookupCache) store(ctx context.Context, asked []string, fetched map[string]domain.WordEnrichment) {
	pipe := c.rdb.Pipeline()
	for _, w := range asked {
		val := missMarker
		if e, ok := fetched[w]; ok {
			raw, err := json.Marshal(e)
			if err != nil {
				continue
			}
			val = string(raw)
		}
		pipe.Set(ctx, lookupKeyPrefix+w, val, c.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, goredis.Nil) {
		c.log.WarnContext(ctx, "cache write failed", slog.String("error", err.Error()))
	}
}
