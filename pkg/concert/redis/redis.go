// Package redis implements a concert repository on Redis. The identifier
// counter is a Redis INCR key and each concert is a JSON string under its own
// key, so several service replicas can share one store.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/redis/go-redis/v9"

	"concerts/pkg/concert"
)

// DefaultPrefix namespaces every key the repository writes.
const DefaultPrefix = "concerts"

const scanBatch = 256

// Repository persists concerts in Redis.
type Repository struct {
	rdb    redis.UniversalClient
	prefix string
}

// New creates a Redis repository. An empty prefix selects DefaultPrefix.
func New(rdb redis.UniversalClient, prefix string) *Repository {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Repository{rdb: rdb, prefix: prefix}
}

func (r *Repository) seqKey() string {
	return r.prefix + ":seq"
}

func (r *Repository) keyPrefix() string {
	return r.prefix + ":concert:"
}

func (r *Repository) key(id int64) string {
	return r.keyPrefix() + strconv.FormatInt(id, 10)
}

// escapeGlob quotes the characters SCAN MATCH treats as pattern syntax.
func escapeGlob(s string) string {
	var b strings.Builder
	for _, c := range s {
		switch c {
		case '*', '?', '[', ']', '\\':
			b.WriteByte('\\')
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Create allocates the next identifier and stores the concert under it.
func (r *Repository) Create(ctx context.Context, c concert.Concert) (concert.Concert, error) {
	id, err := r.rdb.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return concert.Concert{}, fmt.Errorf("next concert id: %w", err)
	}
	c.ID = id
	b, err := json.Marshal(c)
	if err != nil {
		return concert.Concert{}, fmt.Errorf("encode concert: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key(id), b, 0).Err(); err != nil {
		return concert.Concert{}, fmt.Errorf("store concert %d: %w", id, err)
	}
	return c, nil
}

// Get retrieves a concert by ID.
func (r *Repository) Get(ctx context.Context, id int64) (concert.Concert, error) {
	b, err := r.rdb.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return concert.Concert{}, concert.ErrNotFound
	}
	if err != nil {
		return concert.Concert{}, fmt.Errorf("get concert %d: %w", id, err)
	}
	var c concert.Concert
	if err := json.Unmarshal(b, &c); err != nil {
		return concert.Concert{}, fmt.Errorf("decode concert %d: %w", id, err)
	}
	return c, nil
}

// List fetches the window with a single MGET.
func (r *Repository) List(ctx context.Context, w concert.Window) ([]concert.Concert, error) {
	out := make([]concert.Concert, 0)
	if w.Size <= 0 {
		return out, nil
	}
	keys := make([]string, 0, w.Size)
	for id := w.Start; id < w.End(); id++ {
		keys = append(keys, r.key(id))
	}
	vals, err := r.rdb.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("list concerts: %w", err)
	}
	for _, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var c concert.Concert
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return nil, fmt.Errorf("decode concert: %w", err)
		}
		out = append(out, c)
	}
	return out, nil
}

// DeleteAll removes every concert key and then the counter. Only keys under
// the repository's own prefix are deleted, whatever characters it contains. A
// Create running concurrently may write a key the scan has already passed.
func (r *Repository) DeleteAll(ctx context.Context) error {
	own := r.keyPrefix()
	match := escapeGlob(own) + "*"
	var cursor uint64
	for {
		found, next, err := r.rdb.Scan(ctx, cursor, match, scanBatch).Result()
		if err != nil {
			return fmt.Errorf("scan concerts: %w", err)
		}
		keys := found[:0]
		for _, k := range found {
			if strings.HasPrefix(k, own) {
				keys = append(keys, k)
			}
		}
		if len(keys) > 0 {
			if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("delete concerts: %w", err)
			}
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	if err := r.rdb.Del(ctx, r.seqKey()).Err(); err != nil {
		return fmt.Errorf("reset concert id: %w", err)
	}
	return nil
}
