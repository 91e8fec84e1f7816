package history

import (
	"context"
	"encoding/json"
	"strings"

	"autorent_portal/platform/logger"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "search_history:"

// RedisStore persists search history in Redis, one JSON-encoded list per
// owner. Storage failures are logged and treated as an empty history.
type RedisStore struct {
	client *redis.Client
	limit  int
	log    *logger.Logger
}

// NewRedisStore creates a store backed by the given Redis URL.
func NewRedisStore(redisURL string, limit int, log *logger.Logger) (*RedisStore, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	return &RedisStore{
		client: redis.NewClient(opt),
		limit:  limit,
		log:    log,
	}, nil
}

// Record implements Store.
func (s *RedisStore) Record(ctx context.Context, owner, query string) {
	if strings.TrimSpace(query) == "" {
		return
	}

	entries := s.load(ctx, owner)
	next := push(entries, query, s.limit)

	encoded, err := json.Marshal(next)
	if err != nil {
		return
	}
	if err := s.client.Set(ctx, keyPrefix+owner, encoded, 0).Err(); err != nil {
		s.log.Warn("search history write failed", "owner", owner, "error", err)
	}
}

// Suggest implements Store.
func (s *RedisStore) Suggest(ctx context.Context, owner, partial string) []string {
	return match(s.load(ctx, owner), partial)
}

// Close releases the underlying Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) load(ctx context.Context, owner string) []string {
	raw, err := s.client.Get(ctx, keyPrefix+owner).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Warn("search history read failed", "owner", owner, "error", err)
		}
		return nil
	}

	var entries []string
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// Corrupt payload: fail open with an empty history.
		s.log.Warn("search history payload corrupt", "owner", owner, "error", err)
		return nil
	}
	return entries
}

var _ Store = (*RedisStore)(nil)
