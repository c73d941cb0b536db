package i18n

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultRedisKeyPrefix namespaces translation tables in a shared Redis.
const defaultRedisKeyPrefix = "i18n:"

// RedisStore keeps translation tables in Redis as JSON blobs, one key per
// language code, letting multiple instances share a single preloaded set.
// Expiry is delegated to Redis TTLs; a miss optionally falls through to a
// loader whose result is written back.
type RedisStore struct {
	client redis.UniversalClient
	ttl    time.Duration
	prefix string
	loader TableLoader
	logger *slog.Logger
}

var _ Store = (*RedisStore)(nil)

// RedisStoreOption configures a RedisStore.
type RedisStoreOption func(*RedisStore)

// WithRedisTTL sets the expiry applied when tables are stored.
// Zero (the default) stores tables without expiry.
func WithRedisTTL(ttl time.Duration) RedisStoreOption {
	if ttl < 0 {
		panic("WithRedisTTL: duration must be >= 0")
	}
	return func(s *RedisStore) { s.ttl = ttl }
}

// WithRedisKeyPrefix overrides the key namespace, default "i18n:".
func WithRedisKeyPrefix(prefix string) RedisStoreOption {
	return func(s *RedisStore) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// WithRedisLoader sets the function invoked to fetch a table when the key is
// absent in Redis. The loaded table is written back with the configured TTL.
func WithRedisLoader(loader TableLoader) RedisStoreOption {
	return func(s *RedisStore) { s.loader = loader }
}

// WithRedisLogger provides a logger for background write failures.
// If not specified, a discard logger is used.
func WithRedisLogger(logger *slog.Logger) RedisStoreOption {
	return func(s *RedisStore) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewRedisStore creates a Store backed by the given Redis client.
func NewRedisStore(client redis.UniversalClient, opts ...RedisStoreOption) (*RedisStore, error) {
	if client == nil {
		return nil, ErrNilRedisClient
	}

	s := &RedisStore{
		client: client,
		prefix: defaultRedisKeyPrefix,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Get returns the table for code. Absent keys resolve through the loader
// when one is configured, otherwise to an empty table.
func (s *RedisStore) Get(ctx context.Context, code string) (Table, error) {
	data, err := s.client.Get(ctx, s.key(code)).Bytes()
	switch {
	case err == nil:
		var table Table
		if err := json.Unmarshal(data, &table); err != nil {
			return nil, errors.Join(ErrFailedToUnmarshalTable, err)
		}
		return table, nil
	case errors.Is(err, redis.Nil):
		return s.load(ctx, code)
	default:
		return nil, err
	}
}

// Set stores a table snapshot for code with the configured TTL. Write
// failures are logged rather than surfaced; the next lookup falls back to
// the loader.
func (s *RedisStore) Set(code string, table Table) {
	data, err := json.Marshal(table)
	if err != nil {
		s.logger.Error("failed to marshal translation table", "lang", code, "error", err)
		return
	}
	if err := s.client.Set(context.Background(), s.key(code), data, s.ttl).Err(); err != nil {
		s.logger.Error("failed to store translation table", "lang", code, "error", err)
	}
}

func (s *RedisStore) load(ctx context.Context, code string) (Table, error) {
	if s.loader == nil {
		return Table{}, nil
	}

	table, err := s.loader(ctx, code)
	if err != nil {
		return nil, err
	}
	s.Set(code, table)
	return table, nil
}

func (s *RedisStore) key(code string) string {
	return s.prefix + code
}
