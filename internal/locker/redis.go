package locker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-estate/internal/config"
	"github.com/MKhiriev/go-estate/internal/logger"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const (
	redisKeyPrefix     = "go-estate:lock:"
	redisRetryInterval = 50 * time.Millisecond
)

// releaseScript deletes the key only while it still carries our token, so an
// expired lock re-taken by another holder is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker is a [Locker] shared by every replica connected to the same
// Redis. A held key expires after ttl even if its holder dies.
type RedisLocker struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisLocker connects to cfg.RedisAddress and verifies the connection.
func NewRedisLocker(ctx context.Context, cfg config.Locker, log *logger.Logger) (*RedisLocker, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisLocker").Msg("error connecting redis")
		client.Close()
		return nil, fmt.Errorf("error connecting redis: %w", err)
	}

	return newRedisLocker(client, cfg.TTL, log), nil
}

func newRedisLocker(client *redis.Client, ttl time.Duration, log *logger.Logger) *RedisLocker {
	if ttl <= 0 {
		ttl = config.DefaultLockTTL
	}
	return &RedisLocker{client: client, ttl: ttl, logger: log}
}

// Lock implements [Locker]. It polls SET NX until the key is free or ctx is
// done.
func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	redisKey := redisKeyPrefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(redisRetryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, redisKey, token, l.ttl).Result()
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*RedisLocker.Lock").Str("key", key).Msg("error acquiring lock")
			return nil, fmt.Errorf("%w: %w", ErrLockNotAcquired, err)
		}
		if ok {
			break
		}

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", ErrLockNotAcquired, ctx.Err())
		case <-ticker.C:
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// the caller's context may already be cancelled
			releaseCtx, cancel := context.WithTimeout(context.Background(), l.ttl)
			defer cancel()

			if err := releaseScript.Run(releaseCtx, l.client, []string{redisKey}, token).Err(); err != nil {
				l.logger.Warn().Err(err).Str("func", "*RedisLocker.Lock").Str("key", key).Msg("error releasing lock")
			}
		})
	}, nil
}

// Close closes the Redis client.
func (l *RedisLocker) Close() error {
	return l.client.Close()
}

// New returns a [RedisLocker] when cfg.RedisAddress is set and a
// [LocalLocker] otherwise. The returned close function releases the backend.
func New(ctx context.Context, cfg config.Locker, log *logger.Logger) (Locker, func() error, error) {
	if cfg.RedisAddress == "" {
		log.Info().Str("func", "locker.New").Msg("using in-process locker")
		return NewLocalLocker(), func() error { return nil }, nil
	}

	rl, err := NewRedisLocker(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}
	log.Info().Str("func", "locker.New").Str("address", cfg.RedisAddress).Msg("using redis locker")

	return rl, rl.Close, nil
}
