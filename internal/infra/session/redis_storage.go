package session

import (
	"context"
	"time"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// redisStorage keeps the token under a redis key, for clients that share a session
// across machines.
type redisStorage struct {
	client *redis.Client
	key    string
}

// NewRedisStorage connects to redis and verifies the connection.
func NewRedisStorage(ctx context.Context, cfg *config.RedisConfig, key string) (repository.TokenStorage, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "connect to redis at %s", cfg.Addr)
	}

	return newRedisStorageWithClient(client, key), nil
}

func newRedisStorageWithClient(client *redis.Client, key string) *redisStorage {
	return &redisStorage{client: client, key: key}
}

func (s *redisStorage) Load(ctx context.Context) (string, bool, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		return "", false, errors.Wrap(err, "read session token")
	}

	return token, token != "", nil
}

func (s *redisStorage) Save(ctx context.Context, token string) error {
	return errors.Wrap(s.client.Set(ctx, s.key, token, 0).Err(), "write session token")
}

func (s *redisStorage) Clear(ctx context.Context) error {
	return errors.Wrap(s.client.Del(ctx, s.key).Err(), "delete session token")
}

func (s *redisStorage) Close() error {
	return errors.WithStack(s.client.Close())
}
