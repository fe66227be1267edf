package session

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// StorageParams holds dependencies for TokenStorage, injected by Fx
type StorageParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewTokenStorage creates the TokenStorage selected by configuration
func NewTokenStorage(params StorageParams) (repository.TokenStorage, error) {
	cfg := params.Config.Session
	logger := params.Logger

	var storage repository.TokenStorage
	var err error

	switch cfg.Backend {
	case config.SessionBackendFile:
		logger.Debug("Using file session storage", slog.String("bucket_url", cfg.BucketURL))

		storage, err = NewBlobStorage(params.Ctx, cfg.BucketURL, cfg.Key)

	case config.SessionBackendMem:
		logger.Debug("Using in-memory session storage; the session ends with the process")

		storage, err = NewBlobStorage(params.Ctx, "mem://", cfg.Key)

	case config.SessionBackendRedis:
		if cfg.Redis == nil || cfg.Redis.Addr == "" {
			return nil, errors.New("session.redis.addr is required for redis backend")
		}
		logger.Debug("Using redis session storage", slog.String("addr", cfg.Redis.Addr))

		storage, err = NewRedisStorage(params.Ctx, cfg.Redis, cfg.Key)

	default:
		return nil, errors.Errorf("unknown session backend: %s", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return storage.Close()
		},
	})

	return storage, nil
}

// Module provides the session storage FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewTokenStorage),
)
