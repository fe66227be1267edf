package api

import (
	"context"
	"log/slog"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

type authRepository struct {
	client *Client
}

// NewAuthRepository creates the auth adapter. Login and registration are
// always sent without a bearer token, so it gets its own client.
func NewAuthRepository(cfg *config.Config, logger *slog.Logger) repository.AuthRepository {
	return &authRepository{client: NewClient(cfg, nil, logger)}
}

func (r *authRepository) Login(ctx context.Context, credentials entity.Credentials) (*entity.LoginResult, error) {
	var result entity.LoginResult
	if err := r.client.Post(ctx, "/login", credentials, &result); err != nil {
		return nil, err
	}
	if result.Token == "" {
		return nil, errors.New("login response carried no token")
	}

	return &result, nil
}

func (r *authRepository) Register(ctx context.Context, credentials entity.Credentials) error {
	return r.client.Post(ctx, "/register", credentials, nil)
}
