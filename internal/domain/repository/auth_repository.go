// Package repository defines the ports through which stores reach remote and durable state.
package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// AuthRepository is the remote authentication API.
type AuthRepository interface {
	Login(ctx context.Context, credentials entity.Credentials) (*entity.LoginResult, error)
	Register(ctx context.Context, credentials entity.Credentials) error
}
