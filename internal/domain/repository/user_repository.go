package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProfileRepository is the remote profile API.
type ProfileRepository interface {
	GetProfile(ctx context.Context) (*entity.UserProfile, error)
	CreateProfile(ctx context.Context, input entity.UserProfileInput) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, input entity.UserProfileInput) (*entity.UserProfile, error)
}

// AddressRepository is the remote address book API.
type AddressRepository interface {
	List(ctx context.Context) ([]entity.Address, error)
	Create(ctx context.Context, input entity.AddressInput) error
	Update(ctx context.Context, id int64, input entity.AddressInput) error
	Delete(ctx context.Context, id int64) error
}
