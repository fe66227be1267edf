package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// UserUsecase holds the user's profile and address book.
type UserUsecase interface {
	Resettable

	// FetchProfile loads the profile. A missing profile is not a failure.
	FetchProfile(ctx context.Context) bool

	// SaveProfile creates the profile when none is held, otherwise updates it.
	SaveProfile(ctx context.Context, input entity.UserProfileInput) bool

	FetchAddresses(ctx context.Context) bool
	SaveAddress(ctx context.Context, input entity.AddressInput) bool
	UpdateAddress(ctx context.Context, id int64, input entity.AddressInput) bool
	DeleteAddress(ctx context.Context, id int64) bool

	Profile() *entity.UserProfile
	Addresses() []entity.Address
	IsLoading() bool
}
