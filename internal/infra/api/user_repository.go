package api

import (
	"context"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type profileRepository struct {
	client *Client
}

// NewProfileRepository creates the profile adapter.
func NewProfileRepository(client *Client) repository.ProfileRepository {
	return &profileRepository{client: client}
}

func (r *profileRepository) GetProfile(ctx context.Context) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := r.client.Get(ctx, "/profile", &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) CreateProfile(ctx context.Context, input entity.UserProfileInput) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := r.client.Post(ctx, "/profile", input, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

func (r *profileRepository) UpdateProfile(ctx context.Context, input entity.UserProfileInput) (*entity.UserProfile, error) {
	var profile entity.UserProfile
	if err := r.client.Put(ctx, "/profile", input, &profile); err != nil {
		return nil, err
	}

	return &profile, nil
}

type addressRepository struct {
	client *Client
}

// NewAddressRepository creates the address book adapter.
func NewAddressRepository(client *Client) repository.AddressRepository {
	return &addressRepository{client: client}
}

func (r *addressRepository) List(ctx context.Context) ([]entity.Address, error) {
	var addresses []entity.Address
	if err := r.client.Get(ctx, "/addresses", &addresses); err != nil {
		return nil, err
	}

	return addresses, nil
}

func (r *addressRepository) Create(ctx context.Context, input entity.AddressInput) error {
	return r.client.Post(ctx, "/addresses", input, nil)
}

func (r *addressRepository) Update(ctx context.Context, id int64, input entity.AddressInput) error {
	return r.client.Put(ctx, addressPath(id), input, nil)
}

func (r *addressRepository) Delete(ctx context.Context, id int64) error {
	return r.client.Delete(ctx, addressPath(id))
}

func addressPath(id int64) string {
	return "/addresses/" + strconv.FormatInt(id, 10)
}
