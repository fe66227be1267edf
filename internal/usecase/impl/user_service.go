package impl

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	profileRepo repository.ProfileRepository
	addressRepo repository.AddressRepository
	notifier    service.Notifier
	logger      *slog.Logger

	loading inFlight

	mu        sync.RWMutex
	profile   *entity.UserProfile
	addresses []entity.Address
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	ProfileRepo repository.ProfileRepository
	AddressRepo repository.AddressRepository
	Notifier    service.Notifier
	Logger      *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		profileRepo: params.ProfileRepo,
		addressRepo: params.AddressRepo,
		notifier:    params.Notifier,
		logger:      params.Logger,
	}
}

func (srv *userService) FetchProfile(ctx context.Context) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	profile, err := srv.profileRepo.GetProfile(ctx)
	if err != nil {
		if domainerrors.HasStatus(err, http.StatusNotFound) {
			logger.Debug("No profile yet")
			srv.setProfile(nil)

			return true
		}

		logger.Error("Failed to fetch profile", slog.Any("error", err))
		srv.notifier.Error("Failed to fetch profile.")

		return false
	}

	srv.setProfile(profile)

	return true
}

// SaveProfile posts a new profile when none is held and puts an update otherwise.
// Whether the server has one is only known from the last fetch.
func (srv *userService) SaveProfile(ctx context.Context, input entity.UserProfileInput) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	save := srv.profileRepo.UpdateProfile
	if srv.Profile() == nil {
		save = srv.profileRepo.CreateProfile
	}

	profile, err := save(ctx, input)
	if err != nil {
		logger.Error("Failed to save profile", slog.Any("error", err))
		srv.notifier.Error("Failed to save profile.")

		return false
	}

	srv.setProfile(profile)
	srv.notifier.Success("Profile updated successfully!")

	return true
}

func (srv *userService) FetchAddresses(ctx context.Context) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	if err := srv.refetchAddresses(ctx, logger); err != nil {
		srv.notifier.Error("Failed to fetch addresses.")

		return false
	}

	return true
}

func (srv *userService) SaveAddress(ctx context.Context, input entity.AddressInput) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	if err := srv.addressRepo.Create(ctx, input); err != nil {
		logger.Error("Failed to add address", slog.Any("error", err))
		srv.notifier.Error("Failed to add address.")

		return false
	}

	srv.notifier.Success("Address added successfully!")
	_ = srv.refetchAddresses(ctx, logger)

	return true
}

func (srv *userService) UpdateAddress(ctx context.Context, id int64, input entity.AddressInput) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	if err := srv.addressRepo.Update(ctx, id, input); err != nil {
		logger.Error("Failed to update address", slog.Int64("addressID", id), slog.Any("error", err))
		srv.notifier.Error("Failed to update address.")

		return false
	}

	srv.notifier.Success("Address updated successfully!")
	_ = srv.refetchAddresses(ctx, logger)

	return true
}

func (srv *userService) DeleteAddress(ctx context.Context, id int64) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	if err := srv.addressRepo.Delete(ctx, id); err != nil {
		logger.Error("Failed to remove address", slog.Int64("addressID", id), slog.Any("error", err))
		srv.notifier.Error("Failed to remove address.")

		return false
	}

	srv.notifier.Info("Address removed.")
	_ = srv.refetchAddresses(ctx, logger)

	return true
}

func (srv *userService) Profile() *entity.UserProfile {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.profile
}

func (srv *userService) Addresses() []entity.Address {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return slices.Clone(srv.addresses)
}

func (srv *userService) IsLoading() bool {
	return srv.loading.active()
}

func (srv *userService) Reset() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.profile = nil
	srv.addresses = nil
}

func (srv *userService) setProfile(profile *entity.UserProfile) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.profile = profile
}

func (srv *userService) refetchAddresses(ctx context.Context, logger *slog.Logger) error {
	done := srv.loading.begin()
	defer done()

	addresses, err := srv.addressRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch addresses", slog.Any("error", err))

		return err
	}

	srv.mu.Lock()
	srv.addresses = addresses
	srv.mu.Unlock()

	return nil
}
