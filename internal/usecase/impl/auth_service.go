package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	authRepo  repository.AuthRepository
	storage   repository.TokenStorage
	tokens    service.TokenService
	notifier  service.Notifier
	validator *validator.Validator
	logger    *slog.Logger

	mu      sync.RWMutex
	session entity.Session
	stores  []usecase.Resettable
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Ctx       context.Context
	AuthRepo  repository.AuthRepository
	Storage   repository.TokenStorage
	Tokens    service.TokenService
	Notifier  service.Notifier
	Validator *validator.Validator
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. The durable token is read once, here.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	srv := &authService{
		authRepo:  params.AuthRepo,
		storage:   params.Storage,
		tokens:    params.Tokens,
		notifier:  params.Notifier,
		validator: params.Validator,
		logger:    params.Logger,
	}
	srv.restore(params.Ctx)

	return srv
}

func (srv *authService) restore(ctx context.Context) {
	token, ok, err := srv.storage.Load(ctx)
	if err != nil {
		srv.logger.Warn("Failed to read stored session token", slog.Any("error", err))

		return
	}
	if !ok || token == "" {
		return
	}

	if expiresAt, ok := srv.tokens.ExpiresAt(token); ok && expiresAt.Before(time.Now()) {
		srv.logger.Warn("Stored session token has expired", slog.Time("expiresAt", expiresAt))
	}

	srv.session = entity.Session{Token: token, User: srv.decodeUser(token)}
	srv.logger.Debug("Session restored", slog.Bool("hasUser", srv.session.User != nil))
}

// Login exchanges credentials for a session token.
func (srv *authService) Login(ctx context.Context, credentials entity.Credentials) bool {
	ctx, logger := startAction(ctx, srv.logger)

	input := usecase.LoginInput{Email: credentials.Email, Password: credentials.Password}
	if _, err := srv.checkCredentials(input); err != nil {
		logger.Info("Login rejected before sending", slog.Any("error", err))
		srv.notifier.Error("Login Failed", "Please check your email and password.")

		return false
	}

	result, err := srv.authRepo.Login(ctx, credentials)
	if err != nil {
		logger.Error("Login failed", slog.String("email", credentials.Email), slog.Any("error", err))
		srv.notifier.Error("Login Failed", "Please check your email and password.")

		return false
	}

	srv.setToken(ctx, logger, result.Token)
	logger.Info("Logged in", slog.String("email", credentials.Email))
	srv.notifier.Success("Login successful!")

	return true
}

// Register creates an account. It does not log the user in.
func (srv *authService) Register(ctx context.Context, credentials entity.Credentials) bool {
	ctx, logger := startAction(ctx, srv.logger)

	input := usecase.RegisterInput{Email: credentials.Email, Password: credentials.Password}
	if problem, err := srv.checkCredentials(input); err != nil {
		logger.Info("Registration rejected before sending", slog.Any("error", err))
		srv.notifier.Error("Registration Failed", problem)

		return false
	}

	if err := srv.authRepo.Register(ctx, credentials); err != nil {
		logger.Error("Registration failed", slog.String("email", credentials.Email), slog.Any("error", err))
		srv.notifier.Error("Registration Failed", "This email may already be in use.")

		return false
	}

	logger.Info("Registered", slog.String("email", credentials.Email))
	srv.notifier.Success("Registration successful!", "You can now log in with your new account.")

	return true
}

// Logout clears the session in memory and in storage, then resets every registered store.
func (srv *authService) Logout(ctx context.Context) {
	ctx, logger := startAction(ctx, srv.logger)

	srv.mu.Lock()
	srv.session = entity.Session{}
	stores := append([]usecase.Resettable(nil), srv.stores...)
	srv.mu.Unlock()

	if err := srv.storage.Clear(ctx); err != nil {
		logger.Error("Failed to clear stored session token", slog.Any("error", err))
	}

	for _, store := range stores {
		store.Reset()
	}

	logger.Info("Logged out", slog.Int("storesReset", len(stores)))
	srv.notifier.Info("You have been logged out.")
}

func (srv *authService) OnLogout(stores ...usecase.Resettable) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.stores = append(srv.stores, stores...)
}

// Token implements api.TokenSource.
func (srv *authService) Token() string {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.session.Token
}

func (srv *authService) IsAuthenticated() bool {
	return srv.Session().IsAuthenticated()
}

func (srv *authService) User() *entity.User {
	return srv.Session().User
}

func (srv *authService) Session() entity.Session {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.session
}

// checkCredentials validates input before anything is sent. The error wraps
// ErrInvalidCredentials and problem names the offending fields.
func (srv *authService) checkCredentials(input any) (string, error) {
	if err := srv.validator.Validate(input); err != nil {
		problem := validator.Describe(err)

		return problem, errors.Wrap(domainerrors.ErrInvalidCredentials, problem)
	}

	return "", nil
}

func (srv *authService) setToken(ctx context.Context, logger *slog.Logger, token string) {
	srv.mu.Lock()
	srv.session = entity.Session{Token: token, User: srv.decodeUser(token)}
	srv.mu.Unlock()

	if err := srv.storage.Save(ctx, token); err != nil {
		logger.Warn("Failed to persist session token", slog.Any("error", err))
	}
}

func (srv *authService) decodeUser(token string) *entity.User {
	user, err := srv.tokens.DecodeUser(token)
	if err != nil {
		srv.logger.Debug("Session token carries no user", slog.Any("error", err))

		return nil
	}

	return user
}
