package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// AuthUsecase owns the session token and the login, register and logout flows.
type AuthUsecase interface {
	Login(ctx context.Context, credentials entity.Credentials) bool
	Register(ctx context.Context, credentials entity.Credentials) bool

	// Logout drops the session everywhere and resets every registered store.
	Logout(ctx context.Context)

	// OnLogout registers stores to reset on logout.
	OnLogout(stores ...Resettable)

	Token() string
	IsAuthenticated() bool
	User() *entity.User
	Session() entity.Session
}

// --- Input DTOs ---

// LoginInput is the validated login form.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterInput is the validated registration form.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}
