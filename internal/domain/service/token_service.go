package service

import (
	"time"

	"storefront/internal/domain/entity"
)

// TokenService reads what a session token carries.
// It never verifies signatures; the API stays the authority on validity.
type TokenService interface {
	// DecodeUser extracts the user echo from the token's claims.
	DecodeUser(token string) (*entity.User, error)

	// ExpiresAt returns the token's declared expiry, if any.
	ExpiresAt(token string) (time.Time, bool)
}
