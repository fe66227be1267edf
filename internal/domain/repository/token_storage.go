package repository

import "context"

// TokenStorage persists the session token across process restarts.
type TokenStorage interface {
	// Load returns the stored token. ok is false when nothing is stored.
	Load(ctx context.Context) (token string, ok bool, err error)

	// Save replaces the stored token.
	Save(ctx context.Context, token string) error

	// Clear removes the stored token. Clearing an empty storage is not an error.
	Clear(ctx context.Context) error

	// Close releases any resources held by the storage
	Close() error
}
