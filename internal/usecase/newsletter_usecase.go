package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// NewsletterUsecase handles subscriptions and the subscriber-only archive.
type NewsletterUsecase interface {
	Resettable

	Subscribe(ctx context.Context, email string) bool
	FetchArchive(ctx context.Context) bool

	Newsletters() []entity.Newsletter

	// Latest is the newest issue, or nil when the archive is empty.
	Latest() *entity.Newsletter

	// Older is every issue after the newest one.
	Older() []entity.Newsletter

	// ErrorMessage is the last archive failure shown to the user, or "".
	ErrorMessage() string
	IsLoading() bool
}
