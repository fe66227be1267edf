package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// NewsletterRepository is the remote newsletter API.
type NewsletterRepository interface {
	Subscribe(ctx context.Context, input entity.SubscribeInput) error

	// Archive returns past issues, newest first.
	Archive(ctx context.Context) ([]entity.Newsletter, error)
}
