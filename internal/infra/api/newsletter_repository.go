package api

import (
	"context"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type newsletterRepository struct {
	client *Client
}

// NewNewsletterRepository creates the newsletter adapter.
func NewNewsletterRepository(client *Client) repository.NewsletterRepository {
	return &newsletterRepository{client: client}
}

func (r *newsletterRepository) Subscribe(ctx context.Context, input entity.SubscribeInput) error {
	return r.client.Post(ctx, "/newsletter/subscribe", input, nil)
}

func (r *newsletterRepository) Archive(ctx context.Context) ([]entity.Newsletter, error) {
	var newsletters []entity.Newsletter
	if err := r.client.Get(ctx, "/newsletter/archive", &newsletters); err != nil {
		return nil, err
	}

	return newsletters, nil
}
