package api

import (
	"context"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type cartRepository struct {
	client *Client
}

// NewCartRepository creates the cart adapter.
func NewCartRepository(client *Client) repository.CartRepository {
	return &cartRepository{client: client}
}

func (r *cartRepository) GetCart(ctx context.Context) (*entity.CartResponse, error) {
	var cart entity.CartResponse
	if err := r.client.Get(ctx, "/cart", &cart); err != nil {
		return nil, err
	}

	return &cart, nil
}

func (r *cartRepository) AddItem(ctx context.Context, input entity.AddCartItemInput) error {
	return r.client.Post(ctx, "/cart/items", input, nil)
}

func (r *cartRepository) UpdateItem(ctx context.Context, productID int64, input entity.UpdateCartItemInput) error {
	return r.client.Put(ctx, cartItemPath(productID), input, nil)
}

func (r *cartRepository) RemoveItem(ctx context.Context, productID int64) error {
	return r.client.Delete(ctx, cartItemPath(productID))
}

func cartItemPath(productID int64) string {
	return "/cart/items/" + strconv.FormatInt(productID, 10)
}
