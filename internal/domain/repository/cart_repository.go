package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartRepository is the remote cart API.
type CartRepository interface {
	GetCart(ctx context.Context) (*entity.CartResponse, error)
	AddItem(ctx context.Context, input entity.AddCartItemInput) error
	UpdateItem(ctx context.Context, productID int64, input entity.UpdateCartItemInput) error
	RemoveItem(ctx context.Context, productID int64) error
}
