package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// CartUsecase mirrors the user's remote cart. Every mutation is followed by
// a full refetch, and every mutation shows exactly one notification.
type CartUsecase interface {
	Resettable

	FetchCart(ctx context.Context) bool
	AddToCart(ctx context.Context, productID int64, quantity int) bool

	// UpdateQuantity sets a line's quantity. A quantity of zero or less removes the line.
	UpdateQuantity(ctx context.Context, productID int64, quantity int) bool
	RemoveFromCart(ctx context.Context, productID int64) bool

	// ClearCart empties the local mirror without calling the API.
	ClearCart()

	TogglePanel()
	IsPanelOpen() bool
	IsLoading() bool

	Items() []entity.CartLine
	ItemCount() int

	// CartTotal is the formatted sum of price times quantity, e.g. "£550.00".
	CartTotal() string
}
