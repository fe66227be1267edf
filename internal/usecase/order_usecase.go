package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderUsecase runs checkout and holds the order history.
type OrderUsecase interface {
	Resettable

	// CreateAndConfirmOrder pays for the cart and ships to the given address.
	// A call made while another is in flight is ignored and returns false.
	CreateAndConfirmOrder(ctx context.Context, shippingAddressID int64) bool

	FetchOrders(ctx context.Context) bool
	FetchOrderByID(ctx context.Context, id int64) bool

	Orders() []entity.Order
	CurrentOrder() *entity.Order
	IsLoading() bool
	IsConfirming() bool
}
