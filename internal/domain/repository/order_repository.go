package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// OrderRepository is the remote order and checkout API.
type OrderRepository interface {
	CreateIntent(ctx context.Context, input entity.PaymentIntentInput) (*entity.PaymentIntent, error)
	Confirm(ctx context.Context, input entity.ConfirmOrderInput) (*entity.Order, error)
	List(ctx context.Context) ([]entity.Order, error)
	FindByID(ctx context.Context, id int64) (*entity.Order, error)
}
