package api

import (
	"context"
	"strconv"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

type orderRepository struct {
	client *Client
}

// NewOrderRepository creates the order and checkout adapter.
func NewOrderRepository(client *Client) repository.OrderRepository {
	return &orderRepository{client: client}
}

func (r *orderRepository) CreateIntent(ctx context.Context, input entity.PaymentIntentInput) (*entity.PaymentIntent, error) {
	var intent entity.PaymentIntent
	if err := r.client.Post(ctx, "/orders/intent", input, &intent); err != nil {
		return nil, err
	}
	if intent.PaymentIntentID == "" {
		return nil, errors.New("payment intent response carried no id")
	}

	return &intent, nil
}

func (r *orderRepository) Confirm(ctx context.Context, input entity.ConfirmOrderInput) (*entity.Order, error) {
	var order entity.Order
	if err := r.client.Post(ctx, "/orders/confirm", input, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (r *orderRepository) List(ctx context.Context) ([]entity.Order, error) {
	var orders []entity.Order
	if err := r.client.Get(ctx, "/orders", &orders); err != nil {
		return nil, err
	}

	return orders, nil
}

func (r *orderRepository) FindByID(ctx context.Context, id int64) (*entity.Order, error) {
	var order entity.Order
	if err := r.client.Get(ctx, "/orders/"+strconv.FormatInt(id, 10), &order); err != nil {
		return nil, err
	}

	return &order, nil
}
