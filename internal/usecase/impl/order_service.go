package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"go.uber.org/fx"
)

const orderFailedDescription = "Could not complete your order. Please try again."

// orderService implements the OrderUsecase interface.
type orderService struct {
	orderRepo repository.OrderRepository
	cart      usecase.CartUsecase
	navigator service.Navigator
	notifier  service.Notifier
	logger    *slog.Logger

	loading    inFlight
	confirming atomic.Bool

	mu           sync.RWMutex
	orders       []entity.Order
	currentOrder *entity.Order
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	OrderRepo repository.OrderRepository
	Cart      usecase.CartUsecase
	Navigator service.Navigator
	Notifier  service.Notifier
	Logger    *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		orderRepo: params.OrderRepo,
		cart:      params.Cart,
		navigator: params.Navigator,
		notifier:  params.Notifier,
		logger:    params.Logger,
	}
}

// CreateAndConfirmOrder creates a payment intent, confirms it, empties the local
// cart and navigates to the confirmation page. The cart is untouched on failure.
func (srv *orderService) CreateAndConfirmOrder(ctx context.Context, shippingAddressID int64) bool {
	if !srv.confirming.CompareAndSwap(false, true) {
		srv.logger.Debug("Order confirmation already in progress")

		return false
	}
	defer srv.confirming.Store(false)

	ctx, logger := startAction(ctx, srv.logger)

	toastID := srv.notifier.Loading("Processing payment...")

	intent, err := srv.orderRepo.CreateIntent(ctx, entity.PaymentIntentInput{ShippingAddressID: shippingAddressID})
	if err != nil {
		srv.fail(logger, toastID, "create payment intent", err)

		return false
	}

	order, err := srv.orderRepo.Confirm(ctx, entity.ConfirmOrderInput{
		PaymentIntentID:   intent.PaymentIntentID,
		ShippingAddressID: shippingAddressID,
	})
	if err != nil {
		srv.fail(logger, toastID, "confirm order", err)

		return false
	}

	srv.cart.ClearCart()

	srv.mu.Lock()
	srv.currentOrder = order
	srv.mu.Unlock()

	srv.notifier.Dismiss(toastID)
	srv.notifier.Success("Order placed successfully!")
	logger.Info("Order placed", slog.Int64("orderID", order.ID), slog.String("paymentIntentID", intent.PaymentIntentID))

	if _, err := srv.navigator.PushNamed(ctx, service.RouteOrderConfirmation, order.ID); err != nil {
		logger.Error("Failed to navigate to order confirmation", slog.Int64("orderID", order.ID), slog.Any("error", err))
	}

	return true
}

func (srv *orderService) FetchOrders(ctx context.Context) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	orders, err := srv.orderRepo.List(ctx)
	if err != nil {
		logger.Error("Failed to fetch orders", slog.Any("error", err))
		srv.notifier.Error("Could not fetch order history.")

		return false
	}

	srv.mu.Lock()
	srv.orders = orders
	srv.mu.Unlock()

	return true
}

// FetchOrderByID loads one order into CurrentOrder, which is emptied first.
func (srv *orderService) FetchOrderByID(ctx context.Context, id int64) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	srv.mu.Lock()
	srv.currentOrder = nil
	srv.mu.Unlock()

	order, err := srv.orderRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("Failed to fetch order", slog.Int64("orderID", id), slog.Any("error", err))
		srv.notifier.Error("Could not fetch order details.")

		return false
	}

	srv.mu.Lock()
	srv.currentOrder = order
	srv.mu.Unlock()

	return true
}

func (srv *orderService) Orders() []entity.Order {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return slices.Clone(srv.orders)
}

func (srv *orderService) CurrentOrder() *entity.Order {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.currentOrder
}

func (srv *orderService) IsLoading() bool {
	return srv.loading.active()
}

func (srv *orderService) IsConfirming() bool {
	return srv.confirming.Load()
}

func (srv *orderService) Reset() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.orders = nil
	srv.currentOrder = nil
}

func (srv *orderService) fail(logger *slog.Logger, toastID, step string, err error) {
	logger.Error("Order failed", slog.String("step", step), slog.Any("error", err))
	srv.notifier.Dismiss(toastID)

	description := domainerrors.ServerMessage(err)
	if description == "" {
		description = orderFailedDescription
	}
	srv.notifier.Error("Order Failed", description)
}
