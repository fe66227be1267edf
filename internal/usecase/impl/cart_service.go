package impl

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	cartRepo repository.CartRepository
	notifier service.Notifier
	logger   *slog.Logger

	loading inFlight

	mu        sync.RWMutex
	items     []entity.CartLine
	panelOpen bool
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	CartRepo repository.CartRepository
	Notifier service.Notifier
	Logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		cartRepo: params.CartRepo,
		notifier: params.Notifier,
		logger:   params.Logger,
	}
}

// FetchCart replaces the held lines with the server's cart.
func (srv *cartService) FetchCart(ctx context.Context) bool {
	ctx, logger := startAction(ctx, srv.logger)

	if err := srv.refetch(ctx, logger); err != nil {
		srv.notifier.Error("Could not load your cart.")

		return false
	}

	return true
}

// AddToCart adds quantity units of a product and opens the cart panel.
func (srv *cartService) AddToCart(ctx context.Context, productID int64, quantity int) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	input := entity.AddCartItemInput{ProductID: productID, Quantity: quantity}
	if err := srv.cartRepo.AddItem(ctx, input); err != nil {
		logger.Error("Failed to add item to cart", slog.Int64("productID", productID), slog.Any("error", err))
		srv.notifier.Error("Could not add item")

		return false
	}

	srv.notifier.Success("Item added to cart!")
	_ = srv.refetch(ctx, logger)

	srv.mu.Lock()
	srv.panelOpen = true
	srv.mu.Unlock()

	return true
}

func (srv *cartService) UpdateQuantity(ctx context.Context, productID int64, quantity int) bool {
	if quantity <= 0 {
		return srv.RemoveFromCart(ctx, productID)
	}

	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	if err := srv.cartRepo.UpdateItem(ctx, productID, entity.UpdateCartItemInput{Quantity: quantity}); err != nil {
		logger.Error("Failed to update cart quantity",
			slog.Int64("productID", productID),
			slog.Int("quantity", quantity),
			slog.Any("error", err),
		)
		srv.notifier.Error("Failed to update item quantity.")

		return false
	}

	srv.notifier.Success("Cart updated.")
	_ = srv.refetch(ctx, logger)

	return true
}

func (srv *cartService) RemoveFromCart(ctx context.Context, productID int64) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	if err := srv.cartRepo.RemoveItem(ctx, productID); err != nil {
		logger.Error("Failed to remove item from cart", slog.Int64("productID", productID), slog.Any("error", err))
		srv.notifier.Error("Failed to remove item from cart.")

		return false
	}

	srv.notifier.Info("Item removed from cart.")
	_ = srv.refetch(ctx, logger)

	return true
}

func (srv *cartService) ClearCart() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.items = nil
}

func (srv *cartService) TogglePanel() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.panelOpen = !srv.panelOpen
}

func (srv *cartService) IsPanelOpen() bool {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.panelOpen
}

func (srv *cartService) IsLoading() bool {
	return srv.loading.active()
}

func (srv *cartService) Items() []entity.CartLine {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return slices.Clone(srv.items)
}

func (srv *cartService) ItemCount() int {
	return countItems(srv.Items())
}

func (srv *cartService) CartTotal() string {
	return formatCartTotal(srv.Items())
}

func (srv *cartService) Reset() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.items = nil
	srv.panelOpen = false
}

// refetch reloads the cart. Failures are logged and leave the held lines as they were.
func (srv *cartService) refetch(ctx context.Context, logger *slog.Logger) error {
	done := srv.loading.begin()
	defer done()

	resp, err := srv.cartRepo.GetCart(ctx)
	if err != nil {
		logger.Error("Failed to fetch cart", slog.Any("error", err))

		return err
	}

	lines := slices.DeleteFunc(slices.Clone(resp.Items), func(line entity.CartLine) bool {
		return line.Quantity <= 0
	})

	srv.mu.Lock()
	srv.items = lines
	srv.mu.Unlock()

	return nil
}

// countItems is the total number of units across lines.
func countItems(lines []entity.CartLine) int {
	count := 0
	for _, line := range lines {
		count += line.Quantity
	}

	return count
}

// formatCartTotal is the formatted sum of price times quantity across lines.
func formatCartTotal(lines []entity.CartLine) string {
	total := util.SumPence(lines,
		func(line entity.CartLine) int64 { return line.PriceInPence },
		func(line entity.CartLine) int { return line.Quantity },
	)

	return util.FormatPence(total)
}
