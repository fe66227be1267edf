package impl

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCart() entity.CartResponse {
	return entity.CartResponse{
		Cart: &entity.Cart{ID: 1, UserID: 7},
		Items: []entity.CartLine{
			{ID: 10, Name: "Mid Length", PriceInPence: 50000, Quantity: 1},
			{ID: 11, Name: "Leash", PriceInPence: 2500, Quantity: 2},
		},
	}
}

func TestCartDerivations(t *testing.T) {
	lines := sampleCart().Items

	assert.Equal(t, 3, countItems(lines))
	assert.Equal(t, "£550.00", formatCartTotal(lines))
	assert.Equal(t, 0, countItems(nil))
	assert.Equal(t, "£0.00", formatCartTotal(nil))
}

func TestCartService_FetchCart(t *testing.T) {
	stores := createTestStores(t)
	resp := sampleCart()
	resp.Items = append(resp.Items, entity.CartLine{ID: 12, Name: "Ghost", PriceInPence: 100, Quantity: 0})
	stores.api.Reply(http.MethodGet, "/cart", http.StatusOK, resp)

	require.True(t, stores.cart.FetchCart(context.Background()))

	assert.Len(t, stores.cart.Items(), 2, "lines without quantity are dropped")
	assert.Equal(t, 3, stores.cart.ItemCount())
	assert.Equal(t, "£550.00", stores.cart.CartTotal())
	assert.False(t, stores.cart.IsLoading())
	assert.Empty(t, stores.toasts.History())
}

func TestCartService_FetchFailureKeepsLines(t *testing.T) {
	stores := createTestStores(t)
	stores.api.Reply(http.MethodGet, "/cart", http.StatusOK, sampleCart())
	require.True(t, stores.cart.FetchCart(context.Background()))

	stores.api.Fail(http.MethodGet, "/cart", http.StatusInternalServerError, "boom")

	assert.False(t, stores.cart.FetchCart(context.Background()))
	assert.Len(t, stores.cart.Items(), 2)
	assert.False(t, stores.cart.IsLoading())
	assert.Equal(t, "Could not load your cart.", lastToast(t, stores.toasts).Title)
}

func TestCartService_AddToCart(t *testing.T) {
	stores := createTestStores(t)
	stores.api.Reply(http.MethodPost, "/cart/items", http.StatusCreated, nil)
	stores.api.Reply(http.MethodGet, "/cart", http.StatusOK, sampleCart())

	require.True(t, stores.cart.AddToCart(context.Background(), 10, 1))

	var sent entity.AddCartItemInput
	stores.api.CallsTo(http.MethodPost, "/cart/items")[0].DecodeBody(t, &sent)
	assert.Equal(t, entity.AddCartItemInput{ProductID: 10, Quantity: 1}, sent)

	assert.Len(t, stores.api.CallsTo(http.MethodGet, "/cart"), 1, "a mutation refetches")
	assert.Len(t, stores.cart.Items(), 2)
	assert.True(t, stores.cart.IsPanelOpen())
	require.Len(t, stores.toasts.History(), 1)
	assert.Equal(t, "Item added to cart!", lastToast(t, stores.toasts).Title)
}

func TestCartService_AddToCartFailure(t *testing.T) {
	stores := createTestStores(t)
	stores.api.Fail(http.MethodPost, "/cart/items", http.StatusBadRequest, "out of stock")

	assert.False(t, stores.cart.AddToCart(context.Background(), 10, 1))
	assert.Empty(t, stores.api.CallsTo(http.MethodGet, "/cart"))
	assert.False(t, stores.cart.IsPanelOpen())
	require.Len(t, stores.toasts.History(), 1)
	toast := lastToast(t, stores.toasts)
	assert.Equal(t, service.ToastError, toast.Level)
	assert.Equal(t, "Could not add item", toast.Title)
}

func TestCartService_UpdateQuantityToZeroRemoves(t *testing.T) {
	for _, quantity := range []int{0, -1} {
		stores := createTestStores(t)
		stores.api.Reply(http.MethodDelete, "/cart/items/:id", http.StatusNoContent, nil)
		stores.api.Reply(http.MethodPut, "/cart/items/:id", http.StatusOK, nil)
		stores.api.Reply(http.MethodGet, "/cart", http.StatusOK, entity.CartResponse{})

		require.True(t, stores.cart.UpdateQuantity(context.Background(), 10, quantity))

		assert.Len(t, stores.api.CallsTo(http.MethodDelete, "/cart/items/10"), 1)
		assert.Empty(t, stores.api.CallsTo(http.MethodPut, "/cart/items/10"))
		require.Len(t, stores.toasts.History(), 1)
		assert.Equal(t, service.ToastInfo, lastToast(t, stores.toasts).Level)
		assert.Equal(t, "Item removed from cart.", lastToast(t, stores.toasts).Title)
	}
}

func TestCartService_UpdateQuantity(t *testing.T) {
	stores := createTestStores(t)
	stores.api.Reply(http.MethodPut, "/cart/items/:id", http.StatusOK, nil)
	stores.api.Reply(http.MethodGet, "/cart", http.StatusOK, sampleCart())

	require.True(t, stores.cart.UpdateQuantity(context.Background(), 11, 2))

	calls := stores.api.CallsTo(http.MethodPut, "/cart/items/11")
	require.Len(t, calls, 1)
	var sent entity.UpdateCartItemInput
	calls[0].DecodeBody(t, &sent)
	assert.Equal(t, 2, sent.Quantity)
	require.Len(t, stores.toasts.History(), 1)
	assert.Equal(t, "Cart updated.", lastToast(t, stores.toasts).Title)
}

func TestCartService_MutationFailuresNotifyOnce(t *testing.T) {
	tests := []struct {
		name   string
		method string
		call   func(stores storeFixtures) bool
		title  string
	}{
		{
			name:   "update",
			method: http.MethodPut,
			call: func(stores storeFixtures) bool {
				return stores.cart.UpdateQuantity(context.Background(), 11, 3)
			},
			title: "Failed to update item quantity.",
		},
		{
			name:   "remove",
			method: http.MethodDelete,
			call: func(stores storeFixtures) bool {
				return stores.cart.RemoveFromCart(context.Background(), 11)
			},
			title: "Failed to remove item from cart.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores := createTestStores(t)
			stores.api.Fail(tt.method, "/cart/items/:id", http.StatusInternalServerError, "boom")

			assert.False(t, tt.call(stores))
			assert.Empty(t, stores.api.CallsTo(http.MethodGet, "/cart"))
			require.Len(t, stores.toasts.History(), 1)
			assert.Equal(t, tt.title, lastToast(t, stores.toasts).Title)
			assert.False(t, stores.cart.IsLoading())
		})
	}
}

func TestCartService_RefetchFailureAfterMutationStillNotifiesOnce(t *testing.T) {
	stores := createTestStores(t)
	stores.api.Reply(http.MethodDelete, "/cart/items/:id", http.StatusNoContent, nil)
	stores.api.Fail(http.MethodGet, "/cart", http.StatusBadGateway, "down")

	assert.True(t, stores.cart.RemoveFromCart(context.Background(), 10))
	assert.Len(t, stores.toasts.History(), 1)
}

func TestCartService_ClearAndToggle(t *testing.T) {
	stores := createTestStores(t)
	stores.api.Reply(http.MethodGet, "/cart", http.StatusOK, sampleCart())
	require.True(t, stores.cart.FetchCart(context.Background()))
	calls := len(stores.api.Calls())

	stores.cart.ClearCart()
	assert.Empty(t, stores.cart.Items())
	assert.Equal(t, 0, stores.cart.ItemCount())
	assert.Len(t, stores.api.Calls(), calls, "clearing is local")

	assert.False(t, stores.cart.IsPanelOpen())
	stores.cart.TogglePanel()
	assert.True(t, stores.cart.IsPanelOpen())
	stores.cart.TogglePanel()
	assert.False(t, stores.cart.IsPanelOpen())
}
