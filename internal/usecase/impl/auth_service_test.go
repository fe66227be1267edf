package impl

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_RestoresStoredTokenWithoutNetwork(t *testing.T) {
	storage := newMemStorage(t)
	require.NoError(t, storage.Save(context.Background(), "tok"))

	stores := createTestStoresWithStorage(t, storage)

	assert.True(t, stores.auth.IsAuthenticated())
	assert.Equal(t, "tok", stores.auth.Token())
	assert.Nil(t, stores.auth.User(), "an opaque token carries no user")
	assert.Empty(t, stores.api.Calls())
}

func TestAuthService_StartsAnonymousWithEmptyStorage(t *testing.T) {
	stores := createTestStores(t)

	assert.False(t, stores.auth.IsAuthenticated())
	assert.Equal(t, entity.Session{}, stores.auth.Session())
}

func TestAuthService_Login_Success(t *testing.T) {
	stores := createTestStores(t)
	token := signedToken(t, 7, "surfer@example.com")
	stores.api.Reply(http.MethodPost, "/login", http.StatusOK, entity.LoginResult{Token: token})

	ok := stores.auth.Login(context.Background(), entity.Credentials{Email: "surfer@example.com", Password: "hunter22"})

	require.True(t, ok)
	assert.True(t, stores.auth.IsAuthenticated())
	require.NotNil(t, stores.auth.User())
	assert.Equal(t, int64(7), stores.auth.User().ID)
	assert.Equal(t, "surfer@example.com", stores.auth.User().Email)

	stored, found, err := stores.storage.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, token, stored)

	toast := lastToast(t, stores.toasts)
	assert.Equal(t, service.ToastSuccess, toast.Level)
	assert.Equal(t, "Login successful!", toast.Title)

	var sent entity.Credentials
	stores.api.CallsTo(http.MethodPost, "/login")[0].DecodeBody(t, &sent)
	assert.Equal(t, "surfer@example.com", sent.Email)
}

func TestAuthService_Login_Rejected(t *testing.T) {
	stores := createTestStores(t)
	stores.api.Fail(http.MethodPost, "/login", http.StatusUnauthorized, "Invalid credentials")

	ok := stores.auth.Login(context.Background(), entity.Credentials{Email: "surfer@example.com", Password: "wrong"})

	assert.False(t, ok)
	assert.False(t, stores.auth.IsAuthenticated())

	toast := lastToast(t, stores.toasts)
	assert.Equal(t, service.ToastError, toast.Level)
	assert.Equal(t, "Login Failed", toast.Title)
	assert.Equal(t, "Please check your email and password.", toast.Description)
}

func TestAuthService_ValidationHappensBeforeNetwork(t *testing.T) {
	tests := []struct {
		name  string
		call  func(stores storeFixtures) bool
		title string
	}{
		{
			name: "login with malformed email",
			call: func(stores storeFixtures) bool {
				return stores.auth.Login(context.Background(), entity.Credentials{Email: "not-an-email", Password: "secret1"})
			},
			title: "Login Failed",
		},
		{
			name: "login without password",
			call: func(stores storeFixtures) bool {
				return stores.auth.Login(context.Background(), entity.Credentials{Email: "a@b.co"})
			},
			title: "Login Failed",
		},
		{
			name: "register with short password",
			call: func(stores storeFixtures) bool {
				return stores.auth.Register(context.Background(), entity.Credentials{Email: "a@b.co", Password: "12345"})
			},
			title: "Registration Failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stores := createTestStores(t)

			assert.False(t, tt.call(stores))
			assert.Empty(t, stores.api.Calls())
			assert.Equal(t, 1, stores.toasts.Count(service.ToastError))
			assert.Equal(t, tt.title, lastToast(t, stores.toasts).Title)
		})
	}
}

func TestAuthService_CheckCredentials(t *testing.T) {
	srv := createTestStores(t).auth.(*authService)

	problem, err := srv.checkCredentials(usecase.RegisterInput{Email: "a@b.co", Password: "12345"})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	assert.Equal(t, "password must be at least 6 characters", problem)

	problem, err = srv.checkCredentials(usecase.LoginInput{Email: "a@b.co", Password: "secret1"})
	assert.NoError(t, err)
	assert.Empty(t, problem)
}

func TestAuthService_Register(t *testing.T) {
	t.Run("success does not log in", func(t *testing.T) {
		stores := createTestStores(t)
		stores.api.Reply(http.MethodPost, "/register", http.StatusCreated, map[string]any{"id": 1, "email": "new@example.com"})

		ok := stores.auth.Register(context.Background(), entity.Credentials{Email: "new@example.com", Password: "longenough"})

		assert.True(t, ok)
		assert.False(t, stores.auth.IsAuthenticated())
		toast := lastToast(t, stores.toasts)
		assert.Equal(t, "Registration successful!", toast.Title)
		assert.Equal(t, "You can now log in with your new account.", toast.Description)
	})

	t.Run("conflict", func(t *testing.T) {
		stores := createTestStores(t)
		stores.api.Fail(http.MethodPost, "/register", http.StatusConflict, "User already exists")

		ok := stores.auth.Register(context.Background(), entity.Credentials{Email: "new@example.com", Password: "longenough"})

		assert.False(t, ok)
		toast := lastToast(t, stores.toasts)
		assert.Equal(t, service.ToastError, toast.Level)
		assert.Equal(t, "This email may already be in use.", toast.Description)
	})
}

func TestAuthService_LogoutResetsEveryStore(t *testing.T) {
	storage := newMemStorage(t)
	require.NoError(t, storage.Save(context.Background(), "tok"))
	stores := createTestStoresWithStorage(t, storage)

	stores.api.Reply(http.MethodGet, "/cart", http.StatusOK, entity.CartResponse{
		Items: []entity.CartLine{{ID: 1, Name: "Board", PriceInPence: 50000, Quantity: 1}},
	})
	stores.api.Reply(http.MethodGet, "/orders", http.StatusOK, []entity.Order{{ID: 3}})
	stores.api.Reply(http.MethodGet, "/profile", http.StatusOK, entity.UserProfile{UserID: 1, FirstName: "Kelly"})
	stores.api.Reply(http.MethodGet, "/newsletter/archive", http.StatusOK, []entity.Newsletter{{ID: 1}})

	ctx := context.Background()
	require.True(t, stores.cart.FetchCart(ctx))
	require.True(t, stores.order.FetchOrders(ctx))
	require.True(t, stores.user.FetchProfile(ctx))
	require.True(t, stores.newsletter.FetchArchive(ctx))
	stores.cart.TogglePanel()
	_, err := stores.router.Push(ctx, entity.Location{Path: "/account"})
	require.NoError(t, err)

	stores.auth.Logout(ctx)

	assert.False(t, stores.auth.IsAuthenticated())
	_, found, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	assert.Empty(t, stores.cart.Items())
	assert.False(t, stores.cart.IsPanelOpen())
	assert.Empty(t, stores.order.Orders())
	assert.Nil(t, stores.user.Profile())
	assert.Empty(t, stores.newsletter.Newsletters())
	assert.Equal(t, "/login", stores.router.Current().Path, "the guard re-runs for the current location")

	toast := lastToast(t, stores.toasts)
	assert.Equal(t, service.ToastInfo, toast.Level)
	assert.Equal(t, "You have been logged out.", toast.Title)
}

func TestAuthService_BearerFollowsSession(t *testing.T) {
	stores := createTestStores(t)
	stores.api.Reply(http.MethodPost, "/login", http.StatusOK, entity.LoginResult{Token: "tok-1"})
	stores.api.Reply(http.MethodGet, "/orders", http.StatusOK, []entity.Order{})

	ctx := context.Background()
	stores.order.FetchOrders(ctx)
	require.True(t, stores.auth.Login(ctx, entity.Credentials{Email: "a@b.co", Password: "pw"}))
	stores.order.FetchOrders(ctx)
	stores.auth.Logout(ctx)
	stores.order.FetchOrders(ctx)

	calls := stores.api.CallsTo(http.MethodGet, "/orders")
	require.Len(t, calls, 3)
	assert.Empty(t, calls[0].Authorization)
	assert.Equal(t, "Bearer tok-1", calls[1].Authorization)
	assert.Empty(t, calls[2].Authorization)
	assert.Empty(t, stores.api.CallsTo(http.MethodPost, "/login")[0].Authorization)
}
