package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/delivery/router"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/infra/api"
	"storefront/internal/infra/auth"
	"storefront/internal/infra/notify"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/session"
	"storefront/internal/testutil/fakeapi"
	"storefront/internal/usecase"
	"storefront/internal/validator"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const testSessionKey = "authToken"

// storeFixtures holds every store wired against one fake API.
type storeFixtures struct {
	api     *fakeapi.Server
	toasts  *notify.Toaster
	storage repository.TokenStorage
	router  *router.Router

	auth       usecase.AuthUsecase
	cart       usecase.CartUsecase
	products   usecase.ProductsUsecase
	newsletter usecase.NewsletterUsecase
	user       usecase.UserUsecase
	order      usecase.OrderUsecase
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newMemStorage(t *testing.T) repository.TokenStorage {
	t.Helper()

	storage, err := session.NewBlobStorage(context.Background(), "mem://", testSessionKey)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storage.Close() })

	return storage
}

func createTestStores(t *testing.T) storeFixtures {
	return createTestStoresWithStorage(t, newMemStorage(t))
}

func createTestStoresWithStorage(t *testing.T, storage repository.TokenStorage) storeFixtures {
	t.Helper()

	server := fakeapi.New(t)
	cfg := server.Config()
	logger := newDiscardLogger()
	toasts := notify.NewToaster(logger)

	authSrv := NewAuthService(AuthServiceParams{
		Ctx:       context.Background(),
		AuthRepo:  api.NewAuthRepository(cfg, logger),
		Storage:   storage,
		Tokens:    auth.NewJWTService(),
		Notifier:  toasts,
		Validator: validator.New(),
		Logger:    logger,
	})

	client := api.NewClient(cfg, authSrv, logger)
	nav := router.NewRouter(authSrv, logger)

	cart := NewCartService(CartServiceParams{
		CartRepo: api.NewCartRepository(client),
		Notifier: toasts,
		Logger:   logger,
	})
	products := NewProductsService(ProductsServiceParams{
		ProductRepo: api.NewProductRepository(client),
		Navigator:   nav,
		QRCodes:     qrcode.NewQRCodeService(cfg.Storefront.QRSize, "M"),
		Notifier:    toasts,
		Config:      cfg,
		Logger:      logger,
	})
	newsletter := NewNewsletterService(NewsletterServiceParams{
		NewsletterRepo: api.NewNewsletterRepository(client),
		Notifier:       toasts,
		Logger:         logger,
	})
	user := NewUserService(UserServiceParams{
		ProfileRepo: api.NewProfileRepository(client),
		AddressRepo: api.NewAddressRepository(client),
		Notifier:    toasts,
		Logger:      logger,
	})
	order := NewOrderService(OrderServiceParams{
		OrderRepo: api.NewOrderRepository(client),
		Cart:      cart,
		Navigator: nav,
		Notifier:  toasts,
		Logger:    logger,
	})

	authSrv.OnLogout(cart, products, newsletter, user, order, nav)

	return storeFixtures{
		api:        server,
		toasts:     toasts,
		storage:    storage,
		router:     nav,
		auth:       authSrv,
		cart:       cart,
		products:   products,
		newsletter: newsletter,
		user:       user,
		order:      order,
	}
}

// signedToken returns an HS256 JWT carrying the given user claims.
func signedToken(t *testing.T, userID int64, email string) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    userID,
		"email": email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	return signed
}

// lastToast returns the newest notification, failing the test when there is none.
func lastToast(t *testing.T, toasts *notify.Toaster) service.Toast {
	t.Helper()

	toast, ok := toasts.Last()
	require.True(t, ok, "expected a notification")

	return toast
}
