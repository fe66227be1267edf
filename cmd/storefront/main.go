package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"storefront/config"
	"storefront/internal/delivery/router"
	"storefront/internal/domain/service"
	"storefront/internal/infra/api"
	"storefront/internal/infra/auth"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/notify"
	"storefront/internal/infra/qrcode"
	"storefront/internal/infra/session"
	"storefront/internal/usecase"
	"storefront/internal/usecase/impl"
	"storefront/internal/validator"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// storefront is everything a subcommand may touch.
type storefront struct {
	fx.In

	Auth       usecase.AuthUsecase
	Cart       usecase.CartUsecase
	Products   usecase.ProductsUsecase
	Newsletter usecase.NewsletterUsecase
	User       usecase.UserUsecase
	Order      usecase.OrderUsecase
	Router     *router.Router
	Toaster    *notify.Toaster
}

type registerStoresParams struct {
	fx.In

	Auth   usecase.AuthUsecase
	Stores []usecase.Resettable `group:"resettables"`
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	var app storefront
	fxApp := fx.New(
		appOptions(),
		fx.WithLogger(newFxLogger),
		fx.Invoke(func(s storefront) { app = s }),
	)
	if err := fxApp.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	startCtx, cancelStart := context.WithTimeout(ctx, fxApp.StartTimeout())
	defer cancelStart()
	if err := fxApp.Start(startCtx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	app.Toaster.SetSink(printToast(os.Stdout))
	runErr := runSubcommand(ctx, &app, os.Args[1], os.Args[2:])

	stopCtx, cancelStop := context.WithTimeout(context.Background(), fxApp.StopTimeout())
	defer cancelStop()
	if err := fxApp.Stop(stopCtx); err != nil {
		slog.Error("Failed to stop cleanly", slog.Any("error", err))
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func appOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		fx.Invoke(registerStores),
	)
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			newAPIClient,
		),
		session.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			api.NewAuthRepository,
			api.NewCartRepository,
			api.NewProductRepository,
			api.NewNewsletterRepository,
			api.NewProfileRepository,
			api.NewAddressRepository,
			api.NewOrderRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			validator.New,
			notify.NewToaster,
			newNotifier,
			newQRCodeService,
		),
	)
}

// newAPIClient creates the authenticated API client; the auth store supplies the bearer token.
func newAPIClient(cfg *config.Config, authUsecase usecase.AuthUsecase, logger *slog.Logger) *api.Client {
	return api.NewClient(cfg, authUsecase, logger)
}

func newNotifier(toaster *notify.Toaster) service.Notifier {
	return toaster
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.Storefront.QRSize, cfg.Storefront.QRRecovery)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewCartService,
			impl.NewProductsService,
			impl.NewNewsletterService,
			impl.NewUserService,
			impl.NewOrderService,
		),
		fx.Provide(
			asResettable[usecase.CartUsecase](),
			asResettable[usecase.ProductsUsecase](),
			asResettable[usecase.NewsletterUsecase](),
			asResettable[usecase.UserUsecase](),
			asResettable[usecase.OrderUsecase](),
			asResettable[*router.Router](),
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			newRouter,
			newNavigator,
		),
	)
}

func newRouter(authUsecase usecase.AuthUsecase, logger *slog.Logger) *router.Router {
	return router.NewRouter(authUsecase, logger)
}

func newNavigator(r *router.Router) service.Navigator {
	return r
}

// asResettable adds a store to the "resettables" group that logout resets.
func asResettable[T usecase.Resettable]() any {
	return fx.Annotate(
		func(store T) usecase.Resettable { return store },
		fx.ResultTags(`group:"resettables"`),
	)
}

func registerStores(params registerStoresParams) {
	params.Auth.OnLogout(params.Stores...)
}

func newFxLogger(logger *slog.Logger) fxevent.Logger {
	fxLogger := &fxevent.SlogLogger{Logger: logger}
	fxLogger.UseLogLevel(slog.LevelDebug)

	return fxLogger
}
