package impl

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"
	"storefront/internal/util"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// productsService implements the ProductsUsecase interface.
type productsService struct {
	productRepo repository.ProductRepository
	navigator   service.Navigator
	qrCodes     service.QRCodeService
	notifier    service.Notifier
	publicURL   string
	logger      *slog.Logger

	loading inFlight

	mu       sync.RWMutex
	products []entity.Product
	brands   []string
	selected *entity.Product
	filters  entity.ProductFilters
}

// ProductsServiceParams holds dependencies for ProductsService, injected by Fx.
type ProductsServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Navigator   service.Navigator
	QRCodes     service.QRCodeService
	Notifier    service.Notifier
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductsService is the constructor for productsService.
func NewProductsService(params ProductsServiceParams) usecase.ProductsUsecase {
	return &productsService{
		productRepo: params.ProductRepo,
		navigator:   params.Navigator,
		qrCodes:     params.QRCodes,
		notifier:    params.Notifier,
		publicURL:   strings.TrimRight(params.Config.Storefront.PublicURL, "/"),
		logger:      params.Logger,
		filters:     entity.DefaultProductFilters(),
	}
}

// FetchProducts lists the catalog narrowed by the current filters.
func (srv *productsService) FetchProducts(ctx context.Context) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	query := srv.Filters().QueryString()
	products, err := srv.productRepo.List(ctx, query)
	if err != nil {
		logger.Error("Failed to fetch products", slog.String("query", query), slog.Any("error", err))
		srv.notifier.Error("Could not load products.")

		return false
	}

	srv.mu.Lock()
	srv.products = products
	srv.mu.Unlock()

	return true
}

func (srv *productsService) FetchAvailableBrands(ctx context.Context) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	products, err := srv.productRepo.List(ctx, "")
	if err != nil {
		logger.Error("Failed to fetch brands", slog.Any("error", err))

		return false
	}

	srv.mu.Lock()
	srv.brands = distinctBrands(products)
	srv.mu.Unlock()

	return true
}

// FetchProductByID loads one product into the detail slot, which is emptied first.
func (srv *productsService) FetchProductByID(ctx context.Context, id string) bool {
	ctx, logger := startAction(ctx, srv.logger)

	done := srv.loading.begin()
	defer done()

	srv.mu.Lock()
	srv.selected = nil
	srv.mu.Unlock()

	product, err := srv.productRepo.FindByID(ctx, id)
	if err != nil {
		if domainerrors.HasStatus(err, http.StatusNotFound) {
			logger.Info("Product not found", slog.String("productID", id))
			srv.notifier.Info("Product not found.")

			return false
		}

		logger.Error("Failed to fetch product", slog.String("productID", id), slog.Any("error", err))
		srv.notifier.Error("Could not load product details.")

		return false
	}

	srv.mu.Lock()
	srv.selected = product
	srv.mu.Unlock()

	return true
}

func (srv *productsService) Filters() entity.ProductFilters {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.filters
}

func (srv *productsService) SetFilters(filters entity.ProductFilters) {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.filters = filters
}

func (srv *productsService) UpdateURLWithFilters(ctx context.Context) error {
	current := srv.navigator.Current()
	target := entity.Location{Path: current.Path, Query: srv.Filters().URLQuery()}

	if _, err := srv.navigator.Push(ctx, target); err != nil {
		return errors.Wrap(err, "failed to push filters to location")
	}

	return nil
}

func (srv *productsService) InitializeFiltersFromURL() {
	query := srv.navigator.Current().Query

	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.filters = srv.filters.WithURLQuery(query)
}

func (srv *productsService) ShareLink() (string, error) {
	if srv.publicURL == "" {
		return "", errors.New("storefront.publicUrl is not configured")
	}

	base, err := url.Parse(srv.publicURL + "/products")
	if err != nil {
		return "", errors.Wrap(err, "invalid storefront.publicUrl")
	}
	base.RawQuery = srv.Filters().URLQuery().Encode()

	return base.String(), nil
}

func (srv *productsService) ShareQRCode() ([]byte, error) {
	link, err := srv.ShareLink()
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodes.GenerateLinkQR(link)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render share link")
	}

	return png, nil
}

func (srv *productsService) Products() []entity.Product {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return slices.Clone(srv.products)
}

func (srv *productsService) SelectedProduct() *entity.Product {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.selected
}

func (srv *productsService) AvailableBrands() []string {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return slices.Clone(srv.brands)
}

// FormattedMaxPrice renders the upper price bound, or "Any" when unset.
func (srv *productsService) FormattedMaxPrice() string {
	return formatMaxPrice(srv.Filters())
}

func (srv *productsService) IsLoading() bool {
	return srv.loading.active()
}

func (srv *productsService) Reset() {
	srv.mu.Lock()
	defer srv.mu.Unlock()

	srv.products = nil
	srv.brands = nil
	srv.selected = nil
	srv.filters = entity.DefaultProductFilters()
}

func distinctBrands(products []entity.Product) []string {
	brands := make([]string, 0, len(products))
	for _, product := range products {
		if product.Brand == "" || slices.Contains(brands, product.Brand) {
			continue
		}
		brands = append(brands, product.Brand)
	}
	slices.Sort(brands)

	return brands
}

func formatMaxPrice(filters entity.ProductFilters) string {
	if filters.PriceInPenceLT == nil {
		return "Any"
	}

	return util.FormatPencePlain(*filters.PriceInPenceLT)
}
