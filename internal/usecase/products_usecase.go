package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductsUsecase holds the catalog listing, the brand facet, the product
// detail slot and the active filters.
type ProductsUsecase interface {
	Resettable

	FetchProducts(ctx context.Context) bool

	// FetchAvailableBrands lists the whole catalog, ignoring filters, and keeps its distinct brands.
	FetchAvailableBrands(ctx context.Context) bool
	FetchProductByID(ctx context.Context, id string) bool

	Filters() entity.ProductFilters
	SetFilters(filters entity.ProductFilters)

	// UpdateURLWithFilters pushes the filters onto the current location.
	UpdateURLWithFilters(ctx context.Context) error

	// InitializeFiltersFromURL reads filters from the current location.
	InitializeFiltersFromURL()

	// ShareLink returns an absolute link to the catalog with the current filters.
	ShareLink() (string, error)

	// ShareQRCode renders ShareLink as a PNG QR code.
	ShareQRCode() ([]byte, error)

	Products() []entity.Product
	SelectedProduct() *entity.Product
	AvailableBrands() []string
	FormattedMaxPrice() string
	IsLoading() bool
}
