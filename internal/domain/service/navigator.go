package service

import (
	"context"

	"storefront/internal/domain/entity"
)

// Navigator moves the client between navigable locations.
type Navigator interface {
	// Push navigates to loc and returns where the client ended up,
	// which differs from loc when a guard redirected.
	Push(ctx context.Context, loc entity.Location) (entity.Location, error)

	// PushNamed navigates to a named route filled with params.
	PushNamed(ctx context.Context, name string, params ...any) (entity.Location, error)

	// Current returns the current location.
	Current() entity.Location
}

// Route names of the storefront.
const (
	RouteHome              = "home"
	RouteProducts          = "products"
	RouteProductDetail     = "product-detail"
	RouteNewsletter        = "newsletter"
	RouteLogin             = "login"
	RouteRegister          = "register"
	RouteAboutUs           = "about-us"
	RouteCart              = "cart"
	RouteCheckout          = "checkout"
	RouteAccount           = "account"
	RouteAccountOrder      = "account-order"
	RouteOrderConfirmation = "order-confirmation"
)
