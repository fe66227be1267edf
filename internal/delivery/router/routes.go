// Package router holds the navigable routes of the storefront and the guard
// that decides whether a navigation may proceed.
package router

import "storefront/internal/domain/service"

// RouteMeta carries the access flags the guard reads.
type RouteMeta struct {
	RequiresAuth  bool
	RequiresGuest bool
}

// Route is one navigable location pattern. Path uses echo syntax (:param).
type Route struct {
	Name string
	Path string
	Meta RouteMeta
}

var (
	public    = RouteMeta{}
	authOnly  = RouteMeta{RequiresAuth: true}
	guestOnly = RouteMeta{RequiresGuest: true}
)

// Routes returns the storefront route table.
func Routes() []Route {
	return []Route{
		{Name: service.RouteHome, Path: "/", Meta: public},
		{Name: service.RouteProducts, Path: "/products", Meta: public},
		{Name: service.RouteProductDetail, Path: "/products/:id", Meta: public},
		{Name: service.RouteNewsletter, Path: "/newsletter", Meta: authOnly},
		{Name: service.RouteLogin, Path: "/login", Meta: guestOnly},
		{Name: service.RouteRegister, Path: "/register", Meta: guestOnly},
		{Name: service.RouteAboutUs, Path: "/about-us", Meta: public},
		{Name: service.RouteCart, Path: "/cart", Meta: authOnly},
		{Name: service.RouteCheckout, Path: "/checkout", Meta: authOnly},
		{Name: service.RouteAccount, Path: "/account", Meta: authOnly},
		{Name: service.RouteAccountOrder, Path: "/account/orders/:id", Meta: authOnly},
		{Name: service.RouteOrderConfirmation, Path: "/orders/:id", Meta: authOnly},
	}
}
