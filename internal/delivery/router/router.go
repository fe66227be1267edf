package router

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"sync"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthState reports whether the client currently holds a session.
type AuthState interface {
	IsAuthenticated() bool
}

// Router resolves locations against the route table with echo's router,
// guards every navigation, and tracks the current location.
type Router struct {
	echo   *echo.Echo
	routes map[string]Route // keyed by path pattern
	auth   AuthState
	logger *slog.Logger

	mu      sync.RWMutex
	current entity.Location
	history []entity.Location
}

var _ service.Navigator = (*Router)(nil)

// NewRouter builds the router over Routes(), starting at home.
func NewRouter(auth AuthState, logger *slog.Logger) *Router {
	e := echo.New()
	routes := make(map[string]Route)

	for _, route := range Routes() {
		e.Add(http.MethodGet, route.Path, noopHandler).Name = route.Name
		routes[route.Path] = route
	}

	return &Router{
		echo:    e,
		routes:  routes,
		auth:    auth,
		logger:  logger,
		current: entity.Location{Name: service.RouteHome, Path: "/"},
	}
}

func noopHandler(echo.Context) error {
	return nil
}

// Resolve matches path against the route table and returns the route and its params.
func (r *Router) Resolve(path string) (Route, map[string]string, error) {
	c := r.echo.NewContext(nil, nil)
	r.echo.Router().Find(http.MethodGet, path, c)

	route, ok := r.routes[c.Path()]
	if !ok {
		return Route{}, nil, errors.Wrapf(domainerrors.ErrRouteNotFound, "resolve %s", path)
	}

	params := make(map[string]string, len(c.ParamNames()))
	for i, name := range c.ParamNames() {
		params[name] = c.ParamValues()[i]
	}

	return route, params, nil
}

// Push guards and performs one navigation. The returned location is where
// the client ended up.
func (r *Router) Push(ctx context.Context, loc entity.Location) (entity.Location, error) {
	if loc.Path == "" {
		loc.Path = r.Current().Path
	}
	if !strings.HasPrefix(loc.Path, "/") {
		loc.Path = "/" + loc.Path
	}

	route, _, err := r.Resolve(loc.Path)
	if err != nil {
		return r.Current(), err
	}

	decision := Guard(route.Meta, r.auth.IsAuthenticated())

	var target entity.Location
	switch decision {
	case RedirectToLogin:
		target = entity.Location{Name: service.RouteLogin, Path: "/login"}
	case RedirectToHome:
		target = entity.Location{Name: service.RouteHome, Path: "/"}
	default:
		target = entity.Location{Name: route.Name, Path: loc.Path, Query: cloneQuery(loc.Query)}
	}

	r.logger.DebugContext(ctx, "Navigation",
		slog.String("to", loc.String()),
		slog.String("decision", decision.String()),
		slog.String("at", target.String()),
	)

	r.mu.Lock()
	r.current = target
	r.history = append(r.history, target)
	r.mu.Unlock()

	return target, nil
}

// PushNamed navigates to the named route with its path params filled in order.
func (r *Router) PushNamed(ctx context.Context, name string, params ...any) (entity.Location, error) {
	path := r.echo.Reverse(name, params...)
	if path == "" {
		return r.Current(), errors.Wrapf(domainerrors.ErrRouteNotFound, "route %q", name)
	}

	return r.Push(ctx, entity.Location{Path: path})
}

// Current returns the current location.
func (r *Router) Current() entity.Location {
	r.mu.RLock()
	defer r.mu.RUnlock()

	current := r.current
	current.Query = cloneQuery(current.Query)

	return current
}

// History returns every location reached, oldest first.
func (r *Router) History() []entity.Location {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.history)
}

// Reset re-guards the current location, so a signed-out client leaves
// auth-only pages the way a reload would.
func (r *Router) Reset() {
	if _, err := r.Push(context.Background(), r.Current()); err != nil {
		r.logger.Warn("Failed to re-guard current location", slog.Any("error", err))
	}
}

func cloneQuery(q url.Values) url.Values {
	if len(q) == 0 {
		return nil
	}

	cloned := make(url.Values, len(q))
	for key, values := range q {
		cloned[key] = slices.Clone(values)
	}

	return cloned
}
