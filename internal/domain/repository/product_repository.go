package repository

import (
	"context"

	"storefront/internal/domain/entity"
)

// ProductRepository is the remote catalog API.
type ProductRepository interface {
	// List returns the catalog narrowed by the given encoded query string.
	// An empty query lists the full catalog.
	List(ctx context.Context, query string) ([]entity.Product, error)
	FindByID(ctx context.Context, id string) (*entity.Product, error)
}
