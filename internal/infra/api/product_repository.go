package api

import (
	"context"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

type productRepository struct {
	client *Client
}

// NewProductRepository creates the catalog adapter.
func NewProductRepository(client *Client) repository.ProductRepository {
	return &productRepository{client: client}
}

func (r *productRepository) List(ctx context.Context, query string) ([]entity.Product, error) {
	path := "/products"
	if query != "" {
		path += "?" + query
	}

	var products []entity.Product
	if err := r.client.Get(ctx, path, &products); err != nil {
		return nil, err
	}

	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	if err := r.client.Get(ctx, "/products/"+url.PathEscape(id), &product); err != nil {
		return nil, err
	}

	return &product, nil
}
