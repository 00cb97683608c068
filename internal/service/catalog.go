package service

import (
	"context"
	"fmt"

	"shades-backend/internal/domain"
)

type CatalogReader interface {
	Brands() []domain.Brand
	Products() []domain.Product
	Brand(id string) (domain.Brand, bool)
	Product(id string) (domain.Product, bool)
	ProductsByBrand(brandID string) []domain.Product
}

type Catalog struct {
	catalog CatalogReader
}

func NewCatalog(catalog CatalogReader) *Catalog {
	return &Catalog{catalog: catalog}
}

func (s *Catalog) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	const op = "Catalog.ListBrands"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.catalog.Brands(), nil
}

func (s *Catalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "Catalog.ListProducts"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.catalog.Products(), nil
}

// ListProductsForBrand fails only when the brand itself is unknown; a known
// brand without products yields an empty slice.
func (s *Catalog) ListProductsForBrand(ctx context.Context, brandID string) ([]domain.Product, error) {
	const op = "Catalog.ListProductsForBrand"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if _, ok := s.catalog.Brand(brandID); !ok {
		return nil, fmt.Errorf("%s: %q: %w", op, brandID, domain.ErrBrandNotFound)
	}
	return s.catalog.ProductsByBrand(brandID), nil
}

func (s *Catalog) GetProduct(ctx context.Context, productID string) (domain.Product, error) {
	const op = "Catalog.GetProduct"

	if err := ctx.Err(); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}
	p, ok := s.catalog.Product(productID)
	if !ok {
		return domain.Product{}, fmt.Errorf("%s: %q: %w", op, productID, domain.ErrProductNotFound)
	}
	return p, nil
}
