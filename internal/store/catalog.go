package store

import "shades-backend/internal/domain"

// Catalog holds the brands and products. It is never mutated after
// construction, so it is safe for concurrent readers.
type Catalog struct {
	brands   []domain.Brand
	products []domain.Product
}

func NewCatalog(brands []domain.Brand, products []domain.Product) *Catalog {
	c := &Catalog{
		brands:   make([]domain.Brand, len(brands)),
		products: make([]domain.Product, len(products)),
	}
	copy(c.brands, brands)
	copy(c.products, products)
	return c
}

func (c *Catalog) Brands() []domain.Brand {
	out := make([]domain.Brand, len(c.brands))
	copy(out, c.brands)
	return out
}

func (c *Catalog) Products() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Brand(id string) (domain.Brand, bool) {
	for _, b := range c.brands {
		if b.ID == id {
			return b, true
		}
	}
	return domain.Brand{}, false
}

func (c *Catalog) Product(id string) (domain.Product, bool) {
	for _, p := range c.products {
		if p.ID == id {
			return p, true
		}
	}
	return domain.Product{}, false
}

// ProductsByBrand returns the products of brandID in catalog order. The
// result is empty, not nil, when nothing matches.
func (c *Catalog) ProductsByBrand(brandID string) []domain.Product {
	out := []domain.Product{}
	for _, p := range c.products {
		if p.BrandID == brandID {
			out = append(out, p)
		}
	}
	return out
}
