package store

import "shades-backend/internal/domain"

// Credential is a plaintext user record used to seed the user store.
type Credential struct {
	ID       string
	Email    string
	Password string
}

func SeedUsers() []Credential {
	return []Credential{
		{ID: "u1", Email: "test@test.com", Password: "password"},
	}
}

func SeedBrands() []domain.Brand {
	return []domain.Brand{
		{ID: "b1", Name: "Ray-Ban"},
		{ID: "b2", Name: "Oakley"},
	}
}

func SeedProducts() []domain.Product {
	return []domain.Product{
		{ID: "p1", Name: "Aviator", Price: 150, BrandID: "b1", ImageURL: "/images/aviator.jpg"},
		{ID: "p2", Name: "Wayfarer", Price: 120, BrandID: "b1", ImageURL: "/images/wayfarer.jpg"},
		{ID: "p3", Name: "Holbrook", Price: 180, BrandID: "b2", ImageURL: "/images/holbrook.jpg"},
	}
}
