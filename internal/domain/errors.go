package domain

import "errors"

// Validation failures.
var (
	ErrInvalidBody        = errors.New("invalid request body")
	ErrMissingProductID   = errors.New("product id is required")
	ErrInvalidQuantity    = errors.New("quantity must be a positive integer")
	ErrMissingCredentials = errors.New("missing credentials")
)

// Authentication failures.
var (
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Lookup failures.
var (
	ErrBrandNotFound   = errors.New("brand not found")
	ErrProductNotFound = errors.New("product not found")
	ErrItemNotFound    = errors.New("item not found in cart")
)
