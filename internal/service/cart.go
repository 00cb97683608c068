package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"shades-backend/internal/domain"
	"shades-backend/internal/store"
)

type ProductReader interface {
	Product(id string) (domain.Product, bool)
}

// CartStore runs fn atomically against one user's cart. See store.Carts.
type CartStore interface {
	Get(userID string) domain.Cart
	Update(userID string, create bool, fn func(*domain.Cart) error) (domain.Cart, error)
}

type Cart struct {
	carts    CartStore
	products ProductReader
	newID    func() string
}

func NewCart(carts CartStore, products ProductReader) *Cart {
	return &Cart{
		carts:    carts,
		products: products,
		newID:    newLineID,
	}
}

func newLineID() string {
	return "item-" + primitive.NewObjectID().Hex()
}

func (s *Cart) GetCart(ctx context.Context, userID string) (domain.Cart, error) {
	const op = "Cart.GetCart"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return s.carts.Get(userID), nil
}

// AddItem adds quantity units of productID. An existing line is incremented;
// otherwise a new line snapshots the product's current name and price.
func (s *Cart) AddItem(ctx context.Context, userID, productID string, quantity int) (domain.Cart, error) {
	const op = "Cart.AddItem"

	if err := ctx.Err(); err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	if productID == "" {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, domain.ErrMissingProductID)
	}
	if quantity < 1 {
		return domain.Cart{}, fmt.Errorf("%s: %d: %w", op, quantity, domain.ErrInvalidQuantity)
	}
	product, ok := s.products.Product(productID)
	if !ok {
		return domain.Cart{}, fmt.Errorf("%s: %q: %w", op, productID, domain.ErrProductNotFound)
	}

	cart, err := s.carts.Update(userID, true, func(c *domain.Cart) error {
		if i := c.Index(productID); i >= 0 {
			c.Items[i].Quantity += quantity
			return nil
		}
		c.Items = append(c.Items, domain.CartItem{
			ID:        s.newID(),
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Quantity:  quantity,
		})
		return nil
	})
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%s: %w", op, err)
	}
	return cart, nil
}

// SetQuantity overwrites the quantity of a line already in the cart.
func (s *Cart) SetQuantity(ctx context.Context, userID, productID string, quantity int) (domain.ItemQuantity, error) {
	const op = "Cart.SetQuantity"

	if err := ctx.Err(); err != nil {
		return domain.ItemQuantity{}, fmt.Errorf("%s: %w", op, err)
	}
	if quantity < 1 {
		return domain.ItemQuantity{}, fmt.Errorf("%s: %d: %w", op, quantity, domain.ErrInvalidQuantity)
	}

	_, err := s.carts.Update(userID, false, func(c *domain.Cart) error {
		i := c.Index(productID)
		if i < 0 {
			return domain.ErrItemNotFound
		}
		c.Items[i].Quantity = quantity
		return nil
	})
	if err != nil {
		return domain.ItemQuantity{}, fmt.Errorf("%s: %q: %w", op, productID, notInCart(err))
	}
	return domain.ItemQuantity{ProductID: productID, Quantity: quantity}, nil
}

// RemoveItem drops the line for productID keeping the order of the rest.
func (s *Cart) RemoveItem(ctx context.Context, userID, productID string) error {
	const op = "Cart.RemoveItem"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err := s.carts.Update(userID, false, func(c *domain.Cart) error {
		i := c.Index(productID)
		if i < 0 {
			return domain.ErrItemNotFound
		}
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %q: %w", op, productID, notInCart(err))
	}
	return nil
}

func (s *Cart) ClearCart(ctx context.Context, userID string) error {
	const op = "Cart.ClearCart"

	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	_, err := s.carts.Update(userID, true, func(c *domain.Cart) error {
		c.Items = []domain.CartItem{}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// notInCart folds the store's missing-cart error into ErrItemNotFound.
func notInCart(err error) error {
	if errors.Is(err, store.ErrNoCart) {
		return domain.ErrItemNotFound
	}
	return err
}
