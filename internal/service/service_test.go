package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shades-backend/internal/auth"
	"shades-backend/internal/domain"
	"shades-backend/internal/store"
)

func newTestCart(t *testing.T) *Cart {
	t.Helper()
	catalog := store.NewCatalog(store.SeedBrands(), store.SeedProducts())
	s := NewCart(store.NewCarts(), catalog)

	var n int
	s.newID = func() string {
		n++
		return fmt.Sprintf("item-%d", n)
	}
	return s
}

func expectedTotal(c domain.Cart) float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}

func TestCart_GetCartEmpty(t *testing.T) {
	s := newTestCart(t)

	c, err := s.GetCart(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalPrice)
}

func TestCart_AddItemAccumulates(t *testing.T) {
	ctx := context.Background()
	s := newTestCart(t)

	_, err := s.AddItem(ctx, "u1", "p1", 2)
	require.NoError(t, err)
	_, err = s.AddItem(ctx, "u1", "p2", 1)
	require.NoError(t, err)
	c, err := s.AddItem(ctx, "u1", "p1", 3)
	require.NoError(t, err)

	require.Len(t, c.Items, 2)
	assert.Equal(t, domain.CartItem{ID: "item-1", ProductID: "p1", Name: "Aviator", Price: 150, Quantity: 5}, c.Items[0])
	assert.Equal(t, domain.CartItem{ID: "item-2", ProductID: "p2", Name: "Wayfarer", Price: 120, Quantity: 1}, c.Items[1])
	assert.Equal(t, 870.0, c.TotalPrice)

	got, err := s.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, c, got)
}

func TestCart_AddItemValidation(t *testing.T) {
	ctx := context.Background()
	s := newTestCart(t)

	_, err := s.AddItem(ctx, "u1", "p1", 0)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = s.AddItem(ctx, "u1", "p1", -4)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = s.AddItem(ctx, "u1", "", 1)
	require.ErrorIs(t, err, domain.ErrMissingProductID)

	_, err = s.AddItem(ctx, "u1", "p404", 1)
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	c, err := s.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestCart_SetQuantity(t *testing.T) {
	ctx := context.Background()
	s := newTestCart(t)

	_, err := s.SetQuantity(ctx, "u1", "p1", 2)
	require.ErrorIs(t, err, domain.ErrItemNotFound, "no cart yet")

	_, err = s.AddItem(ctx, "u1", "p1", 2)
	require.NoError(t, err)

	_, err = s.SetQuantity(ctx, "u1", "p2", 2)
	require.ErrorIs(t, err, domain.ErrItemNotFound, "product exists but is not in cart")

	_, err = s.SetQuantity(ctx, "u1", "p1", 0)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	res, err := s.SetQuantity(ctx, "u1", "p1", 5)
	require.NoError(t, err)
	assert.Equal(t, domain.ItemQuantity{ProductID: "p1", Quantity: 5}, res)

	c, err := s.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, 750.0, c.TotalPrice)
}

func TestCart_RemoveItem(t *testing.T) {
	ctx := context.Background()
	s := newTestCart(t)

	require.ErrorIs(t, s.RemoveItem(ctx, "u1", "p1"), domain.ErrItemNotFound)

	for _, id := range []string{"p1", "p2", "p3"} {
		_, err := s.AddItem(ctx, "u1", id, 1)
		require.NoError(t, err)
	}

	require.NoError(t, s.RemoveItem(ctx, "u1", "p2"))
	require.ErrorIs(t, s.RemoveItem(ctx, "u1", "p2"), domain.ErrItemNotFound)

	c, err := s.GetCart(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, c.Items, 2)
	assert.Equal(t, "p1", c.Items[0].ProductID)
	assert.Equal(t, "p3", c.Items[1].ProductID)
	assert.Equal(t, 330.0, c.TotalPrice)
}

func TestCart_ClearCart(t *testing.T) {
	ctx := context.Background()
	s := newTestCart(t)

	_, err := s.AddItem(ctx, "u1", "p3", 2)
	require.NoError(t, err)
	require.NoError(t, s.ClearCart(ctx, "u1"))

	c, err := s.GetCart(ctx, "u1")
	require.NoError(t, err)
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalPrice)
}

func TestCart_TotalTracksEveryMutation(t *testing.T) {
	ctx := context.Background()
	s := newTestCart(t)

	steps := []func() error{
		func() error { _, err := s.AddItem(ctx, "u1", "p1", 1); return err },
		func() error { _, err := s.AddItem(ctx, "u1", "p3", 4); return err },
		func() error { _, err := s.SetQuantity(ctx, "u1", "p1", 7); return err },
		func() error { _, err := s.AddItem(ctx, "u1", "p2", 2); return err },
		func() error { return s.RemoveItem(ctx, "u1", "p3") },
		func() error { _, err := s.AddItem(ctx, "u1", "p1", 1); return err },
	}
	for i, step := range steps {
		require.NoError(t, step(), "step %d", i)
		c, err := s.GetCart(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, expectedTotal(c), c.TotalPrice, "step %d", i)
	}
}

func TestCart_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := newTestCart(t)

	_, err := s.AddItem(ctx, "u1", "p1", 1)
	require.ErrorIs(t, err, context.Canceled)

	c, err := s.GetCart(context.Background(), "u1")
	require.NoError(t, err)
	assert.Empty(t, c.Items)
}

func TestNewLineID_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for range 1000 {
		id := newLineID()
		_, dup := seen[id]
		require.False(t, dup, id)
		seen[id] = struct{}{}
	}
}

func TestCatalog_Operations(t *testing.T) {
	ctx := context.Background()
	s := NewCatalog(store.NewCatalog(
		append(store.SeedBrands(), domain.Brand{ID: "b3", Name: "Persol"}),
		store.SeedProducts(),
	))

	brands, err := s.ListBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, 3)

	products, err := s.ListProducts(ctx)
	require.NoError(t, err)
	assert.Len(t, products, 3)

	b1, err := s.ListProductsForBrand(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, b1, 2)
	for _, p := range b1 {
		assert.Equal(t, "b1", p.BrandID)
	}

	empty, err := s.ListProductsForBrand(ctx, "b3")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	_, err = s.ListProductsForBrand(ctx, "does-not-exist")
	require.ErrorIs(t, err, domain.ErrBrandNotFound)

	p, err := s.GetProduct(ctx, "p3")
	require.NoError(t, err)
	assert.Equal(t, "Holbrook", p.Name)

	_, err = s.GetProduct(ctx, "p9")
	require.ErrorIs(t, err, domain.ErrProductNotFound)
}

type failingIssuer struct{}

func (failingIssuer) Issue(domain.User) (string, error) { return "", errors.New("signer down") }

func TestLogin_Authenticate(t *testing.T) {
	ctx := context.Background()
	users, err := store.NewUsers(bcrypt.MinCost, store.SeedUsers())
	require.NoError(t, err)

	s := NewLogin(users, auth.StaticTokens{Token: "fake-jwt-token"})

	res, err := s.Authenticate(ctx, "test@test.com", "password")
	require.NoError(t, err)
	assert.Equal(t, LoginResult{Token: "fake-jwt-token", UserID: "u1", Email: "test@test.com"}, res)

	_, err = s.Authenticate(ctx, "test@test.com", "")
	require.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, err = s.Authenticate(ctx, "", "password")
	require.ErrorIs(t, err, domain.ErrMissingCredentials)

	_, err = s.Authenticate(ctx, "wrong@email.com", "wrongpass")
	require.ErrorIs(t, err, domain.ErrInvalidCredentials)

	_, err = NewLogin(users, failingIssuer{}).Authenticate(ctx, "test@test.com", "password")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
}
