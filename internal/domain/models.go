// models.go

package domain

type Brand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	BrandID  string  `json:"brandId"`
	ImageURL string  `json:"imageUrl,omitempty"`
}

// User is a seeded credential record. Password holds a bcrypt hash and is
// never rendered.
type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"-"`
}

// Principal is the identity the auth gate resolves a request to.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// CartItem is one product's line in a cart. Name and Price are copied from
// the product when the line is created.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type Cart struct {
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"totalPrice"`
}

// NewCart returns an empty cart whose Items renders as [] rather than null.
func NewCart() Cart {
	return Cart{Items: []CartItem{}}
}

// Clone returns a deep copy of c.
func (c Cart) Clone() Cart {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items, TotalPrice: c.TotalPrice}
}

// Index returns the position of the line for productID, or -1.
func (c Cart) Index(productID string) int {
	for i, item := range c.Items {
		if item.ProductID == productID {
			return i
		}
	}
	return -1
}

// Recalculate derives TotalPrice from the current lines.
func (c *Cart) Recalculate() {
	var total float64
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
	}
	c.TotalPrice = total
}

// ItemQuantity is the result of an absolute quantity update.
type ItemQuantity struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}
