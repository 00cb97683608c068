package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"shades-backend/internal/auth"
	"shades-backend/internal/domain"
	"shades-backend/internal/service"
)

type CatalogService interface {
	ListBrands(ctx context.Context) ([]domain.Brand, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	ListProductsForBrand(ctx context.Context, brandID string) ([]domain.Product, error)
	GetProduct(ctx context.Context, productID string) (domain.Product, error)
}

type LoginService interface {
	Authenticate(ctx context.Context, identifier, password string) (service.LoginResult, error)
}

type CartService interface {
	GetCart(ctx context.Context, userID string) (domain.Cart, error)
	AddItem(ctx context.Context, userID, productID string, quantity int) (domain.Cart, error)
	SetQuantity(ctx context.Context, userID, productID string, quantity int) (domain.ItemQuantity, error)
	RemoveItem(ctx context.Context, userID, productID string) error
	ClearCart(ctx context.Context, userID string) error
}

type UserReader interface {
	ByID(id string) (domain.User, bool)
}

type Deps struct {
	Catalog  CatalogService
	Login    LoginService
	Cart     CartService
	Users    UserReader
	Verifier auth.CredentialVerifier

	// AllowOrigins is passed to CORS.
	AllowOrigins []string
}

// NewRouter builds the gin engine with every route of the API.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(RequestID(), RequestLogger(), Recovery(), CORS(d.AllowOrigins))

	r.GET("/", health)

	catalog := catalogHandler{d.Catalog}
	r.GET("/api/brands", catalog.listBrands)
	r.GET("/api/brands/:brandId/products", catalog.listBrandProducts)
	r.GET("/api/products", catalog.listProducts)
	r.GET("/api/products/:productId", catalog.getProduct)

	login := loginHandler{d.Login}
	r.POST("/api/login", login.login)

	cart := cartHandler{d.Cart}
	profile := profileHandler{d.Users}
	me := r.Group("/api/me", auth.Middleware(d.Verifier))
	{
		me.GET("", profile.get)

		me.GET("/cart", cart.getCart)
		me.POST("/cart", cart.addItem)
		me.POST("/cart/clear", cart.clearCart)
		me.PATCH("/cart/:productId", cart.setQuantity)
		me.DELETE("/cart/:productId", cart.removeItem)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})

	return r
}

func health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

type profileHandler struct {
	users UserReader
}

// get renders the stored user behind the principal. A principal with no
// stored record, such as a configured static identity, is rendered as is.
func (h profileHandler) get(c *gin.Context) {
	const op = "profileHandler.get"

	p, ok := auth.PrincipalFrom(c)
	if !ok {
		abortWithError(c, op, errMissingPrincipal)
		return
	}
	if h.users != nil {
		if user, ok := h.users.ByID(p.ID); ok {
			c.JSON(http.StatusOK, user)
			return
		}
	}
	c.JSON(http.StatusOK, p)
}
