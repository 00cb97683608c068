package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type catalogHandler struct {
	svc CatalogService
}

func (h catalogHandler) listBrands(c *gin.Context) {
	const op = "catalogHandler.listBrands"

	brands, err := h.svc.ListBrands(c.Request.Context())
	if err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, brands)
}

func (h catalogHandler) listBrandProducts(c *gin.Context) {
	const op = "catalogHandler.listBrandProducts"

	products, err := h.svc.ListProductsForBrand(c.Request.Context(), c.Param("brandId"))
	if err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h catalogHandler) listProducts(c *gin.Context) {
	const op = "catalogHandler.listProducts"

	products, err := h.svc.ListProducts(c.Request.Context())
	if err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h catalogHandler) getProduct(c *gin.Context) {
	const op = "catalogHandler.getProduct"

	product, err := h.svc.GetProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, product)
}
