package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"

	"shades-backend/internal/auth"
	"shades-backend/internal/domain"
)

var errMissingPrincipal = errors.New("principal missing from context")

// maxQuantity is the largest integer a JSON number carries exactly.
const maxQuantity = 1<<53 - 1

// Quantity stays raw so an absent field can be told apart from null or a
// value of the wrong type.
type addItemRequest struct {
	ProductID string          `json:"productId"`
	Quantity  json.RawMessage `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity json.RawMessage `json:"quantity"`
}

type cartHandler struct {
	svc CartService
}

func (h cartHandler) getCart(c *gin.Context) {
	const op = "cartHandler.getCart"

	p, ok := auth.PrincipalFrom(c)
	if !ok {
		abortWithError(c, op, errMissingPrincipal)
		return
	}

	cart, err := h.svc.GetCart(c.Request.Context(), p.ID)
	if err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, cart)
}

func (h cartHandler) addItem(c *gin.Context) {
	const op = "cartHandler.addItem"

	p, ok := auth.PrincipalFrom(c)
	if !ok {
		abortWithError(c, op, errMissingPrincipal)
		return
	}

	var req addItemRequest
	if err := bindJSON(c, &req); err != nil {
		abortWithError(c, op, err)
		return
	}
	if req.ProductID == "" {
		abortWithError(c, op, domain.ErrMissingProductID)
		return
	}
	qty := 1
	if len(req.Quantity) > 0 {
		var err error
		if qty, err = parseQuantity(req.Quantity); err != nil {
			abortWithError(c, op, err)
			return
		}
	}

	cart, err := h.svc.AddItem(c.Request.Context(), p.ID, req.ProductID, qty)
	if err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusCreated, cart)
}

func (h cartHandler) setQuantity(c *gin.Context) {
	const op = "cartHandler.setQuantity"

	p, ok := auth.PrincipalFrom(c)
	if !ok {
		abortWithError(c, op, errMissingPrincipal)
		return
	}

	var req setQuantityRequest
	if err := bindJSON(c, &req); err != nil {
		abortWithError(c, op, err)
		return
	}
	qty, err := parseQuantity(req.Quantity)
	if err != nil {
		abortInvalidQuantity(c)
		return
	}

	res, err := h.svc.SetQuantity(c.Request.Context(), p.ID, c.Param("productId"), qty)
	if errors.Is(err, domain.ErrInvalidQuantity) {
		abortInvalidQuantity(c)
		return
	}
	if err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h cartHandler) removeItem(c *gin.Context) {
	const op = "cartHandler.removeItem"

	p, ok := auth.PrincipalFrom(c)
	if !ok {
		abortWithError(c, op, errMissingPrincipal)
		return
	}

	if err := h.svc.RemoveItem(c.Request.Context(), p.ID, c.Param("productId")); err != nil {
		abortWithError(c, op, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h cartHandler) clearCart(c *gin.Context) {
	const op = "cartHandler.clearCart"

	p, ok := auth.PrincipalFrom(c)
	if !ok {
		abortWithError(c, op, errMissingPrincipal)
		return
	}

	if err := h.svc.ClearCart(c.Request.Context(), p.ID); err != nil {
		abortWithError(c, op, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cleared"})
}

// abortInvalidQuantity is the update route's 400; it reports a shorter
// message than the add route.
func abortInvalidQuantity(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid quantity"})
}

// parseQuantity accepts whole JSON numbers from 1 up to maxQuantity. A
// missing value, null and anything that is not a number are rejected.
func parseQuantity(raw json.RawMessage) (int, error) {
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return 0, fmt.Errorf("no quantity: %w", domain.ErrInvalidQuantity)
	}
	var v float64
	if err := json.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("%s: %w", raw, domain.ErrInvalidQuantity)
	}
	if v < 1 || v > maxQuantity || v != math.Trunc(v) {
		return 0, fmt.Errorf("%v: %w", v, domain.ErrInvalidQuantity)
	}
	return int(v), nil
}

// bindJSON decodes the request body into v. An empty body leaves v zeroed.
func bindJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", domain.ErrInvalidBody, err)
	}
	return nil
}
