package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shades-backend/internal/domain"
)

var errorMessages = []struct {
	err    error
	status int
	msg    string
}{
	{domain.ErrInvalidBody, http.StatusBadRequest, "Invalid request body"},
	{domain.ErrMissingProductID, http.StatusBadRequest, "Product ID is required"},
	{domain.ErrInvalidQuantity, http.StatusBadRequest, "Quantity must be a positive integer"},
	{domain.ErrMissingCredentials, http.StatusBadRequest, "Missing credentials"},
	{domain.ErrUnauthenticated, http.StatusUnauthorized, "Unauthorized"},
	{domain.ErrInvalidToken, http.StatusUnauthorized, "Invalid token"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
	{domain.ErrBrandNotFound, http.StatusNotFound, "Brand not found"},
	{domain.ErrProductNotFound, http.StatusNotFound, "Product not found"},
	{domain.ErrItemNotFound, http.StatusNotFound, "Item not found in cart"},
}

const internalErrorMsg = "Internal server error"

// statusOf maps an error to the response status and client message.
// Anything unknown is a 500 with a generic message.
func statusOf(err error) (int, string) {
	for _, e := range errorMessages {
		if errors.Is(err, e.err) {
			return e.status, e.msg
		}
	}
	return http.StatusInternalServerError, internalErrorMsg
}

func abortWithError(c *gin.Context, op string, err error) {
	status, msg := statusOf(err)
	log := slog.With("op", op, "requestId", c.GetString(requestIDKey))
	if status == http.StatusInternalServerError {
		log.Error("request failed", "err", err)
	} else {
		log.Debug("request rejected", "status", status, "err", err)
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
