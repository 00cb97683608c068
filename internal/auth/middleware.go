package auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"shades-backend/internal/domain"
)

const principalKey = "principal"

// Middleware rejects requests that do not carry a valid bearer token and
// stores the resolved principal on the context for later handlers.
func Middleware(v CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		const op = "auth.Middleware"

		p, err := Authenticate(v, c.GetHeader("Authorization"))
		if err != nil {
			msg := "Invalid token"
			if errors.Is(err, domain.ErrUnauthenticated) {
				msg = "Unauthorized"
			}
			slog.Debug("request rejected", "op", op, "path", c.FullPath(), "err", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}

		c.Set(principalKey, p)
		c.Next()
	}
}

// PrincipalFrom returns the principal stored by Middleware.
func PrincipalFrom(c *gin.Context) (domain.Principal, bool) {
	v, ok := c.Get(principalKey)
	if !ok {
		return domain.Principal{}, false
	}
	p, ok := v.(domain.Principal)
	return p, ok
}
