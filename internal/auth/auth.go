// Package auth resolves bearer credentials to a principal.
//
// The gate only understands the header format. Deciding whether a token is
// valid, and minting tokens at login, belongs to the configured
// CredentialVerifier and TokenIssuer, so a signed-token scheme can replace
// the placeholder one without touching any handler.
package auth

import (
	"strings"

	"shades-backend/internal/domain"
)

const bearerPrefix = "Bearer "

type CredentialVerifier interface {
	Verify(token string) (domain.Principal, error)
}

type TokenIssuer interface {
	Issue(user domain.User) (string, error)
}

// Tokens is a scheme that both mints and checks tokens.
type Tokens interface {
	CredentialVerifier
	TokenIssuer
}

// Authenticate resolves a raw Authorization header value. A missing header
// or one without the bearer scheme is domain.ErrUnauthenticated; anything
// the verifier rejects is domain.ErrInvalidToken.
func Authenticate(v CredentialVerifier, header string) (domain.Principal, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return domain.Principal{}, domain.ErrUnauthenticated
	}
	return v.Verify(strings.TrimPrefix(header, bearerPrefix))
}
