package service

import (
	"context"
	"fmt"

	"shades-backend/internal/domain"
)

type UserMatcher interface {
	Match(email, password string) (domain.User, bool)
}

type TokenIssuer interface {
	Issue(user domain.User) (string, error)
}

type LoginResult struct {
	Token  string `json:"token"`
	UserID string `json:"userId"`
	Email  string `json:"email"`
}

type Login struct {
	users  UserMatcher
	issuer TokenIssuer
}

func NewLogin(users UserMatcher, issuer TokenIssuer) *Login {
	return &Login{users: users, issuer: issuer}
}

// Authenticate checks the credentials and mints a token for the matching
// user. The identifier is the user's email.
func (s *Login) Authenticate(ctx context.Context, identifier, password string) (LoginResult, error) {
	const op = "Login.Authenticate"

	if err := ctx.Err(); err != nil {
		return LoginResult{}, fmt.Errorf("%s: %w", op, err)
	}
	if identifier == "" || password == "" {
		return LoginResult{}, fmt.Errorf("%s: %w", op, domain.ErrMissingCredentials)
	}

	user, ok := s.users.Match(identifier, password)
	if !ok {
		return LoginResult{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidCredentials)
	}

	token, err := s.issuer.Issue(user)
	if err != nil {
		return LoginResult{}, fmt.Errorf("%s: %w", op, err)
	}
	return LoginResult{Token: token, UserID: user.ID, Email: user.Email}, nil
}
