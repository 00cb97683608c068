package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"

	"shades-backend/internal/domain"
)

var _ Tokens = (*JWTTokens)(nil)

type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	jwt.StandardClaims
}

// JWTTokens issues and verifies HS256 tokens that carry the user identity.
type JWTTokens struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokens(secret string, ttl time.Duration) (*JWTTokens, error) {
	if secret == "" {
		return nil, errors.New("auth.NewJWTTokens: empty secret")
	}
	return &JWTTokens{secret: []byte(secret), ttl: ttl}, nil
}

func (j *JWTTokens) Issue(user domain.User) (string, error) {
	const op = "JWTTokens.Issue"

	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		StandardClaims: jwt.StandardClaims{
			Subject:   user.ID,
			IssuedAt:  time.Now().Unix(),
			ExpiresAt: time.Now().Add(j.ttl).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return signed, nil
}

func (j *JWTTokens) Verify(tokenStr string) (domain.Principal, error) {
	const op = "JWTTokens.Verify"

	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return j.secret, nil
	})
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%s: %w: %v", op, domain.ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return domain.Principal{}, fmt.Errorf("%s: %w", op, domain.ErrInvalidToken)
	}
	return domain.Principal{ID: claims.UserID, Email: claims.Email}, nil
}
