package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"shades-backend/config"
)

func testConfig(verifier string) config.Config {
	var cfg config.Config
	cfg.CORS.AllowOrigins = []string{"*"}
	cfg.Auth.Verifier = verifier
	cfg.Auth.StaticToken = "fake-jwt-token"
	cfg.Auth.StaticUserID = "u1"
	cfg.Auth.StaticUserEmail = "test@test.com"
	cfg.Auth.JWTSecret = "secret"
	cfg.Auth.JWTTTL = time.Hour
	cfg.Users.BcryptCost = bcrypt.MinCost
	return cfg
}

func TestNewRouter_JWTLoginFlow(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r, err := newRouter(testConfig(config.VerifierJWT))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/login",
		strings.NewReader(`{"email":"test@test.com","password":"password"}`))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "fake-jwt-token")

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	tok := login.Token

	req = httptest.NewRequest(http.MethodGet, "/api/me/cart", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/me/cart", nil)
	req.Header.Set("Authorization", "Bearer fake-jwt-token")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNewTokens_Unknown(t *testing.T) {
	_, err := newTokens(testConfig("magic"))
	require.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel(" warning "))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("whatever"))
}
