// main.go

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"shades-backend/config"
	"shades-backend/internal/auth"
	"shades-backend/internal/domain"
	"shades-backend/internal/handler"
	"shades-backend/internal/service"
	"shades-backend/internal/store"
)

func main() {
	sigCtx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT,
	)
	defer stop()

	cfg := config.Load()

	initLogger(cfg.LogLevel)
	if slog.Default().Enabled(sigCtx, slog.LevelDebug) {
		cfg.Print()
	}
	gin.SetMode(cfg.GinMode)

	router, err := newRouter(cfg)
	if err != nil {
		die("main.newRouter", err)
	}

	srv := &http.Server{
		Addr:              cfg.HTTPServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("server running", "addr", cfg.HTTPServerAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("unexpected server shutdown", "err", err)
			stop()
		}
	}()

	<-sigCtx.Done()
	slog.Info("server is closing...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("failed to shutdown gracefully", "err", err)
	}

	slog.Info("server is closed")
}

func newRouter(cfg config.Config) (*gin.Engine, error) {
	catalog := store.NewCatalog(store.SeedBrands(), store.SeedProducts())

	users, err := store.NewUsers(cfg.Users.BcryptCost, store.SeedUsers())
	if err != nil {
		return nil, err
	}

	tokens, err := newTokens(cfg)
	if err != nil {
		return nil, err
	}

	return handler.NewRouter(handler.Deps{
		Catalog:      service.NewCatalog(catalog),
		Login:        service.NewLogin(users, tokens),
		Cart:         service.NewCart(store.NewCarts(), catalog),
		Users:        users,
		Verifier:     tokens,
		AllowOrigins: cfg.CORS.AllowOrigins,
	}), nil
}

func newTokens(cfg config.Config) (auth.Tokens, error) {
	switch cfg.Auth.Verifier {
	case config.VerifierJWT:
		return auth.NewJWTTokens(cfg.Auth.JWTSecret, cfg.Auth.JWTTTL)
	case config.VerifierStatic:
		return auth.StaticTokens{
			Token: cfg.Auth.StaticToken,
			Principal: domain.Principal{
				ID:    cfg.Auth.StaticUserID,
				Email: cfg.Auth.StaticUserEmail,
			},
		}, nil
	}
	return nil, fmt.Errorf("unknown verifier %q", cfg.Auth.Verifier)
}

func initLogger(level string) {
	opts := &slog.HandlerOptions{Level: parseLevel(level)}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, opts))
	slog.SetDefault(logger)
}

func parseLevel(lvl string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func die(op string, err error) {
	panic(fmt.Errorf("%s: %w", op, err))
}
