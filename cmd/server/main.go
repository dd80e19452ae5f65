// Command server runs the UniLink campus API.
//
//	@title						UniLink Campus API
//	@version					1.0
//	@description				Authentication, admin-managed feeds and the campus location directory.
//	@BasePath					/
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/unilink/campus-api/internal/api"
	"github.com/unilink/campus-api/internal/api/handler"
	"github.com/unilink/campus-api/internal/core/service"
	redisstore "github.com/unilink/campus-api/internal/infrastructure/db/redis"
	"github.com/unilink/campus-api/internal/infrastructure/security"
	"github.com/unilink/campus-api/internal/infrastructure/store"
	"github.com/unilink/campus-api/internal/pkg/config"
	"github.com/unilink/campus-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.Load()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "unilink-api",
		Env:     cfg.Env,
	})

	if err := run(cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func run(cfg *config.Config, log zerolog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.UsesDefaultSecret() {
		log.Warn().Msg("JWT_SECRET is not set; tokens are signed with the development key")
	}

	stores, err := store.Open(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer stores.Close(context.Background())

	health := map[string]handler.Pinger{}
	if stores.Ping != nil {
		health[cfg.Store.Driver] = handler.PingFunc(stores.Ping)
	}

	tokens := security.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)
	hasher := security.NewBcryptHasher(cfg.Auth.BcryptCost)
	authOpts := []service.AuthOption{service.WithTokenTTL(cfg.Auth.TokenTTL)}

	redisCfg := redisstore.Config{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB}
	if redisCfg.Enabled() {
		rdb, err := redisstore.Connect(ctx, redisCfg)
		if err != nil {
			return err
		}
		defer rdb.Close()

		limiter := redisstore.NewLoginLimiter(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginLockoutWindow)
		authOpts = append(authOpts, service.WithLoginLimiter(limiter))
		health["redis"] = handler.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
		log.Info().Str("addr", cfg.Redis.Addr).Msg("login limiter enabled")
	}

	e := api.NewRouter(api.Deps{
		Logger:    log,
		Auth:      service.NewAuthService(stores.Users, hasher, tokens, log, authOpts...),
		Guard:     service.NewGuard(tokens, stores.Users, log),
		Content:   service.NewContentService(stores.Content, stores.Users, log),
		Locations: service.NewCampusDirectory(cfg.Map.DefaultRadiusKm),
		Health:    health,
		Registry:  prometheus.NewRegistry(),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("port", cfg.Port).Str("store", cfg.Store.Driver).Msg("listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
