package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/book-purple/internal/api/http"
	"github.com/spec-kit/book-purple/internal/api/http/handlers"
	"github.com/spec-kit/book-purple/internal/auth"
	"github.com/spec-kit/book-purple/internal/config"
	"github.com/spec-kit/book-purple/internal/events"
	"github.com/spec-kit/book-purple/internal/observability"
	"github.com/spec-kit/book-purple/internal/persistence"
	"github.com/spec-kit/book-purple/internal/repository"
	"github.com/spec-kit/book-purple/internal/service"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

// serve runs the HTTP server until SIGINT or SIGTERM.
func serve() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		return err
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), cfg.Postgres.MigrationsDir, logger); err != nil {
			return err
		}
	}

	redis := persistence.NewRedis(ctx, cfg.Redis, logger)
	defer redis.Close()

	revocations := repository.NewNopRevocationRepository()
	if cfg.Auth.RefreshRevocation {
		revocations = repository.NewRedisRevocationRepository(redis.Client)
		logger.Info("refresh token revocation enabled")
	}

	dispatcher := events.NewInMemoryDispatcher()
	observability.RegisterAuditLog(dispatcher, logger)
	metrics := observability.NewMetrics()

	userRepo := repository.NewUserRepository(pg.PoolHandle())
	tokenMgr := auth.NewTokenManager(cfg.Auth.JWTSecret)

	authService := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo:       userRepo,
		RevocationRepo: revocations,
		TokenManager:   tokenMgr,
		Events:         dispatcher,
		Logger:         logger,
	})
	userService := service.NewUserService(userRepo)

	checks := []handlers.DependencyCheck{{Name: "postgres", Ping: pg.Ping}}
	if redis.Enabled() {
		checks = append(checks, handlers.DependencyCheck{Name: "redis", Ping: redis.Ping})
	}

	cookies := handlers.CookieOptions{Secure: cfg.Auth.CookieSecure}

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.CORS)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Authenticator: auth.NewAuthenticator(tokenMgr, dispatcher, logger),
		Login:         handlers.NewLoginHandler(authService, cookies, logger),
		Logout:        handlers.NewLogoutHandler(authService, cookies, logger),
		Refresh:       handlers.NewRefreshHandler(authService, logger),
		Users:         handlers.NewUsersHandler(userService),
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, metrics, checks...),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	if err := app.Shutdown(); err != nil {
		logger.Warn("fiber shutdown", zap.Error(err))
	}
	return nil
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
