// Package server собирает HTTP API: маршруты, middleware и жизненный цикл.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/agendasync/internal/config"
	"github.com/iudanet/agendasync/internal/crypto"
	"github.com/iudanet/agendasync/internal/server/gate"
	"github.com/iudanet/agendasync/internal/server/handlers"
	"github.com/iudanet/agendasync/internal/server/ledger"
	"github.com/iudanet/agendasync/internal/server/middleware"
	"github.com/iudanet/agendasync/internal/server/storage"
	"github.com/iudanet/agendasync/internal/server/storage/postgres"
	"github.com/iudanet/agendasync/internal/server/storage/sqlite"
)

// tokenCleanupInterval период удаления просроченных refresh токенов
const tokenCleanupInterval = time.Hour

// Server HTTP API agendasync
type Server struct {
	store   storage.Storage
	limiter middleware.Limiter
	logger  *slog.Logger
	handler http.Handler
	cfg     *config.Server
}

// OpenStorage открывает хранилище по настройкам database
func OpenStorage(ctx context.Context, db config.Database) (storage.Storage, error) {
	switch db.Driver {
	case "sqlite":
		return sqlite.New(ctx, db.DSN)
	case "postgres":
		return postgres.New(ctx, db.DSN)
	default:
		return nil, fmt.Errorf("unknown database driver %q", db.Driver)
	}
}

// NewLimiter создает limiter для входа и вступления в группы: redis, если задан URL, иначе в памяти
func NewLimiter(ctx context.Context, cfg config.RateLimit, logger *slog.Logger) (middleware.Limiter, func(), error) {
	if cfg.RedisURL == "" {
		rl := middleware.NewRateLimiter(cfg.Requests, cfg.Window, logger)
		return rl, rl.Stop, nil
	}

	rl, err := middleware.NewRedisLimiter(ctx, cfg.RedisURL, cfg.Requests, cfg.Window)
	if err != nil {
		return nil, nil, err
	}
	return rl, func() { _ = rl.Close() }, nil
}

// New собирает сервер поверх открытого хранилища
func New(cfg *config.Server, store storage.Storage, limiter middleware.Limiter, params crypto.Params, version string, logger *slog.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		store:   store,
		limiter: limiter,
		logger:  logger,
	}
	s.handler = s.routes(params, version)
	return s
}

func (s *Server) routes(params crypto.Params, version string) http.Handler {
	jwtConfig := handlers.JWTConfig{
		Secret:          []byte(s.cfg.JWT.Secret),
		AccessTokenTTL:  s.cfg.JWT.AccessTTL,
		RefreshTokenTTL: s.cfg.JWT.RefreshTTL,
	}

	authHandler := handlers.NewAuthHandler(s.logger, s.store, s.store, jwtConfig, s.cfg.AdminKey)
	healthHandler := handlers.NewHealthHandler(s.logger, s.store, version)
	groupHandler := handlers.NewGroupHandler(s.logger, gate.NewService(s.store, params, s.logger))
	agendaHandler := handlers.NewAgendaHandler(s.logger, ledger.NewService(s.store, s.logger))

	auth := middleware.AuthMiddleware(s.logger, jwtConfig)
	// вход ограничивается по IP (подбор admin key), вступление - по principal (подбор секрета группы)
	limit := middleware.RateLimitMiddleware(s.limiter, s.cfg.JoinRateLimit.Window, s.logger)
	protected := func(h http.HandlerFunc) http.Handler { return auth(h) }

	mux := http.NewServeMux()

	mux.Handle("POST /api/v1/auth/anonymous", limit(http.HandlerFunc(authHandler.SignInAnonymous)))
	mux.HandleFunc("POST /api/v1/auth/refresh", authHandler.Refresh)
	mux.HandleFunc("GET /api/v1/health", healthHandler.Health)

	mux.Handle("POST /api/v1/groups", protected(groupHandler.Create))
	mux.Handle("POST /api/v1/groups/join", auth(limit(http.HandlerFunc(groupHandler.Join))))
	mux.Handle("PUT /api/v1/groups/{group}/members/{principal}/role", protected(groupHandler.SetRole))
	mux.Handle("GET /api/v1/groups/{group}/members/{principal}", protected(groupHandler.GetMembership))

	mux.Handle("GET /api/v1/groups/{group}/agendas", protected(agendaHandler.List))
	mux.Handle("GET /api/v1/groups/{group}/agendas/{agenda}", protected(agendaHandler.Get))
	mux.Handle("PUT /api/v1/groups/{group}/agendas/{agenda}", protected(agendaHandler.Update))
	mux.Handle("PUT /api/v1/groups/{group}/agendas/{agenda}/force", protected(agendaHandler.UpdateForce))

	logged := middleware.LoggingWithSkip(s.logger, []string{"/api/v1/health"})(mux)
	return middleware.RecoveryMiddleware(s.logger)(logged)
}

// Handler возвращает корневой http.Handler (для тестов и встраивания)
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Run слушает cfg.Addr до отмены ctx, затем корректно останавливается
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve обслуживает запросы на ln до отмены ctx
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.InfoContext(gctx, "agendasync API listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		s.cleanupTokens(gctx)
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()

		timeout := s.cfg.ShutdownTimeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), timeout)
		defer cancel()

		s.logger.Info("shutting down")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// cleanupTokens периодически удаляет просроченные refresh токены
func (s *Server) cleanupTokens(ctx context.Context) {
	ticker := time.NewTicker(tokenCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.store.DeleteExpiredTokens(ctx)
			if err != nil {
				s.logger.WarnContext(ctx, "failed to delete expired tokens", slog.Any("error", err))
				continue
			}
			if n > 0 {
				s.logger.InfoContext(ctx, "expired refresh tokens deleted", slog.Int("count", n))
			}
		}
	}
}
