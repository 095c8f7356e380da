package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/iudanet/agendasync/internal/config"
	"github.com/iudanet/agendasync/internal/crypto"
	"github.com/iudanet/agendasync/internal/logging"
	"github.com/iudanet/agendasync/internal/server"
	"github.com/iudanet/agendasync/internal/server/storage"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		env, err := openEnv(ctx)
		if err != nil {
			return err
		}
		defer env.close()

		limiter, closeLimiter, err := server.NewLimiter(ctx, env.cfg.JoinRateLimit, env.logger)
		if err != nil {
			return err
		}
		defer closeLimiter()

		srv := server.New(env.cfg, env.store, limiter, crypto.DefaultParams, Version, env.logger)
		return srv.Run(ctx)
	},
}

// serverEnv - загруженная конфигурация, logger и открытое хранилище
type serverEnv struct {
	cfg         *config.Server
	logger      *slog.Logger
	store       storage.Storage
	closeLogger func() error
}

func openEnv(ctx context.Context) (*serverEnv, error) {
	cfg, err := config.LoadServer(configPath)
	if err != nil {
		return nil, err
	}

	logger, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return nil, err
	}

	store, err := server.OpenStorage(ctx, cfg.Database)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}

	logger.InfoContext(ctx, "storage opened", slog.String("driver", cfg.Database.Driver))

	return &serverEnv{
		cfg:         cfg,
		logger:      logger,
		store:       store,
		closeLogger: closer.Close,
	}, nil
}

func (e *serverEnv) close() {
	if err := e.store.Close(); err != nil {
		e.logger.Error("failed to close storage", slog.Any("error", err))
	}
	_ = e.closeLogger()
}
