// Package main implements the SSH server that serves the popcorn storefront.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/rs/zerolog"

	"github.com/thomas/popcorn-terminal/internal/auth"
	"github.com/thomas/popcorn-terminal/internal/catalog"
	"github.com/thomas/popcorn-terminal/internal/config"
	"github.com/thomas/popcorn-terminal/internal/logger"
	"github.com/thomas/popcorn-terminal/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal(logger.New(logger.Config{Format: "console"}), err, "failed to load config")
	}
	log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})

	if err := server.EnsureHostKey(cfg.SSHHostKeyPath, log); err != nil {
		fatal(log, err, "failed to ensure host key")
	}

	var allowlist *auth.Allowlist
	if cfg.SSHAuthMode == config.AuthModeAllowlist {
		allowlist, err = auth.LoadAllowlist(cfg.AllowlistPath, log)
		if errors.Is(err, auth.ErrAllowlistNotFound) {
			log.Info().Str("path", cfg.AllowlistPath).Msg("creating empty allowlist")
			if err := auth.CreateEmptyAllowlist(cfg.AllowlistPath); err != nil {
				fatal(log, err, "failed to create allowlist")
			}
			log.Warn().Msg("add your SSH public key to the allowlist and restart")
			os.Exit(1)
		}
		if err != nil {
			fatal(log, err, "failed to load allowlist")
		}
		if allowlist.Len() == 0 {
			log.Warn().Str("path", cfg.AllowlistPath).Msg("allowlist is empty, no connections will be accepted")
		}
		log.Info().Int("keys", allowlist.Len()).Msg("allowlist loaded")
	} else {
		log.Warn().Msg("running in PUBLIC mode, anyone can connect")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := server.OpenStore(ctx, cfg, log)
	if err != nil {
		fatal(log, err, "failed to open cart store")
	}
	defer closeStore()

	srv, err := server.New(cfg, catalog.Default(), store, allowlist, log)
	if err != nil {
		fatal(log, err, "failed to create SSH server")
	}

	log.Info().
		Str("addr", cfg.SSHAddr).
		Str("auth_mode", string(cfg.SSHAuthMode)).
		Str("cart_backend", string(cfg.CartBackend)).
		Msg("starting SSH server")

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			log.Error().Err(err).Msg("server error")
			stop()
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}

func fatal(log zerolog.Logger, err error, msg string) {
	log.Error().Err(err).Msg(msg)
	os.Exit(1)
}
