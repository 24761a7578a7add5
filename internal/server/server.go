// Package server assembles the SSH storefront: host key, authentication,
// per-session middleware and the Bubble Tea program for each visitor.
package server

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	gossh "golang.org/x/crypto/ssh"

	"github.com/thomas/popcorn-terminal/internal/auth"
	"github.com/thomas/popcorn-terminal/internal/cart"
	"github.com/thomas/popcorn-terminal/internal/catalog"
	"github.com/thomas/popcorn-terminal/internal/config"
	"github.com/thomas/popcorn-terminal/internal/tui"
)

// Server is the SSH storefront.
type Server struct {
	*ssh.Server

	limiter *visitorLimiter
	cron    *cron.Cron
	log     zerolog.Logger
}

// New builds the server. A nil allowlist is only valid in public mode.
func New(cfg *config.Config, cat *catalog.Catalog, store cart.Store, allowlist *auth.Allowlist, log zerolog.Logger) (*Server, error) {
	srv := &Server{
		limiter: newVisitorLimiter(cfg.RatePerSecond, cfg.RateBurst),
		cron:    cron.New(),
		log:     log,
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.SSHAddr),
		wish.WithHostKeyPath(cfg.SSHHostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.programHandler(cfg, cat, store)),
			RateLimit(srv.limiter, log),
			Logging(log),
		),
	}

	if cfg.SSHAuthMode == config.AuthModeAllowlist {
		opts = append(opts, wish.WithPublicKeyAuth(func(_ ssh.Context, key ssh.PublicKey) bool {
			return allowlist.Allows(key)
		}))
	} else {
		opts = append(opts, wish.WithPublicKeyAuth(func(ssh.Context, ssh.PublicKey) bool {
			return true
		}))
	}

	// Always disable password auth
	opts = append(opts, wish.WithPasswordAuth(func(ssh.Context, string) bool {
		return false
	}))

	s, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("creating ssh server: %w", err)
	}
	srv.Server = s

	if _, err := srv.cron.AddFunc("@every 5m", func() {
		if n := srv.limiter.Prune(10 * time.Minute); n > 0 {
			log.Debug().Int("pruned", n).Msg("idle rate limiters dropped")
		}
	}); err != nil {
		return nil, fmt.Errorf("scheduling limiter pruning: %w", err)
	}
	return srv, nil
}

// programHandler builds the TUI for a session, with a cart keyed by the
// visitor's public key.
func (srv *Server) programHandler(cfg *config.Config, cat *catalog.Catalog, store cart.Store) bubbletea.Handler {
	return func(s ssh.Session) (tea.Model, []tea.ProgramOption) {
		key := auth.VisitorKey(cart.DefaultKey, s.PublicKey())
		log := srv.log.With().Str("session_id", sessionID(s.Context())).Logger()

		model := tui.NewModel(tui.Options{
			Catalog:    cat,
			Cart:       cart.NewService(store, key, cat, log),
			Logger:     log,
			Context:    s.Context(),
			FadeDelay:  cfg.GalleryFadeDelay,
			ClearDelay: cfg.MessageClearDelay,
		})
		return model, []tea.ProgramOption{tea.WithAltScreen()}
	}
}

// ListenAndServe starts background maintenance and serves until shut down.
func (srv *Server) ListenAndServe() error {
	srv.cron.Start()
	defer srv.cron.Stop()
	return srv.Server.ListenAndServe()
}

// EnsureHostKey generates an ED25519 host key at path if none exists.
func EnsureHostKey(path string, log zerolog.Logger) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	log.Info().Str("path", path).Msg("generating ED25519 host key")

	pubKey, privKey, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return fmt.Errorf("generating key: %w", err)
	}

	block, err := gossh.MarshalPrivateKey(privKey, "")
	if err != nil {
		return fmt.Errorf("marshaling private key: %w", err)
	}
	if err := os.WriteFile(path, pem.EncodeToMemory(block), 0o600); err != nil {
		return fmt.Errorf("writing private key: %w", err)
	}

	sshPubKey, err := gossh.NewPublicKey(pubKey)
	if err != nil {
		return fmt.Errorf("creating public key: %w", err)
	}
	if err := os.WriteFile(path+".pub", gossh.MarshalAuthorizedKey(sshPubKey), 0o644); err != nil {
		return fmt.Errorf("writing public key: %w", err)
	}
	return nil
}
