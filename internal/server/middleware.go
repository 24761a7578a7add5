package server

import (
	"fmt"
	"time"

	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type contextKey string

const sessionIDKey contextKey = "session_id"

// sessionID returns the id set by the logging middleware.
func sessionID(ctx ssh.Context) string {
	if id, ok := ctx.Value(sessionIDKey).(string); ok {
		return id
	}
	return ""
}

// Logging tags each session with an id and logs its start and end.
func Logging(log zerolog.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			id := uuid.NewString()
			s.Context().SetValue(sessionIDKey, id)

			l := log.With().
				Str("session_id", id).
				Str("user", s.User()).
				Str("remote", s.RemoteAddr().String()).
				Logger()

			pty, _, isPty := s.Pty()
			l.Info().Bool("pty", isPty).Str("term", pty.Term).Msg("session started")

			start := time.Now()
			next(s)
			l.Info().Dur("duration", time.Since(start)).Msg("session ended")
		}
	}
}

// RateLimit turns away hosts opening sessions faster than the limiter
// allows.
func RateLimit(limiter *visitorLimiter, log zerolog.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(s ssh.Session) {
			host := remoteHost(s.RemoteAddr())
			if !limiter.Allow(host) {
				log.Warn().Str("remote", host).Str("session_id", sessionID(s.Context())).Msg("session rate limited")
				fmt.Fprintln(s.Stderr(), "Too many connections, try again in a moment.")
				_ = s.Exit(1)
				return
			}
			next(s)
		}
	}
}
