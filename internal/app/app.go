package app

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"regexp"
	"time"

	"github.com/rs/zerolog"

	"github.com/robinsk/prat/internal/config"
	"github.com/robinsk/prat/internal/core"
	transporthttp "github.com/robinsk/prat/internal/transport/http"
)

// App wires together the chat session and the HTTP transport.
type App struct {
	server          *stdhttp.Server
	session         *core.Session
	shutdownTimeout time.Duration
	log             *zerolog.Logger
}

// New constructs the application with the provided configuration.
func New(cfg config.Config, logger *zerolog.Logger) (*App, error) {
	nickRe, err := regexp.Compile(cfg.NickPattern)
	if err != nil {
		return nil, fmt.Errorf("compile nick pattern: %w", err)
	}

	session := core.NewSession(logger, core.WithNickPattern(nickRe))
	server := transporthttp.NewServer(session, cfg, logger)

	return &App{
		server:          server,
		session:         session,
		shutdownTimeout: cfg.ShutdownTimeout,
		log:             logger,
	}, nil
}

// Run starts the HTTP server and blocks until context cancellation or a
// fatal listen error. On cancellation the session says goodbye to its
// clients before the HTTP server is drained.
func (a *App) Run(ctx context.Context) error {
	serverErr := make(chan error, 1)

	go func() {
		a.log.Info().Str("addr", a.server.Addr).Msgf("chat server started at http://localhost%s/", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && err != stdhttp.ErrServerClosed {
			serverErr <- err
			return
		}
		serverErr <- nil
	}()

	select {
	case err := <-serverErr:
		a.session.Shutdown()
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
		defer cancel()

		a.log.Info().Msg("shutting down")
		a.session.Shutdown()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return <-serverErr
	}
}
