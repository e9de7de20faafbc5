package commands

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/hrms/internal/audit"
	"github.com/BruksfildServices01/hrms/internal/db"
	"github.com/BruksfildServices01/hrms/internal/infra/repository"
	"github.com/BruksfildServices01/hrms/internal/routes"
)

const shutdownTimeout = 10 * time.Second

type ServeCmd struct {
	Listen string `help:"HTTP listen address, overrides SERVER_PORT" default:""`
}

func (c *ServeCmd) Run(ctx context.Context, globals *Globals) error {
	cfg, log, conn, err := bootstrap(globals)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(conn); err != nil {
			log.Error().Err(err).Msg("Failed to close database")
		}
	}()

	if cfg.JWTSecret == "changeme" {
		log.Warn().Msg("JWT_SECRET is the default value, set it before exposing the server")
	}

	store := audit.New(repository.NewHRGormRepository(conn))
	var recorder audit.Recorder = store
	if cfg.AuditAsync {
		dispatcher := audit.NewDispatcher(store, log)
		defer dispatcher.Close()
		recorder = dispatcher
	}

	if !globals.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	addr := cfg.Addr()
	if c.Listen != "" {
		addr = c.Listen
	}
	srv := configureHTTPServer(addr, routes.NewRouter(conn, cfg, recorder, log))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().
			Str("version", globals.Version).
			Str("listen", addr).
			Bool("hosted", cfg.Hosted()).
			Bool("strict_not_found", cfg.StrictNotFound).
			Msg("Starting server")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info().Msg("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}
	return nil
}
