package commands

import (
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/hrms/internal/config"
	"github.com/BruksfildServices01/hrms/internal/db"
	"github.com/BruksfildServices01/hrms/internal/logger"
)

type Globals struct {
	Debug   bool
	Version string
}

func configureHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		MaxHeaderBytes:    8 * 1024, // 8KiB
	}
}

// bootstrap loads configuration, builds the logger and opens a migrated
// database handle.
func bootstrap(globals *Globals) (*config.Config, zerolog.Logger, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), nil, fmt.Errorf("failed to load config: %w", err)
	}

	log := logger.Setup(globals.Debug, cfg.LogLevel)

	conn, err := db.Open(cfg, globals.Debug)
	if err != nil {
		return nil, log, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Migrate(conn); err != nil {
		_ = db.Close(conn)
		return nil, log, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return cfg, log, conn, nil
}
