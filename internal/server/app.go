// Package server wires configuration, storage, the moderation service and the
// HTTP API together, and runs them until the process is signalled.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/teamadmin/internal/logging"
	"github.com/dmitrijs2005/teamadmin/internal/server/config"
	"github.com/dmitrijs2005/teamadmin/internal/server/push"
	"github.com/dmitrijs2005/teamadmin/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/teamadmin/internal/server/services"

	hs "github.com/dmitrijs2005/teamadmin/internal/server/http"
)

// openDB is a seam for tests.
var openDB = repomanager.OpenDB

type App struct {
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	notifier push.Notifier
	server   *hs.HTTPServer
}

// NewApp validates c and builds every dependency. Any failure here is a
// startup failure.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	notifier, err := push.NewDiscard(c.PushKeys())
	if err != nil {
		return nil, err
	}

	db, err := openDB(ctx, c.DSN())
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if c.Migrate {
		if err := rm.RunMigrations(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	ms := services.NewModerationService(db, rm)

	srv, err := hs.NewHTTPServer(c.ListenAddr, logger, ms, hs.Options{
		TrustedProxyHops: c.TrustedProxyHops,
		ReadTimeout:      c.ReadTimeout,
		WriteTimeout:     c.WriteTimeout,
		ShutdownTimeout:  c.ShutdownTimeout,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &App{config: c, logger: logger, db: db, notifier: notifier, server: srv}, nil
}

// NewDefaultLogger is the JSON logger used by the server binary.
func NewDefaultLogger() logging.Logger {
	return logging.NewJSON(os.Stdout, slog.LevelInfo)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run blocks until ctx is cancelled, a termination signal arrives or the
// HTTP server fails. The database pool is closed on the way out.
func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "push_public_key", app.notifier.PublicKey(), "migrate", app.config.Migrate)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.db.Close(); err != nil {
		app.logger.Error(ctx, "db close error", "error", err)
	}
	app.logger.Info(ctx, "App stopped")
}
