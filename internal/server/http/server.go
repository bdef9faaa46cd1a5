// Package http exposes the moderation service as a JSON REST API built on gin.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/dmitrijs2005/teamadmin/internal/logging"
	"github.com/dmitrijs2005/teamadmin/internal/server/models"
	"github.com/dmitrijs2005/teamadmin/internal/server/services"
)

type moderationSvc interface {
	PendingAds(ctx context.Context, page services.Page) ([]models.Ad, error)
	VerifyAd(ctx context.Context, id int64) (*models.Ad, error)
	RejectAd(ctx context.Context, id int64) (*models.Ad, error)
	PendingUsers(ctx context.Context, page services.Page) ([]models.User, error)
	VerifyUser(ctx context.Context, id int64) (*models.User, error)
	RejectUser(ctx context.Context, id int64) (*models.User, error)
}

// Options tunes the HTTP server. Zero timeouts disable the matching limit.
type Options struct {
	TrustedProxyHops int
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
}

type HTTPServer struct {
	address    string
	moderation moderationSvc
	logger     logging.Logger
	opts       Options
	engine     *gin.Engine
}

func NewHTTPServer(a string, l logging.Logger, ms moderationSvc, opts Options) (*HTTPServer, error) {
	s := &HTTPServer{
		address:    a,
		moderation: ms,
		logger:     l.With("module", "http_server"),
		opts:       opts,
	}

	engine := gin.New()
	// client addresses come from forwardedFor, not from gin's proxy logic
	if err := engine.SetTrustedProxies(nil); err != nil {
		return nil, err
	}
	engine.Use(
		gin.Recovery(),
		requestID(),
		forwardedFor(opts.TrustedProxyHops),
		accessLog(s.logger),
		cors.New(corsConfig()),
	)
	s.routes(engine)
	s.engine = engine

	return s, nil
}

// Handler returns the router, mainly for tests.
func (s *HTTPServer) Handler() http.Handler {
	return s.engine
}

// Run serves until ctx is cancelled and then drains in-flight requests for
// at most ShutdownTimeout.
func (s *HTTPServer) Run(ctx context.Context) error {

	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:      s.engine,
		ReadTimeout:  s.opts.ReadTimeout,
		WriteTimeout: s.opts.WriteTimeout,
	}

	stopped := make(chan error, 1)
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx := context.Background()
		if s.opts.ShutdownTimeout > 0 {
			var cancel context.CancelFunc
			shutdownCtx, cancel = context.WithTimeout(shutdownCtx, s.opts.ShutdownTimeout)
			defer cancel()
		}
		stopped <- srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", listen.Addr().String())

	if err := srv.Serve(listen); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return <-stopped
}
