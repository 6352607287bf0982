// Package web assembles the portal HTTP handler and server.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/lceo-rwanda/portal/internal/platform/clock"
	"github.com/lceo-rwanda/portal/internal/platform/timeouts"
	"github.com/lceo-rwanda/portal/internal/portal/auth"
	"github.com/lceo-rwanda/portal/internal/services/web/app"
	module "github.com/lceo-rwanda/portal/internal/services/web/module"
	"github.com/lceo-rwanda/portal/internal/services/web/modules"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/httpx"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/observability"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/requestmeta"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/sessioncookie"
	"github.com/lceo-rwanda/portal/internal/services/web/routepath"
	"github.com/lceo-rwanda/portal/internal/services/web/static"
	"github.com/lceo-rwanda/portal/internal/services/web/storage"
)

const (
	defaultIdleRetention = 30 * 24 * time.Hour
	defaultPruneInterval = time.Hour
)

// Config defines the inputs for the portal server.
type Config struct {
	HTTPAddr string
	// Store holds every browser-local value. Stores that implement
	// storage.Pruner are swept by the janitor.
	Store storage.Store
	// SessionKey signs the browser namespace cookie.
	SessionKey   []byte
	SchemePolicy requestmeta.SchemePolicy
	// Clock drives simulated latency; clock.Instant disables it.
	Clock   clock.Clock
	Logger  *slog.Logger
	Metrics *observability.Metrics
	// IdleRetention is how long untouched browser entries are kept.
	IdleRetention time.Duration
	PruneInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.Clock == nil {
		c.Clock = clock.Real{}
	}
	if c.Logger == nil {
		c.Logger = slog.Default()
	}
	if c.Metrics == nil {
		c.Metrics = observability.NewMetrics()
	}
	if c.IdleRetention <= 0 {
		c.IdleRetention = defaultIdleRetention
	}
	if c.PruneInterval <= 0 {
		c.PruneInterval = defaultPruneInterval
	}
	return c
}

// NewHandler builds the root handler: feature modules, health, metrics and
// static assets behind the shared middleware chain.
func NewHandler(config Config) (http.Handler, error) {
	config = config.withDefaults()
	if config.Store == nil {
		return nil, errors.New("store is required")
	}
	codec, err := sessioncookie.NewCodec(config.SessionKey)
	if err != nil {
		return nil, fmt.Errorf("init session cookie: %w", err)
	}
	sessions, err := auth.NewService(config.Store, auth.WithClock(config.Clock), auth.WithLogger(config.Logger))
	if err != nil {
		return nil, fmt.Errorf("init sessions: %w", err)
	}
	viewers := newViewerResolver(sessions, config.Logger)

	mux, err := app.Compose(app.ComposeInput{
		Dependencies: module.Dependencies{
			Sessions:      sessions,
			Store:         config.Store,
			Clock:         config.Clock,
			Logger:        config.Logger,
			Metrics:       config.Metrics,
			SchemePolicy:  config.SchemePolicy,
			ResolveViewer: viewers.Resolve,
		},
		Modules: modules.All(),
	})
	if err != nil {
		return nil, fmt.Errorf("compose modules: %w", err)
	}
	mux.Handle("GET "+routepath.Health, http.HandlerFunc(handleHealth))
	mux.Handle("GET "+routepath.Metrics, config.Metrics.Handler())
	mux.Handle("GET "+routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServerFS(static.FS)))

	return httpx.Chain(mux,
		httpx.RecoverPanic(config.Logger),
		httpx.RequestID(),
		observability.RequestLogger(config.Logger),
		config.Metrics.Middleware(),
		sessioncookie.Ensure(codec, config.SchemePolicy, config.Logger),
		withViewerCache,
	), nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}

// Server hosts the portal HTTP server.
type Server struct {
	httpAddr   string
	httpServer *http.Server
	store      storage.Store
	janitor    *janitor
	logger     *slog.Logger
}

// NewServer builds the portal server. The server owns config.Store and
// closes it in Close.
func NewServer(config Config) (*Server, error) {
	config = config.withDefaults()
	httpAddr := strings.TrimSpace(config.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(config)
	if err != nil {
		return nil, err
	}
	server := &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		store:  config.Store,
		logger: config.Logger,
	}
	if pruner, ok := config.Store.(storage.Pruner); ok {
		server.janitor = newJanitor(pruner, config.Clock, config.IdleRetention, config.PruneInterval, config.Logger, config.Metrics)
	}
	return server, nil
}

// ListenAndServe serves HTTP until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	if s.janitor != nil {
		janitorCtx, stopJanitor := context.WithCancel(ctx)
		defer stopJanitor()
		go s.janitor.Run(janitorCtx)
	}

	serveErr := make(chan error, 1)
	s.logger.Info("portal listening", "addr", s.httpAddr)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve http: %w", err)
	}
}

// Close releases the browser store.
func (s *Server) Close() {
	if s == nil || s.store == nil {
		return
	}
	if err := s.store.Close(); err != nil {
		s.logger.Error("close browser store", "error", err)
	}
}
