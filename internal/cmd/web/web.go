// Package web parses portal flags and launches the web service.
package web

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/lceo-rwanda/portal/internal/platform/clock"
	entrypoint "github.com/lceo-rwanda/portal/internal/platform/cmd"
	"github.com/lceo-rwanda/portal/internal/platform/logging"
	"github.com/lceo-rwanda/portal/internal/services/web"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/requestmeta"
	"github.com/lceo-rwanda/portal/internal/services/web/storage"
	"github.com/lceo-rwanda/portal/internal/services/web/storage/memory"
	"github.com/lceo-rwanda/portal/internal/services/web/storage/sqlite"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string        `env:"LCEO_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	DBPath              string        `env:"LCEO_WEB_DB_PATH" envDefault:"data/portal.db"`
	SessionKey          string        `env:"LCEO_WEB_SESSION_KEY"`
	SimulatedLatency    bool          `env:"LCEO_WEB_SIMULATED_LATENCY" envDefault:"true"`
	TrustForwardedProto bool          `env:"LCEO_WEB_TRUST_FORWARDED_PROTO" envDefault:"false"`
	IdleRetention       time.Duration `env:"LCEO_WEB_IDLE_RETENTION" envDefault:"720h"`
	LogLevel            string        `env:"LCEO_LOG_LEVEL" envDefault:"info"`
	LogFormat           string        `env:"LCEO_LOG_FORMAT" envDefault:"text"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite path for browser storage; empty keeps it in memory")
	fs.BoolVar(&cfg.SimulatedLatency, "simulated-latency", cfg.SimulatedLatency, "delay form submissions like a remote backend")
	fs.BoolVar(&cfg.TrustForwardedProto, "trust-forwarded-proto", cfg.TrustForwardedProto, "honor X-Forwarded-Proto from a trusted proxy")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if strings.TrimSpace(cfg.SessionKey) == "" {
		return Config{}, errors.New("LCEO_WEB_SESSION_KEY is required")
	}
	return cfg, nil
}

// Run starts the portal web server.
func Run(ctx context.Context, cfg Config) error {
	logger := logging.Setup(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat})
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		store, err := openStore(cfg.DBPath)
		if err != nil {
			return err
		}
		server, err := web.NewServer(serverConfig(cfg, store, logger))
		if err != nil {
			_ = store.Close()
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func serverConfig(cfg Config, store storage.Store, logger *slog.Logger) web.Config {
	var c clock.Clock = clock.Real{}
	if !cfg.SimulatedLatency {
		c = clock.Instant{}
	}
	return web.Config{
		HTTPAddr:      cfg.HTTPAddr,
		Store:         store,
		SessionKey:    []byte(cfg.SessionKey),
		SchemePolicy:  requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Clock:         c,
		Logger:        logger,
		IdleRetention: cfg.IdleRetention,
	}
}

func openStore(path string) (storage.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return memory.New(), nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}
	store, err := sqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open browser storage: %w", err)
	}
	return store, nil
}
