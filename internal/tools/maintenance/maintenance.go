// Package maintenance prunes idle browser data from the portal database
// outside the running server.
package maintenance

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	entrypoint "github.com/lceo-rwanda/portal/internal/platform/cmd"
	"github.com/lceo-rwanda/portal/internal/services/web/storage"
	"github.com/lceo-rwanda/portal/internal/services/web/storage/sqlite"
)

// Config holds maintenance command configuration.
type Config struct {
	DBPath     string        `env:"LCEO_WEB_DB_PATH" envDefault:"data/portal.db"`
	Retention  time.Duration `env:"LCEO_WEB_IDLE_RETENTION" envDefault:"720h"`
	Timeout    time.Duration `env:"LCEO_MAINTENANCE_TIMEOUT" envDefault:"10m"`
	JSONOutput bool
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the portal sqlite database")
	fs.DurationVar(&cfg.Retention, "retention", cfg.Retention, "remove browser values idle longer than this")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "overall timeout")
	fs.BoolVar(&cfg.JSONOutput, "json", false, "print the result as JSON")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Retention <= 0 {
		return Config{}, errors.New("retention must be positive")
	}
	return cfg, nil
}

type report struct {
	DBPath  string    `json:"db_path"`
	Cutoff  time.Time `json:"cutoff"`
	Removed int64     `json:"removed"`
}

// Run opens the database and prunes once relative to now.
func Run(ctx context.Context, cfg Config, out io.Writer, now time.Time) error {
	if out == nil {
		return errors.New("output is required")
	}
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open portal db: %w", err)
	}
	defer store.Close()
	return prune(ctx, store, cfg, out, now)
}

func prune(ctx context.Context, pruner storage.Pruner, cfg Config, out io.Writer, now time.Time) error {
	cutoff := now.Add(-cfg.Retention)
	removed, err := pruner.PruneBefore(ctx, cutoff)
	if err != nil {
		return fmt.Errorf("prune browser values: %w", err)
	}
	result := report{DBPath: cfg.DBPath, Cutoff: cutoff, Removed: removed}
	if cfg.JSONOutput {
		return json.NewEncoder(out).Encode(result)
	}
	_, err = fmt.Fprintf(out, "removed %d browser values idle since %s\n", result.Removed, result.Cutoff.Format(time.RFC3339))
	return err
}
