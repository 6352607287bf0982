package web

import (
	"context"
	"log/slog"
	"time"

	"github.com/lceo-rwanda/portal/internal/platform/clock"
	"github.com/lceo-rwanda/portal/internal/services/web/platform/observability"
	"github.com/lceo-rwanda/portal/internal/services/web/storage"
)

// janitor periodically removes browser entries idle past the retention.
type janitor struct {
	pruner    storage.Pruner
	clock     clock.Clock
	retention time.Duration
	interval  time.Duration
	logger    *slog.Logger
	metrics   *observability.Metrics
}

func newJanitor(pruner storage.Pruner, c clock.Clock, retention, interval time.Duration, logger *slog.Logger, metrics *observability.Metrics) *janitor {
	return &janitor{
		pruner:    pruner,
		clock:     c,
		retention: retention,
		interval:  interval,
		logger:    logger,
		metrics:   metrics,
	}
}

// Sweep prunes once and returns the number of removed entries.
func (j *janitor) Sweep(ctx context.Context) (int64, error) {
	cutoff := j.clock.Now().Add(-j.retention)
	removed, err := j.pruner.PruneBefore(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	j.metrics.StoragePruned(removed)
	if removed > 0 {
		j.logger.InfoContext(ctx, "pruned idle browser entries", "removed", removed, "cutoff", cutoff)
	}
	return removed, nil
}

// Run sweeps every interval until ctx is done.
func (j *janitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()
	for {
		if _, err := j.Sweep(ctx); err != nil && ctx.Err() == nil {
			j.logger.WarnContext(ctx, "prune browser entries", "error", err)
		}
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
