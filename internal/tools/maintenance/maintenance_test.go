package maintenance

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/lceo-rwanda/portal/internal/services/web/storage/sqlite"
)

func TestParseConfigFlagsOverrideDefaults(t *testing.T) {
	fs := flag.NewFlagSet("maintenance", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-db-path", "tmp/portal.db", "-retention", "48h", "-json"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.DBPath != "tmp/portal.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "tmp/portal.db")
	}
	if cfg.Retention != 48*time.Hour {
		t.Fatalf("Retention = %v, want %v", cfg.Retention, 48*time.Hour)
	}
	if !cfg.JSONOutput {
		t.Fatal("JSONOutput = false, want true")
	}
}

func TestParseConfigRejectsNonPositiveRetention(t *testing.T) {
	fs := flag.NewFlagSet("maintenance", flag.ContinueOnError)
	if _, err := ParseConfig(fs, []string{"-retention", "0s"}); err == nil {
		t.Fatal("ParseConfig() error = nil, want error")
	}
}

type stubPruner struct {
	cutoff  time.Time
	removed int64
}

func (s *stubPruner) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	s.cutoff = cutoff
	return s.removed, nil
}

func TestPruneReportsJSON(t *testing.T) {
	now := time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC)
	pruner := &stubPruner{removed: 4}
	var out bytes.Buffer
	cfg := Config{DBPath: "portal.db", Retention: 24 * time.Hour, JSONOutput: true}
	if err := prune(context.Background(), pruner, cfg, &out, now); err != nil {
		t.Fatalf("prune() error = %v", err)
	}
	if want := now.Add(-24 * time.Hour); !pruner.cutoff.Equal(want) {
		t.Fatalf("cutoff = %v, want %v", pruner.cutoff, want)
	}
	var got report
	if err := json.Unmarshal(out.Bytes(), &got); err != nil {
		t.Fatalf("decode report: %v", err)
	}
	if got.Removed != 4 || got.DBPath != "portal.db" {
		t.Fatalf("report = %+v, want 4 removed from portal.db", got)
	}
}

func TestRunPrunesSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "portal.db")
	store, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := store.PutValue(context.Background(), "browser-1", "lceo_user", []byte(`{}`)); err != nil {
		t.Fatalf("PutValue() error = %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	var out bytes.Buffer
	cfg := Config{DBPath: path, Retention: time.Hour}
	if err := Run(context.Background(), cfg, &out, time.Now().Add(2*time.Hour)); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "removed 1 browser values") {
		t.Fatalf("output = %q, want one removal", out.String())
	}
}
