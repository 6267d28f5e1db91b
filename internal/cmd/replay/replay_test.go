package replay

import (
	"bytes"
	"context"
	"flag"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/industry-digital/flux-game-sub010/internal/game/event"
	sqlitestore "github.com/industry-digital/flux-game-sub010/internal/storage/sqlite"
)

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Journal != "data/journal.sqlite" {
		t.Fatalf("expected default journal path, got %q", cfg.Journal)
	}
	if cfg.Export != "" || cfg.Import != "" || cfg.Session != "" {
		t.Fatalf("expected empty mode flags, got %+v", cfg)
	}
	if cfg.After != 0 || cfg.Limit != 0 {
		t.Fatalf("expected zero watermark and limit, got %+v", cfg)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	fs := flag.NewFlagSet("replay", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{
		"-journal", "/tmp/j.sqlite",
		"-export", "/tmp/a.jsonl.zst",
		"-session", "ses-9",
		"-after", "12",
		"-limit", "5",
	})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Journal != "/tmp/j.sqlite" {
		t.Fatalf("expected journal override, got %q", cfg.Journal)
	}
	if cfg.Export != "/tmp/a.jsonl.zst" {
		t.Fatalf("expected export override, got %q", cfg.Export)
	}
	if cfg.Session != "ses-9" {
		t.Fatalf("expected session override, got %q", cfg.Session)
	}
	if cfg.After != 12 {
		t.Fatalf("expected watermark 12, got %d", cfg.After)
	}
	if cfg.Limit != 5 {
		t.Fatalf("expected limit 5, got %d", cfg.Limit)
	}
}

// seedJournal writes n events to a fresh journal and returns its path.
func seedJournal(t *testing.T, n int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.sqlite")
	store, err := sqlitestore.Open(path)
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	defer store.Close()

	base := time.Unix(1700000000, 0).UTC()
	for i := 0; i < n; i++ {
		session := "ses-a"
		if i%2 == 1 {
			session = "ses-b"
		}
		evt := event.Event{
			Type:        event.TypeCombatantMoved,
			Timestamp:   base.Add(time.Duration(i) * time.Second),
			Actor:       "ac-razor",
			Location:    "pl-arena",
			Session:     session,
			Trace:       "tr-1",
			PayloadJSON: []byte(`{"from":100,"to":110}`),
		}
		if _, err := store.AppendEvent(context.Background(), evt); err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}
	return path
}

func TestRunListsEvents(t *testing.T) {
	t.Setenv("FLUX_OTEL_ENDPOINT", "")

	path := seedJournal(t, 3)
	var out bytes.Buffer
	if err := Run(context.Background(), Config{Journal: path}, &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 3 records plus summary, got %d lines:\n%s", len(lines), got)
	}
	if !strings.HasPrefix(lines[0], "1\t") {
		t.Fatalf("expected first line to start at seq 1, got %q", lines[0])
	}
	if !strings.Contains(lines[0], string(event.TypeCombatantMoved)) {
		t.Fatalf("expected event type in line, got %q", lines[0])
	}
	if lines[3] != "3 events." {
		t.Fatalf("expected summary line, got %q", lines[3])
	}
}

func TestRunFiltersSessionAndLimit(t *testing.T) {
	t.Setenv("FLUX_OTEL_ENDPOINT", "")

	path := seedJournal(t, 6)
	var out bytes.Buffer
	cfg := Config{Journal: path, Session: "ses-a", Limit: 2}
	if err := Run(context.Background(), cfg, &out, io.Discard); err != nil {
		t.Fatalf("run: %v", err)
	}
	got := out.String()
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 2 records plus summary, got %d lines:\n%s", len(lines), got)
	}
	// Events 1, 3, 5 carry ses-a; the limit keeps the first two.
	if !strings.HasPrefix(lines[0], "1\t") || !strings.HasPrefix(lines[1], "3\t") {
		t.Fatalf("expected seqs 1 and 3, got:\n%s", got)
	}
}

func TestRunExportImportRoundTrip(t *testing.T) {
	t.Setenv("FLUX_OTEL_ENDPOINT", "")

	src := seedJournal(t, 4)
	archivePath := filepath.Join(t.TempDir(), "journal.jsonl.zst")

	var out bytes.Buffer
	if err := Run(context.Background(), Config{Journal: src, Export: archivePath}, &out, io.Discard); err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out.String(), "Exported 4 events") {
		t.Fatalf("expected export summary, got %q", out.String())
	}

	dst := filepath.Join(t.TempDir(), "copy.sqlite")
	out.Reset()
	if err := Run(context.Background(), Config{Journal: dst, Import: archivePath}, &out, io.Discard); err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out.String(), "Imported 4 events") {
		t.Fatalf("expected import summary, got %q", out.String())
	}

	store, err := sqlitestore.Open(dst)
	if err != nil {
		t.Fatalf("reopen journal: %v", err)
	}
	defer store.Close()
	records, err := store.ListEvents(context.Background(), 0, 10)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected 4 imported records, got %d", len(records))
	}
	for i, rec := range records {
		if rec.Seq != uint64(i+1) {
			t.Fatalf("record %d seq = %d, want %d", i, rec.Seq, i+1)
		}
		if rec.Type != event.TypeCombatantMoved {
			t.Fatalf("record %d type = %s, want %s", i, rec.Type, event.TypeCombatantMoved)
		}
	}
}
