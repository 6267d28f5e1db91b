// Package replay parses replay command flags and inspects, exports, or
// imports journal contents.
package replay

import (
	"context"
	"flag"
	"fmt"
	"io"
	"time"

	entrypoint "github.com/industry-digital/flux-game-sub010/internal/platform/cmd"
	"github.com/industry-digital/flux-game-sub010/internal/storage"
	"github.com/industry-digital/flux-game-sub010/internal/storage/archive"
	sqlitestore "github.com/industry-digital/flux-game-sub010/internal/storage/sqlite"
)

// listBatchSize bounds one journal read while walking the full stream.
const listBatchSize = 500

// Config holds replay command configuration.
type Config struct {
	Journal string `env:"FLUX_REPLAY_JOURNAL" envDefault:"data/journal.sqlite"`
	Export  string `env:"FLUX_REPLAY_EXPORT"`
	Import  string `env:"FLUX_REPLAY_IMPORT"`
	Session string `env:"FLUX_REPLAY_SESSION"`
	After   uint64 `env:"FLUX_REPLAY_AFTER"`
	Limit   int    `env:"FLUX_REPLAY_LIMIT"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Journal, "journal", cfg.Journal, "path to the journal database")
	fs.StringVar(&cfg.Export, "export", cfg.Export, "write the selected events to an archive file")
	fs.StringVar(&cfg.Import, "import", cfg.Import, "append events from an archive file to the journal")
	fs.StringVar(&cfg.Session, "session", cfg.Session, "only events from this workbench session")
	fs.Uint64Var(&cfg.After, "after", cfg.After, "only events with a sequence above this watermark")
	fs.IntVar(&cfg.Limit, "limit", cfg.Limit, "stop after this many events (0 = all)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run executes the replay command. Import and export are exclusive modes;
// with neither set the selected events print one per line.
func Run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	if errOut == nil {
		errOut = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceReplay, func(ctx context.Context) error {
		return run(ctx, cfg, out, errOut)
	})
}

func run(ctx context.Context, cfg Config, out io.Writer, errOut io.Writer) error {
	store, err := sqlitestore.Open(cfg.Journal)
	if err != nil {
		return fmt.Errorf("open journal: %w", err)
	}
	defer func() {
		if cerr := store.Close(); cerr != nil {
			fmt.Fprintf(errOut, "close journal: %v\n", cerr)
		}
	}()

	if cfg.Import != "" {
		n, err := importArchive(ctx, store, cfg.Import)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Imported %d events into %s.\n", n, cfg.Journal)
		return nil
	}

	if cfg.Export != "" {
		records, err := collect(ctx, store, cfg)
		if err != nil {
			return err
		}
		if err := archive.WriteFile(cfg.Export, records); err != nil {
			return fmt.Errorf("write archive: %w", err)
		}
		fmt.Fprintf(out, "Exported %d events to %s.\n", len(records), cfg.Export)
		return nil
	}

	records, err := collect(ctx, store, cfg)
	if err != nil {
		return err
	}
	for _, rec := range records {
		printRecord(out, rec)
	}
	fmt.Fprintf(out, "%d events.\n", len(records))
	return nil
}

// collect walks the journal in batches and returns the selected records.
func collect(ctx context.Context, store *sqlitestore.Store, cfg Config) ([]storage.EventRecord, error) {
	var (
		records []storage.EventRecord
		after   = cfg.After
	)
	for {
		batch := listBatchSize
		if cfg.Limit > 0 {
			remaining := cfg.Limit - len(records)
			if remaining <= 0 {
				break
			}
			if remaining < batch {
				batch = remaining
			}
		}

		var (
			page []storage.EventRecord
			err  error
		)
		if cfg.Session != "" {
			page, err = store.ListEventsBySession(ctx, cfg.Session, after, batch)
		} else {
			page, err = store.ListEvents(ctx, after, batch)
		}
		if err != nil {
			return nil, fmt.Errorf("list events: %w", err)
		}
		records = append(records, page...)
		if len(page) < batch {
			break
		}
		after = page[len(page)-1].Seq
	}
	return records, nil
}

func importArchive(ctx context.Context, store *sqlitestore.Store, path string) (int, error) {
	records, err := archive.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read archive: %w", err)
	}
	// The journal assigns fresh sequence numbers; archived ordering is kept.
	for i, rec := range records {
		if _, err := store.AppendEvent(ctx, rec.Event()); err != nil {
			return i, fmt.Errorf("append event %d: %w", rec.Seq, err)
		}
	}
	return len(records), nil
}

func printRecord(out io.Writer, rec storage.EventRecord) {
	fmt.Fprintf(out, "%d\t%s\t%s\t%s\t%s\t%s\n",
		rec.Seq,
		rec.Timestamp.UTC().Format(time.RFC3339Nano),
		rec.Type,
		rec.Actor,
		rec.Session,
		rec.Payload,
	)
}
