// Package sqlite provides the SQLite-backed event journal.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/industry-digital/flux-game-sub010/internal/game/event"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
	"github.com/industry-digital/flux-game-sub010/internal/storage"
	"github.com/industry-digital/flux-game-sub010/internal/storage/sqlite/migrations"
)

// toMillis converts a domain time to the persisted millisecond form.
func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

// fromMillis reverses toMillis for persisted millisecond timestamps.
func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Store is a SQLite-backed journal implementing storage.Journal.
type Store struct {
	sqlDB *sql.DB
}

var _ storage.Journal = (*Store)(nil)

// Open opens a SQLite journal at the provided path, creating parent
// directories and applying embedded migrations as needed.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create storage dir: %w", err)
		}
	}

	sqlDB, err := sql.Open("sqlite", cleanPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	// The journal has a single writer; one connection avoids SQLITE_BUSY
	// between the append transaction and reads.
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	if err := initPragmas(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("init pragmas: %w", err)
	}

	if err := applyMigrations(sqlDB, migrations.JournalFS, "journal"); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// initPragmas applies the connection pragmas for an append-style workload.
func initPragmas(sqlDB *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := sqlDB.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the underlying SQLite database.
//
// Close is intentionally nil-safe so callers can defer it in all startup paths.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// AppendEvent atomically appends an event and returns its record with the
// assigned sequence number.
func (s *Store) AppendEvent(ctx context.Context, evt event.Event) (storage.EventRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.EventRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.EventRecord{}, fmt.Errorf("storage is not configured")
	}
	if !evt.Type.IsValid() {
		return storage.EventRecord{}, fmt.Errorf("event type is required")
	}

	ts := evt.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	ts = ts.UTC().Truncate(time.Millisecond)

	payload := evt.PayloadJSON
	if len(payload) == 0 {
		payload = []byte("{}")
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return storage.EventRecord{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var seq uint64
	if err := tx.QueryRowContext(ctx, "SELECT COALESCE(MAX(seq), 0) + 1 FROM events").Scan(&seq); err != nil {
		return storage.EventRecord{}, fmt.Errorf("next event seq: %w", err)
	}

	const insertSQL = `
INSERT INTO events (seq, event_type, timestamp, actor_id, place_id, session_id, trace_id, payload_json)
VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, insertSQL,
		seq,
		string(evt.Type),
		toMillis(ts),
		string(evt.Actor),
		string(evt.Location),
		evt.Session,
		evt.Trace,
		string(payload),
	); err != nil {
		return storage.EventRecord{}, fmt.Errorf("append event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return storage.EventRecord{}, fmt.Errorf("commit append: %w", err)
	}

	return storage.EventRecord{
		Seq:       seq,
		Type:      evt.Type,
		Timestamp: ts,
		Actor:     evt.Actor,
		Location:  evt.Location,
		Session:   evt.Session,
		Trace:     evt.Trace,
		Payload:   payload,
	}, nil
}

const selectColumns = "seq, event_type, timestamp, actor_id, place_id, session_id, trace_id, payload_json"

// ListEvents returns up to limit records with seq > afterSeq in ascending order.
func (s *Store) ListEvents(ctx context.Context, afterSeq uint64, limit int) ([]storage.EventRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	query := "SELECT " + selectColumns + " FROM events WHERE seq > ? ORDER BY seq ASC LIMIT ?"
	rows, err := s.sqlDB.QueryContext(ctx, query, afterSeq, limit)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListEventsBySession returns records for a specific workbench session.
func (s *Store) ListEventsBySession(ctx context.Context, session string, afterSeq uint64, limit int) ([]storage.EventRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(session) == "" {
		return nil, fmt.Errorf("session id is required")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	query := "SELECT " + selectColumns + " FROM events WHERE session_id = ? AND seq > ? ORDER BY seq ASC LIMIT ?"
	rows, err := s.sqlDB.QueryContext(ctx, query, session, afterSeq, limit)
	if err != nil {
		return nil, fmt.Errorf("list events by session: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// GetEventBySeq returns the record at the exact sequence number.
func (s *Store) GetEventBySeq(ctx context.Context, seq uint64) (storage.EventRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.EventRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.EventRecord{}, fmt.Errorf("storage is not configured")
	}

	query := "SELECT " + selectColumns + " FROM events WHERE seq = ?"
	rec, err := scanRecord(s.sqlDB.QueryRowContext(ctx, query, seq))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.EventRecord{}, storage.ErrNotFound
		}
		return storage.EventRecord{}, fmt.Errorf("get event by seq: %w", err)
	}
	return rec, nil
}

// GetLatestEventSeq returns the highest assigned sequence number.
func (s *Store) GetLatestEventSeq(ctx context.Context) (uint64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}

	var seq uint64
	if err := s.sqlDB.QueryRowContext(ctx, "SELECT COALESCE(MAX(seq), 0) FROM events").Scan(&seq); err != nil {
		return 0, fmt.Errorf("get latest event seq: %w", err)
	}
	return seq, nil
}

// scanner abstracts *sql.Row and *sql.Rows for record scanning.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (storage.EventRecord, error) {
	var (
		rec       storage.EventRecord
		eventType string
		millis    int64
		actor     string
		place     string
		payload   string
	)
	if err := row.Scan(&rec.Seq, &eventType, &millis, &actor, &place, &rec.Session, &rec.Trace, &payload); err != nil {
		return storage.EventRecord{}, err
	}
	rec.Type = event.Type(eventType)
	rec.Timestamp = fromMillis(millis)
	rec.Actor = world.ActorID(actor)
	rec.Location = world.PlaceID(place)
	rec.Payload = []byte(payload)
	return rec, nil
}

func scanRecords(rows *sql.Rows) ([]storage.EventRecord, error) {
	var out []storage.EventRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan event row: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read event rows: %w", err)
	}
	return out, nil
}
