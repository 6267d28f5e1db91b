// Package archive reads and writes journal archives.
//
// An archive is a zstd-compressed JSONL stream: one journal record per line
// in ascending sequence order. Archives are the offline interchange format
// for journals; cmd/replay exports them and rebuilds journals from them.
package archive

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/zstd"

	"github.com/industry-digital/flux-game-sub010/internal/game/event"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
	"github.com/industry-digital/flux-game-sub010/internal/storage"
)

// Record is the JSON shape of one archived journal record.
type Record struct {
	Seq       uint64          `json:"seq"`
	Type      string          `json:"type"`
	Timestamp time.Time       `json:"ts"`
	Actor     string          `json:"actor,omitempty"`
	Location  string          `json:"location,omitempty"`
	Session   string          `json:"session,omitempty"`
	Trace     string          `json:"trace,omitempty"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

func toRecord(rec storage.EventRecord) Record {
	return Record{
		Seq:       rec.Seq,
		Type:      string(rec.Type),
		Timestamp: rec.Timestamp,
		Actor:     string(rec.Actor),
		Location:  string(rec.Location),
		Session:   rec.Session,
		Trace:     rec.Trace,
		Payload:   json.RawMessage(rec.Payload),
	}
}

// EventRecord converts the archived line back to a journal record.
func (r Record) EventRecord() storage.EventRecord {
	return storage.EventRecord{
		Seq:       r.Seq,
		Type:      event.Type(r.Type),
		Timestamp: r.Timestamp,
		Actor:     world.ActorID(r.Actor),
		Location:  world.PlaceID(r.Location),
		Session:   r.Session,
		Trace:     r.Trace,
		Payload:   []byte(r.Payload),
	}
}

// Write streams records to w as compressed JSONL.
func Write(w io.Writer, records []storage.EventRecord) error {
	enc, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("new zstd writer: %w", err)
	}

	bw := bufio.NewWriterSize(enc, 128*1024)
	for _, rec := range records {
		line, err := json.Marshal(toRecord(rec))
		if err != nil {
			_ = enc.Close()
			return fmt.Errorf("marshal record %d: %w", rec.Seq, err)
		}
		if _, err := bw.Write(line); err != nil {
			_ = enc.Close()
			return fmt.Errorf("write record %d: %w", rec.Seq, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			_ = enc.Close()
			return fmt.Errorf("write record %d: %w", rec.Seq, err)
		}
	}
	if err := bw.Flush(); err != nil {
		_ = enc.Close()
		return fmt.Errorf("flush archive: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("close zstd writer: %w", err)
	}
	return nil
}

// Read decodes a compressed JSONL stream into journal records.
func Read(r io.Reader) ([]storage.EventRecord, error) {
	dec, err := zstd.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("new zstd reader: %w", err)
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, 64*1024), 8*1024*1024)

	var out []storage.EventRecord
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		var rec Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("line %d: unmarshal: %w", lineNo, err)
		}
		out = append(out, rec.EventRecord())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	return out, nil
}

// WriteFile writes records to an archive file, creating parent directories.
func WriteFile(path string, records []storage.EventRecord) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create archive dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create archive: %w", err)
	}
	if err := Write(f, records); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}

// ReadFile reads an archive file into journal records.
func ReadFile(path string) ([]storage.EventRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()
	return Read(f)
}
