package sqlite

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/industry-digital/flux-game-sub010/internal/game/event"
	"github.com/industry-digital/flux-game-sub010/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "journal.sqlite")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open journal store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close journal store: %v", err)
		}
	})
	return store
}

func testEvent(typ event.Type, session string) event.Event {
	return event.Event{
		Type:        typ,
		Timestamp:   time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC),
		Actor:       "ac-razor",
		Location:    "pl-arena",
		Session:     session,
		Trace:       "cmd-001",
		PayloadJSON: []byte(`{"from":100,"to":110}`),
	}
}

func TestAppendEventAssignsSequence(t *testing.T) {
	store := openTestStore(t)

	first, err := store.AppendEvent(context.Background(), testEvent(event.TypeCombatantMoved, ""))
	if err != nil {
		t.Fatalf("append event: %v", err)
	}
	if first.Seq != 1 {
		t.Fatalf("first.Seq = %d, want 1", first.Seq)
	}

	second, err := store.AppendEvent(context.Background(), testEvent(event.TypeShellSwapped, ""))
	if err != nil {
		t.Fatalf("append second event: %v", err)
	}
	if second.Seq != 2 {
		t.Fatalf("second.Seq = %d, want 2", second.Seq)
	}

	latest, err := store.GetLatestEventSeq(context.Background())
	if err != nil {
		t.Fatalf("get latest event seq: %v", err)
	}
	if latest != 2 {
		t.Fatalf("latest = %d, want 2", latest)
	}
}

func TestAppendEventPreservesFields(t *testing.T) {
	store := openTestStore(t)

	evt := testEvent(event.TypeCombatantMoved, "ses-1")
	stored, err := store.AppendEvent(context.Background(), evt)
	if err != nil {
		t.Fatalf("append event: %v", err)
	}

	got, err := store.GetEventBySeq(context.Background(), stored.Seq)
	if err != nil {
		t.Fatalf("get event by seq: %v", err)
	}
	if got.Type != evt.Type {
		t.Fatalf("got.Type = %q, want %q", got.Type, evt.Type)
	}
	if !got.Timestamp.Equal(evt.Timestamp) {
		t.Fatalf("got.Timestamp = %v, want %v", got.Timestamp, evt.Timestamp)
	}
	if got.Actor != evt.Actor {
		t.Fatalf("got.Actor = %q, want %q", got.Actor, evt.Actor)
	}
	if got.Location != evt.Location {
		t.Fatalf("got.Location = %q, want %q", got.Location, evt.Location)
	}
	if got.Session != evt.Session {
		t.Fatalf("got.Session = %q, want %q", got.Session, evt.Session)
	}
	if got.Trace != evt.Trace {
		t.Fatalf("got.Trace = %q, want %q", got.Trace, evt.Trace)
	}
	if !bytes.Equal(got.Payload, evt.PayloadJSON) {
		t.Fatalf("got.Payload = %s, want %s", got.Payload, evt.PayloadJSON)
	}

	rebuilt := got.Event()
	if rebuilt.Type != evt.Type || rebuilt.Trace != evt.Trace {
		t.Fatalf("rebuilt event does not match original: %+v", rebuilt)
	}
}

func TestAppendEventRequiresType(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.AppendEvent(context.Background(), event.Event{}); err == nil {
		t.Fatal("expected error for event without type")
	}
}

func TestListEventsAfterSeq(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		if _, err := store.AppendEvent(context.Background(), testEvent(event.TypeCombatantMoved, "")); err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	records, err := store.ListEvents(context.Background(), 2, 10)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	for i, rec := range records {
		want := uint64(3 + i)
		if rec.Seq != want {
			t.Fatalf("records[%d].Seq = %d, want %d", i, rec.Seq, want)
		}
	}

	limited, err := store.ListEvents(context.Background(), 0, 2)
	if err != nil {
		t.Fatalf("list events with limit: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("len(limited) = %d, want 2", len(limited))
	}

	if _, err := store.ListEvents(context.Background(), 0, 0); err == nil {
		t.Fatal("expected error for non-positive limit")
	}
}

func TestListEventsBySession(t *testing.T) {
	store := openTestStore(t)

	appends := []struct {
		typ     event.Type
		session string
	}{
		{event.TypeSessionStarted, "ses-1"},
		{event.TypeCombatantMoved, ""},
		{event.TypeMutationStaged, "ses-1"},
		{event.TypeSessionStarted, "ses-2"},
		{event.TypeSessionEnded, "ses-1"},
	}
	for i, a := range appends {
		if _, err := store.AppendEvent(context.Background(), testEvent(a.typ, a.session)); err != nil {
			t.Fatalf("append event %d: %v", i, err)
		}
	}

	records, err := store.ListEventsBySession(context.Background(), "ses-1", 0, 10)
	if err != nil {
		t.Fatalf("list events by session: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want 3", len(records))
	}
	wantSeqs := []uint64{1, 3, 5}
	for i, rec := range records {
		if rec.Seq != wantSeqs[i] {
			t.Fatalf("records[%d].Seq = %d, want %d", i, rec.Seq, wantSeqs[i])
		}
		if rec.Session != "ses-1" {
			t.Fatalf("records[%d].Session = %q, want %q", i, rec.Session, "ses-1")
		}
	}
}

func TestGetEventBySeqNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.GetEventBySeq(context.Background(), 42)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReopenPreservesJournal(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.sqlite")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("open journal store: %v", err)
	}
	if _, err := store.AppendEvent(context.Background(), testEvent(event.TypeCombatantMoved, "")); err != nil {
		t.Fatalf("append event: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close journal store: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen journal store: %v", err)
	}
	defer reopened.Close()

	latest, err := reopened.GetLatestEventSeq(context.Background())
	if err != nil {
		t.Fatalf("get latest event seq: %v", err)
	}
	if latest != 1 {
		t.Fatalf("latest = %d, want 1", latest)
	}

	next, err := reopened.AppendEvent(context.Background(), testEvent(event.TypeShellSwapped, ""))
	if err != nil {
		t.Fatalf("append after reopen: %v", err)
	}
	if next.Seq != 2 {
		t.Fatalf("next.Seq = %d, want 2", next.Seq)
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}
