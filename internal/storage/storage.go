package storage

import (
	"context"
	"time"

	apperrors "github.com/industry-digital/flux-game-sub010/internal/errors"
	"github.com/industry-digital/flux-game-sub010/internal/game/event"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
)

// ErrNotFound indicates a requested persistence record is missing.
// Callers use this to differentiate between legitimate "no such record"
// states and transport or data corruption failures.
var ErrNotFound = apperrors.New(apperrors.CodeNotFound, "record not found")

// EventRecord captures one journaled event with its assigned sequence number.
type EventRecord struct {
	Seq       uint64
	Type      event.Type
	Timestamp time.Time
	Actor     world.ActorID
	Location  world.PlaceID
	Session   string
	Trace     string
	Payload   []byte
}

// Event rebuilds the domain event from the record.
func (r EventRecord) Event() event.Event {
	return event.Event{
		Type:        r.Type,
		Timestamp:   r.Timestamp,
		Actor:       r.Actor,
		Location:    r.Location,
		Session:     r.Session,
		Trace:       r.Trace,
		PayloadJSON: r.Payload,
	}
}

// Journal persists declared events in append order.
//
// Sequence numbers start at 1 and increase by one per append. The sequence
// is the one ordering guarantee consumers get: replaying records in
// ascending sequence order reproduces the declaration order exactly.
type Journal interface {
	// AppendEvent atomically appends an event and returns its record with
	// the assigned sequence number.
	AppendEvent(ctx context.Context, evt event.Event) (EventRecord, error)
	// ListEvents returns up to limit records with seq > afterSeq in
	// ascending sequence order.
	ListEvents(ctx context.Context, afterSeq uint64, limit int) ([]EventRecord, error)
	// ListEventsBySession returns up to limit records carrying the given
	// workbench session id, with seq > afterSeq, in ascending order.
	ListEventsBySession(ctx context.Context, session string, afterSeq uint64, limit int) ([]EventRecord, error)
	// GetEventBySeq returns the record at the exact sequence number.
	// Missing records report ErrNotFound.
	GetEventBySeq(ctx context.Context, seq uint64) (EventRecord, error)
	// GetLatestEventSeq returns the highest assigned sequence number,
	// zero for an empty journal.
	GetLatestEventSeq(ctx context.Context) (uint64, error)
	// Close releases the underlying store.
	Close() error
}
