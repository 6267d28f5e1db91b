// Package event defines the immutable events reducers declare.
//
// Events are facts about completed mutations, never requests. Payloads are
// marshaled to JSON at declaration time so downstream consumers see a stable
// byte representation regardless of later state changes.
package event

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/industry-digital/flux-game-sub010/internal/game/world"
)

// Type identifies the kind of event.
type Type string

// Combat events.
const (
	// TypeCombatantMoved records a battlefield position change.
	TypeCombatantMoved Type = "combat.combatant_moved"
)

// Shell events.
const (
	// TypeShellSwapped records an actor switching shells.
	TypeShellSwapped Type = "shell.swapped"
	// TypeShellAssessed records a shell status readout.
	TypeShellAssessed Type = "shell.status_assessed"
)

// Workbench events.
const (
	// TypeSessionStarted records a workbench session opening.
	TypeSessionStarted Type = "workbench.session_started"
	// TypeSessionEnded records a workbench session closing.
	TypeSessionEnded Type = "workbench.session_ended"
	// TypeMutationStaged records one staged stat mutation.
	TypeMutationStaged Type = "workbench.mutation_staged"
	// TypeMutationsCommitted records a staged sequence being applied.
	TypeMutationsCommitted Type = "workbench.mutations_committed"
	// TypeMutationsDiscarded records a staged sequence being dropped.
	TypeMutationsDiscarded Type = "workbench.mutations_discarded"
)

// Event is one immutable fact in the declaration order of its invocation.
type Event struct {
	// Type identifies the kind of event.
	Type Type
	// Timestamp is when the event occurred, from the injected clock.
	Timestamp time.Time
	// Actor is the actor whose command produced the event.
	Actor world.ActorID
	// Location is the place the command executed in, when bound.
	Location world.PlaceID
	// Session is the workbench session id, when the command carried one.
	Session string
	// Trace is the id of the command invocation that declared the event.
	Trace string
	// PayloadJSON holds event-specific data as JSON.
	PayloadJSON []byte
}

// IsValid reports whether the event type is usable.
func (t Type) IsValid() bool {
	return strings.TrimSpace(string(t)) != ""
}

// Domain returns the domain prefix of the event type (e.g., "combat").
func (t Type) Domain() string {
	for i, c := range t {
		if c == '.' {
			return string(t[:i])
		}
	}
	return string(t)
}

// New builds an event, marshaling the payload to JSON.
func New(t Type, ts time.Time, actor world.ActorID, location world.PlaceID, session, trace string, payload any) (Event, error) {
	if !t.IsValid() {
		return Event{}, fmt.Errorf("event type is required")
	}
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s payload: %w", t, err)
	}
	return Event{
		Type:        t,
		Timestamp:   ts,
		Actor:       actor,
		Location:    location,
		Session:     session,
		Trace:       trace,
		PayloadJSON: raw,
	}, nil
}

// DecodePayload unmarshals an event payload into its typed struct.
func DecodePayload[T any](e Event) (T, error) {
	var out T
	if err := json.Unmarshal(e.PayloadJSON, &out); err != nil {
		return out, fmt.Errorf("decode %s payload: %w", e.Type, err)
	}
	return out, nil
}
