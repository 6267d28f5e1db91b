package engine

import (
	"errors"
	"fmt"

	"github.com/industry-digital/flux-game-sub010/internal/game/command"
	"github.com/industry-digital/flux-game-sub010/internal/game/intent"
)

var (
	// ErrEntryTypeRequired indicates a missing entry command type.
	ErrEntryTypeRequired = errors.New("entry command type is required")
	// ErrEntryIncomplete indicates a missing resolver, reducer, or discriminator.
	ErrEntryIncomplete = errors.New("entry requires resolver, reducer, and discriminator")
)

// Resolver turns an intent into a typed command. It returns false when the
// intent is not addressed to it; a prefix match with a malformed remainder
// declares exactly one error on the context and still returns false.
type Resolver func(*Context, intent.Intent) (command.Command, bool)

// Entry binds one command type to its resolver, its composed reducer
// pipeline, and its discriminator.
type Entry struct {
	// Type is the command type this entry owns.
	Type command.Type
	// Resolve claims intents for this command type.
	Resolve Resolver
	// Reduce is the composed validator pipeline plus reducer core.
	Reduce Reducer
	// Deps lists command types this entry depends on. Reserved for future
	// composition; nothing populates it today.
	Deps []command.Type
	// Handles reports whether a command is shaped for this entry: matching
	// type tag and matching args variant.
	Handles func(command.Command) bool
}

// Registry holds handler entries in registration order. Registration order
// is the router's resolution order.
type Registry struct {
	entries []Entry
	byType  map[command.Type]Entry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byType: make(map[command.Type]Entry)}
}

// Register adds an entry. Entries must be complete and types unique.
func (r *Registry) Register(e Entry) error {
	if e.Type == "" {
		return ErrEntryTypeRequired
	}
	if e.Resolve == nil || e.Reduce == nil || e.Handles == nil {
		return fmt.Errorf("%w: %s", ErrEntryIncomplete, e.Type)
	}
	if _, exists := r.byType[e.Type]; exists {
		return fmt.Errorf("entry already registered: %s", e.Type)
	}
	r.entries = append(r.entries, e)
	r.byType[e.Type] = e
	return nil
}

// MustRegister adds an entry and panics on registration errors. Intended
// for static wiring at startup.
func (r *Registry) MustRegister(e Entry) {
	if err := r.Register(e); err != nil {
		panic(fmt.Sprintf("engine: register %s: %v", e.Type, err))
	}
}

// Entry returns the entry for a command type.
func (r *Registry) Entry(t command.Type) (Entry, bool) {
	e, ok := r.byType[t]
	return e, ok
}

// Entries returns a snapshot of entries in registration order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// HandlesType builds the standard discriminator: the command carries the
// given type tag and its args assert to T.
func HandlesType[T command.Args](t command.Type) func(command.Command) bool {
	return func(cmd command.Command) bool {
		if cmd.Type != t {
			return false
		}
		_, ok := cmd.Args.(T)
		return ok
	}
}
