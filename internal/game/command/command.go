// Package command defines the typed command envelope produced by resolution.
//
// A command is the only way input reaches reducers. Its payload is a sealed
// union: exactly one args variant exists per command type, populated and
// validated once by the resolver that built it. Downstream code asserts the
// variant exactly once at dispatch and never re-checks it.
package command

import (
	"errors"
	"time"

	"github.com/industry-digital/flux-game-sub010/internal/game/world"
)

var (
	// ErrIDRequired indicates a missing command id.
	ErrIDRequired = errors.New("command id is required")
	// ErrTypeRequired indicates a missing command type.
	ErrTypeRequired = errors.New("command type is required")
	// ErrActorRequired indicates a missing actor id.
	ErrActorRequired = errors.New("command actor is required")
	// ErrArgsRequired indicates a missing args payload.
	ErrArgsRequired = errors.New("command args are required")
	// ErrArgsMismatch indicates an args variant that does not match the type.
	ErrArgsMismatch = errors.New("command args do not match command type")
)

// Type identifies the command type string.
type Type string

const (
	// TypeAdvance moves a combatant along the battlefield.
	TypeAdvance Type = "combat.advance"
	// TypeSwap switches the actor's current shell.
	TypeSwap Type = "shell.swap"
	// TypeOpen starts a workbench session.
	TypeOpen Type = "workbench.open"
	// TypeAssess reports current shell status and staged projections.
	TypeAssess Type = "workbench.assess"
	// TypeStage stages a stat mutation in the open session.
	TypeStage Type = "workbench.stage"
	// TypeCommit applies all staged mutations.
	TypeCommit Type = "workbench.commit"
	// TypeDiscard drops all staged mutations.
	TypeDiscard Type = "workbench.discard"
	// TypeClose ends the workbench session.
	TypeClose Type = "workbench.close"
)

// Command is the canonical command envelope.
type Command struct {
	ID       string
	TS       time.Time
	Type     Type
	Actor    world.ActorID
	Location world.PlaceID
	Session  string
	Args     Args
}

// Validate checks envelope integrity: identity fields present and the args
// variant matching the declared type.
func (c Command) Validate() error {
	if c.ID == "" {
		return ErrIDRequired
	}
	if c.Type == "" {
		return ErrTypeRequired
	}
	if c.Actor == "" {
		return ErrActorRequired
	}
	if c.Args == nil {
		return ErrArgsRequired
	}
	if ArgsType(c.Args) != c.Type {
		return ErrArgsMismatch
	}
	return nil
}
