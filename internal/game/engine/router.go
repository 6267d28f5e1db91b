package engine

import (
	"fmt"

	apperrors "github.com/industry-digital/flux-game-sub010/internal/errors"
	"github.com/industry-digital/flux-game-sub010/internal/game/command"
	"github.com/industry-digital/flux-game-sub010/internal/game/event"
	"github.com/industry-digital/flux-game-sub010/internal/game/intent"
)

// Outcome is the result of one command invocation: either the events it
// declared or the single failure that rejected it, never both.
type Outcome struct {
	// Command is the resolved command, zero when resolution failed.
	Command command.Command
	// Events are the declared events, in declaration order.
	Events []event.Event
	// Failure is the declared error, nil on success.
	Failure *Failure
}

// OK reports whether the invocation succeeded.
func (o Outcome) OK() bool {
	return o.Failure == nil
}

// Engine routes intents and dispatches commands through the registry.
type Engine struct {
	registry *Registry
}

// New creates an engine over a registry.
func New(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Registry returns the engine's handler registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Run resolves an intent and dispatches the resulting command as a single
// invocation. When no resolver claims the intent, the invocation fails with
// NOT_FOUND traced to the intent id.
func (e *Engine) Run(ctx *Context, in intent.Intent) Outcome {
	mark := ctx.begin()

	cmd, ok := e.resolve(ctx, in)
	if !ok {
		if !ctx.Failed() {
			ctx.DeclareError(in.ID, apperrors.CodeNotFound)
		}
		return ctx.end(mark, command.Command{})
	}

	e.reduce(ctx, cmd)
	return ctx.end(mark, cmd)
}

// Dispatch runs an already-resolved command as a single invocation. Hosts
// use this for externally triggered commands that bypass text resolution.
func (e *Engine) Dispatch(ctx *Context, cmd command.Command) Outcome {
	mark := ctx.begin()
	e.reduce(ctx, cmd)
	return ctx.end(mark, cmd)
}

// resolve offers the intent to each entry's resolver in registration order.
// The first resolver to claim it wins. A resolver that declares an error
// stops the scan: the input was addressed to it but malformed.
func (e *Engine) resolve(ctx *Context, in intent.Intent) (command.Command, bool) {
	for _, entry := range e.registry.entries {
		cmd, ok := entry.Resolve(ctx, in)
		if ok {
			return cmd, true
		}
		if ctx.Failed() {
			return command.Command{}, false
		}
	}
	return command.Command{}, false
}

// reduce looks up the entry for the command and runs its pipeline. A
// command whose shape does not satisfy the entry's discriminator is a
// resolver bug, not a user error, and panics.
func (e *Engine) reduce(ctx *Context, cmd command.Command) {
	entry, ok := e.registry.Entry(cmd.Type)
	if !ok {
		ctx.DeclareError(cmd.ID, apperrors.CodeNotFound)
		return
	}
	if !entry.Handles(cmd) {
		panic(fmt.Sprintf("engine: command %s does not satisfy entry discriminator for %s", cmd.ID, cmd.Type))
	}
	entry.Reduce(ctx, cmd, &Scope{})
}
