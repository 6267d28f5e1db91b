// Package engine runs commands: it routes intents to resolvers, walks each
// command through its validator pipeline, and hands it to the reducer core.
//
// All nondeterminism reaches reducers through the Context. Injecting the
// random source, clock, and id generator makes a command invocation a pure
// function of its inputs: identical context and command yield identical
// state mutation and identical declared events.
package engine

import (
	"fmt"
	"math/rand"
	"time"

	apperrors "github.com/industry-digital/flux-game-sub010/internal/errors"
	"github.com/industry-digital/flux-game-sub010/internal/game/command"
	"github.com/industry-digital/flux-game-sub010/internal/game/event"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
	"github.com/industry-digital/flux-game-sub010/internal/game/worldkit"
	"github.com/industry-digital/flux-game-sub010/internal/id"
	"github.com/industry-digital/flux-game-sub010/internal/random"
)

// Failure is the single error a command invocation may declare.
type Failure struct {
	// Code is the machine-readable rejection code.
	Code apperrors.Code
	// Trace is the id of the originating command or intent.
	Trace string
	// Meta carries template variables for user-facing messages.
	Meta map[string]string
}

// Err converts the failure into a domain error for the host boundary.
func (f *Failure) Err() *apperrors.Error {
	if f == nil {
		return nil
	}
	msg := fmt.Sprintf("command rejected: %s (trace %s)", f.Code, f.Trace)
	return apperrors.WithMetadata(f.Code, msg, f.Meta)
}

// Context carries world state, collaborator registries, and injected
// nondeterminism through one or more command invocations. It also buffers
// declared events and the per-invocation failure slot. Not safe for
// concurrent use; one goroutine owns a context.
type Context struct {
	World    *world.State
	Sessions *worldkit.Sessions

	// Rand is the injected random source.
	Rand *rand.Rand
	// Now is the injected clock.
	Now func() time.Time
	// NewID is the injected unique id generator.
	NewID func() string

	events []event.Event
	fail   *Failure
}

// Option configures a Context.
type Option func(*Context)

// WithRand injects a random source.
func WithRand(r *rand.Rand) Option {
	return func(c *Context) { c.Rand = r }
}

// WithClock injects a timestamp source.
func WithClock(now func() time.Time) Option {
	return func(c *Context) { c.Now = now }
}

// WithIDSource injects a unique id generator.
func WithIDSource(gen func() string) Option {
	return func(c *Context) { c.NewID = gen }
}

// NewContext builds a context over the given world. Nondeterminism sources
// not injected through options default to a crypto-seeded random source,
// the wall clock, and the platform id generator.
func NewContext(w *world.State, sessions *worldkit.Sessions, opts ...Option) *Context {
	ctx := &Context{World: w, Sessions: sessions}
	for _, opt := range opts {
		opt(ctx)
	}
	if ctx.Rand == nil {
		seed, err := random.NewSeed()
		if err != nil {
			// Entropy exhaustion leaves no sane fallback for a fresh context.
			panic(fmt.Sprintf("engine: seed context random source: %v", err))
		}
		ctx.Rand = rand.New(rand.NewSource(seed))
	}
	if ctx.Now == nil {
		ctx.Now = time.Now
	}
	if ctx.NewID == nil {
		ctx.NewID = id.MustNewID
	}
	return ctx
}

// Declare appends an event built from the command envelope and the injected
// clock. Payload marshaling failure is a programming error and panics.
func (c *Context) Declare(cmd command.Command, t event.Type, payload any) {
	evt, err := event.New(t, c.Now(), cmd.Actor, cmd.Location, cmd.Session, cmd.ID, payload)
	if err != nil {
		panic(fmt.Sprintf("engine: declare %s: %v", t, err))
	}
	c.events = append(c.events, evt)
}

// DeclareError records the invocation failure. The first declared error
// wins; later declarations in the same invocation are ignored.
func (c *Context) DeclareError(trace string, code apperrors.Code) {
	c.DeclareErrorMeta(trace, code, nil)
}

// DeclareErrorMeta records the invocation failure with message metadata.
func (c *Context) DeclareErrorMeta(trace string, code apperrors.Code, meta map[string]string) {
	if c.fail != nil {
		return
	}
	c.fail = &Failure{Code: code, Trace: trace, Meta: meta}
}

// Failed reports whether the current invocation has declared an error.
func (c *Context) Failed() bool {
	return c.fail != nil
}

// Events returns the buffered events of all completed invocations.
func (c *Context) Events() []event.Event {
	return c.events
}

// DrainEvents moves the buffered events out of the context.
func (c *Context) DrainEvents() []event.Event {
	out := c.events
	c.events = nil
	return out
}

// begin opens an invocation: clears the failure slot and marks the event
// buffer position for rollback.
func (c *Context) begin() int {
	c.fail = nil
	return len(c.events)
}

// end closes an invocation. A declared failure rolls back every event the
// invocation declared, so consumers never see events from failed commands.
func (c *Context) end(mark int, cmd command.Command) Outcome {
	if c.fail != nil {
		c.events = c.events[:mark]
		return Outcome{Command: cmd, Failure: c.fail}
	}
	declared := c.events[mark:]
	out := make([]event.Event, len(declared))
	copy(out, declared)
	return Outcome{Command: cmd, Events: out}
}
