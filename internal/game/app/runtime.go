// Package app assembles the engine into a runnable game runtime.
//
// The runtime owns registry wiring, the host dispatch boundary (input line
// in, outcome out), journal persistence of declared events, and the tracing
// span around each dispatch. It adds no game semantics of its own; every
// rule lives in the command packages it wires together.
package app

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/industry-digital/flux-game-sub010/internal/game/combat"
	"github.com/industry-digital/flux-game-sub010/internal/game/command"
	"github.com/industry-digital/flux-game-sub010/internal/game/engine"
	"github.com/industry-digital/flux-game-sub010/internal/game/intent"
	"github.com/industry-digital/flux-game-sub010/internal/game/schema"
	"github.com/industry-digital/flux-game-sub010/internal/game/shell"
	"github.com/industry-digital/flux-game-sub010/internal/game/workbench"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
	"github.com/industry-digital/flux-game-sub010/internal/game/worldkit"
	"github.com/industry-digital/flux-game-sub010/internal/storage"
	"github.com/industry-digital/flux-game-sub010/internal/tuning"
)

const tracerName = "flux/game"

// Config assembles a Runtime.
type Config struct {
	// World is the authoritative state. Required.
	World *world.State
	// Sessions is the workbench session store. Nil creates an empty store.
	Sessions *worldkit.Sessions
	// Tuning provides gameplay parameters. The zero value loads the
	// compiled-in defaults.
	Tuning tuning.Tuning
	// Schema is the shell stat schema. Nil loads the default schema.
	Schema schema.Schema
	// Journal receives declared events after each dispatch. Optional; a
	// nil journal keeps the runtime fully in memory.
	Journal storage.Journal
	// Rand, Now, and NewID inject nondeterminism. Unset sources fall back
	// to the engine defaults (crypto-seeded rand, wall clock, platform ids).
	Rand  *rand.Rand
	Now   func() time.Time
	NewID func() string
}

// Runtime drives the engine for one world. Not safe for concurrent use;
// one goroutine owns a runtime, matching the single-writer world contract.
type Runtime struct {
	engine  *engine.Engine
	ctx     *engine.Context
	journal storage.Journal
	tracer  trace.Tracer
}

// New wires the command registry and builds a runtime over the world.
func New(cfg Config) (*Runtime, error) {
	if cfg.World == nil {
		return nil, fmt.Errorf("world state is required")
	}
	sessions := cfg.Sessions
	if sessions == nil {
		sessions = worldkit.NewSessions()
	}
	tun := cfg.Tuning
	if tun == (tuning.Tuning{}) {
		tun = tuning.Default()
	}
	if err := tun.Validate(); err != nil {
		return nil, fmt.Errorf("tuning: %w", err)
	}
	sch := cfg.Schema
	if sch == nil {
		sch = schema.Default()
	}

	registry := engine.NewRegistry()
	registry.MustRegister(combat.NewEntry(combat.NewLinearProfile(tun.Movement), tun.Movement))
	registry.MustRegister(shell.NewEntry())
	for _, entry := range workbench.NewEntries(sch, tun.Mutation) {
		registry.MustRegister(entry)
	}

	var opts []engine.Option
	if cfg.Rand != nil {
		opts = append(opts, engine.WithRand(cfg.Rand))
	}
	if cfg.Now != nil {
		opts = append(opts, engine.WithClock(cfg.Now))
	}
	if cfg.NewID != nil {
		opts = append(opts, engine.WithIDSource(cfg.NewID))
	}

	return &Runtime{
		engine:  engine.New(registry),
		ctx:     engine.NewContext(cfg.World, sessions, opts...),
		journal: cfg.Journal,
		tracer:  otel.Tracer(tracerName),
	}, nil
}

// World returns the runtime's world state.
func (r *Runtime) World() *world.State {
	return r.ctx.World
}

// Sessions returns the runtime's workbench session store.
func (r *Runtime) Sessions() *worldkit.Sessions {
	return r.ctx.Sessions
}

// BuildIntent turns one raw input line into an intent for the given actor,
// resolving the actor's current location and stamping injected id and time.
func (r *Runtime) BuildIntent(actor world.ActorID, session, line string) intent.Intent {
	var location world.PlaceID
	if a, ok := r.ctx.World.Actor(actor); ok {
		location = a.Location
	}
	return intent.New(r.ctx.NewID(), r.ctx.Now(), actor, location, session, line)
}

// Submit resolves and dispatches one input line as a single invocation,
// then journals any declared events. The returned error covers journal
// failures only; domain rejections live in the outcome.
func (r *Runtime) Submit(ctx context.Context, actor world.ActorID, session, line string) (engine.Outcome, error) {
	in := r.BuildIntent(actor, session, line)

	ctx, span := r.tracer.Start(ctx, "engine.dispatch",
		trace.WithAttributes(attribute.String("intent.id", in.ID)),
	)
	defer span.End()

	out := r.engine.Run(r.ctx, in)
	r.annotate(span, out)

	if err := r.drainToJournal(ctx); err != nil {
		return out, err
	}
	return out, nil
}

// Dispatch runs an already-built command as a single invocation, then
// journals any declared events. Hosts use this for externally triggered
// commands that bypass text resolution.
func (r *Runtime) Dispatch(ctx context.Context, cmd command.Command) (engine.Outcome, error) {
	ctx, span := r.tracer.Start(ctx, "engine.dispatch",
		trace.WithAttributes(attribute.String("command.type", string(cmd.Type))),
	)
	defer span.End()

	out := r.engine.Dispatch(r.ctx, cmd)
	r.annotate(span, out)

	if err := r.drainToJournal(ctx); err != nil {
		return out, err
	}
	return out, nil
}

// CloseSession dispatches a workbench close on behalf of the host, e.g.
// when a connection drops with a session still open. Staged mutations are
// discarded by the close reducer; closing an unknown session rejects with
// INVALID_SESSION like any other close.
func (r *Runtime) CloseSession(ctx context.Context, actor world.ActorID, session string) (engine.Outcome, error) {
	var location world.PlaceID
	if a, ok := r.ctx.World.Actor(actor); ok {
		location = a.Location
	}
	cmd := command.Command{
		ID:       r.ctx.NewID(),
		TS:       r.ctx.Now(),
		Type:     command.TypeClose,
		Actor:    actor,
		Location: location,
		Session:  session,
		Args:     command.CloseArgs{},
	}
	return r.Dispatch(ctx, cmd)
}

// annotate records the invocation result on the dispatch span.
func (r *Runtime) annotate(span trace.Span, out engine.Outcome) {
	if out.Command.Type != "" {
		span.SetAttributes(attribute.String("command.type", string(out.Command.Type)))
	}
	span.SetAttributes(attribute.Bool("command.ok", out.OK()))
	if !out.OK() {
		span.SetAttributes(attribute.String("command.error", string(out.Failure.Code)))
	} else {
		span.SetAttributes(attribute.Int("command.events", len(out.Events)))
	}
}

// drainToJournal moves buffered events out of the engine context and into
// the journal. With no journal configured the buffer is still drained so
// it cannot grow across dispatches.
func (r *Runtime) drainToJournal(ctx context.Context) error {
	events := r.ctx.DrainEvents()
	if r.journal == nil {
		return nil
	}
	for _, evt := range events {
		if _, err := r.journal.AppendEvent(ctx, evt); err != nil {
			return fmt.Errorf("journal append %s: %w", evt.Type, err)
		}
	}
	return nil
}
