package workbench

import (
	"github.com/industry-digital/flux-game-sub010/internal/game/command"
	"github.com/industry-digital/flux-game-sub010/internal/game/engine"
	"github.com/industry-digital/flux-game-sub010/internal/game/event"
	"github.com/industry-digital/flux-game-sub010/internal/game/schema"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
	"github.com/industry-digital/flux-game-sub010/internal/game/worldkit"
	"github.com/industry-digital/flux-game-sub010/internal/tuning"
)

// NewEntries wires the workbench command family. Open is the only verb
// that may run without a pre-existing session; everything else requires
// one, and all but close additionally require a resolvable current shell.
func NewEntries(sch schema.Schema, mut tuning.Mutation) []engine.Entry {
	resolve := newResolver(sch)
	return []engine.Entry{
		{
			Type:    command.TypeOpen,
			Resolve: resolve,
			Reduce:  engine.Pipeline(openCore, engine.RequireActor, engine.RequireSessionID),
			Handles: engine.HandlesType[command.OpenArgs](command.TypeOpen),
		},
		{
			Type:    command.TypeAssess,
			Resolve: resolve,
			Reduce:  engine.Pipeline(assessCore(sch, mut), engine.RequireActor, engine.RequireSession, engine.RequireShell),
			Handles: engine.HandlesType[command.AssessArgs](command.TypeAssess),
		},
		{
			Type:    command.TypeStage,
			Resolve: resolve,
			Reduce:  engine.Pipeline(stageCore(sch, mut), engine.RequireActor, engine.RequireSession, engine.RequireShell),
			Handles: engine.HandlesType[command.StageArgs](command.TypeStage),
		},
		{
			Type:    command.TypeCommit,
			Resolve: resolve,
			Reduce:  engine.Pipeline(commitCore(sch, mut), engine.RequireActor, engine.RequireSession, engine.RequireShell),
			Handles: engine.HandlesType[command.CommitArgs](command.TypeCommit),
		},
		{
			Type:    command.TypeDiscard,
			Resolve: resolve,
			Reduce:  engine.Pipeline(discardCore, engine.RequireActor, engine.RequireSession, engine.RequireShell),
			Handles: engine.HandlesType[command.DiscardArgs](command.TypeDiscard),
		},
		{
			Type:    command.TypeClose,
			Resolve: resolve,
			Reduce:  engine.Pipeline(closeCore, engine.RequireActor, engine.RequireSession),
			Handles: engine.HandlesType[command.CloseArgs](command.TypeClose),
		},
	}
}

// openCore starts a workbench session. Opening an already-open session is
// a no-op success: no event, the existing session keeps its staged work.
func openCore(ctx *engine.Context, cmd command.Command, _ *engine.Scope) {
	_, created := ctx.Sessions.Open(cmd.Actor, cmd.Session, ctx.Now())
	if !created {
		return
	}
	ctx.Declare(cmd, event.TypeSessionStarted, event.SessionStarted{
		Session: cmd.Session,
	})
}

// assessCore reports the current shell's stat readings plus the staged
// sequence with its projected cost. Read-only: the sequence re-prices on a
// copy so the report reflects the live shell without touching the session.
func assessCore(sch schema.Schema, mut tuning.Mutation) engine.Reducer {
	return func(ctx *engine.Context, cmd command.Command, scope *engine.Scope) {
		sh := scope.Shell
		sess := scope.Session

		report := event.ShellAssessed{Shell: sh.ID, Name: sh.Name}
		for _, def := range sch.All() {
			sb, ok := sh.Stats[def.Stat]
			if !ok {
				continue
			}
			report.Stats = append(report.Stats, event.StatReading{
				Stat: def.Stat,
				Nat:  sb.Nat,
				Eff:  sb.Eff,
			})
		}

		if len(sess.Staged) > 0 {
			staged := make([]worldkit.Mutation, len(sess.Staged))
			copy(staged, sess.Staged)
			report.ProjectedCost = Reprice(sh, staged, sch, mut)
			for _, step := range staged {
				report.Staged = append(report.Staged, event.StagedReading{
					Stat: step.Stat,
					From: step.From,
					To:   step.To,
					Cost: step.Cost,
				})
			}
		}

		ctx.Declare(cmd, event.TypeShellAssessed, report)
	}
}

// stageCore records one mutation and re-prices the whole staged sequence,
// so every step's cost reflects the values earlier steps produce.
// Re-staging a stat replaces its prior step in place.
func stageCore(sch schema.Schema, mut tuning.Mutation) engine.Reducer {
	return func(ctx *engine.Context, cmd command.Command, scope *engine.Scope) {
		args := cmd.Args.(command.StageArgs)
		sess := scope.Session

		sess.Stage(worldkit.Mutation{Stat: args.Stat, To: args.Value})
		Reprice(scope.Shell, sess.Staged, sch, mut)

		for _, step := range sess.Staged {
			if step.Stat != args.Stat {
				continue
			}
			ctx.Declare(cmd, event.TypeMutationStaged, event.MutationStaged{
				Session: sess.ID,
				Stat:    step.Stat,
				From:    step.From,
				To:      step.To,
				Cost:    step.Cost,
			})
			return
		}
	}
}

// commitCore applies the staged sequence to the current shell: re-price
// against the live shell, write each nat value, recompute eff, clear the
// session. Nothing staged is a no-op success.
func commitCore(sch schema.Schema, mut tuning.Mutation) engine.Reducer {
	return func(ctx *engine.Context, cmd command.Command, scope *engine.Scope) {
		sess := scope.Session
		sh := scope.Shell
		if len(sess.Staged) == 0 {
			return
		}

		total := Reprice(sh, sess.Staged, sch, mut)
		applied := make([]event.AppliedMutation, 0, len(sess.Staged))
		for _, step := range sess.Staged {
			sb, ok := sh.Stats[step.Stat]
			if !ok {
				sb = &world.StatBlock{}
				sh.Stats[step.Stat] = sb
			}
			sb.Nat = step.To
			sb.Recompute()
			applied = append(applied, event.AppliedMutation{
				Stat: step.Stat,
				From: step.From,
				To:   step.To,
				Cost: step.Cost,
			})
		}
		sess.Clear()

		ctx.Declare(cmd, event.TypeMutationsCommitted, event.MutationsCommitted{
			Session:   sess.ID,
			Mutations: applied,
			TotalCost: total,
		})
	}
}

// discardCore drops the staged sequence without touching the shell.
// Nothing staged is a no-op success.
func discardCore(ctx *engine.Context, cmd command.Command, scope *engine.Scope) {
	sess := scope.Session
	if len(sess.Staged) == 0 {
		return
	}
	dropped := sess.Clear()
	ctx.Declare(cmd, event.TypeMutationsDiscarded, event.MutationsDiscarded{
		Session: sess.ID,
		Dropped: dropped,
	})
}

// closeCore ends the session. Staged mutations die with it; the event
// reports how many were dropped uncommitted.
func closeCore(ctx *engine.Context, cmd command.Command, scope *engine.Scope) {
	dropped := len(scope.Session.Staged)
	ctx.Sessions.End(cmd.Actor, cmd.Session)
	ctx.Declare(cmd, event.TypeSessionEnded, event.SessionEnded{
		Session:   cmd.Session,
		Discarded: dropped,
	})
}
