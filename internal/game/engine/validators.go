package engine

import (
	apperrors "github.com/industry-digital/flux-game-sub010/internal/errors"
	"github.com/industry-digital/flux-game-sub010/internal/game/command"
)

// RequireActor resolves the command actor and, when the command is
// location-bound, its place. Enriches Scope.Actor and Scope.Place.
func RequireActor(ctx *Context, cmd command.Command, scope *Scope) Verdict {
	actor, ok := ctx.World.Actor(cmd.Actor)
	if !ok {
		return ShortCircuitMeta(apperrors.CodeInvalidTarget, map[string]string{
			"Target": string(cmd.Actor),
		})
	}
	scope.Actor = actor

	if cmd.Location != "" {
		place, ok := ctx.World.Place(cmd.Location)
		if !ok {
			return ShortCircuitMeta(apperrors.CodeInvalidTarget, map[string]string{
				"Target": string(cmd.Location),
			})
		}
		scope.Place = place
	}
	return Continue()
}

// RequireSessionID checks that the command carries a session id without
// requiring the session to exist. Used by session-creating commands.
func RequireSessionID(_ *Context, cmd command.Command, _ *Scope) Verdict {
	if cmd.Session == "" {
		return ShortCircuit(apperrors.CodeInvalidSession)
	}
	return Continue()
}

// RequireSession resolves a pre-existing workbench session for the command
// actor. Enriches Scope.Session. Sessions are looked up, never created
// here; a missing or empty session id rejects the command.
func RequireSession(ctx *Context, cmd command.Command, scope *Scope) Verdict {
	if cmd.Session == "" {
		return ShortCircuit(apperrors.CodeInvalidSession)
	}
	sess, ok := ctx.Sessions.Lookup(cmd.Actor, cmd.Session)
	if !ok {
		return ShortCircuit(apperrors.CodeInvalidSession)
	}
	scope.Session = sess
	return Continue()
}

// RequireShell resolves the actor's current shell. Enriches Scope.Shell.
// Must run after RequireActor.
func RequireShell(_ *Context, cmd command.Command, scope *Scope) Verdict {
	if scope.Actor == nil {
		panic("engine: RequireShell before RequireActor in chain for " + string(cmd.Type))
	}
	shell, ok := scope.Actor.Shell()
	if !ok {
		return ShortCircuitMeta(apperrors.CodeShellNotFound, map[string]string{
			"Shell": string(scope.Actor.CurrentShell),
		})
	}
	scope.Shell = shell
	return Continue()
}
