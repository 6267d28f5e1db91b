// Package shell implements shell management commands. A shell is the body
// an actor currently operates; swapping re-homes the actor into another
// shell it already owns.
package shell

import (
	apperrors "github.com/industry-digital/flux-game-sub010/internal/errors"
	"github.com/industry-digital/flux-game-sub010/internal/game/command"
	"github.com/industry-digital/flux-game-sub010/internal/game/engine"
	"github.com/industry-digital/flux-game-sub010/internal/game/event"
	"github.com/industry-digital/flux-game-sub010/internal/game/intent"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
)

const shellPrefix = "shell"

// NewEntry wires the swap command.
func NewEntry() engine.Entry {
	return engine.Entry{
		Type:    command.TypeSwap,
		Resolve: resolveSwap,
		Reduce:  engine.Pipeline(swapCore, engine.RequireActor),
		Handles: engine.HandlesType[command.SwapArgs](command.TypeSwap),
	}
}

// resolveSwap parses `shell swap <shell-id>`.
func resolveSwap(ctx *engine.Context, in intent.Intent) (command.Command, bool) {
	if in.Prefix() != shellPrefix {
		return command.Command{}, false
	}

	verb := in.Arg(1)
	if verb == "" {
		ctx.DeclareError(in.ID, apperrors.CodeInvalidSyntax)
		return command.Command{}, false
	}
	if verb != "swap" {
		ctx.DeclareErrorMeta(in.ID, apperrors.CodeInvalidAction, map[string]string{
			"Action": verb,
		})
		return command.Command{}, false
	}
	if len(in.Tokens) != 3 {
		ctx.DeclareError(in.ID, apperrors.CodeInvalidSyntax)
		return command.Command{}, false
	}

	return command.Command{
		ID:       ctx.NewID(),
		TS:       ctx.Now(),
		Type:     command.TypeSwap,
		Actor:    in.Actor,
		Location: in.Location,
		Session:  in.Session,
		Args:     command.SwapArgs{Shell: world.ShellID(in.Arg(2))},
	}, true
}

// swapCore re-homes the actor into the named shell. Swapping into the
// already-current shell is a no-op success: no mutation, no event.
func swapCore(ctx *engine.Context, cmd command.Command, scope *engine.Scope) {
	args := cmd.Args.(command.SwapArgs)
	actor := scope.Actor

	if _, ok := actor.Shells[args.Shell]; !ok {
		ctx.DeclareErrorMeta(cmd.ID, apperrors.CodeShellNotFound, map[string]string{
			"Shell": string(args.Shell),
		})
		return
	}
	if actor.CurrentShell == args.Shell {
		return
	}

	from := actor.CurrentShell
	actor.CurrentShell = args.Shell
	ctx.Declare(cmd, event.TypeShellSwapped, event.ShellSwapped{
		From: from,
		To:   args.Shell,
	})
}
