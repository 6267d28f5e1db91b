package workbench

import (
	"strconv"

	apperrors "github.com/industry-digital/flux-game-sub010/internal/errors"
	"github.com/industry-digital/flux-game-sub010/internal/game/command"
	"github.com/industry-digital/flux-game-sub010/internal/game/engine"
	"github.com/industry-digital/flux-game-sub010/internal/game/intent"
	"github.com/industry-digital/flux-game-sub010/internal/game/schema"
)

const workbenchPrefix = "workbench"

// newResolver parses the workbench family:
//
//	workbench open|assess|commit|discard|close
//	workbench stage <stat> <value>
//
// One resolver fields every verb and emits the command type the verb
// names. Every workbench entry carries it, so whichever registers first
// resolves for the whole family.
func newResolver(sch schema.Schema) engine.Resolver {
	return func(ctx *engine.Context, in intent.Intent) (command.Command, bool) {
		if in.Prefix() != workbenchPrefix {
			return command.Command{}, false
		}

		verb := in.Arg(1)
		if verb == "" {
			ctx.DeclareError(in.ID, apperrors.CodeInvalidSyntax)
			return command.Command{}, false
		}

		var (
			t    command.Type
			args command.Args
		)
		if verb == "stage" {
			if len(in.Tokens) != 4 {
				ctx.DeclareError(in.ID, apperrors.CodeInvalidSyntax)
				return command.Command{}, false
			}
			stat := schema.Stat(in.Arg(2))
			def, ok := sch.Lookup(stat)
			if !ok {
				ctx.DeclareErrorMeta(in.ID, apperrors.CodeInvalidTarget, map[string]string{
					"Target": in.Arg(2),
				})
				return command.Command{}, false
			}
			value, ok := parseValue(in.Arg(3), def.Max)
			if !ok {
				ctx.DeclareErrorMeta(in.ID, apperrors.CodeInvalidAmount, map[string]string{
					"Amount": in.Arg(3),
				})
				return command.Command{}, false
			}
			t, args = command.TypeStage, command.StageArgs{Stat: stat, Value: value}
		} else {
			var known bool
			t, args, known = simpleVerbArgs(verb)
			if !known {
				ctx.DeclareErrorMeta(in.ID, apperrors.CodeInvalidAction, map[string]string{
					"Action": verb,
				})
				return command.Command{}, false
			}
			if len(in.Tokens) != 2 {
				ctx.DeclareError(in.ID, apperrors.CodeInvalidSyntax)
				return command.Command{}, false
			}
		}

		return command.Command{
			ID:       ctx.NewID(),
			TS:       ctx.Now(),
			Type:     t,
			Actor:    in.Actor,
			Location: in.Location,
			Session:  in.Session,
			Args:     args,
		}, true
	}
}

func simpleVerbArgs(verb string) (command.Type, command.Args, bool) {
	switch verb {
	case "open":
		return command.TypeOpen, command.OpenArgs{}, true
	case "assess":
		return command.TypeAssess, command.AssessArgs{}, true
	case "commit":
		return command.TypeCommit, command.CommitArgs{}, true
	case "discard":
		return command.TypeDiscard, command.DiscardArgs{}, true
	case "close":
		return command.TypeClose, command.CloseArgs{}, true
	}
	return "", nil, false
}

// parseValue accepts strict digit runs in [0, max]. No sign, decimal
// point, or exponent.
func parseValue(tok string, max int) (int, bool) {
	if tok == "" {
		return 0, false
	}
	for i := 0; i < len(tok); i++ {
		if tok[i] < '0' || tok[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(tok)
	if err != nil || n > max {
		return 0, false
	}
	return n, true
}
