package combat

import (
	"strconv"

	apperrors "github.com/industry-digital/flux-game-sub010/internal/errors"
	"github.com/industry-digital/flux-game-sub010/internal/game/command"
	"github.com/industry-digital/flux-game-sub010/internal/game/engine"
	"github.com/industry-digital/flux-game-sub010/internal/game/intent"
	"github.com/industry-digital/flux-game-sub010/internal/tuning"
)

const advancePrefix = "advance"

// NewResolver parses the advance grammar:
//
//	advance <n>      move n units along the current facing
//	advance ap <n>   spend exactly n AP on movement
//	advance max      move as far as constraints allow
//
// A second token that starts with a digit or a sign is read as an amount;
// any other unrecognized token is an unknown mode keyword.
func NewResolver(mv tuning.Movement) engine.Resolver {
	return func(ctx *engine.Context, in intent.Intent) (command.Command, bool) {
		if in.Prefix() != advancePrefix {
			return command.Command{}, false
		}

		args, code, meta := parseAdvance(in, mv)
		if code != "" {
			ctx.DeclareErrorMeta(in.ID, code, meta)
			return command.Command{}, false
		}
		return command.Command{
			ID:       ctx.NewID(),
			TS:       ctx.Now(),
			Type:     command.TypeAdvance,
			Actor:    in.Actor,
			Location: in.Location,
			Session:  in.Session,
			Args:     args,
		}, true
	}
}

func parseAdvance(in intent.Intent, mv tuning.Movement) (command.AdvanceArgs, apperrors.Code, map[string]string) {
	switch {
	case len(in.Tokens) == 2 && in.Arg(1) == "max":
		return command.AdvanceArgs{Mode: command.MoveModeMax}, "", nil

	case in.Arg(1) == "ap":
		if len(in.Tokens) != 3 {
			return command.AdvanceArgs{}, apperrors.CodeInvalidSyntax, nil
		}
		n, ok := parseAmount(in.Arg(2), mv.MaxCommandAP)
		if !ok {
			return command.AdvanceArgs{}, apperrors.CodeInvalidAmount, map[string]string{
				"Amount": in.Arg(2),
			}
		}
		return command.AdvanceArgs{Mode: command.MoveModeAP, Amount: n}, "", nil

	case len(in.Tokens) == 2:
		tok := in.Arg(1)
		if !amountShaped(tok) {
			return command.AdvanceArgs{}, apperrors.CodeInvalidSyntax, nil
		}
		n, ok := parseAmount(tok, mv.MaxCommandDistance)
		if !ok {
			return command.AdvanceArgs{}, apperrors.CodeInvalidAmount, map[string]string{
				"Amount": tok,
			}
		}
		return command.AdvanceArgs{Mode: command.MoveModeDistance, Amount: n}, "", nil

	default:
		return command.AdvanceArgs{}, apperrors.CodeInvalidSyntax, nil
	}
}

func amountShaped(tok string) bool {
	if tok == "" {
		return false
	}
	c := tok[0]
	return c == '+' || c == '-' || (c >= '0' && c <= '9')
}

// parseAmount accepts strict digit runs in [0, max]. No sign, decimal
// point, or exponent.
func parseAmount(tok string, max int) (int, bool) {
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
