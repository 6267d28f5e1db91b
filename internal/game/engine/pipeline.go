package engine

import (
	apperrors "github.com/industry-digital/flux-game-sub010/internal/errors"
	"github.com/industry-digital/flux-game-sub010/internal/game/command"
)

// Verdict is a validator's decision: continue down the chain or short-circuit
// the invocation with a rejection code.
type Verdict struct {
	proceed bool
	code    apperrors.Code
	meta    map[string]string
}

// Continue lets the chain proceed to the next validator or the core.
func Continue() Verdict {
	return Verdict{proceed: true}
}

// ShortCircuit stops the chain and rejects the command.
func ShortCircuit(code apperrors.Code) Verdict {
	return Verdict{code: code}
}

// ShortCircuitMeta stops the chain and rejects the command with message
// metadata.
func ShortCircuitMeta(code apperrors.Code, meta map[string]string) Verdict {
	return Verdict{code: code, meta: meta}
}

// Proceed reports whether the chain continues.
func (v Verdict) Proceed() bool {
	return v.proceed
}

// Code returns the rejection code of a short-circuit verdict.
func (v Verdict) Code() apperrors.Code {
	return v.code
}

// Validator checks one precondition of a command, optionally enriching the
// scope with resolved references for downstream stages.
type Validator func(*Context, command.Command, *Scope) Verdict

// Reducer executes a command against world state, declaring events and at
// most one error through the context.
type Reducer func(*Context, command.Command, *Scope)

// Pipeline composes a reducer core with an ordered validator chain. The
// first short-circuiting validator declares the rejection and stops the
// invocation; the core runs only when every validator continues.
func Pipeline(core Reducer, validators ...Validator) Reducer {
	return func(ctx *Context, cmd command.Command, scope *Scope) {
		for _, validate := range validators {
			verdict := validate(ctx, cmd, scope)
			if !verdict.Proceed() {
				ctx.DeclareErrorMeta(cmd.ID, verdict.code, verdict.meta)
				return
			}
		}
		core(ctx, cmd, scope)
	}
}
