package combat

import (
	apperrors "github.com/industry-digital/flux-game-sub010/internal/errors"
	"github.com/industry-digital/flux-game-sub010/internal/game/command"
	"github.com/industry-digital/flux-game-sub010/internal/game/engine"
)

// RequireCombatant checks that the actor's place hosts a combat and that the
// actor is on its roster. Enriches Scope.Combat and Scope.Combatant. Must
// run after RequireActor.
func RequireCombatant(ctx *engine.Context, cmd command.Command, scope *engine.Scope) engine.Verdict {
	if scope.Actor == nil {
		panic("combat: RequireCombatant before RequireActor in chain for " + string(cmd.Type))
	}

	place := scope.Place
	if place == nil {
		p, ok := ctx.World.Place(scope.Actor.Location)
		if !ok {
			return engine.ShortCircuit(apperrors.CodeNotInCombat)
		}
		place = p
		scope.Place = p
	}

	if place.Combat == nil {
		return engine.ShortCircuit(apperrors.CodeNotInCombat)
	}
	cb, ok := place.Combat.Combatant(cmd.Actor)
	if !ok {
		return engine.ShortCircuit(apperrors.CodeNotInCombat)
	}

	scope.Combat = place.Combat
	scope.Combatant = cb
	return engine.Continue()
}
