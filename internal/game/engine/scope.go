package engine

import (
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
	"github.com/industry-digital/flux-game-sub010/internal/game/worldkit"
)

// Scope carries references resolved by validators into the reducer core.
// Each validator that vouches for an entity stores the pointer here, so
// cores operate on pre-checked state and never repeat existence lookups.
type Scope struct {
	// Actor is set by RequireActor.
	Actor *world.Actor
	// Place is set by RequireActor when the command is location-bound.
	Place *world.Place
	// Session is set by RequireSession.
	Session *worldkit.Session
	// Shell is set by RequireShell.
	Shell *world.Shell
	// Combat and Combatant are set by combat membership validators.
	Combat    *world.Combat
	Combatant *world.Combatant
}
