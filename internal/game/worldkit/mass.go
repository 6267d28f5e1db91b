package worldkit

import "github.com/industry-digital/flux-game-sub010/internal/game/world"

// MassOf computes the actor's effective mass: current shell chassis plus
// everything carried or mounted. Actors without a resolvable shell, or with
// a non-positive computed mass, fall back to the given default.
func MassOf(a *world.Actor, fallback float64) float64 {
	sh, ok := a.Shell()
	if !ok {
		return fallback
	}
	m := sh.Mass + sh.CarriedMass()
	if m <= 0 {
		return fallback
	}
	return m
}
