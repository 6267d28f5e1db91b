// Package combat implements battlefield movement.
//
// Battlefields are one-dimensional: every combatant occupies an integer
// coordinate in [0, length] and moves along its facing. Movement is priced
// in AP through a mass-aware profile, so heavy shells pay more per unit.
package combat

import "github.com/industry-digital/flux-game-sub010/internal/tuning"

// Profile converts between movement distance and AP cost for a given actor
// mass. Implementations must be monotonic inverses of each other: larger
// distances always cost more AP, and more AP always buys more distance.
type Profile interface {
	// DistanceToAP prices a continuous distance.
	DistanceToAP(distance, mass float64) float64
	// APToDistance returns the continuous distance an AP amount buys.
	APToDistance(ap, mass float64) float64
}

// LinearProfile prices movement proportionally to distance and mass:
// cost = distance * APPerUnit * (mass / MassReference).
type LinearProfile struct {
	APPerUnit     float64
	MassReference float64
}

// NewLinearProfile builds the default profile from movement tuning.
func NewLinearProfile(mv tuning.Movement) LinearProfile {
	return LinearProfile{
		APPerUnit:     mv.APPerUnit,
		MassReference: mv.MassReference,
	}
}

func (p LinearProfile) rate(mass float64) float64 {
	return p.APPerUnit * mass / p.MassReference
}

// DistanceToAP prices a continuous distance.
func (p LinearProfile) DistanceToAP(distance, mass float64) float64 {
	return distance * p.rate(mass)
}

// APToDistance returns the continuous distance an AP amount buys.
func (p LinearProfile) APToDistance(ap, mass float64) float64 {
	return ap / p.rate(mass)
}
