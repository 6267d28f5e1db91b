package combat

import (
	"fmt"
	"math"
	"strconv"

	apperrors "github.com/industry-digital/flux-game-sub010/internal/errors"
	"github.com/industry-digital/flux-game-sub010/internal/game/command"
	"github.com/industry-digital/flux-game-sub010/internal/game/engine"
	"github.com/industry-digital/flux-game-sub010/internal/game/event"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
	"github.com/industry-digital/flux-game-sub010/internal/game/worldkit"
	"github.com/industry-digital/flux-game-sub010/internal/tuning"
)

// apEpsilon absorbs float drift when comparing a computed cost to the AP
// gauge. A cost reconstructed through the profile's inverse can land a few
// ulps above the budget that produced it.
const apEpsilon = 1e-9

// NewEntry wires the advance command: resolver, validator chain, and the
// movement core.
func NewEntry(prof Profile, mv tuning.Movement) engine.Entry {
	return engine.Entry{
		Type:    command.TypeAdvance,
		Resolve: NewResolver(mv),
		Reduce:  engine.Pipeline(moveCore(prof, mv), engine.RequireActor, RequireCombatant),
		Handles: engine.HandlesType[command.AdvanceArgs](command.TypeAdvance),
	}
}

// moveCore executes battlefield movement. All three modes share one path:
// resolve mode, derive a continuous distance, round the candidate
// coordinate half away from zero, then check boundary and collision before
// any mutation. On success the combatant's coordinate and the actor's AP
// mutate together and one combatant-moved event is declared.
func moveCore(prof Profile, mv tuning.Movement) engine.Reducer {
	return func(ctx *engine.Context, cmd command.Command, scope *engine.Scope) {
		args := cmd.Args.(command.AdvanceArgs)
		actor := scope.Actor
		cb := scope.Combatant
		field := scope.Combat

		sign := cb.Position.Facing.Sign()
		if sign == 0 {
			panic(fmt.Sprintf("combat: combatant %s has no facing", cb.Actor))
		}
		mass := worldkit.MassOf(actor, mv.DefaultMass)
		from := cb.Position.Coordinate

		var (
			target int
			cost   float64
		)
		switch args.Mode {
		case command.MoveModeDistance:
			if args.Amount <= 0 {
				ctx.DeclareError(cmd.ID, apperrors.CodeDistanceNotPositive)
				return
			}
			d := float64(args.Amount)
			cost = prof.DistanceToAP(d, mass)
			if cost > actor.AP.Cur+apEpsilon {
				ctx.DeclareErrorMeta(cmd.ID, apperrors.CodeInsufficientAP, apMeta(actor.AP.Cur, cost))
				return
			}
			target = roundCoord(float64(from) + float64(sign)*d)
			if code, meta := checkTarget(field, cb, target); code != "" {
				ctx.DeclareErrorMeta(cmd.ID, code, meta)
				return
			}

		case command.MoveModeAP:
			if args.Amount <= 0 {
				ctx.DeclareError(cmd.ID, apperrors.CodeAPNotPositive)
				return
			}
			a := float64(args.Amount)
			if a > actor.AP.Cur+apEpsilon {
				ctx.DeclareErrorMeta(cmd.ID, apperrors.CodeAPExceeded, apMeta(actor.AP.Cur, a))
				return
			}
			cost = a
			d := prof.APToDistance(a, mass)
			target = roundCoord(float64(from) + float64(sign)*d)
			if code, meta := checkTarget(field, cb, target); code != "" {
				ctx.DeclareErrorMeta(cmd.ID, code, meta)
				return
			}

		case command.MoveModeMax:
			if actor.AP.Cur <= 0 {
				ctx.DeclareError(cmd.ID, apperrors.CodeNoMovement)
				return
			}
			d := prof.APToDistance(actor.AP.Cur, mass)
			if b, ok := nearestBlocker(field, cb); ok {
				gap := float64(sign*(b.Position.Coordinate-from) - 1)
				d = math.Min(d, gap)
			}
			bound := field.Length - from
			if sign < 0 {
				bound = from
			}
			d = math.Min(d, float64(bound))
			target = roundCoord(float64(from) + float64(sign)*d)
			// Rounding adds at most half a unit; it must not breach the budget.
			if dist := intAbs(target - from); dist > 0 {
				if prof.DistanceToAP(float64(dist), mass) > actor.AP.Cur+apEpsilon {
					target -= sign
				}
			}
			cost = prof.DistanceToAP(float64(intAbs(target-from)), mass)

		default:
			panic(fmt.Sprintf("combat: advance command %s has no move mode", cmd.ID))
		}

		if cost > actor.AP.Cur {
			cost = actor.AP.Cur
		}
		dist := intAbs(target - from)
		cb.Position.Coordinate = target
		if !actor.AP.Spend(cost) {
			panic(fmt.Sprintf("combat: AP spend %v rejected for %s", cost, cmd.Actor))
		}
		ctx.Declare(cmd, event.TypeCombatantMoved, event.CombatantMoved{
			From:     from,
			To:       target,
			Distance: dist,
			Cost: event.MoveCost{
				AP:     cost,
				Energy: cost * mv.EnergyPerAP,
			},
		})
	}
}

// checkTarget verifies an integer target against the battlefield boundary
// and the 1-unit separation from the nearest blocker ahead.
func checkTarget(c *world.Combat, self *world.Combatant, target int) (apperrors.Code, map[string]string) {
	if target < 0 || target > c.Length {
		return apperrors.CodeOutOfBounds, map[string]string{
			"Target": strconv.Itoa(target),
		}
	}
	if b, ok := nearestBlocker(c, self); ok {
		sign := self.Position.Facing.Sign()
		if sign*(b.Position.Coordinate-target) < 1 {
			return apperrors.CodePathBlocked, nil
		}
	}
	return "", nil
}

// nearestBlocker finds the closest roster member strictly ahead of self
// along its facing. Members behind or level with self never block.
func nearestBlocker(c *world.Combat, self *world.Combatant) (*world.Combatant, bool) {
	sign := self.Position.Facing.Sign()
	var (
		best     *world.Combatant
		bestDist int
	)
	for _, other := range c.Roster {
		if other.Actor == self.Actor {
			continue
		}
		d := sign * (other.Position.Coordinate - self.Position.Coordinate)
		if d <= 0 {
			continue
		}
		if best == nil || d < bestDist {
			best = other
			bestDist = d
		}
	}
	return best, best != nil
}

func roundCoord(x float64) int {
	return int(math.Round(x))
}

func intAbs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func apMeta(have, need float64) map[string]string {
	return map[string]string{
		"Have": formatAP(have),
		"Need": formatAP(need),
	}
}

func formatAP(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
