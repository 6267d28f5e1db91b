// Package workbench implements the shell customization workshop: opening a
// session, staging stat mutations, assessing their projected cost, and
// committing or discarding the staged sequence.
package workbench

import (
	"fmt"

	"github.com/industry-digital/flux-game-sub010/internal/game/schema"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
	"github.com/industry-digital/flux-game-sub010/internal/game/worldkit"
	"github.com/industry-digital/flux-game-sub010/internal/tuning"
)

// MutationCost prices raising one stat's nat value. Downgrades and
// same-value requests are free. A value below the stat's baseline pays the
// flat recovery fee once, regardless of how far below it sits; from there
// every unit level crossed costs base^tier, where tier is the tier of the
// level being left.
func MutationCost(from, to int, def schema.Def, mut tuning.Mutation) int {
	if to <= from {
		return 0
	}
	cost := 0
	if from < def.Baseline {
		cost += mut.RecoveryFee
	}
	for lvl := max(from, def.Baseline); lvl < to; lvl++ {
		cost += intPow(mut.Base, lvl/mut.LevelsPerTier)
	}
	return cost
}

// Reprice walks a staged sequence against a working copy of the shell's
// nat values, rewriting each step's From and Cost in place. Steps price
// against the values earlier steps produce, never the pre-sequence shell.
// Returns the sequence total.
func Reprice(sh *world.Shell, staged []worldkit.Mutation, sch schema.Schema, mut tuning.Mutation) int {
	working := make(map[schema.Stat]int, len(staged))
	total := 0
	for i := range staged {
		step := &staged[i]
		def, ok := sch.Lookup(step.Stat)
		if !ok {
			panic(fmt.Sprintf("workbench: staged stat %s missing from schema", step.Stat))
		}
		cur, seen := working[step.Stat]
		if !seen {
			if sb, exists := sh.Stats[step.Stat]; exists {
				cur = sb.Nat
			}
		}
		step.From = cur
		step.Cost = MutationCost(cur, step.To, def, mut)
		working[step.Stat] = step.To
		total += step.Cost
	}
	return total
}

func intPow(base, exp int) int {
	out := 1
	for ; exp > 0; exp-- {
		out *= base
	}
	return out
}
