package world

import "github.com/industry-digital/flux-game-sub010/internal/game/schema"

// Slot names an equipment mount point on a shell.
type Slot string

const (
	// SlotHead is the sensor mount.
	SlotHead Slot = "head"
	// SlotTorso is the core chassis mount.
	SlotTorso Slot = "torso"
	// SlotArms is the manipulator mount.
	SlotArms Slot = "arms"
	// SlotLegs is the locomotion mount.
	SlotLegs Slot = "legs"
)

// Item is a carried or mounted object.
type Item struct {
	ID   string
	Name string
	Mass float64
}

// Modifier is a named adjustment applied on top of a natural stat value.
type Modifier struct {
	Source string
	Delta  int
}

// StatBlock tracks one stat of a shell. Eff is derived: Nat plus the sum
// of modifier deltas.
type StatBlock struct {
	Nat  int
	Eff  int
	Mods []Modifier
}

// Recompute refreshes the effective value from Nat and Mods.
func (b *StatBlock) Recompute() {
	eff := b.Nat
	for _, m := range b.Mods {
		eff += m.Delta
	}
	b.Eff = eff
}

// Shell is a robotic body an actor can inhabit.
type Shell struct {
	ID   ShellID
	Name string
	// Mass is the bare chassis mass, before inventory and equipment.
	Mass      float64
	Stats     map[schema.Stat]*StatBlock
	Inventory []Item
	Equipment map[Slot]Item
}

// NewShell creates a shell with every schema stat at its baseline.
func NewShell(id ShellID, name string, mass float64, sch schema.Schema) *Shell {
	sh := &Shell{
		ID:        id,
		Name:      name,
		Mass:      mass,
		Stats:     make(map[schema.Stat]*StatBlock),
		Equipment: make(map[Slot]Item),
	}
	for _, def := range sch.All() {
		sh.Stats[def.Stat] = &StatBlock{Nat: def.Baseline, Eff: def.Baseline}
	}
	return sh
}

// Stat looks up a stat block.
func (s *Shell) Stat(stat schema.Stat) (*StatBlock, bool) {
	b, ok := s.Stats[stat]
	return b, ok
}

// CarriedMass sums inventory and equipment mass.
func (s *Shell) CarriedMass() float64 {
	var m float64
	for _, it := range s.Inventory {
		m += it.Mass
	}
	for _, it := range s.Equipment {
		m += it.Mass
	}
	return m
}
