package world

import "github.com/industry-digital/flux-game-sub010/internal/game/schema"

// Clone returns a deep copy of the world. The copy shares nothing with the
// original, so it is safe to diff against later state.
func (s *State) Clone() *State {
	out := NewState()
	for id, a := range s.Actors {
		out.Actors[id] = a.Clone()
	}
	for id, p := range s.Places {
		out.Places[id] = p.Clone()
	}
	return out
}

// Clone returns a deep copy of the place.
func (p *Place) Clone() *Place {
	out := &Place{ID: p.ID, Name: p.Name}
	if p.Combat != nil {
		out.Combat = p.Combat.Clone()
	}
	return out
}

// Clone returns a deep copy of the combat.
func (c *Combat) Clone() *Combat {
	out := NewCombat(c.Length)
	for id, cb := range c.Roster {
		dup := *cb
		out.Roster[id] = &dup
	}
	return out
}

// Clone returns a deep copy of the actor.
func (a *Actor) Clone() *Actor {
	out := &Actor{
		ID:           a.ID,
		Name:         a.Name,
		Location:     a.Location,
		CurrentShell: a.CurrentShell,
		Shells:       make(map[ShellID]*Shell, len(a.Shells)),
		AP:           a.AP,
	}
	for id, sh := range a.Shells {
		out.Shells[id] = sh.Clone()
	}
	return out
}

// Clone returns a deep copy of the shell.
func (sh *Shell) Clone() *Shell {
	out := &Shell{
		ID:        sh.ID,
		Name:      sh.Name,
		Mass:      sh.Mass,
		Stats:     make(map[schema.Stat]*StatBlock, len(sh.Stats)),
		Equipment: make(map[Slot]Item, len(sh.Equipment)),
	}
	for stat, b := range sh.Stats {
		dup := StatBlock{Nat: b.Nat, Eff: b.Eff}
		if len(b.Mods) > 0 {
			dup.Mods = make([]Modifier, len(b.Mods))
			copy(dup.Mods, b.Mods)
		}
		out.Stats[stat] = &dup
	}
	if len(sh.Inventory) > 0 {
		out.Inventory = make([]Item, len(sh.Inventory))
		copy(out.Inventory, sh.Inventory)
	}
	for slot, it := range sh.Equipment {
		out.Equipment[slot] = it
	}
	return out
}
