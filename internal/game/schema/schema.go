// Package schema describes the stat layout of robotic shells.
//
// The schema is the authority on which stats exist, their baseline factory
// values, and their upgrade ceilings. Resolvers consult it to validate stat
// keywords and the workbench consults it to price mutations.
package schema

import "sort"

// Stat identifies a shell stat.
type Stat string

const (
	// StatStrength drives melee damage and carry capacity.
	StatStrength Stat = "strength"
	// StatReflex drives initiative and evasion.
	StatReflex Stat = "reflex"
	// StatEndurance drives AP recovery and damage soak.
	StatEndurance Stat = "endurance"
	// StatCognition drives hacking and targeting computers.
	StatCognition Stat = "cognition"
	// StatPerception drives detection and ranged accuracy.
	StatPerception Stat = "perception"
)

// Def describes one stat.
type Def struct {
	Stat     Stat
	Name     string
	Baseline int
	Max      int
}

// Schema answers stat lookups.
type Schema interface {
	// Lookup returns the definition for a stat keyword.
	Lookup(stat Stat) (Def, bool)
	// All returns every definition in stable order.
	All() []Def
}

type mapSchema struct {
	defs  map[Stat]Def
	order []Stat
}

// New builds a schema from definitions. Later definitions with a repeated
// stat replace earlier ones.
func New(defs ...Def) Schema {
	s := &mapSchema{defs: make(map[Stat]Def, len(defs))}
	for _, d := range defs {
		if _, seen := s.defs[d.Stat]; !seen {
			s.order = append(s.order, d.Stat)
		}
		s.defs[d.Stat] = d
	}
	return s
}

func (s *mapSchema) Lookup(stat Stat) (Def, bool) {
	d, ok := s.defs[stat]
	return d, ok
}

func (s *mapSchema) All() []Def {
	out := make([]Def, 0, len(s.order))
	for _, stat := range s.order {
		out = append(out, s.defs[stat])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Stat < out[j].Stat })
	return out
}

// Default returns the stock shell schema: five stats, baseline 10, max 100.
func Default() Schema {
	return New(
		Def{Stat: StatStrength, Name: "Strength", Baseline: 10, Max: 100},
		Def{Stat: StatReflex, Name: "Reflex", Baseline: 10, Max: 100},
		Def{Stat: StatEndurance, Name: "Endurance", Baseline: 10, Max: 100},
		Def{Stat: StatCognition, Name: "Cognition", Baseline: 10, Max: 100},
		Def{Stat: StatPerception, Name: "Perception", Baseline: 10, Max: 100},
	)
}
