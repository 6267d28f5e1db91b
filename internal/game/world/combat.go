package world

// Facing is the direction a combatant looks along the battlefield axis.
type Facing int

const (
	// FacingUnspecified represents an invalid facing value.
	FacingUnspecified Facing = iota
	// FacingLeft looks toward coordinate zero.
	FacingLeft
	// FacingRight looks toward the battlefield end.
	FacingRight
)

// Sign returns the coordinate delta direction of the facing: -1, +1, or 0.
func (f Facing) Sign() int {
	switch f {
	case FacingLeft:
		return -1
	case FacingRight:
		return 1
	default:
		return 0
	}
}

// String returns the lowercase facing name.
func (f Facing) String() string {
	switch f {
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "unspecified"
	}
}

// Position locates a combatant on the battlefield.
type Position struct {
	Coordinate int
	Facing     Facing
}

// Combatant is an actor's combat projection.
type Combatant struct {
	Actor    ActorID
	Team     string
	Position Position
}

// Combat is a one-dimensional battlefield with coordinates in [0, Length].
type Combat struct {
	Length int
	Roster map[ActorID]*Combatant
}

// NewCombat creates an empty battlefield of the given length.
func NewCombat(length int) *Combat {
	return &Combat{
		Length: length,
		Roster: make(map[ActorID]*Combatant),
	}
}

// Join registers an actor on the battlefield, replacing any prior entry.
func (c *Combat) Join(actor ActorID, coordinate int, facing Facing, team string) *Combatant {
	cb := &Combatant{
		Actor: actor,
		Team:  team,
		Position: Position{
			Coordinate: coordinate,
			Facing:     facing,
		},
	}
	c.Roster[actor] = cb
	return cb
}

// Combatant looks up a roster entry.
func (c *Combat) Combatant(actor ActorID) (*Combatant, bool) {
	cb, ok := c.Roster[actor]
	return cb, ok
}

// Leave removes an actor from the roster.
func (c *Combat) Leave(actor ActorID) {
	delete(c.Roster, actor)
}
