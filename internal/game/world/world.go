// Package world holds the authoritative mutable game state.
//
// State is owned by a single goroutine; reducers mutate it in place and
// nothing outside the engine loop may hold references across commands.
package world

// ActorID identifies an actor.
type ActorID string

// PlaceID identifies a place.
type PlaceID string

// ShellID identifies a shell.
type ShellID string

// State is the root of the world graph.
type State struct {
	Actors map[ActorID]*Actor
	Places map[PlaceID]*Place
}

// NewState creates an empty world.
func NewState() *State {
	return &State{
		Actors: make(map[ActorID]*Actor),
		Places: make(map[PlaceID]*Place),
	}
}

// Actor looks up an actor by id.
func (s *State) Actor(id ActorID) (*Actor, bool) {
	a, ok := s.Actors[id]
	return a, ok
}

// Place looks up a place by id.
func (s *State) Place(id PlaceID) (*Place, bool) {
	p, ok := s.Places[id]
	return p, ok
}

// AddActor inserts or replaces an actor.
func (s *State) AddActor(a *Actor) {
	s.Actors[a.ID] = a
}

// AddPlace inserts or replaces a place.
func (s *State) AddPlace(p *Place) {
	s.Places[p.ID] = p
}

// Place is a location actors occupy. At most one combat runs per place.
type Place struct {
	ID     PlaceID
	Name   string
	Combat *Combat
}
