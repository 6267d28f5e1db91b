// Package worldkit provides session and actor helpers layered on the world
// model. It owns the workbench session registry and the derived quantities
// reducers need but the world graph does not store.
package worldkit

import (
	"time"

	"github.com/industry-digital/flux-game-sub010/internal/game/schema"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
)

// Mutation is one staged stat change inside a workbench session.
type Mutation struct {
	Stat schema.Stat
	From int
	To   int
	Cost int
}

// Session is an open workbench session for one actor.
type Session struct {
	ID       string
	Actor    world.ActorID
	Staged   []Mutation
	OpenedAt time.Time
}

// Stage records a mutation. Re-staging a stat replaces the prior step for
// that stat, keeping its position in the sequence.
func (s *Session) Stage(m Mutation) {
	for i, prev := range s.Staged {
		if prev.Stat == m.Stat {
			s.Staged[i] = m
			return
		}
	}
	s.Staged = append(s.Staged, m)
}

// Clear drops all staged mutations and returns how many were dropped.
func (s *Session) Clear() int {
	n := len(s.Staged)
	s.Staged = nil
	return n
}

type sessionKey struct {
	actor world.ActorID
	id    string
}

// Sessions is the registry of open workbench sessions, keyed by actor and
// session id. Not safe for concurrent use; the engine loop owns it.
type Sessions struct {
	open map[sessionKey]*Session
}

// NewSessions creates an empty registry.
func NewSessions() *Sessions {
	return &Sessions{open: make(map[sessionKey]*Session)}
}

// Lookup returns the open session for the actor and id.
func (s *Sessions) Lookup(actor world.ActorID, id string) (*Session, bool) {
	sess, ok := s.open[sessionKey{actor: actor, id: id}]
	return sess, ok
}

// Open returns the session for the actor and id, creating it when absent.
// The second result reports whether a new session was created.
func (s *Sessions) Open(actor world.ActorID, id string, now time.Time) (*Session, bool) {
	key := sessionKey{actor: actor, id: id}
	if sess, ok := s.open[key]; ok {
		return sess, false
	}
	sess := &Session{ID: id, Actor: actor, OpenedAt: now}
	s.open[key] = sess
	return sess, true
}

// End removes the session and returns it.
func (s *Sessions) End(actor world.ActorID, id string) (*Session, bool) {
	key := sessionKey{actor: actor, id: id}
	sess, ok := s.open[key]
	if ok {
		delete(s.open, key)
	}
	return sess, ok
}

// Len reports how many sessions are open.
func (s *Sessions) Len() int {
	return len(s.open)
}
