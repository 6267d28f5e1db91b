// Package intent models parsed player input.
//
// An intent is ephemeral: the router offers it to each resolver in turn and
// discards it once a command is produced or every resolver has declined.
package intent

import (
	"strings"
	"time"

	"github.com/industry-digital/flux-game-sub010/internal/game/world"
)

// Intent is one parsed input utterance with actor context attached.
type Intent struct {
	ID       string
	TS       time.Time
	Actor    world.ActorID
	Location world.PlaceID
	Session  string
	// Text is the raw input line.
	Text string
	// Normalized is the lowercased, whitespace-collapsed input line.
	Normalized string
	// Tokens is the normalized token sequence.
	Tokens []string
	// Uniques is the token set for membership checks.
	Uniques map[string]struct{}
	// Options carries host-supplied key/value hints.
	Options map[string]string
}

// New builds an intent from a raw input line, tokenizing and normalizing it.
func New(id string, ts time.Time, actor world.ActorID, location world.PlaceID, session, text string) Intent {
	tokens := Tokenize(text)
	uniques := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		uniques[tok] = struct{}{}
	}
	return Intent{
		ID:         id,
		TS:         ts,
		Actor:      actor,
		Location:   location,
		Session:    session,
		Text:       text,
		Normalized: strings.Join(tokens, " "),
		Tokens:     tokens,
		Uniques:    uniques,
	}
}

// Tokenize lowercases and splits an input line on whitespace.
func Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// Prefix returns the first token, or "" for empty input.
func (i Intent) Prefix() string {
	if len(i.Tokens) == 0 {
		return ""
	}
	return i.Tokens[0]
}

// Arg returns token n, or "" when out of range.
func (i Intent) Arg(n int) string {
	if n < 0 || n >= len(i.Tokens) {
		return ""
	}
	return i.Tokens[n]
}

// Has reports whether the normalized token appears in the input.
func (i Intent) Has(token string) bool {
	_, ok := i.Uniques[token]
	return ok
}
