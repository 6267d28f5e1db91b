//go:build scenario

package game

import (
	"context"
	"fmt"
	"math"
	"testing"

	"github.com/industry-digital/flux-game-sub010/internal/game/event"
	"github.com/industry-digital/flux-game-sub010/internal/game/schema"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
)

// The scripts drive the full stack: text in, resolver, pipeline, reducer,
// declared events out.
func TestScenarioScripts(t *testing.T) {
	for _, path := range scenarioPaths(t) {
		scenario, err := loadScenario(path)
		if err != nil {
			t.Fatalf("load %s: %v", path, err)
		}
		t.Run(scenario.Name, func(t *testing.T) {
			run := &scenarioRun{env: newScenarioEnv(t)}
			for i, step := range scenario.Steps {
				t.Run(fmt.Sprintf("%02d-%s", i+1, step.Kind), func(t *testing.T) {
					run.step(t, step)
				})
			}
		})
	}
}

// scenarioRun carries the mutable bits of one script execution. Candidate
// session ids are minted per line and stick only when the invocation
// declares session_started, the same contract an interactive host follows.
type scenarioRun struct {
	env     *scenarioEnv
	session string
	minted  int
}

func (r *scenarioRun) step(t *testing.T, step Step) {
	t.Helper()
	switch step.Kind {
	case "line":
		r.line(t, step)
	case "coord":
		if got := r.combatant(t).Position.Coordinate; got != step.Coord {
			t.Fatalf("coordinate = %d, want %d", got, step.Coord)
		}
	case "ap":
		if got := r.actor(t).AP.Cur; math.Abs(got-step.AP) > 1e-6 {
			t.Fatalf("ap = %v, want %v", got, step.AP)
		}
	case "stat":
		r.stat(t, step)
	case "shell":
		if got := r.actor(t).CurrentShell; got != world.ShellID(step.Shell) {
			t.Fatalf("current shell = %s, want %s", got, step.Shell)
		}
	case "session":
		if got := r.session != ""; got != step.Open {
			t.Fatalf("session open = %v, want %v", got, step.Open)
		}
	default:
		t.Fatalf("unknown step kind %q", step.Kind)
	}
}

func (r *scenarioRun) line(t *testing.T, step Step) {
	t.Helper()

	session := r.session
	if session == "" {
		r.minted++
		session = fmt.Sprintf("ses-%02d", r.minted)
	}

	out, err := r.env.runtime.Submit(context.Background(), r.env.actor, session, step.Input)
	if err != nil {
		t.Fatalf("submit %q: %v", step.Input, err)
	}

	if step.Fail != "" {
		if out.OK() {
			t.Fatalf("%q succeeded, want rejection %s", step.Input, step.Fail)
		}
		if got := string(out.Failure.Code); got != step.Fail {
			t.Fatalf("%q rejected with %s, want %s", step.Input, got, step.Fail)
		}
		return
	}
	if !out.OK() {
		t.Fatalf("%q rejected with %s", step.Input, out.Failure.Code)
	}

	if step.Events != nil {
		if len(out.Events) != len(step.Events) {
			t.Fatalf("%q declared %d events, want %d", step.Input, len(out.Events), len(step.Events))
		}
		for i, want := range step.Events {
			if got := string(out.Events[i].Type); got != want {
				t.Fatalf("%q event %d = %s, want %s", step.Input, i, got, want)
			}
		}
	}

	for _, evt := range out.Events {
		switch evt.Type {
		case event.TypeSessionStarted:
			r.session = evt.Session
		case event.TypeSessionEnded:
			r.session = ""
		}
	}
}

func (r *scenarioRun) stat(t *testing.T, step Step) {
	t.Helper()

	a := r.actor(t)
	sh, ok := a.Shells[a.CurrentShell]
	if !ok {
		t.Fatalf("actor %s has no current shell", a.ID)
	}
	block, ok := sh.Stats[schema.Stat(step.Stat)]
	if !ok {
		t.Fatalf("shell %s has no stat %q", sh.ID, step.Stat)
	}
	if block.Nat != step.Value {
		t.Fatalf("stat %s = %d, want %d", step.Stat, block.Nat, step.Value)
	}
}

func (r *scenarioRun) actor(t *testing.T) *world.Actor {
	t.Helper()
	a, ok := r.env.runtime.World().Actor(r.env.actor)
	if !ok {
		t.Fatalf("actor %s not in world", r.env.actor)
	}
	return a
}

func (r *scenarioRun) combatant(t *testing.T) *world.Combatant {
	t.Helper()
	a := r.actor(t)
	place, ok := r.env.runtime.World().Place(a.Location)
	if !ok {
		t.Fatalf("place %s not in world", a.Location)
	}
	if place.Combat == nil {
		t.Fatalf("place %s has no battlefield", place.ID)
	}
	cb, ok := place.Combat.Combatant(a.ID)
	if !ok {
		t.Fatalf("actor %s not on the battlefield", a.ID)
	}
	return cb
}
