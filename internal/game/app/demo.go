package app

import (
	"github.com/industry-digital/flux-game-sub010/internal/game/schema"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
	"github.com/industry-digital/flux-game-sub010/internal/tuning"
)

// NewDemoWorld builds the fixture world cmd/sim boots with: a pilot with
// two shells standing on a live battlefield opposite a sentry drone, plus
// a dry dock for workbench sessions. Returns the world and the pilot's id.
func NewDemoWorld(tun tuning.Tuning, sch schema.Schema) (*world.State, world.ActorID) {
	state := world.NewState()

	dock := &world.Place{ID: "pl-dock", Name: "Dry Dock"}
	state.AddPlace(dock)

	arena := &world.Place{
		ID:     "pl-arena",
		Name:   "Proving Grounds",
		Combat: world.NewCombat(tun.Battlefield.Length),
	}
	state.AddPlace(arena)

	vanguard := world.NewShell("sh-vanguard", "Vanguard Mk1", 80, sch)
	juggernaut := world.NewShell("sh-juggernaut", "Juggernaut Mk2", 160, sch)
	pilot := &world.Actor{
		ID:           "ac-razor",
		Name:         "Razor",
		Location:     arena.ID,
		CurrentShell: vanguard.ID,
		Shells: map[world.ShellID]*world.Shell{
			vanguard.ID:   vanguard,
			juggernaut.ID: juggernaut,
		},
		AP: world.Gauge{Cur: 50, Max: 100},
	}
	state.AddActor(pilot)

	sentryShell := world.NewShell("sh-sentry", "Sentry Chassis", 120, sch)
	sentry := &world.Actor{
		ID:           "ac-sentry",
		Name:         "Sentry Drone",
		Location:     arena.ID,
		CurrentShell: sentryShell.ID,
		Shells: map[world.ShellID]*world.Shell{
			sentryShell.ID: sentryShell,
		},
		AP: world.Gauge{Cur: 30, Max: 60},
	}
	state.AddActor(sentry)

	arena.Combat.Join(pilot.ID, 100, world.FacingRight, "pilots")
	arena.Combat.Join(sentry.ID, 150, world.FacingLeft, "drones")

	return state, pilot.ID
}
