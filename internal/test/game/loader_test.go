//go:build scenario

package game

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeScript(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return path
}

func TestLoadScenario(t *testing.T) {
	path := writeScript(t, "sample.lua", `
local s = Scenario.new("sample")
s:line("advance 10", {events = {"combat.combatant_moved"}})
s:line("foo", {fail = "NOT_FOUND"})
s:coord(110)
s:ap(46)
s:session(false)
return s
`)

	scenario, err := loadScenario(path)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	if scenario.Name != "sample" {
		t.Fatalf("name = %q, want sample", scenario.Name)
	}

	want := []Step{
		{Kind: "line", Input: "advance 10", Events: []string{"combat.combatant_moved"}},
		{Kind: "line", Input: "foo", Fail: "NOT_FOUND"},
		{Kind: "coord", Coord: 110},
		{Kind: "ap", AP: 46},
		{Kind: "session", Open: false},
	}
	if !reflect.DeepEqual(scenario.Steps, want) {
		t.Fatalf("steps = %+v, want %+v", scenario.Steps, want)
	}
}

func TestLoadScenarioEmptyEventListStaysNonNil(t *testing.T) {
	path := writeScript(t, "noop.lua", `
local s = Scenario.new("noop")
s:line("swap to mk1", {events = {}})
return s
`)

	scenario, err := loadScenario(path)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	// A declared-empty list asserts zero events; a nil one skips the check.
	step := scenario.Steps[0]
	if step.Events == nil || len(step.Events) != 0 {
		t.Fatalf("events = %#v, want empty non-nil slice", step.Events)
	}
}

func TestLoadScenarioDefaultsNameFromFile(t *testing.T) {
	path := writeScript(t, "unnamed.lua", "return Scenario.new()\n")

	scenario, err := loadScenario(path)
	if err != nil {
		t.Fatalf("load scenario: %v", err)
	}
	if scenario.Name != "unnamed" {
		t.Fatalf("name = %q, want unnamed", scenario.Name)
	}
}

func TestLoadScenarioRejectsNonScenarioReturn(t *testing.T) {
	path := writeScript(t, "bad.lua", "return 42\n")

	if _, err := loadScenario(path); err == nil {
		t.Fatal("expected load to reject a non-scenario return value")
	}
}
