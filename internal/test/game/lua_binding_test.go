//go:build scenario

package game

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Shopify/go-lua"
)

const scenarioTypeName = "scenario"

// Scenario is a named sequence of scripted steps built by a Lua file.
type Scenario struct {
	Name  string
	Steps []Step
}

// Step is one scripted action. Kind selects which fields matter: "line"
// submits Input and checks Fail or Events, the other kinds assert world
// state after the preceding lines.
type Step struct {
	Kind string

	// line
	Input  string
	Fail   string
	Events []string

	// assertions
	Coord int
	AP    float64
	Stat  string
	Value int
	Shell string
	Open  bool
}

// loadScenario runs a script and takes the Scenario it returns. Scripts
// call Scenario.new and chain step methods on the result; the file name
// doubles as the scenario name when the script leaves it blank.
func loadScenario(path string) (*Scenario, error) {
	state := lua.NewState()
	lua.OpenLibraries(state)
	bindScenario(state)

	if err := lua.LoadFile(state, path, ""); err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	if err := state.ProtectedCall(0, 1, 0); err != nil {
		return nil, fmt.Errorf("run %s: %w", filepath.Base(path), err)
	}

	scenario, _ := state.ToUserData(-1).(*Scenario)
	state.Pop(1)
	if scenario == nil {
		return nil, fmt.Errorf("%s did not return a Scenario", filepath.Base(path))
	}
	if strings.TrimSpace(scenario.Name) == "" {
		scenario.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return scenario, nil
}

// bindScenario installs the Scenario global and its method metatable.
func bindScenario(state *lua.State) {
	lua.NewMetaTable(state, scenarioTypeName)
	state.NewTable()
	lua.SetFunctions(state, []lua.RegistryFunction{
		{Name: "line", Function: stepLine},
		{Name: "coord", Function: stepCoord},
		{Name: "ap", Function: stepAP},
		{Name: "stat", Function: stepStat},
		{Name: "shell", Function: stepShell},
		{Name: "session", Function: stepSession},
	}, 0)
	state.SetField(-2, "__index")
	state.Pop(1)

	state.NewTable()
	lua.SetFunctions(state, []lua.RegistryFunction{
		{Name: "new", Function: newScenario},
	}, 0)
	state.SetGlobal("Scenario")
}

func newScenario(state *lua.State) int {
	sc := &Scenario{Name: lua.OptString(state, 1, "")}
	state.PushUserData(sc)
	lua.SetMetaTableNamed(state, scenarioTypeName)
	return 1
}

// appendStep records step on the Scenario receiver at argument 1.
func appendStep(state *lua.State, step Step) int {
	sc, _ := lua.CheckUserData(state, 1, scenarioTypeName).(*Scenario)
	if sc == nil {
		lua.ArgumentError(state, 1, "Scenario expected")
		return 0
	}
	sc.Steps = append(sc.Steps, step)
	return 0
}

func stepLine(state *lua.State) int {
	step := Step{Kind: "line", Input: lua.CheckString(state, 2)}
	readLineOptions(state, 3, &step)
	return appendStep(state, step)
}

func stepCoord(state *lua.State) int {
	return appendStep(state, Step{Kind: "coord", Coord: int(lua.CheckNumber(state, 2))})
}

func stepAP(state *lua.State) int {
	return appendStep(state, Step{Kind: "ap", AP: lua.CheckNumber(state, 2)})
}

func stepStat(state *lua.State) int {
	return appendStep(state, Step{
		Kind:  "stat",
		Stat:  lua.CheckString(state, 2),
		Value: int(lua.CheckNumber(state, 3)),
	})
}

func stepShell(state *lua.State) int {
	return appendStep(state, Step{Kind: "shell", Shell: lua.CheckString(state, 2)})
}

func stepSession(state *lua.State) int {
	lua.CheckType(state, 2, lua.TypeBoolean)
	return appendStep(state, Step{Kind: "session", Open: state.ToBoolean(2)})
}

// readLineOptions reads the optional table argument of line. "fail" names
// the expected rejection code; "events" lists the expected event types in
// declaration order, where a present but empty list asserts zero events.
func readLineOptions(state *lua.State, index int, step *Step) {
	if state.IsNoneOrNil(index) {
		return
	}
	lua.CheckType(state, index, lua.TypeTable)
	index = state.AbsIndex(index)

	state.PushNil()
	for state.Next(index) {
		if state.TypeOf(-2) == lua.TypeString {
			key, _ := state.ToString(-2)
			switch key {
			case "fail":
				if code, ok := state.ToString(-1); ok {
					step.Fail = code
				}
			case "events":
				step.Events = eventNames(state, -1)
			}
		}
		state.Pop(1)
	}
}

// eventNames reads a Lua array of event type strings, stopping at the
// first hole or non-string element.
func eventNames(state *lua.State, index int) []string {
	index = state.AbsIndex(index)
	if state.TypeOf(index) != lua.TypeTable {
		return nil
	}

	names := []string{}
	for i := 1; ; i++ {
		state.RawGetInt(index, i)
		if state.TypeOf(-1) != lua.TypeString {
			state.Pop(1)
			return names
		}
		name, _ := state.ToString(-1)
		state.Pop(1)
		names = append(names, name)
	}
}
