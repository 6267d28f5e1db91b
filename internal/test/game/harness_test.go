//go:build scenario

package game

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"
	"time"

	"github.com/industry-digital/flux-game-sub010/internal/game/app"
	"github.com/industry-digital/flux-game-sub010/internal/game/schema"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
	"github.com/industry-digital/flux-game-sub010/internal/tuning"
)

const scenarioGlob = "internal/test/game/scenarios/*.lua"

// scenarioEnv is one scripted run against an in-process runtime. The
// injected clock and id sources make every run reproducible line by line.
type scenarioEnv struct {
	runtime *app.Runtime
	actor   world.ActorID
}

func newScenarioEnv(t *testing.T) *scenarioEnv {
	t.Helper()

	tun := tuning.Default()
	sch := schema.Default()
	state, pilot := app.NewDemoWorld(tun, sch)

	base := time.Unix(1700000000, 0).UTC()
	var ticks, ids int
	rt, err := app.New(app.Config{
		World:  state,
		Tuning: tun,
		Schema: sch,
		Now: func() time.Time {
			ticks++
			return base.Add(time.Duration(ticks) * time.Second)
		},
		NewID: func() string {
			ids++
			return fmt.Sprintf("id-%03d", ids)
		},
	})
	if err != nil {
		t.Fatalf("new runtime: %v", err)
	}
	return &scenarioEnv{runtime: rt, actor: pilot}
}

// scenarioPaths globs the checked-in scripts relative to the module root,
// sorted so runs enumerate them in a stable order.
func scenarioPaths(t *testing.T) []string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("caller information unavailable")
	}

	dir := filepath.Dir(file)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatalf("no go.mod above %s", file)
		}
		dir = parent
	}

	paths, err := filepath.Glob(filepath.Join(dir, scenarioGlob))
	if err != nil {
		t.Fatalf("glob scenarios: %v", err)
	}
	if len(paths) == 0 {
		t.Fatalf("no scenario scripts match %s", scenarioGlob)
	}
	sort.Strings(paths)
	return paths
}
