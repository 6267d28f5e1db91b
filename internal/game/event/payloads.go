package event

import (
	"github.com/industry-digital/flux-game-sub010/internal/game/schema"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
)

// MoveCost reports what a movement drained.
type MoveCost struct {
	AP     float64 `json:"ap"`
	Energy float64 `json:"energy"`
}

// CombatantMoved is the payload of TypeCombatantMoved. Both endpoints are
// integer coordinates; Distance is their absolute difference.
type CombatantMoved struct {
	From     int      `json:"from"`
	To       int      `json:"to"`
	Distance int      `json:"distance"`
	Cost     MoveCost `json:"cost"`
}

// ShellSwapped is the payload of TypeShellSwapped.
type ShellSwapped struct {
	From world.ShellID `json:"from"`
	To   world.ShellID `json:"to"`
}

// StatReading is one stat line in a shell assessment.
type StatReading struct {
	Stat schema.Stat `json:"stat"`
	Nat  int         `json:"nat"`
	Eff  int         `json:"eff"`
}

// StagedReading is one staged mutation line in a shell assessment.
type StagedReading struct {
	Stat schema.Stat `json:"stat"`
	From int         `json:"from"`
	To   int         `json:"to"`
	Cost int         `json:"cost"`
}

// ShellAssessed is the payload of TypeShellAssessed.
type ShellAssessed struct {
	Shell         world.ShellID   `json:"shell"`
	Name          string          `json:"name"`
	Stats         []StatReading   `json:"stats"`
	Staged        []StagedReading `json:"staged,omitempty"`
	ProjectedCost int             `json:"projected_cost"`
}

// SessionStarted is the payload of TypeSessionStarted.
type SessionStarted struct {
	Session string `json:"session"`
}

// SessionEnded is the payload of TypeSessionEnded. Discarded counts staged
// mutations dropped because the session closed uncommitted.
type SessionEnded struct {
	Session   string `json:"session"`
	Discarded int    `json:"discarded"`
}

// MutationStaged is the payload of TypeMutationStaged.
type MutationStaged struct {
	Session string      `json:"session"`
	Stat    schema.Stat `json:"stat"`
	From    int         `json:"from"`
	To      int         `json:"to"`
	Cost    int         `json:"cost"`
}

// AppliedMutation is one applied step in a committed sequence.
type AppliedMutation struct {
	Stat schema.Stat `json:"stat"`
	From int         `json:"from"`
	To   int         `json:"to"`
	Cost int         `json:"cost"`
}

// MutationsCommitted is the payload of TypeMutationsCommitted.
type MutationsCommitted struct {
	Session   string            `json:"session"`
	Mutations []AppliedMutation `json:"mutations"`
	TotalCost int               `json:"total_cost"`
}

// MutationsDiscarded is the payload of TypeMutationsDiscarded.
type MutationsDiscarded struct {
	Session string `json:"session"`
	Dropped int    `json:"dropped"`
}
