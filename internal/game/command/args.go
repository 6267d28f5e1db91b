package command

import (
	"github.com/industry-digital/flux-game-sub010/internal/game/schema"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
)

// Args is the sealed command payload union.
type Args interface {
	isArgs()
}

// MoveMode selects how an advance amount is interpreted.
type MoveMode int

const (
	// MoveModeUnspecified represents an invalid move mode value.
	MoveModeUnspecified MoveMode = iota
	// MoveModeDistance moves an exact distance, spending whatever AP it costs.
	MoveModeDistance
	// MoveModeAP spends an exact AP amount, moving whatever distance it buys.
	MoveModeAP
	// MoveModeMax moves as far as AP, terrain, and other combatants allow.
	MoveModeMax
)

// String returns the lowercase mode name.
func (m MoveMode) String() string {
	switch m {
	case MoveModeDistance:
		return "distance"
	case MoveModeAP:
		return "ap"
	case MoveModeMax:
		return "max"
	default:
		return "unspecified"
	}
}

// AdvanceArgs parameterizes combat movement. Amount is a distance for
// MoveModeDistance, an AP quantity for MoveModeAP, and ignored for
// MoveModeMax.
type AdvanceArgs struct {
	Mode   MoveMode
	Amount int
}

// SwapArgs names the shell to switch into.
type SwapArgs struct {
	Shell world.ShellID
}

// OpenArgs starts a workbench session. The session id rides the envelope.
type OpenArgs struct{}

// AssessArgs requests a shell status report.
type AssessArgs struct{}

// StageArgs stages one stat mutation.
type StageArgs struct {
	Stat  schema.Stat
	Value int
}

// CommitArgs applies the staged sequence.
type CommitArgs struct{}

// DiscardArgs drops the staged sequence.
type DiscardArgs struct{}

// CloseArgs ends the workbench session.
type CloseArgs struct{}

func (AdvanceArgs) isArgs() {}
func (SwapArgs) isArgs()    {}
func (OpenArgs) isArgs()    {}
func (AssessArgs) isArgs()  {}
func (StageArgs) isArgs()   {}
func (CommitArgs) isArgs()  {}
func (DiscardArgs) isArgs() {}
func (CloseArgs) isArgs()   {}

// ArgsType returns the command type an args variant belongs to.
func ArgsType(a Args) Type {
	switch a.(type) {
	case AdvanceArgs:
		return TypeAdvance
	case SwapArgs:
		return TypeSwap
	case OpenArgs:
		return TypeOpen
	case AssessArgs:
		return TypeAssess
	case StageArgs:
		return TypeStage
	case CommitArgs:
		return TypeCommit
	case DiscardArgs:
		return TypeDiscard
	case CloseArgs:
		return TypeClose
	default:
		return ""
	}
}
