package combat

import (
	"fmt"
	"testing"
	"time"

	apperrors "github.com/industry-digital/flux-game-sub010/internal/errors"
	"github.com/industry-digital/flux-game-sub010/internal/game/command"
	"github.com/industry-digital/flux-game-sub010/internal/game/engine"
	"github.com/industry-digital/flux-game-sub010/internal/game/intent"
	"github.com/industry-digital/flux-game-sub010/internal/game/world"
	"github.com/industry-digital/flux-game-sub010/internal/game/worldkit"
	"github.com/industry-digital/flux-game-sub010/internal/tuning"
)

// parseAdvanceInput runs the advance resolver behind a no-op reducer so
// grammar behavior is observable without world state.
func parseAdvanceInput(t *testing.T, text string) engine.Outcome {
	t.Helper()
	reg := engine.NewRegistry()
	reg.MustRegister(engine.Entry{
		Type:    command.TypeAdvance,
		Resolve: NewResolver(tuning.Default().Movement),
		Reduce:  func(*engine.Context, command.Command, *engine.Scope) {},
		Handles: engine.HandlesType[command.AdvanceArgs](command.TypeAdvance),
	})

	n := 0
	ctx := engine.NewContext(world.NewState(), worldkit.NewSessions(),
		engine.WithClock(func() time.Time { return time.Unix(1700000000, 0).UTC() }),
		engine.WithIDSource(func() string {
			n++
			return fmt.Sprintf("cmd-%03d", n)
		}),
	)
	in := intent.New("in-001", time.Unix(1700000000, 0).UTC(), "ac-razor", "pl-arena", "ses-1", text)
	return engine.New(reg).Run(ctx, in)
}

func TestAdvanceResolverModes(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		mode   command.MoveMode
		amount int
	}{
		{"distance", "advance 10", command.MoveModeDistance, 10},
		{"distance at cap", "advance 10000", command.MoveModeDistance, 10000},
		{"ap", "advance ap 3", command.MoveModeAP, 3},
		{"max", "advance max", command.MoveModeMax, 0},
		{"uppercase input", "ADVANCE 7", command.MoveModeDistance, 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := parseAdvanceInput(t, tc.text)
			if !out.OK() {
				t.Fatalf("resolve %q failed with %s", tc.text, out.Failure.Code)
			}
			args, ok := out.Command.Args.(command.AdvanceArgs)
			if !ok {
				t.Fatalf("args type = %T, want command.AdvanceArgs", out.Command.Args)
			}
			if args.Mode != tc.mode {
				t.Fatalf("mode = %s, want %s", args.Mode, tc.mode)
			}
			if args.Amount != tc.amount {
				t.Fatalf("amount = %d, want %d", args.Amount, tc.amount)
			}
		})
	}
}

func TestAdvanceResolverRejects(t *testing.T) {
	tests := []struct {
		name string
		text string
		code apperrors.Code
	}{
		{"bare verb", "advance", apperrors.CodeInvalidSyntax},
		{"unknown mode keyword", "advance warp", apperrors.CodeInvalidSyntax},
		{"extra token", "advance 5 7", apperrors.CodeInvalidSyntax},
		{"max with argument", "advance max 5", apperrors.CodeInvalidSyntax},
		{"ap missing amount", "advance ap", apperrors.CodeInvalidSyntax},
		{"ap extra token", "advance ap 5 9", apperrors.CodeInvalidSyntax},
		{"negative amount", "advance -5", apperrors.CodeInvalidAmount},
		{"plus sign", "advance +5", apperrors.CodeInvalidAmount},
		{"decimal amount", "advance 10.5", apperrors.CodeInvalidAmount},
		{"distance above cap", "advance 10001", apperrors.CodeInvalidAmount},
		{"ap above cap", "advance ap 1001", apperrors.CodeInvalidAmount},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := parseAdvanceInput(t, tc.text)
			if out.OK() {
				t.Fatalf("resolve %q succeeded, want %s", tc.text, tc.code)
			}
			if out.Failure.Code != tc.code {
				t.Fatalf("failure code = %s, want %s", out.Failure.Code, tc.code)
			}
			if out.Failure.Trace != "in-001" {
				t.Fatalf("failure trace = %q, want intent id", out.Failure.Trace)
			}
		})
	}
}

func TestAdvanceResolverDeclinesOtherPrefixes(t *testing.T) {
	out := parseAdvanceInput(t, "retreat 5")
	if out.OK() {
		t.Fatal("unclaimed input resolved, want NOT_FOUND")
	}
	if out.Failure.Code != apperrors.CodeNotFound {
		t.Fatalf("failure code = %s, want %s", out.Failure.Code, apperrors.CodeNotFound)
	}
}

func TestAdvanceResolverEnvelope(t *testing.T) {
	out := parseAdvanceInput(t, "advance 10")
	if !out.OK() {
		t.Fatalf("resolve failed with %s", out.Failure.Code)
	}
	cmd := out.Command
	if cmd.ID != "cmd-001" {
		t.Fatalf("command id = %q, want cmd-001", cmd.ID)
	}
	if !cmd.TS.Equal(time.Unix(1700000000, 0).UTC()) {
		t.Fatalf("command ts = %v, want injected clock value", cmd.TS)
	}
	if cmd.Type != command.TypeAdvance {
		t.Fatalf("command type = %s, want %s", cmd.Type, command.TypeAdvance)
	}
	if cmd.Actor != "ac-razor" || cmd.Location != "pl-arena" || cmd.Session != "ses-1" {
		t.Fatalf("envelope = %s/%s/%s, want intent fields carried over", cmd.Actor, cmd.Location, cmd.Session)
	}
	if err := cmd.Validate(); err != nil {
		t.Fatalf("resolved command invalid: %v", err)
	}
}
