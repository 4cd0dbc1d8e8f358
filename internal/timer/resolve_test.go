// internal/timer/resolve_test.go
package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_ExplicitColorWins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		in    Inputs
		class Class
		label string
	}{
		{
			"red beats everything",
			Inputs{Color: "red", HasColor: true, Phase: "warn", HasPhase: true},
			ClassRed, LabelOver,
		},
		{
			"amber beats phase and sign",
			Inputs{Color: "amber", HasColor: true, Negative: true},
			ClassAmber, LabelWarn,
		},
		{
			"unknown color is green, not an error",
			Inputs{Color: "purple", HasColor: true},
			ClassGreen, LabelRunning,
		},
		{
			"unknown color still beats overtime phase",
			Inputs{Color: "purple", HasColor: true, Phase: "overtime", HasPhase: true},
			ClassGreen, LabelRunning,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Resolve(tt.in)
			assert.Equal(t, tt.class, got.Class)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}

func TestResolve_EmptyColorFallsThrough(t *testing.T) {
	t.Parallel()

	got := Resolve(Inputs{Color: "", HasColor: true, Negative: true})
	assert.Equal(t, ClassRed, got.Class)
	assert.Equal(t, LabelOver, got.Label)
}

func TestResolve_NegativeBeatsPhase(t *testing.T) {
	t.Parallel()

	got := Resolve(Inputs{Negative: true, Phase: "warn", HasPhase: true})
	assert.Equal(t, ClassRed, got.Class)
	assert.Equal(t, LabelOver, got.Label)
}

func TestResolve_Phases(t *testing.T) {
	t.Parallel()

	tests := []struct {
		phase string
		class Class
		label string
	}{
		{"overtime", ClassRed, LabelOver},
		{"warn", ClassAmber, LabelWarn},
		{"warning", ClassAmber, LabelWarn},
		{"countdown", ClassGreen, LabelRunning},
		{"Warn", ClassGreen, LabelRunning}, // match is case-sensitive
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.phase, func(t *testing.T) {
			t.Parallel()

			got := Resolve(Inputs{Phase: tt.phase, HasPhase: true})
			assert.Equal(t, tt.class, got.Class)
			assert.Equal(t, tt.label, got.Label)
		})
	}
}

func TestResolve_Default(t *testing.T) {
	t.Parallel()

	got := Resolve(Inputs{})
	assert.Equal(t, ClassGreen, got.Class)
	assert.Equal(t, LabelRunning, got.Label)
}

func TestResolve_PlaybackOverride(t *testing.T) {
	t.Parallel()

	// inactive playback rewrites the label only
	got := Resolve(Inputs{Color: "red", HasColor: true, Playback: "stop", HasPlayback: true})
	assert.Equal(t, ClassRed, got.Class)
	assert.Equal(t, LabelStopped, got.Label)

	// stopped-but-not-overtime stays green on the wire
	got = Resolve(Inputs{Playback: "pause", HasPlayback: true})
	assert.Equal(t, ClassGreen, got.Class)
	assert.Equal(t, LabelStopped, got.Label)

	// active values leave the label alone
	for _, pb := range []string{"play", "start"} {
		got = Resolve(Inputs{Playback: pb, HasPlayback: true})
		assert.Equal(t, LabelRunning, got.Label, "playback=%s", pb)
	}

	// absent playback applies no override
	got = Resolve(Inputs{Phase: "warn", HasPhase: true})
	assert.Equal(t, LabelWarn, got.Label)
}

// Every input combination must resolve to exactly one of the four
// defined statuses; the resolver is total.
func TestResolve_Total(t *testing.T) {
	t.Parallel()

	colors := []Inputs{{}, {Color: "red", HasColor: true}, {Color: "amber", HasColor: true}, {Color: "other", HasColor: true}}
	phases := []struct {
		v   string
		has bool
	}{{"", false}, {"overtime", true}, {"warn", true}, {"warning", true}, {"other", true}}
	playbacks := []struct {
		v   string
		has bool
	}{{"", false}, {"play", true}, {"start", true}, {"other", true}}

	valid := map[string]bool{LabelRunning: true, LabelWarn: true, LabelOver: true, LabelStopped: true}

	for _, c := range colors {
		for _, p := range phases {
			for _, pb := range playbacks {
				for _, neg := range []bool{false, true} {
					in := c
					in.Phase, in.HasPhase = p.v, p.has
					in.Playback, in.HasPlayback = pb.v, pb.has
					in.Negative = neg

					got := Resolve(in)
					assert.True(t, valid[got.Label], "label %q for %+v", got.Label, in)
					assert.LessOrEqual(t, got.Class, ClassRed, "class for %+v", in)
				}
			}
		}
	}
}
