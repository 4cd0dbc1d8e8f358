// internal/timer/resolve.go
package timer

// Class is the display color class of the current timer state.
type Class uint8

const (
	ClassGreen Class = iota
	ClassAmber
	ClassRed
)

// Status labels shown on the local display.
const (
	LabelRunning = "Running"
	LabelWarn    = "Warn"
	LabelOver    = "Over"
	LabelStopped = "Stopped"
)

// Status pairs a color class with its textual label.
type Status struct {
	Class Class
	Label string
}

// Inputs are the optional upstream fields the resolver works from.
// A Has* flag of false means the field was absent from the message.
type Inputs struct {
	Color    string
	HasColor bool

	Phase    string
	HasPhase bool

	Playback    string
	HasPlayback bool

	Negative bool
}

// Resolve derives the color class and status label. First match wins:
// explicit color, then overtime sign, then phase, then the green
// default. Unknown explicit colors resolve to green, not to an error.
//
// An inactive playback value rewrites the label to "Stopped" after
// the fact; the color class is deliberately left untouched, so a
// stopped timer that is not in overtime still encodes green.
func Resolve(in Inputs) Status {
	st := Status{Class: ClassGreen, Label: LabelRunning}

	switch {
	case in.HasColor && in.Color == "red":
		st = Status{Class: ClassRed, Label: LabelOver}
	case in.HasColor && in.Color == "amber":
		st = Status{Class: ClassAmber, Label: LabelWarn}
	case in.HasColor && in.Color != "":
		// keep green default
	case in.Negative:
		st = Status{Class: ClassRed, Label: LabelOver}
	case in.HasPhase && in.Phase == "overtime":
		st = Status{Class: ClassRed, Label: LabelOver}
	case in.HasPhase && (in.Phase == "warn" || in.Phase == "warning"):
		st = Status{Class: ClassAmber, Label: LabelWarn}
	}

	if in.HasPlayback && in.Playback != "play" && in.Playback != "start" {
		st.Label = LabelStopped
	}

	return st
}
