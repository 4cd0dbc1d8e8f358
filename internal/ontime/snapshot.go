// internal/ontime/snapshot.go
package ontime

// Snapshot is the typed result of extracting one inbound message.
// It contains no logic and is superseded wholesale by the next message.
// Optional wire fields carry a Has* flag; absent is never an error.
type Snapshot struct {
	Title    string
	HasTitle bool

	// HasTimer reports whether the message carried a timer object at all.
	// Without it the message is title-only and no time/color/status
	// update may be derived from the zero values below.
	HasTimer bool

	// ElapsedMs is signed: positive is countdown remaining,
	// negative is overtime.
	ElapsedMs int64

	Color    string
	HasColor bool

	Phase    string
	HasPhase bool

	Playback    string
	HasPlayback bool
}
