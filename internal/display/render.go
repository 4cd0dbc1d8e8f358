// internal/display/render.go
package display

import (
	"fmt"

	"github.com/stagebridge/ontime-bridge/internal/timer"
)

// PadRow left-justifies a line into exactly Width characters:
// space-padded when short, right-truncated when long.
func PadRow(s string) string {
	r := []rune(s)
	if len(r) > Width {
		return string(r[:Width])
	}
	return fmt.Sprintf("%-*s", Width, s)
}

// StatusLine builds the status row: label, a space, an optional
// leading minus, then zero-padded minutes and seconds.
func StatusLine(label string, t timer.DisplayTime) string {
	sign := ""
	if t.Negative {
		sign = "-"
	}
	return PadRow(fmt.Sprintf("%s %s%02d:%02d", label, sign, t.Minutes, t.Seconds))
}
