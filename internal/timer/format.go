// internal/timer/format.go
package timer

// MinutesMax is the largest value the two-digit legacy display can show.
// Larger values are clamped, never wrapped.
const MinutesMax = 99

// DisplayTime is a display-ready time value. Minutes and seconds are
// always non-negative magnitudes; the sign travels separately.
type DisplayTime struct {
	Minutes  int
	Seconds  int
	Negative bool
}

// Format converts a signed elapsed duration in milliseconds into a
// DisplayTime.
//
// Rounding is asymmetric to match the upstream service's own display:
// a running countdown rounds up to the next whole second, overtime
// (and exactly zero) floors. 100 ms remaining shows as 0:01; 100 ms
// of overtime shows as 0:00.
func Format(elapsedMs int64) DisplayTime {
	absMs := elapsedMs
	if absMs < 0 {
		absMs = -absMs
	}

	total := absMs / 1000
	if elapsedMs > 0 && absMs%1000 != 0 {
		total++
	}

	// Clamp before narrowing so oversized values cannot overflow int
	// on 32-bit targets.
	minutes := total / 60
	if minutes > MinutesMax {
		minutes = MinutesMax
	}

	return DisplayTime{
		Minutes:  int(minutes),
		Seconds:  int(total % 60),
		Negative: elapsedMs < 0,
	}
}
