// internal/display/display.go
package display

// Width is the character width of the local display.
const Width = 16

// Fixed row assignments. The two rows are disjoint by design:
// the title and the status/time line never contend for cells.
const (
	RowTitle  = 0
	RowStatus = 1
)

// Device is a two-row fixed-width character display.
// Implementations receive lines already padded to Width.
type Device interface {
	WriteRow(row int, text string) error
}
