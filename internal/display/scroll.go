// internal/display/scroll.go
package display

// separator inserted between the end of a scrolling title and its
// wrapped-around start.
const separator = "   "

// Scroller holds the scroll state for the title row. A title longer
// than Width scrolls one character per tick through a virtual buffer
// of title+separator+title; shorter titles render statically.
//
// Scroller is not safe for concurrent use; the engine owns it on a
// single goroutine.
type Scroller struct {
	title  []rune
	cursor int
}

// SetTitle replaces the current title. The cursor resets to 0 only
// when the new title differs from the one currently displayed.
// Reports whether the displayed title changed.
func (s *Scroller) SetTitle(title string) bool {
	if title == string(s.title) {
		return false
	}
	s.title = []rune(title)
	s.cursor = 0
	return true
}

// Title returns the currently displayed title.
func (s *Scroller) Title() string {
	return string(s.title)
}

// Cursor returns the current scroll position.
func (s *Scroller) Cursor() int {
	return s.cursor
}

// Window renders the visible Width-character slice at the current
// cursor, left-justified and space-padded for static titles.
func (s *Scroller) Window() string {
	if len(s.title) <= Width {
		return PadRow(string(s.title))
	}

	buf := make([]rune, 0, 2*len(s.title)+len(separator))
	buf = append(buf, s.title...)
	buf = append(buf, []rune(separator)...)
	buf = append(buf, s.title...)

	return string(buf[s.cursor : s.cursor+Width])
}

// Tick advances the scroll by one position and returns the new
// window. For static titles the cursor stays at 0 and moved is
// false, so callers can skip the redundant redraw.
func (s *Scroller) Tick() (line string, moved bool) {
	if len(s.title) <= Width {
		s.cursor = 0
		return s.Window(), false
	}

	s.cursor++
	if s.cursor > len(s.title)+len(separator) {
		s.cursor = 0
	}

	return s.Window(), true
}
