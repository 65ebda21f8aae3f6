package sheet

import (
	"github.com/katalvlaran/complexsolver/linear"
	"github.com/katalvlaran/complexsolver/notation"
)

// PageSize is the number of unknowns shown at once.
const PageSize = 2

// Entry is the display block of one unknown.
type Entry struct {
	Label  string // "X1:"
	Rect   string
	Polar  string
	Phasor string
}

// Result is a solved vector plus its scroll state.
type Result struct {
	X       linear.Vector
	entries []Entry
	top     int
	offset  int
}

func newResult(x linear.Vector, f notation.Formatter) *Result {
	entries := make([]Entry, len(x))
	for k, v := range x {
		entries[k] = Entry{
			Label:  UnknownLabel(k) + ":",
			Rect:   notation.Rectangular(v),
			Polar:  f.PolarRadians(v),
			Phasor: f.PhasorDegrees(v),
		}
	}

	return &Result{X: x, entries: entries}
}

// Entries returns every unscrolled entry.
func (r *Result) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Visible returns up to PageSize entries starting at the scroll position,
// with the horizontal offset applied to the value lines.
func (r *Result) Visible() []Entry {
	end := min(r.top+PageSize, len(r.entries))
	out := make([]Entry, 0, end-r.top)
	for _, e := range r.entries[r.top:end] {
		out = append(out, Entry{
			Label:  e.Label,
			Rect:   notation.Window(e.Rect, r.offset),
			Polar:  notation.Window(e.Polar, r.offset),
			Phasor: notation.Window(e.Phasor, r.offset),
		})
	}

	return out
}

// Top returns the index of the first visible unknown.
func (r *Result) Top() int { return r.top }

// Offset returns the horizontal scroll offset.
func (r *Result) Offset() int { return r.offset }

// ScrollDown shows the next unknown; the last unknown stays reachable.
func (r *Result) ScrollDown() {
	if r.top < len(r.entries)-1 {
		r.top++
	}
}

// ScrollUp shows the previous unknown.
func (r *Result) ScrollUp() {
	if r.top > 0 {
		r.top--
	}
}

// ScrollRight shifts the value lines one character left. There is no upper
// bound; past the end a line renders blank.
func (r *Result) ScrollRight() { r.offset++ }

// ScrollLeft undoes ScrollRight down to offset zero.
func (r *Result) ScrollLeft() {
	if r.offset > 0 {
		r.offset--
	}
}
