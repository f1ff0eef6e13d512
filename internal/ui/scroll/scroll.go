// Package scroll tracks the highlighted row of a result panel and the
// window of rows drawn around it.
package scroll

// Window is a highlighted row plus the index of the first row drawn.
// Row counts and heights are passed in on each call because the result
// set and the terminal both change under it.
type Window struct {
	row    int
	top    int
	margin int
}

// New returns a window that keeps margin rows of context around the
// highlighted row when it can.
func New(margin int) Window {
	return Window{margin: margin}
}

// Row is the highlighted row.
func (w Window) Row() int { return w.row }

// Top is the first row drawn.
func (w Window) Top() int { return w.top }

// Reset highlights the first row.
func (w *Window) Reset() {
	w.row, w.top = 0, 0
}

// Jump highlights row, clamped to [0, rows), and scrolls it into view.
func (w *Window) Jump(row, rows, height int) {
	if rows <= 0 {
		w.Reset()
		return
	}
	w.row = min(max(row, 0), rows-1)
	w.follow(rows, height)
}

// Step moves the highlight by delta rows.
func (w *Window) Step(delta, rows, height int) {
	w.Jump(w.row+delta, rows, height)
}

// Fit clamps the highlight after the row count changed.
func (w *Window) Fit(rows, height int) {
	w.Jump(w.row, rows, height)
}

// Span returns the rows drawn, as [from, to).
func (w Window) Span(rows, height int) (from, to int) {
	if rows <= 0 || height <= 0 {
		return 0, 0
	}
	return w.top, min(w.top+height, rows)
}

func (w *Window) follow(rows, height int) {
	if height <= 0 {
		return
	}
	margin := min(w.margin, (height-1)/2)
	if w.row-margin < w.top {
		w.top = w.row - margin
	}
	if w.row+margin >= w.top+height {
		w.top = w.row + margin - height + 1
	}
	w.top = min(max(w.top, 0), max(rows-height, 0))
}
