// Package ui holds what every storesearch panel and popup shares: its
// frame and the geometry of the bordered result panels.
package ui

// Result panels are drawn inside a rounded border with a title line and a
// separator above the rows.
const (
	// PanelBorder is the width, and the height, taken by the border.
	PanelBorder = 2
	// PanelChrome is every row of a panel that is not content.
	PanelChrome = PanelBorder + 2
	// BodyTop is the panel row holding the first content line.
	BodyTop = PanelChrome - 1
	// RowMargin is how many results stay visible past the highlight.
	RowMargin = 5
)

// Frame is the size and focus of a component. Embed it to get the
// accessors the app calls on every panel and popup.
type Frame struct {
	width   int
	height  int
	focused bool
}

func (f *Frame) SetSize(width, height int) {
	f.width, f.height = width, height
}

func (f Frame) Width() int  { return f.width }
func (f Frame) Height() int { return f.height }

func (f *Frame) SetFocused(focused bool) {
	f.focused = focused
}

func (f Frame) IsFocused() bool { return f.focused }

// Body returns the content area of a result panel.
func (f Frame) Body() (width, height int) {
	return max(f.width-PanelBorder, 0), max(f.height-PanelChrome, 0)
}
