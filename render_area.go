package widgets

// AreaProvider is the render-area collaborator: it reports the rectangle,
// relative to the widget, into which content (rows, text lines) is drawn.
// The area may depend on which scrollbars are currently visible.
type AreaProvider interface {
	ContentArea() Rect
}

// AreaFunc adapts a function to AreaProvider.
type AreaFunc func() Rect

// ContentArea calls f.
func (f AreaFunc) ContentArea() Rect { return f() }

// FrameArea is the default AreaProvider: a fixed outer frame with an
// optional header strip along the top and scrollbars along the right and
// bottom edges. Hidden scrollbars take no space.
type FrameArea struct {
	Frame         Rect
	HeaderHeight  float32
	ScrollbarSize float32
	Vert, Horz    Scrollbar
}

// NewFrameArea creates a FrameArea.
func NewFrameArea(frame Rect, headerHeight, scrollbarSize float32, vert, horz Scrollbar) *FrameArea {
	return &FrameArea{
		Frame:         frame,
		HeaderHeight:  headerHeight,
		ScrollbarSize: scrollbarSize,
		Vert:          vert,
		Horz:          horz,
	}
}

// ContentArea returns the frame minus header and visible scrollbars.
func (a *FrameArea) ContentArea() Rect {
	r := Rect{
		X: a.Frame.X,
		Y: a.Frame.Y + a.HeaderHeight,
		W: a.Frame.W,
		H: maxf(0, a.Frame.H-a.HeaderHeight),
	}

	var right, bottom float32
	if a.Vert != nil && a.Vert.IsVisible() {
		right = a.ScrollbarSize
	}
	if a.Horz != nil && a.Horz.IsVisible() {
		bottom = a.ScrollbarSize
	}
	return r.Shrink(right, bottom)
}
