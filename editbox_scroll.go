package widgets

import "fmt"

// TextRenderArea returns the rectangle text is drawn into.
func (e *MultiLineEditbox) TextRenderArea() (Rect, error) {
	if e.area == nil {
		return Rect{}, fmt.Errorf("editbox has no render area: %w", ErrUnsupported)
	}
	return e.area.ContentArea(), nil
}

// IsVertScrollbarAlwaysShown reports whether the vertical scrollbar is
// forced visible.
func (e *MultiLineEditbox) IsVertScrollbarAlwaysShown() bool { return e.forceVert }

// IsHorzScrollbarAlwaysShown reports whether the horizontal scrollbar is
// forced visible.
func (e *MultiLineEditbox) IsHorzScrollbarAlwaysShown() bool { return e.forceHorz }

// SetShowVertScrollbar forces the vertical scrollbar visible, or lets
// content decide.
func (e *MultiLineEditbox) SetShowVertScrollbar(show bool) {
	if show == e.forceVert {
		return
	}
	e.forceVert = show
	e.formatText(true)
	e.vertModeChanged.Fire(EditboxEvent{Editbox: e})
}

// SetShowHorzScrollbar forces the horizontal scrollbar visible, or lets
// content decide.
func (e *MultiLineEditbox) SetShowHorzScrollbar(show bool) {
	if show == e.forceHorz {
		return
	}
	e.forceHorz = show
	e.formatText(true)
	e.horzModeChanged.Fire(EditboxEvent{Editbox: e})
}

// ConfigureScrollbars updates scrollbar visibility and metrics for the
// current line table. Skipped without a render area.
func (e *MultiLineEditbox) ConfigureScrollbars() {
	if e.area == nil {
		return
	}
	clip := NewLineClipper(len(e.lines), e.font.LineSpacing(), 0, 0)
	configureScrollbarPair(e.vert, e.horz, clip.ContentHeight(), e.widest, e.forceVert, e.forceHorz, e.area.ContentArea)
}

// EnsureCaretIsVisible scrolls so the caret's line and column are inside
// the render area. Does nothing without a render area.
func (e *MultiLineEditbox) EnsureCaretIsVisible() {
	area, err := e.TextRenderArea()
	if err != nil || len(e.lines) == 0 {
		return
	}

	line := e.LineNumberFromIndex(e.caret)
	ln := e.lines[line]
	end := clampi(e.caret, ln.Start, len(e.text))

	clip := NewLineClipper(len(e.lines), e.font.LineSpacing(), area.H, e.vert.ScrollPosition())
	e.vert.SetScrollPosition(clip.ScrollTo(line, e.vert.ScrollPosition(), area.H))

	x := e.font.TextExtent(string(e.text[ln.Start:end])) - e.horz.ScrollPosition()

	switch {
	case x < 0:
		e.horz.SetScrollPosition(e.horz.ScrollPosition() + x)
	case x > area.W:
		e.horz.SetScrollPosition(e.horz.ScrollPosition() + x - area.W)
	}
}

// VisibleLines returns the range of formatted lines inside the render area
// at the current vertical scroll position.
func (e *MultiLineEditbox) VisibleLines() (LineClipper, error) {
	area, err := e.TextRenderArea()
	if err != nil {
		return LineClipper{}, err
	}
	return NewLineClipper(len(e.lines), e.font.LineSpacing(), area.H, e.vert.ScrollPosition()), nil
}
