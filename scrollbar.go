package widgets

// ScrollbarEvent is fired when a scrollbar's position changes.
type ScrollbarEvent struct {
	Scrollbar Scrollbar
	Position  float32
}

// Scrollbar is the scrollbar collaborator used by list and editbox widgets.
//
// The document size is the full content extent, the page size is the visible
// extent, and the scroll position is the offset of the page into the
// document. Implementations clamp the position to [0, document-page].
type Scrollbar interface {
	Show()
	Hide()
	IsVisible() bool

	DocumentSize() float32
	SetDocumentSize(size float32)
	PageSize() float32
	SetPageSize(size float32)
	StepSize() float32
	SetStepSize(size float32)

	ScrollPosition() float32
	SetScrollPosition(pos float32)

	ScrollPositionChanged() *Event[ScrollbarEvent]
}

// ScrollbarModel is the default Scrollbar: pure state, no drawing.
type ScrollbarModel struct {
	visible  bool
	document float32
	page     float32
	step     float32
	position float32

	positionChanged Event[ScrollbarEvent]
}

// NewScrollbarModel creates a hidden scrollbar with a step size of 1.
func NewScrollbarModel() *ScrollbarModel {
	return &ScrollbarModel{step: 1}
}

func (s *ScrollbarModel) Show()           { s.visible = true }
func (s *ScrollbarModel) Hide()           { s.visible = false }
func (s *ScrollbarModel) IsVisible() bool { return s.visible }

func (s *ScrollbarModel) DocumentSize() float32        { return s.document }
func (s *ScrollbarModel) SetDocumentSize(size float32) { s.document = size }
func (s *ScrollbarModel) PageSize() float32            { return s.page }
func (s *ScrollbarModel) SetPageSize(size float32)     { s.page = size }
func (s *ScrollbarModel) StepSize() float32            { return s.step }
func (s *ScrollbarModel) SetStepSize(size float32)     { s.step = size }

// MaxScrollPosition returns the largest valid scroll position.
func (s *ScrollbarModel) MaxScrollPosition() float32 {
	return maxf(0, s.document-s.page)
}

// ScrollPosition returns the current offset.
func (s *ScrollbarModel) ScrollPosition() float32 { return s.position }

// SetScrollPosition clamps pos into range and fires ScrollPositionChanged
// when the stored value changes.
func (s *ScrollbarModel) SetScrollPosition(pos float32) {
	pos = clampf(pos, 0, s.MaxScrollPosition())
	if pos == s.position {
		return
	}
	s.position = pos
	s.positionChanged.Fire(ScrollbarEvent{Scrollbar: s, Position: pos})
}

// ScrollByStep moves the position by n steps (negative scrolls back).
func (s *ScrollbarModel) ScrollByStep(n int) {
	s.SetScrollPosition(s.position + float32(n)*s.step)
}

// ScrollByPage moves the position by n pages (negative scrolls back).
func (s *ScrollbarModel) ScrollByPage(n int) {
	s.SetScrollPosition(s.position + float32(n)*s.page)
}

// ScrollPositionChanged returns the position change event.
func (s *ScrollbarModel) ScrollPositionChanged() *Event[ScrollbarEvent] {
	return &s.positionChanged
}

// configureScrollbarPair decides scrollbar visibility for content of the
// given size and then updates both scrollbars' metrics.
//
// Visibility takes two passes because showing one scrollbar shrinks the
// render area and may make the other one necessary. area is consulted
// after every visibility change.
func configureScrollbarPair(vert, horz Scrollbar, contentH, contentW float32, forceVert, forceHorz bool, area func() Rect) {
	if contentH > area().H || forceVert {
		vert.Show()
		if contentW > area().W || forceHorz {
			horz.Show()
		} else {
			horz.Hide()
		}
	} else {
		if contentW > area().W || forceHorz {
			horz.Show()
			if contentH > area().H || forceVert {
				vert.Show()
			} else {
				vert.Hide()
			}
		} else {
			horz.Hide()
			vert.Hide()
		}
	}

	r := area()
	applyScrollbarMetrics(vert, contentH, r.H)
	applyScrollbarMetrics(horz, contentW, r.W)
}

// applyScrollbarMetrics sets document/page/step sizes and re-applies the
// current position so the scrollbar can clamp it to the new range.
func applyScrollbarMetrics(sb Scrollbar, document, page float32) {
	sb.SetDocumentSize(document)
	sb.SetPageSize(page)
	sb.SetStepSize(maxf(1, page/10))
	sb.SetScrollPosition(sb.ScrollPosition())
}
