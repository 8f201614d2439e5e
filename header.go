package widgets

import "fmt"

// SortDirection is the ordering applied to a sorted column.
type SortDirection int

const (
	SortNone SortDirection = iota
	SortAscending
	SortDescending
)

// String returns the direction name.
func (d SortDirection) String() string {
	switch d {
	case SortAscending:
		return "Ascending"
	case SortDescending:
		return "Descending"
	default:
		return "None"
	}
}

// MinimumSegmentWidth is the narrowest a header segment can be sized.
const MinimumSegmentWidth float32 = 20

// SequenceChange describes a segment move from column Old to column New.
type SequenceChange struct {
	Old, New int
}

// HeaderEvent identifies the column a header notification is about.
// Column is -1 when no column applies (e.g. the sort segment was removed
// and no segments remain).
type HeaderEvent struct {
	Column int
}

// Header is the column-header collaborator of a MultiColumnList.
//
// The header owns column order, widths and sort settings; the list keeps its
// grid data in step by reacting to the header's events. In particular the
// list only reorders its grid in response to SegmentSequenceChanged, so
// visual order always changes first.
type Header interface {
	ColumnCount() int

	InsertColumn(text string, id uint, width float32, position int)
	RemoveColumn(col int) error
	MoveColumn(col, position int) error

	SegmentFromColumn(col int) (*HeaderSegment, error)
	ColumnFromSegment(seg *HeaderSegment) (int, error)
	SegmentFromID(id uint) (*HeaderSegment, error)
	ColumnWithText(text string) (int, error)

	ColumnWidth(col int) (float32, error)
	SetColumnWidth(col int, width float32) error
	TotalSegmentsExtent() float32
	PixelOffsetToColumn(col int) (float32, error)
	SegmentOffset() float32
	SetSegmentOffset(offset float32)

	SortColumn() int
	SetSortColumn(col int) error
	SortDirection() SortDirection
	SetSortDirection(dir SortDirection)

	SortingEnabled() bool
	SetSortingEnabled(enabled bool)
	SizingEnabled() bool
	SetSizingEnabled(enabled bool)
	DraggingEnabled() bool
	SetDraggingEnabled(enabled bool)

	SegmentSequenceChanged() *Event[SequenceChange]
	SortColumnChanged() *Event[HeaderEvent]
	SortDirectionChanged() *Event[HeaderEvent]
	SegmentSized() *Event[HeaderEvent]
	SegmentDoubleClicked() *Event[HeaderEvent]
}

// HeaderSegment is one column header.
type HeaderSegment struct {
	text          string
	id            uint
	width         float32
	sortDirection SortDirection
}

// Text returns the header caption.
func (s *HeaderSegment) Text() string { return s.text }

// ID returns the client-assigned column id.
func (s *HeaderSegment) ID() uint { return s.id }

// Width returns the segment width in pixels.
func (s *HeaderSegment) Width() float32 { return s.width }

// SortDirection returns the sort indicator shown on this segment.
// Only the sort segment ever shows something other than SortNone.
func (s *HeaderSegment) SortDirection() SortDirection { return s.sortDirection }

// ListHeader is the default Header implementation.
type ListHeader struct {
	segments    []*HeaderSegment
	sortSegment *HeaderSegment
	sortDir     SortDirection
	offset      float32

	sortingEnabled  bool
	sizingEnabled   bool
	draggingEnabled bool

	sequenceChanged Event[SequenceChange]
	sortColChanged  Event[HeaderEvent]
	sortDirChanged  Event[HeaderEvent]
	segmentSized    Event[HeaderEvent]
	segmentDblClick Event[HeaderEvent]
	segmentAdded    Event[HeaderEvent]
	segmentRemoved  Event[HeaderEvent]
	offsetChanged   Event[HeaderEvent]
	settingsChanged Event[HeaderEvent]
}

// NewListHeader creates an empty header with sorting, sizing and dragging
// enabled.
func NewListHeader() *ListHeader {
	return &ListHeader{
		sortingEnabled:  true,
		sizingEnabled:   true,
		draggingEnabled: true,
	}
}

// ColumnCount returns the number of segments.
func (h *ListHeader) ColumnCount() int {
	return len(h.segments)
}

func (h *ListHeader) checkColumn(col int) error {
	if col < 0 || col >= len(h.segments) {
		return fmt.Errorf("header column %d of %d: %w", col, len(h.segments), ErrOutOfRange)
	}
	return nil
}

// InsertColumn adds a segment at position (clamped to [0, count]).
// The first segment added becomes the sort segment.
func (h *ListHeader) InsertColumn(text string, id uint, width float32, position int) {
	position = clampi(position, 0, len(h.segments))
	seg := &HeaderSegment{text: text, id: id, width: maxf(width, MinimumSegmentWidth)}

	h.segments = append(h.segments, nil)
	copy(h.segments[position+1:], h.segments[position:])
	h.segments[position] = seg

	h.segmentAdded.Fire(HeaderEvent{Column: position})

	if h.sortSegment == nil {
		_ = h.SetSortColumn(position)
	}
}

// RemoveColumn removes the segment at col. If it was the sort segment the
// first remaining segment takes over.
func (h *ListHeader) RemoveColumn(col int) error {
	if err := h.checkColumn(col); err != nil {
		return err
	}

	seg := h.segments[col]
	h.segments = append(h.segments[:col], h.segments[col+1:]...)
	h.segmentRemoved.Fire(HeaderEvent{Column: col})

	if seg == h.sortSegment {
		h.sortSegment = nil
		if len(h.segments) > 0 {
			_ = h.SetSortColumn(0)
		} else {
			h.sortColChanged.Fire(HeaderEvent{Column: -1})
		}
	}
	return nil
}

// MoveColumn moves the segment at col so it ends up at position.
// position is clamped to the last column.
func (h *ListHeader) MoveColumn(col, position int) error {
	if err := h.checkColumn(col); err != nil {
		return err
	}
	position = clampi(position, 0, len(h.segments)-1)

	seg := h.segments[col]
	h.segments = append(h.segments[:col], h.segments[col+1:]...)
	h.segments = append(h.segments, nil)
	copy(h.segments[position+1:], h.segments[position:])
	h.segments[position] = seg

	h.sequenceChanged.Fire(SequenceChange{Old: col, New: position})
	return nil
}

// DragColumn is the user-gesture form of MoveColumn: it does nothing when
// dragging is disabled.
func (h *ListHeader) DragColumn(col, position int) error {
	if !h.draggingEnabled {
		return nil
	}
	return h.MoveColumn(col, position)
}

// SegmentFromColumn returns the segment at col.
func (h *ListHeader) SegmentFromColumn(col int) (*HeaderSegment, error) {
	if err := h.checkColumn(col); err != nil {
		return nil, err
	}
	return h.segments[col], nil
}

// ColumnFromSegment returns the column index of seg.
func (h *ListHeader) ColumnFromSegment(seg *HeaderSegment) (int, error) {
	for i, s := range h.segments {
		if s == seg {
			return i, nil
		}
	}
	return 0, fmt.Errorf("segment is not attached to this header: %w", ErrInvalidReference)
}

// SegmentFromID returns the first segment with the given id.
// Ids are not required to be unique.
func (h *ListHeader) SegmentFromID(id uint) (*HeaderSegment, error) {
	for _, s := range h.segments {
		if s.id == id {
			return s, nil
		}
	}
	return nil, fmt.Errorf("no header segment with id %d: %w", id, ErrInvalidReference)
}

// ColumnWithText returns the first column whose caption equals text.
func (h *ListHeader) ColumnWithText(text string) (int, error) {
	for i, s := range h.segments {
		if s.text == text {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no header segment with text %q: %w", text, ErrInvalidReference)
}

// ColumnWidth returns the width of column col.
func (h *ListHeader) ColumnWidth(col int) (float32, error) {
	if err := h.checkColumn(col); err != nil {
		return 0, err
	}
	return h.segments[col].width, nil
}

// SetColumnWidth resizes column col (never below MinimumSegmentWidth).
func (h *ListHeader) SetColumnWidth(col int, width float32) error {
	if err := h.checkColumn(col); err != nil {
		return err
	}
	width = maxf(width, MinimumSegmentWidth)
	seg := h.segments[col]
	if seg.width == width {
		return nil
	}
	seg.width = width
	h.segmentSized.Fire(HeaderEvent{Column: col})
	return nil
}

// TotalSegmentsExtent returns the summed width of all segments.
func (h *ListHeader) TotalSegmentsExtent() float32 {
	var total float32
	for _, s := range h.segments {
		total += s.width
	}
	return total
}

// PixelOffsetToColumn returns the x offset of column col from the first
// segment's left edge, ignoring the segment offset.
func (h *ListHeader) PixelOffsetToColumn(col int) (float32, error) {
	if err := h.checkColumn(col); err != nil {
		return 0, err
	}
	var x float32
	for i := 0; i < col; i++ {
		x += h.segments[i].width
	}
	return x, nil
}

// SegmentOffset returns the horizontal scroll offset of the segments.
func (h *ListHeader) SegmentOffset() float32 { return h.offset }

// SetSegmentOffset scrolls the segments horizontally.
func (h *ListHeader) SetSegmentOffset(offset float32) {
	if offset == h.offset {
		return
	}
	h.offset = offset
	h.offsetChanged.Fire(HeaderEvent{Column: -1})
}

// SortColumn returns the sort column, or -1 when there are no columns.
func (h *ListHeader) SortColumn() int {
	if h.sortSegment == nil {
		return -1
	}
	col, err := h.ColumnFromSegment(h.sortSegment)
	if err != nil {
		return -1
	}
	return col
}

// SetSortColumn makes col the sort column.
func (h *ListHeader) SetSortColumn(col int) error {
	if err := h.checkColumn(col); err != nil {
		return err
	}
	seg := h.segments[col]
	if seg == h.sortSegment {
		return nil
	}
	if h.sortSegment != nil {
		h.sortSegment.sortDirection = SortNone
	}
	h.sortSegment = seg
	seg.sortDirection = h.sortDir
	h.sortColChanged.Fire(HeaderEvent{Column: col})
	return nil
}

// SortDirection returns the current sort direction.
func (h *ListHeader) SortDirection() SortDirection { return h.sortDir }

// SetSortDirection changes the sort direction.
func (h *ListHeader) SetSortDirection(dir SortDirection) {
	if dir == h.sortDir {
		return
	}
	h.sortDir = dir
	if h.sortSegment != nil {
		h.sortSegment.sortDirection = dir
	}
	h.sortDirChanged.Fire(HeaderEvent{Column: h.SortColumn()})
}

// ClickColumn applies a user click on a segment: a new column becomes the
// sort column sorted descending, the current one flips its direction.
// Nothing happens when sorting is disabled.
func (h *ListHeader) ClickColumn(col int) error {
	if err := h.checkColumn(col); err != nil {
		return err
	}
	if !h.sortingEnabled {
		return nil
	}

	if h.segments[col] != h.sortSegment {
		if err := h.SetSortColumn(col); err != nil {
			return err
		}
		h.SetSortDirection(SortDescending)
		return nil
	}

	switch h.sortDir {
	case SortDescending:
		h.SetSortDirection(SortAscending)
	default:
		h.SetSortDirection(SortDescending)
	}
	return nil
}

// DoubleClickSplitter reports a double click on the sizing splitter of col.
// Listeners typically auto-size the column. Ignored when sizing is disabled.
func (h *ListHeader) DoubleClickSplitter(col int) error {
	if err := h.checkColumn(col); err != nil {
		return err
	}
	if h.sizingEnabled {
		h.segmentDblClick.Fire(HeaderEvent{Column: col})
	}
	return nil
}

func (h *ListHeader) SortingEnabled() bool  { return h.sortingEnabled }
func (h *ListHeader) SizingEnabled() bool   { return h.sizingEnabled }
func (h *ListHeader) DraggingEnabled() bool { return h.draggingEnabled }

// SetSortingEnabled controls whether clicks change the sort.
func (h *ListHeader) SetSortingEnabled(enabled bool) {
	if h.sortingEnabled != enabled {
		h.sortingEnabled = enabled
		h.settingsChanged.Fire(HeaderEvent{Column: -1})
	}
}

// SetSizingEnabled controls whether the user may resize segments.
func (h *ListHeader) SetSizingEnabled(enabled bool) {
	if h.sizingEnabled != enabled {
		h.sizingEnabled = enabled
		h.settingsChanged.Fire(HeaderEvent{Column: -1})
	}
}

// SetDraggingEnabled controls whether the user may drag segments around.
func (h *ListHeader) SetDraggingEnabled(enabled bool) {
	if h.draggingEnabled != enabled {
		h.draggingEnabled = enabled
		h.settingsChanged.Fire(HeaderEvent{Column: -1})
	}
}

func (h *ListHeader) SegmentSequenceChanged() *Event[SequenceChange] { return &h.sequenceChanged }
func (h *ListHeader) SortColumnChanged() *Event[HeaderEvent]         { return &h.sortColChanged }
func (h *ListHeader) SortDirectionChanged() *Event[HeaderEvent]      { return &h.sortDirChanged }
func (h *ListHeader) SegmentSized() *Event[HeaderEvent]              { return &h.segmentSized }
func (h *ListHeader) SegmentDoubleClicked() *Event[HeaderEvent]      { return &h.segmentDblClick }
func (h *ListHeader) SegmentAdded() *Event[HeaderEvent]              { return &h.segmentAdded }
func (h *ListHeader) SegmentRemoved() *Event[HeaderEvent]            { return &h.segmentRemoved }
func (h *ListHeader) SegmentOffsetChanged() *Event[HeaderEvent]      { return &h.offsetChanged }
func (h *ListHeader) SettingsChanged() *Event[HeaderEvent]           { return &h.settingsChanged }
