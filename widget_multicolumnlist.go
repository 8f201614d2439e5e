package widgets

import "fmt"

// ListEvent is the payload of list-wide notifications.
type ListEvent struct {
	List *MultiColumnList
}

// ColumnEvent is the payload of notifications about one column.
type ColumnEvent struct {
	List   *MultiColumnList
	Column int
}

// ColumnMoveEvent is fired after a column changed position.
type ColumnMoveEvent struct {
	List     *MultiColumnList
	Old, New int
}

// MultiColumnList is a grid of items under a sortable, reorderable header.
//
// The list owns a grid of Slots (one per column in every row), per-row ids,
// and selection state driven by a SelectionMode. Column order, widths and
// sorting live in the Header; the list mirrors header changes into the grid
// through the header's events.
//
// A MultiColumnList is not safe for concurrent use. Event listeners must not
// call back into the list that is firing.
type MultiColumnList struct {
	header Header
	vert   Scrollbar
	horz   Scrollbar
	area   AreaProvider

	grid []*gridRow

	mode         SelectionMode
	rules        selectionRules
	nominatedCol int
	nominatedRow int
	lastSelected Item

	forceVert bool
	forceHorz bool

	conns []Connection

	selectionChanged     Event[ListEvent]
	contentsChanged      Event[ListEvent]
	sortColumnChanged    Event[ColumnEvent]
	sortDirectionChanged Event[ListEvent]
	columnSized          Event[ColumnEvent]
	columnMoved          Event[ColumnMoveEvent]
	selectionModeChanged Event[ListEvent]
	nominatedColChanged  Event[ListEvent]
	nominatedRowChanged  Event[ListEvent]
	vertModeChanged      Event[ListEvent]
	horzModeChanged      Event[ListEvent]
}

// NewMultiColumnList creates an empty list.
//
// Without options the list gets a fresh ListHeader, two ScrollbarModels,
// RowSingle selection, no sorting and no render area (scrollbar layout and
// hit testing then report ErrUnsupported).
func NewMultiColumnList(opts ...Option) *MultiColumnList {
	o := applyOptions(opts)

	l := &MultiColumnList{
		header:    GetOpt(o, OptHeader),
		vert:      GetOpt(o, OptVertScrollbar),
		horz:      GetOpt(o, OptHorzScrollbar),
		area:      GetOpt(o, OptRenderArea),
		forceVert: GetOpt(o, OptForceVertScrollbar),
		forceHorz: GetOpt(o, OptForceHorzScrollbar),
	}
	if l.header == nil {
		l.header = NewListHeader()
	}
	if l.vert == nil {
		l.vert = NewScrollbarModel()
	}
	if l.horz == nil {
		l.horz = NewScrollbarModel()
	}

	l.mode = GetOpt(o, OptSelectionMode)
	l.rules = l.mode.rules()

	l.conns = append(l.conns,
		l.header.SegmentSequenceChanged().Subscribe(l.onHeaderSequenceChanged),
		l.header.SortColumnChanged().Subscribe(l.onHeaderSortColumnChanged),
		l.header.SortDirectionChanged().Subscribe(l.onHeaderSortDirectionChanged),
		l.header.SegmentSized().Subscribe(l.onHeaderSegmentSized),
		l.header.SegmentDoubleClicked().Subscribe(l.onHeaderSegmentDoubleClicked),
		l.horz.ScrollPositionChanged().Subscribe(func(e ScrollbarEvent) {
			l.header.SetSegmentOffset(e.Position)
		}),
	)

	if dir := GetOpt(o, OptSortDirection); dir != SortNone {
		l.header.SetSortDirection(dir)
	}
	return l
}

// Close empties the list (disposing auto-deleted items) and detaches it from
// its header and scrollbars.
func (l *MultiColumnList) Close() {
	l.resetList()
	for _, c := range l.conns {
		c.Disconnect()
	}
	l.conns = nil
}

// Header returns the header collaborator.
func (l *MultiColumnList) Header() Header { return l.header }

// VertScrollbar returns the vertical scrollbar.
func (l *MultiColumnList) VertScrollbar() Scrollbar { return l.vert }

// HorzScrollbar returns the horizontal scrollbar.
func (l *MultiColumnList) HorzScrollbar() Scrollbar { return l.horz }

// SetRenderArea sets the render-area collaborator and re-lays out scrollbars.
func (l *MultiColumnList) SetRenderArea(area AreaProvider) {
	l.area = area
	l.ConfigureScrollbars()
}

// ColumnCount returns the number of columns.
func (l *MultiColumnList) ColumnCount() int {
	return l.header.ColumnCount()
}

// RowCount returns the number of rows.
func (l *MultiColumnList) RowCount() int {
	return len(l.grid)
}

func (l *MultiColumnList) checkColumn(col int) error {
	if col < 0 || col >= l.ColumnCount() {
		return fmt.Errorf("column %d of %d: %w", col, l.ColumnCount(), ErrOutOfRange)
	}
	return nil
}

func (l *MultiColumnList) checkRow(row int) error {
	if row < 0 || row >= len(l.grid) {
		return fmt.Errorf("row %d of %d: %w", row, len(l.grid), ErrOutOfRange)
	}
	return nil
}

func (l *MultiColumnList) checkRef(ref GridRef) error {
	if err := l.checkColumn(ref.Column); err != nil {
		return fmt.Errorf("grid reference %v: %w", ref, err)
	}
	if err := l.checkRow(ref.Row); err != nil {
		return fmt.Errorf("grid reference %v: %w", ref, err)
	}
	return nil
}

// AddColumn appends a column.
func (l *MultiColumnList) AddColumn(text string, id uint, width float32) {
	l.InsertColumn(text, id, width, l.ColumnCount())
}

// InsertColumn inserts a column at position, clamped to [0, ColumnCount].
// Every existing row gets an empty slot for the new column. Column ids are
// not checked for uniqueness.
func (l *MultiColumnList) InsertColumn(text string, id uint, width float32, position int) {
	position = clampi(position, 0, l.ColumnCount())

	// Rows first: the header may fire a sort-column change while inserting,
	// and the handler expects rows to match the header's column count.
	for _, row := range l.grid {
		row.insertSlot(position)
	}
	l.header.InsertColumn(text, id, width, position)

	if l.nominatedCol >= position && l.ColumnCount() > 1 {
		l.nominatedCol++
	}
	l.refreshSortColumns()

	gridLogger.Debug("column inserted", "text", text, "id", id, "position", position, "columns", l.ColumnCount())

	l.ConfigureScrollbars()
	l.contentsChanged.Fire(ListEvent{List: l})
}

// RemoveColumn removes column col from the grid and the header. Items in the
// column are released: auto-deleted items are disposed, others are handed
// back to the caller.
func (l *MultiColumnList) RemoveColumn(col int) error {
	if err := l.checkColumn(col); err != nil {
		return err
	}

	switch {
	case l.nominatedCol == col:
		l.nominatedCol = 0
	case l.nominatedCol > col:
		l.nominatedCol--
	}
	for _, row := range l.grid {
		item := row.removeSlot(col)
		l.forget(item)
		release(item)
	}
	if err := l.header.RemoveColumn(col); err != nil {
		return err
	}
	l.refreshSortColumns()

	gridLogger.Debug("column removed", "column", col, "columns", l.ColumnCount())

	l.ConfigureScrollbars()
	l.contentsChanged.Fire(ListEvent{List: l})
	return nil
}

// RemoveColumnWithID removes the first column with the given id.
func (l *MultiColumnList) RemoveColumnWithID(id uint) error {
	col, err := l.ColumnWithID(id)
	if err != nil {
		return err
	}
	return l.RemoveColumn(col)
}

// MoveColumn moves column col to position. The header moves its segment and
// the grid follows through the header's sequence notification.
func (l *MultiColumnList) MoveColumn(col, position int) error {
	if err := l.checkColumn(col); err != nil {
		return err
	}
	return l.header.MoveColumn(col, position)
}

// MoveColumnWithID moves the first column with the given id to position.
func (l *MultiColumnList) MoveColumnWithID(id uint, position int) error {
	col, err := l.ColumnWithID(id)
	if err != nil {
		return err
	}
	return l.MoveColumn(col, position)
}

// moveColumnImpl reorders the grid slots after the header moved a segment.
func (l *MultiColumnList) moveColumnImpl(col, position int) {
	count := l.ColumnCount()
	if col < 0 || col >= count {
		return
	}
	position = clampi(position, 0, count-1)
	if col == position {
		return
	}

	switch {
	case l.nominatedCol == col:
		l.nominatedCol = position
	case col < l.nominatedCol && position >= l.nominatedCol:
		l.nominatedCol--
	case col > l.nominatedCol && position <= l.nominatedCol:
		l.nominatedCol++
	}

	for _, row := range l.grid {
		row.moveSlot(col, position)
	}
}

// ColumnWithID returns the index of the first column with the given id.
func (l *MultiColumnList) ColumnWithID(id uint) (int, error) {
	seg, err := l.header.SegmentFromID(id)
	if err != nil {
		return 0, err
	}
	return l.header.ColumnFromSegment(seg)
}

// ColumnWithHeaderText returns the index of the first column captioned text.
func (l *MultiColumnList) ColumnWithHeaderText(text string) (int, error) {
	return l.header.ColumnWithText(text)
}

// ColumnID returns the id of column col.
func (l *MultiColumnList) ColumnID(col int) (uint, error) {
	seg, err := l.header.SegmentFromColumn(col)
	if err != nil {
		return 0, err
	}
	return seg.ID(), nil
}

// HeaderSegmentForColumn returns the header segment of column col.
func (l *MultiColumnList) HeaderSegmentForColumn(col int) (*HeaderSegment, error) {
	return l.header.SegmentFromColumn(col)
}

// ColumnFromSegment returns the column shown by seg. Segments of another
// header give ErrInvalidReference.
func (l *MultiColumnList) ColumnFromSegment(seg *HeaderSegment) (int, error) {
	return l.header.ColumnFromSegment(seg)
}

// TotalColumnHeadersWidth returns the summed width of all columns.
func (l *MultiColumnList) TotalColumnHeadersWidth() float32 {
	return l.header.TotalSegmentsExtent()
}

// ColumnHeaderWidth returns the width of column col.
func (l *MultiColumnList) ColumnHeaderWidth(col int) (float32, error) {
	return l.header.ColumnWidth(col)
}

// SetColumnHeaderWidth resizes column col.
func (l *MultiColumnList) SetColumnHeaderWidth(col int, width float32) error {
	return l.header.SetColumnWidth(col, width)
}

// AutoSizeColumnHeader sizes column col to its widest item.
func (l *MultiColumnList) AutoSizeColumnHeader(col int) error {
	widest, err := l.WidestColumnItemWidth(col)
	if err != nil {
		return err
	}
	return l.header.SetColumnWidth(col, maxf(widest, MinimumSegmentWidth))
}

// WidestColumnItemWidth returns the widest item pixel width in column col.
func (l *MultiColumnList) WidestColumnItemWidth(col int) (float32, error) {
	if err := l.checkColumn(col); err != nil {
		return 0, err
	}
	var widest float32
	for _, row := range l.grid {
		if item := row.slots[col].item; item != nil {
			widest = maxf(widest, item.PixelSize().W)
		}
	}
	return widest, nil
}

// SetUserSortControlEnabled lets header clicks change the sort.
func (l *MultiColumnList) SetUserSortControlEnabled(enabled bool) {
	l.header.SetSortingEnabled(enabled)
}

// SetUserColumnSizingEnabled lets the user resize columns.
func (l *MultiColumnList) SetUserColumnSizingEnabled(enabled bool) {
	l.header.SetSizingEnabled(enabled)
}

// SetUserColumnDraggingEnabled lets the user drag columns around.
func (l *MultiColumnList) SetUserColumnDraggingEnabled(enabled bool) {
	l.header.SetDraggingEnabled(enabled)
}

func (l *MultiColumnList) IsUserSortControlEnabled() bool    { return l.header.SortingEnabled() }
func (l *MultiColumnList) IsUserColumnSizingEnabled() bool   { return l.header.SizingEnabled() }
func (l *MultiColumnList) IsUserColumnDraggingEnabled() bool { return l.header.DraggingEnabled() }

// Header event handlers.

func (l *MultiColumnList) onHeaderSequenceChanged(e SequenceChange) {
	l.moveColumnImpl(e.Old, e.New)
	l.refreshSortColumns()
	gridLogger.Debug("column moved", "from", e.Old, "to", e.New)
	l.columnMoved.Fire(ColumnMoveEvent{List: l, Old: e.Old, New: e.New})
}

func (l *MultiColumnList) onHeaderSortColumnChanged(e HeaderEvent) {
	l.refreshSortColumns()
	l.ResortList()
	l.sortColumnChanged.Fire(ColumnEvent{List: l, Column: e.Column})
}

func (l *MultiColumnList) onHeaderSortDirectionChanged(HeaderEvent) {
	l.ResortList()
	l.sortDirectionChanged.Fire(ListEvent{List: l})
}

func (l *MultiColumnList) onHeaderSegmentSized(e HeaderEvent) {
	l.ConfigureScrollbars()
	l.columnSized.Fire(ColumnEvent{List: l, Column: e.Column})
}

func (l *MultiColumnList) onHeaderSegmentDoubleClicked(e HeaderEvent) {
	_ = l.AutoSizeColumnHeader(e.Column)
}

// Event accessors.

func (l *MultiColumnList) SelectionChanged() *Event[ListEvent]       { return &l.selectionChanged }
func (l *MultiColumnList) ContentsChanged() *Event[ListEvent]        { return &l.contentsChanged }
func (l *MultiColumnList) SortColumnChanged() *Event[ColumnEvent]    { return &l.sortColumnChanged }
func (l *MultiColumnList) SortDirectionChanged() *Event[ListEvent]   { return &l.sortDirectionChanged }
func (l *MultiColumnList) ColumnSized() *Event[ColumnEvent]          { return &l.columnSized }
func (l *MultiColumnList) ColumnMoved() *Event[ColumnMoveEvent]      { return &l.columnMoved }
func (l *MultiColumnList) SelectionModeChanged() *Event[ListEvent]   { return &l.selectionModeChanged }
func (l *MultiColumnList) NominatedSelectColumnChanged() *Event[ListEvent] {
	return &l.nominatedColChanged
}
func (l *MultiColumnList) NominatedSelectRowChanged() *Event[ListEvent] { return &l.nominatedRowChanged }
func (l *MultiColumnList) VertScrollbarModeChanged() *Event[ListEvent]  { return &l.vertModeChanged }
func (l *MultiColumnList) HorzScrollbarModeChanged() *Event[ListEvent]  { return &l.horzModeChanged }
