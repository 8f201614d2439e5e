package widgets

import (
	"fmt"
	"sort"
)

// SortColumn returns the column the list is sorted by, -1 without columns.
func (l *MultiColumnList) SortColumn() int { return l.header.SortColumn() }

// SetSortColumn sorts the list by column col.
func (l *MultiColumnList) SetSortColumn(col int) error {
	if err := l.checkColumn(col); err != nil {
		return err
	}
	return l.header.SetSortColumn(col)
}

// SetSortColumnByID sorts the list by the column with the given id.
func (l *MultiColumnList) SetSortColumnByID(id uint) error {
	col, err := l.ColumnWithID(id)
	if err != nil {
		return err
	}
	return l.SetSortColumn(col)
}

// SortDirection returns the current sort direction.
func (l *MultiColumnList) SortDirection() SortDirection { return l.header.SortDirection() }

// SetSortDirection changes the sort direction. The list re-sorts through the
// header's notification.
func (l *MultiColumnList) SetSortDirection(dir SortDirection) {
	l.header.SetSortDirection(dir)
}

// ResortList re-orders rows by the sort column. Empty cells sort after any
// item in ascending order. Rows comparing equal keep their relative order.
// Does nothing when the sort direction is SortNone.
func (l *MultiColumnList) ResortList() {
	dir := l.SortDirection()
	if dir == SortNone || len(l.grid) < 2 {
		return
	}
	sort.SliceStable(l.grid, func(i, j int) bool {
		return compareRows(l.grid[i], l.grid[j], dir) < 0
	})
	if widgetVerbose() {
		gridLogger.Debug("list resorted", "column", l.SortColumn(), "direction", dir, "rows", len(l.grid))
	}
}

// refreshSortColumns copies the header's sort column into every row.
func (l *MultiColumnList) refreshSortColumns() {
	sc := l.header.SortColumn()
	for _, row := range l.grid {
		row.sortColumn = sc
	}
}

// IsVertScrollbarAlwaysShown reports whether the vertical scrollbar is
// forced visible.
func (l *MultiColumnList) IsVertScrollbarAlwaysShown() bool { return l.forceVert }

// IsHorzScrollbarAlwaysShown reports whether the horizontal scrollbar is
// forced visible.
func (l *MultiColumnList) IsHorzScrollbarAlwaysShown() bool { return l.forceHorz }

// SetShowVertScrollbar forces the vertical scrollbar visible, or lets
// content decide.
func (l *MultiColumnList) SetShowVertScrollbar(show bool) {
	if show == l.forceVert {
		return
	}
	l.forceVert = show
	l.ConfigureScrollbars()
	l.vertModeChanged.Fire(ListEvent{List: l})
}

// SetShowHorzScrollbar forces the horizontal scrollbar visible, or lets
// content decide.
func (l *MultiColumnList) SetShowHorzScrollbar(show bool) {
	if show == l.forceHorz {
		return
	}
	l.forceHorz = show
	l.ConfigureScrollbars()
	l.horzModeChanged.Fire(ListEvent{List: l})
}

// ListRenderArea returns the rectangle rows are drawn into.
func (l *MultiColumnList) ListRenderArea() (Rect, error) {
	if l.area == nil {
		return Rect{}, fmt.Errorf("list has no render area: %w", ErrUnsupported)
	}
	return l.area.ContentArea(), nil
}

// ConfigureScrollbars updates scrollbar visibility and metrics for the
// current content. Skipped without a render area.
func (l *MultiColumnList) ConfigureScrollbars() {
	if l.area == nil {
		return
	}
	vertWas, horzWas := l.vert.IsVisible(), l.horz.IsVisible()
	configureScrollbarPair(l.vert, l.horz, l.TotalRowsHeight(), l.TotalColumnHeadersWidth(),
		l.forceVert, l.forceHorz, l.area.ContentArea)

	if widgetVerbose() && (vertWas != l.vert.IsVisible() || horzWas != l.horz.IsVisible()) {
		gridLogger.Debug("scrollbar visibility", "vert", l.vert.IsVisible(), "horz", l.horz.IsVisible())
	}
}

// EnsureItemIsVisible scrolls so the cell holding item is visible.
func (l *MultiColumnList) EnsureItemIsVisible(item Item) error {
	ref, err := l.ItemGridReference(item)
	if err != nil {
		return err
	}
	if err := l.EnsureRowIsVisible(ref.Row); err != nil {
		return err
	}
	return l.EnsureColumnIsVisible(ref.Column)
}

// EnsureRowIsVisible scrolls vertically so row rowIdx is fully visible. An
// index past the last row scrolls to the bottom.
func (l *MultiColumnList) EnsureRowIsVisible(rowIdx int) error {
	if rowIdx < 0 {
		return fmt.Errorf("row %d: %w", rowIdx, ErrOutOfRange)
	}
	area, err := l.ListRenderArea()
	if err != nil {
		return err
	}

	sb := l.vert
	if rowIdx >= len(l.grid) {
		sb.SetScrollPosition(sb.DocumentSize() - sb.PageSize())
		return nil
	}

	var top float32
	for i := 0; i < rowIdx; i++ {
		top += l.rowHeight(l.grid[i])
	}
	bottom := top + l.rowHeight(l.grid[rowIdx])

	pos := sb.ScrollPosition()
	top -= pos
	bottom -= pos
	height := area.H

	switch {
	case top < 0 || bottom-top > height:
		sb.SetScrollPosition(pos + top)
	case bottom >= height:
		sb.SetScrollPosition(pos + bottom - height)
	}
	return nil
}

// EnsureColumnIsVisible scrolls horizontally so column col is fully
// visible. An index past the last column scrolls to the right end.
func (l *MultiColumnList) EnsureColumnIsVisible(col int) error {
	if col < 0 {
		return fmt.Errorf("column %d: %w", col, ErrOutOfRange)
	}
	area, err := l.ListRenderArea()
	if err != nil {
		return err
	}

	sb := l.horz
	if col >= l.ColumnCount() {
		sb.SetScrollPosition(sb.DocumentSize() - sb.PageSize())
		return nil
	}

	left, err := l.header.PixelOffsetToColumn(col)
	if err != nil {
		return err
	}
	w, err := l.header.ColumnWidth(col)
	if err != nil {
		return err
	}
	right := left + w

	pos := sb.ScrollPosition()
	left -= pos
	right -= pos
	width := area.W

	switch {
	case left < 0 || right-left > width:
		sb.SetScrollPosition(pos + left)
	case right >= width:
		sb.SetScrollPosition(pos + right - width)
	}
	return nil
}

// ItemAtPoint returns the item under pt (widget coordinates), or nil when
// pt is outside the render area or over an empty cell.
func (l *MultiColumnList) ItemAtPoint(pt Vec2) (Item, error) {
	ref, ok, err := l.GridRefAtPoint(pt)
	if err != nil || !ok {
		return nil, err
	}
	return l.grid[ref.Row].slots[ref.Column].item, nil
}

// GridRefAtPoint returns the cell under pt (widget coordinates).
func (l *MultiColumnList) GridRefAtPoint(pt Vec2) (GridRef, bool, error) {
	area, err := l.ListRenderArea()
	if err != nil {
		return GridRef{}, false, err
	}
	if !area.Contains(pt) {
		return GridRef{}, false, nil
	}

	y := area.Y - l.vert.ScrollPosition()
	for r, row := range l.grid {
		y += l.rowHeight(row)
		if pt.Y >= y {
			continue
		}
		x := area.X - l.horz.ScrollPosition()
		for c := 0; c < l.ColumnCount(); c++ {
			w, _ := l.header.ColumnWidth(c)
			x += w
			if pt.X < x {
				return GridRef{Row: r, Column: c}, true, nil
			}
		}
		return GridRef{}, false, nil
	}
	return GridRef{}, false, nil
}
