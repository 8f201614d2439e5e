package widgets

import (
	"fmt"
	"sort"
)

// AddRow appends an empty row, or inserts it at its sorted position when the
// list is sorted, and returns the row's index.
func (l *MultiColumnList) AddRow(rowID uint) int {
	idx, _ := l.AddRowWithItem(nil, 0, rowID)
	return idx
}

// AddRowWithItem adds a row whose column columnID is initialised to item.
// With a nil item columnID is ignored. The row is appended, or placed at its
// sorted position when a sort direction is set.
func (l *MultiColumnList) AddRowWithItem(item Item, columnID uint, rowID uint) (int, error) {
	row, col, err := l.newRow(item, columnID, rowID)
	if err != nil {
		return 0, err
	}

	var idx int
	if l.SortDirection() != SortNone {
		idx = l.sortedPosition(row)
	} else {
		idx = len(l.grid)
	}
	l.placeRow(row, idx, item, col)
	return idx, nil
}

// InsertRow inserts an empty row at rowIdx (clamped to [0, RowCount]). On a
// sorted list the position is ignored and the row goes where it sorts.
func (l *MultiColumnList) InsertRow(rowIdx int, rowID uint) int {
	idx, _ := l.InsertRowWithItem(nil, 0, rowIdx, rowID)
	return idx
}

// InsertRowWithItem inserts a row at rowIdx with column columnID set to item.
// On a sorted list this behaves like AddRowWithItem.
func (l *MultiColumnList) InsertRowWithItem(item Item, columnID uint, rowIdx int, rowID uint) (int, error) {
	if l.SortDirection() != SortNone {
		return l.AddRowWithItem(item, columnID, rowID)
	}

	row, col, err := l.newRow(item, columnID, rowID)
	if err != nil {
		return 0, err
	}
	idx := clampi(rowIdx, 0, len(l.grid))
	l.placeRow(row, idx, item, col)
	return idx, nil
}

// newRow builds a row sized to the current column count. Nothing is
// modified until the column id and item have been validated.
func (l *MultiColumnList) newRow(item Item, columnID uint, rowID uint) (*gridRow, int, error) {
	row := &gridRow{
		slots:      make([]Slot, l.ColumnCount()),
		id:         rowID,
		sortColumn: l.header.SortColumn(),
	}
	if item == nil {
		return row, -1, nil
	}

	col, err := l.ColumnWithID(columnID)
	if err != nil {
		return nil, 0, err
	}
	if err := l.checkUnowned(item); err != nil {
		return nil, 0, err
	}
	item.SetOwner(l)
	row.slots[col] = SlotOf(item)
	return row, col, nil
}

func (l *MultiColumnList) placeRow(row *gridRow, idx int, item Item, col int) {
	l.grid = append(l.grid, nil)
	copy(l.grid[idx+1:], l.grid[idx:])
	l.grid[idx] = row

	if widgetVerbose() {
		gridLogger.Debug("row inserted", "row", idx, "id", row.id, "column", col, "hasItem", item != nil, "rows", len(l.grid))
	}

	l.ConfigureScrollbars()
	l.contentsChanged.Fire(ListEvent{List: l})
}

// sortedPosition finds where row goes in the sorted grid. Ascending lists
// put the row before existing equal rows, descending lists after them.
func (l *MultiColumnList) sortedPosition(row *gridRow) int {
	dir := l.SortDirection()
	if dir == SortDescending {
		return sort.Search(len(l.grid), func(i int) bool {
			return compareRows(l.grid[i], row, dir) > 0
		})
	}
	return sort.Search(len(l.grid), func(i int) bool {
		return compareRows(l.grid[i], row, dir) >= 0
	})
}

// RemoveRow deletes row rowIdx, releasing its items.
func (l *MultiColumnList) RemoveRow(rowIdx int) error {
	if err := l.checkRow(rowIdx); err != nil {
		return err
	}

	row := l.grid[rowIdx]
	l.grid = append(l.grid[:rowIdx], l.grid[rowIdx+1:]...)
	for i := range row.slots {
		item := row.slots[i].item
		row.slots[i] = Slot{}
		l.forget(item)
		release(item)
	}

	switch {
	case l.nominatedRow == rowIdx:
		l.nominatedRow = 0
	case l.nominatedRow > rowIdx:
		l.nominatedRow--
	}

	gridLogger.Debug("row removed", "row", rowIdx, "id", row.id, "rows", len(l.grid))

	l.ConfigureScrollbars()
	l.contentsChanged.Fire(ListEvent{List: l})
	return nil
}

// RowID returns the client id of row rowIdx.
func (l *MultiColumnList) RowID(rowIdx int) (uint, error) {
	if err := l.checkRow(rowIdx); err != nil {
		return 0, err
	}
	return l.grid[rowIdx].id, nil
}

// SetRowID changes the client id of row rowIdx.
func (l *MultiColumnList) SetRowID(rowIdx int, id uint) error {
	if err := l.checkRow(rowIdx); err != nil {
		return err
	}
	l.grid[rowIdx].id = id
	return nil
}

// RowWithID returns the index of the first row with the given id.
func (l *MultiColumnList) RowWithID(id uint) (int, error) {
	for i, row := range l.grid {
		if row.id == id {
			return i, nil
		}
	}
	return 0, fmt.Errorf("no row with id %d: %w", id, ErrInvalidReference)
}

// HighestRowItemHeight returns the tallest item height in row rowIdx, zero
// for a row without items.
func (l *MultiColumnList) HighestRowItemHeight(rowIdx int) (float32, error) {
	if err := l.checkRow(rowIdx); err != nil {
		return 0, err
	}
	return l.rowHeight(l.grid[rowIdx]), nil
}

func (l *MultiColumnList) rowHeight(row *gridRow) float32 {
	var h float32
	for _, s := range row.slots {
		if s.item != nil {
			h = maxf(h, s.item.PixelSize().H)
		}
	}
	return h
}

// TotalRowsHeight returns the summed height of all rows.
func (l *MultiColumnList) TotalRowsHeight() float32 {
	var h float32
	for _, row := range l.grid {
		h += l.rowHeight(row)
	}
	return h
}

// ResetList removes every row. Columns are kept.
func (l *MultiColumnList) ResetList() {
	if !l.resetList() {
		return
	}
	l.ConfigureScrollbars()
	l.contentsChanged.Fire(ListEvent{List: l})
}

func (l *MultiColumnList) resetList() bool {
	if len(l.grid) == 0 {
		return false
	}
	for _, row := range l.grid {
		for i := range row.slots {
			item := row.slots[i].item
			row.slots[i] = Slot{}
			release(item)
		}
	}
	gridLogger.Debug("list reset", "rows", len(l.grid))
	l.grid = nil
	l.nominatedRow = 0
	l.lastSelected = nil
	return true
}
