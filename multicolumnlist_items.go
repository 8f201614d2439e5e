package widgets

import "fmt"

// SetItem puts item into the cell at ref. The previous occupant, if any, is
// released. A nil item empties the cell.
func (l *MultiColumnList) SetItem(item Item, ref GridRef) error {
	if err := l.checkRef(ref); err != nil {
		return err
	}

	old := l.grid[ref.Row].slots[ref.Column].item
	if old == item {
		return nil
	}
	if item != nil {
		if err := l.checkUnowned(item); err != nil {
			return err
		}
		item.SetOwner(l)
	}

	l.grid[ref.Row].slots[ref.Column] = SlotOf(item)
	l.forget(old)
	release(old)

	l.ConfigureScrollbars()
	l.contentsChanged.Fire(ListEvent{List: l})
	return nil
}

// SetItemWithColumnID puts item into row rowIdx of the column with the given
// id.
func (l *MultiColumnList) SetItemWithColumnID(item Item, columnID uint, rowIdx int) error {
	col, err := l.ColumnWithID(columnID)
	if err != nil {
		return err
	}
	return l.SetItem(item, GridRef{Row: rowIdx, Column: col})
}

// ItemAt returns the slot at ref.
func (l *MultiColumnList) ItemAt(ref GridRef) (Slot, error) {
	if err := l.checkRef(ref); err != nil {
		return Slot{}, err
	}
	return l.grid[ref.Row].slots[ref.Column], nil
}

// checkUnowned rejects items already held by a list.
func (l *MultiColumnList) checkUnowned(item Item) error {
	if owner := item.Owner(); owner != nil {
		return fmt.Errorf("item %q already owned by %T: %w", item.Text(), owner, ErrInvalidReference)
	}
	return nil
}

// forget drops list-level references to an item that leaves the grid.
func (l *MultiColumnList) forget(item Item) {
	if item != nil && item == l.lastSelected {
		l.lastSelected = nil
	}
}

// ItemGridReference returns the cell holding item.
func (l *MultiColumnList) ItemGridReference(item Item) (GridRef, error) {
	if item != nil {
		for r, row := range l.grid {
			for c, s := range row.slots {
				if s.item == item {
					return GridRef{Row: r, Column: c}, nil
				}
			}
		}
	}
	return GridRef{}, fmt.Errorf("item not in list: %w", ErrInvalidReference)
}

// ItemRowIndex returns the row holding item.
func (l *MultiColumnList) ItemRowIndex(item Item) (int, error) {
	ref, err := l.ItemGridReference(item)
	return ref.Row, err
}

// ItemColumnIndex returns the column holding item.
func (l *MultiColumnList) ItemColumnIndex(item Item) (int, error) {
	ref, err := l.ItemGridReference(item)
	return ref.Column, err
}

// IsItemInColumn reports whether item sits in column col.
func (l *MultiColumnList) IsItemInColumn(item Item, col int) (bool, error) {
	if err := l.checkColumn(col); err != nil {
		return false, err
	}
	for _, row := range l.grid {
		if item != nil && row.slots[col].item == item {
			return true, nil
		}
	}
	return false, nil
}

// IsItemInRow reports whether item sits in row rowIdx.
func (l *MultiColumnList) IsItemInRow(item Item, rowIdx int) (bool, error) {
	if err := l.checkRow(rowIdx); err != nil {
		return false, err
	}
	for _, s := range l.grid[rowIdx].slots {
		if item != nil && s.item == item {
			return true, nil
		}
	}
	return false, nil
}

// IsItemInList reports whether item sits anywhere in the grid.
func (l *MultiColumnList) IsItemInList(item Item) bool {
	_, err := l.ItemGridReference(item)
	return err == nil
}

// FindColumnItemWithText searches column col for an item with the given
// text, starting after start (from the top when start is nil). It returns
// nil when nothing matches.
func (l *MultiColumnList) FindColumnItemWithText(text string, col int, start Item) (Item, error) {
	if err := l.checkColumn(col); err != nil {
		return nil, err
	}
	first := 0
	if start != nil {
		r, err := l.ItemRowIndex(start)
		if err != nil {
			return nil, err
		}
		first = r + 1
	}
	for r := first; r < len(l.grid); r++ {
		if it := l.grid[r].slots[col].item; it != nil && it.Text() == text {
			return it, nil
		}
	}
	return nil, nil
}

// FindRowItemWithText searches row rowIdx for an item with the given text,
// starting after start (from the first column when start is nil).
func (l *MultiColumnList) FindRowItemWithText(text string, rowIdx int, start Item) (Item, error) {
	if err := l.checkRow(rowIdx); err != nil {
		return nil, err
	}
	first := 0
	if start != nil {
		c, err := l.ItemColumnIndex(start)
		if err != nil {
			return nil, err
		}
		first = c + 1
	}
	slots := l.grid[rowIdx].slots
	for c := first; c < len(slots); c++ {
		if it := slots[c].item; it != nil && it.Text() == text {
			return it, nil
		}
	}
	return nil, nil
}

// FindListItemWithText searches the whole grid in row-major order for an
// item with the given text, starting after start.
func (l *MultiColumnList) FindListItemWithText(text string, start Item) (Item, error) {
	var from GridRef
	if start != nil {
		ref, err := l.ItemGridReference(start)
		if err != nil {
			return nil, err
		}
		from = ref
		from.Column++
	}
	for r := from.Row; r < len(l.grid); r++ {
		slots := l.grid[r].slots
		c := 0
		if r == from.Row {
			c = from.Column
		}
		for ; c < len(slots); c++ {
			if it := slots[c].item; it != nil && it.Text() == text {
				return it, nil
			}
		}
	}
	return nil, nil
}

// HandleUpdatedItemData re-sorts and re-lays out the list after item
// contents changed outside the list's knowledge.
func (l *MultiColumnList) HandleUpdatedItemData() {
	l.ResortList()
	l.ConfigureScrollbars()
}
