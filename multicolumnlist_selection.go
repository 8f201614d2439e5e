package widgets

// SelectionMode returns the current selection mode.
func (l *MultiColumnList) SelectionMode() SelectionMode { return l.mode }

// SetSelectionMode switches the selection mode. Existing selections are
// cleared.
func (l *MultiColumnList) SetSelectionMode(mode SelectionMode) {
	if mode == l.mode {
		return
	}
	l.mode = mode
	l.rules = mode.rules()
	l.ClearAllSelections()
	l.selectionModeChanged.Fire(ListEvent{List: l})
}

// NominatedSelectionColumn returns the column selectable in the
// NominatedColumn modes.
func (l *MultiColumnList) NominatedSelectionColumn() int { return l.nominatedCol }

// NominatedSelectionColumnID returns the id of the nominated column.
func (l *MultiColumnList) NominatedSelectionColumnID() (uint, error) {
	return l.ColumnID(l.nominatedCol)
}

// SetNominatedSelectionColumn sets the nominated column, clearing the
// selection when it changes.
func (l *MultiColumnList) SetNominatedSelectionColumn(col int) error {
	if err := l.checkColumn(col); err != nil {
		return err
	}
	if col == l.nominatedCol {
		return nil
	}
	l.ClearAllSelections()
	l.nominatedCol = col
	l.nominatedColChanged.Fire(ListEvent{List: l})
	return nil
}

// SetNominatedSelectionColumnID nominates the column with the given id.
func (l *MultiColumnList) SetNominatedSelectionColumnID(id uint) error {
	col, err := l.ColumnWithID(id)
	if err != nil {
		return err
	}
	return l.SetNominatedSelectionColumn(col)
}

// NominatedSelectionRow returns the row selectable in the NominatedRow
// modes.
func (l *MultiColumnList) NominatedSelectionRow() int { return l.nominatedRow }

// SetNominatedSelectionRow sets the nominated row, clearing the selection
// when it changes.
func (l *MultiColumnList) SetNominatedSelectionRow(row int) error {
	if err := l.checkRow(row); err != nil {
		return err
	}
	if row == l.nominatedRow {
		return nil
	}
	l.ClearAllSelections()
	l.nominatedRow = row
	l.nominatedRowChanged.Fire(ListEvent{List: l})
	return nil
}

// SetItemSelectState selects or deselects the cell holding item, applying
// the selection mode.
func (l *MultiColumnList) SetItemSelectState(item Item, state bool) error {
	ref, err := l.ItemGridReference(item)
	if err != nil {
		return err
	}
	return l.SetCellSelectState(ref, state)
}

// SetCellSelectState selects or deselects the cell at ref, applying the
// selection mode. Empty cells and cells outside the nominated row or column
// are left alone.
func (l *MultiColumnList) SetCellSelectState(ref GridRef, state bool) error {
	if err := l.checkRef(ref); err != nil {
		return err
	}
	if l.setCellSelected(ref, state) {
		l.selectionChanged.Fire(ListEvent{List: l})
	}
	return nil
}

// setCellSelected reports whether any selection state changed. ref must be
// valid.
func (l *MultiColumnList) setCellSelected(ref GridRef, state bool) bool {
	item := l.grid[ref.Row].slots[ref.Column].item
	if item == nil || item.IsSelected() == state {
		return false
	}
	if l.rules.useNominatedCol && l.nominatedCol != ref.Column {
		return false
	}
	if l.rules.useNominatedRow && l.nominatedRow != ref.Row {
		return false
	}

	if state && !l.rules.multiSelect {
		l.clearAllSelections()
	}

	switch {
	case l.rules.fullRowSelect:
		for _, s := range l.grid[ref.Row].slots {
			if s.item != nil {
				s.item.SetSelected(state)
			}
		}
	case l.rules.fullColSelect:
		for _, row := range l.grid {
			if it := row.slots[ref.Column].item; it != nil {
				it.SetSelected(state)
			}
		}
	default:
		item.SetSelected(state)
	}
	return true
}

// SetSelectRange selects every cell of the rectangle spanned by a and b.
func (l *MultiColumnList) SetSelectRange(a, b GridRef) error {
	if err := l.checkRef(a); err != nil {
		return err
	}
	if err := l.checkRef(b); err != nil {
		return err
	}
	if l.selectRange(a, b) {
		l.selectionChanged.Fire(ListEvent{List: l})
	}
	return nil
}

func (l *MultiColumnList) selectRange(a, b GridRef) bool {
	if a.Row > b.Row {
		a.Row, b.Row = b.Row, a.Row
	}
	if a.Column > b.Column {
		a.Column, b.Column = b.Column, a.Column
	}

	modified := false
	for r := a.Row; r <= b.Row; r++ {
		for c := a.Column; c <= b.Column; c++ {
			if l.setCellSelected(GridRef{Row: r, Column: c}, true) {
				modified = true
			}
		}
	}
	return modified
}

// ClearAllSelections deselects every item.
func (l *MultiColumnList) ClearAllSelections() {
	if l.clearAllSelections() {
		l.selectionChanged.Fire(ListEvent{List: l})
	}
}

func (l *MultiColumnList) clearAllSelections() bool {
	modified := false
	for _, row := range l.grid {
		for _, s := range row.slots {
			if s.item != nil && s.item.IsSelected() {
				s.item.SetSelected(false)
				modified = true
			}
		}
	}
	return modified
}

// IsItemSelected reports whether the cell at ref holds a selected item.
func (l *MultiColumnList) IsItemSelected(ref GridRef) (bool, error) {
	if err := l.checkRef(ref); err != nil {
		return false, err
	}
	item := l.grid[ref.Row].slots[ref.Column].item
	return item != nil && item.IsSelected(), nil
}

// SelectedCount returns the number of selected items.
func (l *MultiColumnList) SelectedCount() int {
	n := 0
	for _, row := range l.grid {
		for _, s := range row.slots {
			if s.item != nil && s.item.IsSelected() {
				n++
			}
		}
	}
	return n
}

// FirstSelectedItem returns the first selected item in row-major order, or
// nil.
func (l *MultiColumnList) FirstSelectedItem() Item {
	it, _ := l.NextSelected(nil)
	return it
}

// NextSelected returns the next selected item after start in row-major
// order, or nil. A nil start searches from the top.
func (l *MultiColumnList) NextSelected(start Item) (Item, error) {
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
			if it := slots[c].item; it != nil && it.IsSelected() {
				return it, nil
			}
		}
	}
	return nil, nil
}

// HandleClick applies a left click at pt (widget coordinates). Without Ctrl,
// or in a single-select mode, the click replaces the selection. Shift with a
// previous click selects the range between the two cells in multi-select
// modes; otherwise the clicked cell toggles.
func (l *MultiColumnList) HandleClick(pt Vec2, mods Modifiers) error {
	item, err := l.ItemAtPoint(pt)
	if err != nil || item == nil {
		return err
	}
	ref, err := l.ItemGridReference(item)
	if err != nil {
		return err
	}

	modified := false
	if !mods.Has(ModCtrl) || !l.rules.multiSelect {
		modified = l.clearAllSelections()
	}

	if mods.Has(ModShift) && l.lastSelected != nil && l.rules.multiSelect {
		last, err := l.ItemGridReference(l.lastSelected)
		if err == nil && l.selectRange(ref, last) {
			modified = true
		}
	} else if l.setCellSelected(ref, !item.IsSelected()) {
		modified = true
	}

	if item.IsSelected() {
		l.lastSelected = item
	} else {
		l.lastSelected = nil
	}

	if modified {
		l.selectionChanged.Fire(ListEvent{List: l})
	}
	return nil
}

// HandleKey moves the selection a row up or down (Up, Down, Home, End) and
// selects everything with Ctrl+A in multi-select modes.
func (l *MultiColumnList) HandleKey(key Key, mods Modifiers) bool {
	switch key {
	case KeyA:
		if !mods.Has(ModCtrl) || !l.rules.multiSelect || len(l.grid) == 0 || l.ColumnCount() == 0 {
			return false
		}
		last := GridRef{Row: len(l.grid) - 1, Column: l.ColumnCount() - 1}
		if l.selectRange(GridRef{}, last) {
			l.selectionChanged.Fire(ListEvent{List: l})
		}
		return true
	case KeyUp, KeyDown, KeyHome, KeyEnd:
	default:
		return false
	}
	if len(l.grid) == 0 {
		return false
	}

	cur := -1
	if sel := l.FirstSelectedItem(); sel != nil {
		cur, _ = l.ItemRowIndex(sel)
	}
	var target int
	switch key {
	case KeyUp:
		target = cur - 1
	case KeyDown:
		target = cur + 1
	case KeyHome:
		target = 0
	case KeyEnd:
		target = len(l.grid) - 1
	}
	target = clampi(target, 0, len(l.grid)-1)

	col := 0
	if l.rules.useNominatedCol {
		col = l.nominatedCol
	}
	var item Item
	for c := col; c < len(l.grid[target].slots); c++ {
		if it := l.grid[target].slots[c].item; it != nil {
			item = it
			break
		}
	}
	if item == nil {
		return true
	}

	modified := l.clearAllSelections()
	if l.setCellSelected(GridRef{Row: target, Column: col}, true) {
		modified = true
	} else if ref, err := l.ItemGridReference(item); err == nil && l.setCellSelected(ref, true) {
		modified = true
	}
	if item.IsSelected() {
		l.lastSelected = item
	}
	_ = l.EnsureRowIsVisible(target)
	if modified {
		l.selectionChanged.Fire(ListEvent{List: l})
	}
	return true
}

// HandleChar ignores typed characters.
func (l *MultiColumnList) HandleChar(rune) bool { return false }
