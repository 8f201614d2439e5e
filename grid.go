package widgets

import "fmt"

// GridRef is a (row, column) coordinate in a MultiColumnList.
type GridRef struct {
	Row, Column int
}

// String formats the reference as "(row,col)".
func (g GridRef) String() string {
	return fmt.Sprintf("(%d,%d)", g.Row, g.Column)
}

// gridRow is one row of the grid: a slot per column, the client row id and
// the sort column cached when the row was inserted (refreshed whenever the
// header's sort column changes).
type gridRow struct {
	slots      []Slot
	id         uint
	sortColumn int
}

// sortItem returns the item the row is sorted by, or nil for an empty slot.
func (r *gridRow) sortItem() Item {
	if r.sortColumn < 0 || r.sortColumn >= len(r.slots) {
		return nil
	}
	return r.slots[r.sortColumn].item
}

// insertSlot inserts an empty slot at col.
func (r *gridRow) insertSlot(col int) {
	r.slots = append(r.slots, Slot{})
	copy(r.slots[col+1:], r.slots[col:])
	r.slots[col] = Slot{}
}

// removeSlot removes the slot at col and returns its occupant.
func (r *gridRow) removeSlot(col int) Item {
	item := r.slots[col].item
	r.slots = append(r.slots[:col], r.slots[col+1:]...)
	return item
}

// moveSlot moves the slot at from so it ends up at to (erase then insert).
func (r *gridRow) moveSlot(from, to int) {
	s := r.slots[from]
	r.slots = append(r.slots[:from], r.slots[from+1:]...)
	r.slots = append(r.slots, Slot{})
	copy(r.slots[to+1:], r.slots[to:])
	r.slots[to] = s
}

// compareItems orders two possibly-empty cells. Empty cells sort after any
// item; two empty cells are equal.
func compareItems(a, b Item) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return a.Compare(b)
}

// compareRows orders rows by their sort items in the given direction.
func compareRows(a, b *gridRow, dir SortDirection) int {
	c := compareItems(a.sortItem(), b.sortItem())
	if dir == SortDescending {
		return -c
	}
	return c
}
