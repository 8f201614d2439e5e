package widgets

import "strings"

// Item is a cell of a MultiColumnList.
//
// A list takes ownership of an item while it occupies a grid slot. When the
// item leaves the grid (slot overwritten, row or column removed, list
// reset) the list either disposes of it, if IsAutoDeleted is true, or hands
// it back to the caller by clearing its owner.
type Item interface {
	Text() string
	PixelSize() Size

	IsSelected() bool
	SetSelected(selected bool)

	IsAutoDeleted() bool

	// Compare orders items for sorting: negative if the receiver sorts
	// before other, zero if equal, positive if after.
	Compare(other Item) int

	// Owner returns the widget currently holding the item, or nil.
	Owner() any
	SetOwner(owner any)
}

// Disposer is implemented by items that release resources when a list
// deletes them.
type Disposer interface {
	Dispose()
}

// Slot is one grid cell position. An empty slot holds no item.
type Slot struct {
	item Item
}

// SlotOf wraps item in a slot; a nil item gives an empty slot.
func SlotOf(item Item) Slot {
	return Slot{item: item}
}

// Item returns the occupant and whether there is one.
func (s Slot) Item() (Item, bool) {
	return s.item, s.item != nil
}

// IsEmpty reports whether the slot holds no item.
func (s Slot) IsEmpty() bool {
	return s.item == nil
}

// release takes an item out of the grid, honouring its auto-delete flag.
func release(item Item) {
	if item == nil {
		return
	}
	item.SetOwner(nil)
	if !item.IsAutoDeleted() {
		return
	}
	if d, ok := item.(Disposer); ok {
		d.Dispose()
	}
}

// TextItem is a plain text cell, measured with a Font.
type TextItem struct {
	text       string
	id         uint
	userData   any
	font       Font
	autoDelete bool
	selected   bool
	disposed   bool
	owner      any
}

// NewTextItem creates an auto-deleted text item. font may be nil, in which
// case the item reports a zero pixel size.
func NewTextItem(text string, id uint, font Font) *TextItem {
	return &TextItem{text: text, id: id, font: font, autoDelete: true}
}

// Text returns the item text.
func (it *TextItem) Text() string { return it.text }

// SetText replaces the text. Call HandleUpdatedItemData on the owning list
// afterwards so it can re-sort.
func (it *TextItem) SetText(text string) { it.text = text }

// ID returns the client id.
func (it *TextItem) ID() uint { return it.id }

// SetID changes the client id.
func (it *TextItem) SetID(id uint) { it.id = id }

// UserData returns the value attached with SetUserData.
func (it *TextItem) UserData() any { return it.userData }

// SetUserData attaches an arbitrary client value.
func (it *TextItem) SetUserData(data any) { it.userData = data }

// IsSelected reports whether the item is selected.
func (it *TextItem) IsSelected() bool { return it.selected }

// SetSelected marks the item selected. Lists call it; clients should use
// the list's selection methods so events fire.
func (it *TextItem) SetSelected(sel bool) { it.selected = sel }

// IsAutoDeleted reports whether the owning list disposes of the item when
// it is removed.
func (it *TextItem) IsAutoDeleted() bool { return it.autoDelete }

// SetAutoDeleted controls whether removal disposes of the item or hands it
// back.
func (it *TextItem) SetAutoDeleted(ad bool) { it.autoDelete = ad }

// Owner returns the list holding the item, or nil.
func (it *TextItem) Owner() any { return it.owner }

// SetOwner records the holding list. Lists call it on insert and removal.
func (it *TextItem) SetOwner(owner any) { it.owner = owner }

// PixelSize returns the text extent by one line of the item's font.
func (it *TextItem) PixelSize() Size {
	if it.font == nil {
		return Size{}
	}
	return Size{W: it.font.TextExtent(it.text), H: it.font.LineSpacing()}
}

// Compare orders text items lexically by their text.
func (it *TextItem) Compare(other Item) int {
	return strings.Compare(it.text, other.Text())
}

// Dispose marks the item deleted.
func (it *TextItem) Dispose() {
	it.disposed = true
	it.selected = false
}

// IsDisposed reports whether a list has deleted the item.
func (it *TextItem) IsDisposed() bool { return it.disposed }
