package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/widgets"
)

func newHeader(captions ...string) *widgets.ListHeader {
	h := widgets.NewListHeader()
	for i, c := range captions {
		h.InsertColumn(c, uint(i+1), 40, i)
	}
	return h
}

func TestListHeader_FirstColumnSorts(t *testing.T) {
	h := widgets.NewListHeader()
	assert.Equal(t, -1, h.SortColumn())

	var sortCols []int
	h.SortColumnChanged().Subscribe(func(e widgets.HeaderEvent) { sortCols = append(sortCols, e.Column) })

	h.InsertColumn("A", 1, 40, 0)
	h.InsertColumn("B", 2, 40, 0)
	assert.Equal(t, 1, h.SortColumn(), "sort segment keeps its identity when columns shift")
	assert.Equal(t, []int{0}, sortCols)

	require.NoError(t, h.RemoveColumn(1))
	assert.Equal(t, 0, h.SortColumn(), "first remaining column takes over")

	require.NoError(t, h.RemoveColumn(0))
	assert.Equal(t, -1, h.SortColumn())
	assert.Equal(t, []int{0, 0, -1}, sortCols)
}

func TestListHeader_SortIndicator(t *testing.T) {
	h := newHeader("A", "B")
	h.SetSortDirection(widgets.SortAscending)

	a, err := h.SegmentFromColumn(0)
	require.NoError(t, err)
	b, err := h.SegmentFromColumn(1)
	require.NoError(t, err)
	assert.Equal(t, widgets.SortAscending, a.SortDirection())
	assert.Equal(t, widgets.SortNone, b.SortDirection())

	require.NoError(t, h.SetSortColumn(1))
	assert.Equal(t, widgets.SortNone, a.SortDirection())
	assert.Equal(t, widgets.SortAscending, b.SortDirection())
	assert.Equal(t, "Ascending", h.SortDirection().String())
}

func TestListHeader_ClickColumn(t *testing.T) {
	h := newHeader("A", "B")

	require.NoError(t, h.ClickColumn(1))
	assert.Equal(t, 1, h.SortColumn())
	assert.Equal(t, widgets.SortDescending, h.SortDirection())

	require.NoError(t, h.ClickColumn(1))
	assert.Equal(t, widgets.SortAscending, h.SortDirection())
	require.NoError(t, h.ClickColumn(1))
	assert.Equal(t, widgets.SortDescending, h.SortDirection())

	require.NoError(t, h.ClickColumn(0))
	assert.Equal(t, 0, h.SortColumn())
	assert.Equal(t, widgets.SortDescending, h.SortDirection())

	assert.ErrorIs(t, h.ClickColumn(2), widgets.ErrOutOfRange)
}

func TestListHeader_MoveAndDrag(t *testing.T) {
	h := newHeader("A", "B", "C")

	var changes []widgets.SequenceChange
	h.SegmentSequenceChanged().Subscribe(func(c widgets.SequenceChange) { changes = append(changes, c) })

	require.NoError(t, h.MoveColumn(0, 10))
	col, err := h.ColumnWithText("A")
	require.NoError(t, err)
	assert.Equal(t, 2, col, "position clamps to the last column")

	h.SetDraggingEnabled(false)
	require.NoError(t, h.DragColumn(2, 0))
	col, _ = h.ColumnWithText("A")
	assert.Equal(t, 2, col, "drags are ignored while disabled")

	h.SetDraggingEnabled(true)
	require.NoError(t, h.DragColumn(2, 0))
	col, _ = h.ColumnWithText("A")
	assert.Equal(t, 0, col)

	assert.Equal(t, []widgets.SequenceChange{{Old: 0, New: 2}, {Old: 2, New: 0}}, changes)
	assert.ErrorIs(t, h.MoveColumn(-1, 0), widgets.ErrOutOfRange)
}

func TestListHeader_Geometry(t *testing.T) {
	h := newHeader("A", "B", "C")
	require.NoError(t, h.SetColumnWidth(1, 100))
	require.NoError(t, h.SetColumnWidth(2, 1))

	assert.Equal(t, float32(40+100+widgets.MinimumSegmentWidth), h.TotalSegmentsExtent())
	x, err := h.PixelOffsetToColumn(2)
	require.NoError(t, err)
	assert.Equal(t, float32(140), x)

	var offsets int
	h.SegmentOffsetChanged().Subscribe(func(widgets.HeaderEvent) { offsets++ })
	h.SetSegmentOffset(12)
	h.SetSegmentOffset(12)
	assert.Equal(t, float32(12), h.SegmentOffset())
	assert.Equal(t, 1, offsets)

	seg, err := h.SegmentFromID(2)
	require.NoError(t, err)
	assert.Equal(t, "B", seg.Text())
	assert.Equal(t, float32(100), seg.Width())
	_, err = h.SegmentFromID(9)
	assert.ErrorIs(t, err, widgets.ErrInvalidReference)
}

func TestListHeader_SplitterDoubleClick(t *testing.T) {
	h := newHeader("A")
	var clicks int
	h.SegmentDoubleClicked().Subscribe(func(widgets.HeaderEvent) { clicks++ })

	require.NoError(t, h.DoubleClickSplitter(0))
	h.SetSizingEnabled(false)
	require.NoError(t, h.DoubleClickSplitter(0))
	assert.Equal(t, 1, clicks)
	assert.False(t, h.SizingEnabled())
}
