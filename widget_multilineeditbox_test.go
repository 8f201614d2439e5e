package widgets_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/widgets"
)

// cellFont measures one pixel per terminal cell with one pixel lines, so
// extents equal column counts.
var cellFont = widgets.NewCellFont(1, 1)

// fixedArea returns a render area of w x h that ignores scrollbars.
func fixedArea(w, h float32) widgets.AreaProvider {
	return widgets.AreaFunc(func() widgets.Rect { return widgets.Rect{W: w, H: h} })
}

func newEditbox(t *testing.T, text string, opts ...widgets.Option) *widgets.MultiLineEditbox {
	t.Helper()
	e, err := widgets.NewMultiLineEditbox(cellFont, opts...)
	require.NoError(t, err)
	if text != "" {
		e.SetText(text)
	}
	return e
}

// requireLinesCoverText checks that the line table tiles the buffer.
func requireLinesCoverText(t *testing.T, e *widgets.MultiLineEditbox) {
	t.Helper()
	pos := 0
	for i, ln := range e.Lines() {
		require.Equal(t, pos, ln.Start, "line %d start", i)
		require.Positive(t, ln.Length, "line %d length", i)
		pos += ln.Length
	}
	require.Equal(t, e.TextLength(), pos)
}

func TestMultiLineEditbox_NeedsFont(t *testing.T) {
	_, err := widgets.NewMultiLineEditbox(nil)
	assert.ErrorIs(t, err, widgets.ErrUnsupported)
}

func TestMultiLineEditbox_EmptyBufferHoldsBreak(t *testing.T) {
	e := newEditbox(t, "")
	assert.Equal(t, "\n", e.Text())
	assert.Equal(t, 0, e.CaretIndex())
	assert.Equal(t, []widgets.LineInfo{{Start: 0, Length: 1}}, e.Lines())

	e.SetText("abc")
	assert.Equal(t, "abc\n", e.Text(), "terminating break is added")
}

func TestMultiLineEditbox_SingleLine(t *testing.T) {
	e := newEditbox(t, "hello\n", widgets.WithRenderArea(fixedArea(10, 5)))
	assert.Equal(t, []widgets.LineInfo{{Start: 0, Length: 6, Extent: 5}}, e.Lines())
	assert.Equal(t, float32(5), e.WidestExtent())
}

func TestMultiLineEditbox_WordWrap(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float32
		want  []widgets.LineInfo
	}{
		{
			name:  "breaks at spaces",
			text:  "aaa bbb\n",
			width: 5,
			want:  []widgets.LineInfo{{Start: 0, Length: 4, Extent: 4}, {Start: 4, Length: 4, Extent: 3}},
		},
		{
			name:  "splits overlong words",
			text:  "abcdefgh\n",
			width: 3,
			want: []widgets.LineInfo{
				{Start: 0, Length: 3, Extent: 3},
				{Start: 3, Length: 3, Extent: 3},
				{Start: 6, Length: 3, Extent: 2},
			},
		},
		{
			name:  "paragraphs always start a line",
			text:  "ab\ncd\n",
			width: 10,
			want:  []widgets.LineInfo{{Start: 0, Length: 3, Extent: 2}, {Start: 3, Length: 3, Extent: 2}},
		},
		{
			name:  "wide runes take two cells",
			text:  "世界世界\n",
			width: 5,
			want:  []widgets.LineInfo{{Start: 0, Length: 2, Extent: 4}, {Start: 2, Length: 3, Extent: 4}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEditbox(t, tt.text, widgets.WithRenderArea(fixedArea(tt.width, 20)))
			assert.Equal(t, tt.want, e.Lines())
			requireLinesCoverText(t, e)
		})
	}
}

func TestMultiLineEditbox_WrapToggle(t *testing.T) {
	e := newEditbox(t, "aaa bbb\n", widgets.WithRenderArea(fixedArea(5, 20)))
	require.Equal(t, 2, e.LineCount())

	var events int
	e.WordWrapModeChanged().Subscribe(func(widgets.EditboxEvent) { events++ })
	e.SetWordWrapping(false)
	assert.False(t, e.IsWordWrapped())
	assert.Equal(t, 1, e.LineCount())
	assert.Equal(t, 1, events)

	noArea := newEditbox(t, "aaa bbb\n")
	assert.Equal(t, 1, noArea.LineCount(), "no render area means no wrapping")
}

func TestMultiLineEditbox_FormatIsIdempotent(t *testing.T) {
	text := strings.Repeat("the quick brown fox jumps over the lazy dog\n", 4) + "tail without break"
	e := newEditbox(t, text, widgets.WithRenderArea(fixedArea(12, 100)))
	before := e.Lines()

	e.FormatText(true)
	assert.Equal(t, before, e.Lines())
	e.FormatText(false)
	assert.Equal(t, before, e.Lines())
	requireLinesCoverText(t, e)
}

func TestMultiLineEditbox_IncrementalFormatMatchesFull(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet\n", 5)
	e := newEditbox(t, text, widgets.WithRenderArea(fixedArea(10, 100)))

	edits := []func(){
		func() { e.SetCaretIndex(60); e.InsertText("consectetur adipiscing ") },
		func() { e.SetCaretIndex(30); e.NewLine() },
		func() { e.SetSelection(5, 40); e.Backspace() },
		func() { e.SetCaretIndex(e.TextLength() - 1); e.InsertText("end") },
		func() { e.SetCaretIndex(0); e.Delete() },
	}
	for i, edit := range edits {
		edit()
		incremental := e.Lines()
		e.FormatText(true)
		assert.Equal(t, e.Lines(), incremental, "edit %d", i)
		requireLinesCoverText(t, e)
	}
}

func TestMultiLineEditbox_LineNumberFromIndex(t *testing.T) {
	e := newEditbox(t, "ab\ncde\n\nf\n")
	require.Equal(t, 4, e.LineCount())

	want := []int{0, 0, 0, 1, 1, 1, 1, 2, 3, 3}
	for idx, line := range want {
		assert.Equal(t, line, e.LineNumberFromIndex(idx), "index %d", idx)
	}
	assert.Equal(t, 3, e.LineNumberFromIndex(100))
	assert.Equal(t, 0, e.LineNumberFromIndex(-5))
}

func TestMultiLineEditbox_InsertAndUndo(t *testing.T) {
	e := newEditbox(t, "hi\n")
	require.True(t, e.InsertText("world"))
	assert.Equal(t, "worldhi\n", e.Text())
	assert.Equal(t, 5, e.CaretIndex())

	require.True(t, e.PerformUndo())
	assert.Equal(t, "hi\n", e.Text())
	assert.Equal(t, 0, e.CaretIndex())

	require.True(t, e.PerformRedo())
	assert.Equal(t, "worldhi\n", e.Text())
	assert.Equal(t, 5, e.CaretIndex())

	assert.False(t, e.PerformRedo())
}

func TestMultiLineEditbox_UndoRoundTrip(t *testing.T) {
	e := newEditbox(t, "one two three\n", widgets.WithRenderArea(fixedArea(6, 50)))
	original := e.Text()

	e.SetCaretIndex(3)
	e.InsertText(" and a half")
	e.SetSelection(0, 4)
	e.InsertText("ONE")
	e.SetCaretIndex(e.TextLength() - 1)
	e.Backspace()
	e.NewLine()
	e.SetSelection(2, 9)
	e.Delete()
	edited := e.Text()

	var undone int
	for e.PerformUndo() {
		undone++
	}
	assert.Equal(t, original, e.Text())
	assert.Equal(t, 6, undone, "replacing a selection records a delete and an insert")
	requireLinesCoverText(t, e)

	for e.PerformRedo() {
	}
	assert.Equal(t, edited, e.Text())
	requireLinesCoverText(t, e)
}

func TestMultiLineEditbox_NewEditDropsRedo(t *testing.T) {
	e := newEditbox(t, "")
	e.InsertText("a")
	e.InsertText("b")
	require.True(t, e.PerformUndo())
	e.InsertText("c")
	assert.False(t, e.UndoHandler().CanRedo())
	assert.Equal(t, "ac\n", e.Text())
}

func TestMultiLineEditbox_Capacity(t *testing.T) {
	e := newEditbox(t, "abc", widgets.WithMaxTextLength(5))
	require.Equal(t, 4, e.TextLength())

	var full int
	e.EditboxFull().Subscribe(func(widgets.EditboxEvent) { full++ })

	assert.False(t, e.InsertText("de"))
	assert.Equal(t, "abc\n", e.Text())
	assert.Equal(t, 1, full)

	// Reaching the maximum is refused as well as exceeding it.
	assert.False(t, e.InsertText("d"))
	assert.Equal(t, "abc\n", e.Text())
	assert.Equal(t, 2, full)
	assert.True(t, e.HandleChar('x'), "a rejected keystroke is still consumed")
	assert.Equal(t, 3, full)
	assert.False(t, e.NewLine())
	assert.Equal(t, 4, full)

	// Replacing a selection frees its runes first.
	e.SetSelection(0, 2)
	assert.True(t, e.InsertText("xy"))
	assert.Equal(t, "xyc\n", e.Text())

	e.SetText("0123456789")
	assert.Equal(t, "012\n", e.Text(), "SetText truncates below the maximum")
	assert.Equal(t, 5, full)

	e.SetText("0123\n")
	assert.Equal(t, "012\n", e.Text(), "text whose length meets the maximum is truncated")
	assert.Equal(t, 6, full)

	e.SetText("01\n")
	assert.Equal(t, 6, full)
}

func TestMultiLineEditbox_CapacityAtLimit(t *testing.T) {
	e, err := widgets.NewMultiLineEditbox(cellFont, widgets.WithMaxTextLength(4))
	require.NoError(t, err)
	e.SetText("ab\n")

	var full int
	e.EditboxFull().Subscribe(func(widgets.EditboxEvent) { full++ })

	assert.False(t, e.InsertText("c"))
	assert.Equal(t, "ab\n", e.Text())
	assert.Equal(t, 3, e.TextLength())
	assert.Equal(t, 1, full)
	assert.False(t, e.UndoHandler().CanUndo())
}

func TestMultiLineEditbox_SetMaxTextLength(t *testing.T) {
	e := newEditbox(t, "hello")
	e.SetCaretIndex(5)
	e.InsertText("!")
	require.True(t, e.UndoHandler().CanUndo())

	var changed int
	e.MaximumTextLengthChanged().Subscribe(func(widgets.EditboxEvent) { changed++ })
	e.SetMaxTextLength(3)
	assert.Equal(t, "h\n", e.Text())
	assert.Less(t, e.TextLength(), e.MaxTextLength())
	assert.False(t, e.UndoHandler().CanUndo())
	assert.Equal(t, 1, changed)
	assert.Equal(t, 3, e.MaxTextLength())

	e.SetMaxTextLength(0)
	assert.Equal(t, 2, e.MaxTextLength())
	assert.Equal(t, "\n", e.Text())

	e.SetMaxTextLength(10)
	e.SetText("abcdefgh")
	assert.Equal(t, "abcdefgh\n", e.Text())
	e.SetMaxTextLength(9)
	assert.Equal(t, "abcdefg\n", e.Text(), "length equal to the new maximum is truncated")
}

func TestMultiLineEditbox_ReadOnly(t *testing.T) {
	clip := &widgets.MemoryClipboard{}
	e := newEditbox(t, "frozen", widgets.ReadOnly(), widgets.WithClipboard(clip))
	require.True(t, e.IsReadOnly())

	assert.False(t, e.InsertText("x"))
	assert.False(t, e.HandleChar('x'))
	assert.False(t, e.Backspace())
	assert.False(t, e.NewLine())
	assert.Equal(t, "frozen\n", e.Text())

	e.SelectAll()
	assert.True(t, e.PerformCopy())
	assert.Equal(t, "frozen", clip.GetText())
	assert.False(t, e.PerformCut())
	assert.False(t, e.PerformPaste())

	var events int
	e.ReadOnlyModeChanged().Subscribe(func(widgets.EditboxEvent) { events++ })
	e.SetReadOnly(false)
	assert.True(t, e.InsertText("x"))
	assert.Equal(t, 1, events)
}

func TestMultiLineEditbox_DeleteKeys(t *testing.T) {
	e := newEditbox(t, "abc")
	e.SetCaretIndex(3)

	assert.True(t, e.HandleKey(widgets.KeyBackspace, 0))
	assert.Equal(t, "ab\n", e.Text())
	assert.Equal(t, 2, e.CaretIndex())

	assert.False(t, e.Delete(), "the terminating break cannot be deleted")

	e.SetCaretIndex(0)
	assert.True(t, e.HandleKey(widgets.KeyDelete, 0))
	assert.Equal(t, "b\n", e.Text())
	assert.False(t, e.Backspace(), "nothing before the caret")

	assert.True(t, e.HandleKey(widgets.KeyEnter, 0))
	assert.Equal(t, "\nb\n", e.Text())
	assert.True(t, e.HandleChar('\r'))
	assert.Equal(t, "\n\nb\n", e.Text())
}

func TestMultiLineEditbox_Navigation(t *testing.T) {
	e := newEditbox(t, "one two\nthree\n")

	steps := []struct {
		key   widgets.Key
		mods  widgets.Modifiers
		caret int
	}{
		{widgets.KeyRight, widgets.ModCtrl, 4},
		{widgets.KeyRight, widgets.ModCtrl, 8},
		{widgets.KeyRight, 0, 9},
		{widgets.KeyRight, 0, 10},
		{widgets.KeyUp, 0, 2},
		{widgets.KeyEnd, 0, 7},
		{widgets.KeyHome, 0, 0},
		{widgets.KeyDown, 0, 8},
		{widgets.KeyLeft, widgets.ModCtrl, 4},
		{widgets.KeyLeft, 0, 3},
		{widgets.KeyEnd, widgets.ModCtrl, 13},
		{widgets.KeyRight, 0, 13},
		{widgets.KeyHome, widgets.ModCtrl, 0},
		{widgets.KeyLeft, 0, 0},
		{widgets.KeyPageDown, 0, 13},
		{widgets.KeyPageUp, 0, 0},
	}
	for i, s := range steps {
		require.True(t, e.HandleKey(s.key, s.mods), "step %d", i)
		require.Equal(t, s.caret, e.CaretIndex(), "step %d: %v", i, s.key)
		require.Zero(t, e.SelectionLength(), "step %d", i)
	}
	assert.False(t, e.HandleKey(widgets.KeyTab, 0))
}

func TestMultiLineEditbox_ShiftSelects(t *testing.T) {
	e := newEditbox(t, "hello world\n")

	var caretMoves int
	e.CaretMoved().Subscribe(func(widgets.EditboxEvent) { caretMoves++ })

	e.HandleKey(widgets.KeyRight, widgets.ModShift)
	e.HandleKey(widgets.KeyRight, widgets.ModShift)
	assert.Equal(t, 0, e.SelectionStart())
	assert.Equal(t, 2, e.SelectionEnd())

	e.HandleKey(widgets.KeyRight, widgets.ModShift|widgets.ModCtrl)
	assert.Equal(t, "hello ", e.SelectedText())

	e.HandleKey(widgets.KeyLeft, widgets.ModShift|widgets.ModCtrl)
	e.HandleKey(widgets.KeyLeft, widgets.ModShift)
	assert.Zero(t, e.SelectionLength(), "moving back to the anchor empties the selection")

	e.HandleKey(widgets.KeyEnd, widgets.ModShift)
	assert.Equal(t, "hello world", e.SelectedText())

	e.HandleKey(widgets.KeyRight, 0)
	assert.Zero(t, e.SelectionLength())
	assert.Equal(t, 5, caretMoves)
}

func TestMultiLineEditbox_SetSelection(t *testing.T) {
	e := newEditbox(t, "abcdef")

	var events int
	e.TextSelectionChanged().Subscribe(func(widgets.EditboxEvent) { events++ })

	e.SetSelection(4, 1)
	assert.Equal(t, 1, e.SelectionStart())
	assert.Equal(t, 4, e.SelectionEnd())
	e.SetSelection(1, 4)
	assert.Equal(t, 1, events, "unchanged selection is silent")

	e.SetSelection(-3, 100)
	assert.Equal(t, "abcdef", e.SelectedText(), "ends clamp short of the break")

	e.SelectAll()
	assert.Equal(t, 6, e.CaretIndex())
	e.ClearSelection()
	assert.Zero(t, e.SelectionLength())

	e.SetSelection(1, 3)
	e.EraseSelectedText(false)
	assert.Equal(t, "abcdef\n", e.Text())
	assert.Equal(t, 1, e.CaretIndex())

	e.SetSelection(1, 3)
	e.EraseSelectedText(true)
	assert.Equal(t, "adef\n", e.Text())
}

func TestMultiLineEditbox_Clipboard(t *testing.T) {
	clip := &widgets.MemoryClipboard{}
	e := newEditbox(t, "hello world", widgets.WithClipboard(clip))

	e.SetSelection(0, 5)
	require.True(t, e.HandleKey(widgets.KeyC, widgets.ModCtrl))
	assert.Equal(t, "hello", clip.GetText())

	require.True(t, e.HandleKey(widgets.KeyX, widgets.ModCtrl))
	assert.Equal(t, " world\n", e.Text())
	assert.Equal(t, 0, e.CaretIndex())

	e.SetCaretIndex(6)
	require.True(t, e.HandleKey(widgets.KeyV, widgets.ModCtrl))
	assert.Equal(t, " worldhello\n", e.Text())

	clip.SetText("a\r\nb")
	e.PerformPaste()
	assert.Equal(t, " worldhelloa\nb\n", e.Text(), "CRLF pastes as LF")

	require.True(t, e.HandleKey(widgets.KeyZ, widgets.ModCtrl))
	assert.Equal(t, " worldhello\n", e.Text())
	require.True(t, e.HandleKey(widgets.KeyZ, widgets.ModCtrl|widgets.ModShift))
	assert.Equal(t, " worldhelloa\nb\n", e.Text())
	require.True(t, e.HandleKey(widgets.KeyZ, widgets.ModCtrl))
	require.True(t, e.HandleKey(widgets.KeyY, widgets.ModCtrl))
	assert.Equal(t, " worldhelloa\nb\n", e.Text())

	assert.False(t, e.HandleKey(widgets.KeyV, 0), "plain letters are not shortcuts")
}

func TestMultiLineEditbox_GlobalClipboard(t *testing.T) {
	prev := widgets.GetClipboardProvider()
	t.Cleanup(func() { widgets.SetClipboardProvider(prev) })

	global := &widgets.MemoryClipboard{}
	widgets.SetClipboardProvider(global)

	e := newEditbox(t, "shared")
	e.SelectAll()
	require.True(t, e.PerformCopy())
	assert.Equal(t, "shared", global.GetText())

	widgets.SetClipboardProvider(nil)
	assert.False(t, e.PerformCopy())
}

func TestMultiLineEditbox_MouseSelection(t *testing.T) {
	e := newEditbox(t, "hello big\nworld\n", widgets.WithRenderArea(fixedArea(20, 10)))

	idx, err := e.TextIndexFromPosition(widgets.Vec2{X: 2, Y: 1})
	require.NoError(t, err)
	assert.Equal(t, 12, idx)

	idx, err = e.TextIndexFromPosition(widgets.Vec2{X: 50, Y: 50})
	require.NoError(t, err)
	assert.Equal(t, 15, idx, "far points clamp to the last line's end")

	require.NoError(t, e.HandleMouseDown(widgets.Vec2{X: 2, Y: 1}, 0))
	assert.True(t, e.IsDragging())
	require.NoError(t, e.HandleMouseMove(widgets.Vec2{X: 4, Y: 1}))
	e.HandleMouseUp()
	assert.False(t, e.IsDragging())
	assert.Equal(t, "rl", e.SelectedText())
	assert.Equal(t, 14, e.CaretIndex())

	require.NoError(t, e.HandleMouseMove(widgets.Vec2{X: 0, Y: 0}))
	assert.Equal(t, "rl", e.SelectedText(), "moves without a drag are ignored")

	require.NoError(t, e.HandleMouseDown(widgets.Vec2{X: 0, Y: 0}, widgets.ModShift))
	assert.Equal(t, "hello big\nwo", e.SelectedText())

	bare := newEditbox(t, "x")
	_, err = bare.TextIndexFromPosition(widgets.Vec2{})
	assert.ErrorIs(t, err, widgets.ErrUnsupported)
	assert.ErrorIs(t, bare.HandleMouseDown(widgets.Vec2{}, 0), widgets.ErrUnsupported)
}

func TestMultiLineEditbox_MultiClick(t *testing.T) {
	e := newEditbox(t, "hello big\nworld\n")

	e.SetCaretIndex(7)
	e.HandleDoubleClick()
	assert.Equal(t, "big", e.SelectedText())

	e.SetCaretIndex(2)
	e.HandleTripleClick()
	assert.Equal(t, "hello big", e.SelectedText())
	assert.Equal(t, 9, e.CaretIndex())
}

func TestMultiLineEditbox_EnsureCaretIsVisible(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("line\n")
	}
	e := newEditbox(t, b.String(), widgets.WithRenderArea(fixedArea(20, 3)))

	vert := e.VertScrollbar()
	assert.True(t, vert.IsVisible())
	assert.Equal(t, float32(10), vert.DocumentSize())

	e.SetCaretIndex(e.TextLength() - 1)
	assert.Equal(t, float32(7), vert.ScrollPosition())

	e.SetCaretIndex(6)
	assert.Equal(t, float32(1), vert.ScrollPosition())

	area, err := e.TextRenderArea()
	require.NoError(t, err)
	assert.Equal(t, widgets.Rect{W: 20, H: 3}, area)
}

func TestMultiLineEditbox_ForcedScrollbars(t *testing.T) {
	e := newEditbox(t, "short", widgets.WithRenderArea(fixedArea(20, 10)))
	assert.False(t, e.VertScrollbar().IsVisible())
	assert.False(t, e.HorzScrollbar().IsVisible())

	var vert int
	e.VertScrollbarModeChanged().Subscribe(func(widgets.EditboxEvent) { vert++ })
	e.SetShowVertScrollbar(true)
	assert.True(t, e.IsVertScrollbarAlwaysShown())
	assert.True(t, e.VertScrollbar().IsVisible())
	assert.Equal(t, 1, vert)

	e.SetShowHorzScrollbar(true)
	assert.True(t, e.IsHorzScrollbarAlwaysShown())
	assert.True(t, e.HorzScrollbar().IsVisible())
}

func TestMultiLineEditbox_TextChangedFiresOnce(t *testing.T) {
	e := newEditbox(t, "abc")

	var changes int
	e.TextChanged().Subscribe(func(ev widgets.EditboxEvent) {
		changes++
		assert.Same(t, e, ev.Editbox)
	})

	e.SetSelection(0, 2)
	e.InsertText("z")
	assert.Equal(t, 1, changes)
	assert.Equal(t, "zc\n", e.Text())

	e.InsertText("")
	assert.Equal(t, 1, changes)
}
