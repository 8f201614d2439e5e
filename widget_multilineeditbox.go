package widgets

import (
	"fmt"
	"math"
)

// DefaultMaxTextLength is the default capacity of a MultiLineEditbox.
const DefaultMaxTextLength = math.MaxInt32

// minTextLength leaves room for the terminating break of an empty buffer.
const minTextLength = 2

// EditboxEvent is the payload of editbox notifications.
type EditboxEvent struct {
	Editbox *MultiLineEditbox
}

// MultiLineEditbox is a word-wrapping multi-line text editor core.
//
// The buffer always ends with a line break. Indices (caret, selection,
// line starts, undo actions) are rune indices into the buffer. The caret
// stays within [0, TextLength-1] and the selection satisfies
// start <= end <= TextLength-1.
//
// MaxTextLength bounds the whole buffer including the terminating break:
// the length always stays below it, so an edit that would meet or exceed it
// is refused with EditboxFull.
//
// A MultiLineEditbox is not safe for concurrent use.
type MultiLineEditbox struct {
	font Font
	text []rune

	lines       []LineInfo
	widest      float32
	formatWidth float32 // Viewport width the lines were wrapped for
	dirtyFrom   int     // First rune index changed since the last format (-1 = clean)

	caret      int
	selStart   int
	selEnd     int
	dragAnchor int
	dragging   bool

	maxLen    int
	wordWrap  bool
	readOnly  bool
	forceVert bool
	forceHorz bool

	undo      *UndoHandler
	clipboard ClipboardProvider

	vert Scrollbar
	horz Scrollbar
	area AreaProvider

	textChanged      Event[EditboxEvent]
	caretMoved       Event[EditboxEvent]
	selectionChanged Event[EditboxEvent]
	editboxFull      Event[EditboxEvent]
	readOnlyChanged  Event[EditboxEvent]
	wordWrapChanged  Event[EditboxEvent]
	maxLengthChanged Event[EditboxEvent]
	vertModeChanged  Event[EditboxEvent]
	horzModeChanged  Event[EditboxEvent]
}

// NewMultiLineEditbox creates an editbox holding just the terminating line
// break. font is required.
func NewMultiLineEditbox(font Font, opts ...Option) (*MultiLineEditbox, error) {
	if font == nil {
		return nil, fmt.Errorf("editbox needs a font: %w", ErrUnsupported)
	}
	o := applyOptions(opts)

	e := &MultiLineEditbox{
		font:      font,
		text:      []rune{'\n'},
		dirtyFrom: 0,
		maxLen:    max(GetOpt(o, OptMaxTextLength), minTextLength),
		wordWrap:  GetOpt(o, OptWordWrap),
		readOnly:  GetOpt(o, OptReadOnly),
		forceVert: GetOpt(o, OptForceVertScrollbar),
		forceHorz: GetOpt(o, OptForceHorzScrollbar),
		undo:      NewUndoHandler(GetOpt(o, OptUndoLimit)),
		clipboard: GetOpt(o, OptClipboard),
		vert:      GetOpt(o, OptVertScrollbar),
		horz:      GetOpt(o, OptHorzScrollbar),
		area:      GetOpt(o, OptRenderArea),
	}
	if e.vert == nil {
		e.vert = NewScrollbarModel()
	}
	if e.horz == nil {
		e.horz = NewScrollbarModel()
	}
	e.formatText(true)
	return e, nil
}

// Font returns the metrics used for layout.
func (e *MultiLineEditbox) Font() Font { return e.font }

// VertScrollbar returns the vertical scrollbar.
func (e *MultiLineEditbox) VertScrollbar() Scrollbar { return e.vert }

// HorzScrollbar returns the horizontal scrollbar.
func (e *MultiLineEditbox) HorzScrollbar() Scrollbar { return e.horz }

// SetRenderArea sets the render-area collaborator and re-wraps the text.
func (e *MultiLineEditbox) SetRenderArea(area AreaProvider) {
	e.area = area
	e.formatText(true)
	e.EnsureCaretIsVisible()
}

// Text returns the buffer, including the terminating line break.
func (e *MultiLineEditbox) Text() string { return string(e.text) }

// TextLength returns the buffer length in runes, including the terminating
// line break.
func (e *MultiLineEditbox) TextLength() int { return len(e.text) }

// SetText replaces the whole buffer. A missing terminating break is added.
// Text that would reach MaxTextLength is cut to MaxTextLength-1 runes and
// EditboxFull fires. The undo
// history is cleared.
func (e *MultiLineEditbox) SetText(text string) {
	r := []rune(text)
	if len(r) == 0 || r[len(r)-1] != '\n' {
		r = append(r, '\n')
	}
	truncated := len(r) >= e.maxLen
	if truncated {
		r = append(r[:e.maxLen-2], '\n')
	}

	e.text = r
	e.dirtyFrom = 0
	e.undo.Clear()
	e.onTextChanged(e.caret)
	if truncated {
		e.editboxFull.Fire(EditboxEvent{Editbox: e})
	}
}

// markDirty records that the buffer changed at or after idx.
func (e *MultiLineEditbox) markDirty(idx int) {
	if e.dirtyFrom < 0 || idx < e.dirtyFrom {
		e.dirtyFrom = max(idx, 0)
	}
}

// onTextChanged runs after every buffer mutation: the terminator is
// restored, the selection cleared, the text re-wrapped, the caret moved to
// caret (clamped) and scrolled into view, and TextChanged fires.
func (e *MultiLineEditbox) onTextChanged(caret int) {
	if len(e.text) == 0 || e.text[len(e.text)-1] != '\n' {
		e.markDirty(len(e.text))
		e.text = append(e.text, '\n')
	}
	e.ClearSelection()
	e.formatText(false)
	e.SetCaretIndex(caret)
	e.EnsureCaretIsVisible()
	e.textChanged.Fire(EditboxEvent{Editbox: e})
}

// IsReadOnly reports whether editing is disabled.
func (e *MultiLineEditbox) IsReadOnly() bool { return e.readOnly }

// SetReadOnly enables or disables editing. Copying still works when read
// only.
func (e *MultiLineEditbox) SetReadOnly(readOnly bool) {
	if readOnly == e.readOnly {
		return
	}
	e.readOnly = readOnly
	e.readOnlyChanged.Fire(EditboxEvent{Editbox: e})
}

// MaxTextLength returns the capacity in runes, terminating break included.
// The buffer is always shorter than the capacity.
func (e *MultiLineEditbox) MaxTextLength() int { return e.maxLen }

// SetMaxTextLength changes the capacity, at least 2. Text that reaches the
// new capacity is truncated below it and the undo history is cleared; the
// truncation itself cannot be undone.
func (e *MultiLineEditbox) SetMaxTextLength(n int) {
	n = max(n, minTextLength)
	if n == e.maxLen {
		return
	}
	e.maxLen = n
	e.maxLengthChanged.Fire(EditboxEvent{Editbox: e})

	if len(e.text) >= n {
		e.text = append(e.text[:n-2], '\n')
		e.markDirty(n - 2)
		e.undo.Clear()
		editLogger.Debug("text truncated", "maxLength", n)
		e.onTextChanged(e.caret)
	}
}

// IsWordWrapped reports whether long lines wrap at the viewport width.
func (e *MultiLineEditbox) IsWordWrapped() bool { return e.wordWrap }

// SetWordWrapping turns wrapping on or off.
func (e *MultiLineEditbox) SetWordWrapping(wrap bool) {
	if wrap == e.wordWrap {
		return
	}
	e.wordWrap = wrap
	e.formatText(true)
	e.EnsureCaretIsVisible()
	e.wordWrapChanged.Fire(EditboxEvent{Editbox: e})
}

// UndoHandler returns the edit history.
func (e *MultiLineEditbox) UndoHandler() *UndoHandler { return e.undo }

// Event accessors.

func (e *MultiLineEditbox) TextChanged() *Event[EditboxEvent]          { return &e.textChanged }
func (e *MultiLineEditbox) CaretMoved() *Event[EditboxEvent]           { return &e.caretMoved }
func (e *MultiLineEditbox) TextSelectionChanged() *Event[EditboxEvent] { return &e.selectionChanged }
func (e *MultiLineEditbox) EditboxFull() *Event[EditboxEvent]          { return &e.editboxFull }
func (e *MultiLineEditbox) ReadOnlyModeChanged() *Event[EditboxEvent]  { return &e.readOnlyChanged }
func (e *MultiLineEditbox) WordWrapModeChanged() *Event[EditboxEvent]  { return &e.wordWrapChanged }
func (e *MultiLineEditbox) MaximumTextLengthChanged() *Event[EditboxEvent] {
	return &e.maxLengthChanged
}
func (e *MultiLineEditbox) VertScrollbarModeChanged() *Event[EditboxEvent] { return &e.vertModeChanged }
func (e *MultiLineEditbox) HorzScrollbarModeChanged() *Event[EditboxEvent] { return &e.horzModeChanged }
