package widgets

import "fmt"

// CaretIndex returns the caret position.
func (e *MultiLineEditbox) CaretIndex() int { return e.caret }

// SetCaretIndex moves the caret, clamped to [0, TextLength-1].
func (e *MultiLineEditbox) SetCaretIndex(pos int) {
	pos = clampi(pos, 0, len(e.text)-1)
	if pos == e.caret {
		return
	}
	e.caret = pos
	e.EnsureCaretIsVisible()
	e.caretMoved.Fire(EditboxEvent{Editbox: e})
}

// SelectionStart returns the first selected index.
func (e *MultiLineEditbox) SelectionStart() int { return e.selStart }

// SelectionEnd returns the index after the last selected rune.
func (e *MultiLineEditbox) SelectionEnd() int { return e.selEnd }

// SelectionLength returns the number of selected runes.
func (e *MultiLineEditbox) SelectionLength() int { return e.selEnd - e.selStart }

// SelectedText returns the selected runes as a string.
func (e *MultiLineEditbox) SelectedText() string {
	return string(e.text[e.selStart:e.selEnd])
}

// SetSelection selects [start, end). Both ends are clamped to
// [0, TextLength-1] and swapped if reversed.
func (e *MultiLineEditbox) SetSelection(start, end int) {
	last := len(e.text) - 1
	start = clampi(start, 0, last)
	end = clampi(end, 0, last)
	if start > end {
		start, end = end, start
	}
	if start == e.selStart && end == e.selEnd {
		return
	}
	e.selStart, e.selEnd = start, end
	e.selectionChanged.Fire(EditboxEvent{Editbox: e})
}

// ClearSelection removes the selection.
func (e *MultiLineEditbox) ClearSelection() {
	if e.SelectionLength() != 0 {
		e.SetSelection(0, 0)
	}
}

// SelectAll selects everything except the terminating break.
func (e *MultiLineEditbox) SelectAll() {
	e.dragAnchor = 0
	e.SetCaretIndex(len(e.text) - 1)
	e.SetSelection(0, len(e.text)-1)
}

// extendOrClear applies the result of a navigation step: with Shift the
// selection spans from the drag anchor to the caret, otherwise it is
// cleared.
func (e *MultiLineEditbox) extendOrClear(mods Modifiers) {
	if mods.Has(ModShift) {
		e.SetSelection(e.caret, e.dragAnchor)
	} else {
		e.ClearSelection()
	}
}

// lineText returns the runes of line ln.
func (e *MultiLineEditbox) lineText(ln LineInfo) string {
	return string(e.text[ln.Start : ln.Start+ln.Length])
}

func (e *MultiLineEditbox) charLeft(mods Modifiers) {
	if e.caret > 0 {
		e.SetCaretIndex(e.caret - 1)
	}
	e.extendOrClear(mods)
}

func (e *MultiLineEditbox) charRight(mods Modifiers) {
	if e.caret < len(e.text)-1 {
		e.SetCaretIndex(e.caret + 1)
	}
	e.extendOrClear(mods)
}

func (e *MultiLineEditbox) wordLeft(mods Modifiers) {
	if e.caret > 0 {
		e.SetCaretIndex(wordStartBefore(wordSpans(string(e.text)), e.caret))
	}
	e.extendOrClear(mods)
}

func (e *MultiLineEditbox) wordRight(mods Modifiers) {
	e.SetCaretIndex(nextWordStart(wordSpans(string(e.text)), e.caret, len(e.text)-1))
	e.extendOrClear(mods)
}

// verticalTarget returns the index on line target closest to the caret's
// horizontal pixel offset.
func (e *MultiLineEditbox) verticalTarget(from, target int) int {
	cur := e.lines[from]
	offset := e.font.TextAdvance(string(e.text[cur.Start:e.caret]))

	ln := e.lines[target]
	idx := e.font.CharAtPixel(e.lineText(ln), offset)
	return ln.Start + clampi(idx, 0, max(ln.Length-1, 0))
}

func (e *MultiLineEditbox) lineUp(mods Modifiers) {
	line := e.LineNumberFromIndex(e.caret)
	if line > 0 {
		e.SetCaretIndex(e.verticalTarget(line, line-1))
	}
	e.extendOrClear(mods)
}

func (e *MultiLineEditbox) lineDown(mods Modifiers) {
	line := e.LineNumberFromIndex(e.caret)
	if line < len(e.lines)-1 {
		e.SetCaretIndex(e.verticalTarget(line, line+1))
	}
	e.extendOrClear(mods)
}

func (e *MultiLineEditbox) lineHome(mods Modifiers) {
	line := e.LineNumberFromIndex(e.caret)
	if line < len(e.lines) {
		if start := e.lines[line].Start; e.caret > start {
			e.SetCaretIndex(start)
		}
	}
	e.extendOrClear(mods)
}

func (e *MultiLineEditbox) lineEnd(mods Modifiers) {
	line := e.LineNumberFromIndex(e.caret)
	if line < len(e.lines) {
		ln := e.lines[line]
		if end := ln.Start + ln.Length - 1; e.caret < end {
			e.SetCaretIndex(end)
		}
	}
	e.extendOrClear(mods)
}

// pageLines returns how many lines fit the viewport, at least one.
func (e *MultiLineEditbox) pageLines() int {
	area, err := e.TextRenderArea()
	if err != nil || e.font.LineSpacing() <= 0 {
		return 1
	}
	return max(int(area.H/e.font.LineSpacing()), 1)
}

func (e *MultiLineEditbox) pageUp(mods Modifiers) {
	line := max(e.LineNumberFromIndex(e.caret)-e.pageLines(), 0)
	if line < len(e.lines) {
		e.SetCaretIndex(e.lines[line].Start)
	}
	e.extendOrClear(mods)
}

func (e *MultiLineEditbox) pageDown(mods Modifiers) {
	line := min(e.LineNumberFromIndex(e.caret)+e.pageLines(), len(e.lines)-1)
	if line >= 0 {
		ln := e.lines[line]
		e.SetCaretIndex(ln.Start + ln.Length - 1)
	}
	e.extendOrClear(mods)
}

func (e *MultiLineEditbox) docHome(mods Modifiers) {
	e.SetCaretIndex(0)
	e.extendOrClear(mods)
}

func (e *MultiLineEditbox) docEnd(mods Modifiers) {
	e.SetCaretIndex(len(e.text) - 1)
	e.extendOrClear(mods)
}

// HandleKey applies a key press. Navigation keys move the caret (Ctrl moves
// by word, or to the document ends with Home/End) and Shift extends the
// selection from the anchor captured when the selection gesture began.
// It reports whether the key was consumed.
func (e *MultiLineEditbox) HandleKey(key Key, mods Modifiers) bool {
	if mods.Has(ModShift) && e.SelectionLength() == 0 {
		e.dragAnchor = e.caret
	}
	ctrl := mods.Has(ModCtrl)

	switch key {
	case KeyLeft:
		if ctrl {
			e.wordLeft(mods)
		} else {
			e.charLeft(mods)
		}
	case KeyRight:
		if ctrl {
			e.wordRight(mods)
		} else {
			e.charRight(mods)
		}
	case KeyUp:
		e.lineUp(mods)
	case KeyDown:
		e.lineDown(mods)
	case KeyPageUp:
		e.pageUp(mods)
	case KeyPageDown:
		e.pageDown(mods)
	case KeyHome:
		if ctrl {
			e.docHome(mods)
		} else {
			e.lineHome(mods)
		}
	case KeyEnd:
		if ctrl {
			e.docEnd(mods)
		} else {
			e.lineEnd(mods)
		}
	case KeyBackspace:
		e.Backspace()
	case KeyDelete:
		e.Delete()
	case KeyEnter:
		e.NewLine()
	case KeyA:
		if !ctrl {
			return false
		}
		e.SelectAll()
	case KeyC:
		if !ctrl {
			return false
		}
		e.PerformCopy()
	case KeyX:
		if !ctrl {
			return false
		}
		e.PerformCut()
	case KeyV:
		if !ctrl {
			return false
		}
		e.PerformPaste()
	case KeyZ:
		if !ctrl {
			return false
		}
		if mods.Has(ModShift) {
			e.PerformRedo()
		} else {
			e.PerformUndo()
		}
	case KeyY:
		if !ctrl {
			return false
		}
		e.PerformRedo()
	default:
		return false
	}
	return true
}

// TextIndexFromPosition returns the rune index under pt (widget
// coordinates). Points above or below the text map to the first or last
// line.
func (e *MultiLineEditbox) TextIndexFromPosition(pt Vec2) (int, error) {
	area, err := e.TextRenderArea()
	if err != nil {
		return 0, err
	}
	if len(e.lines) == 0 {
		return 0, nil
	}

	local := pt.Sub(area.Min())
	local.X += e.horz.ScrollPosition()
	local.Y += e.vert.ScrollPosition()

	line := 0
	if sp := e.font.LineSpacing(); sp > 0 {
		line = int(maxf(0, local.Y) / sp)
	}
	line = min(line, len(e.lines)-1)

	ln := e.lines[line]
	idx := e.font.CharAtPixel(e.lineText(ln), local.X)
	idx = clampi(idx, 0, max(ln.Length-1, 0))
	return ln.Start + idx, nil
}

// HandleMouseDown starts a drag selection at pt. With Shift the selection
// extends from the current anchor instead.
func (e *MultiLineEditbox) HandleMouseDown(pt Vec2, mods Modifiers) error {
	idx, err := e.TextIndexFromPosition(pt)
	if err != nil {
		return fmt.Errorf("mouse down: %w", err)
	}
	e.dragging = true
	if mods.Has(ModShift) {
		if e.SelectionLength() == 0 {
			e.dragAnchor = e.caret
		}
		e.SetCaretIndex(idx)
		e.SetSelection(e.caret, e.dragAnchor)
		return nil
	}
	e.ClearSelection()
	e.dragAnchor = idx
	e.SetCaretIndex(idx)
	return nil
}

// HandleMouseMove extends a drag selection to pt.
func (e *MultiLineEditbox) HandleMouseMove(pt Vec2) error {
	if !e.dragging {
		return nil
	}
	idx, err := e.TextIndexFromPosition(pt)
	if err != nil {
		return fmt.Errorf("mouse move: %w", err)
	}
	e.SetCaretIndex(idx)
	e.SetSelection(e.caret, e.dragAnchor)
	return nil
}

// HandleMouseUp ends a drag selection.
func (e *MultiLineEditbox) HandleMouseUp() {
	e.dragging = false
}

// IsDragging reports whether a drag selection is in progress.
func (e *MultiLineEditbox) IsDragging() bool { return e.dragging }

// HandleDoubleClick selects the word under the caret.
func (e *MultiLineEditbox) HandleDoubleClick() {
	span, ok := spanAt(wordSpans(string(e.text)), e.caret)
	if !ok {
		return
	}
	end := min(span.end, len(e.text)-1)
	e.dragAnchor = span.start
	e.SetCaretIndex(end)
	e.SetSelection(span.start, end)
}

// HandleTripleClick selects the paragraph under the caret, without its
// line break.
func (e *MultiLineEditbox) HandleTripleClick() {
	start := e.caret
	for start > 0 && e.text[start-1] != '\n' {
		start--
	}
	end := e.caret
	for end < len(e.text)-1 && e.text[end] != '\n' {
		end++
	}
	e.dragAnchor = start
	e.SetCaretIndex(end)
	e.SetSelection(start, end)
}
