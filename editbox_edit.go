package widgets

import (
	"slices"
	"strings"
)

// eraseSelection deletes the selected runes from the buffer and records the
// deletion. It returns where the caret belongs afterwards. Layout and
// notifications are left to the caller.
func (e *MultiLineEditbox) eraseSelection() int {
	if e.SelectionLength() == 0 {
		return e.caret
	}
	start, end := e.selStart, e.selEnd
	e.undo.Add(UndoAction{Type: UndoDelete, Start: start, Text: string(e.text[start:end]), Caret: e.caret})
	e.text = slices.Delete(e.text, start, end)
	e.markDirty(start)
	return start
}

// EraseSelectedText removes the selection. With modifyText false only the
// bookkeeping happens: the caret moves to the selection start and the
// selection is cleared, the buffer is untouched.
func (e *MultiLineEditbox) EraseSelectedText(modifyText bool) {
	if e.SelectionLength() == 0 {
		return
	}
	if !modifyText {
		start := e.selStart
		e.SetCaretIndex(start)
		e.ClearSelection()
		return
	}
	if e.readOnly {
		return
	}
	e.onTextChanged(e.eraseSelection())
}

// insertText replaces the selection with ins at the caret. It reports
// whether the buffer changed; an insertion that would bring the length to
// MaxTextLength or beyond fires EditboxFull instead.
func (e *MultiLineEditbox) insertText(ins []rune) bool {
	if e.readOnly || len(ins) == 0 {
		return false
	}
	if len(e.text)-e.SelectionLength()+len(ins) >= e.maxLen {
		e.editboxFull.Fire(EditboxEvent{Editbox: e})
		return false
	}

	at := e.eraseSelection()
	e.undo.Add(UndoAction{Type: UndoInsert, Start: at, Text: string(ins), Caret: at})
	e.text = slices.Insert(e.text, at, ins...)
	e.markDirty(at)
	e.onTextChanged(at + len(ins))
	return true
}

// InsertText types text at the caret, replacing any selection.
func (e *MultiLineEditbox) InsertText(text string) bool {
	return e.insertText([]rune(text))
}

// InsertChar types r at the caret. Runes the font cannot draw are ignored.
func (e *MultiLineEditbox) InsertChar(r rune) bool {
	if !e.font.HasGlyph(r) {
		return false
	}
	return e.insertText([]rune{r})
}

// HandleChar is the character-input entry point. It reports whether the
// rune was consumed, which includes a rejected insertion into a full
// editbox.
func (e *MultiLineEditbox) HandleChar(r rune) bool {
	if e.readOnly {
		return false
	}
	if r == '\n' || r == '\r' {
		e.NewLine()
		return true
	}
	if !e.font.HasGlyph(r) {
		return false
	}
	e.insertText([]rune{r})
	return true
}

// NewLine inserts a line break at the caret.
func (e *MultiLineEditbox) NewLine() bool {
	return e.insertText([]rune{'\n'})
}

// Backspace deletes the selection, or the rune before the caret.
func (e *MultiLineEditbox) Backspace() bool {
	if e.readOnly {
		return false
	}
	if e.SelectionLength() != 0 {
		e.onTextChanged(e.eraseSelection())
		return true
	}
	if e.caret == 0 {
		return false
	}
	at := e.caret - 1
	e.undo.Add(UndoAction{Type: UndoDelete, Start: at, Text: string(e.text[at]), Caret: e.caret})
	e.text = slices.Delete(e.text, at, at+1)
	e.markDirty(at)
	e.onTextChanged(at)
	return true
}

// Delete deletes the selection, or the rune at the caret. The terminating
// line break cannot be deleted.
func (e *MultiLineEditbox) Delete() bool {
	if e.readOnly {
		return false
	}
	if e.SelectionLength() != 0 {
		e.onTextChanged(e.eraseSelection())
		return true
	}
	if e.caret >= len(e.text)-1 {
		return false
	}
	at := e.caret
	e.undo.Add(UndoAction{Type: UndoDelete, Start: at, Text: string(e.text[at]), Caret: at})
	e.text = slices.Delete(e.text, at, at+1)
	e.markDirty(at)
	e.onTextChanged(at)
	return true
}

func (e *MultiLineEditbox) clipboardProvider() ClipboardProvider {
	return widgetClipboard(e.clipboard)
}

// PerformCopy copies the selection to the clipboard. Works when read only.
func (e *MultiLineEditbox) PerformCopy() bool {
	cb := e.clipboardProvider()
	if cb == nil || e.SelectionLength() == 0 {
		return false
	}
	cb.SetText(e.SelectedText())
	return true
}

// PerformCut copies the selection to the clipboard and erases it.
func (e *MultiLineEditbox) PerformCut() bool {
	if e.readOnly || !e.PerformCopy() {
		return false
	}
	e.onTextChanged(e.eraseSelection())
	return true
}

// PerformPaste replaces the selection with the clipboard text. CRLF line
// endings are converted to LF.
func (e *MultiLineEditbox) PerformPaste() bool {
	if e.readOnly {
		return false
	}
	cb := e.clipboardProvider()
	if cb == nil {
		return false
	}
	text := strings.ReplaceAll(cb.GetText(), "\r\n", "\n")
	if text == "" {
		return false
	}
	return e.insertText([]rune(text))
}

// applicable reports whether a can be replayed against the current buffer.
func (e *MultiLineEditbox) applicable(a UndoAction, inserting bool) bool {
	if a.Start < 0 || a.Start > len(e.text)-1 {
		return false
	}
	if inserting {
		return true
	}
	n := a.runeLen()
	return a.Start+n <= len(e.text)-1 && string(e.text[a.Start:a.Start+n]) == a.Text
}

// PerformUndo reverts the last applied edit and puts the caret back where
// it was before that edit.
func (e *MultiLineEditbox) PerformUndo() bool {
	if e.readOnly {
		return false
	}
	a, ok := e.undo.Undo()
	if !ok {
		return false
	}
	if !e.applicable(a, a.Type == UndoDelete) {
		editLogger.Warn("undo history out of sync, clearing", "type", a.Type, "start", a.Start)
		e.undo.Clear()
		return false
	}

	switch a.Type {
	case UndoInsert:
		e.text = slices.Delete(e.text, a.Start, a.Start+a.runeLen())
	case UndoDelete:
		e.text = slices.Insert(e.text, a.Start, []rune(a.Text)...)
	}
	e.markDirty(a.Start)
	editLogger.Debug("undo applied", "type", a.Type, "start", a.Start, "runes", a.runeLen())
	e.onTextChanged(a.Caret)
	return true
}

// PerformRedo re-applies the last undone edit.
func (e *MultiLineEditbox) PerformRedo() bool {
	if e.readOnly {
		return false
	}
	a, ok := e.undo.Redo()
	if !ok {
		return false
	}
	if !e.applicable(a, a.Type == UndoInsert) {
		editLogger.Warn("redo history out of sync, clearing", "type", a.Type, "start", a.Start)
		e.undo.Clear()
		return false
	}

	caret := a.Start
	switch a.Type {
	case UndoInsert:
		e.text = slices.Insert(e.text, a.Start, []rune(a.Text)...)
		caret += a.runeLen()
	case UndoDelete:
		e.text = slices.Delete(e.text, a.Start, a.Start+a.runeLen())
	}
	e.markDirty(a.Start)
	editLogger.Debug("redo applied", "type", a.Type, "start", a.Start, "runes", a.runeLen())
	e.onTextChanged(caret)
	return true
}
