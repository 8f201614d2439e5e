/*
Package widgets provides the data-model cores of two retained-mode widgets:
a multi-column grid list and a word-wrapping multi-line editbox.

# Overview

Neither widget draws anything. Each owns its state (grid cells, selection,
text buffer, line table, caret, undo history) and talks to the outside world
through small collaborator interfaces:

	Header        column order, widths and sort settings (ListHeader)
	Scrollbar     document/page/position model (ScrollbarModel)
	AreaProvider  the rectangle content is drawn into (FrameArea, AreaFunc)
	Font          text metrics (CellFont)
	ClipboardProvider  text clipboard (MemoryClipboard, backend/glfw)

Every collaborator has a default implementation in this package, so both
widgets work out of the box and can be driven headless in tests.

# Quick Start

	font := widgets.NewCellFont(8, 16)

	list := widgets.NewMultiColumnList(widgets.WithSelectionMode(widgets.RowMultiple))
	list.AddColumn("Name", 1, 120)
	list.AddColumn("Size", 2, 60)
	row, _ := list.AddRowWithItem(widgets.NewTextItem("go.mod", 0, font), 1, 0)
	_ = list.SetItemWithColumnID(widgets.NewTextItem("1k", 0, font), 2, row)
	list.SetSortDirection(widgets.SortAscending)

	edit, _ := widgets.NewMultiLineEditbox(font,
	    widgets.WithRenderArea(widgets.AreaFunc(func() widgets.Rect {
	        return widgets.Rect{W: 320, H: 200}
	    })),
	)
	edit.SetText("hello world\n")
	edit.TextChanged().Subscribe(func(e widgets.EditboxEvent) { save(e.Editbox.Text()) })

# Events

Widgets announce changes through Event values. Listeners run synchronously,
in subscription order, after the change is complete. A listener must not
call back into the widget that is firing.

# Errors

Operations that take indices or references return errors wrapping
ErrOutOfRange (index past the current bounds), ErrInvalidReference (item,
segment or id not in this widget) or ErrUnsupported (a collaborator such as
the render area is missing). On error the widget is unchanged. A full
editbox is not an error: the insertion is dropped and EditboxFull fires.

# MultiColumnList

Column structure lives in the Header; the list keeps one Slot per column in
every row and follows header moves through SegmentSequenceChanged. Rows are
inserted at their sorted position when a sort direction is set. Items are
owned by the list while in the grid; removal disposes auto-deleted items and
hands the others back.

Keyboard and mouse:

	Click            Select the clicked cell (per selection mode)
	Ctrl+Click       Toggle the clicked cell (multi-select modes)
	Shift+Click      Select the rectangle from the last clicked cell
	Up / Down        Move the selection one row
	Home / End       Select the first / last row
	Ctrl+A           Select everything (multi-select modes)

# MultiLineEditbox

The buffer always ends with a line break. Indices are rune indices. Text is
wrapped greedily at spaces and tabs; a word wider than the viewport is split.

Navigation:

	Left / Right     Move one character
	Ctrl+Left/Right  Move one word
	Up / Down        Move one line, keeping the horizontal position
	PageUp/PageDown  Move one page
	Home / End       Jump to line start / end
	Ctrl+Home/End    Jump to document start / end

Holding Shift with any navigation key extends the selection from where the
selection started.

Editing:

	Backspace        Delete selection or previous character
	Delete           Delete selection or next character
	Enter            Insert a line break
	Ctrl+A           Select all
	Ctrl+C           Copy
	Ctrl+X           Cut
	Ctrl+V           Paste
	Ctrl+Z           Undo
	Ctrl+Y           Redo
	Ctrl+Shift+Z     Redo

Mouse:

	Press/drag       Place caret / select
	Shift+Press      Extend the selection
	Double click     Select word
	Triple click     Select paragraph

# Focus and rendering helpers

A FocusRing routes keyboard input between widgets. Ctrl+Tab and
Ctrl+Shift+Tab cycle focus; everything else reaches the focused widget:

	ring := widgets.NewFocusRing(list, edit)
	input.Focus(ring)

MultiLineEditbox.VisibleLines returns a LineClipper with the range of
lines inside the render area, so hosts only draw what can be seen.

# Logging

Structural changes (rows and columns added or removed, resorts, reformat
statistics, undo application) are logged with log/slog at Debug level.
Enable them with SetVerbose(true) and redirect them with SetLogOutput.
*/
package widgets
