// Command widgetdemo shows a sortable multi-column list next to a
// word-wrapping editbox in the terminal.
//
//	go run ./cmd/widgetdemo [-v] [-log widgetdemo.log]
//
// Tab switches focus. In the list, 1-3 sort by a column (again to flip the
// direction) and ctrl+a selects every row; in the editbox the usual editing
// keys work, including ctrl+z / ctrl+y. ctrl+q quits.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/widgets"
)

var (
	paneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240"))
	focusStyle   = paneStyle.BorderForeground(lipgloss.Color("205"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("230")).Background(lipgloss.Color("62"))
	selectStyle  = lipgloss.NewStyle().Reverse(true)
	caretStyle   = lipgloss.NewStyle().Background(lipgloss.Color("205")).Foreground(lipgloss.Color("0"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
)

type keyMap struct {
	Quit   key.Binding
	Switch key.Binding
	Sort   key.Binding
}

var keys = keyMap{
	Quit:   key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
	Switch: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "focus")),
	Sort:   key.NewBinding(key.WithKeys("1", "2", "3"), key.WithHelp("1-3", "sort")),
}

// teaKeys maps terminal keys to widget keys.
var teaKeys = map[tea.KeyType]struct {
	key  widgets.Key
	mods widgets.Modifiers
}{
	tea.KeyLeft:           {widgets.KeyLeft, 0},
	tea.KeyRight:          {widgets.KeyRight, 0},
	tea.KeyUp:             {widgets.KeyUp, 0},
	tea.KeyDown:           {widgets.KeyDown, 0},
	tea.KeyShiftLeft:      {widgets.KeyLeft, widgets.ModShift},
	tea.KeyShiftRight:     {widgets.KeyRight, widgets.ModShift},
	tea.KeyShiftUp:        {widgets.KeyUp, widgets.ModShift},
	tea.KeyShiftDown:      {widgets.KeyDown, widgets.ModShift},
	tea.KeyCtrlLeft:       {widgets.KeyLeft, widgets.ModCtrl},
	tea.KeyCtrlRight:      {widgets.KeyRight, widgets.ModCtrl},
	tea.KeyCtrlShiftLeft:  {widgets.KeyLeft, widgets.ModCtrl | widgets.ModShift},
	tea.KeyCtrlShiftRight: {widgets.KeyRight, widgets.ModCtrl | widgets.ModShift},
	tea.KeyHome:           {widgets.KeyHome, 0},
	tea.KeyEnd:            {widgets.KeyEnd, 0},
	tea.KeyShiftHome:      {widgets.KeyHome, widgets.ModShift},
	tea.KeyShiftEnd:       {widgets.KeyEnd, widgets.ModShift},
	tea.KeyCtrlHome:       {widgets.KeyHome, widgets.ModCtrl},
	tea.KeyCtrlEnd:        {widgets.KeyEnd, widgets.ModCtrl},
	tea.KeyPgUp:           {widgets.KeyPageUp, 0},
	tea.KeyPgDown:         {widgets.KeyPageDown, 0},
	tea.KeyDelete:         {widgets.KeyDelete, 0},
	tea.KeyBackspace:      {widgets.KeyBackspace, 0},
	tea.KeyEnter:          {widgets.KeyEnter, 0},
	tea.KeyCtrlA:          {widgets.KeyA, widgets.ModCtrl},
	tea.KeyCtrlC:          {widgets.KeyC, widgets.ModCtrl},
	tea.KeyCtrlV:          {widgets.KeyV, widgets.ModCtrl},
	tea.KeyCtrlX:          {widgets.KeyX, widgets.ModCtrl},
	tea.KeyCtrlY:          {widgets.KeyY, widgets.ModCtrl},
	tea.KeyCtrlZ:          {widgets.KeyZ, widgets.ModCtrl},
}

type model struct {
	header *widgets.ListHeader
	list   *widgets.MultiColumnList
	edit   *widgets.MultiLineEditbox

	listArea *widgets.FrameArea
	editArea *widgets.FrameArea

	ring   *widgets.FocusRing
	width  int
	height int
	status string
}

var files = []struct {
	name, size, kind string
}{
	{"header.go", "14k", "source"},
	{"grid.go", "2k", "source"},
	{"README.md", "6k", "doc"},
	{"go.mod", "1k", "module"},
	{"editbox_format.go", "5k", "source"},
	{"DESIGN.md", "12k", "doc"},
	{"undo.go", "3k", "source"},
}

func newModel() (*model, error) {
	font := widgets.NewCellFont(1, 1)
	m := &model{header: widgets.NewListHeader()}

	listVert, listHorz := widgets.NewScrollbarModel(), widgets.NewScrollbarModel()
	m.listArea = widgets.NewFrameArea(widgets.Rect{}, 1, 1, listVert, listHorz)
	m.list = widgets.NewMultiColumnList(
		widgets.WithHeader(m.header),
		widgets.WithScrollbars(listVert, listHorz),
		widgets.WithRenderArea(m.listArea),
		widgets.WithSelectionMode(widgets.RowMultiple),
	)
	m.list.AddColumn("Name", 1, 20)
	m.list.AddColumn("Size", 2, 8)
	m.list.AddColumn("Kind", 3, 10)
	m.list.SetSortDirection(widgets.SortAscending)
	for i, f := range files {
		row, err := m.list.AddRowWithItem(widgets.NewTextItem(f.name, uint(i), font), 1, uint(i))
		if err != nil {
			return nil, err
		}
		_ = m.list.SetItemWithColumnID(widgets.NewTextItem(f.size, uint(i), font), 2, row)
		_ = m.list.SetItemWithColumnID(widgets.NewTextItem(f.kind, uint(i), font), 3, row)
	}
	m.list.SelectionChanged().Subscribe(func(widgets.ListEvent) {
		m.status = fmt.Sprintf("%d cells selected", m.list.SelectedCount())
	})

	editVert, editHorz := widgets.NewScrollbarModel(), widgets.NewScrollbarModel()
	m.editArea = widgets.NewFrameArea(widgets.Rect{}, 0, 1, editVert, editHorz)
	edit, err := widgets.NewMultiLineEditbox(font,
		widgets.WithScrollbars(editVert, editHorz),
		widgets.WithRenderArea(m.editArea),
		widgets.WithClipboard(&widgets.MemoryClipboard{}),
		widgets.WithMaxTextLength(4096),
	)
	if err != nil {
		return nil, err
	}
	m.edit = edit
	m.edit.SetText("Select a file on the left, then type here.\n\nLong lines wrap at word boundaries when they reach the edge of the pane, and an overlong token is split where it no longer fits.\n")
	m.edit.EditboxFull().Subscribe(func(widgets.EditboxEvent) {
		m.status = warningStyle.Render("editbox full")
	})

	m.ring = widgets.NewFocusRing(m.list, m.edit)
	return m, nil
}

func (m *model) Init() tea.Cmd { return nil }

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Switch):
			m.ring.FocusNext()
			return m, nil
		case m.ring.IsFocused(m.list) && key.Matches(msg, keys.Sort):
			col := int(msg.Runes[0] - '1')
			if err := m.header.ClickColumn(col); err != nil {
				m.status = warningStyle.Render(err.Error())
			}
			return m, nil
		}
		m.status = ""
		if k, ok := teaKeys[msg.Type]; ok {
			m.ring.HandleKey(k.key, k.mods)
			return m, nil
		}
		switch msg.Type {
		case tea.KeySpace:
			m.ring.HandleChar(' ')
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.ring.HandleChar(r)
			}
		}
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	}
	return m, nil
}

// resize splits the terminal in two panes. Pane frames exclude the border.
func (m *model) resize(w, h int) {
	m.width, m.height = w, h
	paneH := float32(max(h-3, 1))
	listW := float32(max(w/2-2, 1))
	editW := float32(max(w-w/2-2, 1))

	m.listArea.Frame = widgets.Rect{W: listW, H: paneH}
	m.editArea.Frame = widgets.Rect{W: editW, H: paneH}
	m.list.SetRenderArea(m.listArea)
	m.edit.SetRenderArea(m.editArea)
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	if msg.Button != tea.MouseButtonLeft {
		return
	}
	var mods widgets.Modifiers
	if msg.Shift {
		mods |= widgets.ModShift
	}
	if msg.Ctrl {
		mods |= widgets.ModCtrl
	}

	half := m.width / 2
	if msg.X < half {
		if msg.Action == tea.MouseActionPress {
			m.ring.Focus(m.list)
			_ = m.list.HandleClick(widgets.Vec2{X: float32(msg.X - 1), Y: float32(msg.Y - 1)}, mods)
		}
		return
	}

	pt := widgets.Vec2{X: float32(msg.X - half - 1), Y: float32(msg.Y - 1)}
	switch msg.Action {
	case tea.MouseActionPress:
		m.ring.Focus(m.edit)
		_ = m.edit.HandleMouseDown(pt, mods)
	case tea.MouseActionMotion:
		_ = m.edit.HandleMouseMove(pt)
	case tea.MouseActionRelease:
		m.edit.HandleMouseUp()
	}
}

func (m *model) View() string {
	if m.width == 0 {
		return ""
	}
	left, right := paneStyle, paneStyle
	if m.ring.IsFocused(m.list) {
		left = focusStyle
	} else {
		right = focusStyle
	}

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		left.Render(m.viewList()),
		right.Render(m.viewEditbox()),
	)
	help := fmt.Sprintf("%s %s · %s %s · %s %s",
		keys.Switch.Help().Key, keys.Switch.Help().Desc,
		keys.Sort.Help().Key, keys.Sort.Help().Desc,
		keys.Quit.Help().Key, keys.Quit.Help().Desc)
	return panes + "\n" + statusStyle.Render(help) + "  " + m.status
}

// fit pads or truncates s to exactly w terminal cells.
func fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

func sortMark(d widgets.SortDirection) string {
	switch d {
	case widgets.SortAscending:
		return " ▲"
	case widgets.SortDescending:
		return " ▼"
	}
	return ""
}

func (m *model) viewList() string {
	width := int(m.listArea.Frame.W)
	area, err := m.list.ListRenderArea()
	if err != nil {
		return fit(err.Error(), width)
	}

	var b strings.Builder
	var header strings.Builder
	for c := 0; c < m.list.ColumnCount(); c++ {
		seg, err := m.list.HeaderSegmentForColumn(c)
		if err != nil {
			continue
		}
		header.WriteString(fit(seg.Text()+sortMark(seg.SortDirection()), int(seg.Width())))
	}
	b.WriteString(headerStyle.Render(fit(header.String(), width)))

	first := int(m.list.VertScrollbar().ScrollPosition())
	rows := int(area.H)
	for r := first; r < first+rows; r++ {
		b.WriteByte('\n')
		if r >= m.list.RowCount() {
			b.WriteString(fit("", width))
			continue
		}
		var line strings.Builder
		selected := false
		for c := 0; c < m.list.ColumnCount(); c++ {
			w, _ := m.list.ColumnHeaderWidth(c)
			slot, _ := m.list.ItemAt(widgets.GridRef{Row: r, Column: c})
			text := ""
			if item, ok := slot.Item(); ok {
				text = item.Text()
				selected = selected || item.IsSelected()
			}
			line.WriteString(fit(text, int(w)))
		}
		row := fit(line.String(), width)
		if selected {
			row = selectStyle.Render(row)
		}
		b.WriteString(row)
	}
	return b.String()
}

func (m *model) viewEditbox() string {
	width := int(m.editArea.Frame.W)
	area, err := m.edit.TextRenderArea()
	if err != nil {
		return fit(err.Error(), width)
	}

	text := []rune(m.edit.Text())
	lines := m.edit.Lines()
	caret := m.edit.CaretIndex()
	selStart, selEnd := m.edit.SelectionStart(), m.edit.SelectionEnd()
	clip, err := m.edit.VisibleLines()
	if err != nil {
		return fit(err.Error(), width)
	}

	var b strings.Builder
	for row := 0; row < int(area.H); row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		i := clip.Start + row
		if !clip.Contains(i) {
			b.WriteString(fit("", width))
			continue
		}
		ln := lines[i]
		cells := 0
		for idx := ln.Start; idx < ln.Start+ln.Length; idx++ {
			r := text[idx]
			s := string(r)
			if r == '\n' || r == '\t' {
				s = " "
			}
			switch {
			case idx == caret && m.ring.IsFocused(m.edit):
				s = caretStyle.Render(s)
			case idx >= selStart && idx < selEnd:
				s = selectStyle.Render(s)
			case r == '\n':
				continue
			}
			b.WriteString(s)
			cells += runewidth.StringWidth(string(r))
			if r == '\n' || r == '\t' {
				cells++
			}
		}
		if cells < width {
			b.WriteString(strings.Repeat(" ", width-cells))
		}
	}
	return b.String()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	verbose := flag.Bool("v", false, "log widget debug output")
	logPath := flag.String("log", "widgetdemo.log", "file receiving widget logs")
	flag.Parse()

	if *verbose {
		f, err := os.Create(*logPath)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		widgets.SetLogOutput(f)
		widgets.SetVerbose(true)
	}

	m, err := newModel()
	if err != nil {
		return fmt.Errorf("build widgets: %w", err)
	}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
