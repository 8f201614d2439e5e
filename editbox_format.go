package widgets

import "sort"

// LineInfo describes one visual line of a MultiLineEditbox.
type LineInfo struct {
	Start  int     // Rune index of the first character
	Length int     // Runes on the line, including a trailing line break
	Extent float32 // Pixel width of the line
}

// Lines returns a copy of the current line table.
func (e *MultiLineEditbox) Lines() []LineInfo {
	out := make([]LineInfo, len(e.lines))
	copy(out, e.lines)
	return out
}

// LineCount returns the number of visual lines.
func (e *MultiLineEditbox) LineCount() int { return len(e.lines) }

// WidestExtent returns the pixel width of the widest line.
func (e *MultiLineEditbox) WidestExtent() float32 { return e.widest }

// LineNumberFromIndex returns the line containing rune index idx. Indices
// at or past the terminating break map to the last line.
func (e *MultiLineEditbox) LineNumberFromIndex(idx int) int {
	n := len(e.lines)
	if n == 0 {
		return 0
	}
	if idx >= len(e.text)-1 {
		return n - 1
	}
	if idx < 0 {
		return 0
	}
	l := sort.Search(n, func(i int) bool {
		return e.lines[i].Start+e.lines[i].Length > idx
	})
	return min(l, n-1)
}

// wrapWidth returns the width lines wrap at, or 0 for no wrapping.
func (e *MultiLineEditbox) wrapWidth() float32 {
	if !e.wordWrap || e.area == nil {
		return 0
	}
	return e.area.ContentArea().W
}

// FormatText rebuilds the line table. Unless recomputeAll is set, lines
// ahead of the first paragraph touched since the last format are kept when
// the viewport width has not changed. Scrollbars are reconfigured, and if
// that changes the viewport width the text is wrapped again.
func (e *MultiLineEditbox) FormatText(recomputeAll bool) {
	e.formatText(recomputeAll)
}

func (e *MultiLineEditbox) formatText(recomputeAll bool) {
	width := e.wrapWidth()
	e.layout(width, recomputeAll)
	if e.area == nil {
		return
	}

	e.ConfigureScrollbars()
	if w := e.wrapWidth(); w != width {
		e.layout(w, true)
		e.ConfigureScrollbars()
	}
}

// layout wraps the buffer for the given width.
func (e *MultiLineEditbox) layout(width float32, recomputeAll bool) {
	keep := 0
	if !recomputeAll && width == e.formatWidth && e.dirtyFrom > 0 {
		keep = e.reusableLines(e.dirtyFrom)
	}

	e.lines = e.lines[:keep]
	e.widest = 0
	for _, ln := range e.lines {
		e.widest = maxf(e.widest, ln.Extent)
	}

	pos := 0
	if keep > 0 {
		last := e.lines[keep-1]
		pos = last.Start + last.Length
	}
	for pos < len(e.text) {
		paraLen := paragraphLen(e.text, pos)
		e.layoutParagraph(pos, paraLen, width)
		pos += paraLen
	}

	if widgetVerbose() {
		editLogger.Debug("text formatted", "lines", len(e.lines), "reused", keep, "width", width, "widest", e.widest)
	}

	e.formatWidth = width
	e.dirtyFrom = -1
}

// reusableLines returns how many leading lines are unaffected by a change at
// rune index dirty: every line before the start of the paragraph holding
// dirty.
func (e *MultiLineEditbox) reusableLines(dirty int) int {
	keep := 0
	for i, ln := range e.lines {
		if ln.Start > dirty {
			break
		}
		if ln.Start == 0 || (ln.Start-1 < len(e.text) && e.text[ln.Start-1] == '\n') {
			keep = i
		}
	}
	return keep
}

// paragraphLen returns the length of the paragraph starting at pos,
// including its line break.
func paragraphLen(text []rune, pos int) int {
	for i := pos; i < len(text); i++ {
		if text[i] == '\n' {
			return i - pos + 1
		}
	}
	return len(text) - pos
}

// layoutParagraph appends the lines of text[start:start+n].
//
// Wrapping is greedy over tokens (a run of non-whitespace, or one
// whitespace rune). A token that overflows an empty line is split at the
// character under the width limit.
func (e *MultiLineEditbox) layoutParagraph(start, n int, width float32) {
	para := e.text[start : start+n]

	if width <= 0 {
		ext := e.font.TextExtent(string(para))
		e.addLine(LineInfo{Start: start, Length: n, Extent: ext})
		return
	}

	idx := 0
	for idx < n {
		lineLen := 0
		var lineWidth float32
		for lineLen < n-idx {
			tok := wrapTokenLen(para, idx+lineLen)
			tokWidth := e.font.TextExtent(string(para[idx+lineLen : idx+lineLen+tok]))
			if lineWidth+tokWidth > width {
				if lineLen == 0 {
					lineLen = e.font.CharAtPixel(string(para[idx:idx+tok]), width)
					lineLen = clampi(lineLen, 1, tok)
					lineWidth = e.font.TextExtent(string(para[idx : idx+lineLen]))
				}
				break
			}
			lineLen += tok
			lineWidth += tokWidth
		}
		e.addLine(LineInfo{Start: start + idx, Length: lineLen, Extent: lineWidth})
		idx += lineLen
	}
}

func (e *MultiLineEditbox) addLine(ln LineInfo) {
	e.lines = append(e.lines, ln)
	e.widest = maxf(e.widest, ln.Extent)
}
