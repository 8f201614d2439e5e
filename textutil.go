package widgets

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// wordSpan is a rune range [start, end) produced by Unicode word
// segmentation. blank spans hold only whitespace.
type wordSpan struct {
	start, end int
	blank      bool
}

// wordSpans segments text at Unicode word boundaries.
func wordSpans(text string) []wordSpan {
	var spans []wordSpan
	state := -1
	pos := 0
	for len(text) > 0 {
		var word string
		word, text, state = uniseg.FirstWordInString(text, state)
		n := utf8.RuneCountInString(word)
		spans = append(spans, wordSpan{start: pos, end: pos + n, blank: isBlank(word)})
		pos += n
	}
	return spans
}

func isBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// wordStartBefore returns the start of the word at or before idx, skipping
// whitespace to the left. Returns 0 when there is none.
func wordStartBefore(spans []wordSpan, idx int) int {
	for i := len(spans) - 1; i >= 0; i-- {
		if spans[i].start < idx && !spans[i].blank {
			return spans[i].start
		}
	}
	return 0
}

// nextWordStart returns the start of the first word after the one containing
// idx, or end when there is none.
func nextWordStart(spans []wordSpan, idx, end int) int {
	for _, s := range spans {
		if s.start > idx && !s.blank {
			return s.start
		}
	}
	return end
}

// spanAt returns the span containing idx.
func spanAt(spans []wordSpan, idx int) (wordSpan, bool) {
	for _, s := range spans {
		if idx >= s.start && idx < s.end {
			return s, true
		}
	}
	return wordSpan{}, false
}

// wrapTokenLen returns the length of the wrap token starting at start: a run
// of non-delimiters, or a single delimiter (space, tab, line break).
func wrapTokenLen(text []rune, start int) int {
	if start >= len(text) {
		return 0
	}
	if isWrapDelimiter(text[start]) {
		return 1
	}
	n := 0
	for start+n < len(text) && !isWrapDelimiter(text[start+n]) {
		n++
	}
	return n
}

func isWrapDelimiter(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}
