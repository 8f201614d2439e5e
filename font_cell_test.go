package widgets_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/widgets"
)

func TestCellFont_Metrics(t *testing.T) {
	f := widgets.NewCellFont(8, 16)
	assert.Equal(t, float32(16), f.LineSpacing())

	tests := []struct {
		text string
		want float32
	}{
		{"", 0},
		{"abc", 24},
		{"世界", 32},
		{"a\tb", 48},
		{"line\n", 32},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.TextExtent(tt.text), "%q", tt.text)
		assert.Equal(t, tt.want, f.TextAdvance(tt.text), "%q", tt.text)
	}

	f.TabCells = 2
	assert.Equal(t, float32(32), f.TextExtent("a\tb"))
}

func TestCellFont_CharAtPixel(t *testing.T) {
	f := widgets.NewCellFont(1, 1)
	tests := []struct {
		text string
		x    float32
		want int
	}{
		{"abc", 0, 0},
		{"abc", 1.5, 1},
		{"abc", 3, 3},
		{"abc", -1, 0},
		{"世a", 1, 0},
		{"世a", 2, 1},
		{"", 4, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.CharAtPixel(tt.text, tt.x), "%q at %v", tt.text, tt.x)
	}
}

func TestCellFont_HasGlyph(t *testing.T) {
	f := widgets.NewCellFont(1, 1)
	assert.True(t, f.HasGlyph('a'))
	assert.True(t, f.HasGlyph('\t'))
	assert.True(t, f.HasGlyph('\n'))
	assert.True(t, f.HasGlyph('界'))
	assert.False(t, f.HasGlyph('\x07'))
	assert.False(t, f.HasGlyph('\r'))
}
