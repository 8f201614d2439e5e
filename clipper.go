package widgets

import "math"

// LineClipper computes the range of uniformly spaced lines that fall inside
// a viewport, so renderers only draw what can be seen.
//
//	clip := NewLineClipper(len(lines), spacing, area.H, scrollY)
//	for i := clip.Start; i < clip.End; i++ {
//	    y := clip.LineY(i, area.Y, scrollY)
//	    // draw line i at y
//	}
type LineClipper struct {
	Start   int     // first visible line (inclusive)
	End     int     // last visible line (exclusive)
	Spacing float32 // height of each line
	Total   int     // number of lines
}

// NewLineClipper returns the lines of total that intersect a viewport of
// visibleHeight scrolled down by scroll. Partially visible lines count.
func NewLineClipper(total int, spacing, visibleHeight, scroll float32) LineClipper {
	c := LineClipper{Spacing: spacing, Total: total}
	if total <= 0 || spacing <= 0 {
		return c
	}

	scroll = maxf(scroll, 0)
	c.Start = min(int(scroll/spacing), total)
	c.End = min(int(math.Ceil(float64((scroll+maxf(visibleHeight, 0))/spacing))), total)
	c.End = max(c.End, c.Start)
	return c
}

// Contains reports whether line idx is in the visible range.
func (c LineClipper) Contains(idx int) bool {
	return idx >= c.Start && idx < c.End
}

// Count returns the number of visible lines.
func (c LineClipper) Count() int { return c.End - c.Start }

// LineY returns where line idx is drawn, relative to top.
func (c LineClipper) LineY(idx int, top, scroll float32) float32 {
	return top + float32(idx)*c.Spacing - scroll
}

// ContentHeight is the height of every line stacked.
func (c LineClipper) ContentHeight() float32 {
	return float32(c.Total) * c.Spacing
}

// ScrollTo returns the scroll offset that brings line idx fully into a
// viewport of visibleHeight. The current offset is kept if idx is already
// visible or out of range.
func (c LineClipper) ScrollTo(idx int, current, visibleHeight float32) float32 {
	if idx < 0 || idx >= c.Total {
		return current
	}
	top := float32(idx) * c.Spacing
	bottom := top + c.Spacing
	switch {
	case top < current:
		return top
	case bottom > current+visibleHeight:
		return bottom - visibleHeight
	}
	return current
}
