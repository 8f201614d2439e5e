package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScrollbarModelClampsPosition(t *testing.T) {
	sb := NewScrollbarModel()
	sb.SetDocumentSize(100)
	sb.SetPageSize(30)

	var fired []float32
	sb.ScrollPositionChanged().Subscribe(func(e ScrollbarEvent) { fired = append(fired, e.Position) })

	sb.SetScrollPosition(200)
	assert.Equal(t, float32(70), sb.ScrollPosition())
	sb.SetScrollPosition(70)
	sb.SetScrollPosition(-5)
	assert.Equal(t, float32(0), sb.ScrollPosition())
	assert.Equal(t, []float32{70, 0}, fired)

	sb.SetStepSize(10)
	sb.ScrollByStep(2)
	assert.Equal(t, float32(20), sb.ScrollPosition())
	sb.ScrollByPage(1)
	assert.Equal(t, float32(50), sb.ScrollPosition())
	sb.ScrollByPage(-5)
	assert.Equal(t, float32(0), sb.ScrollPosition())
}

func TestConfigureScrollbarPair(t *testing.T) {
	tests := []struct {
		name               string
		contentW, contentH float32
		forceVert          bool
		forceHorz          bool
		wantVert, wantHorz bool
	}{
		{name: "fits", contentW: 50, contentH: 50},
		{name: "tall", contentW: 50, contentH: 200, wantVert: true},
		{name: "wide", contentW: 200, contentH: 50, wantHorz: true},
		{name: "tall squeezes width", contentW: 95, contentH: 200, wantVert: true, wantHorz: true},
		{name: "wide squeezes height", contentW: 200, contentH: 95, wantVert: true, wantHorz: true},
		{name: "forced", contentW: 10, contentH: 10, forceVert: true, forceHorz: true, wantVert: true, wantHorz: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vert, horz := NewScrollbarModel(), NewScrollbarModel()
			area := NewFrameArea(Rect{W: 100, H: 100}, 0, 10, vert, horz)

			configureScrollbarPair(vert, horz, tt.contentH, tt.contentW, tt.forceVert, tt.forceHorz, area.ContentArea)
			assert.Equal(t, tt.wantVert, vert.IsVisible(), "vertical")
			assert.Equal(t, tt.wantHorz, horz.IsVisible(), "horizontal")

			r := area.ContentArea()
			assert.Equal(t, r.H, vert.PageSize())
			assert.Equal(t, r.W, horz.PageSize())
			assert.Equal(t, tt.contentH, vert.DocumentSize())
		})
	}
}

func TestFrameAreaSubtractsHeaderAndScrollbars(t *testing.T) {
	vert, horz := NewScrollbarModel(), NewScrollbarModel()
	area := NewFrameArea(Rect{X: 5, Y: 5, W: 100, H: 80}, 20, 8, vert, horz)
	assert.Equal(t, Rect{X: 5, Y: 25, W: 100, H: 60}, area.ContentArea())

	vert.Show()
	horz.Show()
	assert.Equal(t, Rect{X: 5, Y: 25, W: 92, H: 52}, area.ContentArea())
}
