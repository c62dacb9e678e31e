package aetherbox

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aetherbox/aetherbox/gui"
)

func TestHeaderSize(t *testing.T) {
	tests := []struct {
		name                string
		width, aspect, maxH float32
		want                gui.Vec2
	}{
		{"height clamped, width recomputed", 300, 2, 100, gui.Vec2{X: 200, Y: 100}},
		{"fits without clamp", 100, 2, 100, gui.Vec2{X: 100, Y: 50}},
		{"exactly max height", 200, 2, 100, gui.Vec2{X: 200, Y: 100}},
		{"tall image", 150, 0.5, 100, gui.Vec2{X: 50, Y: 100}},
		{"zero width", 0, 2, 100, gui.Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HeaderSize(tt.width, tt.aspect, tt.maxH))
		})
	}
}

func TestHeaderSizePreconditions(t *testing.T) {
	assert.Panics(t, func() { HeaderSize(100, 0, 100) })
	assert.Panics(t, func() { HeaderSize(100, -1, 100) })
	assert.Panics(t, func() { HeaderSize(-1, 2, 100) })
}

func TestCenteredOffset(t *testing.T) {
	assert.Equal(t, float32(50), CenteredOffset(150, 50))
	assert.Equal(t, float32(0), CenteredOffset(150, 150))
	assert.Panics(t, func() { CenteredOffset(-1, 0) })
	assert.Panics(t, func() { CenteredOffset(10, -1) })
}

func TestBottomControlY(t *testing.T) {
	assert.Equal(t, float32(442), BottomControlY(500, 50, 8))
	assert.Equal(t, float32(446), BottomControlY(500, 50, 4))
}

func TestMetricsScaled(t *testing.T) {
	m := DefaultMetrics().Scaled(2)
	assert.Equal(t, Metrics{
		NavWidth:        300,
		MaxHeaderHeight: 200,
		CloseSize:       100,
		CloseOffsetX:    9.5,
	}, m)
}

func TestLayoutPlan(t *testing.T) {
	m := DefaultMetrics()
	var p LayoutPlan

	p.PlanHeader(m, 150, gui.Vec2{X: 512, Y: 256})
	assert.Equal(t, gui.Vec2{X: 150, Y: 75}, p.HeaderSize)
	assert.Equal(t, float32(0), p.HeaderOffsetX)

	p.PlanClose(m, 150, 500, 4)
	assert.Equal(t, gui.Vec2{X: 59.5, Y: 446}, p.ClosePos)
	assert.Equal(t, float32(50), p.CloseSize)

	// An image without height has no aspect ratio
	assert.Panics(t, func() { p.PlanHeader(m, 150, gui.Vec2{X: 10}) })
}
