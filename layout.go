package aetherbox

import (
	"fmt"

	"github.com/aetherbox/aetherbox/gui"
)

// Metrics are the fixed sizes of the main window layout at scale 1.
type Metrics struct {
	NavWidth        float32
	MaxHeaderHeight float32
	CloseSize       float32

	// CloseOffsetX shifts the close control right to line it up with the
	// column's visual center. It is not scaled.
	CloseOffsetX float32
}

// DefaultMetrics returns the stock layout sizes.
func DefaultMetrics() Metrics {
	return Metrics{
		NavWidth:        150,
		MaxHeaderHeight: 100,
		CloseSize:       50,
		CloseOffsetX:    9.5,
	}
}

// Scaled multiplies every size except the close offset by scale.
func (m Metrics) Scaled(scale float32) Metrics {
	return Metrics{
		NavWidth:        m.NavWidth * scale,
		MaxHeaderHeight: m.MaxHeaderHeight * scale,
		CloseSize:       m.CloseSize * scale,
		CloseOffsetX:    m.CloseOffsetX,
	}
}

// HeaderSize fits an image of the given aspect ratio (width/height) to
// availableWidth, then clamps the height to maxHeight keeping the ratio.
func HeaderSize(availableWidth, aspectRatio, maxHeight float32) gui.Vec2 {
	if aspectRatio <= 0 {
		panic(fmt.Sprintf("aetherbox: header aspect ratio must be positive, got %v", aspectRatio))
	}
	if availableWidth < 0 {
		panic(fmt.Sprintf("aetherbox: negative header width %v", availableWidth))
	}
	w := availableWidth
	h := w / aspectRatio
	if h > maxHeight {
		h = maxHeight
		w = h * aspectRatio
	}
	return gui.Vec2{X: w, Y: h}
}

// CenteredOffset returns the x offset that centers an element in a container.
func CenteredOffset(containerWidth, elementWidth float32) float32 {
	if containerWidth < 0 || elementWidth < 0 {
		panic(fmt.Sprintf("aetherbox: negative width (container %v, element %v)", containerWidth, elementWidth))
	}
	return (containerWidth - elementWidth) / 2
}

// BottomControlY anchors a control to the bottom of the window with one
// spacing unit of margin.
func BottomControlY(windowHeight, controlSize, itemSpacing float32) float32 {
	return windowHeight - controlSize - itemSpacing
}

// LayoutPlan holds the navigation column placements for one frame.
// Positions are relative to the window's top-left.
type LayoutPlan struct {
	NavWidth      float32
	HeaderSize    gui.Vec2
	HeaderOffsetX float32
	ClosePos      gui.Vec2
	CloseSize     float32
}

// PlanHeader sizes and centers the header image in a column of the given width.
func (p *LayoutPlan) PlanHeader(m Metrics, columnWidth float32, image gui.Vec2) {
	var aspect float32
	if image.Y > 0 {
		aspect = image.X / image.Y
	}
	p.HeaderSize = HeaderSize(columnWidth, aspect, m.MaxHeaderHeight)
	p.HeaderOffsetX = CenteredOffset(columnWidth, p.HeaderSize.X)
}

// PlanClose centers the close control horizontally and pins it to the
// bottom of the window.
func (p *LayoutPlan) PlanClose(m Metrics, columnWidth, windowHeight, itemSpacing float32) {
	p.CloseSize = m.CloseSize
	p.ClosePos = gui.Vec2{
		X: CenteredOffset(columnWidth, m.CloseSize) + m.CloseOffsetX,
		Y: BottomControlY(windowHeight, m.CloseSize, itemSpacing),
	}
}
