package aetherbox

import "github.com/aetherbox/aetherbox/gui"

// GeometrySample is the window rectangle and viewport seen in one frame.
type GeometrySample struct {
	TopLeft     gui.Vec2
	BottomRight gui.Vec2
	Viewport    gui.Vec2
}

// SampleGeometry reads the window rectangle from the surface. The top-left is
// the window position plus the cursor offset, i.e. the content origin.
func SampleGeometry(s Surface) GeometrySample {
	topLeft := s.WindowPos().Add(s.CursorPos())
	return GeometrySample{
		TopLeft:     topLeft,
		BottomRight: topLeft.Add(s.WindowSize()),
		Viewport:    s.ViewportSize(),
	}
}

// OutOfBounds reports whether the sample touches or crosses a viewport edge.
func (g GeometrySample) OutOfBounds(multiViewport bool) bool {
	if multiViewport {
		return false
	}
	return g.TopLeft.X <= 0 || g.TopLeft.Y <= 0 ||
		g.BottomRight.X >= g.Viewport.X || g.BottomRight.Y >= g.Viewport.Y
}

// IsOutOfBounds reports whether a window at topLeft with the given size is
// not safely inside the viewport. With multiple viewports enabled a window
// may live anywhere, so it is never out of bounds.
func IsOutOfBounds(topLeft, size, viewport gui.Vec2, multiViewport bool) bool {
	g := GeometrySample{TopLeft: topLeft, BottomRight: topLeft.Add(size), Viewport: viewport}
	return g.OutOfBounds(multiViewport)
}
