package gui

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() TextureID
	Resize(width, height int)
}

// GUI manages the immediate mode UI system.
type GUI struct {
	renderer      Renderer
	style         Style
	scale         float32
	multiViewport bool
	ctx           *Context
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the GUI style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithScale sets the global UI scale reported by Context.Scale.
func WithScale(scale float32) GUIOption {
	return func(g *GUI) { g.SetScale(scale) }
}

// WithMultiViewport lets windows live outside the main viewport.
func WithMultiViewport(enabled bool) GUIOption {
	return func(g *GUI) { g.multiViewport = enabled }
}

// New creates a new GUI instance.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer: renderer,
		style:    DefaultStyle(),
		scale:    1.0,
		ctx:      NewContext(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Begin starts a new frame and returns the GUI context.
// Call this at the start of each frame before drawing any UI.
func (g *GUI) Begin(input *InputState, displaySize Vec2, deltaTime float32) *Context {
	ctx := g.ctx

	// Acquire draw lists from the pool
	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()

	ctx.Input = input
	ctx.SetStyle(g.style)
	ctx.DPIScale = g.scale
	ctx.MultiViewport = g.multiViewport
	ctx.FontTextureID = g.renderer.FontTextureID()
	ctx.FrameCount++

	ctx.Reset(displaySize, deltaTime)

	return ctx
}

// End finishes the frame and renders the UI.
// Call this after all UI drawing is complete.
func (g *GUI) End() error {
	if g.ctx.DrawList == nil {
		return nil
	}

	g.ctx.DrawList.Finalize()
	err := g.renderer.Render(g.ctx.DrawList)

	// Foreground list (tooltips) goes on top
	if err == nil && g.ctx.ForegroundDrawList != nil {
		g.ctx.ForegroundDrawList.Finalize()
		if len(g.ctx.ForegroundDrawList.CmdBuffer) > 0 {
			err = g.renderer.Render(g.ctx.ForegroundDrawList)
		}
	}

	// Release draw lists back to pool
	ReleaseDrawList(g.ctx.DrawList)
	g.ctx.DrawList = nil
	if g.ctx.ForegroundDrawList != nil {
		ReleaseDrawList(g.ctx.ForegroundDrawList)
		g.ctx.ForegroundDrawList = nil
	}

	return err
}

// Context returns the current GUI context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current GUI style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the GUI style.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Scale returns the global UI scale.
func (g *GUI) Scale() float32 {
	return g.scale
}

// SetScale sets the global UI scale. Non-positive values reset it to 1.
func (g *GUI) SetScale(scale float32) {
	if scale <= 0 {
		scale = 1
	}
	g.scale = scale
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	g.renderer.Resize(width, height)
}
