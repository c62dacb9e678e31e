package gui

// dragState tracks an in-progress move or resize of a window.
type dragState struct {
	Active  bool
	OffsetX float32 // Window X offset from mouse when the drag started
	OffsetY float32
}

// Window is a movable, resizable frame with a title bar and close button.
// Its contents are drawn between Begin and End every frame.
type Window struct {
	Title string

	// Position is the window's top-left corner in screen coordinates.
	Position Vec2

	// Size is the full window size including the title bar.
	Size Vec2

	// MinSize and MaxSize bound Size while resizing. Zero means no bound.
	MinSize Vec2
	MaxSize Vec2

	// CloseOnEscape makes the Escape key request a close like the title bar X.
	CloseOnEscape bool

	// MinVisible is how much of the title bar must stay on screen while dragging.
	// The rest of the window may leave the display.
	MinVisible float32

	drag   dragState
	resize dragState
}

// NewWindow creates a window at (x, y) with the given size.
func NewWindow(title string, x, y, w, h float32) *Window {
	return &Window{
		Title:      title,
		Position:   Vec2{X: x, Y: y},
		Size:       Vec2{X: w, Y: h},
		MinVisible: 50,
	}
}

// TitleBarRect returns the draggable title bar area.
func (win *Window) TitleBarRect(ctx *Context) Rect {
	return Rect{
		X: win.Position.X,
		Y: win.Position.Y,
		W: win.Size.X,
		H: ctx.LineHeight() + ctx.style.TitleBarPad*2,
	}
}

func (win *Window) closeButtonRect(ctx *Context) Rect {
	bar := win.TitleBarRect(ctx)
	s := bar.H - ctx.style.TitleBarPad*2
	return Rect{X: bar.X + bar.W - s - ctx.style.TitleBarPad, Y: bar.Y + ctx.style.TitleBarPad, W: s, H: s}
}

func (win *Window) resizeGripRect(ctx *Context) Rect {
	g := ctx.style.ResizeGrip
	return Rect{X: win.Position.X + win.Size.X - g, Y: win.Position.Y + win.Size.Y - g, W: g, H: g}
}

// Begin processes window input and draws the frame. It returns false when a
// close was requested this frame (title bar X or Escape); nothing is drawn
// then and End must not be called. Otherwise items go into the content area
// until End.
func (win *Window) Begin(ctx *Context) bool {
	if win.closeRequested(ctx) {
		guiLogger.Debug("window close requested", "title", win.Title)
		return false
	}
	win.handleResize(ctx)
	win.handleDrag(ctx)

	st := ctx.style
	x, y, w, h := win.Position.X, win.Position.Y, win.Size.X, win.Size.Y
	bar := win.TitleBarRect(ctx)

	dl := ctx.DrawList
	dl.AddRect(x, y, w, h, st.WindowBgColor)
	titleColor := st.TitleBarColor
	if win.drag.Active || win.resize.Active {
		titleColor = st.TitleBarActiveColor
	}
	dl.AddRect(bar.X, bar.Y, bar.W, bar.H, titleColor)
	dl.AddRectOutline(x, y, w, h, st.WindowBorderColor, st.BorderSize)

	closeRect := win.closeButtonRect(ctx)
	dl.PushClipRect(bar.X, bar.Y, closeRect.X, bar.Y+bar.H)
	ctx.addText(bar.X+st.TitleBarPad*2, bar.Y+st.TitleBarPad, win.Title, st.TextColor)
	dl.PopClipRect()

	closeColor := st.TextColor
	if ctx.isHovered(closeRect) {
		dl.AddRect(closeRect.X, closeRect.Y, closeRect.W, closeRect.H, st.ButtonHoveredColor)
	}
	inset := closeRect.W * 0.25
	dl.AddLine(closeRect.X+inset, closeRect.Y+inset, closeRect.X+closeRect.W-inset, closeRect.Y+closeRect.H-inset, closeColor, 2)
	dl.AddLine(closeRect.X+inset, closeRect.Y+closeRect.H-inset, closeRect.X+closeRect.W-inset, closeRect.Y+inset, closeColor, 2)

	grip := win.resizeGripRect(ctx)
	gripColor := st.ResizeGripColor
	if !win.resize.Active && !ctx.isHovered(grip) {
		r, g, b, a := UnpackRGBA(gripColor)
		gripColor = RGBA(r, g, b, a/2)
	}
	dl.AddRect(grip.X, grip.Y, grip.W, grip.H, gripColor)

	// Content area
	pad := st.WindowPadding
	content := Rect{
		X: x + pad,
		Y: bar.Y + bar.H + pad,
		W: maxf(0, w-pad*2),
		H: maxf(0, h-bar.H-pad*2),
	}
	ctx.window = win
	ctx.region = content
	ctx.cursor = content.Min()
	ctx.cursorSet = false
	ctx.lastItemValid = false
	dl.PushClipRect(content.X, content.Y, content.X+content.W, content.Y+content.H)
	ctx.pushLayout(&Layout{Type: LayoutVertical, Gap: st.ItemSpacing})

	if ctx.Input != nil && (Rect{X: x, Y: y, W: w, H: h}).Contains(Vec2{ctx.Input.MouseX, ctx.Input.MouseY}) {
		ctx.WantCaptureMouse = true
	}
	return true
}

// End closes the content area opened by Begin.
func (win *Window) End(ctx *Context) {
	if ctx.window != win {
		return
	}
	// Contents may have bailed out inside a column set
	ctx.columns = nil
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.DrawList.RestoreClipDepth(0)
	ctx.window = nil
	ctx.region = Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y}
	ctx.cursor = Vec2{}
	ctx.lastItemValid = false
}

func (win *Window) closeRequested(ctx *Context) bool {
	if ctx.Input == nil {
		return false
	}
	if win.CloseOnEscape && ctx.Input.KeyPressed(KeyEscape) {
		return true
	}
	return ctx.isClicked(win.Title+"##close", win.closeButtonRect(ctx))
}

// handleDrag moves the window while the title bar is dragged.
// The window may leave the display except for MinVisible pixels of title bar.
func (win *Window) handleDrag(ctx *Context) {
	input := ctx.Input
	if input == nil || win.resize.Active {
		return
	}
	mouse := Vec2{X: input.MouseX, Y: input.MouseY}

	if input.MouseClicked(MouseButtonLeft) && win.TitleBarRect(ctx).Contains(mouse) &&
		!win.closeButtonRect(ctx).Contains(mouse) {
		win.drag.Active = true
		win.drag.OffsetX = win.Position.X - mouse.X
		win.drag.OffsetY = win.Position.Y - mouse.Y
	}

	if !win.drag.Active {
		return
	}
	if !input.MouseDown(MouseButtonLeft) {
		win.drag.Active = false
		return
	}
	win.Position = Vec2{X: mouse.X + win.drag.OffsetX, Y: mouse.Y + win.drag.OffsetY}
	win.Constrain(ctx.DisplaySize)
}

// Constrain keeps at least MinVisible pixels of the title bar on the display.
func (win *Window) Constrain(displaySize Vec2) {
	minVisible := win.MinVisible
	if win.Position.X < -win.Size.X+minVisible {
		win.Position.X = -win.Size.X + minVisible
	}
	if win.Position.X > displaySize.X-minVisible {
		win.Position.X = displaySize.X - minVisible
	}
	if win.Position.Y < 0 {
		win.Position.Y = 0
	}
	if win.Position.Y > displaySize.Y-minVisible {
		win.Position.Y = displaySize.Y - minVisible
	}
}

// handleResize resizes the window while the bottom-right grip is dragged.
func (win *Window) handleResize(ctx *Context) {
	input := ctx.Input
	if input == nil {
		return
	}
	mouse := Vec2{X: input.MouseX, Y: input.MouseY}

	if input.MouseClicked(MouseButtonLeft) && win.resizeGripRect(ctx).Contains(mouse) {
		win.resize.Active = true
		win.resize.OffsetX = win.Size.X - mouse.X
		win.resize.OffsetY = win.Size.Y - mouse.Y
	}

	if !win.resize.Active {
		return
	}
	if !input.MouseDown(MouseButtonLeft) {
		win.resize.Active = false
		return
	}
	win.SetSize(Vec2{X: mouse.X + win.resize.OffsetX, Y: mouse.Y + win.resize.OffsetY})
}

// SetSize sets the window size, applying MinSize and MaxSize.
func (win *Window) SetSize(size Vec2) {
	if win.MinSize.X > 0 {
		size.X = maxf(size.X, win.MinSize.X)
	}
	if win.MinSize.Y > 0 {
		size.Y = maxf(size.Y, win.MinSize.Y)
	}
	if win.MaxSize.X > 0 {
		size.X = minf(size.X, win.MaxSize.X)
	}
	if win.MaxSize.Y > 0 {
		size.Y = minf(size.Y, win.MaxSize.Y)
	}
	win.Size = size
}

// IsDragging returns true while the window is being moved or resized.
func (win *Window) IsDragging() bool {
	return win.drag.Active || win.resize.Active
}
