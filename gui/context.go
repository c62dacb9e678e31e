package gui

// Context holds all state for UI rendering in a single frame.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // Tooltips (drawn on top)

	// Styling
	style      Style
	styleStack []Style

	// Layout. cursor is in screen coordinates.
	cursor      Vec2
	cursorSet   bool // Set by SetCursorPos: the next item skips its leading gap
	layoutStack []*Layout
	region      Rect // Content region items are laid out in
	columns     *columnsState

	// Input (read-only during frame)
	Input *InputState

	// Screen
	DisplaySize   Vec2
	DPIScale      float32
	MultiViewport bool // Windows may live outside the main viewport

	// Frame info
	FrameCount uint64
	DeltaTime  float32

	// Font texture ID (set by renderer)
	FontTextureID TextureID

	// Current window frame; nil outside Window.Begin/End.
	window *Window

	// Last submitted item, for ItemHovered and Tooltip.
	lastItem      Rect
	lastItemValid bool

	// Text measurement cache, valid for one frame at one font scale.
	textMeasureCache map[string]Vec2
	measureScale     float32

	// WantCaptureMouse is true if the mouse is over a GUI window this frame.
	WantCaptureMouse bool
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		styleStack:       make([]Style, 0, 8),
		layoutStack:      make([]*Layout, 0, 16),
		textMeasureCache: make(map[string]Vec2, 64),
		DPIScale:         1.0,
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// PushStyle temporarily overrides the style.
func (ctx *Context) PushStyle(style Style) {
	ctx.styleStack = append(ctx.styleStack, ctx.style)
	ctx.style = style
}

// PopStyle restores the previous style.
func (ctx *Context) PopStyle() {
	n := len(ctx.styleStack)
	if n > 0 {
		ctx.style = ctx.styleStack[n-1]
		ctx.styleStack = ctx.styleStack[:n-1]
	}
}

// Reset prepares the context for a new frame.
func (ctx *Context) Reset(displaySize Vec2, deltaTime float32) {
	ctx.cursor = Vec2{}
	ctx.cursorSet = false
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.styleStack = ctx.styleStack[:0]
	ctx.region = Rect{W: displaySize.X, H: displaySize.Y}
	ctx.columns = nil
	ctx.window = nil
	ctx.lastItemValid = false
	ctx.DisplaySize = displaySize
	ctx.DeltaTime = deltaTime
	ctx.WantCaptureMouse = false

	// Measurements are only valid for the current frame
	clear(ctx.textMeasureCache)
}

// isHovered returns true if rect is under the mouse cursor and inside the current clip.
func (ctx *Context) isHovered(rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	mouse := Vec2{ctx.Input.MouseX, ctx.Input.MouseY}
	if ctx.DrawList != nil {
		c := ctx.DrawList.ClipRect()
		if mouse.X < c[0] || mouse.Y < c[1] || mouse.X >= c[2] || mouse.Y >= c[3] {
			return false
		}
	}
	return rect.Contains(mouse)
}

// isClicked returns true if rect was clicked this frame.
func (ctx *Context) isClicked(label string, rect Rect) bool {
	if ctx.Input == nil {
		return false
	}
	hovered := ctx.isHovered(rect)
	clicked := ctx.Input.MouseClicked(MouseButtonLeft)

	if clicked && guiVerbose() {
		mouse := Vec2{ctx.Input.MouseX, ctx.Input.MouseY}
		if hovered {
			guiLogger.Debug("click detected", "item", label, "rect", rect, "mouse", mouse)
		} else {
			guiLogger.Debug("click missed - not hovered", "item", label, "rect", rect, "mouse", mouse)
		}
	}

	return hovered && clicked
}

// WindowPos returns the screen position of the current window (zero outside a window).
func (ctx *Context) WindowPos() Vec2 {
	if ctx.window == nil {
		return Vec2{}
	}
	return ctx.window.Position
}

// WindowSize returns the size of the current window, or the display size outside a window.
func (ctx *Context) WindowSize() Vec2 {
	if ctx.window == nil {
		return ctx.DisplaySize
	}
	return ctx.window.Size
}

// CursorPos returns the cursor relative to the current window origin.
func (ctx *Context) CursorPos() Vec2 {
	return ctx.cursor.Sub(ctx.WindowPos())
}

// SetCursorPos moves the cursor to a position relative to the current window origin.
// The next item is placed exactly there, without a leading gap.
func (ctx *Context) SetCursorPos(x, y float32) {
	ctx.cursor = ctx.WindowPos().Add(Vec2{x, y})
	ctx.cursorSet = true
}

// ContentAvail returns the space left in the current content region from the cursor.
func (ctx *Context) ContentAvail() Vec2 {
	max := ctx.region.Max()
	return Vec2{X: maxf(0, max.X-ctx.cursor.X), Y: maxf(0, max.Y-ctx.cursor.Y)}
}

// ViewportSize returns the size of the main viewport.
func (ctx *Context) ViewportSize() Vec2 {
	return ctx.DisplaySize
}

// MultiViewportEnabled reports whether windows may leave the main viewport.
func (ctx *Context) MultiViewportEnabled() bool {
	return ctx.MultiViewport
}

// Scale returns the global UI scale factor.
func (ctx *Context) Scale() float32 {
	return ctx.DPIScale
}

// ItemSpacing returns the vertical gap between items.
func (ctx *Context) ItemSpacing() float32 {
	return ctx.style.ItemSpacing
}

func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a line of text at the current font scale.
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// currentLayout returns the current layout or nil.
func (ctx *Context) currentLayout() *Layout {
	if len(ctx.layoutStack) > 0 {
		return ctx.layoutStack[len(ctx.layoutStack)-1]
	}
	return nil
}

// addText draws text with the current style.
func (ctx *Context) addText(x, y float32, text string, color uint32) {
	ctx.addTextScaled(ctx.DrawList, x, y, text, color, ctx.style.FontScale)
}

func (ctx *Context) addTextScaled(dl *DrawList, x, y float32, text string, color uint32, scale float32) {
	if dl == nil {
		return
	}
	dl.AddText(ctx.FontTextureID, x, y, text, color, scale, ctx.style.CharWidth, ctx.style.CharHeight)
}

// beginItem applies gap spacing before drawing an item.
func (ctx *Context) beginItem() {
	if ctx.cursorSet {
		ctx.cursorSet = false
		return
	}
	layout := ctx.currentLayout()
	if layout == nil || layout.ItemCount == 0 {
		return
	}
	gap := layout.Gap
	if gap == 0 {
		gap = ctx.style.ItemSpacing
	}
	if layout.Type == LayoutVertical {
		ctx.cursor.Y += gap
	} else {
		ctx.cursor.X += gap
	}
}

// ItemPos returns the position for the next widget with gap applied.
func (ctx *Context) ItemPos() Vec2 {
	ctx.beginItem()
	return ctx.cursor
}

// advanceCursor moves the cursor past an item of the given size placed at pos.
func (ctx *Context) advanceCursor(pos, size Vec2) {
	ctx.lastItem = Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}
	ctx.lastItemValid = true

	layout := ctx.currentLayout()
	if layout == nil {
		ctx.cursor.Y = pos.Y + size.Y + ctx.style.ItemSpacing
		return
	}

	if layout.Type == LayoutVertical {
		ctx.cursor.X = layout.StartX
		ctx.cursor.Y = pos.Y + size.Y
		layout.MaxWidth = maxf(layout.MaxWidth, pos.X+size.X-layout.StartX)
		layout.MaxHeight = ctx.cursor.Y - layout.StartY
	} else {
		ctx.cursor.X = pos.X + size.X
		ctx.cursor.Y = layout.StartY
		layout.MaxWidth = ctx.cursor.X - layout.StartX
		layout.MaxHeight = maxf(layout.MaxHeight, size.Y)
	}
	layout.ItemCount++
}
