package gui

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks the current layout state.
type Layout struct {
	Type LayoutType

	StartX, StartY      float32
	MaxWidth, MaxHeight float32 // Accumulated content size

	Gap float32 // Space between children

	ItemCount int // For gap calculation
}

// LayoutOption configures a layout container.
type LayoutOption func(*Layout)

// Gap sets spacing between children.
func Gap(pixels float32) LayoutOption {
	return func(l *Layout) { l.Gap = pixels }
}

// pushLayout creates a layout at the cursor and pushes it.
func (ctx *Context) pushLayout(layout *Layout) {
	layout.StartX = ctx.cursor.X
	layout.StartY = ctx.cursor.Y
	ctx.layoutStack = append(ctx.layoutStack, layout)
}

// popLayout removes the current layout and places its bounds as one item in the parent.
func (ctx *Context) popLayout() Rect {
	n := len(ctx.layoutStack)
	if n == 0 {
		return Rect{}
	}

	layout := ctx.layoutStack[n-1]
	ctx.layoutStack = ctx.layoutStack[:n-1]

	bounds := Rect{X: layout.StartX, Y: layout.StartY, W: layout.MaxWidth, H: layout.MaxHeight}
	if len(ctx.layoutStack) > 0 {
		ctx.advanceCursor(bounds.Min(), Vec2{X: bounds.W, Y: bounds.H})
	} else {
		ctx.cursor = Vec2{X: bounds.X, Y: bounds.Y + bounds.H}
	}
	return bounds
}

// VStack creates a vertical layout container.
//
// Usage:
//
//	ctx.VStack(Gap(2))(func() {
//	    ctx.Text("Line 1")
//	    ctx.Text("Line 2")
//	})
func (ctx *Context) VStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		ctx.beginItem()
		layout := &Layout{Type: LayoutVertical, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayout(layout)
		contents()
		ctx.popLayout()
	}
}

// HStack creates a horizontal layout container.
func (ctx *Context) HStack(opts ...LayoutOption) func(func()) {
	return func(contents func()) {
		ctx.beginItem()
		layout := &Layout{Type: LayoutHorizontal, Gap: ctx.style.ItemSpacing}
		for _, opt := range opts {
			opt(layout)
		}
		ctx.pushLayout(layout)
		contents()
		ctx.popLayout()
	}
}

// Spacing adds vertical space.
func (ctx *Context) Spacing(pixels float32) {
	ctx.cursor.Y += pixels
}

// Separator draws a horizontal line across the content region.
func (ctx *Context) Separator() {
	pos := ctx.ItemPos()
	w := ctx.region.X + ctx.region.W - pos.X
	y := pos.Y + 2
	ctx.DrawList.AddLine(pos.X, y, pos.X+w, y, ctx.style.SeparatorColor, 1)
	ctx.advanceCursor(pos, Vec2{X: w, Y: 4})
}

// columnsState tracks a two-column region between BeginColumns and EndColumns.
type columnsState struct {
	id     string
	origin Vec2
	widths [2]float32
	gutter float32
	index  int
	maxY   float32
	parent Rect

	// Stack depths to restore when a column is left, even if its
	// contents bailed out half way.
	layoutDepth int
	styleDepth  int
	clipDepth   int
}

// BeginColumns splits the remaining content region into a fixed-width first
// column and a flexible second column. Returns false if there is no room or
// another column set is already open; EndColumns must only be called on true.
//
// Usage:
//
//	if ctx.BeginColumns("table", 150) {
//	    ctx.Text("left")
//	    ctx.NextColumn()
//	    ctx.Text("right")
//	    ctx.EndColumns()
//	}
func (ctx *Context) BeginColumns(id string, firstWidth float32) bool {
	if ctx.columns != nil {
		guiLogger.Debug("BeginColumns: nested columns are not supported", "id", id)
		return false
	}
	ctx.beginItem()
	avail := ctx.ContentAvail()
	if avail.X <= 0 || avail.Y <= 0 {
		return false
	}

	gutter := ctx.style.WindowPadding
	first := clampf(firstWidth, 0, avail.X)
	second := maxf(0, avail.X-first-gutter)

	ctx.columns = &columnsState{
		id:          id,
		origin:      ctx.cursor,
		widths:      [2]float32{first, second},
		gutter:      gutter,
		maxY:        ctx.cursor.Y,
		parent:      ctx.region,
		layoutDepth: len(ctx.layoutStack),
		styleDepth:  len(ctx.styleStack),
		clipDepth:   ctx.DrawList.ClipDepth(),
	}
	ctx.enterColumn(0)
	return true
}

// NextColumn moves to the second column.
func (ctx *Context) NextColumn() {
	c := ctx.columns
	if c == nil || c.index >= 1 {
		return
	}
	ctx.leaveColumn()
	ctx.enterColumn(1)
}

// EndColumns closes the column set and moves the cursor below the taller column.
func (ctx *Context) EndColumns() {
	c := ctx.columns
	if c == nil {
		return
	}
	ctx.leaveColumn()

	divX := c.origin.X + c.widths[0] + c.gutter/2
	bottom := c.parent.Y + c.parent.H
	ctx.DrawList.AddLine(divX, c.origin.Y, divX, bottom, ctx.style.BorderColor, ctx.style.BorderSize)

	ctx.region = c.parent
	ctx.columns = nil
	ctx.cursor = Vec2{X: c.origin.X, Y: c.maxY}
	ctx.lastItemValid = false
}

func (ctx *Context) enterColumn(index int) {
	c := ctx.columns
	c.index = index
	x := c.origin.X
	if index == 1 {
		x += c.widths[0] + c.gutter
	}
	bottom := c.parent.Y + c.parent.H
	ctx.region = Rect{X: x, Y: c.origin.Y, W: c.widths[index], H: bottom - c.origin.Y}
	ctx.cursor = Vec2{X: x, Y: c.origin.Y}
	ctx.cursorSet = false
	ctx.lastItemValid = false
	ctx.DrawList.PushClipRect(x, c.origin.Y, x+c.widths[index], bottom)
	ctx.pushLayout(&Layout{Type: LayoutVertical, Gap: ctx.style.ItemSpacing})
}

func (ctx *Context) leaveColumn() {
	c := ctx.columns
	c.maxY = maxf(c.maxY, ctx.cursor.Y)
	if len(ctx.layoutStack) > c.layoutDepth {
		ctx.layoutStack = ctx.layoutStack[:c.layoutDepth]
	}
	for len(ctx.styleStack) > c.styleDepth {
		ctx.PopStyle()
	}
	ctx.DrawList.RestoreClipDepth(c.clipDepth)
}
