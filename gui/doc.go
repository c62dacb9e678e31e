/*
Package gui provides a small immediate-mode GUI library inspired by Dear ImGui,
designed as idiomatic Go with a dedicated Context type.

# Overview

The UI is rebuilt every frame. There is no retained widget tree: the UI code
is called each frame and widgets return interaction results directly. All
drawing goes into a DrawList that a Renderer turns into GPU calls.

# Quick Start

	// Setup
	renderer, _ := opengl.NewRenderer(1280, 720)
	ui := gui.New(renderer, gui.WithScale(1))
	win := gui.NewWindow("Menu", 100, 100, 300, 500)

	// Frame loop
	for !window.ShouldClose() {
	    ctx := ui.Begin(input, gui.Vec2{X: 1280, Y: 720}, deltaTime)

	    if win.Begin(ctx) {
	        ctx.Text("Hello World")
	        if ctx.Selectable("Info", selected) {
	            selected = !selected
	        }
	        win.End(ctx)
	    }

	    ui.End()
	    window.SwapBuffers()
	}

# Coordinates

Screen coordinates are pixels with the origin at the top-left of the display.
Inside a Window, CursorPos and SetCursorPos are relative to the window's
top-left corner, the way Dear ImGui reports them. ContentAvail is measured
from the cursor to the edge of the current content region.

# Component List

## Text

	ctx.Text(text string)
	    Draws text at the cursor.

	ctx.TextColored(text string, color uint32)
	    Draws text with a specific color.

	ctx.TextDisabled(text string)
	    Draws text with the disabled color.

	ctx.TextWrappedColored(text string, color uint32, fontScale float32)
	    Draws text word-wrapped to the content region. Words longer than a
	    line are split between runes. fontScale 0 uses the style scale.

## Images

	ctx.Image(tex TextureID, size Vec2)
	    Draws a texture.

	ctx.ImageButton(id string, tex TextureID, size Vec2) bool
	    Draws a texture without padding or background that reports clicks.

## Selection

	ctx.Selectable(label string, selected bool) bool
	    Full-width row with a centered label, highlighted when selected.

	ctx.Checkbox(label string, value *bool) bool
	    Toggles *value on click. Returns true when it changed.

## Layout

	ctx.VStack(opts ...LayoutOption) func(func())
	ctx.HStack(opts ...LayoutOption) func(func())
	    Vertical and horizontal stacks. Options: Gap.

	ctx.BeginColumns(id string, firstWidth float32) bool
	ctx.NextColumn()
	ctx.EndColumns()
	    Two columns: a fixed-width first column and a second column taking
	    the rest. Each column clips its contents. Stacks pushed inside a
	    column are unwound when the column is left.

	ctx.Spacing(pixels float32)
	ctx.Separator()

## Windows

	win := gui.NewWindow(title, x, y, w, h)
	if win.Begin(ctx) { ...; win.End(ctx) }
	    Draggable, resizable frame with a title bar close button. Begin
	    returns false on the frame the window is closed, either by the X
	    button or by Escape when CloseOnEscape is set.

## Tooltips

	if ctx.ItemHovered() { ctx.Tooltip("text") }
	    Drawn on the foreground draw list above everything else.

# Debugging

Set GUI_DEBUG=1 (or call SetVerbose) to log hit testing and layout decisions
through log/slog.

# Performance

  - sync.Pool for DrawList buffer reuse
  - Batched rendering by texture and clip rect
  - Per-frame text measurement cache
*/
package gui
