package gui

// Text draws text at the current cursor position.
func (ctx *Context) Text(text string) {
	ctx.TextColored(text, ctx.style.TextColor)
}

// TextColored draws text with a specific color.
func (ctx *Context) TextColored(text string, color uint32) {
	pos := ctx.ItemPos()
	ctx.addText(pos.X, pos.Y, text, color)
	ctx.advanceCursor(pos, ctx.MeasureText(text))
}

// TextDisabled draws text with the disabled color.
func (ctx *Context) TextDisabled(text string) {
	ctx.TextColored(text, ctx.style.TextDisabledColor)
}

// TextWrappedColored draws text word-wrapped to the content region at the given
// font scale (0 = current style scale).
func (ctx *Context) TextWrappedColored(text string, color uint32, fontScale float32) {
	if fontScale <= 0 {
		fontScale = ctx.style.FontScale
	}
	pos := ctx.ItemPos()
	maxWidth := ctx.region.X + ctx.region.W - pos.X
	lineH := ctx.style.CharHeight * fontScale

	lines := ctx.wrapLines(text, maxWidth, fontScale)
	var w float32
	y := pos.Y
	for _, line := range lines {
		ctx.addTextScaled(ctx.DrawList, pos.X, y, line, color, fontScale)
		w = maxf(w, ctx.measureTextScaled(line, fontScale).X)
		y += lineH
	}
	ctx.advanceCursor(pos, Vec2{X: w, Y: y - pos.Y})
}

// Image draws a texture at the cursor with the given size.
func (ctx *Context) Image(tex TextureID, size Vec2) {
	pos := ctx.ItemPos()
	ctx.DrawList.AddImage(tex, pos.X, pos.Y, size.X, size.Y, ColorWhite)
	ctx.advanceCursor(pos, size)
}

// ImageButton draws a texture that acts as a button, without padding or
// background. The image is tinted while hovered. Returns true if clicked.
func (ctx *Context) ImageButton(id string, tex TextureID, size Vec2) bool {
	pos := ctx.ItemPos()
	rect := Rect{X: pos.X, Y: pos.Y, W: size.X, H: size.Y}

	tint := ColorWhite
	if ctx.isHovered(rect) {
		tint = ctx.style.ImageHoveredTint
	}
	ctx.DrawList.AddImage(tex, pos.X, pos.Y, size.X, size.Y, tint)

	clicked := ctx.isClicked(id, rect)
	ctx.advanceCursor(pos, size)
	return clicked
}

// Selectable draws a full-width selectable row with a centered label.
// Returns true if clicked.
func (ctx *Context) Selectable(label string, selected bool) bool {
	pos := ctx.ItemPos()

	w := ctx.region.X + ctx.region.W - pos.X
	h := ctx.lineHeight() + ctx.style.SelectablePad*2
	rect := Rect{X: pos.X, Y: pos.Y, W: w, H: h}

	var bgColor uint32
	textColor := ctx.style.TextColor
	hovered := ctx.isHovered(rect)
	switch {
	case selected:
		bgColor = ctx.style.SelectedBgColor
		textColor = ctx.style.SelectedTextColor
	case hovered:
		bgColor = ctx.style.HoveredBgColor
	}
	if bgColor != 0 {
		ctx.DrawList.AddRect(pos.X, pos.Y, w, h, bgColor)
	}

	label = ctx.TruncateText(label, w)
	textW := ctx.MeasureText(label).X
	ctx.addText(pos.X+maxf(0, (w-textW)/2), pos.Y+ctx.style.SelectablePad, label, textColor)

	clicked := ctx.isClicked(label, rect)
	ctx.advanceCursor(pos, Vec2{X: w, Y: h})
	return clicked
}

// Checkbox draws a checkbox with label.
// Returns true if the value changed.
func (ctx *Context) Checkbox(label string, value *bool) bool {
	pos := ctx.ItemPos()

	boxSize := ctx.lineHeight()
	totalWidth := boxSize + ctx.style.ItemSpacing + ctx.MeasureText(label).X
	rect := Rect{X: pos.X, Y: pos.Y, W: totalWidth, H: boxSize}

	boxColor := ctx.style.CheckboxBgColor
	if ctx.isHovered(rect) {
		boxColor = ctx.style.ButtonHoveredColor
	}
	ctx.DrawList.AddRect(pos.X, pos.Y, boxSize, boxSize, boxColor)
	ctx.DrawList.AddRectOutline(pos.X, pos.Y, boxSize, boxSize, ctx.style.BorderColor, 1)

	if *value {
		padding := boxSize * 0.25
		ctx.DrawList.AddRect(pos.X+padding, pos.Y+padding,
			boxSize-padding*2, boxSize-padding*2, ctx.style.CheckboxMarkColor)
	}

	ctx.addText(pos.X+boxSize+ctx.style.ItemSpacing, pos.Y, label, ctx.style.TextColor)

	changed := false
	if ctx.isClicked(label, rect) {
		*value = !*value
		changed = true
	}

	ctx.advanceCursor(pos, Vec2{X: totalWidth, Y: boxSize})
	return changed
}

// ItemHovered reports whether the last submitted item is under the mouse.
func (ctx *Context) ItemHovered() bool {
	return ctx.lastItemValid && ctx.isHovered(ctx.lastItem)
}

// Tooltip shows a tooltip near the mouse on the foreground layer.
// Callers usually guard it with ItemHovered.
func (ctx *Context) Tooltip(text string) {
	if ctx.Input == nil || text == "" {
		return
	}
	dl := ctx.ForegroundDrawList
	if dl == nil {
		dl = ctx.DrawList
	}

	padding := ctx.style.ButtonPadding
	maxWidth := ctx.DisplaySize.X * 0.5
	lines := ctx.wrapLines(text, maxWidth, ctx.style.FontScale)
	var textW float32
	for _, line := range lines {
		textW = maxf(textW, ctx.MeasureText(line).X)
	}
	w := textW + padding*2
	h := float32(len(lines))*ctx.lineHeight() + padding*2

	// Near the mouse, but kept on screen
	x := ctx.Input.MouseX + 12
	y := ctx.Input.MouseY + 12
	if x+w > ctx.DisplaySize.X {
		x = maxf(0, ctx.DisplaySize.X-w)
	}
	if y+h > ctx.DisplaySize.Y {
		y = maxf(0, ctx.Input.MouseY-h-4)
	}

	dl.AddRect(x, y, w, h, ctx.style.TooltipBgColor)
	dl.AddRectOutline(x, y, w, h, ctx.style.TooltipBorderColor, 1)
	for i, line := range lines {
		ctx.addTextScaled(dl, x+padding, y+padding+float32(i)*ctx.lineHeight(), line, ctx.style.TextColor, ctx.style.FontScale)
	}
}
