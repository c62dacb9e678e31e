package gui

import (
	"math"
	"sync"

	"github.com/mattn/go-runewidth"
)

// Built-in bitmap font atlas layout: ASCII 32-127 in a 16x6 grid of 8x8 cells.
const (
	FontAtlasColumns = 16
	FontAtlasRows    = 6
	FontGlyphSize    = 8
	FontAtlasWidth   = FontAtlasColumns * FontGlyphSize
	FontAtlasHeight  = FontAtlasRows * FontGlyphSize
)

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawList accumulates draw commands for a frame.
// It batches primitives by texture to minimize GPU state changes.
type DrawList struct {
	CmdBuffer []DrawCmd
	VtxBuffer []Vertex
	IdxBuffer []uint16

	clipStack    [][4]float32
	currentClip  [4]float32
	textureID    TextureID
	cmdOffset    uint32 // Vertex offset for current command
	idxCmdOffset uint32 // Index offset for current command
}

// Clear resets the DrawList for a new frame.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect pushes a new clip rectangle, intersected with the current one.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	c := dl.currentClip
	dl.currentClip = [4]float32{maxf(x1, c[0]), maxf(y1, c[1]), minf(x2, c[2]), minf(y2, c[3])}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// ClipDepth returns the number of pushed clip rectangles.
func (dl *DrawList) ClipDepth() int {
	return len(dl.clipStack)
}

// RestoreClipDepth pops clip rectangles until at most depth remain.
func (dl *DrawList) RestoreClipDepth(depth int) {
	for len(dl.clipStack) > depth {
		dl.PopClipRect()
	}
}

// ClipRect returns the current clip rectangle (x1, y1, x2, y2).
func (dl *DrawList) ClipRect() [4]float32 {
	return dl.currentClip
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID TextureID) {
	if dl.textureID == textureID {
		return
	}
	dl.textureID = textureID
	dl.splitDraw()
}

// splitDraw finalizes the current command and starts a new one.
// An empty current command is dropped, and if the one before it has the same
// texture and clip it is continued instead.
func (dl *DrawList) splitDraw() {
	if n := len(dl.CmdBuffer); n > 0 {
		lastCmd := &dl.CmdBuffer[n-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
		if lastCmd.ElemCount == 0 {
			dl.CmdBuffer = dl.CmdBuffer[:n-1]
			if n > 1 {
				prev := &dl.CmdBuffer[n-2]
				if prev.TextureID == dl.textureID && prev.ClipRect == dl.currentClip {
					dl.cmdOffset = prev.VertexOffset
					dl.idxCmdOffset = prev.IndexOffset
					return
				}
			}
		}
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

func (dl *DrawList) ensureCommand() {
	if len(dl.CmdBuffer) == 0 {
		dl.splitDraw()
	}
}

// addQuad appends four vertices and the two triangles joining them.
// Indices are relative to the current command's vertex offset.
func (dl *DrawList) addQuad(v0, v1, v2, v3 Vertex) {
	dl.ensureCommand()
	idx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, v0, v1, v2, v3)
	dl.IdxBuffer = append(dl.IdxBuffer, idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y}, Color: color},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: color},
		Vertex{Pos: [2]float32{x, y + h}, Color: color},
	)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}
	dl.AddRect(x, y, w, thickness, color)
	dl.AddRect(x, y+h-thickness, w, thickness, color)
	dl.AddRect(x, y+thickness, thickness, h-2*thickness, color)
	dl.AddRect(x+w-thickness, y+thickness, thickness, h-2*thickness, color)
}

// AddLine draws a line between two points as a quad of the given thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1)
	if dx != 0 || dy != 0 {
		inv = 1 / float32(math.Sqrt(float64(dx*dx+dy*dy)))
	}

	// Normal perpendicular to line
	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	dl.addQuad(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)
}

// AddImage draws a texture stretched over the given rectangle, tinted by color.
// The current texture is restored afterwards.
func (dl *DrawList) AddImage(tex TextureID, x, y, w, h float32, tint uint32) {
	if tex == 0 || tint&0xFF000000 == 0 || w <= 0 || h <= 0 {
		return
	}
	prev := dl.textureID
	dl.SetTexture(tex)
	dl.addQuad(
		Vertex{Pos: [2]float32{x, y}, TexCoord: [2]float32{0, 0}, Color: tint},
		Vertex{Pos: [2]float32{x + w, y}, TexCoord: [2]float32{1, 0}, Color: tint},
		Vertex{Pos: [2]float32{x + w, y + h}, TexCoord: [2]float32{1, 1}, Color: tint},
		Vertex{Pos: [2]float32{x, y + h}, TexCoord: [2]float32{0, 1}, Color: tint},
	)
	dl.SetTexture(prev)
}

// AddText draws text from the built-in bitmap font atlas.
// Each rune advances by its monospace cell width; wide runes take two cells.
func (dl *DrawList) AddText(fontTex TextureID, x, y float32, text string, color uint32, fontScale, charWidth, charHeight float32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}

	prev := dl.textureID
	dl.SetTexture(fontTex)

	cw := charWidth * fontScale
	cellH := charHeight * fontScale
	px := x

	for _, r := range text {
		cells := runewidth.RuneWidth(r)
		if cells == 0 {
			continue
		}
		char := unicodeFallback(r)
		if char < 32 || char > 127 {
			char = '?'
		}

		idx := int(char - 32)
		col := float32(idx % FontAtlasColumns)
		row := float32(idx / FontAtlasColumns)

		u0 := col * FontGlyphSize / FontAtlasWidth
		v0 := row * FontGlyphSize / FontAtlasHeight
		u1 := (col + 1) * FontGlyphSize / FontAtlasWidth
		v1 := (row + 1) * FontGlyphSize / FontAtlasHeight

		glyphW := cw * float32(cells)
		dl.addQuad(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + glyphW, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + glyphW, y + cellH}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + cellH}, TexCoord: [2]float32{u0, v1}, Color: color},
		)
		px += glyphW
	}

	dl.SetTexture(prev)
}

// unicodeFallback maps common Unicode symbols to ASCII equivalents
// for the built-in bitmap font.
func unicodeFallback(r rune) rune {
	if r >= 32 && r <= 127 {
		return r
	}
	switch r {
	case '►', '▶', '→':
		return '>'
	case '◄', '◀', '←':
		return '<'
	case '●', '•':
		return '*'
	case '✓', '✔':
		return '+'
	case '✗', '✘':
		return 'x'
	case '—', '–':
		return '-'
	default:
		return r
	}
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}
