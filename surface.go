package aetherbox

import (
	"errors"

	"github.com/aetherbox/aetherbox/config"
	"github.com/aetherbox/aetherbox/gui"
)

// Surface is the part of the GUI toolkit the window draws with.
// *gui.Context implements it.
type Surface interface {
	// Geometry. Cursor positions are relative to the window's top-left.
	WindowPos() gui.Vec2
	WindowSize() gui.Vec2
	CursorPos() gui.Vec2
	SetCursorPos(x, y float32)
	ContentAvail() gui.Vec2
	ViewportSize() gui.Vec2
	MultiViewportEnabled() bool
	Scale() float32
	ItemSpacing() float32

	BeginColumns(id string, firstWidth float32) bool
	NextColumn()
	EndColumns()

	Text(text string)
	TextColored(text string, color uint32)
	TextDisabled(text string)
	TextWrappedColored(text string, color uint32, fontScale float32)
	Separator()
	Spacing(pixels float32)
	Image(tex gui.TextureID, size gui.Vec2)
	ImageButton(id string, tex gui.TextureID, size gui.Vec2) bool
	Selectable(label string, selected bool) bool
	Checkbox(label string, value *bool) bool
	ItemHovered() bool
	Tooltip(text string)
}

var _ Surface = (*gui.Context)(nil)

// ErrImageNotFound is returned by an ImageLoader when the file does not exist.
var ErrImageNotFound = errors.New("image not found")

// Image is a texture loaded for the window.
type Image interface {
	TextureID() gui.TextureID
	Size() gui.Vec2
	// Release frees the texture. Calling it more than once is a no-op.
	Release()
}

// ImageLoader loads images by file name.
type ImageLoader interface {
	Load(name string) (Image, error)
}

// ConfigStore is the persisted configuration the window reads and saves.
// *config.Store implements it.
type ConfigStore interface {
	Config() config.Config
	Update(fn func(*config.Config)) error
	Save() error
}

var _ ConfigStore = (*config.Store)(nil)
