package aetherbox

import (
	"fmt"

	"github.com/aetherbox/aetherbox/config"
	"github.com/aetherbox/aetherbox/gui"
)

// fakeSurface records what the window draws. Items named in clicks report a
// click, items named in hovered report hover. panicOn makes the named call
// panic.
type fakeSurface struct {
	windowPos     gui.Vec2
	windowSize    gui.Vec2
	cursor        gui.Vec2
	avail         gui.Vec2
	viewport      gui.Vec2
	multiViewport bool
	scale         float32
	spacing       float32

	clicks  map[string]bool
	hovered map[string]bool
	panicOn string

	calls        []string
	images       []drawnImage
	wrapped      []wrappedText
	cursorSets   []gui.Vec2
	columnsWidth float32
	lastItem     string
}

type drawnImage struct {
	ID   string // Empty for plain images
	Tex  gui.TextureID
	Pos  gui.Vec2 // Window-relative
	Size gui.Vec2
}

type wrappedText struct {
	Text  string
	Color uint32
	Scale float32
}

func newFakeSurface() *fakeSurface {
	return &fakeSurface{
		windowPos:  gui.Vec2{X: 100, Y: 100},
		windowSize: gui.Vec2{X: 300, Y: 500},
		cursor:     gui.Vec2{X: 8, Y: 28},
		avail:      gui.Vec2{X: 284, Y: 464},
		viewport:   gui.Vec2{X: 1280, Y: 720},
		scale:      1,
		spacing:    4,
		clicks:     map[string]bool{},
		hovered:    map[string]bool{},
	}
}

func (f *fakeSurface) record(call string) {
	f.calls = append(f.calls, call)
	if f.panicOn != "" && f.panicOn == call {
		panic(fmt.Sprintf("fake failure in %s", call))
	}
}

func (f *fakeSurface) item(name string, height float32) {
	f.lastItem = name
	f.cursor.Y += height + f.spacing
}

func (f *fakeSurface) WindowPos() gui.Vec2        { return f.windowPos }
func (f *fakeSurface) WindowSize() gui.Vec2       { return f.windowSize }
func (f *fakeSurface) CursorPos() gui.Vec2        { return f.cursor }
func (f *fakeSurface) ContentAvail() gui.Vec2     { return f.avail }
func (f *fakeSurface) ViewportSize() gui.Vec2     { return f.viewport }
func (f *fakeSurface) MultiViewportEnabled() bool { return f.multiViewport }
func (f *fakeSurface) Scale() float32             { return f.scale }
func (f *fakeSurface) ItemSpacing() float32       { return f.spacing }

func (f *fakeSurface) SetCursorPos(x, y float32) {
	f.cursor = gui.Vec2{X: x, Y: y}
	f.cursorSets = append(f.cursorSets, f.cursor)
}

func (f *fakeSurface) BeginColumns(id string, firstWidth float32) bool {
	f.record("BeginColumns")
	f.columnsWidth = firstWidth
	f.avail.X = firstWidth
	return true
}

func (f *fakeSurface) NextColumn() {
	f.record("NextColumn")
	f.avail.X = f.windowSize.X - 16 - f.columnsWidth - 8
}

func (f *fakeSurface) EndColumns() {
	f.record("EndColumns")
	f.avail.X = f.windowSize.X - 16
}

func (f *fakeSurface) Text(text string) {
	f.record("Text:" + text)
	f.item(text, 12)
}

func (f *fakeSurface) TextColored(text string, color uint32) {
	f.record("Text:" + text)
	f.item(text, 12)
}

func (f *fakeSurface) TextDisabled(text string) {
	f.record("TextDisabled:" + text)
	f.item(text, 12)
}

func (f *fakeSurface) TextWrappedColored(text string, color uint32, fontScale float32) {
	f.record("TextWrapped")
	f.wrapped = append(f.wrapped, wrappedText{Text: text, Color: color, Scale: fontScale})
	f.item(text, 12)
}

func (f *fakeSurface) Separator() {
	f.record("Separator")
	f.item("", 4)
}

func (f *fakeSurface) Spacing(pixels float32) {
	f.cursor.Y += pixels
}

func (f *fakeSurface) Image(tex gui.TextureID, size gui.Vec2) {
	f.record("Image")
	f.images = append(f.images, drawnImage{Tex: tex, Pos: f.cursor, Size: size})
	f.item("image", size.Y)
}

func (f *fakeSurface) ImageButton(id string, tex gui.TextureID, size gui.Vec2) bool {
	f.record("ImageButton")
	f.images = append(f.images, drawnImage{ID: id, Tex: tex, Pos: f.cursor, Size: size})
	f.item(id, size.Y)
	return f.clicks[id]
}

func (f *fakeSurface) Selectable(label string, selected bool) bool {
	call := "Selectable:" + label
	if selected {
		call += ":selected"
	}
	f.record(call)
	f.item(label, 18)
	return f.clicks[label]
}

func (f *fakeSurface) Checkbox(label string, value *bool) bool {
	f.record("Checkbox:" + label)
	f.item(label, 12)
	if f.clicks[label] {
		*value = !*value
		return true
	}
	return false
}

func (f *fakeSurface) ItemHovered() bool {
	return f.hovered[f.lastItem]
}

func (f *fakeSurface) Tooltip(text string) {
	f.record("Tooltip:" + text)
}

// fakeConfig is an in-memory ConfigStore.
type fakeConfig struct {
	cfg     config.Config
	saves   int
	updates int
	err     error
}

func newFakeConfig() *fakeConfig {
	return &fakeConfig{cfg: config.Default()}
}

func (c *fakeConfig) Config() config.Config { return c.cfg }

func (c *fakeConfig) Update(fn func(*config.Config)) error {
	c.updates++
	fn(&c.cfg)
	return c.Save()
}

func (c *fakeConfig) Save() error {
	c.saves++
	return c.err
}

// fakeImage counts releases.
type fakeImage struct {
	tex      gui.TextureID
	size     gui.Vec2
	releases int
}

func (i *fakeImage) TextureID() gui.TextureID { return i.tex }
func (i *fakeImage) Size() gui.Vec2           { return i.size }
func (i *fakeImage) Release()                 { i.releases++ }

// fakeLoader serves images from a map.
type fakeLoader map[string]*fakeImage

func (l fakeLoader) Load(name string) (Image, error) {
	img, ok := l[name]
	if !ok {
		return nil, fmt.Errorf("%s: %w", name, ErrImageNotFound)
	}
	return img, nil
}
