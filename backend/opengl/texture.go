package opengl

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/aetherbox/aetherbox"
	"github.com/aetherbox/aetherbox/gui"
)

// TextureUploader creates and deletes GPU textures. *Renderer implements it.
type TextureUploader interface {
	CreateTexture(img *image.RGBA) gui.TextureID
	DeleteTexture(tex gui.TextureID)
}

var _ TextureUploader = (*Renderer)(nil)

// TextureLoader loads PNG images from a directory into textures.
// It implements aetherbox.ImageLoader.
type TextureLoader struct {
	dir      string
	uploader TextureUploader
}

var _ aetherbox.ImageLoader = (*TextureLoader)(nil)

// NewTextureLoader loads images from dir through up.
func NewTextureLoader(dir string, up TextureUploader) *TextureLoader {
	return &TextureLoader{dir: dir, uploader: up}
}

// Load decodes dir/name and uploads it. A missing file returns an error
// wrapping aetherbox.ErrImageNotFound.
func (l *TextureLoader) Load(name string) (aetherbox.Image, error) {
	path := filepath.Join(l.dir, name)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, aetherbox.ErrImageNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	rgba := toRGBA(src)
	b := rgba.Bounds()
	return &Texture{
		id:       l.uploader.CreateTexture(rgba),
		size:     gui.Vec2{X: float32(b.Dx()), Y: float32(b.Dy())},
		uploader: l.uploader,
	}, nil
}

// toRGBA converts any image to a tightly packed RGBA image at the origin.
func toRGBA(src image.Image) *image.RGBA {
	b := src.Bounds()
	if rgba, ok := src.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == 4*b.Dx() {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

// Texture is an uploaded image.
type Texture struct {
	id       gui.TextureID
	size     gui.Vec2
	uploader TextureUploader
	once     sync.Once
}

// TextureID returns the GPU texture.
func (t *Texture) TextureID() gui.TextureID { return t.id }

// Size returns the image size in pixels.
func (t *Texture) Size() gui.Vec2 { return t.size }

// Release deletes the texture. Further calls do nothing.
func (t *Texture) Release() {
	t.once.Do(func() {
		t.uploader.DeleteTexture(t.id)
	})
}
