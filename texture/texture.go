// Package texture wraps 2D GL textures created from Go images.
package texture

import (
	"fmt"
	"image"
	"image/draw"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Wrap selects the coordinate wrapping mode.
type Wrap int

const (
	Repeat Wrap = iota
	ClampToEdge
	MirroredRepeat
)

func (w Wrap) gl() int32 {
	switch w {
	case ClampToEdge:
		return gl.CLAMP_TO_EDGE
	case MirroredRepeat:
		return gl.MIRRORED_REPEAT
	default:
		return gl.REPEAT
	}
}

// Filter selects the sampling filter.
type Filter int

const (
	Linear Filter = iota
	Nearest
	Mipmap
)

func (f Filter) gl() (minFilter, magFilter int32) {
	switch f {
	case Nearest:
		return gl.NEAREST, gl.NEAREST
	case Mipmap:
		return gl.LINEAR_MIPMAP_LINEAR, gl.LINEAR
	default:
		return gl.LINEAR, gl.LINEAR
	}
}

// Options configures texture creation. The zero value means repeat wrapping,
// linear filtering, non-sRGB storage.
type Options struct {
	Wrap   Wrap
	Filter Filter
	// SRGB stores the texture in an sRGB internal format so the GPU
	// linearizes texels when sampling.
	SRGB bool
	// VFlip flips the image vertically before upload, for sources with a
	// top-left origin.
	VFlip bool
}

// Texture2D owns one GL 2D texture.
type Texture2D struct {
	id   uint32
	size image.Point
}

// vflip returns a vertically flipped copy of src.
func vflip(src *image.RGBA) *image.RGBA {
	bounds := src.Bounds()
	flipped := image.NewRGBA(bounds)
	height := bounds.Dy()

	rowSize := bounds.Dx() * 4
	for y := 0; y < height; y++ {
		srcRow := src.Pix[((height-1)-y)*src.Stride:]
		dstRow := flipped.Pix[y*flipped.Stride:]
		copy(dstRow, srcRow[:rowSize])
	}
	return flipped
}

// New creates a texture from img, converting to RGBA and uploading to the
// GPU.
func New(img image.Image, opts Options) (*Texture2D, error) {
	if img == nil {
		return nil, fmt.Errorf("input image is nil")
	}

	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, image.Point{}, draw.Src)
	if opts.VFlip {
		rgba = vflip(rgba)
	}

	width := int32(rgba.Rect.Size().X)
	height := int32(rgba.Rect.Size().Y)

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	var internalFormat int32 = gl.RGBA8
	if opts.SRGB {
		internalFormat = gl.SRGB8_ALPHA8
	}

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, opts.Wrap.gl())
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, opts.Wrap.gl())
	minFilter, magFilter := opts.Filter.gl()
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, minFilter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, magFilter)

	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, width, height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	if opts.Filter == Mipmap {
		gl.GenerateMipmap(gl.TEXTURE_2D)
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture2D{id: id, size: rgba.Rect.Size()}, nil
}

// NewEmpty creates an uninitialized texture of the given internal format,
// for use as a render target.
func NewEmpty(width, height int, internalFormat int32) (*Texture2D, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid texture size %dx%d", width, height)
	}

	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat, int32(width), int32(height), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return &Texture2D{id: id, size: image.Point{X: width, Y: height}}, nil
}

// ID returns the raw GL handle, 0 for a released texture.
func (t *Texture2D) ID() uint32 { return t.id }

// Size returns the texture extent in pixels.
func (t *Texture2D) Size() image.Point { return t.size }

// Bind makes the texture current on the given texture unit.
func (t *Texture2D) Bind(unit int) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, t.id)
}

// Release deletes the GL texture. Safe to call more than once.
func (t *Texture2D) Release() {
	if t.id != 0 {
		gl.DeleteTextures(1, &t.id)
		t.id = 0
	}
	t.size = image.Point{}
}
