package texture

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shadeforge/glkit/gltest"
)

func TestVFlip(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	src.Set(0, 0, color.RGBA{R: 255, A: 255})
	src.Set(1, 0, color.RGBA{G: 255, A: 255})
	src.Set(0, 1, color.RGBA{B: 255, A: 255})
	src.Set(1, 1, color.RGBA{R: 255, G: 255, A: 255})

	flipped := vflip(src)
	assert.Equal(t, color.RGBA{B: 255, A: 255}, flipped.At(0, 0))
	assert.Equal(t, color.RGBA{R: 255, G: 255, A: 255}, flipped.At(1, 0))
	assert.Equal(t, color.RGBA{R: 255, A: 255}, flipped.At(0, 1))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, flipped.At(1, 1))
}

func TestNewNilImage(t *testing.T) {
	_, err := New(nil, Options{})
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	gltest.NewContext(t)

	img := image.NewGray(image.Rect(0, 0, 4, 4))
	tex, err := New(img, Options{Wrap: ClampToEdge, Filter: Nearest})
	if !assert.NoError(t, err) {
		return
	}
	defer tex.Release()

	assert.NotZero(t, tex.ID())
	assert.Equal(t, image.Point{X: 4, Y: 4}, tex.Size())

	tex.Bind(0)
}

func TestRelease(t *testing.T) {
	gltest.NewContext(t)

	tex, err := New(image.NewRGBA(image.Rect(0, 0, 2, 2)), Options{})
	if !assert.NoError(t, err) {
		return
	}

	tex.Release()
	assert.Zero(t, tex.ID())
	assert.Equal(t, image.Point{}, tex.Size())

	// Releasing an already-empty texture is a no-op.
	tex.Release()
}
