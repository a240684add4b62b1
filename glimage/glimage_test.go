package glimage_test

import (
	"image"
	"testing"

	"github.com/shadeforge/glkit/buffer"
	"github.com/shadeforge/glkit/glimage"
	"github.com/shadeforge/glkit/gltest"
	"github.com/shadeforge/glkit/pixel"
	"github.com/stretchr/testify/assert"
)

func TestConstruct(t *testing.T) {
	gltest.NewContext(t)

	// 1x3 single-channel image; each row pads to the 4-byte alignment.
	data := []byte{'a', 0, 0, 0, 'b', 0, 0, 0, 'c', 0, 0, 0}
	a := glimage.NewBufferImage(pixel.Red, pixel.UnsignedByte, image.Pt(1, 3), data, buffer.StaticDraw)
	defer a.Release()

	assert.Equal(t, pixel.Red, a.Format())
	assert.Equal(t, pixel.UnsignedByte, a.Type())
	assert.Equal(t, image.Pt(1, 3), a.Size())
	assert.Equal(t, 12, a.DataSize())
	assert.Equal(t, data, a.Buffer().Data())
}

func TestConstructCompressed(t *testing.T) {
	gltest.NewContext(t)

	data := []byte{'a', 0, 0, 0, 'b', 0, 0, 0}
	a := glimage.NewCompressedBufferImage(pixel.RedRgtc1, image.Pt(4, 4), data, buffer.StaticDraw)
	defer a.Release()

	assert.Equal(t, pixel.RedRgtc1, a.Format())
	assert.Equal(t, image.Pt(4, 4), a.Size())
	assert.Equal(t, 8, a.DataSize())
	assert.Equal(t, data, a.Buffer().Data())
}

func TestSetData(t *testing.T) {
	gltest.NewContext(t)

	a := glimage.NewBufferImage(pixel.Red, pixel.UnsignedByte, image.Pt(4, 1),
		[]byte{'a', 'b', 'c', 'd'}, buffer.StaticDraw)
	defer a.Release()

	// Full replace: format, type, extent and payload all change.
	data2 := []byte{1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0, 7, 0, 8, 0}
	a.SetData(pixel.RGBA, pixel.UnsignedShort, image.Pt(1, 2), data2, buffer.StaticDraw)

	assert.Equal(t, pixel.RGBA, a.Format())
	assert.Equal(t, pixel.UnsignedShort, a.Type())
	assert.Equal(t, image.Pt(1, 2), a.Size())
	assert.Equal(t, 16, a.DataSize())
	assert.Equal(t, data2, a.Buffer().Data())
}

func TestSetDataCompressed(t *testing.T) {
	gltest.NewContext(t)

	a := glimage.NewCompressedBufferImage(pixel.RedRgtc1, image.Pt(4, 4),
		[]byte{'a', 0, 0, 0, 'b', 0, 0, 0}, buffer.StaticDraw)
	defer a.Release()

	data2 := []byte{'a', 0, 0, 0, 'b', 0, 0, 0, 'c', 0, 0, 0, 'd', 0, 0, 0}
	a.SetData(pixel.RGRgtc2, image.Pt(8, 4), data2, buffer.StaticDraw)

	assert.Equal(t, pixel.RGRgtc2, a.Format())
	assert.Equal(t, image.Pt(8, 4), a.Size())
	assert.Equal(t, 16, a.DataSize())
	assert.Equal(t, data2, a.Buffer().Data())
}

func TestRelease(t *testing.T) {
	gltest.NewContext(t)

	a := glimage.NewBufferImage(pixel.Red, pixel.UnsignedByte, image.Pt(4, 1),
		[]byte{'a', 'b', 'c', 'd'}, buffer.StaticDraw)
	assert.NotZero(t, a.Buffer().ID())

	a.Release()
	assert.Zero(t, a.Buffer().ID())
	assert.Equal(t, image.Point{}, a.Size())
	assert.Zero(t, a.DataSize())

	a.Release()
	assert.Zero(t, a.Buffer().ID())
}

func TestReleaseCompressed(t *testing.T) {
	gltest.NewContext(t)

	a := glimage.NewCompressedBufferImage(pixel.RedRgtc1, image.Pt(4, 4),
		[]byte{'a', 0, 0, 0, 'b', 0, 0, 0}, buffer.StaticDraw)
	assert.NotZero(t, a.Buffer().ID())

	a.Release()
	assert.Zero(t, a.Buffer().ID())
	assert.Equal(t, image.Point{}, a.Size())
	assert.Zero(t, a.DataSize())
}
