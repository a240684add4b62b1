package capture

import (
	"image"
	"testing"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/stretchr/testify/assert"

	"github.com/shadeforge/glkit/gltest"
)

func TestReadRGBA(t *testing.T) {
	gltest.NewContext(t)

	fb, err := New(16, 16)
	if !assert.NoError(t, err) {
		return
	}
	defer fb.Release()
	assert.Equal(t, image.Point{X: 16, Y: 16}, fb.Size())

	fb.Bind()
	gl.ClearColor(1, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	fb.Unbind()

	img := fb.ReadRGBA()
	assert.Equal(t, image.Rect(0, 0, 16, 16), img.Bounds())
	r, g, b, a := img.At(0, 0).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

// The readback flips rows so the image has a top-left origin. Clearing only
// the bottom half of GL's coordinate space must show up in the bottom half
// of the image.
func TestReadRGBAFlipsRows(t *testing.T) {
	gltest.NewContext(t)

	fb, err := New(16, 16)
	if !assert.NoError(t, err) {
		return
	}
	defer fb.Release()

	fb.Bind()
	gl.ClearColor(1, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Enable(gl.SCISSOR_TEST)
	gl.Scissor(0, 0, 16, 8)
	gl.ClearColor(0, 0, 1, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	gl.Disable(gl.SCISSOR_TEST)
	fb.Unbind()

	img := fb.ReadRGBA()

	rTop, _, bTop, _ := img.At(8, 0).RGBA()
	assert.Equal(t, uint32(0xffff), rTop)
	assert.Equal(t, uint32(0), bTop)

	rBottom, _, bBottom, _ := img.At(8, 15).RGBA()
	assert.Equal(t, uint32(0), rBottom)
	assert.Equal(t, uint32(0xffff), bBottom)
}

func TestReadRGBAReusesRing(t *testing.T) {
	gltest.NewContext(t)

	fb, err := New(8, 8)
	if !assert.NoError(t, err) {
		return
	}
	defer fb.Release()

	// More reads than ring slots, each must return the current contents.
	colors := [][4]float32{{1, 0, 0, 1}, {0, 1, 0, 1}, {0, 0, 1, 1}, {1, 1, 0, 1}, {0, 1, 1, 1}}
	for _, c := range colors {
		fb.Bind()
		gl.ClearColor(c[0], c[1], c[2], c[3])
		gl.Clear(gl.COLOR_BUFFER_BIT)
		fb.Unbind()

		img := fb.ReadRGBA()
		r, g, b, _ := img.At(4, 4).RGBA()
		assert.Equal(t, uint32(c[0])*0xffff, r)
		assert.Equal(t, uint32(c[1])*0xffff, g)
		assert.Equal(t, uint32(c[2])*0xffff, b)
	}
}

func TestFramebufferRelease(t *testing.T) {
	gltest.NewContext(t)

	fb, err := New(8, 8)
	if !assert.NoError(t, err) {
		return
	}
	assert.NotZero(t, fb.ColorTexture().ID())

	fb.Release()
	assert.Zero(t, fb.ColorTexture().ID())

	// Releasing an already-empty framebuffer is a no-op.
	fb.Release()
}

func TestInvalidSizes(t *testing.T) {
	_, err := New(0, 16)
	assert.Error(t, err)

	_, err = NewRecorder("out.mp4", 16, 0, 30)
	assert.Error(t, err)

	_, err = NewRecorder("out.mp4", 16, 16, 0)
	assert.Error(t, err)
}

func TestWriteFrameSizeMismatch(t *testing.T) {
	r := &Recorder{width: 8, height: 8, frameSize: 8 * 8 * 4}
	err := r.WriteFrame(image.NewRGBA(image.Rect(0, 0, 4, 4)))
	assert.Error(t, err)
}
