// Package capture renders offscreen and reads frames back, optionally piping
// them to an encoder.
package capture

import (
	"fmt"
	"image"

	gl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/shadeforge/glkit/buffer"
	"github.com/shadeforge/glkit/texture"
)

// numPBOs is the size of the pixel buffer ring. Rotating the readback target
// lets the driver overlap transfers between frames.
const numPBOs = 3

// Framebuffer is an offscreen render target with an RGBA8 color attachment,
// a 24-bit depth attachment and a pixel buffer ring for readback.
type Framebuffer struct {
	fbo               uint32
	color             *texture.Texture2D
	depthRenderbuffer uint32
	width             int
	height            int
	pbos              []*buffer.Buffer
	pboIndex          int
}

// New creates a complete framebuffer of the given size.
func New(width, height int) (*Framebuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("capture: invalid framebuffer size %dx%d", width, height)
	}

	color, err := texture.NewEmpty(width, height, gl.RGBA8)
	if err != nil {
		return nil, err
	}
	f := &Framebuffer{width: width, height: height, color: color}

	gl.GenFramebuffers(1, &f.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, f.color.ID(), 0)

	gl.GenRenderbuffers(1, &f.depthRenderbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, f.depthRenderbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, f.depthRenderbuffer)

	if gl.CheckFramebufferStatus(gl.FRAMEBUFFER) != gl.FRAMEBUFFER_COMPLETE {
		gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
		f.Release()
		return nil, fmt.Errorf("capture: framebuffer %dx%d is not complete", width, height)
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	f.pbos = make([]*buffer.Buffer, numPBOs)
	for i := range f.pbos {
		f.pbos[i] = buffer.New()
		f.pbos[i].Reserve(width*height*4, buffer.StreamRead)
	}
	return f, nil
}

// Size returns the framebuffer extent in pixels.
func (f *Framebuffer) Size() image.Point { return image.Point{X: f.width, Y: f.height} }

// ColorTexture returns the color attachment, for sampling the rendered frame.
func (f *Framebuffer) ColorTexture() *texture.Texture2D { return f.color }

// Bind makes the framebuffer the render target and sets the viewport to
// cover it.
func (f *Framebuffer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, f.fbo)
	gl.Viewport(0, 0, int32(f.width), int32(f.height))
}

// Unbind restores the default framebuffer.
func (f *Framebuffer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ReadRGBA reads the color attachment into an image with a top-left origin.
// The read goes through the pixel buffer ring and waits for the GPU to
// finish the frame.
func (f *Framebuffer) ReadRGBA() *image.RGBA {
	pbo := f.pbos[f.pboIndex]
	f.pboIndex = (f.pboIndex + 1) % len(f.pbos)

	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, f.fbo)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	pbo.Bind(buffer.PixelPack)
	gl.ReadPixels(0, 0, int32(f.width), int32(f.height), gl.RGBA, gl.UNSIGNED_BYTE, nil)
	buffer.Unbind(buffer.PixelPack)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	pixels := pbo.Data()

	// GL rows run bottom-up, image rows top-down.
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	rowSize := f.width * 4
	for y := 0; y < f.height; y++ {
		src := pixels[(f.height-1-y)*rowSize:]
		copy(img.Pix[y*img.Stride:], src[:rowSize])
	}
	return img
}

// Release deletes all GL objects. Safe to call more than once.
func (f *Framebuffer) Release() {
	if f.fbo != 0 {
		gl.DeleteFramebuffers(1, &f.fbo)
		f.fbo = 0
	}
	if f.color != nil {
		f.color.Release()
	}
	if f.depthRenderbuffer != 0 {
		gl.DeleteRenderbuffers(1, &f.depthRenderbuffer)
		f.depthRenderbuffer = 0
	}
	for _, pbo := range f.pbos {
		pbo.Release()
	}
	f.pbos = nil
}
