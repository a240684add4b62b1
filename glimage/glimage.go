// Package glimage provides buffer-backed images: pixel payloads that live in
// GL buffer objects rather than host memory. A buffer image records its
// format metadata on the host and keeps the bytes themselves driver-side,
// ready for pixel-buffer transfers.
package glimage

import (
	"image"

	"github.com/shadeforge/glkit/buffer"
	"github.com/shadeforge/glkit/pixel"
)

// BufferImage is an uncompressed image stored in a GL buffer. It exclusively
// owns the buffer; by-value copies are rejected by go vet. No validation is
// performed beyond what the driver enforces: a payload length that does not
// match pixel.ImageSize is the caller's problem and surfaces, if at all, in
// the GL error flag.
type BufferImage struct {
	noCopy noCopy

	format pixel.Format
	ptype  pixel.Type
	size   image.Point
	buf    *buffer.Buffer
}

// NewBufferImage allocates a buffer and uploads data with the given usage
// hint.
func NewBufferImage(format pixel.Format, ptype pixel.Type, size image.Point, data []byte, usage buffer.Usage) *BufferImage {
	i := &BufferImage{
		format: format,
		ptype:  ptype,
		size:   size,
		buf:    buffer.New(),
	}
	i.buf.SetData(data, usage)
	return i
}

// Format returns the pixel format.
func (i *BufferImage) Format() pixel.Format { return i.format }

// Type returns the component type.
func (i *BufferImage) Type() pixel.Type { return i.ptype }

// Size returns the image extent in pixels.
func (i *BufferImage) Size() image.Point { return i.size }

// DataSize returns the byte length of the payload, derived from the recorded
// format and extent.
func (i *BufferImage) DataSize() int {
	return pixel.ImageSize(i.format, i.ptype, i.size)
}

// Buffer exposes the underlying buffer for driver-level introspection, such
// as reading the raw bytes back. Nil for a zero-value image.
func (i *BufferImage) Buffer() *buffer.Buffer { return i.buf }

// SetData discards the previous contents and metadata wholesale: format,
// type, extent and payload are all replaced, reallocating the buffer storage.
func (i *BufferImage) SetData(format pixel.Format, ptype pixel.Type, size image.Point, data []byte, usage buffer.Usage) {
	i.format = format
	i.ptype = ptype
	i.size = size
	i.buf.SetData(data, usage)
}

// Release frees the GL buffer and resets the image to the empty state:
// zero extent, zero data size, buffer handle 0. Safe to call more than once.
func (i *BufferImage) Release() {
	if i.buf != nil {
		i.buf.Release()
	}
	i.format = 0
	i.ptype = 0
	i.size = image.Point{}
}

// CompressedBufferImage is a block-compressed image stored in a GL buffer.
// Because the payload size of a compressed scheme is not derivable from the
// pixel extent alone, the byte length is recorded explicitly.
type CompressedBufferImage struct {
	noCopy noCopy

	format   pixel.CompressedFormat
	size     image.Point
	dataSize int
	buf      *buffer.Buffer
}

// NewCompressedBufferImage allocates a buffer and uploads the compressed
// payload with the given usage hint.
func NewCompressedBufferImage(format pixel.CompressedFormat, size image.Point, data []byte, usage buffer.Usage) *CompressedBufferImage {
	i := &CompressedBufferImage{
		format:   format,
		size:     size,
		dataSize: len(data),
		buf:      buffer.New(),
	}
	i.buf.SetData(data, usage)
	return i
}

// Format returns the compression scheme.
func (i *CompressedBufferImage) Format() pixel.CompressedFormat { return i.format }

// Size returns the image extent in pixels.
func (i *CompressedBufferImage) Size() image.Point { return i.size }

// DataSize returns the byte length of the compressed payload.
func (i *CompressedBufferImage) DataSize() int { return i.dataSize }

// Buffer exposes the underlying buffer for driver-level introspection.
func (i *CompressedBufferImage) Buffer() *buffer.Buffer { return i.buf }

// SetData replaces scheme, extent and payload wholesale, reallocating the
// buffer storage.
func (i *CompressedBufferImage) SetData(format pixel.CompressedFormat, size image.Point, data []byte, usage buffer.Usage) {
	i.format = format
	i.size = size
	i.dataSize = len(data)
	i.buf.SetData(data, usage)
}

// Release frees the GL buffer and resets the image to the empty state.
func (i *CompressedBufferImage) Release() {
	if i.buf != nil {
		i.buf.Release()
	}
	i.format = 0
	i.size = image.Point{}
	i.dataSize = 0
}

// noCopy makes go vet flag by-value copies of the owning wrappers.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
