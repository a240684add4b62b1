// Package buffer wraps OpenGL buffer objects. A Buffer exclusively owns one
// GL buffer handle; instances travel by pointer and by-value copies are
// rejected by go vet.
package buffer

import (
	"unsafe"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Usage is the allocation hint passed through to glBufferData. It affects
// only driver-side placement, never observable behavior.
type Usage uint32

const (
	StreamDraw  Usage = gl.STREAM_DRAW
	StreamRead  Usage = gl.STREAM_READ
	StreamCopy  Usage = gl.STREAM_COPY
	StaticDraw  Usage = gl.STATIC_DRAW
	StaticRead  Usage = gl.STATIC_READ
	StaticCopy  Usage = gl.STATIC_COPY
	DynamicDraw Usage = gl.DYNAMIC_DRAW
	DynamicRead Usage = gl.DYNAMIC_READ
	DynamicCopy Usage = gl.DYNAMIC_COPY
)

// Target is a GL buffer binding point.
type Target uint32

const (
	Array        Target = gl.ARRAY_BUFFER
	ElementArray Target = gl.ELEMENT_ARRAY_BUFFER
	PixelPack    Target = gl.PIXEL_PACK_BUFFER
	PixelUnpack  Target = gl.PIXEL_UNPACK_BUFFER
	CopyRead     Target = gl.COPY_READ_BUFFER
	CopyWrite    Target = gl.COPY_WRITE_BUFFER
)

// Buffer owns a single GL buffer object. The zero value and a released Buffer
// are both in the empty state: handle 0, size 0. Allocation and upload
// failures are left in the GL error flag, not reported here.
type Buffer struct {
	noCopy noCopy

	id   uint32
	size int
}

// New generates a fresh buffer object with no storage.
func New() *Buffer {
	b := &Buffer{}
	gl.GenBuffers(1, &b.id)
	return b
}

// ID returns the raw GL handle, 0 for an empty buffer.
func (b *Buffer) ID() uint32 { return b.id }

// Size returns the byte length of the buffer's storage.
func (b *Buffer) Size() int { return b.size }

// SetData discards any previous storage and uploads data, reallocating the
// buffer with the given usage hint.
func (b *Buffer) SetData(data []byte, usage Usage) {
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, b.id)
	b.size = len(data)
	gl.BufferData(gl.COPY_WRITE_BUFFER, len(data), ptr(data), uint32(usage))
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)
}

// Reserve allocates size bytes of uninitialized storage.
func (b *Buffer) Reserve(size int, usage Usage) {
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, b.id)
	b.size = size
	gl.BufferData(gl.COPY_WRITE_BUFFER, size, nil, uint32(usage))
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)
}

// SubData overwrites a range of the existing storage without reallocating.
func (b *Buffer) SubData(offset int, data []byte) {
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, b.id)
	gl.BufferSubData(gl.COPY_WRITE_BUFFER, offset, len(data), ptr(data))
	gl.BindBuffer(gl.COPY_WRITE_BUFFER, 0)
}

// Data reads the buffer's contents back into host memory. This is an escape
// hatch for introspection, not part of the fast path.
func (b *Buffer) Data() []byte {
	if b.id == 0 || b.size == 0 {
		return nil
	}
	data := make([]byte, b.size)
	gl.BindBuffer(gl.COPY_READ_BUFFER, b.id)
	gl.GetBufferSubData(gl.COPY_READ_BUFFER, 0, b.size, gl.Ptr(data))
	gl.BindBuffer(gl.COPY_READ_BUFFER, 0)
	return data
}

// Bind binds the buffer to the given target. Callers doing raw GL work
// against the handle pair this with Unbind.
func (b *Buffer) Bind(target Target) {
	gl.BindBuffer(uint32(target), b.id)
}

// Unbind clears the binding for the given target.
func Unbind(target Target) {
	gl.BindBuffer(uint32(target), 0)
}

// Release deletes the GL buffer and resets the wrapper to the empty state.
// Safe to call more than once.
func (b *Buffer) Release() {
	if b.id != 0 {
		gl.DeleteBuffers(1, &b.id)
		b.id = 0
	}
	b.size = 0
}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

// noCopy makes go vet flag by-value copies of the owning wrapper.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
