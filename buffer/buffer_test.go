package buffer_test

import (
	"testing"

	"github.com/shadeforge/glkit/buffer"
	"github.com/shadeforge/glkit/gltest"
	"github.com/stretchr/testify/assert"
)

func TestSetDataRoundTrip(t *testing.T) {
	gltest.NewContext(t)

	b := buffer.New()
	defer b.Release()
	assert.NotZero(t, b.ID())

	data := []byte{'a', 'b', 'c', 'd'}
	b.SetData(data, buffer.StaticDraw)
	assert.Equal(t, 4, b.Size())
	assert.Equal(t, data, b.Data())
}

func TestSetDataReplaces(t *testing.T) {
	gltest.NewContext(t)

	b := buffer.New()
	defer b.Release()

	b.SetData([]byte{1, 2, 3, 4}, buffer.StaticDraw)
	b.SetData([]byte{9, 8, 7, 6, 5, 4, 3, 2}, buffer.DynamicDraw)
	assert.Equal(t, 8, b.Size())
	assert.Equal(t, []byte{9, 8, 7, 6, 5, 4, 3, 2}, b.Data())
}

func TestSubData(t *testing.T) {
	gltest.NewContext(t)

	b := buffer.New()
	defer b.Release()

	b.SetData([]byte{0, 0, 0, 0}, buffer.DynamicDraw)
	b.SubData(1, []byte{7, 7})
	assert.Equal(t, []byte{0, 7, 7, 0}, b.Data())
}

func TestReserve(t *testing.T) {
	gltest.NewContext(t)

	b := buffer.New()
	defer b.Release()

	b.Reserve(16, buffer.StreamRead)
	assert.Equal(t, 16, b.Size())
	assert.Len(t, b.Data(), 16)
}

func TestRelease(t *testing.T) {
	gltest.NewContext(t)

	b := buffer.New()
	b.SetData([]byte{1, 2, 3}, buffer.StaticDraw)
	assert.NotZero(t, b.ID())

	b.Release()
	assert.Zero(t, b.ID())
	assert.Zero(t, b.Size())
	assert.Nil(t, b.Data())

	// Releasing an already-empty buffer is a no-op.
	b.Release()
	assert.Zero(t, b.ID())
}
