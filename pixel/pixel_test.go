package pixel

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponents(t *testing.T) {
	assert.Equal(t, 1, Red.Components())
	assert.Equal(t, 2, RG.Components())
	assert.Equal(t, 3, RGB.Components())
	assert.Equal(t, 3, BGR.Components())
	assert.Equal(t, 4, RGBA.Components())
	assert.Equal(t, 4, BGRA.Components())
	assert.Equal(t, 0, Format(0).Components())
}

func TestTypeSize(t *testing.T) {
	assert.Equal(t, 1, UnsignedByte.Size())
	assert.Equal(t, 2, UnsignedShort.Size())
	assert.Equal(t, 2, HalfFloat.Size())
	assert.Equal(t, 4, UnsignedInt.Size())
	assert.Equal(t, 4, Float.Size())
	assert.Equal(t, 0, Type(0).Size())
}

func TestPitch(t *testing.T) {
	tests := []struct {
		format Format
		t      Type
		width  int
		want   int
	}{
		// Single-byte rows pad to the four byte unpack alignment.
		{Red, UnsignedByte, 1, 4},
		{Red, UnsignedByte, 4, 4},
		{Red, UnsignedByte, 5, 8},
		{RGB, UnsignedByte, 1, 4},
		{RGB, UnsignedByte, 2, 8},
		{RGBA, UnsignedByte, 3, 12},
		{RGBA, UnsignedShort, 1, 8},
		{RG, Float, 3, 24},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Pitch(tc.format, tc.t, tc.width),
			"Pitch(%v, %v, %d)", tc.format, tc.t, tc.width)
	}
}

func TestImageSize(t *testing.T) {
	// 1x3 single-channel rows pad to 4 bytes each.
	assert.Equal(t, 12, ImageSize(Red, UnsignedByte, image.Pt(1, 3)))
	assert.Equal(t, 4, ImageSize(Red, UnsignedByte, image.Pt(4, 1)))
	assert.Equal(t, 16, ImageSize(RGBA, UnsignedShort, image.Pt(1, 2)))
	assert.Equal(t, 0, ImageSize(RGBA, UnsignedByte, image.Point{}))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "RGBA", RGBA.String())
	assert.Equal(t, "UnsignedByte", UnsignedByte.String())
	assert.Equal(t, "RGBAS3tcDxt1", RGBAS3tcDxt1.String())
	assert.Equal(t, "Format(0x0)", Format(0).String())
}
