// Package pixel defines pixel format enumerations and the byte-size math for
// image payloads. The enumeration values are the native OpenGL enums so they
// can be handed to the driver untranslated.
package pixel

import (
	"fmt"
	"image"

	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Format describes the component layout of uncompressed pixel data.
type Format uint32

const (
	Red  Format = gl.RED
	RG   Format = gl.RG
	RGB  Format = gl.RGB
	BGR  Format = gl.BGR
	RGBA Format = gl.RGBA
	BGRA Format = gl.BGRA
)

// Components returns the number of color components per pixel.
func (f Format) Components() int {
	switch f {
	case Red:
		return 1
	case RG:
		return 2
	case RGB, BGR:
		return 3
	case RGBA, BGRA:
		return 4
	}
	return 0
}

func (f Format) String() string {
	switch f {
	case Red:
		return "Red"
	case RG:
		return "RG"
	case RGB:
		return "RGB"
	case BGR:
		return "BGR"
	case RGBA:
		return "RGBA"
	case BGRA:
		return "BGRA"
	}
	return fmt.Sprintf("Format(0x%x)", uint32(f))
}

// Type describes the numeric type of a single pixel component.
type Type uint32

const (
	UnsignedByte  Type = gl.UNSIGNED_BYTE
	Byte          Type = gl.BYTE
	UnsignedShort Type = gl.UNSIGNED_SHORT
	Short         Type = gl.SHORT
	UnsignedInt   Type = gl.UNSIGNED_INT
	Int           Type = gl.INT
	HalfFloat     Type = gl.HALF_FLOAT
	Float         Type = gl.FLOAT
)

// Size returns the byte width of one component.
func (t Type) Size() int {
	switch t {
	case UnsignedByte, Byte:
		return 1
	case UnsignedShort, Short, HalfFloat:
		return 2
	case UnsignedInt, Int, Float:
		return 4
	}
	return 0
}

func (t Type) String() string {
	switch t {
	case UnsignedByte:
		return "UnsignedByte"
	case Byte:
		return "Byte"
	case UnsignedShort:
		return "UnsignedShort"
	case Short:
		return "Short"
	case UnsignedInt:
		return "UnsignedInt"
	case Int:
		return "Int"
	case HalfFloat:
		return "HalfFloat"
	case Float:
		return "Float"
	}
	return fmt.Sprintf("Type(0x%x)", uint32(t))
}

// CompressedFormat describes a block-compression scheme. The byte size of a
// compressed payload is a function of the scheme's block layout, so callers
// supply it explicitly.
type CompressedFormat uint32

const (
	// Core RGTC one- and two-channel block formats.
	RedRgtc1       CompressedFormat = gl.COMPRESSED_RED_RGTC1
	RGRgtc2        CompressedFormat = gl.COMPRESSED_RG_RGTC2
	SignedRedRgtc1 CompressedFormat = gl.COMPRESSED_SIGNED_RED_RGTC1
	SignedRGRgtc2  CompressedFormat = gl.COMPRESSED_SIGNED_RG_RGTC2

	// S3TC block formats from EXT_texture_compression_s3tc; the enum values
	// are not part of the core header.
	RGBS3tcDxt1  CompressedFormat = 0x83f0
	RGBAS3tcDxt1 CompressedFormat = 0x83f1
	RGBAS3tcDxt3 CompressedFormat = 0x83f2
	RGBAS3tcDxt5 CompressedFormat = 0x83f3
)

func (f CompressedFormat) String() string {
	switch f {
	case RedRgtc1:
		return "RedRgtc1"
	case RGRgtc2:
		return "RGRgtc2"
	case SignedRedRgtc1:
		return "SignedRedRgtc1"
	case SignedRGRgtc2:
		return "SignedRGRgtc2"
	case RGBS3tcDxt1:
		return "RGBS3tcDxt1"
	case RGBAS3tcDxt1:
		return "RGBAS3tcDxt1"
	case RGBAS3tcDxt3:
		return "RGBAS3tcDxt3"
	case RGBAS3tcDxt5:
		return "RGBAS3tcDxt5"
	}
	return fmt.Sprintf("CompressedFormat(0x%x)", uint32(f))
}

// rowAlignment is the default GL unpack alignment; rows are padded to this
// boundary when computing payload sizes.
const rowAlignment = 4

// Pitch returns the byte length of one row of pixels, padded to the unpack
// alignment.
func Pitch(format Format, t Type, width int) int {
	row := width * format.Components() * t.Size()
	if rem := row % rowAlignment; rem != 0 {
		row += rowAlignment - rem
	}
	return row
}

// ImageSize returns the byte length of a tightly packed image with aligned
// rows.
func ImageSize(format Format, t Type, size image.Point) int {
	return Pitch(format, t, size.X) * size.Y
}
