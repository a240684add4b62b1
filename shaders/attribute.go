// Package shaders holds what the shader family shares: the generic vertex
// attribute convention, program compilation, and the diagnostic sink.
package shaders

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Generic vertex attribute locations, identical across every shader in the
// family so a single mesh layout can be drawn with any variant. Matrix
// attributes occupy one location per column.
const (
	PositionLocation           = 0
	TextureCoordinatesLocation = 1
	ColorLocation              = 2
	TangentLocation            = 3
	ObjectIDLocation           = 4
	NormalLocation             = 5

	// Per-instance attributes.
	TransformationMatrixLocation = 8  // occupies 8-11
	NormalMatrixLocation         = 12 // occupies 12-14
	TextureOffsetLocation        = 15
)

// Shader output locations.
const (
	ColorOutput    = 0
	ObjectIDOutput = 2
)

// BindAttribute fixes a named vertex attribute to its generic location.
// Must be called between shader attachment and linking.
func BindAttribute(program uint32, location uint32, name string) {
	gl.BindAttribLocation(program, location, gl.Str(name+"\x00"))
}
