// Package flat implements an unlit single-color shader, optionally textured.
package flat

import (
	"fmt"
	"strings"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/shadeforge/glkit/shaders"
	"github.com/shadeforge/glkit/texture"
)

// Flags select which optional code paths are compiled into a shader variant.
type Flags uint8

const (
	// Textured multiplies the color with a texture.
	Textured Flags = 1 << 0
	// AlphaMask discards fragments whose alpha is below the value set with
	// SetAlphaMask.
	AlphaMask Flags = 1 << 1
	// VertexColor multiplies the color with a per-vertex color.
	VertexColor Flags = 1 << 2
	// TextureTransformation enables the texture coordinate matrix.
	TextureTransformation Flags = 1 << 3
	// ObjectID writes the value set with SetObjectID to the object ID
	// framebuffer output.
	ObjectID Flags = 1 << 4
	// InstancedObjectID adds a per-instance ID from the object ID attribute
	// to the uniform ID. Implies ObjectID.
	InstancedObjectID Flags = 1<<5 | ObjectID
	// InstancedTransformation applies a per-instance transformation from the
	// instance attribute before the uniform matrix.
	InstancedTransformation Flags = 1 << 6
	// InstancedTextureOffset adds a per-instance texture coordinate offset
	// before the texture matrix. Implies TextureTransformation.
	InstancedTextureOffset Flags = 1<<7 | TextureTransformation
)

// Has reports whether every bit of sub is set.
func (f Flags) Has(sub Flags) bool { return f&sub == sub }

var flagNames = []struct {
	flag Flags
	name string
}{
	{InstancedObjectID, "InstancedObjectID"},
	{InstancedTextureOffset, "InstancedTextureOffset"},
	{Textured, "Textured"},
	{AlphaMask, "AlphaMask"},
	{VertexColor, "VertexColor"},
	{TextureTransformation, "TextureTransformation"},
	{ObjectID, "ObjectID"},
	{InstancedTransformation, "InstancedTransformation"},
}

func (f Flags) String() string {
	if f == 0 {
		return "Flags(0)"
	}
	var names []string
	remaining := f
	for _, fn := range flagNames {
		if remaining&fn.flag == fn.flag {
			names = append(names, fn.name)
			remaining &^= fn.flag
		}
	}
	return strings.Join(names, "|")
}

// TextureUnit is where BindTexture binds.
const TextureUnit = 0

// Flat owns one linked program variant. Setters return the receiver so calls
// chain; a setter whose feature is missing from the variant writes a
// diagnostic to shaders.ErrorOutput and leaves the shader untouched.
type Flat struct {
	noCopy noCopy

	id    uint32
	flags Flags

	transformationProjectionMatrixLoc int32
	textureMatrixLoc                  int32
	colorLoc                          int32
	alphaMaskLoc                      int32
	objectIDLoc                       int32
}

// New compiles and links the variant selected by flags. Uniforms start at
// their defaults: identity matrices, opaque white color, alpha mask 0.5,
// object ID 0.
func New(flags Flags) (*Flat, error) {
	program, err := shaders.CompileProgram(
		vertexSource(flags),
		fragmentSource(flags),
		func(program uint32) { bindLocations(program, flags) },
	)
	if err != nil {
		return nil, fmt.Errorf("flat: compiling variant %v: %w", flags, err)
	}

	f := &Flat{id: program, flags: flags}
	f.transformationProjectionMatrixLoc = shaders.UniformLocation(program, "transformationProjectionMatrix")
	f.colorLoc = shaders.UniformLocation(program, "color")
	if flags.Has(TextureTransformation) {
		f.textureMatrixLoc = shaders.UniformLocation(program, "textureMatrix")
	}
	if flags.Has(AlphaMask) {
		f.alphaMaskLoc = shaders.UniformLocation(program, "alphaMask")
	}
	if flags.Has(ObjectID) {
		f.objectIDLoc = shaders.UniformLocation(program, "objectId")
	}

	gl.UseProgram(program)
	if flags.Has(Textured) {
		gl.Uniform1i(shaders.UniformLocation(program, "textureData"), TextureUnit)
	}

	f.SetTransformationProjectionMatrix(mgl32.Ident4()).
		SetColor(mgl32.Vec4{1, 1, 1, 1})
	if flags.Has(TextureTransformation) {
		f.SetTextureMatrix(mgl32.Ident3())
	}
	if flags.Has(AlphaMask) {
		f.SetAlphaMask(0.5)
	}
	if flags.Has(ObjectID) {
		f.SetObjectID(0)
	}
	return f, nil
}

func bindLocations(program uint32, flags Flags) {
	shaders.BindAttribute(program, shaders.PositionLocation, "position")
	if flags.Has(Textured) {
		shaders.BindAttribute(program, shaders.TextureCoordinatesLocation, "textureCoordinates")
	}
	if flags.Has(VertexColor) {
		shaders.BindAttribute(program, shaders.ColorLocation, "vertexColor")
	}
	if flags.Has(InstancedObjectID) {
		shaders.BindAttribute(program, shaders.ObjectIDLocation, "instanceObjectId")
	}
	if flags.Has(InstancedTransformation) {
		shaders.BindAttribute(program, shaders.TransformationMatrixLocation, "instancedTransformationMatrix")
	}
	if flags.Has(InstancedTextureOffset) {
		shaders.BindAttribute(program, shaders.TextureOffsetLocation, "instancedTextureOffset")
	}
}

// ID returns the raw program handle, 0 for a released shader.
func (f *Flat) ID() uint32 { return f.id }

// Flags returns the feature set the variant was compiled with.
func (f *Flat) Flags() Flags { return f.flags }

// Use makes the program current for drawing.
func (f *Flat) Use() { gl.UseProgram(f.id) }

// SetTransformationProjectionMatrix sets the combined modelview and
// projection transformation.
func (f *Flat) SetTransformationProjectionMatrix(matrix mgl32.Mat4) *Flat {
	gl.UseProgram(f.id)
	gl.UniformMatrix4fv(f.transformationProjectionMatrixLoc, 1, false, &matrix[0])
	return f
}

// SetTextureMatrix sets the texture coordinate transformation. Requires the
// TextureTransformation flag.
func (f *Flat) SetTextureMatrix(matrix mgl32.Mat3) *Flat {
	if !f.flags.Has(TextureTransformation) {
		shaders.Errorf("Flat.SetTextureMatrix(): the shader was not created with texture transformation enabled")
		return f
	}
	gl.UseProgram(f.id)
	gl.UniformMatrix3fv(f.textureMatrixLoc, 1, false, &matrix[0])
	return f
}

// SetColor sets the fill color. With Textured it multiplies the sampled
// texel.
func (f *Flat) SetColor(color mgl32.Vec4) *Flat {
	gl.UseProgram(f.id)
	gl.Uniform4f(f.colorLoc, color[0], color[1], color[2], color[3])
	return f
}

// SetAlphaMask sets the threshold below which fragments are discarded.
// Requires the AlphaMask flag.
func (f *Flat) SetAlphaMask(mask float32) *Flat {
	if !f.flags.Has(AlphaMask) {
		shaders.Errorf("Flat.SetAlphaMask(): the shader was not created with alpha mask enabled")
		return f
	}
	gl.UseProgram(f.id)
	gl.Uniform1f(f.alphaMaskLoc, mask)
	return f
}

// SetObjectID sets the value written to the object ID output. With
// InstancedObjectID the per-instance attribute is added on top. Requires the
// ObjectID flag.
func (f *Flat) SetObjectID(id uint32) *Flat {
	if !f.flags.Has(ObjectID) {
		shaders.Errorf("Flat.SetObjectID(): the shader was not created with object ID enabled")
		return f
	}
	gl.UseProgram(f.id)
	gl.Uniform1ui(f.objectIDLoc, id)
	return f
}

// BindTexture binds tex to the texture unit. Requires the Textured flag.
func (f *Flat) BindTexture(tex *texture.Texture2D) *Flat {
	if !f.flags.Has(Textured) {
		shaders.Errorf("Flat.BindTexture(): the shader was not created with texturing enabled")
		return f
	}
	tex.Bind(TextureUnit)
	return f
}

// Release deletes the GL program and leaves the shader empty. Safe to call
// more than once.
func (f *Flat) Release() {
	if f.id != 0 {
		gl.DeleteProgram(f.id)
		f.id = 0
	}
}

// noCopy makes `go vet` flag a Flat copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
