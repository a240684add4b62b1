// Package phong implements a per-pixel Phong lighting shader with a
// configurable set of features and light count.
package phong

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/shadeforge/glkit/shaders"
	"github.com/shadeforge/glkit/texture"
)

// Texture units the bind methods use. Callers drawing with additional
// textures should start above these.
const (
	AmbientTextureUnit  = 0
	DiffuseTextureUnit  = 1
	SpecularTextureUnit = 2
	NormalTextureUnit   = 3
)

// Phong owns one linked program variant. The feature set and light count are
// fixed at construction. Setters return the receiver so calls chain; a setter
// whose feature is missing from the variant writes a diagnostic to
// shaders.ErrorOutput and leaves the shader untouched.
type Phong struct {
	noCopy noCopy

	id         uint32
	flags      Flags
	lightCount int

	transformationMatrixLoc int32
	projectionMatrixLoc     int32
	normalMatrixLoc         int32
	textureMatrixLoc        int32
	ambientColorLoc         int32
	diffuseColorLoc         int32
	specularColorLoc        int32
	shininessLoc            int32
	alphaMaskLoc            int32
	objectIDLoc             int32
	lightPositionLocs       []int32
	lightColorLocs          []int32
}

// New compiles and links the variant selected by flags with lightCount
// lights. A variant with zero lights evaluates the ambient term only.
// Uniforms start at their defaults: identity matrices, white diffuse,
// RGBA(1, 1, 1, 0) specular, shininess 80, lights at the origin with white
// color, and ambient either opaque white (with AmbientTexture) or transparent
// black.
func New(flags Flags, lightCount int) (*Phong, error) {
	if lightCount < 0 {
		return nil, fmt.Errorf("phong: negative light count %d", lightCount)
	}

	program, err := shaders.CompileProgram(
		vertexSource(flags, lightCount),
		fragmentSource(flags, lightCount),
		func(program uint32) { bindLocations(program, flags, lightCount) },
	)
	if err != nil {
		return nil, fmt.Errorf("phong: compiling variant %v: %w", flags, err)
	}

	p := &Phong{id: program, flags: flags, lightCount: lightCount}
	p.resolveUniforms()
	p.bindSamplerUnits()
	p.setDefaults()
	return p, nil
}

func bindLocations(program uint32, flags Flags, lightCount int) {
	shaders.BindAttribute(program, shaders.PositionLocation, "position")
	if lightCount > 0 {
		shaders.BindAttribute(program, shaders.NormalLocation, "normal")
		if flags.Has(NormalTexture) {
			shaders.BindAttribute(program, shaders.TangentLocation, "tangent")
		}
	}
	if flags&(AmbientTexture|DiffuseTexture|SpecularTexture|NormalTexture) != 0 {
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
		if lightCount > 0 {
			shaders.BindAttribute(program, shaders.NormalMatrixLocation, "instancedNormalMatrix")
		}
	}
	if flags.Has(InstancedTextureOffset) {
		shaders.BindAttribute(program, shaders.TextureOffsetLocation, "instancedTextureOffset")
	}
}

func (p *Phong) resolveUniforms() {
	p.transformationMatrixLoc = shaders.UniformLocation(p.id, "transformationMatrix")
	p.projectionMatrixLoc = shaders.UniformLocation(p.id, "projectionMatrix")
	p.ambientColorLoc = shaders.UniformLocation(p.id, "ambientColor")
	if p.flags.Has(TextureTransformation) {
		p.textureMatrixLoc = shaders.UniformLocation(p.id, "textureMatrix")
	}
	if p.flags.Has(AlphaMask) {
		p.alphaMaskLoc = shaders.UniformLocation(p.id, "alphaMask")
	}
	if p.flags.Has(ObjectID) {
		p.objectIDLoc = shaders.UniformLocation(p.id, "objectId")
	}
	if p.lightCount > 0 {
		p.normalMatrixLoc = shaders.UniformLocation(p.id, "normalMatrix")
		p.diffuseColorLoc = shaders.UniformLocation(p.id, "diffuseColor")
		p.specularColorLoc = shaders.UniformLocation(p.id, "specularColor")
		p.shininessLoc = shaders.UniformLocation(p.id, "shininess")
		p.lightPositionLocs = make([]int32, p.lightCount)
		p.lightColorLocs = make([]int32, p.lightCount)
		for i := 0; i < p.lightCount; i++ {
			p.lightPositionLocs[i] = shaders.UniformLocation(p.id, fmt.Sprintf("lightPositions[%d]", i))
			p.lightColorLocs[i] = shaders.UniformLocation(p.id, fmt.Sprintf("lightColors[%d]", i))
		}
	}
}

// bindSamplerUnits points each sampler uniform at its fixed texture unit.
// Done once, at construction.
func (p *Phong) bindSamplerUnits() {
	gl.UseProgram(p.id)
	if p.flags.Has(AmbientTexture) {
		gl.Uniform1i(shaders.UniformLocation(p.id, "ambientTexture"), AmbientTextureUnit)
	}
	if p.lightCount > 0 {
		if p.flags.Has(DiffuseTexture) {
			gl.Uniform1i(shaders.UniformLocation(p.id, "diffuseTexture"), DiffuseTextureUnit)
		}
		if p.flags.Has(SpecularTexture) {
			gl.Uniform1i(shaders.UniformLocation(p.id, "specularTexture"), SpecularTextureUnit)
		}
		if p.flags.Has(NormalTexture) {
			gl.Uniform1i(shaders.UniformLocation(p.id, "normalTexture"), NormalTextureUnit)
		}
	}
}

func (p *Phong) setDefaults() {
	ambient := mgl32.Vec4{0, 0, 0, 0}
	if p.flags.Has(AmbientTexture) {
		ambient = mgl32.Vec4{1, 1, 1, 1}
	}
	p.SetTransformationMatrix(mgl32.Ident4()).
		SetProjectionMatrix(mgl32.Ident4()).
		SetAmbientColor(ambient)

	if p.flags.Has(TextureTransformation) {
		p.SetTextureMatrix(mgl32.Ident3())
	}
	if p.flags.Has(AlphaMask) {
		p.SetAlphaMask(0.5)
	}
	if p.flags.Has(ObjectID) {
		p.SetObjectID(0)
	}

	if p.lightCount > 0 {
		p.SetNormalMatrix(mgl32.Ident3()).
			SetDiffuseColor(mgl32.Vec4{1, 1, 1, 1}).
			SetSpecularColor(mgl32.Vec4{1, 1, 1, 0}).
			SetShininess(80)

		positions := make([]mgl32.Vec3, p.lightCount)
		colors := make([]mgl32.Vec4, p.lightCount)
		for i := range colors {
			colors[i] = mgl32.Vec4{1, 1, 1, 1}
		}
		p.SetLightPositions(positions)
		p.SetLightColors(colors)
	}
}

// ID returns the raw program handle, 0 for a released shader.
func (p *Phong) ID() uint32 { return p.id }

// Flags returns the feature set the variant was compiled with.
func (p *Phong) Flags() Flags { return p.flags }

// LightCount returns the number of lights the variant was compiled with.
func (p *Phong) LightCount() int { return p.lightCount }

// Use makes the program current for drawing.
func (p *Phong) Use() { gl.UseProgram(p.id) }

// SetTransformationMatrix sets the modelview transformation.
func (p *Phong) SetTransformationMatrix(matrix mgl32.Mat4) *Phong {
	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(p.transformationMatrixLoc, 1, false, &matrix[0])
	return p
}

// SetProjectionMatrix sets the projection.
func (p *Phong) SetProjectionMatrix(matrix mgl32.Mat4) *Phong {
	gl.UseProgram(p.id)
	gl.UniformMatrix4fv(p.projectionMatrixLoc, 1, false, &matrix[0])
	return p
}

// SetNormalMatrix sets the matrix applied to vertex normals, usually the
// inverse transpose of the transformation's rotation-scaling part. Has no
// effect on a variant with zero lights.
func (p *Phong) SetNormalMatrix(matrix mgl32.Mat3) *Phong {
	if p.lightCount == 0 {
		return p
	}
	gl.UseProgram(p.id)
	gl.UniformMatrix3fv(p.normalMatrixLoc, 1, false, &matrix[0])
	return p
}

// SetTextureMatrix sets the texture coordinate transformation. Requires the
// TextureTransformation flag.
func (p *Phong) SetTextureMatrix(matrix mgl32.Mat3) *Phong {
	if !p.flags.Has(TextureTransformation) {
		shaders.Errorf("Phong.SetTextureMatrix(): the shader was not created with texture transformation enabled")
		return p
	}
	gl.UseProgram(p.id)
	gl.UniformMatrix3fv(p.textureMatrixLoc, 1, false, &matrix[0])
	return p
}

// SetAmbientColor sets the color added regardless of lighting. With
// AmbientTexture it multiplies the sampled texel.
func (p *Phong) SetAmbientColor(color mgl32.Vec4) *Phong {
	gl.UseProgram(p.id)
	gl.Uniform4f(p.ambientColorLoc, color[0], color[1], color[2], color[3])
	return p
}

// SetDiffuseColor sets the color of the diffuse term. Has no effect on a
// variant with zero lights.
func (p *Phong) SetDiffuseColor(color mgl32.Vec4) *Phong {
	if p.lightCount == 0 {
		return p
	}
	gl.UseProgram(p.id)
	gl.Uniform4f(p.diffuseColorLoc, color[0], color[1], color[2], color[3])
	return p
}

// SetSpecularColor sets the color of the specular highlight. The default has
// zero alpha so highlights do not affect coverage. Has no effect on a variant
// with zero lights.
func (p *Phong) SetSpecularColor(color mgl32.Vec4) *Phong {
	if p.lightCount == 0 {
		return p
	}
	gl.UseProgram(p.id)
	gl.Uniform4f(p.specularColorLoc, color[0], color[1], color[2], color[3])
	return p
}

// SetShininess sets the specular exponent. Larger values make a sharper
// highlight. Has no effect on a variant with zero lights.
func (p *Phong) SetShininess(shininess float32) *Phong {
	if p.lightCount == 0 {
		return p
	}
	gl.UseProgram(p.id)
	gl.Uniform1f(p.shininessLoc, shininess)
	return p
}

// SetAlphaMask sets the threshold below which fragments are discarded.
// Requires the AlphaMask flag.
func (p *Phong) SetAlphaMask(mask float32) *Phong {
	if !p.flags.Has(AlphaMask) {
		shaders.Errorf("Phong.SetAlphaMask(): the shader was not created with alpha mask enabled")
		return p
	}
	gl.UseProgram(p.id)
	gl.Uniform1f(p.alphaMaskLoc, mask)
	return p
}

// SetObjectID sets the value written to the object ID output. With
// InstancedObjectID the per-instance attribute is added on top. Requires the
// ObjectID flag.
func (p *Phong) SetObjectID(id uint32) *Phong {
	if !p.flags.Has(ObjectID) {
		shaders.Errorf("Phong.SetObjectID(): the shader was not created with object ID enabled")
		return p
	}
	gl.UseProgram(p.id)
	gl.Uniform1ui(p.objectIDLoc, id)
	return p
}

// SetLightPositions sets all light positions in camera space. The slice
// length must match the light count the variant was compiled with.
func (p *Phong) SetLightPositions(positions []mgl32.Vec3) *Phong {
	if len(positions) != p.lightCount {
		shaders.Errorf("Phong.SetLightPositions(): expected %d items but got %d", p.lightCount, len(positions))
		return p
	}
	gl.UseProgram(p.id)
	for i, pos := range positions {
		gl.Uniform3f(p.lightPositionLocs[i], pos[0], pos[1], pos[2])
	}
	return p
}

// SetLightPosition sets the position of a single light in camera space.
func (p *Phong) SetLightPosition(index int, position mgl32.Vec3) *Phong {
	if index < 0 || index >= p.lightCount {
		shaders.Errorf("Phong.SetLightPosition(): light %d out of range for %d lights", index, p.lightCount)
		return p
	}
	gl.UseProgram(p.id)
	gl.Uniform3f(p.lightPositionLocs[index], position[0], position[1], position[2])
	return p
}

// SetLightColors sets all light colors. The slice length must match the
// light count the variant was compiled with.
func (p *Phong) SetLightColors(colors []mgl32.Vec4) *Phong {
	if len(colors) != p.lightCount {
		shaders.Errorf("Phong.SetLightColors(): expected %d items but got %d", p.lightCount, len(colors))
		return p
	}
	gl.UseProgram(p.id)
	for i, c := range colors {
		gl.Uniform4f(p.lightColorLocs[i], c[0], c[1], c[2], c[3])
	}
	return p
}

// SetLightColor sets the color of a single light.
func (p *Phong) SetLightColor(index int, color mgl32.Vec4) *Phong {
	if index < 0 || index >= p.lightCount {
		shaders.Errorf("Phong.SetLightColor(): light %d out of range for %d lights", index, p.lightCount)
		return p
	}
	gl.UseProgram(p.id)
	gl.Uniform4f(p.lightColorLocs[index], color[0], color[1], color[2], color[3])
	return p
}

// BindAmbientTexture binds tex to the ambient texture unit. Requires the
// AmbientTexture flag.
func (p *Phong) BindAmbientTexture(tex *texture.Texture2D) *Phong {
	if !p.flags.Has(AmbientTexture) {
		shaders.Errorf("Phong.BindAmbientTexture(): the shader was not created with ambient texture enabled")
		return p
	}
	tex.Bind(AmbientTextureUnit)
	return p
}

// BindDiffuseTexture binds tex to the diffuse texture unit. Requires the
// DiffuseTexture flag. On a variant with zero lights the texture is unused
// and the bind is skipped.
func (p *Phong) BindDiffuseTexture(tex *texture.Texture2D) *Phong {
	if !p.flags.Has(DiffuseTexture) {
		shaders.Errorf("Phong.BindDiffuseTexture(): the shader was not created with diffuse texture enabled")
		return p
	}
	if p.lightCount > 0 {
		tex.Bind(DiffuseTextureUnit)
	}
	return p
}

// BindSpecularTexture binds tex to the specular texture unit. Requires the
// SpecularTexture flag. On a variant with zero lights the texture is unused
// and the bind is skipped.
func (p *Phong) BindSpecularTexture(tex *texture.Texture2D) *Phong {
	if !p.flags.Has(SpecularTexture) {
		shaders.Errorf("Phong.BindSpecularTexture(): the shader was not created with specular texture enabled")
		return p
	}
	if p.lightCount > 0 {
		tex.Bind(SpecularTextureUnit)
	}
	return p
}

// BindNormalTexture binds tex to the normal texture unit. Requires the
// NormalTexture flag. On a variant with zero lights the texture is unused
// and the bind is skipped.
func (p *Phong) BindNormalTexture(tex *texture.Texture2D) *Phong {
	if !p.flags.Has(NormalTexture) {
		shaders.Errorf("Phong.BindNormalTexture(): the shader was not created with normal texture enabled")
		return p
	}
	if p.lightCount > 0 {
		tex.Bind(NormalTextureUnit)
	}
	return p
}

// BindTextures binds ambient, diffuse, specular and normal textures at once.
// Any of them may be nil to leave the corresponding unit alone. More
// efficient than binding one by one. Requires at least one texture flag.
func (p *Phong) BindTextures(ambient, diffuse, specular, normal *texture.Texture2D) *Phong {
	if p.flags&(AmbientTexture|DiffuseTexture|SpecularTexture|NormalTexture) == 0 {
		shaders.Errorf("Phong.BindTextures(): the shader was not created with any textures enabled")
		return p
	}
	if ambient != nil {
		p.BindAmbientTexture(ambient)
	}
	if diffuse != nil {
		p.BindDiffuseTexture(diffuse)
	}
	if specular != nil {
		p.BindSpecularTexture(specular)
	}
	if normal != nil {
		p.BindNormalTexture(normal)
	}
	return p
}

// Release deletes the GL program and leaves the shader empty. Safe to call
// more than once.
func (p *Phong) Release() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
	p.lightPositionLocs = nil
	p.lightColorLocs = nil
}

// noCopy makes `go vet` flag a Phong copied by value.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}
