package phong

import "strings"

// Flags select which optional code paths are compiled into a shader variant.
// They are fixed at construction and never change afterwards.
type Flags uint16

const (
	// AmbientTexture multiplies the ambient color with a texture.
	AmbientTexture Flags = 1 << 0
	// DiffuseTexture multiplies the diffuse color with a texture.
	DiffuseTexture Flags = 1 << 1
	// SpecularTexture multiplies the specular color with a texture.
	SpecularTexture Flags = 1 << 2
	// AlphaMask discards fragments whose combined alpha is below the value
	// set with SetAlphaMask.
	AlphaMask Flags = 1 << 3
	// NormalTexture perturbs normals according to a tangent-space texture.
	// Requires the tangent attribute.
	NormalTexture Flags = 1 << 4
	// VertexColor multiplies the diffuse color with a per-vertex color.
	VertexColor Flags = 1 << 5
	// TextureTransformation enables the texture coordinate matrix.
	TextureTransformation Flags = 1 << 6
	// ObjectID writes the value set with SetObjectID to the object ID
	// framebuffer output.
	ObjectID Flags = 1 << 7
	// InstancedObjectID adds a per-instance ID from the object ID attribute
	// to the uniform ID. Implies ObjectID.
	InstancedObjectID Flags = 1<<8 | ObjectID
	// InstancedTransformation applies per-instance transformation and normal
	// matrices from the instance attributes before the uniform matrices.
	InstancedTransformation Flags = 1 << 9
	// InstancedTextureOffset adds a per-instance texture coordinate offset
	// before the texture matrix. Implies TextureTransformation.
	InstancedTextureOffset Flags = 1<<10 | TextureTransformation
)

// Has reports whether every bit of sub is set.
func (f Flags) Has(sub Flags) bool { return f&sub == sub }

var flagNames = []struct {
	flag Flags
	name string
}{
	// Composites first so implied bits are consumed together.
	{InstancedObjectID, "InstancedObjectID"},
	{InstancedTextureOffset, "InstancedTextureOffset"},
	{AmbientTexture, "AmbientTexture"},
	{DiffuseTexture, "DiffuseTexture"},
	{SpecularTexture, "SpecularTexture"},
	{AlphaMask, "AlphaMask"},
	{NormalTexture, "NormalTexture"},
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
