package phong

import (
	"bytes"
	"testing"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/shadeforge/glkit/gltest"
	"github.com/shadeforge/glkit/shaders"
)

// captureDiagnostics redirects the shared diagnostic sink for one test.
func captureDiagnostics(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := shaders.ErrorOutput
	shaders.ErrorOutput = &buf
	t.Cleanup(func() { shaders.ErrorOutput = prev })
	return &buf
}

func TestFlagsImply(t *testing.T) {
	assert.True(t, InstancedObjectID.Has(ObjectID))
	assert.True(t, InstancedTextureOffset.Has(TextureTransformation))
	assert.False(t, ObjectID.Has(InstancedObjectID))
	assert.False(t, TextureTransformation.Has(InstancedTextureOffset))
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "Flags(0)", Flags(0).String())
	assert.Equal(t, "AmbientTexture", AmbientTexture.String())
	assert.Equal(t, "DiffuseTexture|AlphaMask", (DiffuseTexture | AlphaMask).String())
	// The composite consumes its implied bit.
	assert.Equal(t, "InstancedObjectID", InstancedObjectID.String())
	assert.Equal(t, "InstancedTextureOffset|VertexColor", (InstancedTextureOffset | VertexColor).String())
}

func TestSetAlphaMaskNotEnabled(t *testing.T) {
	buf := captureDiagnostics(t)

	p := &Phong{flags: DiffuseTexture, lightCount: 1}
	out := p.SetAlphaMask(0.75)

	assert.Same(t, p, out)
	assert.Equal(t,
		"shaders: Phong.SetAlphaMask(): the shader was not created with alpha mask enabled\n",
		buf.String())
}

func TestSetObjectIDNotEnabled(t *testing.T) {
	buf := captureDiagnostics(t)

	p := &Phong{lightCount: 1}
	p.SetObjectID(33)

	assert.Equal(t,
		"shaders: Phong.SetObjectID(): the shader was not created with object ID enabled\n",
		buf.String())
}

func TestSetTextureMatrixNotEnabled(t *testing.T) {
	buf := captureDiagnostics(t)

	p := &Phong{flags: AmbientTexture, lightCount: 1}
	p.SetTextureMatrix(mgl32.Ident3())

	assert.Equal(t,
		"shaders: Phong.SetTextureMatrix(): the shader was not created with texture transformation enabled\n",
		buf.String())
}

func TestBindTexturesNotEnabled(t *testing.T) {
	buf := captureDiagnostics(t)

	p := &Phong{lightCount: 1}
	p.BindAmbientTexture(nil).
		BindDiffuseTexture(nil).
		BindSpecularTexture(nil).
		BindNormalTexture(nil).
		BindTextures(nil, nil, nil, nil)

	assert.Equal(t,
		"shaders: Phong.BindAmbientTexture(): the shader was not created with ambient texture enabled\n"+
			"shaders: Phong.BindDiffuseTexture(): the shader was not created with diffuse texture enabled\n"+
			"shaders: Phong.BindSpecularTexture(): the shader was not created with specular texture enabled\n"+
			"shaders: Phong.BindNormalTexture(): the shader was not created with normal texture enabled\n"+
			"shaders: Phong.BindTextures(): the shader was not created with any textures enabled\n",
		buf.String())
}

func TestLightCountMismatch(t *testing.T) {
	buf := captureDiagnostics(t)

	p := &Phong{lightCount: 2}
	p.SetLightPositions([]mgl32.Vec3{{1, 2, 3}})
	p.SetLightColors(make([]mgl32.Vec4, 3))
	p.SetLightPosition(2, mgl32.Vec3{})
	p.SetLightColor(-1, mgl32.Vec4{})

	assert.Equal(t,
		"shaders: Phong.SetLightPositions(): expected 2 items but got 1\n"+
			"shaders: Phong.SetLightColors(): expected 2 items but got 3\n"+
			"shaders: Phong.SetLightPosition(): light 2 out of range for 2 lights\n"+
			"shaders: Phong.SetLightColor(): light -1 out of range for 2 lights\n",
		buf.String())
}

// Setters for lighting uniforms are silent no-ops when the variant was
// compiled without lights.
func TestZeroLightSettersNoop(t *testing.T) {
	buf := captureDiagnostics(t)

	p := &Phong{lightCount: 0}
	out := p.SetDiffuseColor(mgl32.Vec4{1, 0, 0, 1}).
		SetSpecularColor(mgl32.Vec4{0, 1, 0, 1}).
		SetShininess(120).
		SetNormalMatrix(mgl32.Ident3())

	assert.Same(t, p, out)
	assert.Empty(t, buf.String())
}

func TestConstruct(t *testing.T) {
	cases := []struct {
		name       string
		flags      Flags
		lightCount int
	}{
		{"colored", 0, 1},
		{"ambient texture", AmbientTexture, 1},
		{"all textures", AmbientTexture | DiffuseTexture | SpecularTexture, 2},
		{"normal texture", DiffuseTexture | NormalTexture, 1},
		{"alpha mask", AlphaMask, 1},
		{"vertex color", VertexColor, 1},
		{"texture transformation", DiffuseTexture | TextureTransformation, 1},
		{"object ID", ObjectID, 1},
		{"instanced object ID", InstancedObjectID, 1},
		{"instancing", InstancedTransformation | InstancedTextureOffset | DiffuseTexture, 2},
		{"zero lights", AmbientTexture, 0},
		{"five lights", DiffuseTexture | SpecularTexture, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gltest.NewContext(t)

			p, err := New(tc.flags, tc.lightCount)
			if !assert.NoError(t, err) {
				return
			}
			defer p.Release()

			assert.NotZero(t, p.ID())
			assert.Equal(t, tc.flags, p.Flags())
			assert.Equal(t, tc.lightCount, p.LightCount())
			assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
		})
	}
}

func TestNegativeLightCount(t *testing.T) {
	_, err := New(0, -1)
	assert.Error(t, err)
}

func TestSetUniforms(t *testing.T) {
	gltest.NewContext(t)

	p, err := New(AmbientTexture|DiffuseTexture|AlphaMask|TextureTransformation|ObjectID, 2)
	if !assert.NoError(t, err) {
		return
	}
	defer p.Release()

	buf := captureDiagnostics(t)

	p.SetTransformationMatrix(mgl32.Translate3D(0, 0, -5)).
		SetProjectionMatrix(mgl32.Perspective(mgl32.DegToRad(45), 1, 0.1, 100)).
		SetNormalMatrix(mgl32.Ident3()).
		SetTextureMatrix(mgl32.Scale2D(0.5, 0.5)).
		SetAmbientColor(mgl32.Vec4{0.1, 0.1, 0.1, 1}).
		SetDiffuseColor(mgl32.Vec4{1, 0.5, 0.25, 1}).
		SetSpecularColor(mgl32.Vec4{1, 1, 1, 0}).
		SetShininess(120).
		SetAlphaMask(0.25).
		SetObjectID(42).
		SetLightPositions([]mgl32.Vec3{{3, 3, 3}, {-3, 3, 3}}).
		SetLightColors([]mgl32.Vec4{{1, 1, 1, 1}, {1, 0.5, 0.5, 1}}).
		SetLightPosition(1, mgl32.Vec3{0, 10, 0}).
		SetLightColor(0, mgl32.Vec4{0.9, 0.9, 0.9, 1})

	assert.Empty(t, buf.String())
	assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
}

func TestRelease(t *testing.T) {
	gltest.NewContext(t)

	p, err := New(0, 1)
	if !assert.NoError(t, err) {
		return
	}
	assert.NotZero(t, p.ID())

	p.Release()
	assert.Zero(t, p.ID())

	// Releasing an already-empty shader is a no-op.
	p.Release()
	assert.Zero(t, p.ID())
}
