package flat

import (
	"bytes"
	"testing"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"github.com/shadeforge/glkit/gltest"
	"github.com/shadeforge/glkit/shaders"
)

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
}

func TestFlagsString(t *testing.T) {
	assert.Equal(t, "Flags(0)", Flags(0).String())
	assert.Equal(t, "Textured|AlphaMask", (Textured | AlphaMask).String())
	assert.Equal(t, "InstancedObjectID", InstancedObjectID.String())
}

func TestSetAlphaMaskNotEnabled(t *testing.T) {
	buf := captureDiagnostics(t)

	f := &Flat{flags: Textured}
	out := f.SetAlphaMask(0.25)

	assert.Same(t, f, out)
	assert.Equal(t,
		"shaders: Flat.SetAlphaMask(): the shader was not created with alpha mask enabled\n",
		buf.String())
}

func TestSetObjectIDNotEnabled(t *testing.T) {
	buf := captureDiagnostics(t)

	f := &Flat{}
	f.SetObjectID(7)

	assert.Equal(t,
		"shaders: Flat.SetObjectID(): the shader was not created with object ID enabled\n",
		buf.String())
}

func TestSetTextureMatrixNotEnabled(t *testing.T) {
	buf := captureDiagnostics(t)

	f := &Flat{flags: Textured}
	f.SetTextureMatrix(mgl32.Ident3())

	assert.Equal(t,
		"shaders: Flat.SetTextureMatrix(): the shader was not created with texture transformation enabled\n",
		buf.String())
}

func TestBindTextureNotEnabled(t *testing.T) {
	buf := captureDiagnostics(t)

	f := &Flat{}
	f.BindTexture(nil)

	assert.Equal(t,
		"shaders: Flat.BindTexture(): the shader was not created with texturing enabled\n",
		buf.String())
}

func TestConstruct(t *testing.T) {
	cases := []struct {
		name  string
		flags Flags
	}{
		{"colored", 0},
		{"textured", Textured},
		{"alpha mask", Textured | AlphaMask},
		{"vertex color", VertexColor},
		{"texture transformation", Textured | TextureTransformation},
		{"object ID", ObjectID},
		{"instanced object ID", InstancedObjectID},
		{"instancing", InstancedTransformation | InstancedTextureOffset | Textured},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gltest.NewContext(t)

			f, err := New(tc.flags)
			if !assert.NoError(t, err) {
				return
			}
			defer f.Release()

			assert.NotZero(t, f.ID())
			assert.Equal(t, tc.flags, f.Flags())
			assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
		})
	}
}

func TestSetUniforms(t *testing.T) {
	gltest.NewContext(t)

	f, err := New(Textured | AlphaMask | TextureTransformation | ObjectID)
	if !assert.NoError(t, err) {
		return
	}
	defer f.Release()

	buf := captureDiagnostics(t)

	f.SetTransformationProjectionMatrix(mgl32.Translate3D(1, 2, 3)).
		SetTextureMatrix(mgl32.Scale2D(2, 2)).
		SetColor(mgl32.Vec4{0.5, 0.25, 0.125, 1}).
		SetAlphaMask(0.75).
		SetObjectID(12)

	assert.Empty(t, buf.String())
	assert.Equal(t, uint32(gl.NO_ERROR), gl.GetError())
}

func TestRelease(t *testing.T) {
	gltest.NewContext(t)

	f, err := New(0)
	if !assert.NoError(t, err) {
		return
	}
	assert.NotZero(t, f.ID())

	f.Release()
	assert.Zero(t, f.ID())

	f.Release()
	assert.Zero(t, f.ID())
}
