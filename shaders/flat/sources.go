package flat

import "strings"

func preamble(flags Flags) string {
	var b strings.Builder
	b.WriteString("#version 410 core\n")
	if flags.Has(Textured) {
		b.WriteString("#define TEXTURED\n")
	}
	if flags.Has(AlphaMask) {
		b.WriteString("#define ALPHA_MASK\n")
	}
	if flags.Has(VertexColor) {
		b.WriteString("#define VERTEX_COLOR\n")
	}
	if flags.Has(TextureTransformation) {
		b.WriteString("#define TEXTURE_TRANSFORMATION\n")
	}
	if flags.Has(ObjectID) {
		b.WriteString("#define OBJECT_ID\n")
	}
	if flags.Has(InstancedObjectID) {
		b.WriteString("#define INSTANCED_OBJECT_ID\n")
	}
	if flags.Has(InstancedTransformation) {
		b.WriteString("#define INSTANCED_TRANSFORMATION\n")
	}
	if flags.Has(InstancedTextureOffset) {
		b.WriteString("#define INSTANCED_TEXTURE_OFFSET\n")
	}
	return b.String()
}

func vertexSource(flags Flags) string {
	return preamble(flags) + vertexBody
}

func fragmentSource(flags Flags) string {
	return preamble(flags) + fragmentBody
}

const vertexBody = `
uniform mat4 transformationProjectionMatrix;

#ifdef TEXTURE_TRANSFORMATION
uniform mat3 textureMatrix;
#endif

in vec4 position;

#ifdef TEXTURED
in vec2 textureCoordinates;
out vec2 interpolatedTextureCoordinates;
#endif

#ifdef VERTEX_COLOR
in vec4 vertexColor;
out vec4 interpolatedVertexColor;
#endif

#ifdef INSTANCED_OBJECT_ID
in uint instanceObjectId;
flat out uint interpolatedInstanceObjectId;
#endif

#ifdef INSTANCED_TRANSFORMATION
in mat4 instancedTransformationMatrix;
#endif

#ifdef INSTANCED_TEXTURE_OFFSET
in vec2 instancedTextureOffset;
#endif

void main() {
    #ifdef TEXTURED
    #ifdef TEXTURE_TRANSFORMATION
    #ifdef INSTANCED_TEXTURE_OFFSET
    interpolatedTextureCoordinates = (textureMatrix*vec3(instancedTextureOffset + textureCoordinates, 1.0)).xy;
    #else
    interpolatedTextureCoordinates = (textureMatrix*vec3(textureCoordinates, 1.0)).xy;
    #endif
    #else
    interpolatedTextureCoordinates = textureCoordinates;
    #endif
    #endif

    #ifdef VERTEX_COLOR
    interpolatedVertexColor = vertexColor;
    #endif

    #ifdef INSTANCED_OBJECT_ID
    interpolatedInstanceObjectId = instanceObjectId;
    #endif

    #ifdef INSTANCED_TRANSFORMATION
    gl_Position = transformationProjectionMatrix*instancedTransformationMatrix*position;
    #else
    gl_Position = transformationProjectionMatrix*position;
    #endif
}
`

const fragmentBody = `
uniform vec4 color;

#ifdef TEXTURED
uniform sampler2D textureData;
in vec2 interpolatedTextureCoordinates;
#endif

#ifdef ALPHA_MASK
uniform float alphaMask;
#endif

#ifdef OBJECT_ID
uniform uint objectId;
#endif

#ifdef VERTEX_COLOR
in vec4 interpolatedVertexColor;
#endif

#ifdef INSTANCED_OBJECT_ID
flat in uint interpolatedInstanceObjectId;
#endif

layout(location = 0) out vec4 fragmentColor;
#ifdef OBJECT_ID
layout(location = 2) out uint fragmentObjectId;
#endif

void main() {
    fragmentColor = color;

    #ifdef TEXTURED
    fragmentColor *= texture(textureData, interpolatedTextureCoordinates);
    #endif

    #ifdef VERTEX_COLOR
    fragmentColor *= interpolatedVertexColor;
    #endif

    #ifdef ALPHA_MASK
    if(fragmentColor.a < alphaMask) discard;
    #endif

    #ifdef OBJECT_ID
    fragmentObjectId = objectId
        #ifdef INSTANCED_OBJECT_ID
        + interpolatedInstanceObjectId
        #endif
        ;
    #endif
}
`
