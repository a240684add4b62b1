package phong

import (
	"fmt"
	"strings"
)

// preamble emits the #define block that selects the compiled variant. The
// shader bodies below are written once and carved up by the preprocessor.
func preamble(flags Flags, lightCount int) string {
	var b strings.Builder
	b.WriteString("#version 410 core\n")
	fmt.Fprintf(&b, "#define LIGHT_COUNT %d\n", lightCount)
	if flags&(AmbientTexture|DiffuseTexture|SpecularTexture|NormalTexture) != 0 {
		b.WriteString("#define TEXTURED\n")
	}
	if flags.Has(AmbientTexture) {
		b.WriteString("#define AMBIENT_TEXTURE\n")
	}
	if flags.Has(DiffuseTexture) {
		b.WriteString("#define DIFFUSE_TEXTURE\n")
	}
	if flags.Has(SpecularTexture) {
		b.WriteString("#define SPECULAR_TEXTURE\n")
	}
	if flags.Has(NormalTexture) {
		b.WriteString("#define NORMAL_TEXTURE\n")
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

func vertexSource(flags Flags, lightCount int) string {
	return preamble(flags, lightCount) + vertexBody
}

func fragmentSource(flags Flags, lightCount int) string {
	return preamble(flags, lightCount) + fragmentBody
}

const vertexBody = `
uniform mat4 transformationMatrix;
uniform mat4 projectionMatrix;

#if LIGHT_COUNT
uniform mat3 normalMatrix;
uniform vec3 lightPositions[LIGHT_COUNT];
#endif

#ifdef TEXTURE_TRANSFORMATION
uniform mat3 textureMatrix;
#endif

in vec4 position;

#if LIGHT_COUNT
in vec3 normal;
#ifdef NORMAL_TEXTURE
in vec4 tangent;
#endif
#endif

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
#if LIGHT_COUNT
in mat3 instancedNormalMatrix;
#endif
#endif

#ifdef INSTANCED_TEXTURE_OFFSET
in vec2 instancedTextureOffset;
#endif

#if LIGHT_COUNT
out vec3 transformedNormal;
#ifdef NORMAL_TEXTURE
out vec3 transformedTangent;
#endif
out vec3 lightDirections[LIGHT_COUNT];
out vec3 cameraDirection;
#endif

void main() {
    #ifdef INSTANCED_TRANSFORMATION
    vec4 transformedPosition4 = transformationMatrix*instancedTransformationMatrix*position;
    #else
    vec4 transformedPosition4 = transformationMatrix*position;
    #endif
    vec3 transformedPosition = transformedPosition4.xyz/transformedPosition4.w;

    #if LIGHT_COUNT
    #ifdef INSTANCED_TRANSFORMATION
    mat3 finalNormalMatrix = normalMatrix*instancedNormalMatrix;
    #else
    mat3 finalNormalMatrix = normalMatrix;
    #endif
    transformedNormal = finalNormalMatrix*normal;
    #ifdef NORMAL_TEXTURE
    transformedTangent = finalNormalMatrix*tangent.xyz;
    #endif

    for(int i = 0; i < LIGHT_COUNT; ++i)
        lightDirections[i] = normalize(lightPositions[i] - transformedPosition);
    cameraDirection = -transformedPosition;
    #endif

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

    gl_Position = projectionMatrix*transformedPosition4;
}
`

const fragmentBody = `
uniform vec4 ambientColor;

#ifdef AMBIENT_TEXTURE
uniform sampler2D ambientTexture;
#endif

#if LIGHT_COUNT
uniform vec4 diffuseColor;
uniform vec4 specularColor;
uniform float shininess;
uniform vec4 lightColors[LIGHT_COUNT];

#ifdef DIFFUSE_TEXTURE
uniform sampler2D diffuseTexture;
#endif
#ifdef SPECULAR_TEXTURE
uniform sampler2D specularTexture;
#endif
#ifdef NORMAL_TEXTURE
uniform sampler2D normalTexture;
#endif
#endif

#ifdef ALPHA_MASK
uniform float alphaMask;
#endif

#ifdef OBJECT_ID
uniform uint objectId;
#endif

#ifdef TEXTURED
in vec2 interpolatedTextureCoordinates;
#endif

#ifdef VERTEX_COLOR
in vec4 interpolatedVertexColor;
#endif

#ifdef INSTANCED_OBJECT_ID
flat in uint interpolatedInstanceObjectId;
#endif

#if LIGHT_COUNT
in vec3 transformedNormal;
#ifdef NORMAL_TEXTURE
in vec3 transformedTangent;
#endif
in vec3 lightDirections[LIGHT_COUNT];
in vec3 cameraDirection;
#endif

layout(location = 0) out vec4 fragmentColor;
#ifdef OBJECT_ID
layout(location = 2) out uint fragmentObjectId;
#endif

void main() {
    #ifdef AMBIENT_TEXTURE
    fragmentColor = ambientColor*texture(ambientTexture, interpolatedTextureCoordinates);
    #else
    fragmentColor = ambientColor;
    #endif

    #if LIGHT_COUNT
    #ifdef DIFFUSE_TEXTURE
    vec4 finalDiffuseColor = diffuseColor*texture(diffuseTexture, interpolatedTextureCoordinates);
    #else
    vec4 finalDiffuseColor = diffuseColor;
    #endif
    #ifdef VERTEX_COLOR
    finalDiffuseColor *= interpolatedVertexColor;
    #endif
    #ifdef SPECULAR_TEXTURE
    vec4 finalSpecularColor = specularColor*texture(specularTexture, interpolatedTextureCoordinates);
    #else
    vec4 finalSpecularColor = specularColor;
    #endif

    vec3 normalizedTransformedNormal = normalize(transformedNormal);
    #ifdef NORMAL_TEXTURE
    vec3 normalizedTransformedTangent = normalize(transformedTangent);
    mat3 tbn = mat3(
        normalizedTransformedTangent,
        normalize(cross(normalizedTransformedNormal, normalizedTransformedTangent)),
        normalizedTransformedNormal
    );
    normalizedTransformedNormal = tbn*(texture(normalTexture, interpolatedTextureCoordinates).rgb*2.0 - vec3(1.0));
    #endif

    for(int i = 0; i < LIGHT_COUNT; ++i) {
        vec3 normalizedLightDirection = normalize(lightDirections[i]);

        lowp float intensity = max(0.0, dot(normalizedTransformedNormal, normalizedLightDirection));
        fragmentColor.rgb += finalDiffuseColor.rgb*lightColors[i].rgb*intensity;

        if(intensity > 0.001) {
            vec3 reflection = reflect(-normalizedLightDirection, normalizedTransformedNormal);
            float specularity = clamp(pow(max(0.0, dot(normalize(cameraDirection), reflection)), shininess), 0.0, 1.0);
            fragmentColor.rgb += finalSpecularColor.rgb*specularity;
            fragmentColor.a += finalSpecularColor.a*specularity;
        }
    }
    fragmentColor.a += finalDiffuseColor.a;
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
