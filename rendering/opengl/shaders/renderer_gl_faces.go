package shaders

// Face expansion program for the meshed path: each packed face record in the
// storage buffer becomes one quad (two triangles), expanded entirely in the
// vertex stage from gl_VertexID. The corner table and winding match
// core.FaceCorners / core.FaceTriangles, and the bit unpack matches
// core.EncodeFace exactly.

const faceVertexShader = `
#version 430 core

// One packed face per element: x = position+orientation bytes, y = material.
layout(std430, binding = 0) readonly buffer FaceData {
    uvec2 faces[];
};

uniform mat4 viewProj;
uniform ivec3 chunkOrigin;   // chunk coordinate * chunk size, in voxels
uniform float voxelSize;
uniform vec4 materialColors[16];

// Orientation -> 4 unit-cube corners, one entry per face direction.
// Winding is consistent for front-face culling; do not reorder.
const vec3 faceCorners[24] = vec3[](
    // up
    vec3(0, 1, 0), vec3(1, 1, 0), vec3(0, 1, 1), vec3(1, 1, 1),
    // down
    vec3(0, 0, 1), vec3(1, 0, 1), vec3(0, 0, 0), vec3(1, 0, 0),
    // north
    vec3(0, 0, 0), vec3(1, 0, 0), vec3(0, 1, 0), vec3(1, 1, 0),
    // south
    vec3(0, 1, 1), vec3(1, 1, 1), vec3(0, 0, 1), vec3(1, 0, 1),
    // east
    vec3(1, 1, 1), vec3(1, 1, 0), vec3(1, 0, 1), vec3(1, 0, 0),
    // west
    vec3(0, 1, 0), vec3(0, 1, 1), vec3(0, 0, 0), vec3(0, 0, 1)
);

const int triangleCorners[6] = int[](2, 1, 0, 2, 3, 1);

// Flat shade factor per orientation so faces read as distinct surfaces.
const float faceShade[6] = float[](1.0, 0.6, 0.8, 0.8, 0.7, 0.7);

out vec4 vColor;

void main() {
    int face = gl_VertexID / 6;
    int corner = triangleCorners[gl_VertexID % 6];

    uint bits = faces[face].x;
    uint material = faces[face].y;

    // Inverse of the CPU-side pack: one byte per field.
    uvec3 voxelPos = uvec3(bits & 0xFFu, (bits >> 8) & 0xFFu, (bits >> 16) & 0xFFu);
    uint dir = (bits >> 24) & 0xFFu;

    vec3 vertPos = faceCorners[dir * 4u + uint(corner)] + vec3(voxelPos) + vec3(chunkOrigin);
    vertPos *= voxelSize;

    vec4 color = materialColors[material];
    vColor = vec4(color.rgb * faceShade[dir], color.a);

    gl_Position = viewProj * vec4(vertPos, 1.0);
}
`

const faceFragmentShader = `
#version 430 core

in vec4 vColor;
out vec4 outColor;

void main() {
    outColor = vColor;
}
`

// CompileFaceShaders builds the face expansion program.
func CompileFaceShaders() (uint32, error) {
	return buildProgram(faceVertexShader, faceFragmentShader)
}
