package shaders

// Direct path on the device: a fullscreen quad whose fragment shader steps a
// 3-D DDA through the chunk's voxel buffer, mirroring core.March. The flat
// index derivation must stay in lockstep with core.Chunk.Index.

const rayMarchVertexShader = `
#version 430 core

const vec2 positions[4] = vec2[](
    vec2(-1.0, -1.0),
    vec2( 1.0, -1.0),
    vec2(-1.0,  1.0),
    vec2( 1.0,  1.0)
);

out vec2 fragCoord;

void main() {
    vec2 pos = positions[gl_VertexID];
    fragCoord = pos * 0.5 + 0.5;
    gl_Position = vec4(pos, 0.0, 1.0);
}
`

const rayMarchFragmentShader = `
#version 430 core

in vec2 fragCoord;
out vec4 outColor;

uniform mat4 invViewProj;
uniform vec3 cameraPos;
uniform ivec3 chunkOrigin;
uniform int chunkSize;
uniform float voxelSize;
uniform vec4 materialColors[16];
uniform vec4 backgroundColor;

layout(std430, binding = 1) readonly buffer VoxelData {
    uint voxels[];
};

const int MAX_STEPS = 256;

// Same flat mapping as the CPU grid: (z*size + y)*size + x.
uint voxelAt(ivec3 local) {
    int idx = (local.z * chunkSize + local.y) * chunkSize + local.x;
    return voxels[idx];
}

bool inChunk(ivec3 local) {
    return all(greaterThanEqual(local, ivec3(0))) && all(lessThan(local, ivec3(chunkSize)));
}

vec4 march(vec3 ro, vec3 rd) {
    ivec3 mapPos = ivec3(floor(ro));
    vec3 deltaDist = abs(1.0 / rd);      // inf on zero components
    ivec3 rayStep = ivec3(sign(rd));
    vec3 sideDist = (sign(rd) * (vec3(mapPos) - ro) + (sign(rd) * 0.5) + 0.5) * deltaDist;

    for (int i = 0; i < MAX_STEPS; i++) {
        ivec3 local = mapPos - chunkOrigin;
        if (inChunk(local)) {
            uint v = voxelAt(local);
            if (v != 0u) {
                return materialColors[v];
            }
        }

        // Advance every axis tied for the nearest boundary.
        bvec3 mask = lessThanEqual(sideDist.xyz, min(sideDist.yzx, sideDist.zxy));
        sideDist += vec3(mask) * deltaDist;
        mapPos += ivec3(mask) * rayStep;
    }

    return backgroundColor;
}

void main() {
    vec4 nearPoint = invViewProj * vec4(fragCoord * 2.0 - 1.0, -1.0, 1.0);
    vec4 farPoint = invViewProj * vec4(fragCoord * 2.0 - 1.0, 1.0, 1.0);

    vec3 ro = cameraPos / voxelSize;
    vec3 rd = normalize(farPoint.xyz / farPoint.w - nearPoint.xyz / nearPoint.w);

    outColor = march(ro, rd);
}
`

// CompileRayMarchShaders builds the fullscreen DDA program.
func CompileRayMarchShaders() (uint32, error) {
	return buildProgram(rayMarchVertexShader, rayMarchFragmentShader)
}
