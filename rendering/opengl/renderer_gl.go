package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/FishArmy100/voxel-game/core"
	"github.com/FishArmy100/voxel-game/rendering/opengl/shaders"
)

// RenderMode selects between the meshed path (face quads) and the direct
// path (fragment-shader ray marching).
type RenderMode int

const (
	ModeMesh RenderMode = iota
	ModeRayMarch
)

// maxMaterialColors matches the uniform array size in the shaders.
const maxMaterialColors = 16

// ChunkRenderer owns the window and GL state for drawing one chunk.
type ChunkRenderer struct {
	window *glfw.Window

	faceProgram  uint32
	marchProgram uint32
	vao          uint32
	faceSSBO     uint32
	voxelSSBO    uint32

	faceCount  int32
	chunkSize  int32
	chunkOrig  [3]int32
	voxelSize  float32
	background mgl32.Vec4

	width, height int
	mode          RenderMode
}

// NewChunkRenderer creates the window, loads GL, and compiles both programs.
// Must run on the locked main OS thread.
func NewChunkRenderer(width, height int, title string) (*ChunkRenderer, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	faceProgram, err := shaders.CompileFaceShaders()
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("face shaders: %w", err)
	}
	marchProgram, err := shaders.CompileRayMarchShaders()
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("ray march shaders: %w", err)
	}

	r := &ChunkRenderer{
		window:       window,
		faceProgram:  faceProgram,
		marchProgram: marchProgram,
		voxelSize:    1.0,
		background:   mgl32.Vec4{0.05, 0.05, 0.1, 1.0},
		width:        width,
		height:       height,
	}

	gl.GenVertexArrays(1, &r.vao)
	gl.GenBuffers(1, &r.faceSSBO)
	gl.GenBuffers(1, &r.voxelSSBO)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)

	return r, nil
}

// UploadMesh pushes the encoded faces and material colors for the meshed
// path. Material ids must already be validated against the table.
func (r *ChunkRenderer) UploadMesh(faces []core.EncodedFace, materials core.MaterialTable, chunk *core.Chunk) error {
	if len(materials) > maxMaterialColors {
		return fmt.Errorf("material table has %d entries, shader supports %d", len(materials), maxMaterialColors)
	}

	r.faceCount = int32(len(faces))
	r.chunkSize = int32(chunk.Size)
	ox, oy, oz := chunk.WorldOrigin()
	r.chunkOrig = [3]int32{int32(ox), int32(oy), int32(oz)}

	if len(faces) > 0 {
		gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, r.faceSSBO)
		gl.BufferData(gl.SHADER_STORAGE_BUFFER, len(faces)*int(unsafe.Sizeof(faces[0])), unsafe.Pointer(&faces[0]), gl.STATIC_DRAW)
		gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, 0, r.faceSSBO)
	}

	r.uploadColors(r.faceProgram, materials)
	r.uploadColors(r.marchProgram, materials)
	return nil
}

// UploadVoxels pushes the raw grid for the device-side ray march path.
func (r *ChunkRenderer) UploadVoxels(chunk *core.Chunk) {
	words := make([]uint32, len(chunk.Voxels))
	for i, v := range chunk.Voxels {
		words[i] = uint32(v)
	}

	gl.BindBuffer(gl.SHADER_STORAGE_BUFFER, r.voxelSSBO)
	gl.BufferData(gl.SHADER_STORAGE_BUFFER, len(words)*4, unsafe.Pointer(&words[0]), gl.STATIC_DRAW)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, 1, r.voxelSSBO)
}

func (r *ChunkRenderer) uploadColors(program uint32, materials core.MaterialTable) {
	colors := materials.Colors()
	gl.UseProgram(program)
	loc := gl.GetUniformLocation(program, gl.Str("materialColors\x00"))
	gl.Uniform4fv(loc, int32(len(colors)), &colors[0][0])
}

// SetMode switches between the meshed and direct paths.
func (r *ChunkRenderer) SetMode(mode RenderMode) { r.mode = mode }

// SetVoxelSize sets the world edge length of one voxel.
func (r *ChunkRenderer) SetVoxelSize(size float32) { r.voxelSize = size }

// Render draws one frame with the given camera.
func (r *ChunkRenderer) Render(cam core.Camera) {
	gl.ClearColor(r.background.X(), r.background.Y(), r.background.Z(), r.background.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	aspect := float32(r.width) / float32(r.height)
	viewProj := cam.ViewProjection(aspect, 0.1, 1000.0)

	switch r.mode {
	case ModeMesh:
		r.renderMesh(viewProj)
	case ModeRayMarch:
		r.renderRayMarch(cam, viewProj)
	}

	r.window.SwapBuffers()
}

func (r *ChunkRenderer) renderMesh(viewProj mgl32.Mat4) {
	if r.faceCount == 0 {
		return
	}

	gl.UseProgram(r.faceProgram)
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.faceProgram, gl.Str("viewProj\x00")), 1, false, &viewProj[0])
	gl.Uniform3i(gl.GetUniformLocation(r.faceProgram, gl.Str("chunkOrigin\x00")), r.chunkOrig[0], r.chunkOrig[1], r.chunkOrig[2])
	gl.Uniform1f(gl.GetUniformLocation(r.faceProgram, gl.Str("voxelSize\x00")), r.voxelSize)

	gl.BindVertexArray(r.vao)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, 0, r.faceSSBO)
	gl.DrawArrays(gl.TRIANGLES, 0, r.faceCount*6)
}

func (r *ChunkRenderer) renderRayMarch(cam core.Camera, viewProj mgl32.Mat4) {
	invViewProj := viewProj.Inv()

	gl.UseProgram(r.marchProgram)
	gl.UniformMatrix4fv(gl.GetUniformLocation(r.marchProgram, gl.Str("invViewProj\x00")), 1, false, &invViewProj[0])
	gl.Uniform3f(gl.GetUniformLocation(r.marchProgram, gl.Str("cameraPos\x00")),
		float32(cam.Eye.X()), float32(cam.Eye.Y()), float32(cam.Eye.Z()))
	gl.Uniform3i(gl.GetUniformLocation(r.marchProgram, gl.Str("chunkOrigin\x00")), r.chunkOrig[0], r.chunkOrig[1], r.chunkOrig[2])
	gl.Uniform1i(gl.GetUniformLocation(r.marchProgram, gl.Str("chunkSize\x00")), r.chunkSize)
	gl.Uniform1f(gl.GetUniformLocation(r.marchProgram, gl.Str("voxelSize\x00")), r.voxelSize)
	gl.Uniform4fv(gl.GetUniformLocation(r.marchProgram, gl.Str("backgroundColor\x00")), 1, &r.background[0])

	gl.BindVertexArray(r.vao)
	gl.BindBufferBase(gl.SHADER_STORAGE_BUFFER, 1, r.voxelSSBO)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)
}

// ShouldClose reports whether the window was asked to close.
func (r *ChunkRenderer) ShouldClose() bool { return r.window.ShouldClose() }

// PollEvents pumps the window event loop.
func (r *ChunkRenderer) PollEvents() { glfw.PollEvents() }

// Window exposes the underlying handle for input callbacks.
func (r *ChunkRenderer) Window() *glfw.Window { return r.window }

// Terminate releases GL objects and the window.
func (r *ChunkRenderer) Terminate() {
	gl.DeleteBuffers(1, &r.faceSSBO)
	gl.DeleteBuffers(1, &r.voxelSSBO)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.faceProgram)
	gl.DeleteProgram(r.marchProgram)
	glfw.Terminate()
}
