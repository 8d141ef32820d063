package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"math"
	"os"
	"runtime"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/FishArmy100/voxel-game/config"
	"github.com/FishArmy100/voxel-game/core"
	"github.com/FishArmy100/voxel-game/rendering"
	"github.com/FishArmy100/voxel-game/rendering/opengl"
	"github.com/FishArmy100/voxel-game/server"
)

func main() {
	runtime.LockOSThread()

	var (
		settingsPath = flag.String("settings", "settings.json", "Settings file path")
		seed         = flag.Int64("seed", 0, "Terrain seed (overrides settings if nonzero)")
		chunkSize    = flag.Int("size", 0, "Chunk edge length (overrides settings if nonzero)")
		mode         = flag.String("mode", "mesh", "Render mode (mesh, march)")
		serve        = flag.Bool("serve", false, "Serve mesh data over websocket")
		snapshot     = flag.String("snapshot", "", "Ray march one frame to a PNG and exit")
	)
	flag.Parse()

	settings, err := config.Load(*settingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	if *seed != 0 {
		settings.Terrain.Seed = *seed
	}
	if *chunkSize != 0 {
		settings.Terrain.ChunkSize = *chunkSize
	}

	fmt.Println("=== Voxel Game ===")
	fmt.Printf("Chunk size: %d\n", settings.Terrain.ChunkSize)
	fmt.Printf("Seed: %d\n", settings.Terrain.Seed)
	fmt.Printf("Mode: %s\n", *mode)

	materials := core.DefaultMaterials()

	chunk, faces, err := buildChunk(settings.Terrain, materials, settings.Terrain.Seed)
	if err != nil {
		log.Fatalf("Failed to generate chunk: %v", err)
	}
	encoded := core.EncodeFaces(faces)
	fmt.Printf("Generated %d solid voxels, %d faces\n", chunk.CountSolid(), len(faces))

	camera := orbitCamera(chunk, settings.Terrain.VoxelSize, 0)

	if *snapshot != "" {
		writeSnapshot(*snapshot, camera, chunk, materials, settings.Window)
		return
	}

	if *serve {
		srv := server.New(settings.Server.Port, func(newSeed int64) (server.MeshUpdate, error) {
			c, f, err := buildChunk(settings.Terrain, materials, newSeed)
			if err != nil {
				return server.MeshUpdate{}, err
			}
			return server.BuildMeshUpdate(c, core.EncodeFaces(f), materials, newSeed), nil
		})
		srv.Publish(server.BuildMeshUpdate(chunk, encoded, materials, settings.Terrain.Seed))
		go func() {
			log.Fatal(srv.Run())
		}()
	}

	renderer, err := opengl.NewChunkRenderer(settings.Window.Width, settings.Window.Height, "Voxel Game")
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer renderer.Terminate()

	if err := renderer.UploadMesh(encoded, materials, chunk); err != nil {
		log.Fatalf("Failed to upload mesh: %v", err)
	}
	renderer.UploadVoxels(chunk)
	renderer.SetVoxelSize(float32(settings.Terrain.VoxelSize))
	if *mode == "march" {
		renderer.SetMode(opengl.ModeRayMarch)
	}

	fmt.Println("\nControls:")
	fmt.Println("  ESC: Exit")
	fmt.Println("\nRendering...")

	start := time.Now()
	frameCount := 0
	lastFPSTime := time.Now()

	for !renderer.ShouldClose() {
		renderer.PollEvents()

		camera = orbitCamera(chunk, settings.Terrain.VoxelSize, time.Since(start).Seconds())
		renderer.Render(camera)

		frameCount++
		if now := time.Now(); now.Sub(lastFPSTime).Seconds() >= 1.0 {
			fps := float64(frameCount) / now.Sub(lastFPSTime).Seconds()
			fmt.Printf("\rFPS: %.1f | Faces: %d", fps, len(faces))
			frameCount = 0
			lastFPSTime = now
		}
	}

	fmt.Println("\nShutting down...")
}

// buildChunk generates terrain, validates it against the material table, and
// extracts the visible faces.
func buildChunk(t config.TerrainSettings, materials core.MaterialTable, seed int64) (*core.Chunk, []core.FaceDescriptor, error) {
	gen := core.NewTerrainGenerator(seed)
	gen.Params = core.TerrainParams{
		VoxelSize:   t.VoxelSize,
		Frequency:   t.Frequency,
		HeightScale: t.HeightScale,
		HeightOff:   t.HeightOff,
		WaterLevel:  t.WaterLevel,
		SandLevel:   t.SandLevel,
	}

	chunk, err := gen.Generate(core.ChunkCoord{}, t.ChunkSize)
	if err != nil {
		return nil, nil, err
	}
	if err := chunk.ValidateMaterials(materials); err != nil {
		return nil, nil, err
	}

	return chunk, core.ExtractFacesParallel(chunk, 0), nil
}

// orbitCamera circles the chunk center at a fixed elevation.
func orbitCamera(chunk *core.Chunk, voxelSize float64, t float64) core.Camera {
	half := float64(chunk.Size) * voxelSize / 2
	radius := float64(chunk.Size) * voxelSize * 1.6
	angle := t * 0.3

	return core.Camera{
		Eye: mgl64.Vec3{
			half + radius*math.Cos(angle),
			float64(chunk.Size) * voxelSize * 1.2,
			half + radius*math.Sin(angle),
		},
		Target: mgl64.Vec3{half, half * 0.8, half},
		Fov:    70,
	}
}

// writeSnapshot renders one frame with the CPU direct renderer.
func writeSnapshot(path string, camera core.Camera, chunk *core.Chunk, materials core.MaterialTable, window config.WindowSettings) {
	fb := rendering.NewFrameBuffer(window.Width, window.Height)
	direct := rendering.NewDirectRenderer(materials)
	if err := direct.Render(camera, chunk, fb); err != nil {
		log.Fatalf("Direct render failed: %v", err)
	}

	file, err := os.Create(path)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.Image()); err != nil {
		log.Fatalf("Failed to encode %s: %v", path, err)
	}
	fmt.Printf("Wrote %s (%dx%d)\n", path, window.Width, window.Height)
}
