package rendering

import (
	"fmt"
	"runtime"

	"github.com/alitto/pond/v2"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/FishArmy100/voxel-game/core"
)

// DirectRenderer draws a voxel grid without meshing: one camera ray per
// output pixel, marched through the grid until the first occupied cell.
// Rays are independent, so rows are dispatched as parallel tasks.
type DirectRenderer struct {
	Materials  core.MaterialTable
	Background rl.Color
	MaxSteps   int
	Workers    int
}

// NewDirectRenderer builds a renderer with a dark sky background.
func NewDirectRenderer(materials core.MaterialTable) *DirectRenderer {
	return &DirectRenderer{
		Materials:  materials,
		Background: rl.NewColor(13, 13, 26, 255),
		MaxSteps:   256,
	}
}

// Render marches one ray per pixel of the framebuffer. Hits write the
// material color of the struck voxel; misses write the background.
func (r *DirectRenderer) Render(cam core.Camera, chunk *core.Chunk, fb *FrameBuffer) error {
	if err := chunk.ValidateMaterials(r.Materials); err != nil {
		return fmt.Errorf("direct render: %w", err)
	}

	solid := core.ChunkOccupancy(chunk)
	ox, oy, oz := chunk.WorldOrigin()

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pool := pond.NewPool(workers)
	group := pool.NewGroup()
	for y := 0; y < fb.Height; y++ {
		y := y
		group.Submit(func() {
			for x := 0; x < fb.Width; x++ {
				ray := cam.PixelRay(x, y, fb.Width, fb.Height)
				hit, ok := core.March(ray, solid, r.MaxSteps)
				if !ok {
					fb.Set(x, y, r.Background)
					continue
				}
				v := chunk.At(hit.X-ox, hit.Y-oy, hit.Z-oz)
				fb.Set(x, y, r.Materials.ColorOf(v))
			}
		})
	}
	group.Wait()
	pool.StopAndWait()

	return nil
}
