package rendering

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/FishArmy100/voxel-game/core"
)

func TestDirectRenderHitAndMiss(t *testing.T) {
	chunk, err := core.NewChunk(core.ChunkCoord{}, 8)
	if err != nil {
		t.Fatal(err)
	}
	chunk.Set(4, 4, 4, core.MatStone)

	materials := core.DefaultMaterials()
	r := NewDirectRenderer(materials)
	r.Workers = 2

	// Look straight at the solid voxel's cell center from outside the chunk.
	cam := core.Camera{
		Eye:    mgl64.Vec3{4.5, 4.5, 20},
		Target: mgl64.Vec3{4.5, 4.5, 4.5},
		Fov:    60,
	}

	fb := NewFrameBuffer(64, 48)
	if err := r.Render(cam, chunk, fb); err != nil {
		t.Fatal(err)
	}

	center := fb.At(32, 24)
	if center != materials.ColorOf(core.MatStone) {
		t.Errorf("center pixel %+v, want stone color %+v", center, materials.ColorOf(core.MatStone))
	}

	corner := fb.At(0, 0)
	if corner != r.Background {
		t.Errorf("corner pixel %+v, want background %+v", corner, r.Background)
	}
}

func TestDirectRenderIsDeterministicAcrossWorkers(t *testing.T) {
	gen := core.NewTerrainGenerator(13)
	chunk, err := gen.Generate(core.ChunkCoord{}, 16)
	if err != nil {
		t.Fatal(err)
	}

	cam := core.Camera{
		Eye:    mgl64.Vec3{24, 28, 40},
		Target: mgl64.Vec3{8, 8, 8},
		Fov:    70,
	}

	var reference []uint8
	for _, workers := range []int{1, 4, 8} {
		r := NewDirectRenderer(core.DefaultMaterials())
		r.Workers = workers
		fb := NewFrameBuffer(80, 60)
		if err := r.Render(cam, chunk, fb); err != nil {
			t.Fatal(err)
		}
		if reference == nil {
			reference = fb.Pix
			continue
		}
		for i := range reference {
			if fb.Pix[i] != reference[i] {
				t.Fatalf("workers=%d: pixel byte %d differs", workers, i)
			}
		}
	}
}

func TestDirectRenderRejectsInvalidMaterials(t *testing.T) {
	chunk, err := core.NewChunk(core.ChunkCoord{}, 4)
	if err != nil {
		t.Fatal(err)
	}
	chunk.Set(0, 0, 0, core.Voxel(200))

	r := NewDirectRenderer(core.DefaultMaterials())
	fb := NewFrameBuffer(8, 8)
	cam := core.Camera{Eye: mgl64.Vec3{2, 2, 10}, Target: mgl64.Vec3{2, 2, 2}, Fov: 60}
	if err := r.Render(cam, chunk, fb); err == nil {
		t.Error("out-of-range material id not rejected before rendering")
	}
}

func TestFrameBufferImageFlipsRows(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	red := [4]uint8{255, 0, 0, 255}
	fb.Pix[0], fb.Pix[1], fb.Pix[2], fb.Pix[3] = red[0], red[1], red[2], red[3] // bottom-left

	img := fb.Image()
	got := img.RGBAAt(0, 1) // bottom row of a top-down image
	if got.R != 255 || got.A != 255 {
		t.Errorf("bottom-left pixel not preserved through flip: %+v", got)
	}
}
