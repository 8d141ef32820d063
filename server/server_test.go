package server

import (
	"testing"

	"github.com/FishArmy100/voxel-game/core"
)

func TestBuildMeshUpdate(t *testing.T) {
	chunk, err := core.NewChunk(core.ChunkCoord{X: 2, Y: 0, Z: -1}, 4)
	if err != nil {
		t.Fatal(err)
	}
	chunk.Set(1, 1, 1, core.MatGrass)
	chunk.Set(2, 1, 1, core.MatSand)

	faces := core.EncodeFaces(core.ExtractFaces(chunk))
	materials := core.DefaultMaterials()

	update := BuildMeshUpdate(chunk, faces, materials, 42)

	if update.Type != "mesh" {
		t.Errorf("type %q, want \"mesh\"", update.Type)
	}
	if update.ChunkX != 2 || update.ChunkY != 0 || update.ChunkZ != -1 {
		t.Errorf("chunk coord (%d,%d,%d), want (2,0,-1)", update.ChunkX, update.ChunkY, update.ChunkZ)
	}
	if update.SolidCount != 2 {
		t.Errorf("solid count %d, want 2", update.SolidCount)
	}
	if update.FaceCount != len(faces) || len(update.Faces) != len(faces) {
		t.Errorf("face count %d/%d, want %d", update.FaceCount, len(update.Faces), len(faces))
	}
	if update.Seed != 42 {
		t.Errorf("seed %d, want 42", update.Seed)
	}
	if len(update.Materials) != len(materials) {
		t.Errorf("%d material names, want %d", len(update.Materials), len(materials))
	}
	if update.Histogram[core.MatGrass] != 1 || update.Histogram[core.MatSand] != 1 {
		t.Errorf("histogram %v, want one grass and one sand", update.Histogram)
	}
	if update.Histogram[core.MatAir] != 4*4*4-2 {
		t.Errorf("air count %d, want %d", update.Histogram[core.MatAir], 4*4*4-2)
	}

	// Payload faces decode back to the extraction result.
	for i, pair := range update.Faces {
		got := core.DecodeFace(core.EncodedFace{Packed: pair[0], Material: pair[1]})
		want := core.DecodeFace(faces[i])
		if got != want {
			t.Fatalf("payload face %d mangled: %+v vs %+v", i, got, want)
		}
	}
}
