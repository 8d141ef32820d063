package core

import (
	"runtime"

	"github.com/alitto/pond/v2"
)

// HeightSampler supplies the scalar noise for terrain shaping. NoiseField
// satisfies it; tests substitute constants.
type HeightSampler interface {
	Sample(x, z float64) float64
}

// ConstantField is a HeightSampler that always returns the same value.
type ConstantField float64

func (c ConstantField) Sample(x, z float64) float64 { return float64(c) }

// TerrainParams are the height-band classification constants. Heights are
// in world units (voxel edges scaled by VoxelSize).
type TerrainParams struct {
	VoxelSize   float64 // world edge length of one voxel
	Frequency   float64 // noise sample scale per world unit
	HeightScale float64 // noise contribution to terrain height
	HeightOff   float64 // base terrain height
	WaterLevel  float64 // empty cells below this become water
	SandLevel   float64 // solid cells below this become sand
}

// DefaultTerrainParams returns the stock island-and-sea banding.
func DefaultTerrainParams() TerrainParams {
	return TerrainParams{
		VoxelSize:   1.0,
		Frequency:   0.02,
		HeightScale: 12.0,
		HeightOff:   16.0,
		WaterLevel:  14.0,
		SandLevel:   15.5,
	}
}

// TerrainGenerator fills chunks from a deterministic noise field. Every cell
// is classified independently, so generation is dispatched as a parallel map
// over z-rows; results are bit-identical for any worker count.
type TerrainGenerator struct {
	Noise   HeightSampler
	Params  TerrainParams
	Workers int
}

// NewTerrainGenerator builds a generator over seeded noise with the stock
// parameters.
func NewTerrainGenerator(seed int64) *TerrainGenerator {
	return &TerrainGenerator{
		Noise:  NewNoiseField(seed),
		Params: DefaultTerrainParams(),
	}
}

// Generate fills a new chunk at the given coordinate. Regenerating the same
// coordinate always yields the same grid.
func (g *TerrainGenerator) Generate(coord ChunkCoord, size int) (*Chunk, error) {
	chunk, err := NewChunk(coord, size)
	if err != nil {
		return nil, err
	}

	workers := g.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	pool := pond.NewPool(workers)
	group := pool.NewGroup()
	for z := 0; z < size; z++ {
		z := z
		group.Submit(func() {
			g.generateRow(chunk, z)
		})
	}
	group.Wait()
	pool.StopAndWait()

	return chunk, nil
}

// generateRow classifies every cell of one z-slice. Rows write disjoint
// regions of the voxel buffer, so no synchronization is needed.
func (g *TerrainGenerator) generateRow(chunk *Chunk, z int) {
	p := g.Params
	ox, oy, oz := chunk.WorldOrigin()
	worldZ := float64(oz+z) * p.VoxelSize

	for x := 0; x < chunk.Size; x++ {
		worldX := float64(ox+x) * p.VoxelSize
		noise := g.Noise.Sample(worldX*p.Frequency, worldZ*p.Frequency)
		height := noise*p.HeightScale + p.HeightOff

		for y := 0; y < chunk.Size; y++ {
			worldY := float64(oy+y) * p.VoxelSize
			chunk.Set(x, y, z, classifyCell(worldY, height, p))
		}
	}
}

// classifyCell applies the height-band rules: at or above the terrain height
// a cell is air unless it sits below the water level; below the terrain
// height it is sand near the shore and the default solid above that.
func classifyCell(worldY, height float64, p TerrainParams) Voxel {
	if worldY >= height {
		if worldY < p.WaterLevel {
			return MatWater
		}
		return MatAir
	}
	if worldY < p.SandLevel {
		return MatSand
	}
	return MatGrass
}
