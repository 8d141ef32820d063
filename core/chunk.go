package core

import "fmt"

// MaxChunkSize is the largest chunk edge length whose local coordinates
// still fit in one byte of an encoded face.
const MaxChunkSize = 256

// ChunkCoord identifies a chunk's position in chunk units. The world-space
// origin of a chunk is Coord * Size voxels.
type ChunkCoord struct {
	X, Y, Z int32
}

// Chunk is a dense cubic grid of voxel codes. It is created empty, filled
// once by a generator (or external edits), then read many times by the face
// extractor and ray marcher. Any mutation must be followed by re-extraction
// before the next meshed render.
type Chunk struct {
	Coord  ChunkCoord
	Size   int
	Voxels []Voxel
}

// NewChunk allocates an empty chunk. Sizes outside [1, MaxChunkSize] are
// rejected rather than truncated later during face encoding.
func NewChunk(coord ChunkCoord, size int) (*Chunk, error) {
	if size < 1 || size > MaxChunkSize {
		return nil, fmt.Errorf("chunk size %d out of range [1, %d]", size, MaxChunkSize)
	}
	return &Chunk{
		Coord:  coord,
		Size:   size,
		Voxels: make([]Voxel, size*size*size),
	}, nil
}

// Index maps local coordinates to the flat buffer offset. This is the
// canonical mapping shared by generation, extraction, and the shader-side
// re-derivation: (z*size + y)*size + x.
func (c *Chunk) Index(x, y, z int) int {
	return (z*c.Size+y)*c.Size + x
}

// InBounds reports whether a local coordinate lies inside the chunk.
func (c *Chunk) InBounds(x, y, z int) bool {
	return x >= 0 && x < c.Size && y >= 0 && y < c.Size && z >= 0 && z < c.Size
}

// At returns the voxel at a local coordinate.
func (c *Chunk) At(x, y, z int) Voxel {
	return c.Voxels[c.Index(x, y, z)]
}

// Set writes the voxel at a local coordinate.
func (c *Chunk) Set(x, y, z int, v Voxel) {
	c.Voxels[c.Index(x, y, z)] = v
}

// SolidAt reports whether the voxel at a local coordinate is solid.
// Out-of-bounds coordinates are not solid; the extractor uses this to
// always emit chunk-boundary faces.
func (c *Chunk) SolidAt(x, y, z int) bool {
	if !c.InBounds(x, y, z) {
		return false
	}
	return c.At(x, y, z).Solid()
}

// CountSolid returns the number of non-air voxels.
func (c *Chunk) CountSolid() int {
	n := 0
	for _, v := range c.Voxels {
		if v.Solid() {
			n++
		}
	}
	return n
}

// ValidateMaterials fails if any voxel code does not index the table.
// An out-of-range id would corrupt rendered geometry, so generation must
// catch it here instead of the renderer clamping it.
func (c *Chunk) ValidateMaterials(table MaterialTable) error {
	for i, v := range c.Voxels {
		if !table.Contains(v) {
			return fmt.Errorf("voxel %d has material id %d, table has %d entries", i, v, len(table))
		}
	}
	return nil
}

// WorldOrigin returns the chunk's world-space origin in voxel units.
func (c *Chunk) WorldOrigin() (int, int, int) {
	return int(c.Coord.X) * c.Size, int(c.Coord.Y) * c.Size, int(c.Coord.Z) * c.Size
}
