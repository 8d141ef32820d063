package core

import (
	"runtime"

	"github.com/alitto/pond/v2"
)

// ExtractFaces walks the chunk and emits one descriptor per visible face.
// A face is visible if the voxel is solid and its neighbor in that direction
// is empty or outside the chunk: boundary faces are always emitted, since
// without cross-chunk neighbor data a boundary face cannot be proven hidden.
//
// Output order is stable: x, then y, then z ascending, orientations in enum
// order. An empty chunk yields an empty slice.
func ExtractFaces(c *Chunk) []FaceDescriptor {
	var faces []FaceDescriptor
	for x := 0; x < c.Size; x++ {
		faces = extractPlane(c, x, faces)
	}
	return faces
}

// ExtractFacesParallel produces the same face sequence as ExtractFaces using
// one task per x-plane. Planes are read-only and disjoint in output, so the
// per-plane slices concatenate in plane order to the serial result.
func ExtractFacesParallel(c *Chunk, workers int) []FaceDescriptor {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	planes := make([][]FaceDescriptor, c.Size)
	pool := pond.NewPool(workers)
	group := pool.NewGroup()
	for x := 0; x < c.Size; x++ {
		x := x
		group.Submit(func() {
			planes[x] = extractPlane(c, x, nil)
		})
	}
	group.Wait()
	pool.StopAndWait()

	var faces []FaceDescriptor
	for _, p := range planes {
		faces = append(faces, p...)
	}
	return faces
}

func extractPlane(c *Chunk, x int, faces []FaceDescriptor) []FaceDescriptor {
	for y := 0; y < c.Size; y++ {
		for z := 0; z < c.Size; z++ {
			v := c.At(x, y, z)
			if !v.Solid() {
				continue
			}
			for dir := Orientation(0); dir < OrientCount; dir++ {
				dx, dy, dz := dir.Offset()
				if c.SolidAt(x+dx, y+dy, z+dz) {
					continue
				}
				faces = append(faces, FaceDescriptor{
					X:        uint8(x),
					Y:        uint8(y),
					Z:        uint8(z),
					Dir:      dir,
					Material: v,
				})
			}
		}
	}
	return faces
}
