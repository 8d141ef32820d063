package core

import "math"

// GridPos is an integer voxel coordinate visited by the ray marcher.
type GridPos struct {
	X, Y, Z int
}

// March steps a 3-D DDA (Amanatides-Woo) through the voxel grid and returns
// the first cell for which isSolid reports true. The traversal visits every
// cell the ray passes through, skipping none; on a tie between axes all tied
// axes advance together, matching a diagonal voxel crossing.
//
// Direction components equal to zero get an infinite per-axis crossing
// distance, so that axis never steps. Exhausting maxSteps is the defined
// miss outcome, not an error.
func March(ray Ray, isSolid func(GridPos) bool, maxSteps int) (GridPos, bool) {
	mapX := int(math.Floor(ray.Origin.X()))
	mapY := int(math.Floor(ray.Origin.Y()))
	mapZ := int(math.Floor(ray.Origin.Z()))

	pos := [3]int{mapX, mapY, mapZ}
	origin := [3]float64{ray.Origin.X(), ray.Origin.Y(), ray.Origin.Z()}
	dir := [3]float64{ray.Dir.X(), ray.Dir.Y(), ray.Dir.Z()}

	var step [3]int
	var deltaDist, sideDist [3]float64
	for i := 0; i < 3; i++ {
		if dir[i] == 0 {
			deltaDist[i] = math.Inf(1)
			sideDist[i] = math.Inf(1)
			continue
		}
		deltaDist[i] = math.Abs(1.0 / dir[i])
		if dir[i] > 0 {
			step[i] = 1
			sideDist[i] = (math.Floor(origin[i]) + 1.0 - origin[i]) * deltaDist[i]
		} else {
			step[i] = -1
			sideDist[i] = (origin[i] - math.Floor(origin[i])) * deltaDist[i]
		}
	}

	for n := 0; n < maxSteps; n++ {
		p := GridPos{pos[0], pos[1], pos[2]}
		if isSolid(p) {
			return p, true
		}

		next := math.Min(sideDist[0], math.Min(sideDist[1], sideDist[2]))
		if math.IsInf(next, 1) {
			// Degenerate ray: no axis can advance.
			return GridPos{}, false
		}
		for i := 0; i < 3; i++ {
			if sideDist[i] == next {
				pos[i] += step[i]
				sideDist[i] += deltaDist[i]
			}
		}
	}

	return GridPos{}, false
}

// ChunkOccupancy adapts a chunk into a world-space solidity predicate for
// the ray marcher. Cells outside the chunk are empty.
func ChunkOccupancy(c *Chunk) func(GridPos) bool {
	ox, oy, oz := c.WorldOrigin()
	return func(p GridPos) bool {
		return c.SolidAt(p.X-ox, p.Y-oy, p.Z-oz)
	}
}
