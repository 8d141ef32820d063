package core

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMarchVisitsAxisCellsInOrder(t *testing.T) {
	ray := NewRay(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{1, 0, 0})

	var visited []GridPos
	March(ray, func(p GridPos) bool {
		visited = append(visited, p)
		return false
	}, 3)

	want := []GridPos{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	if len(visited) != len(want) {
		t.Fatalf("visited %d cells, want %d", len(visited), len(want))
	}
	for i := range want {
		if visited[i] != want[i] {
			t.Errorf("visit %d = %v, want %v", i, visited[i], want[i])
		}
	}
}

func TestMarchHitsFirstSolidCell(t *testing.T) {
	tests := []struct {
		name   string
		origin mgl64.Vec3
		dir    mgl64.Vec3
		solid  GridPos
	}{
		{name: "+x", origin: mgl64.Vec3{0.5, 0.5, 0.5}, dir: mgl64.Vec3{1, 0, 0}, solid: GridPos{5, 0, 0}},
		{name: "-x", origin: mgl64.Vec3{0.5, 0.5, 0.5}, dir: mgl64.Vec3{-1, 0, 0}, solid: GridPos{-4, 0, 0}},
		{name: "+y", origin: mgl64.Vec3{0.5, 0.5, 0.5}, dir: mgl64.Vec3{0, 1, 0}, solid: GridPos{0, 3, 0}},
		{name: "-z", origin: mgl64.Vec3{0.5, 0.5, 0.5}, dir: mgl64.Vec3{0, 0, -1}, solid: GridPos{0, 0, -6}},
		{name: "diagonal", origin: mgl64.Vec3{0.1, 0.1, 0.1}, dir: mgl64.Vec3{1, 1, 0}, solid: GridPos{4, 4, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			hit, ok := March(NewRay(tc.origin, tc.dir), func(p GridPos) bool {
				return p == tc.solid
			}, 64)
			if !ok {
				t.Fatalf("missed solid cell %v", tc.solid)
			}
			if hit != tc.solid {
				t.Errorf("hit %v, want %v", hit, tc.solid)
			}
		})
	}
}

func TestMarchSkipsNoCells(t *testing.T) {
	// Every consecutive pair of visited cells must differ by one step on the
	// stepped axes only; the DDA never jumps over a voxel boundary.
	ray := NewRay(mgl64.Vec3{0.21, 0.43, 0.87}, mgl64.Vec3{0.7, 0.5, -0.3})

	var visited []GridPos
	March(ray, func(p GridPos) bool {
		visited = append(visited, p)
		return false
	}, 200)

	for i := 1; i < len(visited); i++ {
		prev, cur := visited[i-1], visited[i]
		dx := abs(cur.X - prev.X)
		dy := abs(cur.Y - prev.Y)
		dz := abs(cur.Z - prev.Z)
		if dx > 1 || dy > 1 || dz > 1 || dx+dy+dz == 0 {
			t.Fatalf("step %d jumped from %v to %v", i, prev, cur)
		}
	}
}

func TestMarchMaxStepsIsMissNotError(t *testing.T) {
	ray := NewRay(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{1, 0, 0})
	if _, ok := March(ray, func(GridPos) bool { return false }, 16); ok {
		t.Error("exhausted march reported a hit")
	}
}

func TestMarchZeroDirectionComponents(t *testing.T) {
	// Axis-aligned rays have two zero components; the corresponding axes
	// must never step and must not divide by zero.
	ray := NewRay(mgl64.Vec3{0.5, 0.5, 0.5}, mgl64.Vec3{0, 1, 0})

	var visited []GridPos
	March(ray, func(p GridPos) bool {
		visited = append(visited, p)
		return false
	}, 8)

	for _, p := range visited {
		if p.X != 0 || p.Z != 0 {
			t.Fatalf("zero-direction axis stepped: %v", p)
		}
	}

	// A fully degenerate ray terminates as a miss instead of spinning.
	if _, ok := March(Ray{Origin: mgl64.Vec3{0.5, 0.5, 0.5}}, func(p GridPos) bool {
		return p.X > 0
	}, 1000); ok {
		t.Error("zero-direction ray reported a hit")
	}
}

func TestMarchIntegerOriginDoesNotNaN(t *testing.T) {
	// An origin exactly on a lattice corner exercises the sideDist = 0 case.
	ray := NewRay(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{-1, 0, 0})
	hit, ok := March(ray, func(p GridPos) bool { return p.X == -3 }, 16)
	if !ok || hit != (GridPos{-3, 0, 0}) {
		t.Errorf("hit %v ok=%v, want (-3,0,0)", hit, ok)
	}
}

func TestChunkOccupancy(t *testing.T) {
	c, err := NewChunk(ChunkCoord{X: 1, Y: 0, Z: 0}, 4)
	if err != nil {
		t.Fatal(err)
	}
	c.Set(2, 1, 3, MatStone)

	solid := ChunkOccupancy(c)
	if !solid(GridPos{6, 1, 3}) {
		t.Error("world cell (6,1,3) should map onto the solid voxel")
	}
	if solid(GridPos{2, 1, 3}) {
		t.Error("world cell (2,1,3) lies outside the chunk and must be empty")
	}
}

func TestPixelRayIsNormalized(t *testing.T) {
	cam := Camera{Eye: mgl64.Vec3{10, 12, 30}, Target: mgl64.Vec3{8, 8, 8}, Fov: 70}
	for _, px := range [][2]int{{0, 0}, {319, 239}, {160, 120}, {0, 239}} {
		ray := cam.PixelRay(px[0], px[1], 320, 240)
		if math.Abs(ray.Dir.Len()-1.0) > 1e-9 {
			t.Errorf("pixel %v ray direction length %v, want 1", px, ray.Dir.Len())
		}
	}

	// The center ray points from the eye toward the target.
	center := cam.PixelRay(160, 120, 320, 240)
	toTarget := cam.Target.Sub(cam.Eye).Normalize()
	if center.Dir.Dot(toTarget) < 0.99 {
		t.Errorf("center ray %v diverges from view direction %v", center.Dir, toTarget)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
