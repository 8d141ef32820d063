package core

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-gl/mathgl/mgl32"
)

// Voxel is a material code. Zero means empty air; everything else indexes
// into a MaterialTable.
type Voxel uint8

const (
	MatAir Voxel = iota
	MatStone
	MatWater
	MatSand
	MatGrass
)

// Solid reports whether the voxel occupies space for face extraction.
// Only air is empty; water emits faces like any other material.
func (v Voxel) Solid() bool {
	return v != MatAir
}

// Material describes the render attributes looked up by a voxel code.
// Per-voxel state stays in the code itself; color (and later strength,
// opacity, luminance) lives here.
type Material struct {
	Name  string
	Color rl.Color
}

// MaterialTable is the ordered material catalog, indexed by voxel code.
type MaterialTable []Material

// MaxMaterials is the largest id representable in an encoded face byte.
const MaxMaterials = 256

// NewMaterialTable validates and builds a material catalog.
func NewMaterialTable(mats ...Material) (MaterialTable, error) {
	if len(mats) == 0 {
		return nil, fmt.Errorf("material table must not be empty")
	}
	if len(mats) > MaxMaterials {
		return nil, fmt.Errorf("material table has %d entries, max is %d", len(mats), MaxMaterials)
	}
	return MaterialTable(mats), nil
}

// DefaultMaterials returns the stock terrain palette.
func DefaultMaterials() MaterialTable {
	return MaterialTable{
		{Name: "air", Color: rl.NewColor(0, 0, 0, 0)},
		{Name: "stone", Color: rl.NewColor(255, 255, 255, 255)},
		{Name: "water", Color: rl.NewColor(28, 163, 236, 255)},
		{Name: "sand", Color: rl.NewColor(194, 178, 128, 255)},
		{Name: "grass", Color: rl.NewColor(93, 146, 77, 255)},
	}
}

// Contains reports whether the voxel code indexes a valid entry.
func (t MaterialTable) Contains(v Voxel) bool {
	return int(v) < len(t)
}

// ColorOf returns the RGBA color for a voxel code.
func (t MaterialTable) ColorOf(v Voxel) rl.Color {
	return t[v].Color
}

// Colors converts the table to normalized vec4s for uniform upload.
func (t MaterialTable) Colors() []mgl32.Vec4 {
	colors := make([]mgl32.Vec4, len(t))
	for i, m := range t {
		colors[i] = mgl32.Vec4{
			float32(m.Color.R) / 255.0,
			float32(m.Color.G) / 255.0,
			float32(m.Color.B) / 255.0,
			float32(m.Color.A) / 255.0,
		}
	}
	return colors
}
