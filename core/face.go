package core

import "github.com/go-gl/mathgl/mgl32"

// Orientation is one of the six unit-square sides of a voxel.
type Orientation uint8

const (
	OrientUp Orientation = iota // +Y
	OrientDown                  // -Y
	OrientNorth                 // -Z
	OrientSouth                 // +Z
	OrientEast                  // +X
	OrientWest                  // -X

	OrientCount = 6
)

func (o Orientation) String() string {
	switch o {
	case OrientUp:
		return "up"
	case OrientDown:
		return "down"
	case OrientNorth:
		return "north"
	case OrientSouth:
		return "south"
	case OrientEast:
		return "east"
	case OrientWest:
		return "west"
	}
	return "invalid"
}

// Offset returns the neighbor direction for the orientation.
func (o Orientation) Offset() (int, int, int) {
	switch o {
	case OrientUp:
		return 0, 1, 0
	case OrientDown:
		return 0, -1, 0
	case OrientNorth:
		return 0, 0, -1
	case OrientSouth:
		return 0, 0, 1
	case OrientEast:
		return 1, 0, 0
	case OrientWest:
		return -1, 0, 0
	}
	return 0, 0, 0
}

// FaceCorners is the process-wide orientation -> corner-offset table used to
// expand a face record into a quad. The corner order and winding must match
// FaceTriangles or back-face culling drops correct geometry; the GL vertex
// shader embeds the same values.
var FaceCorners = [OrientCount][4]mgl32.Vec3{
	OrientUp: {
		{0, 1, 0}, {1, 1, 0}, {0, 1, 1}, {1, 1, 1},
	},
	OrientDown: {
		{0, 0, 1}, {1, 0, 1}, {0, 0, 0}, {1, 0, 0},
	},
	OrientNorth: {
		{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {1, 1, 0},
	},
	OrientSouth: {
		{0, 1, 1}, {1, 1, 1}, {0, 0, 1}, {1, 0, 1},
	},
	OrientEast: {
		{1, 1, 1}, {1, 1, 0}, {1, 0, 1}, {1, 0, 0},
	},
	OrientWest: {
		{0, 1, 0}, {0, 1, 1}, {0, 0, 0}, {0, 0, 1},
	},
}

// FaceTriangles indexes FaceCorners into two consistently wound triangles.
var FaceTriangles = [6]uint16{2, 1, 0, 2, 3, 1}

// FaceDescriptor is one visible quad: a local voxel position, the face
// orientation, and the material id of the voxel. Local coordinates fit in a
// byte because chunk edges never exceed MaxChunkSize.
type FaceDescriptor struct {
	X, Y, Z  uint8
	Dir      Orientation
	Material Voxel
}
