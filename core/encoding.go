package core

// EncodedFace is the packed face record uploaded to the rendering device.
// Packed holds the local position and orientation as four 8-bit fields;
// Material is kept in its own word so the shader indexes the color table
// without a second unpack.
//
// The layout must stay exactly invertible: DecodeFace is the inverse of
// EncodeFace for every descriptor whose coordinates fit the chunk bounds,
// which NewChunk guarantees by rejecting edges over MaxChunkSize.
type EncodedFace struct {
	Packed   uint32
	Material uint32
}

// Bit layout of EncodedFace.Packed. The GL vertex shader re-derives the
// coordinates with the same shifts and masks.
const (
	faceShiftX   = 0
	faceShiftY   = 8
	faceShiftZ   = 16
	faceShiftDir = 24
	faceMask     = 0xFF
)

// EncodeFace packs a face descriptor into its storage-buffer form.
func EncodeFace(d FaceDescriptor) EncodedFace {
	return EncodedFace{
		Packed: uint32(d.X)<<faceShiftX |
			uint32(d.Y)<<faceShiftY |
			uint32(d.Z)<<faceShiftZ |
			uint32(d.Dir)<<faceShiftDir,
		Material: uint32(d.Material),
	}
}

// DecodeFace recovers the original descriptor from its packed form.
func DecodeFace(e EncodedFace) FaceDescriptor {
	return FaceDescriptor{
		X:        uint8(e.Packed >> faceShiftX & faceMask),
		Y:        uint8(e.Packed >> faceShiftY & faceMask),
		Z:        uint8(e.Packed >> faceShiftZ & faceMask),
		Dir:      Orientation(e.Packed >> faceShiftDir & faceMask),
		Material: Voxel(e.Material),
	}
}

// EncodeFaces packs a whole extraction pass, preserving order.
func EncodeFaces(faces []FaceDescriptor) []EncodedFace {
	encoded := make([]EncodedFace, len(faces))
	for i, d := range faces {
		encoded[i] = EncodeFace(d)
	}
	return encoded
}
