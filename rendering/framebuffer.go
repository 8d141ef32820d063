package rendering

import (
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// FrameBuffer is a dense RGBA8 pixel target written by the direct renderer.
// Row 0 is the bottom of the image, matching the camera's lower-left ray
// construction.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8 // RGBA, 4 bytes per pixel
}

// NewFrameBuffer allocates a zeroed framebuffer.
func NewFrameBuffer(width, height int) *FrameBuffer {
	return &FrameBuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*4),
	}
}

// Set writes one pixel.
func (fb *FrameBuffer) Set(x, y int, c rl.Color) {
	i := (y*fb.Width + x) * 4
	fb.Pix[i+0] = c.R
	fb.Pix[i+1] = c.G
	fb.Pix[i+2] = c.B
	fb.Pix[i+3] = c.A
}

// At reads one pixel.
func (fb *FrameBuffer) At(x, y int) rl.Color {
	i := (y*fb.Width + x) * 4
	return rl.NewColor(fb.Pix[i+0], fb.Pix[i+1], fb.Pix[i+2], fb.Pix[i+3])
}

// Image copies the buffer into an image.RGBA, flipping rows so that the
// result is top-down as image consumers expect.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		src := fb.Pix[y*fb.Width*4 : (y+1)*fb.Width*4]
		dst := img.Pix[(fb.Height-1-y)*img.Stride:]
		copy(dst, src)
	}
	return img
}
