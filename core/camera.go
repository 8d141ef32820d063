package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Ray is an origin plus a normalized direction.
type Ray struct {
	Origin mgl64.Vec3
	Dir    mgl64.Vec3
}

// NewRay normalizes the direction. A zero direction is left untouched; the
// marcher treats its axes as never stepping.
func NewRay(origin, dir mgl64.Vec3) Ray {
	if dir.Len() > 0 {
		dir = dir.Normalize()
	}
	return Ray{Origin: origin, Dir: dir}
}

// Camera builds per-pixel rays for the direct path and the view-projection
// matrix for the meshed path.
type Camera struct {
	Eye    mgl64.Vec3
	Target mgl64.Vec3
	Fov    float64 // vertical field of view, degrees
}

// PixelRay constructs the ray through a pixel. x and y are pixel indices;
// (0,0) is the lower-left corner of the image plane.
func (c Camera) PixelRay(x, y, width, height int) Ray {
	aspect := float64(width) / float64(height)
	theta := c.Fov * math.Pi / 180.0
	halfHeight := math.Tan(theta / 2.0)
	halfWidth := aspect * halfHeight

	w := c.Eye.Sub(c.Target).Normalize()
	u := mgl64.Vec3{0, 1, 0}.Cross(w).Normalize()
	v := w.Cross(u)

	lowerLeft := c.Eye.
		Sub(u.Mul(halfWidth)).
		Sub(v.Mul(halfHeight)).
		Sub(w)
	horizontal := u.Mul(2 * halfWidth)
	vertical := v.Mul(2 * halfHeight)

	s := float64(x) / float64(width)
	t := float64(y) / float64(height)

	dir := lowerLeft.
		Add(horizontal.Mul(s)).
		Add(vertical.Mul(t)).
		Sub(c.Eye)

	return NewRay(c.Eye, dir)
}

// ViewProjection returns the camera uniform for the meshed path.
func (c Camera) ViewProjection(aspect, near, far float32) mgl32.Mat4 {
	proj := mgl32.Perspective(mgl32.DegToRad(float32(c.Fov)), aspect, near, far)
	view := mgl32.LookAtV(
		mgl32.Vec3{float32(c.Eye.X()), float32(c.Eye.Y()), float32(c.Eye.Z())},
		mgl32.Vec3{float32(c.Target.X()), float32(c.Target.Y()), float32(c.Target.Z())},
		mgl32.Vec3{0, 1, 0},
	)
	return proj.Mul4(view)
}
