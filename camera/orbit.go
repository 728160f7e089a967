package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// OrbitPosition returns the point of a horizontal circle of the given radius at height y,
// swept at speed radians per second. At t = 0 it lies on +Z.
func OrbitPosition(radius, speed, t, y float64) mgl64.Vec3 {
	sin, cos := math.Sincos(speed * t)
	return mgl64.Vec3{radius * sin, y, radius * cos}
}

// Orbit moves the camera along its orbit, keeping its current height
func (c *Camera) Orbit(radius, speed, t float64) {
	c.Position = OrbitPosition(radius, speed, t, c.Position.Y())
}

// ToScreen maps a clip-space position to pixel coordinates, y pointing down.
// ok is false when the point is behind the eye, or when w is NaN.
func ToScreen(clip mgl64.Vec4, vp Viewport) (x, y float64, ok bool) {
	if !(clip.W() > 0) {
		return 0, 0, false
	}

	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()

	x = (ndcX + 1) / 2 * float64(vp.Width)
	y = (1 - ndcY) / 2 * float64(vp.Height)

	return x, y, true
}
