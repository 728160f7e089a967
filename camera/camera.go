package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// WorldUp is the up hint used to build the view basis
var WorldUp = mgl64.Vec3{0, 1, 0}

// Viewport holds the framebuffer size and the clipping distances
type Viewport struct {
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Near   float64 `json:"near"`
	Far    float64 `json:"far"`
}

// DefaultViewport returns a 1080x720 viewport clipping at [0.1, 50]
func DefaultViewport() Viewport {
	return Viewport{
		Width:  1080,
		Height: 720,
		Near:   0.1,
		Far:    50,
	}
}

// Camera looks from Position towards Target.
// Fov is in degrees and only used in perspective mode;
// OrthographicSize is the vertical extent of the orthographic volume.
type Camera struct {
	Position         mgl64.Vec3
	Target           mgl64.Vec3
	Fov              float64
	OrthographicSize float64
	Orthographic     bool
}

// NewCamera creates a perspective camera at (0,0,5) looking at the origin
func NewCamera() Camera {
	return Camera{
		Position: mgl64.Vec3{0, 0, 5},
		Target:   mgl64.Vec3{0, 0, 0},
	}
}

// ViewMatrix builds the world to view transform.
// Position must differ from Target, and the line of sight must not be parallel to WorldUp.
func (c Camera) ViewMatrix() mgl64.Mat4 {
	forward := c.Position.Sub(c.Target).Normalize()
	right := WorldUp.Cross(forward).Normalize()
	up := forward.Cross(right)

	// rows are right, up, forward
	rotation := mgl64.Mat4{
		right.X(), up.X(), forward.X(), 0,
		right.Y(), up.Y(), forward.Y(), 0,
		right.Z(), up.Z(), forward.Z(), 0,
		0, 0, 0, 1,
	}

	translation := mgl64.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		-c.Position.X(), -c.Position.Y(), -c.Position.Z(), 1,
	}

	return rotation.Mul4(translation)
}

// ProjectionMatrix returns Ortho or Perspective depending on the camera mode
func (c Camera) ProjectionMatrix(vp Viewport) mgl64.Mat4 {
	if c.Orthographic {
		return c.Ortho(vp)
	}

	return c.Perspective(vp)
}

// Ortho builds an OpenGL orthographic projection of height OrthographicSize.
// The width is OrthographicSize * height/width.
func (c Camera) Ortho(vp Viewport) mgl64.Mat4 {
	n, f := vp.Near, vp.Far

	w := c.OrthographicSize * (float64(vp.Height) / float64(vp.Width))
	r := w / 2
	t := c.OrthographicSize / 2
	l := -r
	b := -t

	return mgl64.Mat4{
		2 / (r - l), 0, 0, 0,
		0, 2 / (t - b), 0, 0,
		0, 0, -2 / (f - n), 0,
		-(r + l) / (r - l), -(t + b) / (t - b), -(f + n) / (f - n), 1,
	}
}

// Perspective builds an OpenGL perspective projection with a vertical field of view of Fov degrees.
// The aspect term is height/width.
func (c Camera) Perspective(vp Viewport) mgl64.Mat4 {
	n, f := vp.Near, vp.Far

	tanHalf := math.Tan(mgl64.DegToRad(c.Fov) / 2)
	aspect := float64(vp.Height) / float64(vp.Width)

	return mgl64.Mat4{
		1 / (aspect * tanHalf), 0, 0, 0,
		0, 1 / tanHalf, 0, 0,
		0, 0, -(f + n) / (f - n), -1,
		0, 0, -(2 * f * n) / (f - n), 0,
	}
}
