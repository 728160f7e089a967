package actor

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Elementary matrices. Literals are column-major: each line below is one column.

// Scale returns a diagonal scale matrix (s.x, s.y, s.z, 1)
func Scale(s mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Mat4{
		s.X(), 0, 0, 0,
		0, s.Y(), 0, 0,
		0, 0, s.Z(), 0,
		0, 0, 0, 1,
	}
}

// RotateX rotates about the X axis by r.x radians
func RotateX(r mgl64.Vec3) mgl64.Mat4 {
	sin, cos := math.Sincos(r.X())
	return mgl64.Mat4{
		1, 0, 0, 0,
		0, cos, sin, 0,
		0, -sin, cos, 0,
		0, 0, 0, 1,
	}
}

// RotateY rotates about the Y axis by r.y radians
func RotateY(r mgl64.Vec3) mgl64.Mat4 {
	sin, cos := math.Sincos(r.Y())
	return mgl64.Mat4{
		cos, 0, -sin, 0,
		0, 1, 0, 0,
		sin, 0, cos, 0,
		0, 0, 0, 1,
	}
}

// RotateZ rotates about the Z axis by r.z radians
func RotateZ(r mgl64.Vec3) mgl64.Mat4 {
	sin, cos := math.Sincos(r.Z())
	return mgl64.Mat4{
		cos, sin, 0, 0,
		-sin, cos, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Translate moves by p; the offset sits in the last column
func Translate(p mgl64.Vec3) mgl64.Mat4 {
	return mgl64.Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		p.X(), p.Y(), p.Z(), 1,
	}
}
