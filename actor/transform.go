package actor

import "github.com/go-gl/mathgl/mgl64"

// Transform represents the placement of a mesh in world space.
// Rotation holds one angle per axis, in radians.
type Transform struct {
	Position mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    mgl64.Vec3
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl64.Vec3{0, 0, 0},
		Rotation: mgl64.Vec3{0, 0, 0},
		Scale:    mgl64.Vec3{1, 1, 1},
	}
}

// ModelMatrix returns T * Rx * Ry * Rz * S.
// Points are column vectors, so the scale is applied first and the translation last.
func (t Transform) ModelMatrix() mgl64.Mat4 {
	model := mgl64.Ident4()

	model = model.Mul4(Translate(t.Position))
	model = model.Mul4(RotateX(t.Rotation))
	model = model.Mul4(RotateY(t.Rotation))
	model = model.Mul4(RotateZ(t.Rotation))
	model = model.Mul4(Scale(t.Scale))

	return model
}
