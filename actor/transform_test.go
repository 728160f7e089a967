package actor

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func vec3Equal(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance &&
		math.Abs(a.Z()-b.Z()) < tolerance
}

func mat4Equal(a, b mgl64.Mat4, tolerance float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tolerance {
			return false
		}
	}
	return true
}

// transformPoint applies m to p as a point (w = 1)
func transformPoint(m mgl64.Mat4, p mgl64.Vec3) mgl64.Vec3 {
	return m.Mul4x1(p.Vec4(1)).Vec3()
}

// =============================================================================
// Elementary matrix Tests
// =============================================================================

func TestElementaryMatrices_MatchMathgl(t *testing.T) {
	r := mgl64.Vec3{0.3, -1.2, 2.5}

	tests := []struct {
		name string
		got  mgl64.Mat4
		want mgl64.Mat4
	}{
		{"rotate X", RotateX(r), mgl64.HomogRotate3DX(r.X())},
		{"rotate Y", RotateY(r), mgl64.HomogRotate3DY(r.Y())},
		{"rotate Z", RotateZ(r), mgl64.HomogRotate3DZ(r.Z())},
		{"translate", Translate(mgl64.Vec3{1, 2, 3}), mgl64.Translate3D(1, 2, 3)},
		{"scale", Scale(mgl64.Vec3{2, 3, 4}), mgl64.Scale3D(2, 3, 4)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !mat4Equal(tt.got, tt.want, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRotate_UsesOwnAxisComponent(t *testing.T) {
	// Only the Z component is set: X and Y rotations must stay identity
	r := mgl64.Vec3{0, 0, math.Pi / 3}

	if !mat4Equal(RotateX(r), mgl64.Ident4(), 1e-12) {
		t.Errorf("RotateX should ignore r.z, got %v", RotateX(r))
	}
	if !mat4Equal(RotateY(r), mgl64.Ident4(), 1e-12) {
		t.Errorf("RotateY should ignore r.z, got %v", RotateY(r))
	}
	if mat4Equal(RotateZ(r), mgl64.Ident4(), 1e-12) {
		t.Error("RotateZ should rotate")
	}
}

func TestRotateZ_QuarterTurn(t *testing.T) {
	got := transformPoint(RotateZ(mgl64.Vec3{0, 0, math.Pi / 2}), mgl64.Vec3{1, 0, 0})
	want := mgl64.Vec3{0, 1, 0}

	if !vec3Equal(got, want, 1e-12) {
		t.Errorf("RotateZ(90°) * (1,0,0) = %v, want %v", got, want)
	}
}

func TestRotate_QuarterTurnAxes(t *testing.T) {
	half := math.Pi / 2

	tests := []struct {
		name  string
		m     mgl64.Mat4
		point mgl64.Vec3
		want  mgl64.Vec3
	}{
		{"X maps Y to Z", RotateX(mgl64.Vec3{half, 0, 0}), mgl64.Vec3{0, 1, 0}, mgl64.Vec3{0, 0, 1}},
		{"Y maps Z to X", RotateY(mgl64.Vec3{0, half, 0}), mgl64.Vec3{0, 0, 1}, mgl64.Vec3{1, 0, 0}},
		{"Z maps X to Y", RotateZ(mgl64.Vec3{0, 0, half}), mgl64.Vec3{1, 0, 0}, mgl64.Vec3{0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := transformPoint(tt.m, tt.point)
			if !vec3Equal(got, tt.want, 1e-12) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

// =============================================================================
// ModelMatrix Tests
// =============================================================================

func TestNewTransform_Defaults(t *testing.T) {
	tr := NewTransform()

	if tr.Position != (mgl64.Vec3{0, 0, 0}) {
		t.Errorf("Position = %v, want origin", tr.Position)
	}
	if tr.Rotation != (mgl64.Vec3{0, 0, 0}) {
		t.Errorf("Rotation = %v, want zero", tr.Rotation)
	}
	if tr.Scale != (mgl64.Vec3{1, 1, 1}) {
		t.Errorf("Scale = %v, want (1,1,1)", tr.Scale)
	}
	if !mat4Equal(tr.ModelMatrix(), mgl64.Ident4(), 1e-15) {
		t.Errorf("ModelMatrix() = %v, want identity", tr.ModelMatrix())
	}
}

func TestModelMatrix_PureTranslation(t *testing.T) {
	tests := []struct {
		name     string
		position mgl64.Vec3
	}{
		{"positive", mgl64.Vec3{1, 2, 3}},
		{"negative", mgl64.Vec3{-4, -0.5, -7}},
		{"origin", mgl64.Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform()
			tr.Position = tt.position

			want := mgl64.Translate3D(tt.position.X(), tt.position.Y(), tt.position.Z())
			if got := tr.ModelMatrix(); !mat4Equal(got, want, 1e-15) {
				t.Errorf("ModelMatrix() = %v, want %v", got, want)
			}
		})
	}
}

func TestModelMatrix_PureScale(t *testing.T) {
	tests := []struct {
		name  string
		scale mgl64.Vec3
	}{
		{"uniform", mgl64.Vec3{3, 3, 3}},
		{"non uniform", mgl64.Vec3{1, 2, 5}},
		{"degenerate zero", mgl64.Vec3{0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewTransform()
			tr.Scale = tt.scale

			got := tr.ModelMatrix()
			want := mgl64.Diag4(tt.scale.Vec4(1))
			if !mat4Equal(got, want, 1e-15) {
				t.Errorf("ModelMatrix() = %v, want %v", got, want)
			}
		})
	}
}

func TestModelMatrix_CompositionOrder(t *testing.T) {
	tr := Transform{
		Position: mgl64.Vec3{1, -2, 3},
		Rotation: mgl64.Vec3{0.4, 1.1, -2.3},
		Scale:    mgl64.Vec3{2, 0.5, 3},
	}

	want := mgl64.Translate3D(1, -2, 3).
		Mul4(mgl64.HomogRotate3DX(0.4)).
		Mul4(mgl64.HomogRotate3DY(1.1)).
		Mul4(mgl64.HomogRotate3DZ(-2.3)).
		Mul4(mgl64.Scale3D(2, 0.5, 3))

	if got := tr.ModelMatrix(); !mat4Equal(got, want, 1e-12) {
		t.Errorf("ModelMatrix() = %v, want %v", got, want)
	}
}

func TestModelMatrix_ScaleBeforeRotateBeforeTranslate(t *testing.T) {
	tr := Transform{
		Position: mgl64.Vec3{10, 0, 0},
		Rotation: mgl64.Vec3{0, 0, math.Pi / 2},
		Scale:    mgl64.Vec3{2, 2, 2},
	}

	// (1,0,0) -> scale (2,0,0) -> rotate (0,2,0) -> translate (10,2,0)
	got := transformPoint(tr.ModelMatrix(), mgl64.Vec3{1, 0, 0})
	want := mgl64.Vec3{10, 2, 0}

	if !vec3Equal(got, want, 1e-12) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestModelMatrix_KeepsOriginAtPosition(t *testing.T) {
	tr := Transform{
		Position: mgl64.Vec3{3, 4, 5},
		Rotation: mgl64.Vec3{7, 8, 9},
		Scale:    mgl64.Vec3{4, 4, 4},
	}

	got := transformPoint(tr.ModelMatrix(), mgl64.Vec3{0, 0, 0})
	if !vec3Equal(got, tr.Position, 1e-12) {
		t.Errorf("origin mapped to %v, want %v", got, tr.Position)
	}
}
