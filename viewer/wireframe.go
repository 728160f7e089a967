package viewer

import (
	"image/color"

	"github.com/akmonengine/orbit"
	"github.com/akmonengine/orbit/camera"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// unit cube centred on the origin
var cubeCorners = [8]mgl64.Vec3{
	{-0.5, -0.5, -0.5},
	{0.5, -0.5, -0.5},
	{0.5, 0.5, -0.5},
	{-0.5, 0.5, -0.5},
	{-0.5, -0.5, 0.5},
	{0.5, -0.5, 0.5},
	{0.5, 0.5, 0.5},
	{-0.5, 0.5, 0.5},
}

var cubeEdges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0}, // back
	{4, 5}, {5, 6}, {6, 7}, {7, 4}, // front
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// wireframe draws cube outlines onto an ebiten image, standing in for a shader program:
// it collects the uniforms and projects the mesh on DrawMesh.
type wireframe struct {
	screen   *ebiten.Image
	viewport camera.Viewport
	color    color.Color

	projection mgl64.Mat4
	view       mgl64.Mat4
	model      mgl64.Mat4
}

var _ orbit.Renderer = (*wireframe)(nil)

func (w *wireframe) SetMat4(name string, m mgl32.Mat4) {
	switch name {
	case orbit.UniformProjection:
		w.projection = mat4d(m)
	case orbit.UniformView:
		w.view = mat4d(m)
	case orbit.UniformModel:
		w.model = mat4d(m)
	}
}

func (w *wireframe) DrawMesh() {
	mvp := w.projection.Mul4(w.view).Mul4(w.model)

	var points [8][2]float32
	var visible [8]bool
	for i, corner := range cubeCorners {
		x, y, ok := camera.ToScreen(mvp.Mul4x1(corner.Vec4(1)), w.viewport)
		points[i] = [2]float32{float32(x), float32(y)}
		visible[i] = ok
	}

	for _, edge := range cubeEdges {
		a, b := edge[0], edge[1]
		// no clipping: edges crossing the eye plane are skipped
		if !visible[a] || !visible[b] {
			continue
		}
		vector.StrokeLine(w.screen, points[a][0], points[a][1], points[b][0], points[b][1], 1.5, w.color, true)
	}
}

func mat4d(m mgl32.Mat4) mgl64.Mat4 {
	var out mgl64.Mat4
	for i, v := range m {
		out[i] = float64(v)
	}
	return out
}
