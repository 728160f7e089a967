package orbit

import (
	"encoding/json"
	"math"

	"github.com/akmonengine/orbit/actor"
	"github.com/akmonengine/orbit/camera"
	"github.com/akmonengine/orbit/config"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

const DEFAULT_WORKERS = 1

// Uniform names set on the Renderer for every drawn cube
const (
	UniformProjection = "_Projection"
	UniformView       = "_View"
	UniformModel      = "_Model"
)

// Renderer receives the matrices of each cube and draws one mesh per call to DrawMesh
type Renderer interface {
	SetMat4(name string, m mgl32.Mat4)
	DrawMesh()
}

// Frame holds the matrices of one frame
type Frame struct {
	Time         float64         `json:"time"`
	Orthographic bool            `json:"orthographic"`
	Viewport     camera.Viewport `json:"viewport"`
	Projection   mgl64.Mat4      `json:"projection"`
	View         mgl64.Mat4      `json:"view"`
	Models       []mgl64.Mat4    `json:"models"`
}

// MarshalJSON writes non-finite matrix entries as null. A degenerate camera
// (zero field of view, radius or height) yields Inf and NaN, which JSON cannot encode.
func (f Frame) MarshalJSON() ([]byte, error) {
	models := make([][16]*float64, len(f.Models))
	for i, m := range f.Models {
		models[i] = finiteEntries(m)
	}

	return json.Marshal(struct {
		Time         float64         `json:"time"`
		Orthographic bool            `json:"orthographic"`
		Viewport     camera.Viewport `json:"viewport"`
		Projection   [16]*float64    `json:"projection"`
		View         [16]*float64    `json:"view"`
		Models       [][16]*float64  `json:"models"`
	}{
		Time:         f.Time,
		Orthographic: f.Orthographic,
		Viewport:     f.Viewport,
		Projection:   finiteEntries(f.Projection),
		View:         finiteEntries(f.View),
		Models:       models,
	})
}

func finiteEntries(m mgl64.Mat4) [16]*float64 {
	var out [16]*float64
	for i := range m {
		if math.IsNaN(m[i]) || math.IsInf(m[i], 0) {
			continue
		}
		out[i] = &m[i]
	}
	return out
}

// Scene is a set of cubes watched by a camera orbiting the origin.
// It is not safe for concurrent use: settings edits, resizes and Step
// all happen on the frame loop goroutine.
type Scene struct {
	Camera     camera.Camera
	Transforms []actor.Transform
	Settings   config.Settings
	Viewport   camera.Viewport
	// Time of the last Step, in seconds
	Time    float64
	Workers int

	Events Events
}

// NewScene lays out settings.Cubes cubes from settings.Seed
func NewScene(settings config.Settings) *Scene {
	s := &Scene{
		Camera:     camera.NewCamera(),
		Transforms: actor.RandomTransforms(settings.Seed, settings.Cubes),
		Settings:   settings,
		Viewport: camera.Viewport{
			Width:  settings.Width,
			Height: settings.Height,
			Near:   settings.Near,
			Far:    settings.Far,
		},
		Workers: DEFAULT_WORKERS,
		Events:  NewEvents(),
	}
	s.syncCamera()

	return s
}

// Step advances the scene to t seconds: the camera moves along its orbit and picks up
// the current settings. Buffered events are delivered at the end of the step.
func (s *Scene) Step(t float64) {
	s.Time = t
	s.Camera.Orbit(s.Settings.OrbitRadius, s.Settings.OrbitSpeed, t)

	if s.Camera.Orthographic != s.Settings.Orthographic {
		s.Events.emit(ProjectionSwitchedEvent{Orthographic: s.Settings.Orthographic})
	}
	s.syncCamera()

	s.Events.flush()
}

func (s *Scene) syncCamera() {
	s.Camera.Fov = s.Settings.FieldOfView
	s.Camera.OrthographicSize = s.Settings.OrthographicHeight
	s.Camera.Orthographic = s.Settings.Orthographic
}

// Resize records a new framebuffer size. Non-positive sizes (minimised window) are ignored.
func (s *Scene) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == s.Viewport.Width && height == s.Viewport.Height {
		return
	}

	s.Events.emit(ViewportResizedEvent{
		Width:          width,
		Height:         height,
		PreviousWidth:  s.Viewport.Width,
		PreviousHeight: s.Viewport.Height,
	})
	s.Viewport.Width = width
	s.Viewport.Height = height
}

// Apply replaces the settings. The window size stays under Resize's control;
// a new seed or cube count lays the cubes out again. A zero seed keeps the current one.
func (s *Scene) Apply(settings config.Settings) {
	previous := s.Settings
	if settings.Seed == 0 {
		settings.Seed = previous.Seed
	}

	s.Settings = settings
	s.Viewport.Near = settings.Near
	s.Viewport.Far = settings.Far

	if settings.Seed != previous.Seed || settings.Cubes != previous.Cubes {
		s.Transforms = actor.RandomTransforms(settings.Seed, settings.Cubes)
	}

	s.Events.emit(SettingsChangedEvent{Previous: previous, Current: settings})
}

// Frame computes the projection, the shared view and one model matrix per cube
func (s *Scene) Frame() Frame {
	workers := max(DEFAULT_WORKERS, s.Workers)

	frame := Frame{
		Time:         s.Time,
		Orthographic: s.Camera.Orthographic,
		Viewport:     s.Viewport,
		Projection:   s.Camera.ProjectionMatrix(s.Viewport),
		View:         s.Camera.ViewMatrix(),
		Models:       make([]mgl64.Mat4, len(s.Transforms)),
	}

	task(workers, s.Transforms, func(i int, transform actor.Transform) {
		frame.Models[i] = transform.ModelMatrix()
	})

	return frame
}

// Render hands every cube's matrices to r and draws it. It returns the frame it rendered.
func (s *Scene) Render(r Renderer) Frame {
	frame := s.Frame()

	projection := Mat4f(frame.Projection)
	view := Mat4f(frame.View)

	for _, model := range frame.Models {
		r.SetMat4(UniformProjection, projection)
		r.SetMat4(UniformView, view)
		r.SetMat4(UniformModel, Mat4f(model))
		r.DrawMesh()
	}

	return frame
}

// Mat4f converts a matrix to float32 for shader uniforms
func Mat4f(m mgl64.Mat4) mgl32.Mat4 {
	var out mgl32.Mat4
	for i, v := range m {
		out[i] = float32(v)
	}
	return out
}
