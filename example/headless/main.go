package main

import (
	"flag"
	"fmt"

	"github.com/akmonengine/orbit"
	"github.com/akmonengine/orbit/config"
	"github.com/go-gl/mathgl/mgl32"
)

// PrintRenderer prints the uniforms it receives instead of drawing
type PrintRenderer struct {
	draws int
}

func (r *PrintRenderer) SetMat4(name string, m mgl32.Mat4) {
	if name != orbit.UniformModel && r.draws > 0 {
		// projection and view are shared by every cube of a frame
		return
	}
	fmt.Printf("   %s:\n", name)
	for row := 0; row < 4; row++ {
		v := m.Row(row)
		fmt.Printf("      [% 9.4f % 9.4f % 9.4f % 9.4f]\n", v[0], v[1], v[2], v[3])
	}
}

func (r *PrintRenderer) DrawMesh() {
	r.draws++
	fmt.Printf("   -> cube %d drawn\n", r.draws)
}

// SetupScene builds the scene from the default settings and the given seed
func SetupScene(seed uint64) *orbit.Scene {
	settings := config.Default()
	settings.Seed = seed

	scene := orbit.NewScene(settings)
	scene.Events.Subscribe(orbit.PROJECTION_SWITCHED, func(event orbit.Event) {
		e := event.(orbit.ProjectionSwitchedEvent)
		fmt.Printf("📷 projection switched (orthographic=%v)\n", e.Orthographic)
	})

	return scene
}

func main() {
	seed := flag.Uint64("seed", 1, "cube layout seed")
	frames := flag.Int("frames", 3, "number of frames to step")
	dt := flag.Float64("dt", 1.0/60.0, "seconds between frames")
	flag.Parse()

	scene := SetupScene(*seed)

	fmt.Println("🧪 Orbiting camera, headless")
	fmt.Println("============================")
	for i, tr := range scene.Transforms {
		fmt.Printf("  Cube %d: position %v rotation %v scale %v\n", i+1, tr.Position, tr.Rotation, tr.Scale)
	}
	fmt.Println()

	for step := 0; step < *frames; step++ {
		t := float64(step) * *dt
		// flip the projection half way through, like the panel toggle
		scene.Settings.Orthographic = step >= *frames/2 && *frames > 1

		scene.Step(t)

		fmt.Printf("--- FRAME %d (t=%.4fs) ---\n", step+1, t)
		fmt.Printf("  Camera position: %v\n", scene.Camera.Position)
		scene.Render(&PrintRenderer{})
		fmt.Println()
	}
}
