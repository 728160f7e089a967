// Package viewer opens the orbiting cube scene in an ebiten window, with a settings
// panel drawn by ebitenui. Cubes are drawn as wireframes from the scene's matrices.
package viewer

import (
	"image/color"
	"log"
	"time"

	"github.com/akmonengine/orbit"
	"github.com/akmonengine/orbit/config"
	"github.com/akmonengine/orbit/inspect"
	"github.com/hajimehoshi/ebiten/v2"
)

var lineColor = color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}

// Options wires the optional collaborators of the game
type Options struct {
	// Reloads delivers settings read from disk, usually config.Watcher.Settings
	Reloads <-chan config.Settings
	// Inspector receives every rendered frame when set
	Inspector *inspect.Server
}

// Game implements ebiten.Game for a scene
type Game struct {
	scene   *orbit.Scene
	panel   *panel
	options Options
	start   time.Time
}

var _ ebiten.Game = (*Game)(nil)

func NewGame(scene *orbit.Scene, options Options) *Game {
	return &Game{
		scene:   scene,
		panel:   newPanel(&scene.Settings),
		options: options,
		start:   time.Now(),
	}
}

// Update runs one frame: reloaded settings first, then panel edits, then the scene step
func (g *Game) Update() error {
	g.drainReloads()

	g.panel.ui.Update()
	g.scene.Step(time.Since(g.start).Seconds())

	return nil
}

func (g *Game) drainReloads() {
	if g.options.Reloads == nil {
		return
	}
	for {
		select {
		case settings, ok := <-g.options.Reloads:
			if !ok {
				g.options.Reloads = nil
				return
			}
			g.scene.Apply(settings)
			g.panel.refresh()
			log.Printf("viewer: settings reloaded")
		default:
			return
		}
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	bg := g.scene.Settings.Background
	screen.Fill(color.NRGBA{R: channel(bg[0]), G: channel(bg[1]), B: channel(bg[2]), A: 0xff})

	frame := g.scene.Render(&wireframe{
		screen:   screen,
		viewport: g.scene.Viewport,
		color:    lineColor,
	})

	if g.options.Inspector != nil {
		if err := g.options.Inspector.Broadcast(frame); err != nil {
			log.Printf("viewer: %v", err)
		}
	}

	g.panel.ui.Draw(screen)
}

// Layout forwards the window size to the scene; the screen is never scaled
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Resize(outsideWidth, outsideHeight)
	return max(outsideWidth, 1), max(outsideHeight, 1)
}

func channel(v float64) uint8 {
	return uint8(min(max(v, 0), 1)*255 + 0.5)
}
