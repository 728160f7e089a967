package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/akmonengine/orbit"
	"github.com/akmonengine/orbit/config"
	"github.com/akmonengine/orbit/inspect"
	"github.com/akmonengine/orbit/viewer"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "settings YAML file, reloaded on change")
	seed := flag.Uint64("seed", 0, "cube layout seed (0 picks one from the clock)")
	inspectAddr := flag.String("inspect", "", "serve frames over websocket on this address, e.g. :8080")
	flag.Parse()

	settings := config.Default()
	var options viewer.Options

	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		settings = loaded

		watcher, err := config.Watch(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		defer watcher.Close()
		options.Reloads = watcher.Settings

		go func() {
			for err := range watcher.Errors {
				log.Printf("config: %v", err)
			}
		}()
	}

	if *seed != 0 {
		settings.Seed = *seed
	}
	if settings.Seed == 0 {
		settings.Seed = uint64(time.Now().UnixNano())
	}
	log.Printf("cube layout seed %d", settings.Seed)

	if *inspectAddr != "" {
		server := inspect.NewServer()
		options.Inspector = server
		go func() {
			if err := server.ListenAndServe(*inspectAddr); err != nil {
				log.Printf("%v", err)
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			server.Shutdown(ctx)
		}()
	}

	scene := orbit.NewScene(settings)

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle("Transformations")

	if err := ebiten.RunGame(viewer.NewGame(scene, options)); err != nil {
		log.Fatal(err)
	}
}
