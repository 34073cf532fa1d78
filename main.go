package main

import (
	"errors"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/heart-particles/internal/audio"
	"github.com/iburimskiy/heart-particles/internal/config"
	"github.com/iburimskiy/heart-particles/internal/game"
	"github.com/iburimskiy/heart-particles/internal/logging"
)

func main() {
	var (
		contentPath = flag.String("content", "", "page content YAML (default: built-in page)")
		musicPath   = flag.String("music", "", "background music file, overrides the page's track")
		pickMusic   = flag.Bool("pick-music", false, "choose the background music in a file dialog")
		debug       = flag.Bool("debug", false, "verbose logging")
		width       = flag.Int("width", config.WindowWidth, "window width")
		height      = flag.Int("height", config.WindowHeight, "window height")
	)
	flag.Parse()

	log := logging.New("heart", *debug)

	page, err := config.LoadPage(*contentPath)
	if err != nil {
		log.Errorf("load page: %v", err)
		os.Exit(1)
	}

	track := page.Music.Path
	if *musicPath != "" {
		track = *musicPath
	}
	if *pickMusic {
		picked, err := audio.PickTrack()
		if err != nil {
			log.Warnf("music dialog: %v", err)
		} else if picked != "" {
			log.Infof("chose %s", picked)
			track = picked
		}
	}

	g, err := game.New(game.Options{
		Page:   page,
		Player: audio.NewTrack(track, page.Music.Volume, page.Music.Loop, log),
		Log:    log,
		Width:  *width,
		Height: *height,
	})
	if err != nil {
		log.Errorf("start: %v", err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle(page.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetCursorMode(ebiten.CursorModeHidden)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Errorf("run: %v", err)
		os.Exit(1)
	}
}
