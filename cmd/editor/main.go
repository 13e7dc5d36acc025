package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spritestage/config"
)

func main() {
	configPath := flag.String("config", "", "Editor configuration YAML (defaults to the built-in config)")
	startDir := flag.String("dir", ".", "Directory the open and save prompts start in")
	debug := flag.Bool("debug", false, "Show TPS and object count over the canvas")
	flag.Parse()

	log.Println("Editor starting...")
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	editor, err := NewEditor(cfg, *startDir)
	if err != nil {
		log.Fatalf("Failed to create editor: %v", err)
	}
	editor.debug = *debug

	// Images passed on the command line are added in order, as if picked one by one.
	for _, path := range flag.Args() {
		editor.addSprite(path)
	}

	w, h := editor.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Sprite Stage")
	// log.Fatal skips deferred calls, so the watcher is closed here.
	err = ebiten.RunGame(editor)
	editor.Close()
	if err != nil {
		log.Fatal(err)
	}
}
