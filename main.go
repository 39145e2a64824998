package main

import (
	"flag"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pipescroller/common"
	"github.com/milk9111/pipescroller/ecs/entity"
	"github.com/milk9111/pipescroller/levels"
	"github.com/milk9111/pipescroller/prefabs"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	level := flag.Int("level", levels.FallbackOrdinal, "level ordinal to start on")
	watch := flag.Bool("watch", false, "reload prefabs/ and levels/ edits while running")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	cfg := entity.DefaultConfig()
	cfg.StartLevel = *level
	cfg.Levels = levels.NewProvider("levels")
	cfg.Player = loadOr(prefabs.LoadPlayerSpec, prefabs.DefaultPlayerSpec())
	cfg.World = loadOr(prefabs.LoadWorldSpec, prefabs.DefaultWorldSpec())
	cfg.Transition = loadOr(prefabs.LoadTransitionSpec, prefabs.DefaultTransitionSpec())

	sim, err := entity.NewSimulation(cfg)
	if err != nil {
		log.Fatal(err)
	}

	var watcher *prefabs.Watcher
	if *watch {
		dirs := append(prefabs.WatchDirs(), existingDirs("levels")...)
		if len(dirs) == 0 {
			log.Printf("main: -watch set but no prefabs/ or levels/ directory to watch")
		} else if watcher, err = prefabs.NewWatcher(dirs...); err != nil {
			log.Printf("main: watch disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(common.BaseWidth, common.BaseHeight)
	ebiten.SetWindowTitle("pipescroller")
	ebiten.SetTPS(tps)

	game := NewGame(sim, cfg.World, cfg.Transition, *debug, watcher)
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// loadOr returns the loaded spec, or fallback when it is missing or invalid.
func loadOr[T any](load func() (*T, error), fallback T) T {
	spec, err := load()
	if err != nil {
		log.Printf("main: %v; using defaults", err)
		return fallback
	}
	return *spec
}

func existingDirs(dirs ...string) []string {
	var out []string
	for _, d := range dirs {
		if info, err := os.Stat(d); err == nil && info.IsDir() {
			out = append(out, d)
		}
	}
	return out
}
