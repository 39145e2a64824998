package main

import (
	"log"
	"path/filepath"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/pipescroller/common"
	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/entity"
	"github.com/milk9111/pipescroller/ecs/system"
	"github.com/milk9111/pipescroller/prefabs"
)

const tps = 60

type Game struct {
	sim      *entity.Simulation
	camera   *Camera
	renderer *renderer

	debug  bool
	paused bool
	quit   bool
	ui     *ebitenui.UI

	watcher    *prefabs.Watcher
	world      prefabs.WorldSpec
	transition prefabs.TransitionSpec
}

func NewGame(sim *entity.Simulation, ws prefabs.WorldSpec, ts prefabs.TransitionSpec, debug bool, watcher *prefabs.Watcher) *Game {
	camera := NewCamera(common.BaseWidth, common.BaseHeight)
	g := &Game{
		sim:        sim,
		camera:     camera,
		renderer:   &renderer{camera: camera, palette: newPalette(ws, ts)},
		debug:      debug,
		watcher:    watcher,
		world:      ws,
		transition: ts,
	}
	g.ui = NewPauseUI(g)
	return g
}

// Update ends the run loop with ebiten.Termination on quit.
func (g *Game) Update() error {
	if g.quit || exitRequested() {
		g.quit = true
		return ebiten.Termination
	}

	g.pollReload()

	in := pollInput()
	if in.Pause {
		g.paused = !g.paused
	}
	if g.paused {
		g.ui.Update()
		return nil
	}

	for _, evt := range g.sim.Step(1.0/tps, in) {
		g.handleEvent(evt)
	}

	snap := g.sim.Snapshot()
	g.camera.Follow(snap.Position.X+snap.Size.X/2, snap.Position.Y+snap.Size.Y/2)
	return nil
}

func (g *Game) handleEvent(evt ecs.Event) {
	if evt.Type == ecs.EventLevelLoaded {
		g.camera.Snap()
	}
	if !g.debug {
		return
	}
	switch data := evt.Data.(type) {
	case system.GateTriggered:
		log.Printf("game: %s from level %d (pipe %d)", evt.Type, data.Ordinal, data.Pipe)
	case system.CoinCollected:
		log.Printf("game: %s #%d, score %d", evt.Type, data.Index, data.Score)
	default:
		log.Printf("game: %s %v", evt.Type, evt.Data)
	}
}

// pollReload applies spec and level edits reported by the watcher without
// blocking the frame.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case path, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.reload(path)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: watch: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reload(path string) {
	if !prefabs.IsSpecFile(path) {
		if err := g.sim.ReloadLevel(); err != nil {
			log.Printf("game: reload level: %v", err)
		}
		log.Printf("game: reloaded level after %s changed", path)
		return
	}

	switch filepath.Base(path) {
	case "player.yaml":
		spec, err := prefabs.LoadPlayerSpec()
		if err == nil {
			err = g.sim.ApplyPlayerSpec(*spec)
		}
		if err != nil {
			log.Printf("game: reload %s: %v", path, err)
			return
		}
	case "world.yaml":
		spec, err := prefabs.LoadWorldSpec()
		if err == nil {
			err = g.sim.ApplyWorldSpec(*spec)
		}
		if err == nil {
			err = g.sim.ReloadLevel()
		}
		if err != nil {
			log.Printf("game: reload %s: %v", path, err)
			return
		}
		g.world = *spec
	case "transition.yaml":
		spec, err := prefabs.LoadTransitionSpec()
		if err == nil {
			err = g.sim.ApplyTransitionSpec(*spec)
		}
		if err != nil {
			log.Printf("game: reload %s: %v", path, err)
			return
		}
		g.transition = *spec
	default:
		return
	}
	g.renderer.palette = newPalette(g.world, g.transition)
	log.Printf("game: reloaded %s", path)
}

func (g *Game) Draw(screen *ebiten.Image) {
	if lvl, ok := g.sim.Level(); ok {
		score, _ := g.sim.Score()
		g.renderer.drawLevel(screen, lvl, score)
	}

	snap := g.sim.Snapshot()
	g.renderer.drawPlayer(screen, snap)
	g.renderer.drawFade(screen, snap.Alpha)
	g.renderer.drawHUD(screen, snap, g.debug)

	if g.paused {
		g.ui.Draw(screen)
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
