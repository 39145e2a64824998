package entity

import (
	"fmt"
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
	"github.com/milk9111/pipescroller/levels"
	"github.com/milk9111/pipescroller/prefabs"
)

// maxBlocks caps how many tiles one level may expand into.
const maxBlocks = 1 << 16

// tiles is how many steps of size tile cover extent.
func tiles(extent, tile float64) int {
	n := math.Ceil(extent / tile)
	if !(n > 0) {
		return 0
	}
	if n > maxBlocks {
		return maxBlocks + 1
	}
	return int(n)
}

// LevelSource hands out level data by ordinal and never fails.
type LevelSource interface {
	LoadOrFallback(ordinal int) (*levels.Level, bool)
}

// BuildLevel turns authored data into a runtime level. Ground rectangles
// are cut into tiles of ws.TileSize, stepping from each rectangle's corner.
func BuildLevel(data *levels.Level, ordinal int, ws prefabs.WorldSpec) component.Level {
	tile := ws.TileSize
	if tile <= 0 {
		tile = prefabs.DefaultWorldSpec().TileSize
	}
	lvl := component.Level{
		Ordinal:    ordinal,
		Underwater: data.Underwater,
		TileSize:   tile,
		Start:      cp.Vector{X: ws.Start.X, Y: ws.Start.Y},
	}
	if data.Start != nil {
		lvl.Start = cp.Vector{X: data.Start.X, Y: data.Start.Y}
	}

	for _, r := range data.Ground {
		nx, ny := tiles(r.W, tile), tiles(r.H, tile)
		if nx*ny > maxBlocks-len(lvl.Blocks) {
			log.Printf("level: ground at %v,%v needs %d tiles, skipping", r.X, r.Y, nx*ny)
			continue
		}
		for i := 0; i < nx; i++ {
			x := r.X + float64(i)*tile
			for j := 0; j < ny; j++ {
				y := r.Y + float64(j)*tile
				lvl.Blocks = append(lvl.Blocks, component.Block{Bounds: component.RectBB(x, y, tile, tile)})
			}
		}
	}

	for _, r := range data.DeathZones {
		lvl.DeathZones = append(lvl.DeathZones, component.RectBB(r.X, r.Y, r.W, r.H))
	}

	for _, p := range data.Pipes {
		orientation := component.PipeEntersDownward
		if p.EntersUpward() {
			orientation = component.PipeEntersUpward
		}
		lvl.Pipes = append(lvl.Pipes, component.Pipe{
			Bounds:      component.RectBB(p.X, p.Y, ws.Pipe.Width, ws.Pipe.Height),
			Orientation: orientation,
		})
	}

	if data.Flag != nil {
		lvl.Flag = &component.Flag{Bounds: component.RectBB(data.Flag.X, data.Flag.Y, ws.Flag.Width, ws.Flag.Height)}
	}

	for _, c := range data.Coins {
		lvl.Coins = append(lvl.Coins, component.Coin{
			Bounds: component.RectBB(c.X, c.Y, ws.Coin.Width, ws.Coin.Height),
			Value:  ws.Coin.Value,
		})
	}

	return lvl
}

// LevelLoader owns the swap of the world's single level entity.
type LevelLoader struct {
	source LevelSource
	spec   prefabs.WorldSpec
}

func NewLevelLoader(source LevelSource, spec prefabs.WorldSpec) *LevelLoader {
	return &LevelLoader{source: source, spec: spec}
}

func (l *LevelLoader) SetWorldSpec(spec prefabs.WorldSpec) {
	l.spec = spec
}

func (l *LevelLoader) WorldSpec() prefabs.WorldSpec {
	return l.spec
}

// Load replaces the current level with ordinal. The old level entity is
// destroyed before the new one exists, so at most one level is ever live.
// Every player is moved to the new start at rest, airborne, with its
// pending intent and score cleared.
func (l *LevelLoader) Load(w *ecs.World, ordinal int) (ecs.Entity, error) {
	data, fallback := l.source.LoadOrFallback(ordinal)
	lvl := BuildLevel(data, ordinal, l.spec)
	lvl.Fallback = fallback
	if fallback {
		log.Printf("level: no data for level %d, using fallback layout", ordinal)
	}

	for _, old := range w.Query(component.LevelTagComponent.Kind()) {
		w.DestroyEntity(old)
	}

	entity := w.CreateEntity()
	if err := ecs.Add(w, entity, component.LevelTagComponent.Kind(), &component.LevelTag{}); err != nil {
		return 0, fmt.Errorf("level: failed to add level tag: %w", err)
	}
	if err := ecs.Add(w, entity, component.LevelComponent.Kind(), &lvl); err != nil {
		return 0, fmt.Errorf("level: failed to add level component: %w", err)
	}

	for _, p := range w.Query(component.PlayerTagComponent.Kind()) {
		placePlayer(w, p, &lvl)
	}

	w.Events().Push(ecs.Event{Type: ecs.EventLevelLoaded, Data: ordinal})
	return entity, nil
}

// Advance loads the level after the current one.
func (l *LevelLoader) Advance(w *ecs.World) (ecs.Entity, error) {
	next := levels.FallbackOrdinal
	if _, cur, ok := ecs.Single(w, component.LevelComponent.Kind()); ok {
		next = cur.Ordinal + 1
	}
	return l.Load(w, next)
}

func placePlayer(w *ecs.World, e ecs.Entity, lvl *component.Level) {
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		t.X = lvl.Start.X
		t.Y = lvl.Start.Y
	}
	if v, ok := ecs.Get(w, e, component.VelocityComponent.Kind()); ok {
		*v = component.Velocity{}
	}
	if ch, ok := ecs.Get(w, e, component.CharacterComponent.Kind()); ok {
		ch.Grounded = false
		ch.Underwater = lvl.Underwater
	}
	if intent, ok := ecs.Get(w, e, component.IntentComponent.Kind()); ok {
		*intent = component.Intent{}
	}
	if score, ok := ecs.Get(w, e, component.ScoreComponent.Kind()); ok {
		score.Reset()
	}
}
