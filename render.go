package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/pipescroller/ecs/component"
	"github.com/milk9111/pipescroller/ecs/entity"
	"github.com/milk9111/pipescroller/prefabs"
	"golang.org/x/image/colornames"
)

type palette struct {
	sky, water, block, pipe, flag, coin, player, hazard color.Color
	fade                                                color.Color
}

func newPalette(ws prefabs.WorldSpec, ts prefabs.TransitionSpec) palette {
	p := ws.Palette
	return palette{
		sky:    p.Sky.Or(colornames.Cornflowerblue),
		water:  p.Water.Or(colornames.Midnightblue),
		block:  p.Block.Or(colornames.Saddlebrown),
		pipe:   p.Pipe.Or(colornames.Seagreen),
		flag:   p.Flag.Or(colornames.White),
		coin:   p.Coin.Or(colornames.Gold),
		player: p.Player.Or(colornames.Crimson),
		hazard: p.Hazard.Or(colornames.Darkred),
		fade:   ts.Color.Or(colornames.Black),
	}
}

type renderer struct {
	camera  *Camera
	palette palette
}

func (r *renderer) fillBB(screen *ebiten.Image, bb cp.BB, clr color.Color) {
	x, y := r.camera.Project(bb.L, bb.B, bb.T-bb.B)
	vector.FillRect(screen, float32(x), float32(y), float32(bb.R-bb.L), float32(bb.T-bb.B), clr, false)
}

func (r *renderer) drawLevel(screen *ebiten.Image, lvl *component.Level, score *component.Score) {
	if lvl.Underwater {
		screen.Fill(r.palette.water)
	} else {
		screen.Fill(r.palette.sky)
	}

	for _, b := range lvl.Blocks {
		r.fillBB(screen, b.Bounds, r.palette.block)
		x, y := r.camera.Project(b.Bounds.L, b.Bounds.B, b.Bounds.T-b.Bounds.B)
		vector.StrokeRect(screen, float32(x), float32(y), float32(lvl.TileSize), float32(lvl.TileSize), 1, colornames.Black, false)
	}
	for _, z := range lvl.DeathZones {
		r.fillBB(screen, z, r.palette.hazard)
	}
	for _, p := range lvl.Pipes {
		r.fillBB(screen, p.Bounds, r.palette.pipe)
	}
	if lvl.Flag != nil {
		r.fillBB(screen, lvl.Flag.Bounds, r.palette.flag)
	}
	for i, c := range lvl.Coins {
		if score != nil && score.Collected(i) {
			continue
		}
		r.fillBB(screen, c.Bounds, r.palette.coin)
	}
}

func (r *renderer) drawPlayer(screen *ebiten.Image, snap entity.Snapshot) {
	bb := component.RectBB(snap.Position.X, snap.Position.Y, snap.Size.X, snap.Size.Y)
	r.fillBB(screen, bb, r.palette.player)

	// facing marker
	eyeX := bb.R - snap.Size.X*0.3
	if snap.FacingLeft {
		eyeX = bb.L + snap.Size.X*0.1
	}
	r.fillBB(screen, component.RectBB(eyeX, bb.T-snap.Size.Y*0.35, snap.Size.X*0.2, snap.Size.Y*0.15), colornames.White)
}

func (r *renderer) drawHUD(screen *ebiten.Image, snap entity.Snapshot, debug bool) {
	mode := "GROUND"
	if snap.Underwater {
		mode = "UNDERWATER"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("LEVEL: %d | TYPE: %s | SCORE: %d", snap.Level, mode, snap.Score), 10, 10)
	if debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("pos: %.1f,%.1f vel: %.1f,%.1f grounded: %v anim: %s fade: %s %.2f  FPS: %.2f",
			snap.Position.X, snap.Position.Y, snap.Velocity.X, snap.Velocity.Y, snap.Grounded, snap.Anim, snap.Phase, snap.Alpha, ebiten.ActualFPS()), 10, 26)
	}
}

func (r *renderer) drawFade(screen *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	cr, cg, cb, _ := r.palette.fade.RGBA()
	a := uint8(alpha * 255)
	b := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.NRGBA{R: uint8(cr >> 8), G: uint8(cg >> 8), B: uint8(cb >> 8), A: a}, false)
}
