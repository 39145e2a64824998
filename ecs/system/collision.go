package system

import (
	"math"

	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
)

// CollisionSystem pushes characters out of the level's blocks.
type CollisionSystem struct{}

func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (cs *CollisionSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	lvl, ok := currentLevel(w)
	if !ok || len(lvl.Blocks) == 0 {
		return
	}
	for _, c := range characters(w) {
		ResolveBlocks(c.transform, c.velocity, c.state, *c.collider, lvl.Blocks)
	}
}

// ResolveBlocks separates the character from each overlapping block along
// the axis of least penetration. Equal penetrations resolve vertically.
// Blocks are visited in slice order and the character box is rebuilt after
// each push, so stacked overlaps resolve sequentially rather than jointly.
func ResolveBlocks(t *component.Transform, v *component.Velocity, ch *component.Character, c component.Collider, blocks []component.Block) {
	pr := c.Bounds(*t)
	for _, b := range blocks {
		br := b.Bounds
		if !component.Overlaps(pr, br) {
			continue
		}

		overlapX := math.Min(pr.R-br.L, br.R-pr.L)
		overlapY := math.Min(pr.T-br.B, br.T-pr.B)

		if overlapX < overlapY {
			if pr.L < br.L {
				t.X -= overlapX
			} else {
				t.X += overlapX
			}
			v.X = 0
		} else {
			if pr.B < br.B {
				// head bump: not a landing
				t.Y -= overlapY
				v.Y = 0
			} else {
				t.Y += overlapY
				v.Y = 0
				ch.Grounded = true
			}
		}

		pr = c.Bounds(*t)
	}
}
