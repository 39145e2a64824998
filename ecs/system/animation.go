package system

import (
	"math"

	"github.com/milk9111/pipescroller/ecs"
	"github.com/milk9111/pipescroller/ecs/component"
)

const (
	swimAnimThreshold = 20.0
	runAnimThreshold  = 40.0
	airAnimThreshold  = 1.0
)

// AnimationSystem picks the coarse pose for the renderer from the settled
// motion state.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World, _ float64) {
	if w == nil {
		return
	}
	for _, c := range characters(w) {
		c.state.Anim = Classify(*c.velocity, *c.state)
	}
}

func Classify(v component.Velocity, ch component.Character) component.AnimState {
	if ch.Underwater {
		if math.Abs(v.Y) > swimAnimThreshold {
			return component.AnimSwim
		}
		return component.AnimIdle
	}
	if !ch.Grounded || math.Abs(v.Y) > airAnimThreshold {
		return component.AnimJump
	}
	if math.Abs(v.X) > runAnimThreshold {
		return component.AnimRun
	}
	return component.AnimIdle
}
